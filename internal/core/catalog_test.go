package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCatalog() *Catalog {
	return &Catalog{
		Name: "bpoc",
		Buckets: []*Bucket{
			{Name: "admin", Visibility: VisibilityPrivate},
			{Name: "hero-videos", Visibility: VisibilityPublic},
		},
		Enums: []*EnumType{
			{Name: "job_status", Values: []string{"draft", "active", "paused"}},
			{Name: "shift_type", Values: []string{"day", "night"}},
		},
	}
}

func TestVisibilityString(t *testing.T) {
	assert.Equal(t, "Public", VisibilityPublic.String())
	assert.Equal(t, "Private", VisibilityPrivate.String())
	assert.Equal(t, "shared", Visibility("shared").String())
}

func TestBucketIsPublic(t *testing.T) {
	c := sampleCatalog()
	assert.False(t, c.Buckets[0].IsPublic())
	assert.True(t, c.Buckets[1].IsPublic())
}

func TestFindBucketCaseInsensitive(t *testing.T) {
	c := sampleCatalog()
	b := c.FindBucket("HERO-VIDEOS")
	require.NotNil(t, b)
	assert.Equal(t, "hero-videos", b.Name)
	assert.Nil(t, c.FindBucket("marketing"))
}

func TestFindEnumAndHasValue(t *testing.T) {
	c := sampleCatalog()
	e := c.FindEnum("Job_Status")
	require.NotNil(t, e)
	assert.True(t, e.HasValue("paused"))
	assert.False(t, e.HasValue("Paused"))
	assert.Nil(t, c.FindEnum("gender"))
}

func TestNamesPreserveOrder(t *testing.T) {
	c := sampleCatalog()
	assert.Equal(t, []string{"admin", "hero-videos"}, c.BucketNames())
	assert.Equal(t, []string{"job_status", "shift_type"}, c.EnumNames())
}

func TestNamesEmptyCatalog(t *testing.T) {
	c := &Catalog{}
	assert.Empty(t, c.BucketNames())
	assert.Empty(t, c.EnumNames())
	assert.NoError(t, c.Validate())
}

func TestStatsEntriesOrder(t *testing.T) {
	s := Stats{TotalTables: "67", StorageBuckets: "7"}
	entries := s.Entries()
	require.Len(t, entries, 9)
	assert.Equal(t, [2]string{"Total Tables", "67"}, entries[0])
	assert.Equal(t, [2]string{"Storage Buckets", "7"}, entries[8])
}

func TestValidateValidCatalog(t *testing.T) {
	assert.NoError(t, sampleCatalog().Validate())
}

func TestValidateDuplicateBucket(t *testing.T) {
	c := sampleCatalog()
	c.Buckets = append(c.Buckets, &Bucket{Name: "Admin", Visibility: VisibilityPublic})
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `bucket "Admin": duplicate name`)
}

func TestValidateInvalidVisibility(t *testing.T) {
	c := sampleCatalog()
	c.Buckets[0].Visibility = "shared"
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid visibility "shared"`)
}

func TestValidateEnumProblemsAreCollected(t *testing.T) {
	c := sampleCatalog()
	c.Enums = append(c.Enums,
		&EnumType{Name: "empty"},
		&EnumType{Name: "dupe", Values: []string{"a", "a"}},
		&EnumType{Name: " "},
	)
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `enum "empty": no values`)
	assert.Contains(t, err.Error(), `enum "dupe": duplicate value "a"`)
	assert.Contains(t, err.Error(), "enum #4: name is empty")
}
