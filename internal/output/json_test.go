package output

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schemadoc/internal/core"
)

func TestJSONFormatterNilCatalog(t *testing.T) {
	_, err := jsonFormatter{}.FormatDocument("# doc", nil)
	assert.Error(t, err)
}

func TestJSONFormatterCatalog(t *testing.T) {
	c := &core.Catalog{
		Name:  "bpoc",
		Stats: core.Stats{TotalTables: "67"},
		Buckets: []*core.Bucket{
			{Name: "admin", Visibility: core.VisibilityPrivate, SizeLimit: "50 MB"},
		},
		Enums: []*core.EnumType{
			{Name: "job_status", Values: []string{"draft", "active"}},
			{Name: "salary_type", Values: []string{"hourly", "monthly", "yearly"}},
		},
	}

	out, err := jsonFormatter{}.FormatDocument("ignored", c)
	require.NoError(t, err)
	assert.True(t, len(out) > 0 && out[len(out)-1] == '\n')

	var decoded struct {
		Format  string `json:"format"`
		Summary struct {
			StorageBuckets int `json:"storageBuckets"`
			EnumTypes      int `json:"enumTypes"`
			EnumValues     int `json:"enumValues"`
		} `json:"summary"`
		Catalog struct {
			Name    string `json:"name"`
			Buckets []struct {
				Name       string `json:"name"`
				Visibility string `json:"visibility"`
			} `json:"buckets"`
		} `json:"catalog"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, "json", decoded.Format)
	assert.Equal(t, 1, decoded.Summary.StorageBuckets)
	assert.Equal(t, 2, decoded.Summary.EnumTypes)
	assert.Equal(t, 5, decoded.Summary.EnumValues)
	assert.Equal(t, "bpoc", decoded.Catalog.Name)
	require.Len(t, decoded.Catalog.Buckets, 1)
	assert.Equal(t, "private", decoded.Catalog.Buckets[0].Visibility)
}
