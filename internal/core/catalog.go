// Package core contains the structured view of the documented database: its
// headline statistics, storage buckets and custom enum types. It is the
// machine-readable counterpart of the Markdown reference document.
package core

import (
	"errors"
	"fmt"
	"strings"
)

// Visibility identifies whether a storage bucket is served publicly.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// String returns the capitalised label used in the reference document.
func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "Public"
	case VisibilityPrivate:
		return "Private"
	default:
		return string(v)
	}
}

// Catalog represents the documented database.
type Catalog struct {
	Name    string      `json:"name"`
	Stats   Stats       `json:"stats"`
	Buckets []*Bucket   `json:"buckets"`
	Enums   []*EnumType `json:"enums"`
}

// Stats holds the headline figures exactly as they are displayed.
// Some of them are lower bounds ("200+"), so they are kept as strings.
type Stats struct {
	TotalTables       string `json:"totalTables"`
	ForeignKeys       string `json:"foreignKeys"`
	PrimaryKeys       string `json:"primaryKeys"`
	UniqueConstraints string `json:"uniqueConstraints"`
	CheckConstraints  string `json:"checkConstraints"`
	RLSEnabled        string `json:"rlsEnabled"`
	RLSPolicies       string `json:"rlsPolicies"`
	EnumTypes         string `json:"enumTypes"`
	StorageBuckets    string `json:"storageBuckets"`
}

// Entries returns the figures as ordered label/value pairs, using the labels
// of the document header.
func (s Stats) Entries() [][2]string {
	return [][2]string{
		{"Total Tables", s.TotalTables},
		{"Foreign Keys", s.ForeignKeys},
		{"Primary Keys", s.PrimaryKeys},
		{"Unique Constraints", s.UniqueConstraints},
		{"Check Constraints", s.CheckConstraints},
		{"RLS Enabled", s.RLSEnabled},
		{"RLS Policies", s.RLSPolicies},
		{"Custom ENUM Types", s.EnumTypes},
		{"Storage Buckets", s.StorageBuckets},
	}
}

// Bucket represents a file storage bucket.
type Bucket struct {
	Name             string     `json:"name"`
	Visibility       Visibility `json:"visibility"`
	SizeLimit        string     `json:"sizeLimit"`
	AllowedMIMETypes []string   `json:"allowedMimeTypes,omitempty"`
	CreatedAt        string     `json:"createdAt"`
}

// IsPublic reports whether objects in the bucket are publicly readable.
func (b *Bucket) IsPublic() bool {
	return b.Visibility == VisibilityPublic
}

// EnumType represents a custom enum type and its literal values in
// declaration order.
type EnumType struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// HasValue reports whether v is one of the enum's literals.
func (e *EnumType) HasValue(v string) bool {
	for _, value := range e.Values {
		if value == v {
			return true
		}
	}
	return false
}

// FindBucket returns the bucket with the given name (case-insensitive), or nil.
func (c *Catalog) FindBucket(name string) *Bucket {
	for _, b := range c.Buckets {
		if strings.EqualFold(b.Name, name) {
			return b
		}
	}
	return nil
}

// FindEnum returns the enum type with the given name (case-insensitive), or nil.
func (c *Catalog) FindEnum(name string) *EnumType {
	for _, e := range c.Enums {
		if strings.EqualFold(e.Name, name) {
			return e
		}
	}
	return nil
}

// BucketNames returns bucket names in catalog order.
func (c *Catalog) BucketNames() []string {
	names := make([]string, 0, len(c.Buckets))
	for _, b := range c.Buckets {
		names = append(names, b.Name)
	}
	return names
}

// EnumNames returns enum type names in catalog order.
func (c *Catalog) EnumNames() []string {
	names := make([]string, 0, len(c.Enums))
	for _, e := range c.Enums {
		names = append(names, e.Name)
	}
	return names
}

// Validate checks the catalog for structural problems and returns all of
// them joined into a single error.
func (c *Catalog) Validate() error {
	var errs []error

	seenBuckets := make(map[string]struct{}, len(c.Buckets))
	for i, b := range c.Buckets {
		if b == nil || strings.TrimSpace(b.Name) == "" {
			errs = append(errs, fmt.Errorf("bucket #%d: name is empty", i))
			continue
		}
		key := strings.ToLower(b.Name)
		if _, ok := seenBuckets[key]; ok {
			errs = append(errs, fmt.Errorf("bucket %q: duplicate name", b.Name))
		}
		seenBuckets[key] = struct{}{}

		if b.Visibility != VisibilityPublic && b.Visibility != VisibilityPrivate {
			errs = append(errs, fmt.Errorf("bucket %q: invalid visibility %q", b.Name, b.Visibility))
		}
	}

	seenEnums := make(map[string]struct{}, len(c.Enums))
	for i, e := range c.Enums {
		if e == nil || strings.TrimSpace(e.Name) == "" {
			errs = append(errs, fmt.Errorf("enum #%d: name is empty", i))
			continue
		}
		key := strings.ToLower(e.Name)
		if _, ok := seenEnums[key]; ok {
			errs = append(errs, fmt.Errorf("enum %q: duplicate name", e.Name))
		}
		seenEnums[key] = struct{}{}

		if len(e.Values) == 0 {
			errs = append(errs, fmt.Errorf("enum %q: no values", e.Name))
		}
		seenValues := make(map[string]struct{}, len(e.Values))
		for _, v := range e.Values {
			if _, ok := seenValues[v]; ok {
				errs = append(errs, fmt.Errorf("enum %q: duplicate value %q", e.Name, v))
			}
			seenValues[v] = struct{}{}
		}
	}

	return errors.Join(errs...)
}
