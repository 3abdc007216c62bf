// Package toml loads the database catalog from its TOML description.
// The catalog carries the same facts as the Markdown reference document
// (headline figures, storage buckets, enum types) in a form the json and
// summary outputs can work with.
package toml

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"schemadoc/internal/core"
)

//go:embed catalog.toml
var defaultCatalog []byte

// catalogFile is the top-level TOML document.
type catalogFile struct {
	Database tomlDatabase `toml:"database"`
	Stats    tomlStats    `toml:"stats"`
	Buckets  []tomlBucket `toml:"buckets"`
	Enums    []tomlEnum   `toml:"enums"`
}

// tomlDatabase maps [database].
type tomlDatabase struct {
	Name string `toml:"name"`
}

// tomlStats maps [stats].
type tomlStats struct {
	TotalTables       string `toml:"total_tables"`
	ForeignKeys       string `toml:"foreign_keys"`
	PrimaryKeys       string `toml:"primary_keys"`
	UniqueConstraints string `toml:"unique_constraints"`
	CheckConstraints  string `toml:"check_constraints"`
	RLSEnabled        string `toml:"rls_enabled"`
	RLSPolicies       string `toml:"rls_policies"`
	EnumTypes         string `toml:"enum_types"`
	StorageBuckets    string `toml:"storage_buckets"`
}

// tomlBucket maps a [[buckets]] entry.
type tomlBucket struct {
	Name             string   `toml:"name"`
	Visibility       string   `toml:"visibility"`
	SizeLimit        string   `toml:"size_limit"`
	AllowedMIMETypes []string `toml:"allowed_mime_types"`
	CreatedAt        string   `toml:"created_at"`
}

// tomlEnum maps an [[enums]] entry.
type tomlEnum struct {
	Name   string   `toml:"name"`
	Values []string `toml:"values"`
}

// Parser reads catalog TOML files.
type Parser struct{}

// NewParser creates a new catalog parser.
func NewParser() *Parser {
	return &Parser{}
}

// Default parses the catalog embedded in the binary.
func Default() (*core.Catalog, error) {
	return NewParser().Parse(bytes.NewReader(defaultCatalog))
}

// ParseFile opens the file at the given path and parses it as a catalog.
func (p *Parser) ParseFile(path string) (*core.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("toml: open file %q: %w", path, err)
	}
	defer f.Close()

	return p.Parse(f)
}

// Parse reads TOML content from reader and returns the corresponding core.Catalog.
// Keys the catalog format does not define are rejected.
func (p *Parser) Parse(r io.Reader) (*core.Catalog, error) {
	var cf catalogFile
	md, err := toml.NewDecoder(r).Decode(&cf)
	if err != nil {
		return nil, fmt.Errorf("toml: decode error: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("toml: unknown keys: %s", strings.Join(keys, ", "))
	}

	c, err := convert(&cf)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("toml: invalid catalog: %w", err)
	}
	return c, nil
}

func convert(cf *catalogFile) (*core.Catalog, error) {
	c := &core.Catalog{
		Name: cf.Database.Name,
		Stats: core.Stats{
			TotalTables:       cf.Stats.TotalTables,
			ForeignKeys:       cf.Stats.ForeignKeys,
			PrimaryKeys:       cf.Stats.PrimaryKeys,
			UniqueConstraints: cf.Stats.UniqueConstraints,
			CheckConstraints:  cf.Stats.CheckConstraints,
			RLSEnabled:        cf.Stats.RLSEnabled,
			RLSPolicies:       cf.Stats.RLSPolicies,
			EnumTypes:         cf.Stats.EnumTypes,
			StorageBuckets:    cf.Stats.StorageBuckets,
		},
		Buckets: make([]*core.Bucket, 0, len(cf.Buckets)),
		Enums:   make([]*core.EnumType, 0, len(cf.Enums)),
	}

	for i := range cf.Buckets {
		b, err := convertBucket(&cf.Buckets[i])
		if err != nil {
			return nil, fmt.Errorf("toml: bucket %q: %w", cf.Buckets[i].Name, err)
		}
		c.Buckets = append(c.Buckets, b)
	}

	for i := range cf.Enums {
		e := &cf.Enums[i]
		c.Enums = append(c.Enums, &core.EnumType{
			Name:   strings.TrimSpace(e.Name),
			Values: append([]string(nil), e.Values...),
		})
	}

	return c, nil
}

func convertBucket(tb *tomlBucket) (*core.Bucket, error) {
	vis, err := parseVisibility(tb.Visibility)
	if err != nil {
		return nil, err
	}
	return &core.Bucket{
		Name:             strings.TrimSpace(tb.Name),
		Visibility:       vis,
		SizeLimit:        tb.SizeLimit,
		AllowedMIMETypes: append([]string(nil), tb.AllowedMIMETypes...),
		CreatedAt:        tb.CreatedAt,
	}, nil
}

// parseVisibility accepts "public"/"private" in any case. Empty means private.
func parseVisibility(raw string) (core.Visibility, error) {
	switch core.Visibility(strings.ToLower(strings.TrimSpace(raw))) {
	case "", core.VisibilityPrivate:
		return core.VisibilityPrivate, nil
	case core.VisibilityPublic:
		return core.VisibilityPublic, nil
	default:
		return "", fmt.Errorf("unsupported visibility %q; use 'public' or 'private'", raw)
	}
}
