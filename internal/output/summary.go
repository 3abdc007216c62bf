package output

import (
	"fmt"
	"strings"

	"schemadoc/internal/core"
	"schemadoc/internal/markdown"
)

const (
	overviewSection = "Schema Overview"
	bucketsSection  = "Storage Buckets"
	enumsSection    = "Custom ENUM Types"
)

type summaryFormatter struct{}

// FormatDocument formats the document as a compact summary read back from the
// Markdown itself.
// Example output:
//
//	Schema Summary: BPOC Database Schema Documentation
//	==================================================
//
//	Total Tables:       67
//	Foreign Keys:       200+
//	...
//
//	Storage Buckets (7): admin, candidate, ...
//	Enum Types (30):     agency_status, application_status, ...
func (summaryFormatter) FormatDocument(doc string, _ *core.Catalog) (string, error) {
	outline, err := markdown.Outline([]byte(doc))
	if err != nil {
		return "", fmt.Errorf("failed to read document outline: %w", err)
	}

	var sb strings.Builder

	title := "Schema Summary"
	if outline.Title != "" {
		title += ": " + outline.Title
	}
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("=", len(title)) + "\n")

	if s := outline.Section(overviewSection); s != nil {
		sb.WriteString("\n")
		for _, kv := range s.Pairs() {
			fmt.Fprintf(&sb, "%-20s%s\n", kv[0]+":", kv[1])
		}
	}

	var buckets, enums []string
	if s := outline.Section(bucketsSection); s != nil {
		buckets = s.Column(0)
	}
	if s := outline.Section(enumsSection); s != nil {
		enums = s.Terms
	}

	if len(buckets) == 0 && len(enums) == 0 {
		return sb.String(), nil
	}

	sb.WriteString("\n")
	writeNameList(&sb, fmt.Sprintf("Storage Buckets (%d):", len(buckets)), buckets)
	writeNameList(&sb, fmt.Sprintf("Enum Types (%d):", len(enums)), enums)

	return sb.String(), nil
}

func writeNameList(sb *strings.Builder, label string, names []string) {
	if len(names) == 0 {
		fmt.Fprintf(sb, "%-21s(none)\n", label)
		return
	}
	fmt.Fprintf(sb, "%-21s%s\n", label, strings.Join(names, ", "))
}
