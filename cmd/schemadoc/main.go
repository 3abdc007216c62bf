// Package main contains the cli implementation of the tool. It uses cobra
// package for cli tool implementation.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"schemadoc/internal/core"
	"schemadoc/internal/docs"
	"schemadoc/internal/output"
	"schemadoc/internal/parser/toml"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var outFile string
	var format string
	var catalogFile string

	rootCmd := &cobra.Command{
		Use:   "schemadoc",
		Short: "Print the BPOC database schema reference",
		Long: `schemadoc prints the schema reference document for the BPOC database:
headline table and constraint figures, storage buckets and custom enum types.

With no flags the Markdown document is written to standard output.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), cmd.ErrOrStderr(), format, outFile, catalogFile)
		},
	}

	rootCmd.Flags().StringVarP(&outFile, "output", "o", "", "Output file for the document")
	rootCmd.Flags().StringVarP(&format, "format", "f", "", "Output format: markdown, json or summary")
	rootCmd.Flags().StringVar(&catalogFile, "catalog", "", "Catalog TOML file used by the json format (defaults to the built-in catalog)")

	return rootCmd
}

func run(stdout, stderr io.Writer, format, outFile, catalogFile string) error {
	formatter, err := output.NewFormatter(format)
	if err != nil {
		return err
	}

	catalog, err := loadCatalog(catalogFile)
	if err != nil {
		return err
	}

	doc := docs.GenerateTableDocs(nil, nil, nil, nil, nil, nil, nil)
	formatted, err := formatter.FormatDocument(doc, catalog)
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if outFile == "" {
		_, err := io.WriteString(stdout, formatted)
		return err
	}
	if err := os.WriteFile(outFile, []byte(formatted), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	printInfo(stdout, stderr, format, fmt.Sprintf("Output saved to %s", outFile))
	return nil
}

func loadCatalog(path string) (*core.Catalog, error) {
	if path == "" {
		c, err := toml.Default()
		if err != nil {
			return nil, fmt.Errorf("failed to load built-in catalog: %w", err)
		}
		return c, nil
	}
	c, err := toml.NewParser().ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return c, nil
}

// printInfo keeps informational lines off stdout when the output is meant for
// machines.
func printInfo(stdout, stderr io.Writer, format string, msg string) {
	if output.IsMachineReadable(format) {
		_, _ = fmt.Fprintln(stderr, msg)
		return
	}
	_, _ = fmt.Fprintln(stdout, msg)
}
