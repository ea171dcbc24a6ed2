package main

import (
	"fmt"
	"os"

	"golang.org/x/tools/imports"
)

// writeFormatted runs the rendered source through goimports-style
// formatting and writes it to filename. A formatting failure falls back
// to the raw source so broken output can still be inspected.
func writeFormatted(filename string, src []byte) error {
	formatted, err := imports.Process(filename, src, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: formatting failed: %v\n", err)
		formatted = src
	}
	if err := os.WriteFile(filename, formatted, 0644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}
