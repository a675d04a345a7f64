package io

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// WriteYAML encodes doc as YAML and writes it to w.
// The output can be re-read with [ReadYAML].
func WriteYAML(doc *Document, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return enc.Close()
}

// ExportYAML writes doc to a YAML file at path, creating or truncating it.
func ExportYAML(doc *Document, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteYAML(doc, f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}
