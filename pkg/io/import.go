package io

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/repohealth/pkg/errors"
	"github.com/matzehuels/repohealth/pkg/metadata"
)

// ReadYAML decodes a document from r. Malformed YAML yields an error with
// code PARSE_ERROR. ReadYAML does not close r.
func ReadYAML(r io.Reader) (*Document, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return &doc, nil
		}
		return nil, errors.Wrap(errors.ErrCodeParse, err, "decode document")
	}
	return &doc, nil
}

// ImportYAML reads the document stored at path. A document without a repo
// name takes it from the file name.
func ImportYAML(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := ReadYAML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Repo == "" {
		doc.Repo = repoFromFile(path)
	}
	return doc, nil
}

// ImportDir reads every *.yaml and *.yml file directly inside dir, in file
// name order, and returns their results keyed by repository name.
func ImportDir(dir string) (*metadata.ResultSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.Type().IsRegular() && (ext == ".yaml" || ext == ".yml") {
			files = append(files, e.Name())
		}
	}
	slices.Sort(files)

	set := metadata.NewResultSet()
	for _, name := range files {
		doc, err := ImportYAML(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		if _, dup := set.Get(doc.Repo); dup {
			return nil, errors.New(errors.ErrCodeInvalidInput, "repository %q stored twice in %s", doc.Repo, dir)
		}
		results := doc.Results
		if results == nil {
			results = map[string]any{}
		}
		set.Add(doc.Repo, results)
	}
	return set, nil
}

func repoFromFile(path string) string {
	base := filepath.Base(path)
	if strings.HasSuffix(base, FileSuffix) {
		return strings.TrimSuffix(base, FileSuffix)
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}
