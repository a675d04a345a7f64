package io

import (
	"time"
)

// FileSuffix is appended to the repository name to form a document file name.
const FileSuffix = "_repo_health.yaml"

// Document is the stored result of one repository in one run.
type Document struct {
	RunID     string         `yaml:"run_id"`
	Repo      string         `yaml:"repo"`
	CheckedAt time.Time      `yaml:"checked_at"`
	Results   map[string]any `yaml:"results"`
}

// FileName returns the conventional document file name for repo.
func FileName(repo string) string {
	return repo + FileSuffix
}
