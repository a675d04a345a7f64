// Package repofs reads files inside a checked-out repository.
//
// Absent files are not errors: [Content] reports ok=false and [Lines]
// returns an empty slice, so optional inputs such as lockfiles degrade to
// empty input. Any other I/O failure (permissions, reading a directory) is
// returned to the caller.
package repofs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/matzehuels/repohealth/pkg/observability"
)

const cacheKeyType = "lines"

// DefaultCacheSize is the number of files a [Reader] keeps in memory.
const DefaultCacheSize = 256

// Content returns the full text of the file at path.
// ok is false when the file does not exist.
func Content(path string) (text string, ok bool, err error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(data), true, nil
}

// Lines returns the lines of the file at path without line terminators.
// A missing file yields an empty slice.
func Lines(path string) ([]string, error) {
	text, ok, err := Content(path)
	if err != nil || !ok {
		return []string{}, err
	}
	return splitLines(text), nil
}

// Exists reports whether path names an existing regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsDir reports whether path names an existing directory.
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func splitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Reader reads file lines through a bounded LRU cache.
//
// A single health run reads some files more than once (a production
// requirements file is scanned by both the "all" and the production pass);
// the cache keeps that to one disk read. Reader is safe for concurrent use.
// Cached entries are never invalidated, so a Reader should not outlive the
// checkout it reads from.
type Reader struct {
	lines *lru.Cache[string, []string]
}

// NewReader creates a Reader caching up to size files.
// A size <= 0 uses [DefaultCacheSize].
func NewReader(size int) (*Reader, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	c, err := lru.New[string, []string](size)
	if err != nil {
		return nil, err
	}
	return &Reader{lines: c}, nil
}

// Lines returns the lines of path, reading the file only on a cache miss.
// The returned slice is a copy and may be modified by the caller.
func (r *Reader) Lines(path string) ([]string, error) {
	ctx := context.Background()
	if cached, ok := r.lines.Get(path); ok {
		observability.Cache().OnCacheHit(ctx, cacheKeyType)
		return append([]string(nil), cached...), nil
	}
	observability.Cache().OnCacheMiss(ctx, cacheKeyType)
	lines, err := Lines(path)
	if err != nil {
		return nil, err
	}
	r.lines.Add(path, lines)
	observability.Cache().OnCacheSet(ctx, cacheKeyType, len(lines))
	return append([]string(nil), lines...), nil
}

// Len returns the number of cached files.
func (r *Reader) Len() int { return r.lines.Len() }
