package repofs

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/matzehuels/repohealth/pkg/observability"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "README.rst")
	writeFile(t, path, "hello\n")

	text, ok, err := Content(path)
	if err != nil || !ok {
		t.Fatalf("Content() ok=%v err=%v", ok, err)
	}
	if text != "hello\n" {
		t.Errorf("Content() = %q, want %q", text, "hello\n")
	}

	_, ok, err = Content(filepath.Join(dir, "missing"))
	if err != nil {
		t.Errorf("missing file should not be an error: %v", err)
	}
	if ok {
		t.Error("missing file should report ok=false")
	}
}

func TestLines(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"unix", "a==1\nb==2\n", []string{"a==1", "b==2"}},
		{"no trailing newline", "a==1\nb==2", []string{"a==1", "b==2"}},
		{"windows", "a==1\r\nb==2\r\n", []string{"a==1", "b==2"}},
		{"blank lines kept", "a\n\nb\n", []string{"a", "", "b"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".txt")
			writeFile(t, path, tt.content)
			got, err := Lines(path)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Lines() = %q, want %q", got, tt.want)
			}
		})
	}

	got, err := Lines(filepath.Join(dir, "missing.txt"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("missing file should give empty slice, got %#v", got)
	}
}

func TestExistsAndIsDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "package.json")
	writeFile(t, file, "{}")

	if !Exists(file) {
		t.Error("Exists(file) = false")
	}
	if Exists(dir) {
		t.Error("Exists(dir) = true, want false for directories")
	}
	if !IsDir(dir) {
		t.Error("IsDir(dir) = false")
	}
	if IsDir(file) {
		t.Error("IsDir(file) = true")
	}
	if Exists(filepath.Join(dir, "nope")) || IsDir(filepath.Join(dir, "nope")) {
		t.Error("missing path reported as present")
	}
}

func TestReaderCachesLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "base.txt")
	writeFile(t, path, "django==2.2.20\n")

	r, err := NewReader(0)
	if err != nil {
		t.Fatal(err)
	}

	first, err := r.Lines(path)
	if err != nil {
		t.Fatal(err)
	}

	// Rewrite on disk; the cached copy must be served.
	writeFile(t, path, "flask==2.0.0\n")
	second, err := r.Lines(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("cached Lines() = %q, want %q", second, first)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}

	// Mutating the returned slice must not poison the cache.
	second[0] = "changed"
	third, _ := r.Lines(path)
	if third[0] != "django==2.2.20" {
		t.Errorf("cache entry was mutated: %q", third[0])
	}
}

type countingCacheHooks struct {
	observability.NoopCacheHooks
	hits, misses int
}

func (c *countingCacheHooks) OnCacheHit(context.Context, string)  { c.hits++ }
func (c *countingCacheHooks) OnCacheMiss(context.Context, string) { c.misses++ }

func TestReaderReportsCacheHooks(t *testing.T) {
	hooks := &countingCacheHooks{}
	observability.SetCacheHooks(hooks)
	defer observability.Reset()

	path := filepath.Join(t.TempDir(), "production.txt")
	writeFile(t, path, "gunicorn==20.1.0\n")

	r, err := NewReader(4)
	if err != nil {
		t.Fatal(err)
	}
	for range 3 {
		if _, err := r.Lines(path); err != nil {
			t.Fatal(err)
		}
	}
	if hooks.misses != 1 || hooks.hits != 2 {
		t.Errorf("misses=%d hits=%d, want 1 and 2", hooks.misses, hooks.hits)
	}
}
