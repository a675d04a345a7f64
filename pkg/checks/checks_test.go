package checks

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/repohealth/pkg/deps"
	rherrors "github.com/matzehuels/repohealth/pkg/errors"
)

func writeRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestResults_Section(t *testing.T) {
	r := make(Results)
	r.Section("a")["x"] = 1
	r.Section("a")["y"] = 2
	r.Section("b")

	if got := len(r["a"]); got != 2 {
		t.Errorf("section a has %d keys, want 2", got)
	}
	if got, want := r.Keys(), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
	nested := r.Nested()
	if _, ok := nested["a"].(map[string]any); !ok {
		t.Errorf("Nested()[a] = %T, want map[string]any", nested["a"])
	}
}

func TestDependencies_EmptyRepository(t *testing.T) {
	results := make(Results)
	if err := (&Dependencies{}).Run(context.Background(), t.TempDir(), results); err != nil {
		t.Fatal(err)
	}
	section := results[DependenciesKey]
	if section["count"] != 0 {
		t.Errorf("count = %v, want 0", section["count"])
	}
	for _, g := range []string{"github", "pypi_all", "pypi", "js", "js.dev", "js.all"} {
		if _, ok := section[g].(map[string]any); !ok {
			t.Errorf("group %s missing from default schema", g)
		}
	}
}

func TestDependencies_ParseError(t *testing.T) {
	repo := writeRepo(t, map[string]string{"package.json": "{"})
	err := (&Dependencies{}).Run(context.Background(), repo, make(Results))
	if !rherrors.Is(err, rherrors.ErrCodeParse) {
		t.Errorf("Run() error = %v, want PARSE_ERROR", err)
	}
}

func TestDependencies_LogsThroughOptions(t *testing.T) {
	repo := writeRepo(t, map[string]string{"requirements/test.txt": "pytest==6.2.4\n"})
	var logged []string
	d := &Dependencies{Options: deps.Options{Logger: func(f string, args ...any) {
		logged = append(logged, fmt.Sprintf(f, args...))
	}}}
	if err := d.Run(context.Background(), repo, make(Results)); err != nil {
		t.Fatal(err)
	}
	if len(logged) != 1 {
		t.Errorf("logged = %q, want one production-file message", logged)
	}
}

func TestSetupPy(t *testing.T) {
	repo := writeRepo(t, map[string]string{
		"setup.py": `from setuptools import setup

setup(
    name='edx-credentials',
    version='3.0.0',
    url='https://github.com/openedx/credentials',
    project_urls={
        'Source': 'https://github.com/openedx/credentials',
    },
    classifiers=[
        'Programming Language :: Python :: 3.5',
        'Programming Language :: Python :: 3.8',
    ],
)
`,
		"setup.cfg": "[bdist_wheel]\nuniversal = 1\n",
	})

	results := make(Results)
	if err := (&SetupPy{}).Run(context.Background(), repo, results); err != nil {
		t.Fatal(err)
	}
	got := results[SetupPyKey]

	if got["pypi_name"] != "edx-credentials" {
		t.Errorf("pypi_name = %v", got["pypi_name"])
	}
	if got["repo_url"] != "https://github.com/openedx/credentials" {
		t.Errorf("repo_url = %v", got["repo_url"])
	}
	if urls, _ := got["project_urls"].(string); !strings.HasPrefix(urls, "{") || !strings.Contains(urls, "'Source'") {
		t.Errorf("project_urls = %q", urls)
	}
	if v := got["python_versions"]; !reflect.DeepEqual(v, []string{"3.5", "3.8"}) {
		t.Errorf("python_versions = %v", v)
	}
	if got["py38_classifiers"] != true {
		t.Errorf("py38_classifiers = %v", got["py38_classifiers"])
	}
}

func TestSetupPy_SetupCfg(t *testing.T) {
	repo := writeRepo(t, map[string]string{
		"setup.cfg": `[metadata]
name = edx-lint
url = https://github.com/openedx/edx-lint
project_urls =
    Tracker = https://github.com/openedx/edx-lint/issues

classifiers =
    Programming Language :: Python :: 3.11
`,
	})

	results := make(Results)
	if err := (&SetupPy{}).Run(context.Background(), repo, results); err != nil {
		t.Fatal(err)
	}
	got := results[SetupPyKey]
	if got["pypi_name"] != "edx-lint" {
		t.Errorf("pypi_name = %v", got["pypi_name"])
	}
	if got["repo_url"] != "https://github.com/openedx/edx-lint" {
		t.Errorf("repo_url = %v", got["repo_url"])
	}
	if urls, _ := got["project_urls"].(string); !strings.Contains(urls, "Tracker = https://github.com/openedx/edx-lint/issues") {
		t.Errorf("project_urls = %q", urls)
	}
	if got["py38_classifiers"] != false {
		t.Errorf("py38_classifiers = %v", got["py38_classifiers"])
	}
}

func TestSetupPy_Ambiguous(t *testing.T) {
	repo := writeRepo(t, map[string]string{
		"setup.py":  "setup(\n    name='one',\n)\n",
		"setup.cfg": "[metadata]\nname = two\n",
	})

	var logged int
	results := make(Results)
	s := &SetupPy{Logger: func(string, ...any) { logged++ }}
	if err := s.Run(context.Background(), repo, results); err != nil {
		t.Fatal(err)
	}
	if _, ok := results[SetupPyKey]["pypi_name"]; ok {
		t.Error("pypi_name recorded despite two candidates")
	}
	if logged != 1 {
		t.Errorf("logged %d times, want 1", logged)
	}
}

func TestSetupPy_NoFiles(t *testing.T) {
	results := make(Results)
	if err := (&SetupPy{}).Run(context.Background(), t.TempDir(), results); err != nil {
		t.Fatal(err)
	}
	got := results[SetupPyKey]
	want := map[string]any{"python_versions": []string{}, "py38_classifiers": false}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("results = %v, want %v", got, want)
	}
}

type stubCheck struct {
	key string
	err error
	ran *[]string
}

func (s stubCheck) Key() string { return s.key }

func (s stubCheck) Run(_ context.Context, _ string, results Results) error {
	*s.ran = append(*s.ran, s.key)
	results.Section(s.key)["ok"] = s.err == nil
	return s.err
}

func TestRun_StopsAtFirstError(t *testing.T) {
	var ran []string
	boom := errors.New("boom")
	checks := []Check{
		stubCheck{key: "a", ran: &ran},
		stubCheck{key: "b", err: boom, ran: &ran},
		stubCheck{key: "c", ran: &ran},
	}

	results, failed, err := Run(context.Background(), "/repo", checks)
	if !errors.Is(err, boom) {
		t.Fatalf("Run() error = %v", err)
	}
	if failed.Key() != "b" {
		t.Errorf("failed check = %s, want b", failed.Key())
	}
	if !reflect.DeepEqual(ran, []string{"a", "b"}) {
		t.Errorf("ran = %v", ran)
	}
	if results["a"]["ok"] != true {
		t.Errorf("partial results lost: %v", results)
	}
}

func TestRun_Cancelled(t *testing.T) {
	var ran []string
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := Run(ctx, "/repo", []Check{stubCheck{key: "a", ran: &ran}})
	if !errors.Is(err, context.Canceled) || len(ran) != 0 {
		t.Errorf("Run() = %v after %v, want context.Canceled before any check", err, ran)
	}
}
