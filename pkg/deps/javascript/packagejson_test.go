package javascript

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/repohealth/pkg/deps"
	"github.com/matzehuels/repohealth/pkg/errors"
)

func writeFiles(t *testing.T, files map[string]string) string {
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

func decodeMap(t *testing.T, g deps.Group) map[string]string {
	t.Helper()
	var out map[string]string
	if err := json.Unmarshal([]byte(g.List), &out); err != nil {
		t.Fatalf("list %q is not a JSON object: %v", g.List, err)
	}
	return out
}

// manifest builds a package.json with n dependencies and m devDependencies.
func manifest(n, m int) string {
	dep := make(map[string]string, n)
	for i := range n {
		dep[fmt.Sprintf("dep-%02d", i)] = fmt.Sprintf("^%d.0.0", i+1)
	}
	dev := make(map[string]string, m)
	for i := range m {
		dev[fmt.Sprintf("dev-%02d", i)] = "~1.0.0"
	}
	data, _ := json.Marshal(map[string]any{
		"name":            "frontend-app-learning",
		"version":         "1.0.0",
		"dependencies":    dep,
		"devDependencies": dev,
	})
	return string(data)
}

func TestPackageJSON_Applicable(t *testing.T) {
	js := writeFiles(t, map[string]string{"package.json": "{}"})
	nested := writeFiles(t, map[string]string{"static/package.json": "{}"})

	p := &PackageJSON{}
	if !p.Applicable(js) {
		t.Error("Applicable() = false with package.json at root")
	}
	if p.Applicable(nested) {
		t.Error("Applicable() = true with package.json only in a subdirectory")
	}
	sum, err := p.Read(context.Background(), nested, deps.Options{})
	if err != nil || sum != nil {
		t.Errorf("Read() on non-applicable repo = %v, %v; want nil, nil", sum, err)
	}
}

func TestPackageJSON_ManifestAndLockfile(t *testing.T) {
	var lock strings.Builder
	lock.WriteString(`{"name": "frontend-app-learning", "lockfileVersion": 1, "dependencies": {`)
	for i := range 12 {
		if i > 0 {
			lock.WriteString(",")
		}
		fmt.Fprintf(&lock, `"pkg-%02d": {"version": "1.%d.0", "integrity": "sha512-x"}`, i, i)
	}
	lock.WriteString("}}")

	repo := writeFiles(t, map[string]string{
		"package.json":      manifest(15, 11),
		"package-lock.json": lock.String(),
	})

	sum, err := (&PackageJSON{}).Read(context.Background(), repo, deps.Options{})
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}

	if sum.Count != 26 {
		t.Errorf("count = %d, want 26", sum.Count)
	}
	if got := sum.Group(deps.GroupJS).Count; got != 15 {
		t.Errorf("js.count = %d, want 15", got)
	}
	if got := sum.Group(deps.GroupJSDev).Count; got != 11 {
		t.Errorf("js.dev.count = %d, want 11", got)
	}
	all := sum.Group(deps.GroupJSAll)
	if all.Count != 12 {
		t.Errorf("js.all.count = %d, want 12", all.Count)
	}
	if v := decodeMap(t, all)["pkg-03"]; v != "1.3.0" {
		t.Errorf("js.all[pkg-03] = %q, want 1.3.0", v)
	}
	if v := decodeMap(t, sum.Group(deps.GroupJS))["dep-00"]; v != "^1.0.0" {
		t.Errorf("js[dep-00] = %q, want ^1.0.0", v)
	}
}

func TestPackageJSON_NoLockfile(t *testing.T) {
	repo := writeFiles(t, map[string]string{"package.json": manifest(2, 1)})

	sum, err := (&PackageJSON{}).Read(context.Background(), repo, deps.Options{})
	if err != nil {
		t.Fatal(err)
	}
	if got := sum.Group(deps.GroupJSAll); got.Count != 0 || got.List != "{}" {
		t.Errorf("js.all = %+v, want zero count and {}", got)
	}
	if sum.Count != 3 {
		t.Errorf("count = %d, want 3", sum.Count)
	}
}

func TestPackageJSON_BlankLockfile(t *testing.T) {
	for name, lock := range map[string]string{"empty": "", "whitespace": " \n\t\n"} {
		t.Run(name, func(t *testing.T) {
			repo := writeFiles(t, map[string]string{
				"package.json":      `{"dependencies": {"react": "^17.0.0"}}`,
				"package-lock.json": lock,
			})

			sum, err := (&PackageJSON{}).Read(context.Background(), repo, deps.Options{})
			if err != nil {
				t.Fatalf("blank lockfile must be treated as absent: %v", err)
			}
			if got := sum.Group(deps.GroupJSAll); got.Count != 0 || got.List != "{}" {
				t.Errorf("js.all = %+v, want zero count and {}", got)
			}
			if got := sum.Group(deps.GroupJS); got.List != `{"react":"^17.0.0"}` {
				t.Errorf("js = %+v", got)
			}
		})
	}
}

func TestPackageJSON_EmptyManifest(t *testing.T) {
	repo := writeFiles(t, map[string]string{"package.json": `{"name": "x"}`})

	sum, err := (&PackageJSON{}).Read(context.Background(), repo, deps.Options{})
	if err != nil {
		t.Fatalf("empty manifest must not fail: %v", err)
	}
	for _, g := range []string{deps.GroupJS, deps.GroupJSDev, deps.GroupJSAll} {
		if got := sum.Group(g); got.Count != 0 || got.List != "{}" {
			t.Errorf("%s = %+v, want empty", g, got)
		}
	}
}

func TestPackageJSON_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		files map[string]string
	}{
		{"manifest", map[string]string{"package.json": `{"dependencies": {`}},
		{"lockfile", map[string]string{
			"package.json":      manifest(1, 0),
			"package-lock.json": `{"dependencies": [`,
		}},
		{"wrong type", map[string]string{"package.json": `{"dependencies": ["react"]}`}},
		{"empty manifest", map[string]string{"package.json": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := writeFiles(t, tt.files)
			sum, err := (&PackageJSON{}).Read(context.Background(), repo, deps.Options{})
			if err == nil {
				t.Fatalf("Read() = %+v, want error", sum)
			}
			if !errors.Is(err, errors.ErrCodeParse) {
				t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeParse)
			}
		})
	}
}

func TestFromPackages(t *testing.T) {
	pkgs := map[string]lockEntry{
		"":                                   {Version: "1.0.0"},
		"node_modules/react":                 {Version: "18.2.0"},
		"node_modules/scheduler":             {Version: "0.23.0"},
		"node_modules/@edx/paragon":          {Version: "20.1.0"},
		"node_modules/a/node_modules/react":  {Version: "16.14.0"},
		"node_modules/b/node_modules/lodash": {Version: "4.17.20"},
		"node_modules/c/node_modules/lodash": {Version: "4.17.21"},
		"packages/workspace-a":               {Version: "0.0.1"},
	}

	want := map[string]string{
		"react":        "18.2.0",
		"scheduler":    "0.23.0",
		"@edx/paragon": "20.1.0",
		"lodash":       "4.17.20",
	}
	if got := fromPackages(pkgs); !reflect.DeepEqual(got, want) {
		t.Errorf("fromPackages() = %v, want %v", got, want)
	}
}

func TestPackageJSON_LockfileV3(t *testing.T) {
	repo := writeFiles(t, map[string]string{
		"package.json": manifest(1, 0),
		"package-lock.json": `{
  "lockfileVersion": 3,
  "packages": {
    "": {"name": "app", "dependencies": {"dep-00": "^1.0.0"}},
    "node_modules/dep-00": {"version": "1.4.2"},
    "node_modules/loose-envify": {"version": "1.4.0"}
  }
}`,
	})

	sum, err := (&PackageJSON{}).Read(context.Background(), repo, deps.Options{})
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]string{"dep-00": "1.4.2", "loose-envify": "1.4.0"}
	if got := decodeMap(t, sum.Group(deps.GroupJSAll)); !reflect.DeepEqual(got, want) {
		t.Errorf("js.all = %v, want %v", got, want)
	}
}

func TestPackageJSON_Name(t *testing.T) {
	if got := (&PackageJSON{}).Name(); got != "javascript" {
		t.Errorf("Name() = %q, want %q", got, "javascript")
	}
	if Ecosystem.New().Name() != Ecosystem.Name {
		t.Error("Ecosystem constructor and name disagree")
	}
}
