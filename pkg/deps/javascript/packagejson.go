package javascript

import (
	"context"
	"encoding/json"
	"path/filepath"

	"github.com/matzehuels/repohealth/pkg/deps"
	"github.com/matzehuels/repohealth/pkg/errors"
	"github.com/matzehuels/repohealth/pkg/repofs"
)

// PackageJSON reads package.json and, when present, package-lock.json.
type PackageJSON struct{}

func (p *PackageJSON) Name() string { return name }

func (p *PackageJSON) Applicable(repoPath string) bool {
	return repofs.Exists(filepath.Join(repoPath, manifestFile))
}

func (p *PackageJSON) Read(ctx context.Context, repoPath string, opts deps.Options) (*deps.Summary, error) {
	if !p.Applicable(repoPath) {
		return nil, nil
	}

	pkg, err := readManifest(filepath.Join(repoPath, manifestFile))
	if err != nil {
		return nil, err
	}
	locked, err := readLock(filepath.Join(repoPath, lockFile))
	if err != nil {
		return nil, err
	}

	s := deps.NewSummary()
	s.Set(deps.GroupJS, deps.NewMapGroup(pkg.Dependencies))
	s.Set(deps.GroupJSDev, deps.NewMapGroup(pkg.DevDependencies))
	s.Set(deps.GroupJSAll, deps.NewMapGroup(locked))
	s.Count = len(pkg.Dependencies) + len(pkg.DevDependencies)
	return s, nil
}

type packageFile struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

func readManifest(path string) (*packageFile, error) {
	text, ok, err := repofs.Content(path)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New(errors.ErrCodeFileNotFound, "%s disappeared", path)
	}
	var pkg packageFile
	if err := json.Unmarshal([]byte(text), &pkg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "%s", path)
	}
	return &pkg, nil
}
