package checks

import (
	"context"
	"path/filepath"
	"regexp"
	"slices"

	"github.com/matzehuels/repohealth/pkg/repofs"
)

// SetupPyKey is the results key of the [SetupPy] check.
const SetupPyKey = "setup_py"

var (
	setupPyNameRE  = regexp.MustCompile(`(?m)^\s+name\s?=\s?['"]([\w-]+)['"],`)
	setupCfgNameRE = regexp.MustCompile(`(?m)^name\s?=\s?([\w-]+)`)

	setupPyURLRE  = regexp.MustCompile(`(?m)^\s*url\s*=\s*['"]([^'"]+)['"]`)
	setupCfgURLRE = regexp.MustCompile(`(?m)^url\s*=\s*(\S+)`)

	setupPyProjectURLsRE  = regexp.MustCompile(`(?ms)^\s*project_urls\s*=\s*({[^}]+})`)
	setupCfgProjectURLsRE = regexp.MustCompile(`(?ms)^project_urls\s*=\s*(.*?)(?:^\S|^$)`)

	classifierRE = regexp.MustCompile(`Programming Language :: Python :: (\d+\.\d+)`)
)

// SetupPy gathers packaging metadata from setup.py and setup.cfg.
//
// pypi_name, repo_url and project_urls are recorded only when exactly one
// candidate is found across both files; ambiguous values are logged and
// left out. python_versions lists the X.Y versions named in trove
// classifiers, in order of first appearance.
type SetupPy struct {
	Logger func(string, ...any) // Sink for ambiguous metadata (optional)
}

func (s *SetupPy) Key() string { return SetupPyKey }

func (s *SetupPy) Run(ctx context.Context, repoPath string, results Results) error {
	py, _, err := repofs.Content(filepath.Join(repoPath, "setup.py"))
	if err != nil {
		return err
	}
	cfg, _, err := repofs.Content(filepath.Join(repoPath, "setup.cfg"))
	if err != nil {
		return err
	}

	section := results.Section(SetupPyKey)
	s.single(section, repoPath, "pypi_name", captures(setupPyNameRE, py), captures(setupCfgNameRE, cfg))
	s.single(section, repoPath, "repo_url", captures(setupPyURLRE, py), captures(setupCfgURLRE, cfg))
	s.single(section, repoPath, "project_urls", captures(setupPyProjectURLsRE, py), captures(setupCfgProjectURLsRE, cfg))

	versions := pythonVersions(py + "\n" + cfg)
	section["python_versions"] = versions
	section["py38_classifiers"] = slices.Contains(versions, "3.8")
	return nil
}

func (s *SetupPy) single(section map[string]any, repoPath, key string, py, cfg []string) {
	found := append(py, cfg...)
	switch len(found) {
	case 0:
	case 1:
		section[key] = found[0]
	default:
		if s.Logger != nil {
			s.Logger("%s: %d candidates for %s in setup.py/setup.cfg, skipping", repoPath, len(found), key)
		}
	}
}

func captures(re *regexp.Regexp, text string) []string {
	var out []string
	for _, m := range re.FindAllStringSubmatch(text, -1) {
		out = append(out, m[1])
	}
	return out
}

func pythonVersions(text string) []string {
	versions := []string{}
	for _, v := range captures(classifierRE, text) {
		if !slices.Contains(versions, v) {
			versions = append(versions, v)
		}
	}
	return versions
}
