package python

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/matzehuels/repohealth/pkg/deps"
	"github.com/matzehuels/repohealth/pkg/repofs"
)

var inlineCommentRE = regexp.MustCompile(` +#.*`)

// Requirements reads pip requirement files under requirements/.
type Requirements struct{}

func (r *Requirements) Name() string { return name }

func (r *Requirements) Applicable(repoPath string) bool {
	return repofs.IsDir(filepath.Join(repoPath, requirementsDir))
}

func (r *Requirements) Read(ctx context.Context, repoPath string, opts deps.Options) (*deps.Summary, error) {
	if !r.Applicable(repoPath) {
		return nil, nil
	}
	opts = opts.WithDefaults()

	files, err := requirementFiles(filepath.Join(repoPath, requirementsDir))
	if err != nil {
		return nil, err
	}

	var github, pypiAll []string
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		lines, err := opts.Files.Lines(f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f, err)
		}
		gh, pp := classify(lines)
		github = append(github, gh...)
		pypiAll = append(pypiAll, pp...)
	}

	prodFiles := productionFiles(files)
	if len(prodFiles) == 0 {
		opts.Logger("no production requirements file (%s) found in %s",
			strings.Join(productionPriority, ", "), repoPath)
	}

	var production []string
	for _, f := range prodFiles {
		lines, err := opts.Files.Lines(f)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f, err)
		}
		_, pp := classify(lines)
		production = append(production, pp...)
	}

	s := deps.NewSummary()
	s.Set(deps.GroupGithub, deps.NewListGroup(github))
	s.Set(deps.GroupPypiAll, deps.NewListGroup(pypiAll))
	s.Set(deps.GroupPypi, deps.NewListGroup(production))
	s.Count = s.Group(deps.GroupPypiAll).Count + s.Group(deps.GroupGithub).Count
	return s, nil
}

// requirementFiles returns every *.txt file below dir, excluding
// constraint-like files, in lexical order. A symlinked dir is resolved
// first; links below it are not followed.
func requirementFiles(dir string) ([]string, error) {
	root, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", dir, err)
	}
	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".txt") || isConstraints(d.Name()) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	return files, nil
}

func isConstraints(name string) bool {
	for _, suffix := range constraintSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// productionFiles picks the first name in productionPriority that at least
// one file carries, and returns all files with exactly that base name.
func productionFiles(files []string) []string {
	for _, name := range productionPriority {
		var matched []string
		for _, f := range files {
			if filepath.Base(f) == name {
				matched = append(matched, f)
			}
		}
		if len(matched) > 0 {
			return matched
		}
	}
	return nil
}

// cleanLine strips comments and the editable marker. It returns "" for
// lines that carry no requirement.
func cleanLine(line string) string {
	line = strings.TrimSpace(line)
	if line == "" || line[0] == '#' {
		return ""
	}
	line = inlineCommentRE.ReplaceAllString(line, "")
	line = strings.TrimPrefix(line, "-e ")
	return strings.TrimSpace(line)
}

// classify splits lines into VCS (git+) requirements and pinned (==) PyPI
// requirements. Anything else, such as bare names, ranges or -r includes,
// is dropped.
func classify(lines []string) (github, pypi []string) {
	for _, l := range lines {
		l = cleanLine(l)
		switch {
		case l == "":
		case strings.HasPrefix(l, "git+"):
			github = append(github, l)
		case strings.Contains(l, "=="):
			pypi = append(pypi, l)
		}
	}
	return github, pypi
}
