// Package python reads pip requirement files.
//
// # Overview
//
// A repository is a Python repository when it has a requirements/
// directory. Every *.txt file below it is scanned, except files whose
// names end in constraints.txt or pins.txt.
//
// Each line is cleaned (comments, inline " #" comments and the "-e "
// editable marker removed) and classified:
//
//   - github: lines starting with git+
//   - pypi: any other line containing ==
//
// Unpinned names and "-r other.txt" includes are ignored.
//
// # Production subset
//
// The pypi group only counts requirements from the production file(s):
// the first of production.txt, base.txt, development.txt, dev.txt that
// exists anywhere below requirements/. All files with that exact name are
// used. When none exists the miss is reported through deps.Options.Logger
// and the production subset is empty.
//
//	sum, err := (&python.Requirements{}).Read(ctx, repo, deps.Options{})
//	fmt.Println(sum.Group(deps.GroupPypi).Count)
package python
