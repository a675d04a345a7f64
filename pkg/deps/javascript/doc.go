// Package javascript reads npm dependency inventories.
//
// # Overview
//
// This package implements [deps.Reader] for Node.js repositories. A
// repository is applicable when package.json exists at its root.
//
//   - js: the "dependencies" object of package.json
//   - js.dev: the "devDependencies" object of package.json
//   - js.all: every package pinned in package-lock.json
//
// Each group lists its packages as a JSON object of name to version. The
// total count is the number of dependencies plus devDependencies.
//
// # Lockfiles
//
// Lockfile version 1 and 2 expose a top-level "dependencies" object, which
// is used directly. Version 3 only carries "packages", keyed by install
// path; the shallowest install of each package name is reported.
//
// A missing or blank lockfile leaves js.all empty. A lockfile with content
// that is not valid JSON fails the read with PARSE_ERROR, as does any
// invalid package.json, including an empty one.
//
// [deps.Reader]: github.com/matzehuels/repohealth/pkg/deps.Reader
package javascript
