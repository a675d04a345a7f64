// Package ecosystems provides the complete list of supported dependency
// ecosystems.
//
// This package exists to break import cycles: the individual ecosystem
// packages (python, javascript) import pkg/deps, so pkg/deps cannot import
// them back. Consumers that need the full registry import this package.
//
// Usage:
//
//	reg := ecosystems.Registry()
//	sum, err := deps.Aggregate(ctx, repoPath, reg, deps.Options{})
package ecosystems

import (
	"github.com/matzehuels/repohealth/pkg/deps"
	"github.com/matzehuels/repohealth/pkg/deps/javascript"
	"github.com/matzehuels/repohealth/pkg/deps/python"
)

// All is the canonical list of supported ecosystems, in execution order.
var All = []*deps.Ecosystem{
	python.Ecosystem,
	javascript.Ecosystem,
}

// Registry returns a fresh registry holding every ecosystem in All.
func Registry() *deps.Registry {
	reg, err := deps.NewRegistry(All...)
	if err != nil {
		panic(err)
	}
	return reg
}

// Find returns the ecosystem with the given name, or nil if not found.
func Find(name string) *deps.Ecosystem {
	for _, e := range All {
		if e.Name == name {
			return e
		}
	}
	return nil
}
