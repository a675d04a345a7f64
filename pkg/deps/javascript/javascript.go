package javascript

import (
	"github.com/matzehuels/repohealth/pkg/deps"
)

const name = "javascript"

// Ecosystem registers the npm manifest reader.
var Ecosystem = &deps.Ecosystem{
	Name:   name,
	Groups: []string{deps.GroupJS, deps.GroupJSDev, deps.GroupJSAll},
	New:    func() deps.Reader { return &PackageJSON{} },
}

const (
	manifestFile = "package.json"
	lockFile     = "package-lock.json"
)
