package python

import (
	"github.com/matzehuels/repohealth/pkg/deps"
)

// Ecosystem registers the pip requirements reader.
var Ecosystem = &deps.Ecosystem{
	Name:   name,
	Groups: []string{deps.GroupGithub, deps.GroupPypiAll, deps.GroupPypi},
	New:    func() deps.Reader { return &Requirements{} },
}

const name = "python"

// requirementsDir is the directory whose presence marks a Python repository.
const requirementsDir = "requirements"

// productionPriority lists requirement file names in the order they are
// trusted to describe runtime dependencies. Services ship production.txt
// and base.txt, libraries usually only base.txt.
var productionPriority = []string{"production.txt", "base.txt", "development.txt", "dev.txt"}

// constraintSuffixes mark files that pin versions without declaring
// dependencies; they are excluded from every count.
var constraintSuffixes = []string{"constraints.txt", "pins.txt"}
