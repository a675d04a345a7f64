package checks

import (
	"context"

	"github.com/matzehuels/repohealth/pkg/deps"
	"github.com/matzehuels/repohealth/pkg/deps/ecosystems"
)

// DependenciesKey is the results key of the [Dependencies] check.
const DependenciesKey = "dependencies"

// Dependencies aggregates every registered dependency reader.
type Dependencies struct {
	Registry *deps.Registry // Readers to run (default: ecosystems.Registry())
	Options  deps.Options
}

func (d *Dependencies) Key() string { return DependenciesKey }

func (d *Dependencies) Run(ctx context.Context, repoPath string, results Results) error {
	reg := d.Registry
	if reg == nil {
		reg = ecosystems.Registry()
	}
	sum, err := deps.Aggregate(ctx, repoPath, reg, d.Options)
	if err != nil {
		return err
	}
	section := results.Section(DependenciesKey)
	for k, v := range sum.Metadata() {
		section[k] = v
	}
	return nil
}
