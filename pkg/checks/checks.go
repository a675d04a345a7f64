// Package checks defines repository health checks and the result shape they
// fill.
//
// A [Check] inspects one checked-out repository and writes its findings
// under its own key of a [Results] value. Results of all checks for one
// repository form the nested mapping that package metadata flattens:
//
//	{"dependencies": {"count": 3, ...}, "setup_py": {"pypi_name": "..."}}
//
// Checks that talk to remote services (branch counts, README link checks,
// CI configuration) live outside this module; they plug in by
// implementing [Check].
package checks

import (
	"context"
	"maps"
	"slices"
)

// Results holds the findings of every check run against one repository,
// keyed by check key.
type Results map[string]map[string]any

// Section returns the findings map for key, creating it if needed.
func (r Results) Section(key string) map[string]any {
	s, ok := r[key]
	if !ok {
		s = make(map[string]any)
		r[key] = s
	}
	return s
}

// Nested converts r to the generic nested shape accepted by
// metadata.Flatten. The section maps are shared, not copied.
func (r Results) Nested() map[string]any {
	out := make(map[string]any, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Keys returns the check keys present in r, sorted.
func (r Results) Keys() []string {
	return slices.Sorted(maps.Keys(r))
}

// Check is a single health check.
type Check interface {
	// Key is the top-level results key the check writes under.
	Key() string
	// Run inspects repoPath and records findings in results.
	Run(ctx context.Context, repoPath string, results Results) error
}

// Run executes checks in order against repoPath and returns the combined
// results. It stops at the first failing check and returns that check
// together with the error; the results gathered so far are returned too.
func Run(ctx context.Context, repoPath string, checks []Check) (Results, Check, error) {
	results := make(Results)
	for _, c := range checks {
		if err := ctx.Err(); err != nil {
			return results, c, err
		}
		if err := c.Run(ctx, repoPath, results); err != nil {
			return results, c, err
		}
	}
	return results, nil, nil
}
