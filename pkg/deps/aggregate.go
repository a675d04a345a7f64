package deps

import (
	"context"
	"fmt"
)

// Aggregate runs every reader of reg over repoPath and merges the results
// over the registry's default schema.
//
// Readers that report the repository as not applicable contribute nothing,
// so a repository with no known ecosystem yields the all-zero schema rather
// than nil. The first reader error aborts aggregation.
func Aggregate(ctx context.Context, repoPath string, reg *Registry, opts Options) (*Summary, error) {
	opts = opts.WithDefaults()
	out := reg.DefaultSummary()

	for _, r := range reg.Readers() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		res, err := r.Read(ctx, repoPath, opts)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.Name(), err)
		}
		out.Merge(res)
	}
	return out, nil
}
