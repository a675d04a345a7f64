// Package health runs checks over a batch of repositories.
//
// # Overview
//
// A [Runner] executes its checks against every repository of a batch on a
// bounded worker pool. Each repository is independent; the only
// synchronization point is the end of the batch, because the report needs
// the key superset of all repositories before any row can be written:
//
//	r := &health.Runner{Checks: []checks.Check{&checks.Dependencies{}}}
//	batch, err := r.Run(ctx, []string{"/src/credentials", "/src/ecommerce"})
//	set, err := batch.Standardized(metadata.DefaultDelimiter)
//
// # Failure Policy
//
// A failing check (typically a PARSE_ERROR from a malformed manifest) is
// handled according to [Policy]:
//
//   - [PolicySkip]: the repository is logged and left out of the report
//   - [PolicyRecord]: the repository keeps its partial results plus an
//     "error" section with the failing check and message
//   - [PolicyAbort]: the batch is cancelled and Run returns the error
//
// # Ordering
//
// Outcomes are collected by input index, so the batch lists repositories
// in the order they were passed to Run regardless of completion order.
package health
