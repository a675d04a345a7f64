// Package pkg provides the core libraries for Repohealth repository audits.
//
// # Overview
//
// Repohealth inspects checked-out repositories, extracts a normalized
// dependency inventory and packaging metadata from each one, and aggregates
// the per-repository results into a single tabular report.
//
// # Architecture
//
// The data flow through Repohealth:
//
//	Repository directories
//	         ↓
//	    [checks] package (dependencies, setup_py)
//	         ↓
//	    [health] package (worker pool, failure policy, batch)
//	         ↓
//	    [metadata] package (flatten + standardize)
//	         ↓
//	    [report] package (CSV / table / JSON)
//
// # Quick Start
//
//	runner := &health.Runner{
//	    Checks: []checks.Check{&checks.Dependencies{}, &checks.SetupPy{}},
//	}
//	batch, _ := runner.Run(ctx, []string{"src/credentials", "src/frontend-app-learning"})
//	set, _ := batch.Standardized(metadata.DefaultDelimiter)
//	cfg, _ := report.LoadConfig("report.toml")
//	report.WriteCSV(os.Stdout, set, cfg)
//
// # Main Packages
//
// [deps] - Dependency readers behind one interface, a registry of
// ecosystems and [deps.Aggregate], which merges every applicable reader
// into a summary that always carries the full group schema. Readers live in
// [deps/python] (pip requirement files) and [deps/javascript]
// (package.json and package-lock.json).
//
// [checks] - Health checks writing under their own results key.
//
// [health] - Concurrent batch runner with skip, record and abort policies.
//
// [metadata] - Flattening of nested results into dotted keys and alignment
// of all repositories to one key set.
//
// [report] - Column ordering and aliasing from a TOML or YAML config, and
// the CSV, table and JSON writers.
//
// [io] - Per-repository YAML result documents, so reports can be rebuilt
// without re-checking.
//
// [dashboard] - Read-only HTTP view of a report.
//
// [repofs] - File helpers and the cached line reader used by readers.
//
// [errors] - Coded errors shared by all packages.
//
// # Testing
//
//	go test ./...                # All tests
//	go test ./pkg/deps/...       # Specific package
//	go test -run Example ./pkg/  # Examples only
//
// [deps]: https://pkg.go.dev/github.com/matzehuels/repohealth/pkg/deps
// [deps/python]: https://pkg.go.dev/github.com/matzehuels/repohealth/pkg/deps/python
// [deps/javascript]: https://pkg.go.dev/github.com/matzehuels/repohealth/pkg/deps/javascript
// [deps.Aggregate]: https://pkg.go.dev/github.com/matzehuels/repohealth/pkg/deps#Aggregate
// [checks]: https://pkg.go.dev/github.com/matzehuels/repohealth/pkg/checks
// [health]: https://pkg.go.dev/github.com/matzehuels/repohealth/pkg/health
// [metadata]: https://pkg.go.dev/github.com/matzehuels/repohealth/pkg/metadata
// [report]: https://pkg.go.dev/github.com/matzehuels/repohealth/pkg/report
// [io]: https://pkg.go.dev/github.com/matzehuels/repohealth/pkg/io
// [dashboard]: https://pkg.go.dev/github.com/matzehuels/repohealth/pkg/dashboard
// [repofs]: https://pkg.go.dev/github.com/matzehuels/repohealth/pkg/repofs
// [errors]: https://pkg.go.dev/github.com/matzehuels/repohealth/pkg/errors
package pkg
