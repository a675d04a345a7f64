// Package deps extracts normalized dependency inventories from repositories.
//
// # Overview
//
// Each supported packaging ecosystem provides a [Reader] that inspects a
// checked-out repository, decides whether the ecosystem applies, and emits
// a [Summary]: a total count plus named [Group] entries, each holding a
// count and a serialized listing of dependency identifiers.
//
//   - Python: requirements/*.txt files ([python])
//   - JavaScript: package.json and package-lock.json ([javascript])
//
// # Registry
//
// Readers are registered explicitly through an [Ecosystem] value in a
// [Registry]. The registry fixes execution order and provides the default
// schema: every group any ecosystem can emit, pre-populated at zero.
// The canonical registry lives in [ecosystems] to avoid an import cycle.
//
//	reg := ecosystems.Registry()
//	sum, err := deps.Aggregate(ctx, "/src/credentials", reg, deps.Options{
//	    Logger: logger.Errorf,
//	})
//
// # Aggregation
//
// [Aggregate] runs every reader in order and merges their groups over the
// default schema, summing their counts. Groups are disjoint between
// ecosystems, so the merge result does not depend on order, and running it
// twice on an unchanged repository yields identical output.
//
// # Groups
//
// Listings are deduplicated by exact string equality after line cleaning.
// Two pins of the same package with different versions are two entries.
// Python groups serialize as sorted JSON arrays; JavaScript groups
// serialize as JSON objects mapping package name to version.
//
// # Errors
//
// Missing optional inputs (lockfiles, constraint files) are not errors.
// A manifest that passed the applicability check but cannot be parsed
// produces an error with code PARSE_ERROR from [errors].
//
// [python]: github.com/matzehuels/repohealth/pkg/deps/python
// [javascript]: github.com/matzehuels/repohealth/pkg/deps/javascript
// [ecosystems]: github.com/matzehuels/repohealth/pkg/deps/ecosystems
// [errors]: github.com/matzehuels/repohealth/pkg/errors
package deps
