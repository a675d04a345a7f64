// Package metadata flattens and aligns per-repository check results.
//
// # Overview
//
// Checks produce arbitrarily nested results for every repository:
//
//	{"dependencies": {"count": 3, "pypi": {"count": 2, "list": "[...]"}}}
//
// Before results from many repositories can be tabulated they go through
// two steps:
//
//   - [Flatten] joins nested keys with a delimiter, producing one level:
//     {"dependencies.count": 3, "dependencies.pypi.count": 2, ...}
//   - [Standardize] gives every repository the same key set, the union of
//     all keys seen, filling gaps with nil.
//
// [FlattenAndStandardize] runs both over a whole [ResultSet].
//
// # Values
//
// Only map[string]any values are descended into. Slices, strings, numbers,
// booleans and nil are leaves and are kept as-is. Results decoded from JSON
// or YAML already have this shape.
//
// # Key Collisions
//
// A nested branch can produce a key that another branch also produces
// literally, for example {"a": {"b": 1}, "a.b": 2}. Flatten rejects this
// with KEY_COLLISION instead of letting one value overwrite the other.
//
// # Ordering
//
// A [ResultSet] keeps repositories in insertion order. Nothing in this
// package sorts repositories; callers wanting a stable order sort before
// adding.
package metadata
