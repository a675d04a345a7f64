// Package report renders standardized health results as tables.
//
// # Columns
//
// Column order is resolved once per report by [Columns]: the keys listed in
// [Config.CheckOrder] come first, literally and in the given order, followed
// by every other key of the result set in lexicographic order. No key
// appears twice.
//
// The header row is "repo_name" followed by each column's alias from
// [Config.KeyAliases], or the raw key when it has no alias.
//
// # Rows
//
// One row per repository, in the set's insertion order. Cells are rendered
// by [FormatValue]: nil becomes an empty cell, booleans become True/False,
// and slices or maps are written as JSON.
//
// # Formats
//
//   - [WriteCSV]: the canonical report, RFC 4180 CSV
//   - [WriteTable]: the same rows as a bordered terminal table
//   - [WriteJSON]: one object per repository, keyed by column
//
// # Configuration
//
// [LoadConfig] reads check_order and key_aliases from a TOML or YAML file,
// chosen by extension:
//
//	check_order = ["dependencies.count", "setup_py.pypi_name"]
//
//	[key_aliases]
//	"dependencies.count" = "Dependencies"
package report
