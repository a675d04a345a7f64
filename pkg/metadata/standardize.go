package metadata

import (
	"fmt"
)

// Standardize returns a new set in which every repository carries every key
// of set.Keys(). Keys a repository lacks are set to nil. The input set and
// its maps are not modified, and no map is shared between repositories.
func Standardize(set *ResultSet) *ResultSet {
	keys := set.Keys()
	out := NewResultSet()
	for _, name := range set.names {
		row := make(map[string]any, len(keys))
		for _, k := range keys {
			row[k] = nil
		}
		for k, v := range set.rows[name] {
			row[k] = v
		}
		out.Add(name, row)
	}
	return out
}

// FlattenAndStandardize flattens every result of nested with delim and
// standardizes the outcome. The first key collision aborts with an error
// naming the repository.
func FlattenAndStandardize(nested *ResultSet, delim string) (*ResultSet, error) {
	flat := NewResultSet()
	for _, name := range nested.names {
		row, err := Flatten(nested.rows[name], delim)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		flat.Add(name, row)
	}
	return Standardize(flat), nil
}
