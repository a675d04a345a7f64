package metadata

import (
	"maps"
	"slices"
)

// ResultSet maps repository names to result mappings, preserving the
// order in which repositories were added. The zero value is ready to use.
type ResultSet struct {
	names []string
	rows  map[string]map[string]any
}

// NewResultSet creates an empty set.
func NewResultSet() *ResultSet {
	return &ResultSet{rows: make(map[string]map[string]any)}
}

// Add stores result under name. Re-adding a name replaces its result but
// keeps its original position.
func (s *ResultSet) Add(name string, result map[string]any) {
	if s.rows == nil {
		s.rows = make(map[string]map[string]any)
	}
	if _, ok := s.rows[name]; !ok {
		s.names = append(s.names, name)
	}
	s.rows[name] = result
}

// Get returns the result stored under name.
func (s *ResultSet) Get(name string) (map[string]any, bool) {
	r, ok := s.rows[name]
	return r, ok
}

// Names returns repository names in insertion order.
func (s *ResultSet) Names() []string {
	return slices.Clone(s.names)
}

// Len returns the number of repositories.
func (s *ResultSet) Len() int { return len(s.names) }

// Keys returns the union of keys across all results, sorted.
func (s *ResultSet) Keys() []string {
	set := make(map[string]struct{})
	for _, r := range s.rows {
		for k := range r {
			set[k] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(set))
}

// Sorted returns a copy of s with repositories in lexicographic order.
// Result maps are shared with s.
func (s *ResultSet) Sorted() *ResultSet {
	out := NewResultSet()
	for _, name := range slices.Sorted(slices.Values(s.names)) {
		out.Add(name, s.rows[name])
	}
	return out
}
