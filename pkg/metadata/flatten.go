package metadata

import (
	"maps"
	"slices"

	"github.com/matzehuels/repohealth/pkg/errors"
)

// DefaultDelimiter joins parent and child keys.
const DefaultDelimiter = "."

// Flatten collapses nested into a single-level mapping whose keys are the
// paths to each leaf joined by delim. An empty delim uses
// [DefaultDelimiter]. Empty nested maps contribute no keys.
//
// The input is not modified. Leaf values are shared with the input, not
// copied.
func Flatten(nested map[string]any, delim string) (map[string]any, error) {
	if delim == "" {
		delim = DefaultDelimiter
	}
	out := make(map[string]any, len(nested))
	if err := flattenInto(out, "", nested, delim); err != nil {
		return nil, err
	}
	return out, nil
}

func flattenInto(out map[string]any, prefix string, m map[string]any, delim string) error {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		key := k
		if prefix != "" {
			key = prefix + delim + k
		}
		if child, ok := m[k].(map[string]any); ok {
			if err := flattenInto(out, key, child, delim); err != nil {
				return err
			}
			continue
		}
		if _, dup := out[key]; dup {
			return errors.New(errors.ErrCodeKeyCollision, "key %q produced more than once", key)
		}
		out[key] = m[k]
	}
	return nil
}
