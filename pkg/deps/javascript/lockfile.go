package javascript

import (
	"encoding/json"
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/repohealth/pkg/errors"
	"github.com/matzehuels/repohealth/pkg/repofs"
)

const nodeModules = "node_modules/"

type lockData struct {
	LockfileVersion int                  `json:"lockfileVersion"`
	Dependencies    map[string]lockEntry `json:"dependencies"`
	Packages        map[string]lockEntry `json:"packages"`
}

type lockEntry struct {
	Version string `json:"version"`
}

// readLock returns locked package name -> resolved version. A missing or
// blank lockfile yields an empty map.
//
// Lockfile v1 lists packages under "dependencies". v2 keeps that section
// for compatibility; v3 only has "packages", keyed by install path such as
// "node_modules/a/node_modules/b". For those the shallowest install of a
// name wins.
func readLock(path string) (map[string]string, error) {
	text, ok, err := repofs.Content(path)
	if err != nil {
		return nil, err
	}
	if !ok || strings.TrimSpace(text) == "" {
		return map[string]string{}, nil
	}

	var lock lockData
	if err := json.Unmarshal([]byte(text), &lock); err != nil {
		return nil, errors.Wrap(errors.ErrCodeParse, err, "%s", path)
	}

	if lock.Dependencies != nil {
		out := make(map[string]string, len(lock.Dependencies))
		for name, e := range lock.Dependencies {
			out[name] = e.Version
		}
		return out, nil
	}
	return fromPackages(lock.Packages), nil
}

func fromPackages(pkgs map[string]lockEntry) map[string]string {
	out := make(map[string]string)
	depth := make(map[string]int)
	for _, key := range slices.Sorted(maps.Keys(pkgs)) {
		i := strings.LastIndex(key, nodeModules)
		if i < 0 {
			// Root project ("") and workspace links.
			continue
		}
		name := key[i+len(nodeModules):]
		d := strings.Count(key, nodeModules)
		if prev, seen := depth[name]; seen && prev <= d {
			continue
		}
		depth[name] = d
		out[name] = pkgs[key].Version
	}
	return out
}
