package registry

import (
	"encoding/json"
	"fmt"
	"os"
)

// Registry is an immutable mapping from enemy descriptor to its baseline
// attribute values. It is loaded once per run and only ever read afterwards.
type Registry map[string]map[string]any

// Load reads and parses one baseline descriptor file. The file must be a
// flat JSON object keyed by enemy descriptor. Read and parse failures are
// fatal for the run and propagate to the caller.
func Load(path string) (Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read descriptor file %s: %w", path, err)
	}

	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("failed to parse descriptor file %s: %w", path, err)
	}

	return reg, nil
}

// Has reports whether the descriptor exists in the registry.
func (r Registry) Has(descriptor string) bool {
	_, ok := r[descriptor]
	return ok
}

// Attribute returns the baseline value of one attribute together with an
// explicit presence flag. A stored zero or false counts as present; only a
// missing key or a JSON null reports absent.
func (r Registry) Attribute(descriptor, name string) (any, bool) {
	entry, ok := r[descriptor]
	if !ok {
		return nil, false
	}
	val, ok := entry[name]
	if !ok || val == nil {
		return nil, false
	}
	return val, true
}

// AssetPath returns the defining asset path of a mod descriptor, read from
// the nested EnemyClass.AssetPathName structure. Vanilla entries carry no
// such structure and report absent.
func (r Registry) AssetPath(descriptor string) (string, bool) {
	entry, ok := r[descriptor]
	if !ok {
		return "", false
	}
	class, ok := entry["EnemyClass"].(map[string]any)
	if !ok {
		return "", false
	}
	path, ok := class["AssetPathName"].(string)
	if !ok || path == "" {
		return "", false
	}
	return path, true
}
