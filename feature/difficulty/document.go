package difficulty

import (
	"encoding/json"
	"fmt"
)

// Overrides maps an enemy descriptor to its override record.
type Overrides map[string]map[string]any

// Document is the parsed difficulty file. Construction is tolerant: members
// with an unexpected shape are dropped rather than failing the parse, since
// difficulty files are hand-authored and frequently sloppy.
type Document struct {
	// Name is the display label for the chart header.
	Name string
	// Pools maps pool name to its raw mutation spec.
	Pools map[string]map[string]any

	enemies          Overrides
	enemiesNoSync    Overrides
	hasEnemies       bool
	hasEnemiesNoSync bool
}

// Parse builds a Document from difficulty file text. The text must already
// be valid JSON; run Repair on it first if it may carry the multi-line
// description defect.
func Parse(data []byte) (*Document, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse difficulty file: %w", err)
	}

	doc := &Document{
		Name:  "Unknown",
		Pools: make(map[string]map[string]any),
	}

	if name, ok := raw["Name"].(string); ok && name != "" {
		doc.Name = name
	}

	if pools, ok := raw["Pools"].(map[string]any); ok {
		for pool, spec := range pools {
			if m, ok := spec.(map[string]any); ok {
				doc.Pools[pool] = m
			}
		}
	}

	doc.enemies, doc.hasEnemies = coerceOverrides(raw["Enemies"])
	doc.enemiesNoSync, doc.hasEnemiesNoSync = coerceOverrides(raw["EnemiesNoSync"])

	return doc, nil
}

// coerceOverrides converts a raw enemy section into an Overrides map.
// A descriptor with a malformed (non-object) record is kept with an empty
// record: it still counts as mentioned for pool classification.
func coerceOverrides(raw any) (Overrides, bool) {
	section, ok := raw.(map[string]any)
	if !ok {
		return nil, false
	}

	out := make(Overrides, len(section))
	for desc, rec := range section {
		m, ok := rec.(map[string]any)
		if !ok {
			m = map[string]any{}
		}
		out[desc] = m
	}
	return out, true
}

// Override returns the override value of one enemy attribute, consulting the
// Enemies section first and EnemiesNoSync as fallback. Presence is explicit:
// a stored 0 or false wins over any baseline, and only a missing key or a
// JSON null reports absent.
func (d *Document) Override(enemy, attribute string) (any, bool) {
	for _, section := range []Overrides{d.enemies, d.enemiesNoSync} {
		rec, ok := section[enemy]
		if !ok {
			continue
		}
		val, ok := rec[attribute]
		if !ok || val == nil {
			continue
		}
		return val, true
	}
	return nil, false
}

// OverrideKeys returns the descriptors of the section that supplies base
// enemy membership: Enemies if present, else EnemiesNoSync, else none.
func (d *Document) OverrideKeys() map[string]struct{} {
	var section Overrides
	switch {
	case d.hasEnemies:
		section = d.enemies
	case d.hasEnemiesNoSync:
		section = d.enemiesNoSync
	default:
		return map[string]struct{}{}
	}

	keys := make(map[string]struct{}, len(section))
	for desc := range section {
		keys[desc] = struct{}{}
	}
	return keys
}
