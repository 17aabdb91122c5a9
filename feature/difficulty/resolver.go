package difficulty

import (
	"strings"

	"diff-analyzer/core/registry"
	"diff-analyzer/core/utils"
)

// The five charted attributes.
const (
	AttrRarity              = "Rarity"
	AttrDifficultyRating    = "DifficultyRating"
	AttrSpawnAmountModifier = "SpawnAmountModifier"
	AttrEncounters          = "CanBeUsedInEncounters"
	AttrConstantPressure    = "CanBeUsedForConstantPressure"
)

// Display markers and defaults.
const (
	// markerMutated flags a value replaced by a dynamic expression.
	markerMutated = "Mutated"
	// baselineSuffix flags a value taken from a baseline registry.
	baselineSuffix = " (*)"
	// defaultNumeric is the fallback for the three numeric attributes.
	defaultNumeric = "N/A"
	// defaultFlag is the fallback for the two boolean attributes.
	defaultFlag = "False"

	originUnknown = "unknown"
)

// originTags classify a mod base enemy by its defining asset path.
var originTags = []struct {
	substr string
	tag    string
}{
	{"Elytras", "EEE"},
	{"Donnie", "DEA"},
	{"yinny", "MEV"},
}

// Resolver resolves effective attribute values and origin lineage for one
// difficulty document against the two baseline registries.
type Resolver struct {
	doc     *Document
	vanilla registry.Registry
	mod     registry.Registry
}

// NewResolver creates a Resolver over the given document and registries.
func NewResolver(doc *Document, vanilla, mod registry.Registry) *Resolver {
	return &Resolver{doc: doc, vanilla: vanilla, mod: mod}
}

// Attribute resolves the effective display value of one enemy attribute.
// Sources are consulted in strict priority order: the document's Enemies
// section, its EnemiesNoSync section, the vanilla baseline, the mod
// baseline, and finally the supplied fallback. Baseline values carry the
// " (*)" marker. A nested override value resolves to "Mutated": it has
// been programmatically altered and cannot be shown as a flat literal.
func (r *Resolver) Attribute(enemy, name, fallback string) string {
	if val, ok := r.doc.Override(enemy, name); ok {
		if _, nested := val.(map[string]any); nested {
			return markerMutated
		}
		return utils.DisplayValue(val)
	}

	if val, ok := r.vanilla.Attribute(enemy, name); ok {
		return utils.DisplayValue(val) + baselineSuffix
	}
	if val, ok := r.mod.Attribute(enemy, name); ok {
		return utils.DisplayValue(val) + baselineSuffix
	}

	return fallback
}

// Origin resolves the template-and-content-source lineage label of an enemy.
// The base template is the override's Base field (Enemies first, then
// EnemiesNoSync) or the descriptor itself. A vanilla base is labeled
// "{base} / Vanilla"; a mod base is labeled with the content-source tag of
// its defining asset path; a base found nowhere resolves to "unknown".
func (r *Resolver) Origin(enemy string) string {
	base := enemy
	if val, ok := r.doc.Override(enemy, "Base"); ok {
		if s, ok := val.(string); ok && s != "" {
			base = s
		}
	}

	if r.vanilla.Has(base) {
		return base + " / Vanilla"
	}

	if r.mod.Has(base) {
		tag := originUnknown
		if path, ok := r.mod.AssetPath(base); ok {
			tag = classifyAssetPath(path)
		}
		return base + " / " + tag
	}

	return originUnknown
}

// classifyAssetPath maps a defining asset path to its content-source tag by
// substring match, or "unknown" when no tag matches.
func classifyAssetPath(path string) string {
	for _, t := range originTags {
		if strings.Contains(path, t.substr) {
			return t.tag
		}
	}
	return originUnknown
}
