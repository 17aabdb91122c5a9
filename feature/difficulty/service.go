package difficulty

import (
	"fmt"
	"sort"
	"strings"

	"diff-analyzer/core/registry"

	"go.uber.org/zap"
)

// Service builds difficulty charts from parsed documents and the baseline
// registries. It holds no per-document state; one Service can chart any
// number of documents.
type Service struct {
	log     *zap.Logger
	vanilla registry.Registry
	mod     registry.Registry
	pools   PoolConfig
}

// NewService creates a chart service over the given registries and baseline
// pool configuration.
func NewService(log *zap.Logger, vanilla, mod registry.Registry, pools PoolConfig) *Service {
	return &Service{log: log, vanilla: vanilla, mod: mod, pools: pools}
}

// ChartOptions control row filtering and ordering.
type ChartOptions struct {
	// SortBy is the column to order the chart by.
	SortBy string
	// FilterUnknown drops rows of the unknown pool.
	FilterUnknown bool
}

// chartPoolOrder fixes the order pools are walked during assembly.
var chartPoolOrder = []string{PoolEnemy, PoolStationary, PoolUnknown}

// BuildChart produces the ordered chart rows for one document: one row per
// (enemy, pool) membership, attributes resolved with baseline fallbacks,
// unknown rows optionally dropped, and the result stably sorted by the
// chosen field.
func (s *Service) BuildChart(doc *Document, opts ChartOptions) ([]Row, error) {
	if opts.SortBy == "" {
		opts.SortBy = DefaultSortField
	}
	if !ValidSortField(opts.SortBy) {
		return nil, fmt.Errorf("unsupported sort field %q (accepted: %s)",
			opts.SortBy, strings.Join(SortFields(), ", "))
	}

	pools := ClassifyPools(doc, s.pools)
	resolver := NewResolver(doc, s.vanilla, s.mod)

	var rows []Row
	for _, pool := range chartPoolOrder {
		if pool == PoolUnknown && opts.FilterUnknown {
			continue
		}
		for _, enemy := range sortedMembers(pools[pool]) {
			rows = append(rows, Row{
				"Enemy":               enemy,
				"Base/Origin":         resolver.Origin(enemy),
				"Rarity":              resolver.Attribute(enemy, AttrRarity, defaultNumeric),
				"DifficultyRating":    resolver.Attribute(enemy, AttrDifficultyRating, defaultNumeric),
				"SpawnAmountModifier": resolver.Attribute(enemy, AttrSpawnAmountModifier, defaultNumeric),
				"Encounters":          resolver.Attribute(enemy, AttrEncounters, defaultFlag),
				"ConstantPressure":    resolver.Attribute(enemy, AttrConstantPressure, defaultFlag),
				"Pool":                pool,
			})
		}
	}

	SortRows(rows, opts.SortBy)

	s.log.Debug("chart built",
		zap.String("document", doc.Name),
		zap.String("sort_by", opts.SortBy),
		zap.Bool("filter_unknown", opts.FilterUnknown),
		zap.Int("rows", len(rows)),
	)

	return rows, nil
}

// sortedMembers walks a pool in sorted descriptor order so output is
// reproducible across runs.
func sortedMembers(pool map[string]struct{}) []string {
	members := make([]string, 0, len(pool))
	for desc := range pool {
		members = append(members, desc)
	}
	sort.Strings(members)
	return members
}
