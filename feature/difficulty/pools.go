package difficulty

import "strings"

// Names of the three logical pools in the chart.
const (
	PoolEnemy      = "enemy_pool"
	PoolStationary = "stationary_pool"
	PoolUnknown    = "unknown"
)

// generalPoolKeys are the sub-pool keys whose mutations all feed the
// general pool, applied in this order.
var generalPoolKeys = []string{"EnemyPool", "DisruptiveEnemies", "SpecialEnemies", "CommonEnemies"}

// stationaryPoolKey is the only sub-pool key mutating the stationary pool.
const stationaryPoolKey = "StationaryPool"

// PoolConfig carries the immutable baseline membership of the two fixed
// pools. It is passed into classification explicitly so synthetic baselines
// can be used in tests.
type PoolConfig struct {
	// Common is the baseline membership of the general spawn pool.
	Common []string
	// Stationary is the baseline membership of the fixed-position pool.
	Stationary []string
}

// DefaultPoolConfig returns the vanilla baseline pool membership.
func DefaultPoolConfig() PoolConfig {
	return PoolConfig{
		Common: []string{
			"ED_Spider_Grunt",
			"ED_Spider_Tank",
			"ED_Spider_ShieldTank",
			"ED_Spider_RapidShooter",
			"ED_Spider_Buffer",
			"ED_Spider_ExploderTank",
			"ED_Spider_Stinger",
			"ED_Woodlouse",
			"ED_Grabber",
			"ED_Bomber",
			"ED_Spider_Swarmer",
			"ED_Spider_Exploder",
			"ED_Spider_Spitter",
			"ED_Spider_Shooter",
			"ED_Spider_Lobber",
			"ED_Mactera_Shooter_Normal",
			"ED_Mactera_TripleShooter",
			"ED_Spider_Stalker",
		},
		Stationary: []string{
			"ED_ShootingPlant",
			"ED_CaveLeech",
			"ED_TentaclePlant",
			"ED_BarrageInfector",
			"ED_JellyBreeder",
			"ED_SpiderSpawner",
		},
	}
}

// ClassifyPools computes the final membership of the three logical pools.
//
// The general pool starts from the baseline common set and applies the
// add/remove mutations of each general sub-pool key cumulatively; the
// stationary pool does the same with only the StationaryPool key. Within
// one mutation pass removal is applied after the union, so a descriptor
// listed in both add and remove ends up absent. The unknown pool is every
// descriptor in the document's override key set that landed in neither
// fixed pool.
//
// A descriptor may legitimately be a member of both fixed pools; callers
// emit one chart row per membership.
func ClassifyPools(doc *Document, cfg PoolConfig) map[string]map[string]struct{} {
	common := toSet(cfg.Common)
	for _, key := range generalPoolKeys {
		add, remove := doc.poolMutations(key)
		applyMutation(common, add, remove)
	}

	stationary := toSet(cfg.Stationary)
	add, remove := doc.poolMutations(stationaryPoolKey)
	applyMutation(stationary, add, remove)

	unknown := make(map[string]struct{})
	for desc := range doc.OverrideKeys() {
		if _, ok := common[desc]; ok {
			continue
		}
		if _, ok := stationary[desc]; ok {
			continue
		}
		unknown[desc] = struct{}{}
	}

	return map[string]map[string]struct{}{
		PoolEnemy:      common,
		PoolStationary: stationary,
		PoolUnknown:    unknown,
	}
}

// poolMutations extracts the add and remove descriptor lists of one pool
// mutation spec. Key casing is normalized in a single pass, so add/Add/ADD
// (and any other casing) all match. Non-string list entries are ignored.
func (d *Document) poolMutations(pool string) (add, remove []string) {
	spec, ok := d.Pools[pool]
	if !ok {
		return nil, nil
	}

	for key, val := range spec {
		var target *[]string
		switch strings.ToLower(key) {
		case "add":
			target = &add
		case "remove":
			target = &remove
		default:
			continue
		}

		list, ok := val.([]any)
		if !ok {
			continue
		}
		for _, entry := range list {
			if desc, ok := entry.(string); ok {
				*target = append(*target, desc)
			}
		}
	}

	return add, remove
}

// applyMutation unions additions into the set and then subtracts removals.
// Removal wins when the same descriptor appears in both lists.
func applyMutation(set map[string]struct{}, add, remove []string) {
	for _, desc := range add {
		set[desc] = struct{}{}
	}
	for _, desc := range remove {
		delete(set, desc)
	}
}

func toSet(descriptors []string) map[string]struct{} {
	set := make(map[string]struct{}, len(descriptors))
	for _, desc := range descriptors {
		set[desc] = struct{}{}
	}
	return set
}
