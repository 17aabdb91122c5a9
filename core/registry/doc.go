// Package registry provides read-only access to the baseline enemy
// descriptor files.
//
// Two registries exist per run: the vanilla registry and the mod registry.
// Each is a flat JSON mapping from enemy descriptor to attribute values;
// mod entries may additionally carry a nested EnemyClass structure naming
// the asset the enemy was defined in.
//
// Lookups use explicit presence flags so that a baseline value of 0 or
// false is distinguishable from a missing attribute.
package registry
