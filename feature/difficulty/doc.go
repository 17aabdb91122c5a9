// Package difficulty implements the difficulty file analysis pipeline.
//
// A difficulty file is a hand-authored JSON-like document describing
// enemy-spawn rules: pool mutations (add/remove lists layered over the
// fixed vanilla pools) and per-enemy attribute overrides. The pipeline is:
//
//	raw text -> Repair -> Parse -> ClassifyPools -> Resolver -> chart rows
//
// Repair fixes the one tolerated authoring defect (multi-line Description
// values). ClassifyPools applies add/remove mutations over injected
// baseline pool sets and computes the unknown pool. Resolver answers
// per-attribute and origin lookups with a strict source priority, marking
// baseline-sourced values with " (*)" and dynamically-computed values as
// "Mutated". Service assembles one row per (enemy, pool) membership and
// sorts them with field-type-aware comparison.
//
// Everything here is pure in-memory computation over already-loaded data;
// file access lives with the callers.
package difficulty
