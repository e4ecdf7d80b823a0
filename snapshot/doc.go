// Package snapshot checkpoints a network's conserved arrays to Redis so a
// long simulation can persist the susceptible state between runs (or share
// it across processes) without touching the numeric core.
//
// Layout: one binary string value per array under
//
//	demonet:<run>:nodes:play      — Nodes.PlaySuscept
//	demonet:<run>:nodes:save      — Nodes.SavePlaySuscept
//	demonet:<run>:links:weight    — Links.Weight
//	demonet:<run>:links:suscept   — Links.Suscept
//	demonet:<run>:links:ifrom     — Links.IFrom
//
// Arrays are encoded little-endian, 8 bytes per element, sentinel index 0
// included, so a Load restores bit-identical float64 counts. Load refuses a
// stored shape that differs from the target network (ErrShapeMismatch)
// rather than reallocating: array lengths are owned by the collections.
package snapshot
