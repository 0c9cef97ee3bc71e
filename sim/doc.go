// Package sim provides the discrete-event simulation kernel for passenger
// congestion through an airport departure hall.
//
// # Reading Guide
//
// Start with these files to understand the kernel:
//   - simulator.go: the virtual clock, event loop and horizon policy
//   - process.go: the per-group station-visit state machine
//   - station.go: the capacity-limited FIFO resource with instrumentation
//
// # Model
//
// A demand schedule ([]DemandSlot) is turned into passenger groups by the
// arrival generator (arrival.go, group.go); arrival timing comes from a
// truncated Student's t sampler and service durations from floor-clamped
// normal samplers (sampler.go). The scheduler spawns one process per group
// plus a periodic position probe; a process suspends only on Sleep or
// Station.Acquire and is resumed exactly once per suspension. Events at the
// same virtual instant execute in enqueue order (event_heap.go).
//
// Stations emit event-sourced queue histories, the area tracker (area.go)
// emits zone occupancy history, and Run returns everything in a single
// SimulationResult (result.go). Aggregation lives in sim/stats and
// serialization in sim/export; neither contains scheduling logic.
//
// All randomness flows through a per-subsystem PartitionedRNG (rng.go)
// seeded once from the configuration, so identical seed and config produce
// bit-identical results.
package sim
