package sim

import "github.com/sirupsen/logrus"

// Event defines the interface for all simulation events.
// Each event has a Timestamp (seconds of virtual time) and an Execute
// method that advances simulation state when invoked.
type Event interface {
	Timestamp() float64
	Execute(*Simulator)
}

// ArrivalEvent spawns a passenger group's process at its arrival time.
type ArrivalEvent struct {
	time  float64
	Group *PassengerGroup
}

// Timestamp returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Timestamp() float64 {
	return e.time
}

// Execute registers the group as active and starts its station sequence.
func (e *ArrivalEvent) Execute(sim *Simulator) {
	logrus.Debugf("<< Arrival: group %d (size %d) at %.1fs", e.Group.ID, e.Group.Size, e.time)
	sim.startGroup(e.Group, e.time)
}

// ResumeEvent wakes a suspended process: the continuation captured at the
// suspension point runs once, at the event's virtual time.
type ResumeEvent struct {
	time   float64
	resume func(now float64)
}

// Timestamp returns the scheduled wake-up time.
func (e *ResumeEvent) Timestamp() float64 {
	return e.time
}

// Execute runs the suspended continuation.
func (e *ResumeEvent) Execute(sim *Simulator) {
	e.resume(e.time)
}

// ProbeEvent is the periodic position probe: it snapshots every active
// group's last-known node, then reschedules itself one sample interval
// later. The horizon check in the main loop terminates the chain.
type ProbeEvent struct {
	time float64
}

// Timestamp returns the scheduled probe time.
func (e *ProbeEvent) Timestamp() float64 {
	return e.time
}

// Execute records a position snapshot and schedules the next probe.
func (e *ProbeEvent) Execute(sim *Simulator) {
	sim.recordPositions(e.time)
	sim.Schedule(&ProbeEvent{time: e.time + sim.Config.SampleIntervalSec})
}
