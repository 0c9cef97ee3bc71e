// sim/simulator.go
//
// The virtual-time scheduler. A single goroutine owns the clock and all
// mutable state; concurrency is cooperative and deterministic.

package sim

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// Simulator is the core object holding simulation time, system state and
// the event loop. Construct with NewSimulator, then call Run once.
type Simulator struct {
	// Clock is the virtual time in seconds, monotonically non-decreasing.
	Clock float64
	// Horizon is the virtual time at which the run stops advancing.
	// Computed in Run as max(departure) + HorizonBufferSec.
	Horizon float64

	Config   *SimulationConfig
	Stations *StationSet
	Areas    *AreaTracker

	events *EventQueue
	seq    uint64 // strictly increasing enqueue counter, the same-time tie-break

	rng        *PartitionedRNG
	services   map[string]*ServiceSampler
	arrivalGen *ArrivalGenerator

	// Groups table owned by the run; queues and zones refer to groups by ID.
	groups map[int]*PassengerGroup
	// active holds groups that have spawned and not yet completed.
	active map[int]*PassengerGroup

	completed []*PassengerGroup
	positions []PositionSnapshot
}

// NewSimulator validates the configuration and assembles a ready-to-run
// engine. A nil zones map selects DefaultZoneMap. Construction fails before
// any virtual time advances if the configuration is invalid.
func NewSimulator(cfg *SimulationConfig, zones ZoneMap) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if zones == nil {
		zones = DefaultZoneMap()
	}

	rng := NewPartitionedRNG(NewSimulationKey(cfg.Seed))

	arrivalDist, err := NewTruncatedT(
		cfg.ArrivalDF,
		cfg.ArrivalMeanMinBefore,
		cfg.ArrivalScale,
		cfg.ArrivalRangeMin,
		cfg.ArrivalRangeMax,
		rng.ForSubsystem(SubsystemArrival),
	)
	if err != nil {
		return nil, err
	}

	factory := NewGroupFactory(cfg, rng.ForSubsystem(SubsystemGroups))

	return &Simulator{
		Config:     cfg,
		Stations:   NewStationSet(cfg),
		Areas:      NewAreaTracker(zones),
		events:     NewEventQueue(),
		rng:        rng,
		services:   cfg.serviceSamplers(),
		arrivalGen: NewArrivalGenerator(factory, arrivalDist),
		groups:     make(map[int]*PassengerGroup),
		active:     make(map[int]*PassengerGroup),
	}, nil
}

// Schedule pushes an event into the queue, stamping it with the next
// sequence number. Same-time events execute in the order they were
// scheduled.
func (s *Simulator) Schedule(ev Event) {
	s.events.PushEvent(ev, s.seq)
	s.seq++
}

// Sleep suspends the calling process for d seconds of virtual time; resume
// runs exactly once when the timer elapses. Negative durations wake at the
// current instant.
func (s *Simulator) Sleep(d float64, resume func(now float64)) {
	if d < 0 {
		d = 0
	}
	s.Schedule(&ResumeEvent{time: s.Clock + d, resume: resume})
}

// Run executes the simulation for the given demand schedule and returns the
// collected result. The only error source is an invalid demand slot,
// reported before any virtual time advances.
func (s *Simulator) Run(slots []DemandSlot) (*SimulationResult, error) {
	groups, err := s.arrivalGen.GenerateAll(slots)
	if err != nil {
		return nil, err
	}
	return s.RunGroups(groups), nil
}

// RunGroups executes the simulation over pre-built groups, bypassing the
// arrival generator. Callers replaying a fixed arrival list use this
// directly; groups must be sorted by arrival time with ties in the desired
// spawn order.
func (s *Simulator) RunGroups(groups []*PassengerGroup) *SimulationResult {
	if len(groups) == 0 {
		logrus.Info("No passengers to simulate")
		return s.buildResult(0)
	}

	lastDeparture := 0.0
	for _, g := range groups {
		s.groups[g.ID] = g
		if g.DepartureTime > lastDeparture {
			lastDeparture = g.DepartureTime
		}
	}
	s.Horizon = lastDeparture + s.Config.HorizonBufferSec

	// Arrival events go in first, in generation order, so same-time
	// arrivals spawn in that exact order.
	for _, g := range groups {
		s.Schedule(&ArrivalEvent{time: g.ArrivalTime, Group: g})
	}
	s.Schedule(&ProbeEvent{time: 0})

	logrus.Infof("Starting run: %d groups, horizon %.0fs", len(groups), s.Horizon)

	for s.events.Len() > 0 {
		next := s.events.Peek()
		// Stop before executing anything past the horizon: processes still
		// suspended at this point are abandoned without partial results.
		if next.Timestamp() > s.Horizon {
			break
		}
		ev := s.events.PopNext()
		s.Clock = ev.Timestamp()
		ev.Execute(s)
	}

	duration := s.Clock
	if duration > s.Horizon {
		duration = s.Horizon
	}
	logrus.Infof("[%8.1fs] Run ended: %d/%d groups completed", s.Clock, len(s.completed), len(groups))

	return s.buildResult(duration)
}

// startGroup registers a spawned group and begins its process.
func (s *Simulator) startGroup(g *PassengerGroup, now float64) {
	s.active[g.ID] = g
	p := &groupProc{sim: s, group: g}
	p.begin(now)
}

// completeGroup moves a group from the active set into the completed
// collection; ownership of the record passes to the result.
func (s *Simulator) completeGroup(g *PassengerGroup) {
	delete(s.active, g.ID)
	s.completed = append(s.completed, g)
}

// serviceSample draws a service duration for the named station.
func (s *Simulator) serviceSample(station string) float64 {
	return s.services[station].SampleOne(s.rng.ForSubsystem(SubsystemService))
}

// recordPositions snapshots every active group's last-known node, ordered
// by group ID so replays are bit-identical.
func (s *Simulator) recordPositions(now float64) {
	ids := make([]int, 0, len(s.active))
	for id := range s.active {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	snap := PositionSnapshot{Time: now, Groups: make([]GroupPosition, 0, len(ids))}
	for _, id := range ids {
		g := s.active[id]
		snap.Groups = append(snap.Groups, GroupPosition{
			GroupID:   g.ID,
			GroupSize: g.Size,
			Node:      g.CurrentNode,
		})
	}
	s.positions = append(s.positions, snap)
}

func (s *Simulator) buildResult(duration float64) *SimulationResult {
	histories := make(map[string][]QueueSnapshot, len(StationNames))
	for name, st := range s.Stations.All() {
		histories[name] = st.History
	}
	return &SimulationResult{
		CompletedGroups:      s.completed,
		QueueHistories:       histories,
		AreaOccupancyHistory: s.Areas.History,
		PositionSnapshots:    s.positions,
		DurationSec:          duration,
	}
}
