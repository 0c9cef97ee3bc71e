// Converts a demand schedule into a deterministically time-ordered stream
// of passenger groups.

package sim

import (
	"fmt"
	"sort"
)

// DemandSlot is a departure time window paired with a passenger count to be
// converted into arrivals. Times are minutes from the simulation epoch.
// Immutable once constructed; consumed once by the arrival generator.
type DemandSlot struct {
	StartMin float64 `yaml:"start_min" json:"start_min"`
	EndMin   float64 `yaml:"end_min" json:"end_min"`
	PaxCount int     `yaml:"pax" json:"pax"`
}

// Validate checks the slot invariant end > start. A non-positive PaxCount
// is not an error; such slots simply contribute zero groups.
func (s DemandSlot) Validate() error {
	if s.EndMin <= s.StartMin {
		return fmt.Errorf("demand slot: end %v must be after start %v", s.EndMin, s.StartMin)
	}
	return nil
}

// DurationMin returns the slot length in minutes.
func (s DemandSlot) DurationMin() float64 {
	return s.EndMin - s.StartMin
}

// midpointSec returns the slot midpoint converted to seconds. Every group
// in the slot departs at this instant; there is no intra-slot variation.
func (s DemandSlot) midpointSec() float64 {
	return (s.StartMin + s.EndMin) / 2 * 60
}

// ArrivalGenerator synthesizes passenger groups from demand slots.
// Minutes-before-departure are drawn from the truncated t sampler; group
// composition comes from the factory.
type ArrivalGenerator struct {
	factory     *GroupFactory
	arrivalDist *TruncatedT
}

// NewArrivalGenerator wires the generator to its samplers.
func NewArrivalGenerator(factory *GroupFactory, arrivalDist *TruncatedT) *ArrivalGenerator {
	return &ArrivalGenerator{factory: factory, arrivalDist: arrivalDist}
}

// GenerateSlot synthesizes groups for one slot until the cumulative group
// size covers the slot's passenger count. The final group may overshoot the
// target; groups are never split.
func (g *ArrivalGenerator) GenerateSlot(slot DemandSlot) []*PassengerGroup {
	var groups []*PassengerGroup
	remaining := slot.PaxCount
	departureSec := slot.midpointSec()

	for remaining > 0 {
		minBefore := g.arrivalDist.SampleOne()
		arrivalSec := departureSec - minBefore*60
		if arrivalSec < 0 {
			arrivalSec = 0
		}

		group := g.factory.NewGroup(arrivalSec, departureSec)
		groups = append(groups, group)
		remaining -= group.Size
	}

	return groups
}

// GenerateAll synthesizes groups for the whole schedule and returns them
// sorted by arrival time ascending. Ties retain generation order (stable
// sort), which fixes the spawn order of same-time arrivals.
func (g *ArrivalGenerator) GenerateAll(slots []DemandSlot) ([]*PassengerGroup, error) {
	var all []*PassengerGroup

	for i, slot := range slots {
		if err := slot.Validate(); err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		if slot.PaxCount <= 0 {
			continue
		}
		all = append(all, g.GenerateSlot(slot)...)
	}

	sort.SliceStable(all, func(i, j int) bool {
		return all[i].ArrivalTime < all[j].ArrivalTime
	})

	return all, nil
}
