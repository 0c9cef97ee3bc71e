// Defines the PassengerGroup record that moves through the departure hall,
// and the factory that synthesizes groups from configured probabilities.

package sim

import (
	"fmt"
	"math/rand"
)

// CheckinMode selects how a group checks in.
type CheckinMode string

const (
	CheckinOnline  CheckinMode = "online"
	CheckinKiosk   CheckinMode = "kiosk"
	CheckinCounter CheckinMode = "counter" // check-in only, never handles baggage
)

// BaggageMode selects how a group drops its checked baggage.
type BaggageMode string

const (
	// BaggageNone: the group carries no checked baggage.
	BaggageNone BaggageMode = "none"
	// BaggageCounter: tag issuance and bag drop in one combined counter service.
	BaggageCounter BaggageMode = "counter"
	// BaggageSelf: tag kiosk first, then the drop point, in fixed sequence.
	BaggageSelf BaggageMode = "self"
)

// StageTimes records the queue/service timestamps of one station visit,
// in seconds of virtual time. Visited reports whether the group reached
// this stage at all; the zero value means it never did.
//
// Invariant for a finished visit: QueueEnter <= ServiceStart <= ServiceEnd.
type StageTimes struct {
	Visited      bool    `json:"visited"`
	QueueEnter   float64 `json:"queue_enter"`
	ServiceStart float64 `json:"service_start"`
	ServiceEnd   float64 `json:"service_end"`
}

// Wait returns the time spent between joining the queue and service start.
func (t StageTimes) Wait() float64 {
	if !t.Visited {
		return 0
	}
	return t.ServiceStart - t.QueueEnter
}

// PassengerGroup is a unit of passengers traveling and queueing together.
// Each station visit is handled once per group (a representative does the
// transaction); occupancy accounting uses the full Size.
//
// A group is owned by its process until completion, then by the result's
// completed-group collection.
type PassengerGroup struct {
	ID            int         `json:"group_id"`
	Size          int         `json:"group_size"`
	ArrivalTime   float64     `json:"arrival_time"`   // seconds from simulation epoch
	DepartureTime float64     `json:"departure_time"` // scheduled flight departure, seconds
	CheckinMode   CheckinMode `json:"checkin_mode"`
	BaggageMode   BaggageMode `json:"baggage_mode"`

	Checkin        StageTimes `json:"checkin"`         // kiosk or counter check-in visit
	BaggageCounter StageTimes `json:"baggage_counter"` // combined tag+drop counter visit
	Tag            StageTimes `json:"tag"`             // self-service tag kiosk visit
	Drop           StageTimes `json:"drop"`            // self-service drop point visit

	SecurityReached bool    `json:"security_reached"`
	SecurityArrival float64 `json:"security_arrival"`

	// CurrentNode is the last station node this group touched,
	// recorded for the periodic position probe.
	CurrentNode string `json:"-"`
}

// TotalTime returns time from hall arrival to security, valid once the
// group has completed.
func (g *PassengerGroup) TotalTime() float64 {
	if !g.SecurityReached {
		return 0
	}
	return g.SecurityArrival - g.ArrivalTime
}

func (g *PassengerGroup) String() string {
	return fmt.Sprintf("Group(id=%d, size=%d, checkin=%s, baggage=%s)",
		g.ID, g.Size, g.CheckinMode, g.BaggageMode)
}

// GroupFactory creates passenger groups with configured branching
// probabilities. IDs are assigned monotonically starting at 0.
//
// The check-in split is normalized at construction; the baggage
// probabilities are used as given.
type GroupFactory struct {
	pOnline         float64
	pKiosk          float64
	pBaggage        float64
	pBaggageCounter float64
	pSingle         float64
	multiMin        int
	multiMax        int

	rng    *rand.Rand
	nextID int
}

// NewGroupFactory builds a factory from a validated SimulationConfig.
func NewGroupFactory(cfg *SimulationConfig, rng *rand.Rand) *GroupFactory {
	total := cfg.POnline + cfg.PKiosk + cfg.PCounter
	return &GroupFactory{
		pOnline:         cfg.POnline / total,
		pKiosk:          cfg.PKiosk / total,
		pBaggage:        cfg.PBaggage,
		pBaggageCounter: cfg.PBaggageCounter,
		pSingle:         cfg.PSingle,
		multiMin:        cfg.GroupMultiMin,
		multiMax:        cfg.GroupMultiMax,
		rng:             rng,
	}
}

// NewGroup synthesizes one group with the given arrival and departure times
// (seconds of virtual time).
func (f *GroupFactory) NewGroup(arrivalTime, departureTime float64) *PassengerGroup {
	id := f.nextID
	f.nextID++

	size := 1
	if f.rng.Float64() >= f.pSingle {
		size = f.multiMin + f.rng.Intn(f.multiMax-f.multiMin+1)
	}

	var checkin CheckinMode
	switch r := f.rng.Float64(); {
	case r < f.pOnline:
		checkin = CheckinOnline
	case r < f.pOnline+f.pKiosk:
		checkin = CheckinKiosk
	default:
		checkin = CheckinCounter
	}

	baggage := BaggageNone
	if f.rng.Float64() < f.pBaggage {
		if f.rng.Float64() < f.pBaggageCounter {
			baggage = BaggageCounter
		} else {
			baggage = BaggageSelf
		}
	}

	return &PassengerGroup{
		ID:            id,
		Size:          size,
		ArrivalTime:   arrivalTime,
		DepartureTime: departureTime,
		CheckinMode:   checkin,
		BaggageMode:   baggage,
		CurrentNode:   NodeSource,
	}
}
