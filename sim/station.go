// Implements the capacity-limited Station resource with FIFO admission and
// event-sourced queue instrumentation.

package sim

import (
	"github.com/sirupsen/logrus"
)

// Station names. Each is also the node name used in position snapshots.
const (
	StationCheckinKiosk   = "checkin_kiosk"
	StationCheckinCounter = "checkin_counter"
	StationBaggageCounter = "baggage_counter" // tag issuance + bag drop combined
	StationTagKiosk       = "tag_kiosk"
	StationDropPoint      = "drop_point"
)

// StationNames lists all stations in a stable order.
var StationNames = []string{
	StationCheckinKiosk,
	StationCheckinCounter,
	StationBaggageCounter,
	StationTagKiosk,
	StationDropPoint,
}

// QueueSnapshot captures station state at one instant. Snapshots are
// recorded at every admit/enqueue/release transition, producing an
// irregular-interval history from which exact queue state at any time is a
// last-value lookup.
//
// QueueLen and QueuePax count waiting (not-yet-granted) requests only;
// InService counts groups currently holding a server.
type QueueSnapshot struct {
	Time      float64 `json:"time"`
	QueueLen  int     `json:"queue_len"`
	QueuePax  int     `json:"queue_pax"`
	InService int     `json:"in_service"`
}

// waiter is one not-yet-granted acquire request. The resume continuation is
// invoked exactly once, when the head of the queue is granted a server.
type waiter struct {
	groupID   int
	groupSize int
	resume    func(now float64)
}

// Station is a capacity-limited service point. Admission is strictly FIFO
// among waiting requests, irrespective of group size. All mutation happens
// inside the scheduler's single execution context, so no locking is needed.
type Station struct {
	Name     string
	Capacity int

	inService int
	waiters   []waiter

	// History is the append-only instrumentation trace.
	History []QueueSnapshot
}

// NewStation creates a station with the given parallel-server capacity.
func NewStation(name string, capacity int) *Station {
	return &Station{Name: name, Capacity: capacity}
}

// Acquire requests a server for the group. Below capacity the request is
// granted immediately -- it never appears in the wait queue -- and resume
// runs synchronously at the current virtual time. Otherwise the request is
// appended to the FIFO tail and resume runs when a Release grants it.
// A snapshot is recorded in either case.
func (st *Station) Acquire(now float64, groupID, groupSize int, resume func(now float64)) {
	if st.inService < st.Capacity {
		st.inService++
		st.record(now)
		logrus.Debugf("[%8.1fs] %s: group %d admitted (%d/%d in service)",
			now, st.Name, groupID, st.inService, st.Capacity)
		resume(now)
		return
	}

	st.waiters = append(st.waiters, waiter{groupID: groupID, groupSize: groupSize, resume: resume})
	st.record(now)
	logrus.Debugf("[%8.1fs] %s: group %d queued (queue len %d)",
		now, st.Name, groupID, len(st.waiters))
}

// Release returns a server. If anyone is waiting, the head of the queue is
// dequeued and granted immediately -- first to wait is first served.
// A snapshot is recorded, and a second transition snapshot covers the grant.
func (st *Station) Release(now float64) {
	if st.inService <= 0 {
		// Release without a matching grant is a kernel bug, not a model state.
		logrus.Panicf("%s: Release called with no group in service", st.Name)
	}
	st.inService--

	if len(st.waiters) == 0 {
		st.record(now)
		return
	}

	head := st.waiters[0]
	st.waiters = st.waiters[1:]
	st.inService++
	st.record(now)
	logrus.Debugf("[%8.1fs] %s: group %d granted from queue (%d still waiting)",
		now, st.Name, head.groupID, len(st.waiters))
	head.resume(now)
}

// InService returns the number of groups currently holding a server.
func (st *Station) InService() int {
	return st.inService
}

// QueueLen returns the number of waiting (not-yet-granted) requests.
func (st *Station) QueueLen() int {
	return len(st.waiters)
}

// QueuePax returns the total passenger count across waiting requests.
func (st *Station) QueuePax() int {
	pax := 0
	for _, w := range st.waiters {
		pax += w.groupSize
	}
	return pax
}

func (st *Station) record(now float64) {
	st.History = append(st.History, QueueSnapshot{
		Time:      now,
		QueueLen:  len(st.waiters),
		QueuePax:  st.QueuePax(),
		InService: st.inService,
	})
}

// StationSet holds the five departure-hall stations.
type StationSet struct {
	CheckinKiosk   *Station
	CheckinCounter *Station
	BaggageCounter *Station
	TagKiosk       *Station
	DropPoint      *Station
}

// NewStationSet builds all stations from configured capacities.
func NewStationSet(cfg *SimulationConfig) *StationSet {
	return &StationSet{
		CheckinKiosk:   NewStation(StationCheckinKiosk, cfg.CapacityCheckinKiosk),
		CheckinCounter: NewStation(StationCheckinCounter, cfg.CapacityCheckinCounter),
		BaggageCounter: NewStation(StationBaggageCounter, cfg.CapacityBaggageCounter),
		TagKiosk:       NewStation(StationTagKiosk, cfg.CapacityTagKiosk),
		DropPoint:      NewStation(StationDropPoint, cfg.CapacityDropPoint),
	}
}

// All returns the stations keyed by name.
func (s *StationSet) All() map[string]*Station {
	return map[string]*Station{
		StationCheckinKiosk:   s.CheckinKiosk,
		StationCheckinCounter: s.CheckinCounter,
		StationBaggageCounter: s.BaggageCounter,
		StationTagKiosk:       s.TagKiosk,
		StationDropPoint:      s.DropPoint,
	}
}
