// Area occupancy tracking: named zones with current membership and an
// append-only snapshot history.

package sim

import (
	"github.com/sirupsen/logrus"
)

// Node names outside the station set.
const (
	NodeSource       = "source"
	NodeSecurityGate = "security_gate"
)

// Zone names.
const (
	ZoneCheckin        = "checkin_zone"
	ZoneBaggageCounter = "baggage_counter_zone"
	ZoneTag            = "tag_zone"
	ZoneDrop           = "drop_zone"
	ZoneSecurityFront  = "security_front"
)

// ZoneMap associates station/node names with occupancy zones.
type ZoneMap map[string]string

// DefaultZoneMap returns the static node-to-zone association. Both check-in
// stations share one check-in zone.
func DefaultZoneMap() ZoneMap {
	return ZoneMap{
		StationCheckinKiosk:   ZoneCheckin,
		StationCheckinCounter: ZoneCheckin,
		StationBaggageCounter: ZoneBaggageCounter,
		StationTagKiosk:       ZoneTag,
		StationDropPoint:      ZoneDrop,
		NodeSecurityGate:      ZoneSecurityFront,
	}
}

// Zones returns the distinct zone names, in first-appearance order over the
// canonical node ordering.
func (m ZoneMap) Zones() []string {
	seen := make(map[string]bool)
	var zones []string
	for _, node := range append(append([]string{}, StationNames...), NodeSecurityGate) {
		z, ok := m[node]
		if !ok || seen[z] {
			continue
		}
		seen[z] = true
		zones = append(zones, z)
	}
	return zones
}

// AreaOccupancy is one zone-occupancy snapshot.
type AreaOccupancy struct {
	Time       float64 `json:"time"`
	Zone       string  `json:"zone"`
	GroupCount int     `json:"group_count"`
	PaxCount   int     `json:"pax_count"`
}

type zoneMember struct {
	groupID   int
	groupSize int
}

// AreaTracker maintains per-zone membership and the occupancy history.
// Enter/Leave calls for a given (zone, group) pair must alternate strictly,
// starting with Enter; a group is in at most one zone at a time.
type AreaTracker struct {
	zones   ZoneMap
	members map[string][]zoneMember

	// History is the append-only occupancy trace across all zones.
	History []AreaOccupancy
}

// NewAreaTracker creates a tracker over the given zone map.
func NewAreaTracker(zones ZoneMap) *AreaTracker {
	members := make(map[string][]zoneMember)
	for _, z := range zones.Zones() {
		members[z] = nil
	}
	return &AreaTracker{zones: zones, members: members}
}

// ZoneFor returns the zone for a node name, or "" if the node is unzoned.
func (a *AreaTracker) ZoneFor(node string) string {
	return a.zones[node]
}

// Enter records a group entering a zone and appends a snapshot.
func (a *AreaTracker) Enter(now float64, zone string, groupID, groupSize int) {
	if _, ok := a.members[zone]; !ok {
		logrus.Warnf("Enter: unknown zone %q for group %d", zone, groupID)
		return
	}
	a.members[zone] = append(a.members[zone], zoneMember{groupID: groupID, groupSize: groupSize})
	a.record(now, zone)
}

// Leave records a group leaving a zone and appends a snapshot.
func (a *AreaTracker) Leave(now float64, zone string, groupID int) {
	ms, ok := a.members[zone]
	if !ok {
		logrus.Warnf("Leave: unknown zone %q for group %d", zone, groupID)
		return
	}
	kept := ms[:0]
	for _, m := range ms {
		if m.groupID != groupID {
			kept = append(kept, m)
		}
	}
	a.members[zone] = kept
	a.record(now, zone)
}

// Occupancy returns the current (groupCount, paxCount) for a zone.
func (a *AreaTracker) Occupancy(zone string) (int, int) {
	ms := a.members[zone]
	pax := 0
	for _, m := range ms {
		pax += m.groupSize
	}
	return len(ms), pax
}

func (a *AreaTracker) record(now float64, zone string) {
	groups, pax := a.Occupancy(zone)
	a.History = append(a.History, AreaOccupancy{
		Time:       now,
		Zone:       zone,
		GroupCount: groups,
		PaxCount:   pax,
	})
}
