package sim

// GroupPosition is one group's last-known node at probe time.
type GroupPosition struct {
	GroupID   int    `json:"group_id"`
	GroupSize int    `json:"group_size"`
	Node      string `json:"node"`
}

// PositionSnapshot captures all active groups at one probe instant.
type PositionSnapshot struct {
	Time   float64         `json:"time"`
	Groups []GroupPosition `json:"groups"`
}

// SimulationResult aggregates everything a run produces. It is created once
// at the end of Run, immutable afterwards, and owned by the caller.
//
// CompletedGroups holds only groups that reached security before the
// horizon; in-flight groups at the horizon are dropped silently.
type SimulationResult struct {
	CompletedGroups      []*PassengerGroup          `json:"completed_groups"`
	QueueHistories       map[string][]QueueSnapshot `json:"queue_histories"`
	AreaOccupancyHistory []AreaOccupancy            `json:"area_occupancy_history"`
	PositionSnapshots    []PositionSnapshot         `json:"position_snapshots"`
	DurationSec          float64                    `json:"duration_sec"`
}
