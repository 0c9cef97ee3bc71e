// Package stats aggregates simulation results into reporting summaries:
// per-station wait-time percentiles, time in system and throughput.
// Pure aggregation; no scheduling logic.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/airport-sim/airport-sim/sim"
)

// WaitSummary describes the waiting-time distribution at one station.
// All times are seconds of virtual time.
type WaitSummary struct {
	Station string  `json:"station"`
	Count   int     `json:"count"`
	Mean    float64 `json:"mean"`
	P50     float64 `json:"p50"`
	P90     float64 `json:"p90"`
	Max     float64 `json:"max"`
}

// Summary aggregates one simulation run.
type Summary struct {
	CompletedGroups int `json:"completed_groups"`
	CompletedPax    int `json:"completed_pax"`

	// ThroughputPaxPerHour is completed passengers per hour of virtual time.
	ThroughputPaxPerHour float64 `json:"throughput_pax_per_hour"`

	TotalTime    WaitSummary   `json:"total_time"` // arrival to security, per group
	StationWaits []WaitSummary `json:"station_waits"`

	CheckinModeCounts map[sim.CheckinMode]int `json:"checkin_mode_counts"`
	BaggageModeCounts map[sim.BaggageMode]int `json:"baggage_mode_counts"`

	// PeakQueuePax is the maximum waiting passenger count per station.
	PeakQueuePax map[string]int `json:"peak_queue_pax"`
}

// Summarize computes the aggregate view of a result. Safe for empty results.
func Summarize(res *sim.SimulationResult) *Summary {
	s := &Summary{
		CheckinModeCounts: make(map[sim.CheckinMode]int),
		BaggageModeCounts: make(map[sim.BaggageMode]int),
		PeakQueuePax:      make(map[string]int),
	}
	if res == nil {
		return s
	}

	s.CompletedGroups = len(res.CompletedGroups)
	totals := make([]float64, 0, len(res.CompletedGroups))
	for _, g := range res.CompletedGroups {
		s.CompletedPax += g.Size
		s.CheckinModeCounts[g.CheckinMode]++
		s.BaggageModeCounts[g.BaggageMode]++
		totals = append(totals, g.TotalTime())
	}
	s.TotalTime = summarize("total", totals)

	if res.DurationSec > 0 {
		s.ThroughputPaxPerHour = float64(s.CompletedPax) / res.DurationSec * 3600
	}

	s.StationWaits = StationWaits(res.CompletedGroups)

	for name, history := range res.QueueHistories {
		peak := 0
		for _, snap := range history {
			if snap.QueuePax > peak {
				peak = snap.QueuePax
			}
		}
		s.PeakQueuePax[name] = peak
	}

	return s
}

// StationWaits computes wait summaries per station from completed groups,
// in the canonical station order. Online check-ins contribute no wait
// sample anywhere; a station nobody visited yields a zero-count summary.
func StationWaits(groups []*sim.PassengerGroup) []WaitSummary {
	waits := map[string][]float64{}
	for _, g := range groups {
		switch g.CheckinMode {
		case sim.CheckinKiosk:
			appendWait(waits, sim.StationCheckinKiosk, g.Checkin)
		case sim.CheckinCounter:
			appendWait(waits, sim.StationCheckinCounter, g.Checkin)
		}
		appendWait(waits, sim.StationBaggageCounter, g.BaggageCounter)
		appendWait(waits, sim.StationTagKiosk, g.Tag)
		appendWait(waits, sim.StationDropPoint, g.Drop)
	}

	out := make([]WaitSummary, 0, len(sim.StationNames))
	for _, name := range sim.StationNames {
		out = append(out, summarize(name, waits[name]))
	}
	return out
}

func appendWait(waits map[string][]float64, station string, t sim.StageTimes) {
	if !t.Visited {
		return
	}
	waits[station] = append(waits[station], t.Wait())
}

func summarize(name string, xs []float64) WaitSummary {
	ws := WaitSummary{Station: name, Count: len(xs)}
	if len(xs) == 0 {
		return ws
	}
	sorted := append([]float64(nil), xs...)
	sort.Float64s(sorted)

	ws.Mean = stat.Mean(sorted, nil)
	ws.P50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	ws.P90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	ws.Max = sorted[len(sorted)-1]
	return ws
}
