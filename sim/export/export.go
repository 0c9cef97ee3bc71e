// Package export serializes simulation results to tabular CSV files and
// JSON. Pure serialization; no scheduling logic.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/airport-sim/airport-sim/sim"
)

// WriteCompletedGroups writes one row per completed group. Stage timestamp
// cells are empty for stages the group never visited.
func WriteCompletedGroups(w io.Writer, groups []*sim.PassengerGroup) error {
	cw := csv.NewWriter(w)
	header := []string{
		"group_id", "group_size", "arrival_time", "departure_time",
		"checkin_mode", "baggage_mode",
		"checkin_queue_enter", "checkin_start", "checkin_end",
		"baggage_counter_queue_enter", "baggage_counter_start", "baggage_counter_end",
		"tag_queue_enter", "tag_start", "tag_end",
		"drop_queue_enter", "drop_start", "drop_end",
		"security_arrival", "total_time",
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, g := range groups {
		row := []string{
			strconv.Itoa(g.ID),
			strconv.Itoa(g.Size),
			ftoa(g.ArrivalTime),
			ftoa(g.DepartureTime),
			string(g.CheckinMode),
			string(g.BaggageMode),
		}
		row = append(row, stageCells(g.Checkin)...)
		row = append(row, stageCells(g.BaggageCounter)...)
		row = append(row, stageCells(g.Tag)...)
		row = append(row, stageCells(g.Drop)...)
		row = append(row, ftoa(g.SecurityArrival), ftoa(g.TotalTime()))
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteQueueHistories writes every station's snapshot trace into one table.
func WriteQueueHistories(w io.Writer, histories map[string][]sim.QueueSnapshot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"station", "time", "queue_len", "queue_pax", "in_service"}); err != nil {
		return err
	}

	// Canonical station order keeps output diffable across runs.
	for _, name := range sim.StationNames {
		for _, snap := range histories[name] {
			row := []string{
				name,
				ftoa(snap.Time),
				strconv.Itoa(snap.QueueLen),
				strconv.Itoa(snap.QueuePax),
				strconv.Itoa(snap.InService),
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteAreaOccupancy writes the zone occupancy trace.
func WriteAreaOccupancy(w io.Writer, history []sim.AreaOccupancy) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"time", "zone", "group_count", "pax_count"}); err != nil {
		return err
	}
	for _, occ := range history {
		row := []string{
			ftoa(occ.Time),
			occ.Zone,
			strconv.Itoa(occ.GroupCount),
			strconv.Itoa(occ.PaxCount),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteResultJSON writes the full result as indented JSON.
func WriteResultJSON(w io.Writer, res *sim.SimulationResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

// WriteAll writes the standard export set into dir, creating it if needed:
// completed_groups.csv, queue_histories.csv, area_occupancy.csv, result.json.
func WriteAll(dir string, res *sim.SimulationResult) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	files := []struct {
		name  string
		write func(io.Writer) error
	}{
		{"completed_groups.csv", func(w io.Writer) error { return WriteCompletedGroups(w, res.CompletedGroups) }},
		{"queue_histories.csv", func(w io.Writer) error { return WriteQueueHistories(w, res.QueueHistories) }},
		{"area_occupancy.csv", func(w io.Writer) error { return WriteAreaOccupancy(w, res.AreaOccupancyHistory) }},
		{"result.json", func(w io.Writer) error { return WriteResultJSON(w, res) }},
	}

	for _, f := range files {
		if err := writeFile(filepath.Join(dir, f.name), f.write); err != nil {
			return fmt.Errorf("export %s: %w", f.name, err)
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func stageCells(t sim.StageTimes) []string {
	if !t.Visited {
		return []string{"", "", ""}
	}
	return []string{ftoa(t.QueueEnter), ftoa(t.ServiceStart), ftoa(t.ServiceEnd)}
}

func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
