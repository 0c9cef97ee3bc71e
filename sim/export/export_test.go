package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airport-sim/airport-sim/sim"
)

func sampleResult() *sim.SimulationResult {
	visited := func(enter, start, end float64) sim.StageTimes {
		return sim.StageTimes{Visited: true, QueueEnter: enter, ServiceStart: start, ServiceEnd: end}
	}
	return &sim.SimulationResult{
		CompletedGroups: []*sim.PassengerGroup{
			{
				ID: 0, Size: 2, ArrivalTime: 0, DepartureTime: 3600,
				CheckinMode: sim.CheckinKiosk, BaggageMode: sim.BaggageSelf,
				Checkin: visited(0, 5, 70), Tag: visited(70, 70, 115), Drop: visited(115, 120, 240),
				SecurityArrival: 250, SecurityReached: true,
			},
			{
				ID: 1, Size: 1, ArrivalTime: 30, DepartureTime: 3600,
				CheckinMode: sim.CheckinOnline, BaggageMode: sim.BaggageNone,
				SecurityArrival: 45, SecurityReached: true,
			},
		},
		QueueHistories: map[string][]sim.QueueSnapshot{
			sim.StationCheckinKiosk: {{Time: 0, QueueLen: 1, QueuePax: 2, InService: 1}},
			sim.StationTagKiosk:     {{Time: 70, QueueLen: 0, QueuePax: 0, InService: 1}},
		},
		AreaOccupancyHistory: []sim.AreaOccupancy{
			{Time: 0, Zone: sim.ZoneCheckin, GroupCount: 1, PaxCount: 2},
			{Time: 70, Zone: sim.ZoneCheckin, GroupCount: 0, PaxCount: 0},
		},
		DurationSec: 300,
	}
}

func TestWriteCompletedGroups(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCompletedGroups(&buf, sampleResult().CompletedGroups))

	rows, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + two groups
	assert.Len(t, rows[0], 20)

	// Visited stages carry timestamps; skipped stages are empty cells.
	kiosk := rows[1]
	assert.Equal(t, "0", kiosk[0])
	assert.Equal(t, "kiosk", kiosk[4])
	assert.Equal(t, "self", kiosk[5])
	assert.Equal(t, "0.000", kiosk[6])   // checkin queue enter
	assert.Equal(t, "5.000", kiosk[7])   // checkin start
	assert.Equal(t, "", kiosk[9])        // baggage counter not visited
	assert.Equal(t, "70.000", kiosk[12]) // tag queue enter
	assert.Equal(t, "250.000", kiosk[18])

	online := rows[2]
	assert.Equal(t, "online", online[4])
	for _, cell := range online[6:18] {
		assert.Empty(t, cell)
	}
	assert.Equal(t, "45.000", online[18])
	assert.Equal(t, "15.000", online[19]) // total time = 45 - 30
}

func TestWriteQueueHistories_CanonicalOrder(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteQueueHistories(&buf, sampleResult().QueueHistories))

	rows, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"station", "time", "queue_len", "queue_pax", "in_service"}, rows[0])

	// checkin_kiosk precedes tag_kiosk in the canonical station order.
	assert.Equal(t, sim.StationCheckinKiosk, rows[1][0])
	assert.Equal(t, sim.StationTagKiosk, rows[2][0])
	assert.Equal(t, "2", rows[1][3])
}

func TestWriteAreaOccupancy(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAreaOccupancy(&buf, sampleResult().AreaOccupancyHistory))

	rows, err := csv.NewReader(bytes.NewReader(buf.Bytes())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"0.000", sim.ZoneCheckin, "1", "2"}, rows[1])
	assert.Equal(t, []string{"70.000", sim.ZoneCheckin, "0", "0"}, rows[2])
}

func TestWriteResultJSON_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteResultJSON(&buf, sampleResult()))

	var decoded sim.SimulationResult
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, 300.0, decoded.DurationSec)
	require.Len(t, decoded.CompletedGroups, 2)
	assert.Equal(t, sim.BaggageSelf, decoded.CompletedGroups[0].BaggageMode)
}

func TestWriteAll_CreatesStandardFiles(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, WriteAll(dir, sampleResult()))

	for _, name := range []string{
		"completed_groups.csv", "queue_histories.csv", "area_occupancy.csv", "result.json",
	} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}
