package sim

import "fmt"

// SimulationConfig holds every distribution parameter, branching
// probability, station capacity and sampling knob for a run. Validate must
// pass before a Simulator is constructed; a run never starts from an
// invalid configuration.
type SimulationConfig struct {
	// Arrival distribution: minutes before departure, truncated Student's t.
	ArrivalDF            float64 `yaml:"arrival_df"`
	ArrivalMeanMinBefore float64 `yaml:"arrival_mean_min_before"`
	ArrivalScale         float64 `yaml:"arrival_scale"`
	ArrivalRangeMin      float64 `yaml:"arrival_range_min"`
	ArrivalRangeMax      float64 `yaml:"arrival_range_max"`

	// Branching probabilities. The check-in split is normalized to sum to 1;
	// the remaining probabilities are used as given.
	POnline         float64 `yaml:"p_online"`
	PKiosk          float64 `yaml:"p_kiosk"`
	PCounter        float64 `yaml:"p_counter"`
	PBaggage        float64 `yaml:"p_baggage"`         // group has checked baggage
	PBaggageCounter float64 `yaml:"p_baggage_counter"` // baggage groups using the combined counter

	// Group size.
	PSingle       float64 `yaml:"p_single"`
	GroupMultiMin int     `yaml:"group_multi_min"`
	GroupMultiMax int     `yaml:"group_multi_max"`

	// Station capacities (parallel servers).
	CapacityCheckinKiosk   int `yaml:"capacity_checkin_kiosk"`
	CapacityCheckinCounter int `yaml:"capacity_checkin_counter"`
	CapacityBaggageCounter int `yaml:"capacity_baggage_counter"`
	CapacityTagKiosk       int `yaml:"capacity_tag_kiosk"`
	CapacityDropPoint      int `yaml:"capacity_drop_point"`

	// Service times (mean, std in seconds).
	ServiceCheckinKioskMean   float64 `yaml:"service_checkin_kiosk_mean"`
	ServiceCheckinKioskStd    float64 `yaml:"service_checkin_kiosk_std"`
	ServiceCheckinCounterMean float64 `yaml:"service_checkin_counter_mean"`
	ServiceCheckinCounterStd  float64 `yaml:"service_checkin_counter_std"`
	ServiceBaggageCounterMean float64 `yaml:"service_baggage_counter_mean"` // tag + drop combined
	ServiceBaggageCounterStd  float64 `yaml:"service_baggage_counter_std"`
	ServiceTagKioskMean       float64 `yaml:"service_tag_kiosk_mean"`
	ServiceTagKioskStd        float64 `yaml:"service_tag_kiosk_std"`
	ServiceDropPointMean      float64 `yaml:"service_drop_point_mean"`
	ServiceDropPointStd       float64 `yaml:"service_drop_point_std"`
	ServiceTimeFloorSec       float64 `yaml:"service_time_floor_sec"`

	// Fixed transit delays.
	OnlineCheckinDelaySec   float64 `yaml:"online_checkin_delay_sec"`
	SecurityTransitDelaySec float64 `yaml:"security_transit_delay_sec"`

	// Position probe interval.
	SampleIntervalSec float64 `yaml:"sample_interval_sec"`

	// Horizon buffer added after the last scheduled departure. Groups still
	// in flight at the horizon are dropped silently; size this generously
	// if completion must be guaranteed.
	HorizonBufferSec float64 `yaml:"horizon_buffer_sec"`

	// Random seed.
	Seed int64 `yaml:"seed"`
}

// DefaultConfig returns the reference parameter set.
func DefaultConfig() *SimulationConfig {
	return &SimulationConfig{
		ArrivalDF:            7,
		ArrivalMeanMinBefore: 70,
		ArrivalScale:         20,
		ArrivalRangeMin:      20,
		ArrivalRangeMax:      120,

		POnline:         0.3,
		PKiosk:          0.5,
		PCounter:        0.2,
		PBaggage:        0.5,
		PBaggageCounter: 0.4,

		PSingle:       0.7,
		GroupMultiMin: 2,
		GroupMultiMax: 4,

		CapacityCheckinKiosk:   8,
		CapacityCheckinCounter: 6,
		CapacityBaggageCounter: 4,
		CapacityTagKiosk:       4,
		CapacityDropPoint:      4,

		ServiceCheckinKioskMean:   70,
		ServiceCheckinKioskStd:    15,
		ServiceCheckinCounterMean: 180,
		ServiceCheckinCounterStd:  40,
		ServiceBaggageCounterMean: 150,
		ServiceBaggageCounterStd:  35,
		ServiceTagKioskMean:       45,
		ServiceTagKioskStd:        10,
		ServiceDropPointMean:      120,
		ServiceDropPointStd:       30,
		ServiceTimeFloorSec:       1,

		OnlineCheckinDelaySec:   5,
		SecurityTransitDelaySec: 10,

		SampleIntervalSec: 10,
		HorizonBufferSec:  3600,

		Seed: 42,
	}
}

// Validate checks every field against its domain. It returns the first
// violation found; a nil result means the config can start a run.
func (c *SimulationConfig) Validate() error {
	if c.ArrivalDF <= 0 {
		return fmt.Errorf("config: arrival_df must be > 0, got %v", c.ArrivalDF)
	}
	if c.ArrivalScale <= 0 {
		return fmt.Errorf("config: arrival_scale must be > 0, got %v", c.ArrivalScale)
	}
	if c.ArrivalRangeMin >= c.ArrivalRangeMax {
		return fmt.Errorf("config: arrival_range_min %v must be below arrival_range_max %v",
			c.ArrivalRangeMin, c.ArrivalRangeMax)
	}

	for _, p := range []struct {
		name string
		val  float64
	}{
		{"p_online", c.POnline},
		{"p_kiosk", c.PKiosk},
		{"p_counter", c.PCounter},
		{"p_baggage", c.PBaggage},
		{"p_baggage_counter", c.PBaggageCounter},
		{"p_single", c.PSingle},
	} {
		if p.val < 0 || p.val > 1 {
			return fmt.Errorf("config: %s must be in [0,1], got %v", p.name, p.val)
		}
	}
	if c.POnline+c.PKiosk+c.PCounter <= 0 {
		return fmt.Errorf("config: check-in split p_online+p_kiosk+p_counter must be > 0")
	}

	if c.GroupMultiMin < 1 {
		return fmt.Errorf("config: group_multi_min must be >= 1, got %d", c.GroupMultiMin)
	}
	if c.GroupMultiMax < c.GroupMultiMin {
		return fmt.Errorf("config: group_multi_max %d must be >= group_multi_min %d",
			c.GroupMultiMax, c.GroupMultiMin)
	}

	for _, cp := range []struct {
		name string
		val  int
	}{
		{"capacity_checkin_kiosk", c.CapacityCheckinKiosk},
		{"capacity_checkin_counter", c.CapacityCheckinCounter},
		{"capacity_baggage_counter", c.CapacityBaggageCounter},
		{"capacity_tag_kiosk", c.CapacityTagKiosk},
		{"capacity_drop_point", c.CapacityDropPoint},
	} {
		if cp.val <= 0 {
			return fmt.Errorf("config: %s must be > 0, got %d", cp.name, cp.val)
		}
	}

	for _, sv := range []struct {
		name string
		val  float64
	}{
		{"service_checkin_kiosk_mean", c.ServiceCheckinKioskMean},
		{"service_checkin_counter_mean", c.ServiceCheckinCounterMean},
		{"service_baggage_counter_mean", c.ServiceBaggageCounterMean},
		{"service_tag_kiosk_mean", c.ServiceTagKioskMean},
		{"service_drop_point_mean", c.ServiceDropPointMean},
	} {
		if sv.val <= 0 {
			return fmt.Errorf("config: %s must be > 0, got %v", sv.name, sv.val)
		}
	}
	for _, sv := range []struct {
		name string
		val  float64
	}{
		{"service_checkin_kiosk_std", c.ServiceCheckinKioskStd},
		{"service_checkin_counter_std", c.ServiceCheckinCounterStd},
		{"service_baggage_counter_std", c.ServiceBaggageCounterStd},
		{"service_tag_kiosk_std", c.ServiceTagKioskStd},
		{"service_drop_point_std", c.ServiceDropPointStd},
	} {
		if sv.val < 0 {
			return fmt.Errorf("config: %s must be >= 0, got %v", sv.name, sv.val)
		}
	}
	if c.ServiceTimeFloorSec < 0 {
		return fmt.Errorf("config: service_time_floor_sec must be >= 0, got %v", c.ServiceTimeFloorSec)
	}

	if c.OnlineCheckinDelaySec < 0 {
		return fmt.Errorf("config: online_checkin_delay_sec must be >= 0, got %v", c.OnlineCheckinDelaySec)
	}
	if c.SecurityTransitDelaySec < 0 {
		return fmt.Errorf("config: security_transit_delay_sec must be >= 0, got %v", c.SecurityTransitDelaySec)
	}
	if c.SampleIntervalSec <= 0 {
		return fmt.Errorf("config: sample_interval_sec must be > 0, got %v", c.SampleIntervalSec)
	}
	if c.HorizonBufferSec < 0 {
		return fmt.Errorf("config: horizon_buffer_sec must be >= 0, got %v", c.HorizonBufferSec)
	}

	return nil
}

// serviceSamplers builds the per-station service-time samplers.
func (c *SimulationConfig) serviceSamplers() map[string]*ServiceSampler {
	return map[string]*ServiceSampler{
		StationCheckinKiosk:   {Mean: c.ServiceCheckinKioskMean, Std: c.ServiceCheckinKioskStd, Floor: c.ServiceTimeFloorSec},
		StationCheckinCounter: {Mean: c.ServiceCheckinCounterMean, Std: c.ServiceCheckinCounterStd, Floor: c.ServiceTimeFloorSec},
		StationBaggageCounter: {Mean: c.ServiceBaggageCounterMean, Std: c.ServiceBaggageCounterStd, Floor: c.ServiceTimeFloorSec},
		StationTagKiosk:       {Mean: c.ServiceTagKioskMean, Std: c.ServiceTagKioskStd, Floor: c.ServiceTimeFloorSec},
		StationDropPoint:      {Mean: c.ServiceDropPointMean, Std: c.ServiceDropPointStd, Floor: c.ServiceTimeFloorSec},
	}
}
