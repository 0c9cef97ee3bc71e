package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupFactory_MonotonicIDsFromZero(t *testing.T) {
	f := NewGroupFactory(DefaultConfig(), rand.New(rand.NewSource(1)))
	for i := 0; i < 20; i++ {
		g := f.NewGroup(0, 100)
		assert.Equal(t, i, g.ID)
	}
}

func TestGroupFactory_SizeWithinConfiguredRange(t *testing.T) {
	cfg := DefaultConfig()
	f := NewGroupFactory(cfg, rand.New(rand.NewSource(2)))

	sawSingle, sawMulti := false, false
	for i := 0; i < 2000; i++ {
		g := f.NewGroup(0, 100)
		require.GreaterOrEqual(t, g.Size, 1)
		if g.Size == 1 {
			sawSingle = true
		} else {
			sawMulti = true
			assert.GreaterOrEqual(t, g.Size, cfg.GroupMultiMin)
			assert.LessOrEqual(t, g.Size, cfg.GroupMultiMax)
		}
	}
	assert.True(t, sawSingle, "p_single=0.7 should produce singles")
	assert.True(t, sawMulti, "p_single=0.7 should produce multi groups")
}

func TestGroupFactory_CheckinSplitNormalized(t *testing.T) {
	// GIVEN an unnormalized split 2:1:1
	cfg := DefaultConfig()
	cfg.POnline, cfg.PKiosk, cfg.PCounter = 2, 1, 1
	require.Error(t, cfg.Validate(), "raw weights above 1 are rejected by Validate")

	// Probabilities within [0,1] that do not sum to 1 are normalized.
	cfg.POnline, cfg.PKiosk, cfg.PCounter = 0.2, 0.1, 0.1
	require.NoError(t, cfg.Validate())
	f := NewGroupFactory(cfg, rand.New(rand.NewSource(3)))

	counts := map[CheckinMode]int{}
	n := 10000
	for i := 0; i < n; i++ {
		counts[f.NewGroup(0, 100).CheckinMode]++
	}
	// Normalized to 0.5 / 0.25 / 0.25.
	assert.InDelta(t, 0.5, float64(counts[CheckinOnline])/float64(n), 0.05)
	assert.InDelta(t, 0.25, float64(counts[CheckinKiosk])/float64(n), 0.05)
	assert.InDelta(t, 0.25, float64(counts[CheckinCounter])/float64(n), 0.05)
}

func TestGroupFactory_BaggageBranching(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PBaggage = 0 // nobody checks baggage
	f := NewGroupFactory(cfg, rand.New(rand.NewSource(4)))
	for i := 0; i < 100; i++ {
		assert.Equal(t, BaggageNone, f.NewGroup(0, 100).BaggageMode)
	}

	cfg = DefaultConfig()
	cfg.PBaggage = 1
	cfg.PBaggageCounter = 1 // everyone with baggage uses the combined counter
	f = NewGroupFactory(cfg, rand.New(rand.NewSource(4)))
	for i := 0; i < 100; i++ {
		assert.Equal(t, BaggageCounter, f.NewGroup(0, 100).BaggageMode)
	}
}

func TestGroupFactory_DeterministicForFixedSeed(t *testing.T) {
	f1 := NewGroupFactory(DefaultConfig(), rand.New(rand.NewSource(5)))
	f2 := NewGroupFactory(DefaultConfig(), rand.New(rand.NewSource(5)))

	for i := 0; i < 200; i++ {
		g1 := f1.NewGroup(0, 100)
		g2 := f2.NewGroup(0, 100)
		assert.Equal(t, g1.Size, g2.Size)
		assert.Equal(t, g1.CheckinMode, g2.CheckinMode)
		assert.Equal(t, g1.BaggageMode, g2.BaggageMode)
	}
}

func TestStageTimes_Wait(t *testing.T) {
	assert.Equal(t, 0.0, StageTimes{}.Wait())
	st := StageTimes{Visited: true, QueueEnter: 10, ServiceStart: 25, ServiceEnd: 40}
	assert.Equal(t, 15.0, st.Wait())
}
