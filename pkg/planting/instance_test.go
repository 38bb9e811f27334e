package planting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectSownCouplesSeedAndPlantDates(t *testing.T) {
	in := &Instance{Method: SeedingDirectSown}
	in.SetSeedStarted(dp(2025, time.April, 10))

	require.NotNil(t, in.Planted)
	assert.Equal(t, d(2025, time.April, 10), *in.Planted, "sowing in place is one event")

	in.SetPlanted(dp(2025, time.April, 12))
	require.NotNil(t, in.SeedStarted)
	assert.Equal(t, d(2025, time.April, 12), *in.SeedStarted)
}

func TestPotStartedKeepsDatesIndependent(t *testing.T) {
	in := &Instance{Method: SeedingPotStarted}
	in.SetSeedStarted(dp(2025, time.March, 1))
	assert.Nil(t, in.Planted)

	in.SetPlanted(dp(2025, time.May, 15))
	assert.Equal(t, d(2025, time.March, 1), *in.SeedStarted)
}

func TestSwitchingToDirectSownResyncs(t *testing.T) {
	in := &Instance{Method: SeedingPotStarted}
	in.SetSeedStarted(dp(2025, time.April, 1))
	require.Nil(t, in.Planted)

	in.SetMethod(SeedingDirectSown)
	require.NotNil(t, in.Planted)
	assert.Equal(t, d(2025, time.April, 1), *in.Planted)
}

func TestEffectiveDates(t *testing.T) {
	in := &Instance{
		PlannedSeedStart: dp(2025, time.February, 20),
		PlannedPlanting:  dp(2025, time.May, 1),
	}
	assert.Equal(t, d(2025, time.February, 20), *in.EffectiveSeedStart())
	assert.Equal(t, d(2025, time.May, 1), *in.EffectivePlanted())

	in.SeedStarted = dp(2025, time.March, 1)
	in.Planted = dp(2025, time.May, 10)
	assert.Equal(t, d(2025, time.March, 1), *in.EffectiveSeedStart())
	assert.Equal(t, d(2025, time.May, 10), *in.EffectivePlanted())
}

func TestEmpty(t *testing.T) {
	in := &Instance{Method: SeedingDirectSown}
	assert.True(t, in.Empty(), "method alone is not temporal data")
	in.PlannedPlanting = dp(2025, time.May, 1)
	assert.False(t, in.Empty())
}

func TestStatusLadder(t *testing.T) {
	today := d(2025, time.July, 1)
	params := GrowthParams{DaysToHarvest: ip(30)}

	cases := []struct {
		name string
		in   Instance
		want Status
	}{
		{"nothing recorded", Instance{}, StatusNotPlanted},
		{"planned only still counts", Instance{PlannedPlanting: dp(2025, time.June, 4)}, StatusSoon},
		{"pot seedling", Instance{Method: SeedingPotStarted, SeedStarted: dp(2025, time.June, 1)}, StatusSeedling},
		{"mid growth", Instance{Planted: dp(2025, time.June, 20)}, StatusGrowing},
		{"due today", Instance{Planted: dp(2025, time.June, 1)}, StatusReady},
		{"within window", Instance{Planted: dp(2025, time.June, 5)}, StatusSoon},
		{"past due", Instance{Planted: dp(2025, time.May, 1)}, StatusOverdue},
		{"done", Instance{Planted: dp(2025, time.May, 1), ActualHarvest: dp(2025, time.June, 28)}, StatusHarvested},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Calculate(tc.in, params, today)
			assert.Equal(t, tc.want, DeriveStatus(tc.in, got))
		})
	}
}
