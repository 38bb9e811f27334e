package planting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

func dp(y int, m time.Month, day int) *time.Time {
	v := d(y, m, day)
	return &v
}

func ip(v int) *int { return &v }

// Tomato-style params: started in pots, 7 days to germinate, 35 more
// before the seedling is transplant-ready, 75 days seed to table.
func tomatoParams() GrowthParams {
	return GrowthParams{
		DaysToGermination:         ip(7),
		DaysBeforeTransplantReady: ip(35),
		DaysToHarvest:             ip(75),
	}
}

func TestCalculateSeedlingTimeline(t *testing.T) {
	in := Instance{
		Method:      SeedingPotStarted,
		SeedStarted: dp(2025, time.March, 1),
	}
	got := Calculate(in, tomatoParams(), d(2025, time.March, 10))

	require.NotNil(t, got.ExpectedTransplant)
	assert.Equal(t, d(2025, time.April, 12), *got.ExpectedTransplant)
	assert.Nil(t, got.ExpectedHarvest, "no planted date means no harvest estimate")
	assert.Nil(t, got.DaysUntilHarvest)
	assert.Equal(t, StatusSeedling, DeriveStatus(in, got))
}

func TestCalculateHarvestCountdown(t *testing.T) {
	in := Instance{
		Method:      SeedingPotStarted,
		SeedStarted: dp(2025, time.March, 1),
		Planted:     dp(2025, time.May, 15),
	}
	got := Calculate(in, tomatoParams(), d(2025, time.July, 25))

	require.NotNil(t, got.ExpectedHarvest)
	assert.Equal(t, d(2025, time.July, 29), *got.ExpectedHarvest)
	require.NotNil(t, got.DaysUntilHarvest)
	assert.Equal(t, 4, *got.DaysUntilHarvest)
	assert.Equal(t, StatusSoon, DeriveStatus(in, got))
}

func TestHarvestedWinsOverEverything(t *testing.T) {
	in := Instance{
		Method:        SeedingPotStarted,
		SeedStarted:   dp(2025, time.March, 1),
		Planted:       dp(2025, time.May, 15),
		ActualHarvest: dp(2025, time.July, 29),
	}
	got := Calculate(in, tomatoParams(), d(2025, time.December, 1))
	assert.Equal(t, StatusHarvested, DeriveStatus(in, got))
}

func TestActualDatesTakePrecedenceOverPlanned(t *testing.T) {
	in := Instance{
		Method:          SeedingDirectSown,
		PlannedPlanting: dp(2025, time.May, 1),
	}
	got := Calculate(in, GrowthParams{DaysToHarvest: ip(50)}, d(2025, time.May, 1))
	require.NotNil(t, got.ExpectedHarvest)
	assert.Equal(t, d(2025, time.June, 20), *got.ExpectedHarvest)

	in.Planted = dp(2025, time.May, 10)
	got = Calculate(in, GrowthParams{DaysToHarvest: ip(50)}, d(2025, time.May, 10))
	require.NotNil(t, got.ExpectedHarvest)
	assert.Equal(t, d(2025, time.June, 29), *got.ExpectedHarvest,
		"recorded date replaces the plan in all downstream math")
}

func TestTransplantRelativeSpanPreferred(t *testing.T) {
	p := GrowthParams{
		TransplantToHarvestDays: ip(65),
		DaysToHarvest:           ip(75),
	}
	in := Instance{Planted: dp(2025, time.May, 15)}
	got := Calculate(in, p, d(2025, time.May, 15))
	require.NotNil(t, got.ExpectedHarvest)
	assert.Equal(t, d(2025, time.July, 19), *got.ExpectedHarvest)
}

func TestTransplantSpanPartialParams(t *testing.T) {
	in := Instance{
		Method:      SeedingPotStarted,
		SeedStarted: dp(2025, time.March, 1),
	}

	// Only germination known: still an estimate.
	got := Calculate(in, GrowthParams{DaysToGermination: ip(7)}, d(2025, time.March, 1))
	require.NotNil(t, got.ExpectedTransplant)
	assert.Equal(t, d(2025, time.March, 8), *got.ExpectedTransplant)

	// Neither known: no estimate.
	got = Calculate(in, GrowthParams{}, d(2025, time.March, 1))
	assert.Nil(t, got.ExpectedTransplant)
}

func TestDirectSownGetsNoTransplantDate(t *testing.T) {
	in := Instance{
		Method:      SeedingDirectSown,
		SeedStarted: dp(2025, time.April, 1),
	}
	got := Calculate(in, tomatoParams(), d(2025, time.April, 1))
	assert.Nil(t, got.ExpectedTransplant)
}

func TestMissingTimingYieldsGrowing(t *testing.T) {
	in := Instance{Planted: dp(2025, time.May, 1)}
	got := Calculate(in, GrowthParams{}, d(2025, time.August, 1))
	assert.Nil(t, got.ExpectedHarvest)
	assert.Equal(t, StatusGrowing, DeriveStatus(in, got))
}

func TestNegativeCountdownPermitted(t *testing.T) {
	// Harvest recorded before planting is deliberately not rejected.
	in := Instance{Planted: dp(2025, time.August, 1)}
	got := Calculate(in, GrowthParams{DaysToHarvest: ip(10)}, d(2025, time.September, 30))
	require.NotNil(t, got.DaysUntilHarvest)
	assert.Equal(t, -50, *got.DaysUntilHarvest)
	assert.Equal(t, StatusOverdue, DeriveStatus(in, got))
}

func TestMidnightNormalizesClockTime(t *testing.T) {
	noisy := time.Date(2025, time.July, 25, 23, 59, 58, 0, time.UTC)
	in := Instance{Planted: dp(2025, time.May, 15)}
	got := Calculate(in, tomatoParams(), noisy)
	require.NotNil(t, got.DaysUntilHarvest)
	assert.Equal(t, 4, *got.DaysUntilHarvest, "day count is stable for the whole day")
}
