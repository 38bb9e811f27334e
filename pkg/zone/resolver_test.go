package zone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMonthDay(t *testing.T) {
	md, err := ParseMonthDay("05-15")
	require.NoError(t, err)
	assert.Equal(t, time.May, md.Month)
	assert.Equal(t, 15, md.Day)
	assert.Equal(t, "05-15", md.String())

	for _, bad := range []string{"", "nope", "13-01", "02-30", "00-10"} {
		_, err := ParseMonthDay(bad)
		assert.Error(t, err, bad)
	}
}

func TestResolveKnownZone(t *testing.T) {
	ctx := Resolve(Builtin, "7a", nil)
	assert.Equal(t, "7a", ctx.Zone)
	assert.NotZero(t, ctx.GrowingSeasonDays)
}

func TestResolveUnknownZoneFallsBackToDefault(t *testing.T) {
	for _, code := range []string{"", "99z", "5B", "moon"} {
		ctx := Resolve(Builtin, code, nil)
		assert.Equal(t, DefaultZone, ctx.Zone, code)
		assert.Equal(t, MonthDay{Month: time.May, Day: 15}, ctx.LastFrost)
		assert.Equal(t, MonthDay{Month: time.October, Day: 15}, ctx.FirstFrost)
		assert.Equal(t, 153, ctx.GrowingSeasonDays)
	}
}

func TestResolveNilSourceUsesBuiltin(t *testing.T) {
	ctx := Resolve(nil, "6b", nil)
	assert.Equal(t, "6b", ctx.Zone)
}

func TestOverrideNeedsBothFields(t *testing.T) {
	base := Resolve(Builtin, "5b", nil)

	partial := Resolve(Builtin, "5b", &Override{LastFrost: "04-20"})
	assert.Equal(t, base.LastFrost, partial.LastFrost, "half an override changes nothing")

	unparseable := Resolve(Builtin, "5b", &Override{LastFrost: "04-20", FirstFrost: "no"})
	assert.Equal(t, base.FirstFrost, unparseable.FirstFrost)

	full := Resolve(Builtin, "5b", &Override{LastFrost: "04-20", FirstFrost: "11-01"})
	assert.Equal(t, MonthDay{Month: time.April, Day: 20}, full.LastFrost)
	assert.Equal(t, MonthDay{Month: time.November, Day: 1}, full.FirstFrost)
}

func TestOverrideRecomputesSeasonLength(t *testing.T) {
	ctx := Resolve(Builtin, "5b", &Override{LastFrost: "05-01", FirstFrost: "10-01"})
	assert.Equal(t, 153, ctx.GrowingSeasonDays)

	// Frost-free wrap across new year.
	wrap := Resolve(Builtin, "10b", &Override{LastFrost: "12-01", FirstFrost: "02-01"})
	assert.Equal(t, 62, wrap.GrowingSeasonDays)
}

func TestBuiltinTableComplete(t *testing.T) {
	assert.Len(t, Table, 16)
	seen := map[string]bool{}
	for _, r := range Table {
		assert.False(t, seen[r.Zone], "duplicate zone %s", r.Zone)
		seen[r.Zone] = true
		assert.True(t, r.LastFrost.Valid(), r.Zone)
		assert.True(t, r.FirstFrost.Valid(), r.Zone)
		assert.Positive(t, r.GrowingSeasonDays, r.Zone)
	}
}
