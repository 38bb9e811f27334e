package zone

// Source looks a zone record up by its code. A miss is normal (user
// typo, stale profile) and resolution falls through to the default.
type Source interface {
	Zone(code string) (Record, bool)
}

// Record is one row of the hardiness zone table.
type Record struct {
	Zone              string
	RegionExamples    string
	LastFrost         MonthDay
	FirstFrost        MonthDay
	AvgAnnualMinTempF int
	AvgSummerHighF    int
	GrowingSeasonDays int
	CommonSoilTypes   string
	HumidityLevel     string
	Notes             string
}

// Override is a user-entered custom frost-date pair, raw "MM-DD" strings.
// It only wins when both fields are present and parseable.
type Override struct {
	LastFrost  string
	FirstFrost string
}

// Context is the resolved climate view date calculations consume.
type Context struct {
	Zone              string
	LastFrost         MonthDay
	FirstFrost        MonthDay
	GrowingSeasonDays int
	Notes             string
}

// DefaultZone backs every failed lookup. Zone data gaps must never block
// date calculation, so Resolve is total: any zone string resolves.
const DefaultZone = "5b"

// Resolve maps a zone code plus an optional custom override to frost
// dates and season length. Resolution order: override (both fields set)
// over table lookup over the hardcoded default. Never fails.
func Resolve(src Source, zoneID string, ov *Override) Context {
	if src == nil {
		src = Builtin
	}
	rec, ok := src.Zone(zoneID)
	if !ok {
		if rec, ok = src.Zone(DefaultZone); !ok {
			rec, _ = Builtin.Zone(DefaultZone)
		}
	}

	ctx := Context{
		Zone:              rec.Zone,
		LastFrost:         rec.LastFrost,
		FirstFrost:        rec.FirstFrost,
		GrowingSeasonDays: rec.GrowingSeasonDays,
		Notes:             rec.Notes,
	}

	if ov != nil && ov.LastFrost != "" && ov.FirstFrost != "" {
		last, errL := ParseMonthDay(ov.LastFrost)
		first, errF := ParseMonthDay(ov.FirstFrost)
		if errL == nil && errF == nil {
			ctx.LastFrost = last
			ctx.FirstFrost = first
			ctx.GrowingSeasonDays = seasonDays(last, first)
		}
	}

	return ctx
}

// seasonDays measures last frost to first frost in a non-leap year,
// wrapping across new year for frost-free climates.
func seasonDays(last, first MonthDay) int {
	const year = 2025
	days := int(first.InYear(year).Sub(last.InYear(year)).Hours() / 24)
	if days < 0 {
		days += 365
	}
	return days
}
