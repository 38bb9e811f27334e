package planting

import "time"

// GrowthParams are the catalog timing fields a calculation consumes.
// Nil means the species has no recorded value for that stage.
type GrowthParams struct {
	DaysToGermination         *int
	DaysBeforeTransplantReady *int
	TransplantToHarvestDays   *int
	DaysToHarvest             *int
}

// Derived holds the display-ready values computed on every read. Nil
// pointers mean "unknown", which is distinct from "due today".
type Derived struct {
	ExpectedTransplant *time.Time
	ExpectedHarvest    *time.Time
	DaysUntilHarvest   *int
}

// Midnight truncates a timestamp to its calendar day in UTC. All date
// arithmetic here is calendar-day arithmetic; normalizing both operands
// keeps day counts stable for the whole day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Calculate derives the expected transplant and harvest dates plus the
// day count to harvest, from recorded dates and catalog timing. It never
// errors; missing inputs produce nil derived values.
func Calculate(in Instance, p GrowthParams, today time.Time) Derived {
	var d Derived

	if in.Method == SeedingPotStarted {
		if start := in.EffectiveSeedStart(); start != nil {
			if span, ok := transplantSpan(p); ok {
				t := Midnight(*start).AddDate(0, 0, span)
				d.ExpectedTransplant = &t
			}
		}
	}

	if planted := in.EffectivePlanted(); planted != nil {
		if span, ok := harvestSpan(p); ok {
			h := Midnight(*planted).AddDate(0, 0, span)
			d.ExpectedHarvest = &h
		}
	}

	if d.ExpectedHarvest != nil {
		days := daysBetween(Midnight(today), *d.ExpectedHarvest)
		d.DaysUntilHarvest = &days
	}

	return d
}

// transplantSpan sums germination and pot-growing time. Only when both
// parameters are absent is the span unknown.
func transplantSpan(p GrowthParams) (int, bool) {
	if p.DaysToGermination == nil && p.DaysBeforeTransplantReady == nil {
		return 0, false
	}
	span := 0
	if p.DaysToGermination != nil {
		span += *p.DaysToGermination
	}
	if p.DaysBeforeTransplantReady != nil {
		span += *p.DaysBeforeTransplantReady
	}
	return span, true
}

// harvestSpan prefers the transplant-relative figure over the generic
// days-to-harvest one.
func harvestSpan(p GrowthParams) (int, bool) {
	if p.TransplantToHarvestDays != nil {
		return *p.TransplantToHarvestDays, true
	}
	if p.DaysToHarvest != nil {
		return *p.DaysToHarvest, true
	}
	return 0, false
}

func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
