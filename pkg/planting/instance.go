package planting

import "time"

type SeedingMethod string

const (
	SeedingUnset      SeedingMethod = ""
	SeedingPotStarted SeedingMethod = "pot-started"
	SeedingDirectSown SeedingMethod = "direct-sown"
)

// Instance is the temporal record attached to one occupied grid cell.
// Every field is optional; an instance with nothing set is treated as
// "no temporal data" and gets dropped by the grid.
type Instance struct {
	Method SeedingMethod

	PlannedSeedStart *time.Time
	SeedStarted      *time.Time
	PlannedPlanting  *time.Time
	Planted          *time.Time
	ActualHarvest    *time.Time
}

// Empty reports whether the instance carries no temporal data at all.
func (in *Instance) Empty() bool {
	return in.PlannedSeedStart == nil && in.SeedStarted == nil &&
		in.PlannedPlanting == nil && in.Planted == nil && in.ActualHarvest == nil
}

// EffectiveSeedStart returns the actual seed-start date if recorded,
// else the planned one.
func (in *Instance) EffectiveSeedStart() *time.Time {
	if in.SeedStarted != nil {
		return in.SeedStarted
	}
	return in.PlannedSeedStart
}

// EffectivePlanted returns the actual planted date if recorded, else the
// planned one.
func (in *Instance) EffectivePlanted() *time.Time {
	if in.Planted != nil {
		return in.Planted
	}
	return in.PlannedPlanting
}

// SetMethod changes the seeding method. Switching to direct-sown re-syncs
// the seed-started and planted dates (one sowing operation records both).
func (in *Instance) SetMethod(m SeedingMethod) {
	in.Method = m
	if m == SeedingDirectSown {
		in.syncDirectSown()
	}
}

// SetSeedStarted records the actual seed-start date. For direct-sown
// instances the planted date is the same event and is kept identical.
func (in *Instance) SetSeedStarted(d *time.Time) {
	in.SeedStarted = copyDate(d)
	if in.Method == SeedingDirectSown {
		in.Planted = copyDate(d)
	}
}

// SetPlanted records the actual planted date, propagating to the
// seed-started date for direct-sown instances.
func (in *Instance) SetPlanted(d *time.Time) {
	in.Planted = copyDate(d)
	if in.Method == SeedingDirectSown {
		in.SeedStarted = copyDate(d)
	}
}

func (in *Instance) syncDirectSown() {
	switch {
	case in.SeedStarted != nil:
		in.Planted = copyDate(in.SeedStarted)
	case in.Planted != nil:
		in.SeedStarted = copyDate(in.Planted)
	}
}

func copyDate(d *time.Time) *time.Time {
	if d == nil {
		return nil
	}
	v := Midnight(*d)
	return &v
}
