package planting

// Status is the derived lifecycle state of a placement. It is never
// stored; callers recompute it from dates on every read so it cannot
// drift from the underlying data.
type Status string

const (
	StatusNotPlanted Status = "not-planted"
	StatusSeedling   Status = "seedling"
	StatusGrowing    Status = "growing"
	StatusSoon       Status = "soon"
	StatusReady      Status = "ready"
	StatusOverdue    Status = "overdue"
	StatusHarvested  Status = "harvested"
)

// NearTermWindowDays is how close a harvest date has to be before the
// status flips from growing to soon.
const NearTermWindowDays = 7

// DeriveStatus maps an instance and its derived dates onto one of the
// seven states. Rules are evaluated top to bottom, first match wins.
func DeriveStatus(in Instance, d Derived) Status {
	if in.ActualHarvest != nil {
		return StatusHarvested
	}
	if in.EffectivePlanted() == nil && in.EffectiveSeedStart() == nil {
		return StatusNotPlanted
	}
	if in.Method == SeedingPotStarted && in.EffectiveSeedStart() != nil && in.EffectivePlanted() == nil {
		return StatusSeedling
	}
	if d.ExpectedHarvest == nil || d.DaysUntilHarvest == nil {
		// Planted, but yield timing unknown.
		return StatusGrowing
	}
	switch days := *d.DaysUntilHarvest; {
	case days < 0:
		return StatusOverdue
	case days == 0:
		return StatusReady
	case days <= NearTermWindowDays:
		return StatusSoon
	default:
		return StatusGrowing
	}
}
