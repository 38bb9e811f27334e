package entities

import "time"

// Garden holds the persisted spatial state. LayoutJSON is the serialized
// occupant grid ({"grid": [["empty space", ...], ...]}); temporal data
// lives in PlantInstance rows keyed by coordinate.
type Garden struct {
	GardenID    uint   `gorm:"primaryKey" json:"garden_id"`
	UserID      string `gorm:"index" json:"user_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	LayoutJSON  string `json:"-"`
	IsPublic    bool   `json:"is_public"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// PlantInstance is the temporal record for one occupied cell. All date
// fields are nullable; a row with no dates at all is dropped rather than
// stored.
type PlantInstance struct {
	InstanceID uint `gorm:"primaryKey" json:"instance_id"`
	GardenID   uint `gorm:"index;uniqueIndex:idx_garden_cell" json:"garden_id"`
	Row        int  `gorm:"uniqueIndex:idx_garden_cell" json:"row"`
	Col        int  `gorm:"uniqueIndex:idx_garden_cell" json:"col"`

	SeedingMethod string `json:"seeding_method"` // pot-started|direct-sown|""

	PlannedSeedStartDate *time.Time `json:"planned_seed_start_date"`
	SeedStartedDate      *time.Time `json:"seed_started_date"`
	PlannedPlantingDate  *time.Time `json:"planned_planting_date"`
	PlantedDate          *time.Time `json:"planted_date"`
	ActualHarvestDate    *time.Time `json:"actual_harvest_date"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PlantingNote is a journal entry attached to a garden, optionally pinned
// to a grid position.
type PlantingNote struct {
	NoteID       uint   `gorm:"primaryKey" json:"note_id"`
	GardenID     uint   `gorm:"index" json:"garden_id"`
	PlantName    string `json:"plant_name"`
	Title        string `json:"title"`
	NoteText     string `json:"note_text"`
	GridPosition string `json:"grid_position"` // e.g. "2,5"
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
