package entities

import "time"

// Plant is a catalog entry. Timing fields are nullable because not every
// species has full data; the date calculator treats missing values as
// "unknown", never as zero.
type Plant struct {
	PlantID   uint   `gorm:"primaryKey" json:"plant_id"`
	Name      string `gorm:"uniqueIndex" json:"name"`
	LatinName string `json:"latin_name"`
	Symbol    string `json:"symbol"` // 1-2 chars, used by grid renderings
	Color     string `json:"color"`
	PlantType string `json:"plant_type"` // vegetable|herb|flower|fruit|companion|cover_crop|utility
	LifeCycle string `json:"life_cycle"` // annual|biennial|perennial

	PlantingSeasons []string `gorm:"serializer:json" json:"planting_seasons"`

	// Seed-to-harvest timing. DirectSow species skip the transplant stage.
	DirectSow                 bool `json:"direct_sow"`
	DaysToGermination         *int `json:"days_to_germination"`
	DaysBeforeTransplantReady *int `json:"days_before_transplant_ready"`
	TransplantToHarvestDays   *int `json:"transplant_to_harvest_days"`
	DaysToHarvest             *int `json:"days_to_harvest"`

	SpacingInches    float64  `json:"spacing_inches"`
	YieldPerPlant    string   `json:"yield_per_plant"`
	ZoneNotes        string   `json:"zone_notes"`
	PestDeterrentFor string   `json:"pest_deterrent_for"`
	Companions       []string `gorm:"serializer:json" json:"companions"`

	IsDefault bool `json:"is_default"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
