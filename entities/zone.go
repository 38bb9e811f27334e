package entities

import "time"

// ClimateZone mirrors the USDA hardiness zone table. Seeded at bootstrap;
// read-only afterwards except administrative correction.
type ClimateZone struct {
	Zone                  string `gorm:"primaryKey" json:"zone"`
	RegionExamples        string `json:"region_examples"`
	TypicalLastFrost      string `json:"typical_last_frost"`  // MM-DD
	TypicalFirstFrost     string `json:"typical_first_frost"` // MM-DD
	AvgAnnualMinTempF     int    `json:"avg_annual_min_temp_f"`
	AvgSummerHighF        int    `json:"avg_summer_high_f"`
	GrowingSeasonDays     int    `json:"growing_season_days"`
	CommonSoilTypes       string `json:"common_soil_types"`
	HumidityLevel         string `json:"humidity_level"`
	SpecialConsiderations string `json:"special_considerations"`
}

// UserProfile carries the user's chosen zone plus an optional custom
// frost-date override pair. Both override fields must be set for the
// override to win; otherwise the zone table drives resolution.
type UserProfile struct {
	UserID           string `gorm:"primaryKey" json:"user_id"`
	Zone             string `json:"zone"`
	CustomLastFrost  string `json:"custom_last_frost"`  // MM-DD or empty
	CustomFirstFrost string `json:"custom_first_frost"` // MM-DD or empty
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
