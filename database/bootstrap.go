package database

import (
	"log"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"plot/entities"
	"plot/pkg/zone"
)

func OpenSQLite(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&entities.Plant{},
		&entities.Garden{},
		&entities.PlantInstance{},
		&entities.PlantingNote{},
		&entities.ClimateZone{},
		&entities.UserProfile{},
		&entities.GuideDoc{},
		&entities.GuideChunk{},
	); err != nil {
		log.Fatalf("automigrate: %v", err)
	}
	return db
}

// Seed fills the climate zone table and the default plant catalog.
// Idempotent: existing rows are left alone so user edits survive
// restarts.
func Seed(db *gorm.DB) {
	seedZones(db)
	seedPlants(db)
}

func seedZones(db *gorm.DB) {
	var n int64
	db.Model(&entities.ClimateZone{}).Count(&n)
	if n > 0 {
		return
	}
	rows := make([]entities.ClimateZone, 0, len(zone.Table))
	for _, r := range zone.Table {
		rows = append(rows, entities.ClimateZone{
			Zone:                  r.Zone,
			RegionExamples:        r.RegionExamples,
			TypicalLastFrost:      r.LastFrost.String(),
			TypicalFirstFrost:     r.FirstFrost.String(),
			AvgAnnualMinTempF:     r.AvgAnnualMinTempF,
			AvgSummerHighF:        r.AvgSummerHighF,
			GrowingSeasonDays:     r.GrowingSeasonDays,
			CommonSoilTypes:       r.CommonSoilTypes,
			HumidityLevel:         r.HumidityLevel,
			SpecialConsiderations: r.Notes,
		})
	}
	if err := db.Create(&rows).Error; err != nil {
		log.Printf("[seed] zones: %v", err)
		return
	}
	log.Printf("[seed] %d climate zones", len(rows))
}

func ip(v int) *int { return &v }

func seedPlants(db *gorm.DB) {
	var n int64
	db.Model(&entities.Plant{}).Where("is_default = ?", true).Count(&n)
	if n > 0 {
		return
	}
	rows := defaultPlants()
	created := 0
	for i := range rows {
		rows[i].IsDefault = true
		if err := db.Where("name = ?", rows[i].Name).FirstOrCreate(&rows[i]).Error; err != nil {
			log.Printf("[seed] plant %s: %v", rows[i].Name, err)
			continue
		}
		created++
	}
	log.Printf("[seed] %d default plants", created)
}

// defaultPlants is the starter catalog tuned for a zone 5b kitchen
// garden. Timing numbers follow university extension planting charts.
func defaultPlants() []entities.Plant {
	return []entities.Plant{
		{
			Name: "Strawberries", LatinName: "Fragaria × ananassa", Symbol: "S", Color: "#FFB6C1",
			PlantType: "fruit", LifeCycle: "perennial", PlantingSeasons: []string{"spring"},
			DaysToHarvest: ip(60), SpacingInches: 6,
			ZoneNotes: "Plant in early spring after last frost danger. June-bearing varieties do well in zone 5b. Protect from late frosts with row covers.",
		},
		{
			Name: "Tomatoes", LatinName: "Solanum lycopersicum", Symbol: "T", Color: "#FF6347",
			PlantType: "vegetable", LifeCycle: "annual", PlantingSeasons: []string{"summer"},
			DirectSow:         false,
			DaysToGermination: ip(7), DaysBeforeTransplantReady: ip(42),
			TransplantToHarvestDays: ip(65), DaysToHarvest: ip(75), SpacingInches: 24,
			ZoneNotes:  "Start indoors 6-8 weeks before last frost. Transplant after soil reaches 65F. Stake or cage for support.",
			Companions: []string{"Basil", "Marigolds", "Garlic"},
		},
		{
			Name: "Kale", LatinName: "Brassica oleracea (Acephala Group)", Symbol: "K", Color: "#006400",
			PlantType: "vegetable", LifeCycle: "biennial", PlantingSeasons: []string{"spring", "fall"},
			DirectSow:         false,
			DaysToGermination: ip(7), DaysBeforeTransplantReady: ip(28),
			TransplantToHarvestDays: ip(60), DaysToHarvest: ip(55), SpacingInches: 15,
			ZoneNotes:  "Cool-season crop. Plant 2-4 weeks before last frost. Sweetens after light frost.",
			Companions: []string{"Garlic", "Sage"},
		},
		{
			Name: "Carrots", LatinName: "Daucus carota subsp. sativus", Symbol: "C", Color: "#FF8C00",
			PlantType: "vegetable", LifeCycle: "biennial", PlantingSeasons: []string{"spring", "summer", "fall"},
			DirectSow:         true,
			DaysToGermination: ip(14), DaysToHarvest: ip(70), SpacingInches: 2,
			ZoneNotes:  "Direct seed 2-3 weeks before last frost. Succession plant every 2-3 weeks through August. Shorter varieties handle clay soil.",
			Companions: []string{"Radishes", "Garlic"},
		},
		{
			Name: "Brussels Sprouts", LatinName: "Brassica oleracea (Gemmifera Group)", Symbol: "B", Color: "#90EE90",
			PlantType: "vegetable", LifeCycle: "biennial", PlantingSeasons: []string{"summer"},
			DirectSow:         false,
			DaysToGermination: ip(7), DaysBeforeTransplantReady: ip(35),
			TransplantToHarvestDays: ip(100), DaysToHarvest: ip(100), SpacingInches: 18,
			ZoneNotes:  "Start indoors in June for fall harvest. Flavor improves after frost. Harvest from bottom up.",
			Companions: []string{"Sage", "Garlic"},
		},
		{
			Name: "Yukon Gold Potatoes", LatinName: "Solanum tuberosum 'Yukon Gold'", Symbol: "P", Color: "#DEB887",
			PlantType: "vegetable", LifeCycle: "annual", PlantingSeasons: []string{"spring"},
			DirectSow:     true,
			DaysToHarvest: ip(90), SpacingInches: 18,
			ZoneNotes: "Plant 2 weeks before last frost. Hill soil around plants as they grow. New potatoes in July, storage crop in September.",
		},
		{
			Name: "Lettuce", LatinName: "Lactuca sativa", Symbol: "L", Color: "#ADFF2F",
			PlantType: "vegetable", LifeCycle: "annual", PlantingSeasons: []string{"spring", "summer", "fall"},
			DirectSow:         true,
			DaysToGermination: ip(7), DaysToHarvest: ip(45), SpacingInches: 6,
			ZoneNotes: "Cool-season crop. Heat-tolerant varieties for summer succession; afternoon shade in hot weather.",
		},
		{
			Name: "Garlic", LatinName: "Allium sativum", Symbol: "G", Color: "#F5F5DC",
			PlantType: "vegetable", LifeCycle: "perennial", PlantingSeasons: []string{"fall"},
			DirectSow:         true,
			DaysToGermination: ip(14), DaysToHarvest: ip(240), SpacingInches: 4,
			ZoneNotes:        "Plant hardneck varieties in October. Harvest scapes in June, bulbs in July. Excellent companion plant.",
			PestDeterrentFor: "aphids, cabbage worms, Japanese beetles, carrot flies",
			Companions:       []string{"Tomatoes", "Carrots", "Kale", "Brussels Sprouts"},
		},
		{
			Name: "Basil", LatinName: "Ocimum basilicum", Symbol: "Ba", Color: "#6B46C1",
			PlantType: "herb", LifeCycle: "annual", PlantingSeasons: []string{"summer"},
			DirectSow:         false,
			DaysToGermination: ip(7), DaysBeforeTransplantReady: ip(35),
			TransplantToHarvestDays: ip(60), DaysToHarvest: ip(60), SpacingInches: 12,
			ZoneNotes:        "Heat-loving herb. Plant after soil warms to 65F. Pinch flowers to encourage leaf growth.",
			PestDeterrentFor: "hornworms, aphids, spider mites",
			Companions:       []string{"Tomatoes"},
		},
		{
			Name: "Radishes", LatinName: "Raphanus sativus", Symbol: "Ra", Color: "#EC4899",
			PlantType: "vegetable", LifeCycle: "annual", PlantingSeasons: []string{"spring", "fall"},
			DirectSow:         true,
			DaysToGermination: ip(5), DaysToHarvest: ip(25), SpacingInches: 1,
			ZoneNotes:        "Fast-growing. Direct seed 4 weeks before last frost; succession plant every 2 weeks.",
			PestDeterrentFor: "root maggots, flea beetles",
			Companions:       []string{"Carrots"},
		},
		{
			Name: "Marigolds", LatinName: "Tagetes patula", Symbol: "Ma", Color: "#F59E0B",
			PlantType: "flower", LifeCycle: "annual", PlantingSeasons: []string{"spring"},
			DaysToHarvest: ip(50), SpacingInches: 8,
			ZoneNotes:        "Plant after last frost. Deadhead for continuous blooms through first frost.",
			PestDeterrentFor: "nematodes, aphids, whiteflies, Mexican bean beetles",
			Companions:       []string{"Tomatoes"},
		},
		{
			Name: "Sage", LatinName: "Salvia officinalis", Symbol: "Sa", Color: "#10B981",
			PlantType: "herb", LifeCycle: "perennial", PlantingSeasons: []string{"spring"},
			DaysToHarvest: ip(75), SpacingInches: 18,
			ZoneNotes:        "Hardy perennial in zone 5b. Harvest leaves before flowering; mulch for winter.",
			PestDeterrentFor: "cabbage moths, flea beetles, carrot flies",
			Companions:       []string{"Kale", "Brussels Sprouts"},
		},
		{
			Name: "Peas", LatinName: "Pisum sativum", Symbol: "Pe", Color: "#7CFC00",
			PlantType: "vegetable", LifeCycle: "annual", PlantingSeasons: []string{"spring", "fall"},
			DirectSow:         true,
			DaysToGermination: ip(7), DaysToHarvest: ip(60), SpacingInches: 2,
			ZoneNotes: "Direct seed as soon as soil can be worked. Trellis tall varieties.",
		},
		{
			Name: "Spinach", LatinName: "Spinacia oleracea", Symbol: "Sp", Color: "#228B22",
			PlantType: "vegetable", LifeCycle: "annual", PlantingSeasons: []string{"spring", "fall"},
			DirectSow:         true,
			DaysToGermination: ip(7), DaysToHarvest: ip(40), SpacingInches: 4,
			ZoneNotes: "Plant 4-6 weeks before last frost. Bolt-resistant varieties extend harvest.",
		},
		{
			Name: "Chives", LatinName: "Allium schoenoprasum", Symbol: "Ch", Color: "#9370DB",
			PlantType: "herb", LifeCycle: "perennial", PlantingSeasons: []string{"spring"},
			DaysToHarvest: ip(30), SpacingInches: 6,
			ZoneNotes:        "Hardy perennial; plant once and harvest for years. Purple flowers attract beneficial insects.",
			PestDeterrentFor: "aphids, Japanese beetles",
		},
		{
			Name: "Nasturtiums", LatinName: "Tropaeolum majus", Symbol: "Na", Color: "#FF4500",
			PlantType: "flower", LifeCycle: "annual", PlantingSeasons: []string{"spring"},
			DirectSow:     true,
			DaysToHarvest: ip(45), SpacingInches: 10,
			ZoneNotes:        "Edible blooms. Direct seed after last frost; thrives in poor soil. Trap crop for aphids.",
			PestDeterrentFor: "squash bugs, cucumber beetles",
		},
		{
			Name: "Dill", LatinName: "Anethum graveolens", Symbol: "Di", Color: "#32CD32",
			PlantType: "herb", LifeCycle: "annual", PlantingSeasons: []string{"spring"},
			DirectSow:     true,
			DaysToHarvest: ip(40), SpacingInches: 8,
			ZoneNotes:        "Self-seeds readily. Attracts beneficial wasps and swallowtail butterflies.",
			PestDeterrentFor: "aphids, spider mites, cabbage loopers",
		},
		{
			Name: "Thyme", LatinName: "Thymus vulgaris", Symbol: "Th", Color: "#8FBC8F",
			PlantType: "herb", LifeCycle: "perennial", PlantingSeasons: []string{"spring"},
			DaysToHarvest: ip(75), SpacingInches: 12,
			ZoneNotes:        "Drought-tolerant once established. Harvest before flowering; mulch heavily for winter.",
			PestDeterrentFor: "cabbage worms, whiteflies",
		},
	}
}
