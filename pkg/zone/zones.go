package zone

import "time"

// Builtin is the canonical USDA hardiness zone table, compiled in so
// resolution works before (and without) the database seed.
var Builtin Source = builtinSource{}

type builtinSource struct{}

func (builtinSource) Zone(code string) (Record, bool) {
	for _, r := range Table {
		if r.Zone == code {
			return r, true
		}
	}
	return Record{}, false
}

func md(m time.Month, d int) MonthDay { return MonthDay{Month: m, Day: d} }

// Table lists all sixteen zones, coldest first. Frost dates and season
// lengths are typical values, not guarantees.
var Table = []Record{
	{
		Zone:              "3a",
		RegionExamples:    "International Falls MN, Duluth MN, Fargo ND",
		LastFrost:         md(time.May, 30),
		FirstFrost:        md(time.September, 15),
		AvgAnnualMinTempF: -40,
		AvgSummerHighF:    76,
		GrowingSeasonDays: 107,
		CommonSoilTypes:   "Loam, Clay",
		HumidityLevel:     "moderate",
		Notes:             "Very short growing season. Focus on cold-hardy varieties and season extension with cold frames. Early-maturing vegetables essential.",
	},
	{
		Zone:              "3b",
		RegionExamples:    "Bemidji MN, Marquette MI, Bangor ME",
		LastFrost:         md(time.May, 25),
		FirstFrost:        md(time.September, 20),
		AvgAnnualMinTempF: -35,
		AvgSummerHighF:    78,
		GrowingSeasonDays: 118,
		CommonSoilTypes:   "Loam, Sandy Loam",
		HumidityLevel:     "moderate",
		Notes:             "Short growing season requires early-maturing cultivars. Cold frames and row covers extend season.",
	},
	{
		Zone:              "4a",
		RegionExamples:    "Minneapolis MN, Green Bay WI, Portland ME",
		LastFrost:         md(time.May, 15),
		FirstFrost:        md(time.October, 1),
		AvgAnnualMinTempF: -30,
		AvgSummerHighF:    81,
		GrowingSeasonDays: 139,
		CommonSoilTypes:   "Loam, Clay Loam",
		HumidityLevel:     "moderate",
		Notes:             "Cold winters require winter protection for perennials. Choose cold-hardy varieties.",
	},
	{
		Zone:              "4b",
		RegionExamples:    "Boise ID, Casper WY, Burlington VT",
		LastFrost:         md(time.May, 10),
		FirstFrost:        md(time.October, 5),
		AvgAnnualMinTempF: -25,
		AvgSummerHighF:    83,
		GrowingSeasonDays: 148,
		CommonSoilTypes:   "Loam, Sandy Loam",
		HumidityLevel:     "moderate",
		Notes:             "Good range of vegetables possible. Protect tender plants from late/early frosts.",
	},
	{
		Zone:              "5a",
		RegionExamples:    "Des Moines IA, Cleveland OH, Buffalo NY",
		LastFrost:         md(time.May, 10),
		FirstFrost:        md(time.October, 10),
		AvgAnnualMinTempF: -20,
		AvgSummerHighF:    84,
		GrowingSeasonDays: 153,
		CommonSoilTypes:   "Clay, Loam",
		HumidityLevel:     "moderate",
		Notes:             "Wide variety of vegetables possible. Succession planting recommended.",
	},
	{
		Zone:              "5b",
		RegionExamples:    "Chicago IL, Denver CO, Boston MA",
		LastFrost:         md(time.May, 15),
		FirstFrost:        md(time.October, 15),
		AvgAnnualMinTempF: -15,
		AvgSummerHighF:    85,
		GrowingSeasonDays: 153,
		CommonSoilTypes:   "Clay, Loam",
		HumidityLevel:     "high",
		Notes:             "High humidity requires disease-resistant varieties. Clay soil benefits from organic matter amendments. Good zone for most common vegetables.",
	},
	{
		Zone:              "6a",
		RegionExamples:    "St. Louis MO, Cincinnati OH, Philadelphia PA",
		LastFrost:         md(time.May, 1),
		FirstFrost:        md(time.October, 30),
		AvgAnnualMinTempF: -10,
		AvgSummerHighF:    87,
		GrowingSeasonDays: 182,
		CommonSoilTypes:   "Loam, Clay",
		HumidityLevel:     "high",
		Notes:             "Longer growing season allows for succession planting and fall crops. Watch for fungal diseases in humid conditions.",
	},
	{
		Zone:              "6b",
		RegionExamples:    "Kansas City MO, Louisville KY, New York NY",
		LastFrost:         md(time.April, 25),
		FirstFrost:        md(time.November, 5),
		AvgAnnualMinTempF: -5,
		AvgSummerHighF:    88,
		GrowingSeasonDays: 194,
		CommonSoilTypes:   "Loam, Clay Loam",
		HumidityLevel:     "moderate",
		Notes:             "Extended season allows multiple succession plantings. Good zone for diverse crop selection.",
	},
	{
		Zone:              "7a",
		RegionExamples:    "Oklahoma City OK, Memphis TN, Richmond VA",
		LastFrost:         md(time.April, 15),
		FirstFrost:        md(time.November, 10),
		AvgAnnualMinTempF: 0,
		AvgSummerHighF:    92,
		GrowingSeasonDays: 209,
		CommonSoilTypes:   "Clay, Loam",
		HumidityLevel:     "moderate",
		Notes:             "Long season excellent for warm-season crops. Hot summers - provide shade for cool-season crops. Spring and fall gardens very productive.",
	},
	{
		Zone:              "7b",
		RegionExamples:    "Little Rock AR, Raleigh NC, Seattle WA",
		LastFrost:         md(time.April, 10),
		FirstFrost:        md(time.November, 15),
		AvgAnnualMinTempF: 5,
		AvgSummerHighF:    89,
		GrowingSeasonDays: 219,
		CommonSoilTypes:   "Loam, Sandy Loam",
		HumidityLevel:     "moderate",
		Notes:             "Very long growing season. Year-round gardening possible with protection. Choose heat-tolerant varieties for summer.",
	},
	{
		Zone:              "8a",
		RegionExamples:    "Dallas TX, Atlanta GA, Portland OR",
		LastFrost:         md(time.March, 25),
		FirstFrost:        md(time.November, 25),
		AvgAnnualMinTempF: 10,
		AvgSummerHighF:    94,
		GrowingSeasonDays: 245,
		CommonSoilTypes:   "Clay, Sandy Loam",
		HumidityLevel:     "moderate",
		Notes:             "Nearly year-round growing possible. Hot summers require heat-tolerant varieties and consistent watering. Excellent for fall/winter gardens.",
	},
	{
		Zone:              "8b",
		RegionExamples:    "Austin TX, Charleston SC, Phoenix AZ",
		LastFrost:         md(time.March, 15),
		FirstFrost:        md(time.December, 1),
		AvgAnnualMinTempF: 15,
		AvgSummerHighF:    96,
		GrowingSeasonDays: 261,
		CommonSoilTypes:   "Sandy, Clay",
		HumidityLevel:     "low",
		Notes:             "Year-round gardening in most years. Extreme summer heat - focus on cool-season crops fall through spring. Excellent citrus zone.",
	},
	{
		Zone:              "9a",
		RegionExamples:    "Houston TX, Orlando FL, Los Angeles CA",
		LastFrost:         md(time.February, 28),
		FirstFrost:        md(time.December, 15),
		AvgAnnualMinTempF: 20,
		AvgSummerHighF:    93,
		GrowingSeasonDays: 290,
		CommonSoilTypes:   "Sandy, Clay",
		HumidityLevel:     "high",
		Notes:             "Year-round growing. Cool-season crops Oct-March, warm-season spring/fall. Summer too hot for many crops. Humidity encourages disease.",
	},
	{
		Zone:              "9b",
		RegionExamples:    "Miami FL, San Diego CA, Brownsville TX",
		LastFrost:         md(time.February, 15),
		FirstFrost:        md(time.December, 31),
		AvgAnnualMinTempF: 25,
		AvgSummerHighF:    90,
		GrowingSeasonDays: 319,
		CommonSoilTypes:   "Sandy, Limestone",
		HumidityLevel:     "high",
		Notes:             "Frost-free in most years. Heat limits tomatoes, peppers to cooler months. Tropical fruits thrive. Focus on heat-adapted varieties.",
	},
	{
		Zone:              "10a",
		RegionExamples:    "Naples FL, San Juan PR, Key West FL",
		LastFrost:         md(time.January, 31),
		FirstFrost:        md(time.December, 31),
		AvgAnnualMinTempF: 30,
		AvgSummerHighF:    89,
		GrowingSeasonDays: 365,
		CommonSoilTypes:   "Sandy, Coral",
		HumidityLevel:     "high",
		Notes:             "Frost-free. Cool-season crops Dec-Feb only. Focus on tropical vegetables and fruits. High pest/disease pressure year-round.",
	},
	{
		Zone:              "10b",
		RegionExamples:    "South Miami FL, Hawaii, Southern California coast",
		LastFrost:         md(time.January, 1),
		FirstFrost:        md(time.December, 31),
		AvgAnnualMinTempF: 35,
		AvgSummerHighF:    87,
		GrowingSeasonDays: 365,
		CommonSoilTypes:   "Sandy, Volcanic",
		HumidityLevel:     "high",
		Notes:             "No frost. Traditional vegetables struggle - use tropical alternatives. Continuous pest management needed. Excellent for tropical fruits.",
	},
}
