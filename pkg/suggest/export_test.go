package suggest

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plot/entities"
	"plot/pkg/grid"
	"plot/pkg/planting"
	"plot/pkg/zone"
)

func ip(v int) *int { return &v }

func testCatalog() []entities.Plant {
	return []entities.Plant{
		{
			Name: "Kale", PlantType: "vegetable",
			DaysToGermination: ip(7), DaysBeforeTransplantReady: ip(28),
			TransplantToHarvestDays: ip(60), DaysToHarvest: ip(55),
			Companions: []string{"Garlic", "Sage"},
		},
		{
			Name: "Carrots", PlantType: "vegetable", DirectSow: true,
			DaysToGermination: ip(14), DaysToHarvest: ip(70),
		},
		{Name: "Basil", PlantType: "herb"},
	}
}

func testZoneCtx() zone.Context {
	return zone.Resolve(zone.Builtin, "5b", nil)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildPromptTwoByTwo(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	g.Place(grid.Coord{Row: 0, Col: 0}, "Kale")
	g.SetPath(grid.Coord{Row: 0, Col: 1})
	g.SetPath(grid.Coord{Row: 1, Col: 0})

	prompt := BuildPrompt(g, testCatalog(), testZoneCtx(), day(2025, time.June, 1), "")

	assert.Contains(t, prompt, `[{"row":1,"col":1}]`, "exactly the one empty coordinate")
	assert.Contains(t, prompt, "Kale x1")
	assert.Contains(t, prompt, "hardiness zone: 5b")
	assert.Contains(t, prompt, "today: 2025-06-01")
	assert.Contains(t, prompt, "RESPONSE FORMAT")
	assert.NotContains(t, prompt, "REFERENCE NOTES")
}

func TestBuildPromptDeterministic(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)
	g.Place(grid.Coord{Row: 0, Col: 0}, "Kale")
	g.Place(grid.Coord{Row: 2, Col: 2}, "Carrots")
	planted := day(2025, time.May, 1)
	require.NoError(t, g.SetInstance(grid.Coord{Row: 0, Col: 0}, &planting.Instance{Planted: &planted}))

	a := BuildPrompt(g, testCatalog(), testZoneCtx(), day(2025, time.June, 1), "")
	b := BuildPrompt(g, testCatalog(), testZoneCtx(), day(2025, time.June, 1), "")
	assert.Equal(t, a, b)
}

func TestBuildPromptInstanceSummaries(t *testing.T) {
	g, err := grid.New(2, 1)
	require.NoError(t, err)
	g.Place(grid.Coord{Row: 0, Col: 0}, "Kale")
	planted := day(2025, time.May, 1)
	require.NoError(t, g.SetInstance(grid.Coord{Row: 0, Col: 0}, &planting.Instance{Planted: &planted}))

	prompt := BuildPrompt(g, testCatalog(), testZoneCtx(), day(2025, time.June, 25), "")

	// transplant_to_harvest_days=60 from May 1 lands on June 30.
	assert.Contains(t, prompt, "Kale at (0,0): soon, planted 2025-05-01, expected harvest 2025-06-30")
}

func TestBuildPromptLayoutAbbreviations(t *testing.T) {
	g, err := grid.New(3, 1)
	require.NoError(t, err)
	g.Place(grid.Coord{Row: 0, Col: 0}, "Kale")
	g.SetPath(grid.Coord{Row: 0, Col: 1})

	prompt := BuildPrompt(g, testCatalog(), testZoneCtx(), day(2025, time.June, 1), "")
	assert.Contains(t, prompt, "KAL === ___")
}

func TestBuildPromptIncludesReferenceNotes(t *testing.T) {
	g, err := grid.New(1, 1)
	require.NoError(t, err)
	prompt := BuildPrompt(g, testCatalog(), testZoneCtx(), day(2025, time.June, 1), "mulch heavily")
	assert.Contains(t, prompt, "REFERENCE NOTES\nmulch heavily")
}

func TestAbbrev(t *testing.T) {
	assert.Equal(t, "KAL", abbrev("Kale"))
	assert.Equal(t, "YUK", abbrev("Yukon Gold Potatoes"))
	assert.Equal(t, "B__", abbrev("b"))
	assert.Equal(t, "___", abbrev(""))
}

func TestMockClientFillsEmptyCells(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	g.Place(grid.Coord{Row: 0, Col: 0}, "Kale")

	prompt := BuildPrompt(g, testCatalog(), testZoneCtx(), day(2025, time.June, 1), "")
	resp, err := NewMock().Suggest(prompt)
	require.NoError(t, err)

	doc, err := Parse(resp)
	require.NoError(t, err)
	assert.Len(t, doc.Suggestions, 3)
	for _, s := range doc.Suggestions {
		assert.False(t, s.Row == 0 && s.Col == 0, "mock only targets empty cells")
	}
}

func TestMockClientEmptyGridStillParses(t *testing.T) {
	g, err := grid.New(1, 1)
	require.NoError(t, err)
	g.Place(grid.Coord{Row: 0, Col: 0}, "Kale")

	prompt := BuildPrompt(g, testCatalog(), testZoneCtx(), day(2025, time.June, 1), "")
	require.False(t, strings.Contains(prompt, `{"row":0,"col":0}`))

	resp, err := NewMock().Suggest(prompt)
	require.NoError(t, err)
	doc, err := Parse(resp)
	require.NoError(t, err)
	assert.Empty(t, doc.Suggestions)
}
