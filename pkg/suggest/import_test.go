package suggest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plot/pkg/grid"
)

func TestParsePlainJSON(t *testing.T) {
	doc, err := Parse(`{"reasoning":"fill the gaps","suggestions":[{"plant":"Kale","row":0,"col":1,"reason":"companion"}]}`)
	require.NoError(t, err)
	assert.Equal(t, "fill the gaps", doc.Reasoning)
	require.Len(t, doc.Suggestions, 1)
	assert.Equal(t, "Kale", doc.Suggestions[0].Plant)
}

func TestParseStripsCodeFence(t *testing.T) {
	for _, text := range []string{
		"```json\n{\"reasoning\":\"r\",\"suggestions\":[]}\n```",
		"```\n{\"reasoning\":\"r\",\"suggestions\":[]}\n```",
		"  ```json\n{\"reasoning\":\"r\",\"suggestions\":[]}\n```  ",
	} {
		doc, err := Parse(text)
		require.NoError(t, err, text)
		assert.Equal(t, "r", doc.Reasoning)
	}
}

func TestParseMalformedDocument(t *testing.T) {
	cases := map[string]string{
		"not json":            "the garden looks lovely",
		"missing suggestions": `{"reasoning":"r"}`,
		"null suggestions":    `{"reasoning":"r","suggestions":null}`,
		"not a list":          `{"reasoning":"r","suggestions":"Kale"}`,
	}
	for name, text := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(text)
			var malformed *MalformedDocumentError
			require.ErrorAs(t, err, &malformed)
		})
	}
}

func TestParseBadEntryDoesNotFailBatch(t *testing.T) {
	doc, err := Parse(`{"reasoning":"r","suggestions":[
		{"plant":"Kale","row":0,"col":0,"reason":"ok"},
		{"plant":"Basil","row":"zero","col":1,"reason":"bad row type"}
	]}`)
	require.NoError(t, err)
	assert.Len(t, doc.Suggestions, 1)
	assert.Len(t, doc.Malformed, 1)
}

func TestApplyMixedValidity(t *testing.T) {
	g, err := grid.New(3, 3)
	require.NoError(t, err)

	doc := &Document{
		Reasoning: "mixed",
		Suggestions: []Suggestion{
			{Plant: "Kale", Row: 0, Col: 0, Reason: "a"},
			{Plant: "kale", Row: 0, Col: 1, Reason: "case-insensitive"},
			{Plant: "Carrots", Row: 2, Col: 2, Reason: "c"},
			{Plant: "Kale", Row: 9, Col: 0, Reason: "out of bounds"},
			{Plant: "Dragonfruit", Row: 1, Col: 1, Reason: "not in catalog"},
		},
	}
	rep := Apply(doc, g, testCatalog())

	assert.Len(t, rep.Applied, 3)
	require.Len(t, rep.Rejected, 2)
	assert.Contains(t, rep.Rejected[0].Reason, "out of bounds")
	assert.Contains(t, rep.Rejected[1].Reason, "unknown plant")

	// Canonical catalog casing lands on the grid.
	assert.Equal(t, grid.PlantOccupant("Kale"), g.At(grid.Coord{Row: 0, Col: 1}))
	// Rejected entries left their cells untouched.
	assert.Equal(t, grid.Empty, g.At(grid.Coord{Row: 1, Col: 1}))
}

func TestApplyLastWriteWins(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	g.Place(grid.Coord{Row: 0, Col: 0}, "Basil")

	doc := &Document{Suggestions: []Suggestion{
		{Plant: "Kale", Row: 0, Col: 0, Reason: "first"},
		{Plant: "Carrots", Row: 0, Col: 0, Reason: "second"},
	}}
	rep := Apply(doc, g, testCatalog())

	assert.Len(t, rep.Applied, 2)
	assert.Equal(t, grid.PlantOccupant("Carrots"), g.At(grid.Coord{Row: 0, Col: 0}))
}

func TestApplyPlannedDateCreatesInstance(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)

	doc := &Document{Suggestions: []Suggestion{
		{Plant: "Kale", Row: 0, Col: 0, Reason: "with date", PlannedPlantingDate: "2025-05-20"},
		{Plant: "Carrots", Row: 0, Col: 1, Reason: "bad date ignored", PlannedPlantingDate: "soonish"},
	}}
	rep := Apply(doc, g, testCatalog())
	assert.Len(t, rep.Applied, 2)

	in := g.InstanceAt(grid.Coord{Row: 0, Col: 0})
	require.NotNil(t, in)
	require.NotNil(t, in.PlannedPlanting)
	assert.Equal(t, time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC), *in.PlannedPlanting)
	assert.Empty(t, in.Method)

	// Unparseable date: placement sticks, no instance.
	assert.Equal(t, grid.PlantOccupant("Carrots"), g.At(grid.Coord{Row: 0, Col: 1}))
	assert.Nil(t, g.InstanceAt(grid.Coord{Row: 0, Col: 1}))
}

func TestParseAndApplyMalformedAppliesNothing(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	_, err = ParseAndApply("no json here", g, testCatalog())
	var malformed *MalformedDocumentError
	require.ErrorAs(t, err, &malformed)
	assert.Len(t, g.EmptyCells(), 4)
}

func TestApplyCarriesDocMalformedIntoReport(t *testing.T) {
	g, err := grid.New(2, 2)
	require.NoError(t, err)
	doc := &Document{Malformed: []Rejection{{Reason: "entry 3 does not decode"}}}
	rep := Apply(doc, g, testCatalog())
	assert.Empty(t, rep.Applied)
	require.Len(t, rep.Rejected, 1)
}
