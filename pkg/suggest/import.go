package suggest

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"plot/entities"
	"plot/pkg/grid"
	"plot/pkg/planting"
)

// Parse extracts a suggestion document from the raw response text. A
// fenced code block is unwrapped first; the remaining text must be a
// JSON object with a suggestions list. Anything less is a document-level
// failure and nothing gets applied.
func Parse(responseText string) (*Document, error) {
	body := stripFence(responseText)

	var probe struct {
		Reasoning   string          `json:"reasoning"`
		Suggestions json.RawMessage `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(body), &probe); err != nil {
		return nil, &MalformedDocumentError{Reason: err.Error()}
	}
	if len(probe.Suggestions) == 0 || string(probe.Suggestions) == "null" {
		return nil, &MalformedDocumentError{Reason: "missing suggestions list"}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(probe.Suggestions, &items); err != nil {
		return nil, &MalformedDocumentError{Reason: "suggestions is not a list: " + err.Error()}
	}

	doc := &Document{Reasoning: probe.Reasoning}
	for i, raw := range items {
		var s Suggestion
		if err := json.Unmarshal(raw, &s); err != nil {
			// A single bad entry never fails the batch.
			doc.Malformed = append(doc.Malformed, Rejection{
				Reason: fmt.Sprintf("entry %d does not decode: %v", i, err),
			})
			continue
		}
		doc.Suggestions = append(doc.Suggestions, s)
	}
	return doc, nil
}

// stripFence unwraps a ```/```json fenced block if the response is
// wrapped in one; otherwise the text is returned as-is.
func stripFence(text string) string {
	t := strings.TrimSpace(text)
	if !strings.HasPrefix(t, "```") {
		return t
	}
	t = strings.TrimPrefix(t, "```")
	if nl := strings.IndexByte(t, '\n'); nl >= 0 {
		// Drop the language tag line ("json", possibly empty).
		t = t[nl+1:]
	}
	if end := strings.LastIndex(t, "```"); end >= 0 {
		t = t[:end]
	}
	return strings.TrimSpace(t)
}

// Apply validates each suggestion independently and mutates the grid for
// the ones that pass. Occupied target cells are overwritten —
// last-write-wins, same as a human dragging a plant onto an occupied
// cell. Out-of-bounds coordinates and unknown plant names are collected
// as rejections and skipped.
func Apply(doc *Document, g *grid.Grid, catalog []entities.Plant) Report {
	idx := indexCatalog(catalog)
	rep := Report{
		Reasoning: doc.Reasoning,
		Applied:   []Suggestion{},
		Rejected:  append([]Rejection{}, doc.Malformed...),
	}

	for _, s := range doc.Suggestions {
		c := grid.Coord{Row: s.Row, Col: s.Col}
		if !g.InBounds(c) {
			rep.Rejected = append(rep.Rejected, Rejection{
				Suggestion: s,
				Reason:     fmt.Sprintf("coordinate (%d,%d) out of bounds for %dx%d grid", s.Row, s.Col, g.Width(), g.Height()),
			})
			continue
		}
		plant, ok := idx.lookup(s.Plant)
		if !ok {
			rep.Rejected = append(rep.Rejected, Rejection{
				Suggestion: s,
				Reason:     fmt.Sprintf("unknown plant %q", s.Plant),
			})
			continue
		}

		g.Place(c, plant.Name)
		if s.PlannedPlantingDate != "" {
			if d, err := time.Parse("2006-01-02", s.PlannedPlantingDate); err == nil {
				in := g.InstanceAt(c)
				if in == nil {
					in = &planting.Instance{}
				}
				dd := planting.Midnight(d)
				in.PlannedPlanting = &dd
				// Seeding method is deliberately left unset; the
				// importer does not infer how the plant will be started.
				_ = g.SetInstance(c, in)
			}
		}
		rep.Applied = append(rep.Applied, s)
	}
	return rep
}

// ParseAndApply is the import half of the round trip.
func ParseAndApply(responseText string, g *grid.Grid, catalog []entities.Plant) (Report, error) {
	doc, err := Parse(responseText)
	if err != nil {
		return Report{}, err
	}
	return Apply(doc, g, catalog), nil
}
