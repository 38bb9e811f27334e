package suggest

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode"

	"plot/entities"
	"plot/pkg/grid"
	"plot/pkg/planting"
	"plot/pkg/zone"
)

// BuildPrompt renders the full garden state as the text prompt sent to
// the external reasoning source. Pure formatting: deterministic for a
// given input, no randomness, no I/O. refNotes is optional growing-guide
// context; empty means the section is omitted.
func BuildPrompt(g *grid.Grid, catalog []entities.Plant, zctx zone.Context, today time.Time, refNotes string) string {
	idx := indexCatalog(catalog)
	var b strings.Builder

	b.WriteString("You are planning placements for a home garden bed.\n\n")

	fmt.Fprintf(&b, "GARDEN\n- dimensions: %d columns x %d rows (coordinates are 0-indexed, row first)\n",
		g.Width(), g.Height())
	total := g.Width() * g.Height()
	planted := g.PlantCount()
	fmt.Fprintf(&b, "- fill rate: %d of %d cells planted (%.0f%%)\n", planted, total, 100*float64(planted)/float64(total))
	species := speciesCounts(g)
	fmt.Fprintf(&b, "- distinct species: %d\n\n", len(species))

	b.WriteString("LAYOUT (rows top to bottom; ___ = empty, === = path):\n")
	writeLayout(&b, g)
	b.WriteString("\n")

	b.WriteString("EXISTING PLANTS\n")
	if len(species) == 0 {
		b.WriteString("- none yet\n")
	}
	for _, name := range sortedKeys(species) {
		fmt.Fprintf(&b, "- %s x%d\n", name, species[name])
	}
	writeInstanceSummaries(&b, g, idx, today)
	b.WriteString("\n")

	b.WriteString("STATISTICS\n")
	writeTypeCounts(&b, g, idx)
	b.WriteString("\n")

	b.WriteString("EMPTY CELLS (the authoritative list of coordinates to fill):\n")
	writeEmptyCells(&b, g)
	b.WriteString("\n")

	b.WriteString("PLANT CATALOG (choose plants only from this list; companions matter):\n")
	writeCatalog(&b, catalog)
	b.WriteString("\n")

	b.WriteString("CLIMATE\n")
	fmt.Fprintf(&b, "- hardiness zone: %s\n", zctx.Zone)
	fmt.Fprintf(&b, "- typical last frost: %s, typical first frost: %s\n", zctx.LastFrost, zctx.FirstFrost)
	fmt.Fprintf(&b, "- growing season: %d days\n", zctx.GrowingSeasonDays)
	if zctx.Notes != "" {
		fmt.Fprintf(&b, "- considerations: %s\n", zctx.Notes)
	}
	fmt.Fprintf(&b, "- today: %s\n\n", planting.Midnight(today).Format("2006-01-02"))

	if refNotes != "" {
		b.WriteString("REFERENCE NOTES\n")
		b.WriteString(refNotes)
		b.WriteString("\n\n")
	}

	b.WriteString(responseShape)
	return b.String()
}

const responseShape = `RESPONSE FORMAT
Reply with a single JSON object and nothing else:
{"reasoning": "<overall plan rationale>", "suggestions": [{"plant": "<catalog name>", "row": 0, "col": 0, "reason": "<why here>", "planned_planting_date": "YYYY-MM-DD"}]}
- "plant" must match a catalog name
- "row"/"col" should come from EMPTY CELLS
- "planned_planting_date" is optional
- you may fill only some of the empty cells
`

// writeLayout renders the compact visual grid with 3-character occupant
// abbreviations.
func writeLayout(b *strings.Builder, g *grid.Grid) {
	for r := 0; r < g.Height(); r++ {
		cells := make([]string, g.Width())
		for c := 0; c < g.Width(); c++ {
			switch o := g.At(grid.Coord{Row: r, Col: c}); o.Kind {
			case grid.KindPath:
				cells[c] = "==="
			case grid.KindPlant:
				cells[c] = abbrev(o.Plant)
			default:
				cells[c] = "___"
			}
		}
		b.WriteString(strings.Join(cells, " "))
		b.WriteString("\n")
	}
}

// abbrev reduces a plant name to exactly three characters for the
// layout rendering.
func abbrev(name string) string {
	var letters []rune
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			letters = append(letters, unicode.ToUpper(r))
		}
		if len(letters) == 3 {
			break
		}
	}
	for len(letters) < 3 {
		letters = append(letters, '_')
	}
	return string(letters)
}

func writeEmptyCells(b *strings.Builder, g *grid.Grid) {
	cells := g.EmptyCells()
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmt.Sprintf(`{"row":%d,"col":%d}`, c.Row, c.Col)
	}
	fmt.Fprintf(b, "[%s]\n", strings.Join(parts, ","))
}

func writeInstanceSummaries(b *strings.Builder, g *grid.Grid, idx catalogIndex, today time.Time) {
	type line struct {
		c  grid.Coord
		in *planting.Instance
	}
	var lines []line
	g.EachInstance(func(c grid.Coord, in *planting.Instance) {
		lines = append(lines, line{c, in})
	})
	sort.Slice(lines, func(i, j int) bool {
		if lines[i].c.Row != lines[j].c.Row {
			return lines[i].c.Row < lines[j].c.Row
		}
		return lines[i].c.Col < lines[j].c.Col
	})
	for _, l := range lines {
		occ := g.At(l.c)
		if !occ.IsPlant() {
			continue
		}
		params := growthParamsFor(idx, occ.Plant)
		derived := planting.Calculate(*l.in, params, today)
		status := planting.DeriveStatus(*l.in, derived)
		fmt.Fprintf(b, "- %s at (%d,%d): %s", occ.Plant, l.c.Row, l.c.Col, status)
		if p := l.in.EffectivePlanted(); p != nil {
			fmt.Fprintf(b, ", planted %s", p.Format("2006-01-02"))
		} else if s := l.in.EffectiveSeedStart(); s != nil {
			fmt.Fprintf(b, ", seeds started %s", s.Format("2006-01-02"))
		}
		if derived.ExpectedHarvest != nil {
			fmt.Fprintf(b, ", expected harvest %s", derived.ExpectedHarvest.Format("2006-01-02"))
		}
		b.WriteString("\n")
	}
}

func writeTypeCounts(b *strings.Builder, g *grid.Grid, idx catalogIndex) {
	byType := map[string]int{}
	bySpecies := speciesCounts(g)
	for name, n := range bySpecies {
		t := "unknown"
		if p, ok := idx.lookup(name); ok {
			t = p.PlantType
		}
		byType[t] += n
	}
	b.WriteString("- per-type counts:")
	if len(byType) == 0 {
		b.WriteString(" none")
	}
	for _, t := range sortedKeys(byType) {
		fmt.Fprintf(b, " %s=%d", t, byType[t])
	}
	b.WriteString("\n- per-species counts:")
	if len(bySpecies) == 0 {
		b.WriteString(" none")
	}
	for _, name := range sortedKeys(bySpecies) {
		fmt.Fprintf(b, " %s=%d", name, bySpecies[name])
	}
	b.WriteString("\n")
}

func writeCatalog(b *strings.Builder, catalog []entities.Plant) {
	type entry struct {
		Name                      string   `json:"name"`
		Type                      string   `json:"type"`
		LifeCycle                 string   `json:"life_cycle,omitempty"`
		DirectSow                 bool     `json:"direct_sow"`
		DaysToHarvest             *int     `json:"days_to_harvest,omitempty"`
		TransplantToHarvestDays   *int     `json:"transplant_to_harvest_days,omitempty"`
		DaysToGermination         *int     `json:"days_to_germination,omitempty"`
		DaysBeforeTransplantReady *int     `json:"days_before_transplant_ready,omitempty"`
		SpacingInches             float64  `json:"spacing_inches,omitempty"`
		Companions                []string `json:"companions,omitempty"`
		PestDeterrentFor          string   `json:"pest_deterrent_for,omitempty"`
	}
	entries := make([]entry, 0, len(catalog))
	for _, p := range catalog {
		entries = append(entries, entry{
			Name:                      p.Name,
			Type:                      p.PlantType,
			LifeCycle:                 p.LifeCycle,
			DirectSow:                 p.DirectSow,
			DaysToHarvest:             p.DaysToHarvest,
			TransplantToHarvestDays:   p.TransplantToHarvestDays,
			DaysToGermination:         p.DaysToGermination,
			DaysBeforeTransplantReady: p.DaysBeforeTransplantReady,
			SpacingInches:             p.SpacingInches,
			Companions:                p.Companions,
			PestDeterrentFor:          p.PestDeterrentFor,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	enc, _ := json.Marshal(entries)
	b.Write(enc)
	b.WriteString("\n")
}

func speciesCounts(g *grid.Grid) map[string]int {
	out := map[string]int{}
	g.EachCell(func(_ grid.Coord, o grid.Occupant) {
		if o.IsPlant() {
			out[o.Plant]++
		}
	})
	return out
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func growthParamsFor(idx catalogIndex, name string) planting.GrowthParams {
	p, ok := idx.lookup(name)
	if !ok {
		return planting.GrowthParams{}
	}
	return planting.GrowthParams{
		DaysToGermination:         p.DaysToGermination,
		DaysBeforeTransplantReady: p.DaysBeforeTransplantReady,
		TransplantToHarvestDays:   p.TransplantToHarvestDays,
		DaysToHarvest:             p.DaysToHarvest,
	}
}
