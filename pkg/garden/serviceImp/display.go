package serviceImp

import (
	"strings"
	"time"

	"plot/entities"
	"plot/pkg/grid"
	"plot/pkg/planting"
)

// CellState is the display-ready view of one cell: occupant, recorded
// dates, derived dates, and the recomputed status. Status is never
// persisted; this is the only place it exists.
type CellState struct {
	Row      int    `json:"row"`
	Col      int    `json:"col"`
	Occupant string `json:"occupant"`
	Plant    string `json:"plant,omitempty"`

	SeedingMethod        string  `json:"seeding_method,omitempty"`
	PlannedSeedStartDate *string `json:"planned_seed_start_date,omitempty"`
	SeedStartedDate      *string `json:"seed_started_date,omitempty"`
	PlannedPlantingDate  *string `json:"planned_planting_date,omitempty"`
	PlantedDate          *string `json:"planted_date,omitempty"`
	ActualHarvestDate    *string `json:"actual_harvest_date,omitempty"`

	ExpectedTransplantDate *string `json:"expected_transplant_date,omitempty"`
	ExpectedHarvestDate    *string `json:"expected_harvest_date,omitempty"`
	DaysUntilHarvest       *int    `json:"days_until_harvest,omitempty"`

	Status string `json:"status,omitempty"`
}

// CellState returns the derived view of one coordinate.
func (s *GardenSvc) CellState(id uint, uid string, row, col int) (*CellState, error) {
	g, err := s.repo.FindByID(id, uid)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.Instances(g.GardenID)
	if err != nil {
		return nil, err
	}
	gr, err := loadGrid(g, rows)
	if err != nil {
		return nil, err
	}
	c := grid.Coord{Row: row, Col: col}
	if !gr.InBounds(c) {
		return nil, ErrOutOfBounds
	}
	catalog, err := s.plants.All()
	if err != nil {
		return nil, err
	}
	state := buildCellState(gr, c, catalog, s.now())
	return &state, nil
}

func buildCellState(gr *grid.Grid, c grid.Coord, catalog []entities.Plant, today time.Time) CellState {
	occ := gr.At(c)
	state := CellState{
		Row:      c.Row,
		Col:      c.Col,
		Occupant: occ.Token(),
	}
	if !occ.IsPlant() {
		return state
	}
	state.Plant = occ.Plant

	in := gr.InstanceAt(c)
	if in == nil {
		state.Status = string(planting.StatusNotPlanted)
		return state
	}

	state.SeedingMethod = string(in.Method)
	state.PlannedSeedStartDate = fmtDate(in.PlannedSeedStart)
	state.SeedStartedDate = fmtDate(in.SeedStarted)
	state.PlannedPlantingDate = fmtDate(in.PlannedPlanting)
	state.PlantedDate = fmtDate(in.Planted)
	state.ActualHarvestDate = fmtDate(in.ActualHarvest)

	derived := planting.Calculate(*in, growthParams(catalog, occ.Plant), today)
	state.ExpectedTransplantDate = fmtDate(derived.ExpectedTransplant)
	state.ExpectedHarvestDate = fmtDate(derived.ExpectedHarvest)
	state.DaysUntilHarvest = derived.DaysUntilHarvest
	state.Status = string(planting.DeriveStatus(*in, derived))
	return state
}

// GardenView is the full read model: metadata, the serialized layout,
// and derived state for every plant-occupied cell.
type GardenView struct {
	Garden     *entities.Garden `json:"garden"`
	Grid       [][]string       `json:"grid"`
	Cells      []CellState      `json:"cells"`
	PlantCount int              `json:"plant_count"`
	EmptyCount int              `json:"empty_count"`
}

func (s *GardenSvc) View(id uint, uid string) (*GardenView, error) {
	g, err := s.repo.FindByID(id, uid)
	if err != nil {
		return nil, err
	}
	rows, err := s.repo.Instances(g.GardenID)
	if err != nil {
		return nil, err
	}
	gr, err := loadGrid(g, rows)
	if err != nil {
		return nil, err
	}
	catalog, err := s.plants.All()
	if err != nil {
		return nil, err
	}
	view := &GardenView{
		Garden:     g,
		Grid:       gr.Serialize(),
		Cells:      []CellState{},
		PlantCount: gr.PlantCount(),
		EmptyCount: len(gr.EmptyCells()),
	}
	today := s.now()
	gr.EachCell(func(c grid.Coord, o grid.Occupant) {
		if o.IsPlant() {
			view.Cells = append(view.Cells, buildCellState(gr, c, catalog, today))
		}
	})
	return view, nil
}

func fmtDate(d *time.Time) *string {
	if d == nil {
		return nil
	}
	s := d.Format("2006-01-02")
	return &s
}

func growthParams(catalog []entities.Plant, name string) planting.GrowthParams {
	for _, p := range catalog {
		if strings.EqualFold(p.Name, name) {
			return planting.GrowthParams{
				DaysToGermination:         p.DaysToGermination,
				DaysBeforeTransplantReady: p.DaysBeforeTransplantReady,
				TransplantToHarvestDays:   p.TransplantToHarvestDays,
				DaysToHarvest:             p.DaysToHarvest,
			}
		}
	}
	// Unknown occupants still render; they just have no timing data.
	return planting.GrowthParams{}
}
