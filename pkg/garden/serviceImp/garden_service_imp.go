package serviceImp

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"plot/entities"
	"plot/pkg/garden/repository"
	"plot/pkg/grid"
	"plot/pkg/planting"
	"plot/pkg/suggest"
	"plot/pkg/zone"
)

var (
	ErrOutOfBounds   = errors.New("garden: coordinate out of bounds")
	ErrBadDimensions = errors.New("garden: width and height must be between 1 and 50")
	ErrNotPlantCell  = errors.New("garden: cell holds no plant")
	ErrBadDate       = errors.New("garden: dates must be YYYY-MM-DD")
)

// Consumer-side seams; the concrete implementations live in their own
// feature packages.
type catalogSource interface {
	All() ([]entities.Plant, error)
}

type profileSource interface {
	Get(uid string) (*entities.UserProfile, error)
}

type guideSearcher interface {
	ContextFor(query string, limit int) (string, error)
}

// GardenSvc is the host-facing surface over the grid, planting and
// suggestion engines. Every mutation loads the garden, runs the pure
// engine operation, and stores layout plus instances in one transaction.
type GardenSvc struct {
	repo     repository.GardenRepository
	plants   catalogSource
	profiles profileSource
	guide    guideSearcher
	llm      suggest.Client
	zones    zone.Source
	now      func() time.Time
}

func NewGardenService(repo repository.GardenRepository, plants catalogSource, profiles profileSource, guide guideSearcher, llm suggest.Client, zones zone.Source) *GardenSvc {
	return &GardenSvc{
		repo:     repo,
		plants:   plants,
		profiles: profiles,
		guide:    guide,
		llm:      llm,
		zones:    zones,
		now:      time.Now,
	}
}

// SetClock overrides the reference clock, for tests.
func (s *GardenSvc) SetClock(now func() time.Time) { s.now = now }

type layoutDoc struct {
	Grid [][]string `json:"grid"`
}

func (s *GardenSvc) CreateGarden(uid, name, description string, width, height int, isPublic bool) (*entities.Garden, error) {
	if width < 1 || width > 50 || height < 1 || height > 50 {
		return nil, ErrBadDimensions
	}
	gr, err := grid.New(width, height)
	if err != nil {
		return nil, ErrBadDimensions
	}
	g := &entities.Garden{
		UserID:      uid,
		Name:        name,
		Description: description,
		Width:       width,
		Height:      height,
		IsPublic:    isPublic,
	}
	if err := storeLayout(g, gr); err != nil {
		return nil, err
	}
	if err := s.repo.Create(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *GardenSvc) GetGarden(id uint, uid string) (*entities.Garden, error) {
	return s.repo.FindByID(id, uid)
}

func (s *GardenSvc) ListGardens(uid string) ([]entities.Garden, error) { return s.repo.List(uid) }

func (s *GardenSvc) DeleteGarden(id uint, uid string) error { return s.repo.Delete(id, uid) }

// loadGrid rebuilds the engine grid from the persisted layout and
// instance rows. Instance rows whose cell is no longer plant-occupied
// are orphans and get dropped here.
func loadGrid(g *entities.Garden, rows []entities.PlantInstance) (*grid.Grid, error) {
	var doc layoutDoc
	if err := json.Unmarshal([]byte(g.LayoutJSON), &doc); err != nil {
		return nil, fmt.Errorf("garden %d: bad layout: %w", g.GardenID, err)
	}
	gr, err := grid.Deserialize(doc.Grid)
	if err != nil {
		return nil, fmt.Errorf("garden %d: bad layout: %w", g.GardenID, err)
	}
	for _, row := range rows {
		in := instanceFromRow(row)
		c := grid.Coord{Row: row.Row, Col: row.Col}
		if !gr.InBounds(c) {
			continue
		}
		_ = gr.SetInstance(c, in) // orphan rows are silently discarded
	}
	return gr, nil
}

func storeLayout(g *entities.Garden, gr *grid.Grid) error {
	b, err := json.Marshal(layoutDoc{Grid: gr.Serialize()})
	if err != nil {
		return err
	}
	g.LayoutJSON = string(b)
	return nil
}

func instanceFromRow(row entities.PlantInstance) *planting.Instance {
	return &planting.Instance{
		Method:           planting.SeedingMethod(row.SeedingMethod),
		PlannedSeedStart: row.PlannedSeedStartDate,
		SeedStarted:      row.SeedStartedDate,
		PlannedPlanting:  row.PlannedPlantingDate,
		Planted:          row.PlantedDate,
		ActualHarvest:    row.ActualHarvestDate,
	}
}

func instanceRows(gardenID uint, gr *grid.Grid) []entities.PlantInstance {
	var rows []entities.PlantInstance
	gr.EachInstance(func(c grid.Coord, in *planting.Instance) {
		rows = append(rows, entities.PlantInstance{
			GardenID:             gardenID,
			Row:                  c.Row,
			Col:                  c.Col,
			SeedingMethod:        string(in.Method),
			PlannedSeedStartDate: in.PlannedSeedStart,
			SeedStartedDate:      in.SeedStarted,
			PlannedPlantingDate:  in.PlannedPlanting,
			PlantedDate:          in.Planted,
			ActualHarvestDate:    in.ActualHarvest,
		})
	})
	return rows
}

// mutate runs fn against the loaded grid inside one transaction and
// persists the result. The grid plus its instances form a single
// consistency unit; concurrent edits to the same garden serialize at the
// database.
func (s *GardenSvc) mutate(id uint, uid string, fn func(*grid.Grid) error) (*grid.Grid, error) {
	var out *grid.Grid
	err := s.repo.Transaction(func(r repository.GardenRepository) error {
		g, err := r.FindByID(id, uid)
		if err != nil {
			return err
		}
		rows, err := r.Instances(g.GardenID)
		if err != nil {
			return err
		}
		gr, err := loadGrid(g, rows)
		if err != nil {
			return err
		}
		if err := fn(gr); err != nil {
			return err
		}
		if err := storeLayout(g, gr); err != nil {
			return err
		}
		if err := r.Save(g); err != nil {
			return err
		}
		if err := r.ReplaceInstances(g.GardenID, instanceRows(g.GardenID, gr)); err != nil {
			return err
		}
		out = gr
		return nil
	})
	return out, err
}

// Place sets a cell's occupant and returns the stored token. The plant
// name is accepted as-is; catalog validation belongs to the import path
// and display layer, not the grid.
func (s *GardenSvc) Place(id uint, uid string, row, col int, plant string) (string, error) {
	c := grid.Coord{Row: row, Col: col}
	var token string
	_, err := s.mutate(id, uid, func(gr *grid.Grid) error {
		if !gr.InBounds(c) {
			return ErrOutOfBounds
		}
		gr.Place(c, plant)
		token = gr.At(c).Token()
		return nil
	})
	return token, err
}

func (s *GardenSvc) SetPath(id uint, uid string, row, col int) error {
	c := grid.Coord{Row: row, Col: col}
	_, err := s.mutate(id, uid, func(gr *grid.Grid) error {
		if !gr.InBounds(c) {
			return ErrOutOfBounds
		}
		gr.SetPath(c)
		return nil
	})
	return err
}

func (s *GardenSvc) Remove(id uint, uid string, row, col int) error {
	c := grid.Coord{Row: row, Col: col}
	_, err := s.mutate(id, uid, func(gr *grid.Grid) error {
		if !gr.InBounds(c) {
			return ErrOutOfBounds
		}
		gr.Remove(c)
		return nil
	})
	return err
}

// Move relocates or swaps; with no destination it is the drag-off-grid
// removal gesture.
func (s *GardenSvc) Move(id uint, uid string, from grid.Coord, to *grid.Coord) error {
	_, err := s.mutate(id, uid, func(gr *grid.Grid) error {
		if !gr.InBounds(from) {
			return ErrOutOfBounds
		}
		if to == nil {
			gr.DragOffGrid(from)
			return nil
		}
		if !gr.InBounds(*to) {
			return ErrOutOfBounds
		}
		gr.Move(from, *to)
		return nil
	})
	return err
}

// DateFields is the recordDates patch payload. Nil leaves a field
// unchanged; an empty string clears it.
type DateFields struct {
	SeedingMethod        *string `json:"seeding_method"`
	PlannedSeedStartDate *string `json:"planned_seed_start_date"`
	SeedStartedDate      *string `json:"seed_started_date"`
	PlannedPlantingDate  *string `json:"planned_planting_date"`
	PlantedDate          *string `json:"planted_date"`
	ActualHarvestDate    *string `json:"actual_harvest_date"`
}

// RecordDates upserts the temporal record at a coordinate. Clearing
// every field deletes the instance. Date ordering is deliberately not
// validated; a harvest before planting simply yields a negative day
// count downstream.
func (s *GardenSvc) RecordDates(id uint, uid string, row, col int, f DateFields) error {
	c := grid.Coord{Row: row, Col: col}
	_, err := s.mutate(id, uid, func(gr *grid.Grid) error {
		if !gr.InBounds(c) {
			return ErrOutOfBounds
		}
		if !gr.At(c).IsPlant() {
			return ErrNotPlantCell
		}
		in := gr.InstanceAt(c)
		if in == nil {
			in = &planting.Instance{}
		}
		if err := applyDateFields(in, f); err != nil {
			return err
		}
		return gr.SetInstance(c, in)
	})
	return err
}

func applyDateFields(in *planting.Instance, f DateFields) error {
	if f.SeedingMethod != nil {
		in.SetMethod(planting.SeedingMethod(*f.SeedingMethod))
	}
	if f.PlannedSeedStartDate != nil {
		d, err := parseDate(*f.PlannedSeedStartDate)
		if err != nil {
			return err
		}
		in.PlannedSeedStart = d
	}
	if f.PlannedPlantingDate != nil {
		d, err := parseDate(*f.PlannedPlantingDate)
		if err != nil {
			return err
		}
		in.PlannedPlanting = d
	}
	if f.SeedStartedDate != nil {
		d, err := parseDate(*f.SeedStartedDate)
		if err != nil {
			return err
		}
		in.SetSeedStarted(d)
	}
	if f.PlantedDate != nil {
		d, err := parseDate(*f.PlantedDate)
		if err != nil {
			return err
		}
		in.SetPlanted(d)
	}
	if f.ActualHarvestDate != nil {
		d, err := parseDate(*f.ActualHarvestDate)
		if err != nil {
			return err
		}
		in.ActualHarvest = d
	}
	return nil
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, ErrBadDate
	}
	d = planting.Midnight(d)
	return &d, nil
}

// MarkHarvested records the actual harvest date, flipping the derived
// status to its terminal state.
func (s *GardenSvc) MarkHarvested(id uint, uid string, row, col int, date string) error {
	if date == "" {
		date = planting.Midnight(s.now()).Format("2006-01-02")
	}
	return s.RecordDates(id, uid, row, col, DateFields{ActualHarvestDate: &date})
}

func (s *GardenSvc) AddNote(id uint, uid string, n *entities.PlantingNote) error {
	g, err := s.repo.FindByID(id, uid)
	if err != nil {
		return err
	}
	n.GardenID = g.GardenID
	return s.repo.CreateNote(n)
}

func (s *GardenSvc) Notes(id uint, uid string) ([]entities.PlantingNote, error) {
	g, err := s.repo.FindByID(id, uid)
	if err != nil {
		return nil, err
	}
	return s.repo.ListNotes(g.GardenID)
}
