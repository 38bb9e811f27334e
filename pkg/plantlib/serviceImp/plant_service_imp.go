package serviceImp

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"plot/entities"
	"plot/pkg/plantlib/repository"
)

var ErrNameRequired = errors.New("plantlib: name is required")

const sheetName = "Plants"

// Column layout shared by export and import so a round trip is lossless.
var sheetColumns = []string{
	"Name", "LatinName", "Symbol", "Color", "PlantType", "LifeCycle",
	"PlantingSeasons", "DirectSow", "DaysToGermination",
	"DaysBeforeTransplantReady", "TransplantToHarvestDays", "DaysToHarvest",
	"SpacingInches", "YieldPerPlant", "ZoneNotes", "PestDeterrentFor",
	"Companions",
}

type Svc struct{ r repository.PlantRepository }

func New(r repository.PlantRepository) *Svc { return &Svc{r: r} }

func (s *Svc) All() ([]entities.Plant, error) { return s.r.All() }

func (s *Svc) FindByName(name string) (*entities.Plant, error) { return s.r.FindByName(name) }

func (s *Svc) Create(p *entities.Plant) error {
	if strings.TrimSpace(p.Name) == "" {
		return ErrNameRequired
	}
	p.Name = strings.TrimSpace(p.Name)
	return s.r.Create(p)
}

func (s *Svc) Delete(id uint) error { return s.r.Delete(id) }

// ExportXLSX writes the whole catalog as one worksheet.
func (s *Svc) ExportXLSX(w io.Writer) error {
	plants, err := s.r.All()
	if err != nil {
		return err
	}
	x := excelize.NewFile()
	defer x.Close()
	x.SetSheetName("Sheet1", sheetName)

	for i, col := range sheetColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = x.SetCellValue(sheetName, cell, col)
	}
	for row, p := range plants {
		vals := []any{
			p.Name, p.LatinName, p.Symbol, p.Color, p.PlantType, p.LifeCycle,
			strings.Join(p.PlantingSeasons, ","), p.DirectSow,
			intCell(p.DaysToGermination), intCell(p.DaysBeforeTransplantReady),
			intCell(p.TransplantToHarvestDays), intCell(p.DaysToHarvest),
			p.SpacingInches, p.YieldPerPlant, p.ZoneNotes, p.PestDeterrentFor,
			strings.Join(p.Companions, ","),
		}
		for i, v := range vals {
			cell, _ := excelize.CoordinatesToCellName(i+1, row+2)
			_ = x.SetCellValue(sheetName, cell, v)
		}
	}
	return x.Write(w)
}

// ImportXLSX upserts rows from the first sheet. Rows without a name are
// skipped; bad numeric cells leave the field empty rather than aborting
// the whole sheet. Returns imported and skipped counts.
func (s *Svc) ImportXLSX(r io.Reader) (int, int, error) {
	x, err := excelize.OpenReader(r)
	if err != nil {
		return 0, 0, fmt.Errorf("plantlib: open workbook: %w", err)
	}
	defer x.Close()

	sheet := x.GetSheetName(0)
	rows, err := x.GetRows(sheet)
	if err != nil {
		return 0, 0, err
	}
	if len(rows) < 2 {
		return 0, 0, nil
	}

	col := map[string]int{}
	for i, h := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	get := func(rec []string, name string) string {
		idx, ok := col[strings.ToLower(name)]
		if !ok || idx >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[idx])
	}

	imported, skipped := 0, 0
	for _, rec := range rows[1:] {
		name := get(rec, "Name")
		if name == "" {
			skipped++
			continue
		}
		p := &entities.Plant{
			Name:             name,
			LatinName:        get(rec, "LatinName"),
			Symbol:           get(rec, "Symbol"),
			Color:            get(rec, "Color"),
			PlantType:        get(rec, "PlantType"),
			LifeCycle:        get(rec, "LifeCycle"),
			PlantingSeasons:  splitList(get(rec, "PlantingSeasons")),
			DirectSow:        parseBool(get(rec, "DirectSow")),
			YieldPerPlant:    get(rec, "YieldPerPlant"),
			ZoneNotes:        get(rec, "ZoneNotes"),
			PestDeterrentFor: get(rec, "PestDeterrentFor"),
			Companions:       splitList(get(rec, "Companions")),
		}
		p.DaysToGermination = parseIntCell(get(rec, "DaysToGermination"))
		p.DaysBeforeTransplantReady = parseIntCell(get(rec, "DaysBeforeTransplantReady"))
		p.TransplantToHarvestDays = parseIntCell(get(rec, "TransplantToHarvestDays"))
		p.DaysToHarvest = parseIntCell(get(rec, "DaysToHarvest"))
		if v, err := strconv.ParseFloat(get(rec, "SpacingInches"), 64); err == nil {
			p.SpacingInches = v
		}
		if err := s.r.Upsert(p); err != nil {
			skipped++
			continue
		}
		imported++
	}
	return imported, skipped, nil
}

func intCell(v *int) any {
	if v == nil {
		return ""
	}
	return *v
}

func parseIntCell(s string) *int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "yes", "1", "y":
		return true
	}
	return false
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
