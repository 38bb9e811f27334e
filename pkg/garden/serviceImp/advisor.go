package serviceImp

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"plot/pkg/grid"
	"plot/pkg/planting"
	"plot/pkg/suggest"
	"plot/pkg/zone"
)

var ErrNoSuggestionClient = errors.New("garden: no suggestion client configured")

// zoneContext resolves the user's climate view. Resolution is total: a
// missing profile or unknown zone code falls back to the system default.
func (s *GardenSvc) zoneContext(uid string) zone.Context {
	var code string
	var ov *zone.Override
	if s.profiles != nil {
		if p, err := s.profiles.Get(uid); err == nil && p != nil {
			code = p.Zone
			ov = &zone.Override{LastFrost: p.CustomLastFrost, FirstFrost: p.CustomFirstFrost}
		}
	}
	return zone.Resolve(s.zones, code, ov)
}

// BuildPrompt renders the export half of the suggestion round trip.
func (s *GardenSvc) BuildPrompt(id uint, uid string) (string, error) {
	g, err := s.repo.FindByID(id, uid)
	if err != nil {
		return "", err
	}
	rows, err := s.repo.Instances(g.GardenID)
	if err != nil {
		return "", err
	}
	gr, err := loadGrid(g, rows)
	if err != nil {
		return "", err
	}
	catalog, err := s.plants.All()
	if err != nil {
		return "", err
	}
	zctx := s.zoneContext(uid)
	refNotes := s.guideContext(gr, zctx)
	return suggest.BuildPrompt(gr, catalog, zctx, s.now(), refNotes), nil
}

// guideContext pulls a few growing-guide snippets relevant to the
// current species mix, the same way the knowledge base feeds plan
// summaries. Best-effort: failures just mean a leaner prompt.
func (s *GardenSvc) guideContext(gr *grid.Grid, zctx zone.Context) string {
	if s.guide == nil {
		return ""
	}
	seen := map[string]bool{}
	var names []string
	gr.EachCell(func(_ grid.Coord, o grid.Occupant) {
		if o.IsPlant() && !seen[o.Plant] {
			seen[o.Plant] = true
			names = append(names, o.Plant)
		}
	})
	sort.Strings(names)
	query := strings.Join(names, " ") + " zone " + zctx.Zone + " companion planting"
	ctx, err := s.guide.ContextFor(query, 4)
	if err != nil {
		return ""
	}
	return ctx
}

// Suggest runs the full round trip: export the garden as a prompt, send
// it to the reasoning source, then validate and apply the response. The
// external call happens outside the write transaction; the import is the
// mutation and later imports win, consistent with direct placement.
func (s *GardenSvc) Suggest(id uint, uid string) (*suggest.Report, error) {
	if s.llm == nil {
		return nil, ErrNoSuggestionClient
	}
	prompt, err := s.BuildPrompt(id, uid)
	if err != nil {
		return nil, err
	}
	responseText, err := s.llm.Suggest(prompt)
	if err != nil {
		return nil, fmt.Errorf("garden: suggestion source: %w", err)
	}
	return s.ApplySuggestions(id, uid, responseText)
}

// ApplySuggestions is the import half on its own, for hosts that made
// the external call themselves.
func (s *GardenSvc) ApplySuggestions(id uint, uid string, responseText string) (*suggest.Report, error) {
	catalog, err := s.plants.All()
	if err != nil {
		return nil, err
	}
	var report suggest.Report
	_, err = s.mutate(id, uid, func(gr *grid.Grid) error {
		r, err := suggest.ParseAndApply(responseText, gr, catalog)
		if err != nil {
			return err // malformed document: nothing applied
		}
		report = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// NotificationItem is one plant needing attention.
type NotificationItem struct {
	PlantName    string `json:"plant_name"`
	Row          int    `json:"row"`
	Col          int    `json:"col"`
	ExpectedDate string `json:"expected_date"`
	DaysUntil    int    `json:"days_until,omitempty"`
	DaysOverdue  int    `json:"days_overdue,omitempty"`
}

// Notifications buckets plants by harvest urgency for the digest view.
type Notifications struct {
	HarvestReady   []NotificationItem `json:"harvest_ready"`
	HarvestSoon    []NotificationItem `json:"harvest_soon"`
	HarvestOverdue []NotificationItem `json:"harvest_overdue"`
}

// Notifications recomputes the harvest buckets from current dates.
// Harvested instances and ones without an expected date are skipped.
func (s *GardenSvc) Notifications(id uint, uid string) (*Notifications, error) {
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

	out := &Notifications{
		HarvestReady:   []NotificationItem{},
		HarvestSoon:    []NotificationItem{},
		HarvestOverdue: []NotificationItem{},
	}
	today := s.now()
	gr.EachInstance(func(c grid.Coord, in *planting.Instance) {
		occ := gr.At(c)
		if !occ.IsPlant() || in.ActualHarvest != nil || in.EffectivePlanted() == nil {
			return
		}
		derived := planting.Calculate(*in, growthParams(catalog, occ.Plant), today)
		if derived.ExpectedHarvest == nil || derived.DaysUntilHarvest == nil {
			return
		}
		item := NotificationItem{
			PlantName:    occ.Plant,
			Row:          c.Row,
			Col:          c.Col,
			ExpectedDate: derived.ExpectedHarvest.Format("2006-01-02"),
		}
		switch days := *derived.DaysUntilHarvest; {
		case days < 0:
			item.DaysOverdue = -days
			out.HarvestOverdue = append(out.HarvestOverdue, item)
		case days == 0:
			out.HarvestReady = append(out.HarvestReady, item)
		case days <= planting.NearTermWindowDays:
			item.DaysUntil = days
			out.HarvestSoon = append(out.HarvestSoon, item)
		}
	})

	sortItems := func(items []NotificationItem) {
		sort.Slice(items, func(i, j int) bool {
			if items[i].Row != items[j].Row {
				return items[i].Row < items[j].Row
			}
			return items[i].Col < items[j].Col
		})
	}
	sortItems(out.HarvestReady)
	sortItems(out.HarvestSoon)
	sortItems(out.HarvestOverdue)
	return out, nil
}
