package controllerImp

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"plot/entities"
	"plot/pkg/profile/repository"
	"plot/pkg/zone"
)

type ProfileCtrl struct{ r repository.ProfileRepository }

func New(r repository.ProfileRepository) *ProfileCtrl { return &ProfileCtrl{r: r} }

func uid(c echo.Context) string {
	v, _ := c.Get("uid").(string)
	return v
}

// Me returns the stored profile plus the fully resolved climate context.
// A user who never picked a zone still gets the default context back.
func (h *ProfileCtrl) Me(c echo.Context) error {
	p, err := h.r.Get(uid(c))
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	var code string
	var ov *zone.Override
	if p == nil {
		p = &entities.UserProfile{UserID: uid(c)}
	} else {
		code = p.Zone
		ov = &zone.Override{LastFrost: p.CustomLastFrost, FirstFrost: p.CustomFirstFrost}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"profile": p,
		"climate": zone.Resolve(zone.Builtin, code, ov),
	})
}

type zoneReq struct {
	Zone             string `json:"zone"`
	CustomLastFrost  string `json:"custom_last_frost"`
	CustomFirstFrost string `json:"custom_first_frost"`
}

// SetZone updates the user's zone choice and optional frost overrides.
func (h *ProfileCtrl) SetZone(c echo.Context) error {
	var req zoneReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	req.Zone = strings.TrimSpace(req.Zone)
	if req.Zone != "" {
		if _, ok := zone.Builtin.Zone(req.Zone); !ok {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown zone: " + req.Zone})
		}
	}
	for _, f := range []string{req.CustomLastFrost, req.CustomFirstFrost} {
		if f == "" {
			continue
		}
		if _, err := zone.ParseMonthDay(f); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": "frost dates must be MM-DD"})
		}
	}
	p := &entities.UserProfile{
		UserID:           uid(c),
		Zone:             req.Zone,
		CustomLastFrost:  req.CustomLastFrost,
		CustomFirstFrost: req.CustomFirstFrost,
	}
	if err := h.r.Upsert(p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	ov := &zone.Override{LastFrost: p.CustomLastFrost, FirstFrost: p.CustomFirstFrost}
	return c.JSON(http.StatusOK, map[string]any{
		"profile": p,
		"climate": zone.Resolve(zone.Builtin, p.Zone, ov),
	})
}

func (h *ProfileCtrl) Zones(c echo.Context) error {
	out, err := h.r.Zones()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ProfileCtrl) GetZone(c echo.Context) error {
	z, err := h.r.Zone(c.Param("zone"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "zone not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, z)
}
