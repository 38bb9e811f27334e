package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"plot/entities"
	"plot/pkg/garden/serviceImp"
	"plot/pkg/grid"
	"plot/pkg/suggest"
)

type GardenCtrl struct{ svc *serviceImp.GardenSvc }

func New(svc *serviceImp.GardenSvc) *GardenCtrl { return &GardenCtrl{svc: svc} }

func uid(c echo.Context) string {
	v, _ := c.Get("uid").(string)
	return v
}

func gardenID(c echo.Context) uint {
	id, _ := strconv.Atoi(c.Param("id"))
	return uint(id)
}

func cellParams(c echo.Context) (int, int, error) {
	row, err := strconv.Atoi(c.Param("row"))
	if err != nil {
		return 0, 0, err
	}
	col, err := strconv.Atoi(c.Param("col"))
	if err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

// jsonError maps service errors onto HTTP statuses.
func jsonError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "garden not found"})
	case errors.Is(err, serviceImp.ErrOutOfBounds),
		errors.Is(err, serviceImp.ErrBadDimensions),
		errors.Is(err, serviceImp.ErrNotPlantCell),
		errors.Is(err, serviceImp.ErrBadDate):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	default:
		var malformed *suggest.MalformedDocumentError
		if errors.As(err, &malformed) {
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": malformed.Error()})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

type createReq struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	IsPublic    bool   `json:"is_public"`
}

func (h *GardenCtrl) Create(c echo.Context) error {
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	g, err := h.svc.CreateGarden(uid(c), req.Name, req.Description, req.Width, req.Height, req.IsPublic)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, g)
}

func (h *GardenCtrl) List(c echo.Context) error {
	out, err := h.svc.ListGardens(uid(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *GardenCtrl) Get(c echo.Context) error {
	view, err := h.svc.View(gardenID(c), uid(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *GardenCtrl) Delete(c echo.Context) error {
	if err := h.svc.DeleteGarden(gardenID(c), uid(c)); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

type placeReq struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Plant string `json:"plant"`
	Path  bool   `json:"path"` // true marks a walkway instead of a plant
}

func (h *GardenCtrl) Place(c echo.Context) error {
	var req placeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Path {
		if err := h.svc.SetPath(gardenID(c), uid(c), req.Row, req.Col); err != nil {
			return jsonError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]string{"occupant": grid.TokenPath})
	}
	token, err := h.svc.Place(gardenID(c), uid(c), req.Row, req.Col, req.Plant)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"occupant": token})
}

func (h *GardenCtrl) RemoveCell(c echo.Context) error {
	row, col, err := cellParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad coordinate"})
	}
	if err := h.svc.Remove(gardenID(c), uid(c), row, col); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"occupant": grid.TokenEmpty})
}

type moveReq struct {
	From grid.Coord  `json:"from"`
	To   *grid.Coord `json:"to"` // null = drag off grid
}

func (h *GardenCtrl) Move(c echo.Context) error {
	var req moveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.svc.Move(gardenID(c), uid(c), req.From, req.To); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *GardenCtrl) CellState(c echo.Context) error {
	row, col, err := cellParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad coordinate"})
	}
	state, err := h.svc.CellState(gardenID(c), uid(c), row, col)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, state)
}

func (h *GardenCtrl) RecordDates(c echo.Context) error {
	row, col, err := cellParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad coordinate"})
	}
	var fields serviceImp.DateFields
	if err := c.Bind(&fields); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.svc.RecordDates(gardenID(c), uid(c), row, col, fields); err != nil {
		return jsonError(c, err)
	}
	state, err := h.svc.CellState(gardenID(c), uid(c), row, col)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, state)
}

func (h *GardenCtrl) MarkHarvested(c echo.Context) error {
	row, col, err := cellParams(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad coordinate"})
	}
	var body struct {
		Date string `json:"date"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.svc.MarkHarvested(gardenID(c), uid(c), row, col, body.Date); err != nil {
		return jsonError(c, err)
	}
	state, err := h.svc.CellState(gardenID(c), uid(c), row, col)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, state)
}

// Prompt exposes the export text so users can inspect (or hand-carry)
// what would be sent to the suggestion source.
func (h *GardenCtrl) Prompt(c echo.Context) error {
	prompt, err := h.svc.BuildPrompt(gardenID(c), uid(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"prompt": prompt})
}

// Suggest runs the full round trip. With a "response" body field the
// external call is skipped and the supplied text is imported directly.
func (h *GardenCtrl) Suggest(c echo.Context) error {
	var body struct {
		Response string `json:"response"`
	}
	_ = c.Bind(&body)

	var (
		report *suggest.Report
		err    error
	)
	if body.Response != "" {
		report, err = h.svc.ApplySuggestions(gardenID(c), uid(c), body.Response)
	} else {
		report, err = h.svc.Suggest(gardenID(c), uid(c))
	}
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, report)
}

func (h *GardenCtrl) Notifications(c echo.Context) error {
	out, err := h.svc.Notifications(gardenID(c), uid(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

type noteReq struct {
	PlantName    string `json:"plant_name"`
	Title        string `json:"title"`
	NoteText     string `json:"note_text"`
	GridPosition string `json:"grid_position"`
}

func (h *GardenCtrl) AddNote(c echo.Context) error {
	var req noteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	n := &entities.PlantingNote{
		PlantName:    req.PlantName,
		Title:        req.Title,
		NoteText:     req.NoteText,
		GridPosition: req.GridPosition,
	}
	if err := h.svc.AddNote(gardenID(c), uid(c), n); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, n)
}

func (h *GardenCtrl) ListNotes(c echo.Context) error {
	out, err := h.svc.Notes(gardenID(c), uid(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
