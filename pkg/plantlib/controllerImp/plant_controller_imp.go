package controllerImp

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"plot/entities"
	"plot/pkg/plantlib/serviceImp"
)

type PlantCtrl struct{ svc *serviceImp.Svc }

func New(svc *serviceImp.Svc) *PlantCtrl { return &PlantCtrl{svc: svc} }

func (h *PlantCtrl) List(c echo.Context) error {
	out, err := h.svc.All()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PlantCtrl) Get(c echo.Context) error {
	p, err := h.svc.FindByName(c.Param("name"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "plant not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, p)
}

func (h *PlantCtrl) Create(c echo.Context) error {
	var p entities.Plant
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if err := h.svc.Create(&p); err != nil {
		if errors.Is(err, serviceImp.ErrNameRequired) {
			return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
		}
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, &p)
}

func (h *PlantCtrl) Delete(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad id"})
	}
	if err := h.svc.Delete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": "plant not found"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

// Export streams the catalog as an .xlsx download.
func (h *PlantCtrl) Export(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="plants.xlsx"`)
	c.Response().WriteHeader(http.StatusOK)
	return h.svc.ExportXLSX(c.Response().Writer)
}

// Import reads an uploaded .xlsx (multipart field "file") and upserts
// catalog rows by name.
func (h *PlantCtrl) Import(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "file required"})
	}
	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	defer f.Close()

	imported, skipped, err := h.svc.ImportXLSX(f)
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, map[string]int{"imported": imported, "skipped": skipped})
}
