package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"plot/entities"
)

var appStart = time.Now()

type HealthCtrl struct {
	db *gorm.DB
}

func NewHealthCtrl(db *gorm.DB) *HealthCtrl { return &HealthCtrl{db: db} }

// Health pings the database and confirms the plant catalog was seeded.
// An empty catalog means bootstrap never ran; the service is up but
// cannot compute planting dates, so report degraded.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	dbOK := true
	dbErr := ""
	var catalogCount int64
	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			dbOK = false
			dbErr = "db.DB(): " + err.Error()
		} else if err := sqlDB.PingContext(ctx); err != nil {
			dbOK = false
			dbErr = "ping: " + err.Error()
		} else {
			_ = h.db.WithContext(ctx).Model(&entities.Plant{}).Count(&catalogCount).Error
		}
	} else {
		dbOK = false
		dbErr = "gorm db is nil"
	}

	allOK := dbOK && catalogCount > 0
	status := http.StatusOK
	if !allOK {
		status = http.StatusServiceUnavailable
	}

	type sub struct {
		OK  bool   `json:"ok"`
		Err string `json:"err,omitempty"`
	}

	return c.JSON(status, map[string]any{
		"status":     map[string]any{"ok": allOK},
		"uptime_sec": int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": sub{OK: dbOK, Err: dbErr},
			"catalog":  sub{OK: catalogCount > 0},
		},
		"catalog_plants": catalogCount,
		"time":           time.Now().Format(time.RFC3339),
	})
}
