package router

import (
	"github.com/labstack/echo/v4"

	authCtrl "plot/pkg/auth/controller"
	gardenCtrl "plot/pkg/garden/controllerImp"
	guideCtrl "plot/pkg/guide/controllerImp"
	healthCtrl "plot/pkg/health/controllerImp"
	"plot/pkg/middleware"
	plantCtrl "plot/pkg/plantlib/controllerImp"
	profileCtrl "plot/pkg/profile/controllerImp"
)

func New(
	e *echo.Echo,
	garden *gardenCtrl.GardenCtrl,
	plants *plantCtrl.PlantCtrl,
	profile *profileCtrl.ProfileCtrl,
	guide *guideCtrl.GuideCtrl,
	auth authCtrl.AuthController,
	health *healthCtrl.HealthCtrl,
	strictAuth bool,
) *echo.Echo {
	e.Use(middleware.RequireUID(strictAuth))
	if !strictAuth {
		e.Use(middleware.DevLogin())
	}
	api := e.Group("")

	e.GET("/health", health.Health)
	api.GET("/whoami", auth.WhoAmI)
	api.GET("/devlogin", auth.DevLogin)

	api.GET("/me", profile.Me)
	api.PATCH("/me/zone", profile.SetZone)
	api.GET("/zones", profile.Zones)
	api.GET("/zones/:zone", profile.GetZone)

	api.GET("/plants", plants.List)
	api.POST("/plants", plants.Create)
	api.GET("/plants/:name", plants.Get)
	api.DELETE("/plants/:id", plants.Delete)
	api.GET("/plants/export/xlsx", plants.Export)
	api.POST("/plants/import/xlsx", plants.Import)

	api.POST("/guide/ingest", guide.IngestText)
	api.POST("/guide/ingest/url", guide.IngestURL)
	api.GET("/guide/search", guide.Search)

	api.POST("/gardens", garden.Create)
	api.GET("/gardens", garden.List)
	api.GET("/gardens/:id", garden.Get)
	api.DELETE("/gardens/:id", garden.Delete)

	g := e.Group("/gardens")
	g.POST("/:id/cells", garden.Place)
	g.POST("/:id/move", garden.Move)
	g.GET("/:id/cells/:row/:col", garden.CellState)
	g.DELETE("/:id/cells/:row/:col", garden.RemoveCell)
	g.PATCH("/:id/cells/:row/:col/dates", garden.RecordDates)
	g.POST("/:id/cells/:row/:col/harvest", garden.MarkHarvested)

	g.GET("/:id/prompt", garden.Prompt)
	g.POST("/:id/suggest", garden.Suggest)
	g.GET("/:id/notifications", garden.Notifications)

	g.POST("/:id/notes", garden.AddNote)
	g.GET("/:id/notes", garden.ListNotes)

	return e
}
