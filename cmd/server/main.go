package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"plot/config"
	"plot/database"
	"plot/router"

	authCtrlImp "plot/pkg/auth/controllerImp"
	gardenCtrlImp "plot/pkg/garden/controllerImp"
	gardenRepoImp "plot/pkg/garden/repositoryImp"
	gardenSvcImp "plot/pkg/garden/serviceImp"
	guideCtrlImp "plot/pkg/guide/controllerImp"
	guideRepoImp "plot/pkg/guide/repositoryImp"
	guideSvcImp "plot/pkg/guide/serviceImp"
	healthCtrlImp "plot/pkg/health/controllerImp"
	plantCtrlImp "plot/pkg/plantlib/controllerImp"
	plantRepoImp "plot/pkg/plantlib/repositoryImp"
	plantSvcImp "plot/pkg/plantlib/serviceImp"
	profileCtrlImp "plot/pkg/profile/controllerImp"
	profileRepoImp "plot/pkg/profile/repositoryImp"

	"plot/pkg/suggest"
	"plot/pkg/zone"
)

func main() {
	cfg := config.Load()

	db := database.OpenSQLite(cfg.DBPath)
	database.Seed(db)

	e := echo.New()
	e.Use(echoMiddleware.Recover())

	// Suggestion source: real endpoint when configured, mock otherwise so
	// the round trip always works in development.
	var llm suggest.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = suggest.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		log.Printf("[llm] no endpoint configured, using mock suggestions")
		llm = suggest.NewMock()
	}

	guideRepo := guideRepoImp.New(db)
	guideSvc := guideSvcImp.New(guideRepo)
	guideCtrl := guideCtrlImp.New(guideSvc)

	plantRepo := plantRepoImp.New(db)
	plantSvc := plantSvcImp.New(plantRepo)
	plantCtrl := plantCtrlImp.New(plantSvc)

	profileRepo := profileRepoImp.New(db)
	profileCtrl := profileCtrlImp.New(profileRepo)

	gardenRepo := gardenRepoImp.New(db)
	gardenSvc := gardenSvcImp.NewGardenService(gardenRepo, plantRepo, profileRepo, guideSvc, llm, zone.Builtin)
	gardenCtrl := gardenCtrlImp.New(gardenSvc)

	authCtrl := authCtrlImp.NewAuthController()
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	r := router.New(e, gardenCtrl, plantCtrl, profileCtrl, guideCtrl, authCtrl, healthCtrl, cfg.StrictAuth)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
