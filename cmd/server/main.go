package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/burnashoff2016/Yandex-AI/config"
	"github.com/burnashoff2016/Yandex-AI/database"
	"github.com/burnashoff2016/Yandex-AI/router"

	"github.com/burnashoff2016/Yandex-AI/pkg/ai"
	"github.com/burnashoff2016/Yandex-AI/pkg/middleware"

	authCtrlImp "github.com/burnashoff2016/Yandex-AI/pkg/auth/controllerImp"
	authRepoImp "github.com/burnashoff2016/Yandex-AI/pkg/auth/repositoryImp"
	authSvcImp "github.com/burnashoff2016/Yandex-AI/pkg/auth/serviceImp"

	genCtrlImp "github.com/burnashoff2016/Yandex-AI/pkg/generate/controllerImp"
	genSvcImp "github.com/burnashoff2016/Yandex-AI/pkg/generate/serviceImp"

	histCtrlImp "github.com/burnashoff2016/Yandex-AI/pkg/history/controllerImp"
	histRepoImp "github.com/burnashoff2016/Yandex-AI/pkg/history/repositoryImp"

	brandCtrlImp "github.com/burnashoff2016/Yandex-AI/pkg/brandvoice/controllerImp"
	brandRepoImp "github.com/burnashoff2016/Yandex-AI/pkg/brandvoice/repositoryImp"
	brandSvcImp "github.com/burnashoff2016/Yandex-AI/pkg/brandvoice/serviceImp"

	medCtrlImp "github.com/burnashoff2016/Yandex-AI/pkg/media/controllerImp"
	medRepoImp "github.com/burnashoff2016/Yandex-AI/pkg/media/repositoryImp"
	medSvcImp "github.com/burnashoff2016/Yandex-AI/pkg/media/serviceImp"

	calCtrlImp "github.com/burnashoff2016/Yandex-AI/pkg/calendar/controllerImp"
	calRepoImp "github.com/burnashoff2016/Yandex-AI/pkg/calendar/repositoryImp"

	healthCtrlImp "github.com/burnashoff2016/Yandex-AI/pkg/health/controllerImp"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("zap: %v", err)
	}
	defer logger.Sync()

	db := database.OpenSQLite(cfg.DBPath)

	// Auth
	users := authRepoImp.New(db)
	authSvc := authSvcImp.New(users, cfg.SecretKey, cfg.TokenTTLHours)
	authCtrl := authCtrlImp.New(authSvc)

	// Providers
	llm := ai.Select(cfg)

	// Brand voice
	guidelines := brandRepoImp.NewGuidelines(db)
	examples := brandRepoImp.NewExamples(db)
	voiceSvc := brandSvcImp.New(guidelines, examples, llm, cfg.MockMode, logger)
	brandCtrl := brandCtrlImp.New(voiceSvc, guidelines, examples)

	// Images
	imgSettings := medRepoImp.New(db)
	imgSvc := medSvcImp.New(cfg, imgSettings, logger)
	medCtrl := medCtrlImp.New(imgSvc, imgSettings)

	// Generation + history
	histRepo := histRepoImp.New(db)
	genSvc := genSvcImp.New(cfg, llm, voiceSvc, imgSvc, histRepo, logger)
	genCtrl := genCtrlImp.New(genSvc)
	histCtrl := histCtrlImp.New(histRepo)

	// Calendar
	calCtrl := calCtrlImp.New(calRepoImp.New(db))

	healthCtrl := healthCtrlImp.NewHealthCtrl(db, cfg.Version, cfg.MockMode)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(middleware.RequestLogger(logger))

	router.New(e, authSvc, router.Controllers{
		Auth:       authCtrl,
		Generate:   genCtrl,
		History:    histCtrl,
		BrandVoice: brandCtrl,
		Media:      medCtrl,
		Calendar:   calCtrl,
		Health:     healthCtrl,
		AppName:    cfg.AppName,
		Version:    cfg.Version,
	})

	logger.Info("listening",
		zap.String("port", cfg.Port),
		zap.String("provider", cfg.LLMProvider),
		zap.Bool("mock_mode", cfg.MockMode),
	)
	if err := e.Start(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
