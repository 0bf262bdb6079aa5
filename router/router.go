package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	authctrl "github.com/burnashoff2016/Yandex-AI/pkg/auth/controller"
	authsvc "github.com/burnashoff2016/Yandex-AI/pkg/auth/service"
	brandctrl "github.com/burnashoff2016/Yandex-AI/pkg/brandvoice/controller"
	calctrl "github.com/burnashoff2016/Yandex-AI/pkg/calendar/controller"
	genctrl "github.com/burnashoff2016/Yandex-AI/pkg/generate/controller"
	histctrl "github.com/burnashoff2016/Yandex-AI/pkg/history/controller"
	medctrl "github.com/burnashoff2016/Yandex-AI/pkg/media/controller"
	"github.com/burnashoff2016/Yandex-AI/pkg/middleware"
)

type Controllers struct {
	Auth       authctrl.AuthController
	Generate   genctrl.GenerateController
	History    histctrl.HistoryController
	BrandVoice brandctrl.BrandVoiceController
	Media      medctrl.MediaController
	Calendar   calctrl.CalendarController
	Health     interface{ Health(echo.Context) error }

	AppName string
	Version string
}

// New registers every route. Everything under /api except /register,
// /login and the probes requires a bearer token; admin-only routes add
// the role check on top.
func New(e *echo.Echo, auth authsvc.AuthService, c Controllers) *echo.Echo {
	e.GET("/", func(ec echo.Context) error {
		return ec.JSON(http.StatusOK, map[string]string{"name": c.AppName, "version": c.Version})
	})
	e.GET("/health", c.Health.Health)

	api := e.Group("/api")
	api.POST("/register", c.Auth.Register)
	api.POST("/login", c.Auth.Login)

	authed := api.Group("", middleware.JWT(auth))
	authed.GET("/me", c.Auth.Me)

	authed.POST("/generate", c.Generate.Generate)
	authed.POST("/generate/stream", c.Generate.GenerateStream)
	authed.POST("/hashtags/generate", c.Generate.Hashtags)
	authed.POST("/series/generate", c.Generate.Series)
	authed.POST("/content-plan/generate", c.Generate.ContentPlan)
	authed.POST("/content-plan/export", c.Generate.ContentPlanExport)
	authed.POST("/audience/analyze", c.Generate.Audience)
	authed.POST("/improve/:action", c.Generate.Improve)

	authed.GET("/history", c.History.List)
	authed.GET("/history/:id", c.History.Get)
	authed.POST("/history/:id/save", c.History.Save)
	authed.DELETE("/history/:id", c.History.Delete)

	authed.POST("/media/generate-image", c.Media.GenerateImage)

	authed.GET("/calendar", c.Calendar.List)
	authed.POST("/calendar", c.Calendar.Create)
	authed.GET("/calendar/:id", c.Calendar.Get)
	authed.PUT("/calendar/:id", c.Calendar.Update)
	authed.DELETE("/calendar/:id", c.Calendar.Delete)

	admin := authed.Group("", middleware.AdminOnly())
	admin.GET("/brand-voice", c.BrandVoice.List)
	admin.GET("/brand-voice/examples", c.BrandVoice.ListExamples)
	admin.POST("/brand-voice/examples", c.BrandVoice.AddExample)
	admin.POST("/brand-voice/examples/url", c.BrandVoice.AddExampleFromURL)
	admin.DELETE("/brand-voice/examples/:id", c.BrandVoice.DeleteExample)
	admin.POST("/brand-voice/analyze/:channel", c.BrandVoice.Analyze)
	admin.GET("/brand-voice/:channel", c.BrandVoice.Get)
	admin.PUT("/brand-voice/:channel", c.BrandVoice.Set)

	admin.GET("/image-settings", c.Media.GetSettings)
	admin.PUT("/image-settings", c.Media.UpdateSettings)

	return e
}
