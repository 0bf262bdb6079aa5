package controller

import "github.com/labstack/echo/v4"

type GenerateController interface {
	Generate(c echo.Context) error
	GenerateStream(c echo.Context) error
	Hashtags(c echo.Context) error
	Series(c echo.Context) error
	ContentPlan(c echo.Context) error
	ContentPlanExport(c echo.Context) error
	Audience(c echo.Context) error
	Improve(c echo.Context) error
}
