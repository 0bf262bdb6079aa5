package controller

import "github.com/labstack/echo/v4"

type BrandVoiceController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Set(c echo.Context) error
	Analyze(c echo.Context) error
	AddExample(c echo.Context) error
	AddExampleFromURL(c echo.Context) error
	ListExamples(c echo.Context) error
	DeleteExample(c echo.Context) error
}
