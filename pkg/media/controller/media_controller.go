package controller

import "github.com/labstack/echo/v4"

type MediaController interface {
	GenerateImage(c echo.Context) error
	GetSettings(c echo.Context) error
	UpdateSettings(c echo.Context) error
}
