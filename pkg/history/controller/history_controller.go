package controller

import "github.com/labstack/echo/v4"

type HistoryController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Save(c echo.Context) error
	Delete(c echo.Context) error
}
