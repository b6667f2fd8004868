package controller

import "github.com/labstack/echo/v4"

type FarmerController interface {
	Register(c echo.Context) error
	Get(c echo.Context) error
}
