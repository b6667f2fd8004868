package controller

import "github.com/labstack/echo/v4"

type BillingController interface {
	DroneUsage(c echo.Context) error
	ExportStatement(c echo.Context) error
}
