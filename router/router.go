package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func New(
	e *echo.Echo,
	farmerCtrl interface {
		Register(echo.Context) error
		Get(echo.Context) error
	},
	cropCtrl interface {
		Add(echo.Context) error
		List(echo.Context) error
		Get(echo.Context) error
		Remove(echo.Context) error
	},
	billingCtrl interface {
		DroneUsage(echo.Context) error
		ExportStatement(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
	metricsHandler http.Handler,
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)
	e.GET("/metrics", echo.WrapHandler(metricsHandler))

	e.POST("/register_farmer", farmerCtrl.Register)
	e.GET("/get_farmer/:farmer_id", farmerCtrl.Get)

	e.POST("/add_crop", cropCtrl.Add)
	e.GET("/get_crops/:farmer_id", cropCtrl.List)
	e.GET("/get_crop/:crop_id", cropCtrl.Get)
	e.DELETE("/remove_crop/:crop_id", cropCtrl.Remove)

	e.GET("/get_drone_usage/:farmer_id", billingCtrl.DroneUsage)
	e.GET("/export_drone_usage/:farmer_id", billingCtrl.ExportStatement)
	return e
}
