// Package app assembles the HTTP server from configuration and a database handle.
package app

import (
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"farmapi/config"
	"farmapi/pkg/logging"
	"farmapi/pkg/metrics"
	"farmapi/pkg/middleware"
	"farmapi/pkg/validation"
	"farmapi/router"

	// Farmer
	farmerCtrlImp "farmapi/pkg/farmer/controllerImp"
	farmerRepoImp "farmapi/pkg/farmer/repositoryImp"
	farmerSvcImp "farmapi/pkg/farmer/serviceImp"

	// Crop
	cropCtrlImp "farmapi/pkg/crop/controllerImp"
	cropRepoImp "farmapi/pkg/crop/repositoryImp"
	cropSvcImp "farmapi/pkg/crop/serviceImp"

	// Billing
	billingCtrlImp "farmapi/pkg/billing/controllerImp"
	billingSvcImp "farmapi/pkg/billing/serviceImp"

	// Health
	healthCtrlImp "farmapi/pkg/health/controllerImp"
)

const metricsNamespace = "farmapi"

// Build wires repositories, services and controllers onto a new echo
// instance. The caller owns db and starts the server.
func Build(cfg config.AppConfig, db *gorm.DB, log zerolog.Logger) *echo.Echo {
	m := metrics.New(metricsNamespace)
	v := validation.New()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Debug
	e.Use(
		middleware.RequestID(),
		middleware.RequestLog(logging.Component(log, "http")),
		middleware.Metrics(m),
		middleware.RateLimit(cfg.RateLimitRPS),
		echoMiddleware.Recover(),
	)

	fRepo := farmerRepoImp.New(db)
	cRepo := cropRepoImp.New(db)

	fCtrl := farmerCtrlImp.New(farmerSvcImp.NewFarmerService(fRepo, v, m))
	cCtrl := cropCtrlImp.New(cropSvcImp.NewCropService(cRepo, v, m))
	bCtrl := billingCtrlImp.New(billingSvcImp.NewBillingService(cRepo, fRepo, cfg.DroneRatePerAcre, m))
	hCtrl := healthCtrlImp.NewHealthCtrl(db, time.Now())

	return router.New(e, fCtrl, cCtrl, bCtrl, hCtrl, m.Handler())
}
