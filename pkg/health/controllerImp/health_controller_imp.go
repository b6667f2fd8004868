package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"farmapi/pkg/health/controller"
)

const pingTimeout = 800 * time.Millisecond

type HealthCtrl struct {
	db      *gorm.DB
	started time.Time
}

var _ controller.HealthController = (*HealthCtrl)(nil)

func NewHealthCtrl(db *gorm.DB, started time.Time) *HealthCtrl {
	return &HealthCtrl{db: db, started: started}
}

type check struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

type healthResp struct {
	OK        bool             `json:"ok"`
	UptimeSec int              `json:"uptime_sec"`
	Checks    map[string]check `json:"checks"`
	Time      string           `json:"time"`
}

// Health pings the database and answers 503 when it is unreachable.
func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), pingTimeout)
	defer cancel()

	db := h.ping(ctx)
	status := http.StatusOK
	if !db.OK {
		status = http.StatusServiceUnavailable
	}
	return c.JSON(status, healthResp{
		OK:        db.OK,
		UptimeSec: int(time.Since(h.started).Seconds()),
		Checks:    map[string]check{"database": db},
		Time:      time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *HealthCtrl) ping(ctx context.Context) check {
	if h.db == nil {
		return check{Err: "database not configured"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return check{Err: "db handle: " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return check{Err: "ping: " + err.Error()}
	}
	return check{OK: true}
}
