package controllerImp

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"farmapi/pkg/billing/controller"
	"farmapi/pkg/billing/export"
	"farmapi/pkg/billing/service"
	"farmapi/pkg/reply"
)

type BillingCtrl struct{ s service.BillingService }

var _ controller.BillingController = (*BillingCtrl)(nil)

func New(s service.BillingService) *BillingCtrl { return &BillingCtrl{s} }

func (h *BillingCtrl) DroneUsage(c echo.Context) error {
	fid, err := reply.PathID(c, "farmer_id")
	if err != nil {
		return reply.NotFound(c)
	}
	u, err := h.s.DroneUsage(c.Request().Context(), fid)
	if err != nil {
		return reply.Error(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

// ExportStatement streams the billing statement as an xlsx attachment.
func (h *BillingCtrl) ExportStatement(c echo.Context) error {
	fid, err := reply.PathID(c, "farmer_id")
	if err != nil {
		return reply.Message(c, http.StatusNotFound, "Farmer not found")
	}
	st, err := h.s.Statement(c.Request().Context(), fid)
	if err != nil {
		return reply.Error(c, err)
	}
	var buf bytes.Buffer
	if err := export.WriteXLSX(&buf, st); err != nil {
		return reply.Error(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="drone_usage_%d.xlsx"`, fid))
	return c.Blob(http.StatusOK, export.ContentType, buf.Bytes())
}
