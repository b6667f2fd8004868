package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmapi/pkg/farmer/controller"
	"farmapi/pkg/farmer/service"
	"farmapi/pkg/reply"
)

type FarmerCtrl struct{ s service.FarmerService }

var _ controller.FarmerController = (*FarmerCtrl)(nil)

func New(s service.FarmerService) *FarmerCtrl { return &FarmerCtrl{s} }

func (h *FarmerCtrl) Register(c echo.Context) error {
	var req service.RegisterInput
	if err := reply.Bind(c, &req); err != nil {
		return reply.Error(c, err)
	}
	f, err := h.s.Register(c.Request().Context(), req)
	if err != nil {
		return reply.Error(c, err)
	}
	return c.JSON(http.StatusCreated, echo.Map{"message": "Farmer registered successfully", "farmer_id": f.ID})
}

func (h *FarmerCtrl) Get(c echo.Context) error {
	id, err := reply.PathID(c, "farmer_id")
	if err != nil {
		return reply.Message(c, http.StatusNotFound, "Farmer not found")
	}
	f, err := h.s.GetByID(c.Request().Context(), id)
	if err != nil {
		return reply.Error(c, err)
	}
	return c.JSON(http.StatusOK, f)
}
