package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmapi/pkg/crop/controller"
	"farmapi/pkg/crop/service"
	"farmapi/pkg/reply"
)

type CropCtrl struct{ s service.CropService }

var _ controller.CropController = (*CropCtrl)(nil)

func New(s service.CropService) *CropCtrl { return &CropCtrl{s} }

func (h *CropCtrl) Add(c echo.Context) error {
	var req service.AddInput
	if err := reply.Bind(c, &req); err != nil {
		return reply.Error(c, err)
	}
	if _, err := h.s.Add(c.Request().Context(), req); err != nil {
		return reply.Error(c, err)
	}
	return reply.Message(c, http.StatusCreated, "Crop added successfully")
}

func (h *CropCtrl) List(c echo.Context) error {
	fid, err := reply.PathID(c, "farmer_id")
	if err != nil {
		return reply.NotFound(c)
	}
	out, err := h.s.ListByFarmer(c.Request().Context(), fid)
	if err != nil {
		return reply.Error(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) Get(c echo.Context) error {
	id, err := reply.PathID(c, "crop_id")
	if err != nil {
		return reply.Message(c, http.StatusNotFound, "Crop not found")
	}
	crop, err := h.s.GetByID(c.Request().Context(), id)
	if err != nil {
		return reply.Error(c, err)
	}
	return c.JSON(http.StatusOK, crop)
}

func (h *CropCtrl) Remove(c echo.Context) error {
	id, err := reply.PathID(c, "crop_id")
	if err != nil {
		return reply.Message(c, http.StatusNotFound, "Crop not found")
	}
	if err := h.s.Remove(c.Request().Context(), id); err != nil {
		return reply.Error(c, err)
	}
	return reply.Message(c, http.StatusOK, "Crop removed successfully")
}
