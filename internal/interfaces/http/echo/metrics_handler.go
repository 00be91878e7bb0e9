package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"

	app "github.com/mohammadpnp/staff-admin/internal/application/staff"
)

type MetricsHandler struct {
	serviceWorth app.GetServiceWorth
}

func NewMetricsHandler(serviceWorth app.GetServiceWorth) *MetricsHandler {
	return &MetricsHandler{serviceWorth: serviceWorth}
}

func (h *MetricsHandler) ServiceWorth(c echo.Context) error {
	out, err := h.serviceWorth.Execute(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to compute service worth",
		}})
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}
