package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"

	app "github.com/mohammadpnp/staff-admin/internal/application/staff"
)

type ImportHandler struct {
	useCase app.ImportUsers
}

func NewImportHandler(useCase app.ImportUsers) *ImportHandler {
	return &ImportHandler{useCase: useCase}
}

// ImportUsers runs the whole import inside this request and replies with the
// structured result the admin UI consumes directly.
func (h *ImportHandler) ImportUsers(c echo.Context) error {
	var req app.ImportUsersInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, app.ImportUsersOutput{
			Status:  app.StatusError,
			Message: "invalid request body",
		})
	}

	out := h.useCase.Execute(c.Request().Context(), req)
	if out.Status != app.StatusSuccess {
		return c.JSON(http.StatusUnprocessableEntity, out)
	}
	return c.JSON(http.StatusOK, out)
}
