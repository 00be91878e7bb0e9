package echo

import (
	"net/http"

	"github.com/labstack/echo/v4"

	app "github.com/mohammadpnp/staff-admin/internal/application/staff"
)

type OrgHandler struct {
	listDepartments app.ListDepartments
	listRoles       app.ListRoles
	listPermissions app.ListPermissions
}

func NewOrgHandler(
	listDepartments app.ListDepartments,
	listRoles app.ListRoles,
	listPermissions app.ListPermissions,
) *OrgHandler {
	return &OrgHandler{
		listDepartments: listDepartments,
		listRoles:       listRoles,
		listPermissions: listPermissions,
	}
}

func (h *OrgHandler) ListDepartments(c echo.Context) error {
	out, err := h.listDepartments.Execute(c.Request().Context())
	if err != nil {
		return orgError(c, "failed to list departments")
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *OrgHandler) ListRoles(c echo.Context) error {
	out, err := h.listRoles.Execute(c.Request().Context())
	if err != nil {
		return orgError(c, "failed to list roles")
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *OrgHandler) ListPermissions(c echo.Context) error {
	out, err := h.listPermissions.Execute(c.Request().Context())
	if err != nil {
		return orgError(c, "failed to list permissions")
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func orgError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
		Code:    "internal_error",
		Message: message,
	}})
}
