package echo

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	app "github.com/mohammadpnp/staff-admin/internal/application/staff"
)

type UserHandler struct {
	getUser    app.GetUser
	listUsers  app.ListUsers
	createUser app.CreateUser
	updateUser app.UpdateUser
	deleteUser app.DeleteUser
	selectUser app.SelectUsers
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiResponse struct {
	Data  any        `json:"data,omitempty"`
	Error *errorBody `json:"error,omitempty"`
}

func NewUserHandler(
	getUser app.GetUser,
	listUsers app.ListUsers,
	createUser app.CreateUser,
	updateUser app.UpdateUser,
	deleteUser app.DeleteUser,
	selectUser app.SelectUsers,
) *UserHandler {
	return &UserHandler{
		getUser:    getUser,
		listUsers:  listUsers,
		createUser: createUser,
		updateUser: updateUser,
		deleteUser: deleteUser,
		selectUser: selectUser,
	}
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "invalid_user_id",
			Message: "id must be a positive integer",
		}})
	}

	out, err := h.getUser.Execute(c.Request().Context(), app.GetUserInput{ID: id})
	if err != nil {
		return userError(c, err)
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	departmentID, _ := strconv.ParseInt(c.QueryParam("department_id"), 10, 64)
	page, _ := strconv.Atoi(c.QueryParam("page"))
	pageSize, _ := strconv.Atoi(c.QueryParam("page_size"))

	out, err := h.listUsers.Execute(c.Request().Context(), app.ListUsersInput{
		Query:        c.QueryParam("q"),
		DepartmentID: departmentID,
		Page:         page,
		PageSize:     pageSize,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to list users",
		}})
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req app.CreateUserInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: "invalid request body",
		}})
	}

	out, err := h.createUser.Execute(c.Request().Context(), req)
	if err != nil {
		return userError(c, err)
	}
	return c.JSON(http.StatusCreated, apiResponse{Data: out})
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "invalid_user_id",
			Message: "id must be a positive integer",
		}})
	}

	var req app.UpdateUserInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "bad_request",
			Message: "invalid request body",
		}})
	}
	req.ID = id

	if err := h.updateUser.Execute(c.Request().Context(), req); err != nil {
		return userError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "invalid_user_id",
			Message: "id must be a positive integer",
		}})
	}

	if err := h.deleteUser.Execute(c.Request().Context(), app.DeleteUserInput{ID: id}); err != nil {
		return userError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *UserHandler) SelectUsers(c echo.Context) error {
	out, err := h.selectUser.Execute(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "failed to list users",
		}})
	}
	return c.JSON(http.StatusOK, apiResponse{Data: out})
}

func userError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, app.ErrInvalidUserID):
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "invalid_user_id",
			Message: "id must be a positive integer",
		}})
	case errors.Is(err, app.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, apiResponse{Error: &errorBody{
			Code:    "invalid_input",
			Message: "username, name, gender and password are required",
		}})
	case errors.Is(err, app.ErrUsernameTaken):
		return c.JSON(http.StatusConflict, apiResponse{Error: &errorBody{
			Code:    "username_taken",
			Message: "username already taken",
		}})
	case errors.Is(err, app.ErrAdminProtected):
		return c.JSON(http.StatusForbidden, apiResponse{Error: &errorBody{
			Code:    "admin_protected",
			Message: "default administrator cannot be deleted",
		}})
	case errors.Is(err, app.ErrUserNotFound):
		return c.JSON(http.StatusNotFound, apiResponse{Error: &errorBody{
			Code:    "not_found",
			Message: "user not found",
		}})
	default:
		return c.JSON(http.StatusInternalServerError, apiResponse{Error: &errorBody{
			Code:    "internal_error",
			Message: "request failed",
		}})
	}
}
