package echo_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	app "github.com/mohammadpnp/staff-admin/internal/application/staff"
)

func TestGetUserSuccess(t *testing.T) {
	t.Parallel()

	e := newTestServer(serverFakes{getUser: &fakeGetUser{output: app.GetUserOutput{
		ID:         7,
		Username:   "zhangsan",
		Name:       "Zhang San",
		Gender:     "male",
		Department: "Radiology",
	}}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/7", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected json: %v", err)
	}
	data, ok := got["data"].(map[string]any)
	if !ok {
		t.Fatalf("unexpected data payload: %#v", got["data"])
	}
	if data["username"] != "zhangsan" || data["department"] != "Radiology" {
		t.Fatalf("unexpected user: %#v", data)
	}
}

func TestGetUserNotFound(t *testing.T) {
	t.Parallel()

	e := newTestServer(serverFakes{getUser: &fakeGetUser{err: app.ErrUserNotFound}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/99", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetUserBadID(t *testing.T) {
	t.Parallel()

	e := newTestServer(serverFakes{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/abc", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestCreateUserConflict(t *testing.T) {
	t.Parallel()

	e := newTestServer(serverFakes{createUser: &fakeCreateUser{err: app.ErrUsernameTaken}})

	body := []byte(`{"username":"alice","name":"Alice","gender":"female","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected json: %v", err)
	}
	errBody, ok := got["error"].(map[string]any)
	if !ok || errBody["code"] != "username_taken" {
		t.Fatalf("unexpected error payload: %#v", got["error"])
	}
}

func TestCreateUserSuccess(t *testing.T) {
	t.Parallel()

	useCase := &fakeCreateUser{output: app.CreateUserOutput{ID: 12, Username: "alice"}}
	e := newTestServer(serverFakes{createUser: useCase})

	body := []byte(`{"username":"alice","name":"Alice","gender":"female","password":"s3cret"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/users", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if useCase.gotIn.Username != "alice" || useCase.gotIn.Password != "s3cret" {
		t.Fatalf("input not forwarded: %+v", useCase.gotIn)
	}
}

func TestUpdateUserTakesIDFromPath(t *testing.T) {
	t.Parallel()

	useCase := &fakeUpdateUser{}
	e := newTestServer(serverFakes{updateUser: useCase})

	body := []byte(`{"name":"Alice Cooper"}`)
	req := httptest.NewRequest(http.MethodPut, "/api/v1/users/12", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", rec.Code, rec.Body.String())
	}
	if useCase.gotIn.ID != 12 || useCase.gotIn.Name != "Alice Cooper" {
		t.Fatalf("input not forwarded: %+v", useCase.gotIn)
	}
}

func TestDeleteUserForbiddenForAdmin(t *testing.T) {
	t.Parallel()

	e := newTestServer(serverFakes{deleteUser: &fakeDeleteUser{err: app.ErrAdminProtected}})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/1", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestDeleteUserSuccess(t *testing.T) {
	t.Parallel()

	useCase := &fakeDeleteUser{}
	e := newTestServer(serverFakes{deleteUser: useCase})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/users/4", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if useCase.gotID != 4 {
		t.Fatalf("expected id 4, got %d", useCase.gotID)
	}
}

func TestListUsersForwardsFilters(t *testing.T) {
	t.Parallel()

	listed := &fakeListUsers{}
	e := newTestServer(serverFakes{listUsers: listed})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/users?q=zhang&department_id=3&page=2&page_size=50", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	in := listed.gotIn
	if in.Query != "zhang" || in.DepartmentID != 3 || in.Page != 2 || in.PageSize != 50 {
		t.Fatalf("filters not forwarded: %+v", in)
	}
}
