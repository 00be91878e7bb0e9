package echo_test

import (
	"context"

	"github.com/labstack/echo/v4"

	app "github.com/mohammadpnp/staff-admin/internal/application/staff"
	domain "github.com/mohammadpnp/staff-admin/internal/domain/staff"
	httpecho "github.com/mohammadpnp/staff-admin/internal/interfaces/http/echo"
)

// serverFakes holds one fake per use case; zero values are inert stand-ins so
// each test only fills in what it exercises.
type serverFakes struct {
	importUsers app.ImportUsers
	getUser     app.GetUser
	listUsers   app.ListUsers
	createUser  app.CreateUser
	updateUser  app.UpdateUser
	deleteUser  app.DeleteUser
	selectUsers app.SelectUsers
}

func newTestServer(fakes serverFakes) *echo.Echo {
	if fakes.importUsers == nil {
		fakes.importUsers = &fakeImportUseCase{}
	}
	if fakes.getUser == nil {
		fakes.getUser = &fakeGetUser{}
	}
	if fakes.listUsers == nil {
		fakes.listUsers = &fakeListUsers{}
	}
	if fakes.createUser == nil {
		fakes.createUser = &fakeCreateUser{}
	}
	if fakes.updateUser == nil {
		fakes.updateUser = &fakeUpdateUser{}
	}
	if fakes.deleteUser == nil {
		fakes.deleteUser = &fakeDeleteUser{}
	}
	if fakes.selectUsers == nil {
		fakes.selectUsers = &fakeSelectUsers{}
	}

	e := echo.New()
	httpecho.RegisterRoutes(
		e,
		httpecho.NewImportHandler(fakes.importUsers),
		httpecho.NewUserHandler(fakes.getUser, fakes.listUsers, fakes.createUser,
			fakes.updateUser, fakes.deleteUser, fakes.selectUsers),
		httpecho.NewOrgHandler(fakeListDepartments{}, fakeListRoles{}, fakeListPermissions{}),
		httpecho.NewMetricsHandler(fakeServiceWorth{}),
	)
	return e
}

type fakeGetUser struct {
	output app.GetUserOutput
	err    error
}

func (f *fakeGetUser) Execute(ctx context.Context, in app.GetUserInput) (app.GetUserOutput, error) {
	return f.output, f.err
}

type fakeListUsers struct {
	output app.ListUsersOutput
	err    error
	gotIn  app.ListUsersInput
}

func (f *fakeListUsers) Execute(ctx context.Context, in app.ListUsersInput) (app.ListUsersOutput, error) {
	f.gotIn = in
	return f.output, f.err
}

type fakeCreateUser struct {
	output app.CreateUserOutput
	err    error
	gotIn  app.CreateUserInput
}

func (f *fakeCreateUser) Execute(ctx context.Context, in app.CreateUserInput) (app.CreateUserOutput, error) {
	f.gotIn = in
	return f.output, f.err
}

type fakeUpdateUser struct {
	err   error
	gotIn app.UpdateUserInput
}

func (f *fakeUpdateUser) Execute(ctx context.Context, in app.UpdateUserInput) error {
	f.gotIn = in
	return f.err
}

type fakeDeleteUser struct {
	err   error
	gotID int64
}

func (f *fakeDeleteUser) Execute(ctx context.Context, in app.DeleteUserInput) error {
	f.gotID = in.ID
	return f.err
}

type fakeSelectUsers struct {
	options []domain.SelectOption
	err     error
}

func (f *fakeSelectUsers) Execute(ctx context.Context, query string) ([]domain.SelectOption, error) {
	return f.options, f.err
}

type fakeListDepartments struct{}

func (fakeListDepartments) Execute(ctx context.Context) ([]app.DepartmentOutput, error) {
	return []app.DepartmentOutput{{ID: 1, Name: "Radiology"}}, nil
}

type fakeListRoles struct{}

func (fakeListRoles) Execute(ctx context.Context) ([]app.RoleOutput, error) {
	return []app.RoleOutput{{ID: 1, Name: "Administrator", Slug: "administrator"}}, nil
}

type fakeListPermissions struct{}

func (fakeListPermissions) Execute(ctx context.Context) ([]app.PermissionOutput, error) {
	return nil, nil
}

type fakeServiceWorth struct{}

func (fakeServiceWorth) Execute(ctx context.Context) (app.ServiceWorthOutput, error) {
	return app.ServiceWorthOutput{Total: 1234.5}, nil
}
