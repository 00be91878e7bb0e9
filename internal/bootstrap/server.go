package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	app "github.com/mohammadpnp/staff-admin/internal/application/staff"
	"github.com/mohammadpnp/staff-admin/internal/config"
	"github.com/mohammadpnp/staff-admin/internal/infrastructure/crypto"
	"github.com/mohammadpnp/staff-admin/internal/infrastructure/directory"
	infrafile "github.com/mohammadpnp/staff-admin/internal/infrastructure/file"
	"github.com/mohammadpnp/staff-admin/internal/infrastructure/repository"
	httpecho "github.com/mohammadpnp/staff-admin/internal/interfaces/http/echo"
)

func NewHTTPServer(db *gorm.DB, pool *pgxpool.Pool, cfg config.Config) *echo.Echo {
	server := echo.New()
	server.HideBanner = true

	server.Use(middleware.Recover())
	server.Use(middleware.RequestID())
	server.Use(middleware.BodyLimit("10M"))

	users := repository.NewUserRepository(db)
	departments := repository.NewDepartmentRepository(db)
	roles := repository.NewRoleRepository(db)
	runs := repository.NewImportRunRepository(db)
	metrics := repository.NewMetricsRepository(pool)

	hasher := crypto.NewBcryptHasher(cfg.BcryptCost)
	source := infrafile.NewSpreadsheetSource(cfg.ImportBaseDir)
	ldapDirectory := directory.NewLDAPDirectory(cfg.LDAP, users, departments, hasher)

	importUsers := app.NewImportUsers(source, ldapDirectory, users, departments, runs, hasher, app.Headers{
		Username:   cfg.Headers.Username,
		Name:       cfg.Headers.Name,
		Gender:     cfg.Headers.Gender,
		Department: cfg.Headers.Department,
		Password:   cfg.Headers.Password,
		Title:      cfg.Headers.Title,
		Mobile:     cfg.Headers.Mobile,
		Email:      cfg.Headers.Email,
	})

	importHandler := httpecho.NewImportHandler(importUsers)
	userHandler := httpecho.NewUserHandler(
		app.NewGetUser(users),
		app.NewListUsers(users),
		app.NewCreateUser(users, hasher),
		app.NewUpdateUser(users, hasher),
		app.NewDeleteUser(users),
		app.NewSelectUsers(users),
	)
	orgHandler := httpecho.NewOrgHandler(
		app.NewListDepartments(departments),
		app.NewListRoles(roles),
		app.NewListPermissions(roles),
	)
	metricsHandler := httpecho.NewMetricsHandler(app.NewGetServiceWorth(metrics))

	httpecho.RegisterRoutes(server, importHandler, userHandler, orgHandler, metricsHandler)

	server.GET("/healthz", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	return server
}
