package echo

import e "github.com/labstack/echo/v4"

func RegisterRoutes(
	server *e.Echo,
	importHandler *ImportHandler,
	userHandler *UserHandler,
	orgHandler *OrgHandler,
	metricsHandler *MetricsHandler,
) {
	api := server.Group("/api/v1")

	api.POST("/imports/users", importHandler.ImportUsers)

	api.GET("/users", userHandler.ListUsers)
	api.GET("/users/select", userHandler.SelectUsers)
	api.GET("/users/:id", userHandler.GetUser)
	api.POST("/users", userHandler.CreateUser)
	api.PUT("/users/:id", userHandler.UpdateUser)
	api.DELETE("/users/:id", userHandler.DeleteUser)

	api.GET("/departments", orgHandler.ListDepartments)
	api.GET("/roles", orgHandler.ListRoles)
	api.GET("/permissions", orgHandler.ListPermissions)

	api.GET("/metrics/service-worth", metricsHandler.ServiceWorth)
}
