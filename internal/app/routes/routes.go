package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/parkpilot/parkpilot/internal/app/controllers"
	"github.com/parkpilot/parkpilot/internal/app/models"
	"github.com/parkpilot/parkpilot/internal/middleware"
)

// SetupRouter configures all application routes under /api/v1. The decode
// middleware runs globally and fails open; each group applies the guards it
// needs.
func SetupRouter(
	router *gin.Engine,
	ctrl *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.Use(authMiddleware.Authenticate())

	v1 := router.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	{
		auth.POST("/token", ctrl.Auth.Token)
		auth.POST("/register", ctrl.Auth.Register)
	}

	// Everything else requires a valid token
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.RequireAuth())

	users := authenticated.Group("/users")
	{
		users.GET("", ctrl.User.List)
		users.GET("/username/:username", ctrl.User.GetByUsername)
		users.GET("/id/:id", ctrl.User.GetByID)
		users.GET("/id/:id/podiums", ctrl.Assignment.PodiumsByUser)
		users.GET("/id/:id/locations", ctrl.Assignment.LocationsByUser)
		users.GET("/id/:id/regions", ctrl.Assignment.RegionsByUser)
		users.PATCH("/id/:id", authMiddleware.RequireSelfOrAdmin("id"), ctrl.User.Update)
		users.POST("/id/:id/parked", ctrl.User.IncrementParked)

		usersAdmin := users.Group("")
		usersAdmin.Use(authMiddleware.RequireRoleAtLeast(models.RoleManager))
		{
			usersAdmin.POST("", ctrl.User.Create)
			usersAdmin.DELETE("/id/:id", ctrl.User.Remove)
		}
	}

	vehicles := authenticated.Group("/vehicles")
	{
		vehicles.GET("", ctrl.Vehicle.List)
		vehicles.GET("/id/:id", ctrl.Vehicle.GetByID)
		vehicles.GET("/status/:statusId", ctrl.Vehicle.ListByStatus)
		vehicles.GET("/mobile/:mobile", ctrl.Vehicle.SearchByMobile)
		vehicles.POST("", ctrl.Vehicle.Create)
		vehicles.PATCH("/id/:id", ctrl.Vehicle.Update)
		vehicles.DELETE("/id/:id", authMiddleware.RequireRoleAtLeast(models.RoleSupervisor), ctrl.Vehicle.Remove)
	}

	transactions := authenticated.Group("/transactions")
	{
		transactions.GET("", ctrl.Transaction.List)
		transactions.GET("/id/:id", ctrl.Transaction.GetByID)
		transactions.GET("/vehicle/:vehicleId", ctrl.Transaction.OpenByVehicle)
		transactions.POST("", ctrl.Transaction.Create)
		transactions.PATCH("/id/:id", ctrl.Transaction.Update)
		transactions.DELETE("/id/:id", authMiddleware.RequireRoleAtLeast(models.RoleSupervisor), ctrl.Transaction.Remove)
	}

	locations := authenticated.Group("/locations")
	{
		locations.GET("", ctrl.Location.List)
		// Detail reads are scoped to the caller's own site; admins see all
		locations.GET("/id/:id", authMiddleware.RequireLocation("id"), ctrl.Location.GetByID)
		locations.GET("/name/:name", ctrl.Location.SearchByName)

		locationsAdmin := locations.Group("")
		locationsAdmin.Use(authMiddleware.RequireRoleAtLeast(models.RoleManager))
		{
			locationsAdmin.POST("", ctrl.Location.Create)
			locationsAdmin.PATCH("/id/:id", ctrl.Location.Update)
			locationsAdmin.DELETE("/id/:id", ctrl.Location.Remove)
		}
	}

	podiums := authenticated.Group("/podiums")
	{
		podiums.GET("", ctrl.Podium.List)
		podiums.GET("/id/:id", ctrl.Podium.GetByID)
		podiums.GET("/name/:name", ctrl.Podium.SearchByName)

		podiumsAdmin := podiums.Group("")
		podiumsAdmin.Use(authMiddleware.RequireRoleAtLeast(models.RoleManager))
		{
			podiumsAdmin.POST("", ctrl.Podium.Create)
			podiumsAdmin.PATCH("/id/:id", ctrl.Podium.Update)
			podiumsAdmin.DELETE("/id/:id", ctrl.Podium.Remove)
		}
	}

	regions := authenticated.Group("/regions")
	{
		regions.GET("", ctrl.Region.List)
		regions.GET("/id/:id", ctrl.Region.GetByID)
		regions.GET("/name/:name", ctrl.Region.SearchByName)

		regionsAdmin := regions.Group("")
		regionsAdmin.Use(authMiddleware.RequireRoleAtLeast(models.RoleAdmin))
		{
			regionsAdmin.POST("", ctrl.Region.Create)
			regionsAdmin.PATCH("/id/:id", ctrl.Region.Update)
			regionsAdmin.DELETE("/id/:id", ctrl.Region.Remove)
		}
	}

	roles := authenticated.Group("/roles")
	{
		roles.GET("", ctrl.Role.List)
		roles.GET("/id/:id", ctrl.Role.GetByID)

		rolesAdmin := roles.Group("")
		rolesAdmin.Use(authMiddleware.RequireRoleAtLeast(models.RoleAdmin))
		{
			rolesAdmin.POST("", ctrl.Role.Create)
			rolesAdmin.PATCH("/id/:id", ctrl.Role.Update)
			rolesAdmin.DELETE("/id/:id", ctrl.Role.Remove)
		}
	}

	statuses := authenticated.Group("/statuses")
	{
		statuses.GET("", ctrl.Status.List)
		statuses.GET("/id/:id", ctrl.Status.GetByID)

		statusesAdmin := statuses.Group("")
		statusesAdmin.Use(authMiddleware.RequireRoleAtLeast(models.RoleAdmin))
		{
			statusesAdmin.POST("", ctrl.Status.Create)
			statusesAdmin.PATCH("/id/:id", ctrl.Status.Update)
			statusesAdmin.DELETE("/id/:id", ctrl.Status.Remove)
		}
	}

	surveys := authenticated.Group("/surveys")
	{
		surveys.GET("", ctrl.Survey.List)
		surveys.GET("/id/:id", ctrl.Survey.GetByID)
		surveys.POST("", ctrl.Survey.Create)
		surveys.PATCH("/id/:id", ctrl.Survey.Update)
		surveys.DELETE("/id/:id", authMiddleware.RequireRoleAtLeast(models.RoleManager), ctrl.Survey.Remove)
	}

	assignments := authenticated.Group("")
	assignments.Use(authMiddleware.RequireRoleAtLeast(models.RoleManager))
	{
		assignments.POST("/user-podiums", ctrl.Assignment.AssignPodium)
		assignments.DELETE("/user-podiums", ctrl.Assignment.UnassignPodium)
		assignments.POST("/user-locations", ctrl.Assignment.AssignLocation)
		assignments.DELETE("/user-locations", ctrl.Assignment.UnassignLocation)
		assignments.POST("/user-regions", ctrl.Assignment.AssignRegion)
		assignments.DELETE("/user-regions", ctrl.Assignment.UnassignRegion)
	}

	reports := authenticated.Group("/reports")
	{
		reports.GET("/podiums/:podiumId", ctrl.Report.PodiumActivity)
		reports.GET("/transactions/:id", ctrl.Report.TransactionDetail)
		reports.GET("/dashboard", ctrl.Report.Dashboard)
	}
}
