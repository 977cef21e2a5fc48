package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_admin/internal/controllers"
)

func CocheRoutes(r *gin.Engine, fc *controllers.FleetController) {
	coches := r.Group("/coches")
	{
		coches.GET("/", fc.ListCoches)
		coches.POST("/", fc.CreateCoche)
		coches.GET("/:id", fc.GetCoche)
		coches.PATCH("/:id", fc.UpdateCoche)
		coches.DELETE("/:id", fc.DeleteCoche)
	}
}
