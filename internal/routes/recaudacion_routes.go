package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_admin/internal/controllers"
)

func RecaudacionRoutes(r *gin.Engine, fc *controllers.FleetController) {
	recaudaciones := r.Group("/recaudaciones")
	{
		recaudaciones.GET("/", fc.ListRecaudaciones)
		recaudaciones.POST("/", fc.CreateRecaudacion)
		recaudaciones.GET("/:id", fc.GetRecaudacion)
		recaudaciones.PATCH("/:id", fc.UpdateRecaudacion)
		recaudaciones.DELETE("/:id", fc.DeleteRecaudacion)
	}
}
