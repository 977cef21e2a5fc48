package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_admin/internal/controllers"
)

func ChoferRoutes(r *gin.Engine, fc *controllers.FleetController) {
	choferes := r.Group("/choferes")
	{
		choferes.GET("/", fc.ListChoferes)
		choferes.POST("/", fc.CreateChofer)
		choferes.GET("/:id", fc.GetChofer)
		choferes.PATCH("/:id", fc.UpdateChofer)
		choferes.DELETE("/:id", fc.DeleteChofer)
	}
}
