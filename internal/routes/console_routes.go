package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_admin/internal/console"
	"fleet_admin/internal/middleware"
)

func ConsoleRoutes(r *gin.Engine, s *console.Server) {
	r.GET("/", s.Landing)

	admin := r.Group("/")
	if s.AuthEnabled() {
		admin.Use(middleware.RequireAuth(s.JWTSecret(), "/login"))
	}
	{
		admin.GET("/dashboard", s.Dashboard)

		admin.GET("/choferes", s.Choferes)
		admin.POST("/choferes", s.SaveChofer)
		admin.POST("/choferes/:id/eliminar", s.DeleteChofer)

		admin.GET("/coches", s.Coches)
		admin.POST("/coches", s.SaveCoche)
		admin.POST("/coches/:id/eliminar", s.DeleteCoche)

		admin.GET("/recaudaciones", s.Recaudaciones)
		admin.POST("/recaudaciones", s.SaveRecaudacion)
		admin.GET("/recaudaciones/exportar", s.ExportRecaudaciones)
		admin.POST("/recaudaciones/:id/eliminar", s.DeleteRecaudacion)
	}
}
