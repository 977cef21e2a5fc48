package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_admin/internal/console"
)

// AuthRoutes mounts login and logout; without ADMIN_PASSWORD_HASH there is nothing to mount.
func AuthRoutes(r *gin.Engine, s *console.Server) {
	if !s.AuthEnabled() {
		return
	}
	r.GET("/login", s.LoginPage)
	r.POST("/login", s.Login)
	r.POST("/logout", s.Logout)
}
