package routes

import (
	"net/http"

	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"fleet_admin/internal/console"
	"fleet_admin/internal/controllers"
	"fleet_admin/internal/logger"
	"fleet_admin/internal/metrics"
	"fleet_admin/internal/middleware"
)

// base is the engine both servers share: recovery, request ids, request
// logging to the rotated log, metrics and the health endpoints.
func base(collector *metrics.Collector) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(ginlog.SetLogger(
		ginlog.WithWriter(logger.Writer()),
		ginlog.WithSkipPath([]string{"/healthz", "/metrics"}),
	))
	r.Use(collector.Middleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(collector.Handler()))
	return r
}

// SetupAPI builds the fleet REST backend.
func SetupAPI(fc *controllers.FleetController, collector *metrics.Collector) *gin.Engine {
	r := base(collector)

	ChoferRoutes(r, fc)
	CocheRoutes(r, fc)
	RecaudacionRoutes(r, fc)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
	})
	return r
}

// SetupConsole builds the admin console.
func SetupConsole(s *console.Server, collector *metrics.Collector) *gin.Engine {
	r := base(collector)
	r.StaticFileFS("/static/app.css", "assets/app.css", http.FS(console.AssetsFS))

	AuthRoutes(r, s)
	ConsoleRoutes(r, s)

	r.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/")
	})
	return r
}
