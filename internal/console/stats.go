package console

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet_admin/internal/pages"
)

func (s *Server) Landing(c *gin.Context) {
	p := pages.NewLandingPage(s.backend)
	p.Init(c.Request.Context())
	s.render(c, http.StatusOK, s.landingTmpl, viewData{Title: "Inicio", Page: p})
}

func (s *Server) Dashboard(c *gin.Context) {
	p := pages.NewDashboardPage(s.backend, s.now)
	p.Init(c.Request.Context())
	s.render(c, http.StatusOK, s.dashboardTmpl, viewData{Title: "Panel", Active: "dashboard", Page: p})
}
