package console

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"fleet_admin/internal/middleware"
)

// HashPassword returns the bcrypt hash to put in ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *Server) checkCredentials(username, password string) bool {
	if username != s.cfg.AdminUser {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(s.cfg.AdminPasswordHash), []byte(password)) == nil
}

func (s *Server) LoginPage(c *gin.Context) {
	if token, err := c.Cookie(middleware.SessionCookie); err == nil {
		if _, err := middleware.ValidateToken(s.cfg.JWTSecret, token); err == nil {
			c.Redirect(http.StatusSeeOther, "/dashboard")
			return
		}
	}
	s.render(c, http.StatusOK, s.loginTmpl, viewData{Title: "Iniciar sesión"})
}

// Login checks the admin credentials and sets the session cookie.
func (s *Server) Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	if username == "" || password == "" || !s.checkCredentials(username, password) {
		middleware.Log(c).WithField("username", username).Warn("console login rejected")
		s.render(c, http.StatusUnauthorized, s.loginTmpl, viewData{
			Title: "Iniciar sesión",
			Error: "Usuario o contraseña incorrectos",
		})
		return
	}

	token, err := middleware.GenerateToken(s.cfg.JWTSecret, username, s.cfg.SessionTTL)
	if err != nil {
		middleware.Log(c).WithError(err).Error("failed to sign session token")
		s.render(c, http.StatusInternalServerError, s.loginTmpl, viewData{
			Title: "Iniciar sesión",
			Error: "No se pudo iniciar la sesión",
		})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, token, int(s.cfg.SessionTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (s *Server) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/login")
}
