// Package console is the server-rendered admin console. Every request builds a
// fresh page controller, drives it against the backend and renders the result.
package console

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"fleet_admin/internal/api"
	"fleet_admin/internal/config"
	"fleet_admin/internal/middleware"
	"fleet_admin/internal/models"
)

//go:embed templates/*.html assets/app.css
var templatesFS embed.FS

// AssetsFS holds the stylesheet served under /static.
var AssetsFS = templatesFS

// Backend is every backend operation the console uses; *api.Client implements it.
type Backend interface {
	ListChoferes(ctx context.Context) ([]models.Chofer, error)
	GetChofer(ctx context.Context, id uint) (*models.Chofer, error)
	CreateChofer(ctx context.Context, in models.ChoferCreate) (*models.Chofer, error)
	UpdateChofer(ctx context.Context, id uint, in models.ChoferPatch) (*models.Chofer, error)
	DeleteChofer(ctx context.Context, id uint) error

	ListCoches(ctx context.Context) ([]models.Coche, error)
	GetCoche(ctx context.Context, id uint) (*models.Coche, error)
	CreateCoche(ctx context.Context, in models.CocheCreate) (*models.Coche, error)
	UpdateCoche(ctx context.Context, id uint, in models.CochePatch) (*models.Coche, error)
	DeleteCoche(ctx context.Context, id uint) error

	ListRecaudaciones(ctx context.Context) ([]models.Recaudacion, error)
	GetRecaudacion(ctx context.Context, id uint) (*models.Recaudacion, error)
	CreateRecaudacion(ctx context.Context, in models.RecaudacionCreate) (*models.Recaudacion, error)
	UpdateRecaudacion(ctx context.Context, id uint, in models.RecaudacionPatch) (*models.Recaudacion, error)
	DeleteRecaudacion(ctx context.Context, id uint) error
}

// Server holds the parsed templates and the backend client.
type Server struct {
	backend Backend
	cfg     config.ConsoleConfig
	now     func() time.Time

	landingTmpl       *template.Template
	dashboardTmpl     *template.Template
	choferesTmpl      *template.Template
	cochesTmpl        *template.Template
	recaudacionesTmpl *template.Template
	loginTmpl         *template.Template
}

var funcs = template.FuncMap{
	"opt": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
	"money": func(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) },
	"id":    func(id uint) string { return strconv.FormatUint(uint64(id), 10) },
}

func parse(name string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html"))
}

func NewServer(backend Backend, cfg config.ConsoleConfig) *Server {
	return &Server{
		backend:           backend,
		cfg:               cfg,
		now:               time.Now,
		landingTmpl:       parse("landing"),
		dashboardTmpl:     parse("dashboard"),
		choferesTmpl:      parse("choferes"),
		cochesTmpl:        parse("coches"),
		recaudacionesTmpl: parse("recaudaciones"),
		loginTmpl:         parse("login"),
	}
}

// SetClock replaces the clock used for the dashboard date and export file names.
func (s *Server) SetClock(now func() time.Time) { s.now = now }

// AuthEnabled reports whether routes must be wrapped with the session check.
func (s *Server) AuthEnabled() bool { return s.cfg.AuthEnabled() }

// JWTSecret is the key session tokens are signed with.
func (s *Server) JWTSecret() string { return s.cfg.JWTSecret }

// viewData is what every template receives.
type viewData struct {
	Title   string
	Active  string
	User    string
	Notices []string
	Error   string
	Page    any
}

func (s *Server) render(c *gin.Context, status int, tmpl *template.Template, data viewData) {
	data.User = c.GetString("user")

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		middleware.Log(c).WithError(err).Error("template render failed")
		c.String(http.StatusInternalServerError, "template render failed")
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// formPrompter answers Confirm from the submitted form and collects notices
// for the alert banner.
type formPrompter struct {
	confirmed bool
	notices   []string
}

func (p *formPrompter) Confirm(string) bool { return p.confirmed }

func (p *formPrompter) Notify(message string) {
	p.notices = append(p.notices, message)
}

func promptFrom(c *gin.Context) *formPrompter {
	return &formPrompter{confirmed: c.PostForm("confirmado") == "si"}
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("id inválido: %q", raw)
	}
	return uint(id), nil
}

// editFailed reports why the edit modal could not open. A 404 means the record
// was deleted since the list was rendered.
func editFailed(pr *formPrompter, err error, gone string) {
	if api.IsNotFound(err) {
		pr.Notify(gone)
		return
	}
	pr.Notify("Error al cargar: " + err.Error())
}
