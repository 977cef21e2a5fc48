package console_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"fleet_admin/internal/api"
	"fleet_admin/internal/config"
	"fleet_admin/internal/console"
	"fleet_admin/internal/controllers"
	"fleet_admin/internal/metrics"
	"fleet_admin/internal/middleware"
	"fleet_admin/internal/models"
	"fleet_admin/internal/repository"
	"fleet_admin/internal/routes"
	"fleet_admin/internal/settlement"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logrus.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type harness struct {
	console http.Handler
	client  *api.Client
}

// newHarness runs the real backend over an in-memory store and points a console at it.
func newHarness(t *testing.T, cfg config.ConsoleConfig) *harness {
	t.Helper()
	fc := controllers.NewFleetController(repository.NewMemoryStore(), settlement.Rates{Salary: 0.29, Contributions: 0.15}, "STX")
	backend := httptest.NewServer(routes.SetupAPI(fc, metrics.New("fleetapi")))
	t.Cleanup(backend.Close)

	client := api.NewClient(backend.URL)
	srv := console.NewServer(client, cfg)
	srv.SetClock(func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) })
	return &harness{console: routes.SetupConsole(srv, metrics.New("console")), client: client}
}

func (h *harness) get(t *testing.T, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.console.ServeHTTP(w, req)
	return w
}

func (h *harness) post(t *testing.T, path string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, c := range cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	h.console.ServeHTTP(w, req)
	return w
}

func (h *harness) seedChofer(t *testing.T, codigo, nombre string) *models.Chofer {
	t.Helper()
	ch, err := h.client.CreateChofer(context.Background(), models.ChoferCreate{
		CodigoChofer: codigo, CedulaIdentidad: "1.234.567-8", Nombre: nombre, Apellido: "Pérez",
		FechaIngreso: "2024-01-15", VencimientoLibreta: "2027-01-15",
	})
	require.NoError(t, err)
	return ch
}

func (h *harness) seedCoche(t *testing.T, matricula string) *models.Coche {
	t.Helper()
	co, err := h.client.CreateCoche(context.Background(), models.CocheCreate{Matricula: matricula, Movil: "10"})
	require.NoError(t, err)
	return co
}

func choferValues(codigo, nombre string) url.Values {
	return url.Values{
		"codigo_chofer":       {codigo},
		"cedula_identidad":    {"1.234.567-8"},
		"nombre":              {nombre},
		"apellido":            {"Gómez"},
		"telefono":            {""},
		"fecha_ingreso":       {"2025-03-01"},
		"vencimiento_libreta": {"2027-03-01"},
		"estado":              {models.EstadoActivo},
	}
}

func TestLandingAndDashboard(t *testing.T) {
	h := newHarness(t, config.ConsoleConfig{})
	h.seedChofer(t, "C001", "Ana")
	h.seedChofer(t, "C002", "Luis")
	h.seedCoche(t, "1234")

	w := h.get(t, "/")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<span class="stat-value">2</span><span class="stat-label">Choferes</span>`)
	assert.Contains(t, w.Body.String(), `<span class="stat-value">1</span><span class="stat-label">Coches</span>`)

	w = h.get(t, "/dashboard")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "lunes, 19 de octubre de 2026")
	assert.Contains(t, w.Body.String(), `<span class="stat-value">0</span><span class="stat-label">Recaudaciones</span>`)
}

func TestChoferesListAndModals(t *testing.T) {
	h := newHarness(t, config.ConsoleConfig{})
	ch := h.seedChofer(t, "C001", "Ana")

	w := h.get(t, "/choferes")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Ana Pérez")
	assert.Contains(t, body, `<span class="badge badge-green">Activo</span>`)
	assert.NotContains(t, body, `class="modal"`)

	w = h.get(t, "/choferes?nuevo=1")
	assert.Contains(t, w.Body.String(), "<h2>Nuevo chofer</h2>")
	assert.Contains(t, w.Body.String(), `<option value="Activo" selected>`)

	w = h.get(t, "/choferes?editar=1")
	body = w.Body.String()
	assert.Contains(t, body, "<h2>Editar chofer</h2>")
	assert.Contains(t, body, `<input type="hidden" name="id" value="1">`)
	assert.Contains(t, body, `value="`+ch.CodigoChofer+`"`)

	w = h.get(t, "/choferes?editar=99")
	body = w.Body.String()
	assert.Contains(t, body, "El chofer ya no existe")
	assert.NotContains(t, body, "<h2>Editar chofer</h2>")

	w = h.get(t, "/choferes?editar=abc")
	assert.Contains(t, w.Body.String(), "Error al cargar: id inválido")
}

func TestCreateAndUpdateChofer(t *testing.T) {
	h := newHarness(t, config.ConsoleConfig{})

	w := h.post(t, "/choferes", choferValues("C010", "Marta"))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Marta Gómez")
	assert.NotContains(t, w.Body.String(), `class="modal"`)

	form := choferValues("C010", "Marta Elena")
	form.Set("id", "1")
	form.Set("estado", models.EstadoLicenciaMedica)
	w = h.post(t, "/choferes", form)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Marta Elena Gómez")

	got, err := h.client.GetChofer(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.EstadoLicenciaMedica, got.Estado)
}

func TestCreateChoferFailureKeepsModal(t *testing.T) {
	h := newHarness(t, config.ConsoleConfig{})
	h.seedChofer(t, "C001", "Ana")

	w := h.post(t, "/choferes", choferValues("C001", "Otra"))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<div class="alert" role="alert">Error al crear: Error 409: Ya existe un chofer con ese código</div>`)
	assert.Contains(t, body, "<h2>Nuevo chofer</h2>")
	assert.Contains(t, body, `value="Otra"`)
	assert.Contains(t, body, "Ana Pérez")
}

func TestInvalidChoferFormIsIgnored(t *testing.T) {
	h := newHarness(t, config.ConsoleConfig{})

	form := choferValues("C00001", "Largo")
	w := h.post(t, "/choferes", form)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `class="alert"`)
	assert.Contains(t, w.Body.String(), "<h2>Nuevo chofer</h2>")

	list, err := h.client.ListChoferes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	h := newHarness(t, config.ConsoleConfig{})
	h.seedChofer(t, "C001", "Ana")

	w := h.post(t, "/choferes/1/eliminar", url.Values{"confirmado": {"no"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ana Pérez")

	w = h.post(t, "/choferes/1/eliminar", url.Values{"confirmado": {"si"}})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No hay choferes registrados")

	w = h.post(t, "/choferes/1/eliminar", url.Values{"confirmado": {"si"}})
	assert.Contains(t, w.Body.String(), "Error al eliminar: Recurso no encontrado")
}

func TestCochesPage(t *testing.T) {
	h := newHarness(t, config.ConsoleConfig{})

	w := h.post(t, "/coches", url.Values{
		"matricula": {"4321"}, "movil": {"7"}, "kilometros": {"0"}, "estado": {models.EstadoMantenimiento},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "STX 4321")
	assert.Contains(t, w.Body.String(), `<span class="badge badge-yellow">Mantenimiento</span>`)

	w = h.get(t, "/coches?nuevo=1")
	assert.Contains(t, w.Body.String(), `name="kilometros" value="0"`)
}

func TestRecaudacionesCreateAndExport(t *testing.T) {
	h := newHarness(t, config.ConsoleConfig{})
	h.seedChofer(t, "C001", "Ana")
	h.seedCoche(t, "1234")

	w := h.get(t, "/recaudaciones?nuevo=1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<option value="1">Ana Pérez</option>`)
	assert.Contains(t, w.Body.String(), `<option value="Mañana" selected>`)

	w = h.post(t, "/recaudaciones", url.Values{
		"chofer_id": {"1"}, "coche_id": {"1"}, "fecha_turno": {"2026-10-18"}, "turno": {models.TurnoNoche},
		"km_entrada": {"1000"}, "km_salida": {"1200"}, "total_recaudado": {"3000"},
		"combustible": {"400"}, "otros_gastos": {"50"}, "h13": {"20"}, "credito": {"10"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.NotContains(t, body, `class="alert"`)
	assert.Contains(t, body, "STX 1234")
	assert.Contains(t, body, "<td>1519.50</td>")
	assert.Contains(t, body, `<span class="badge badge-indigo">Noche</span>`)

	w = h.get(t, "/recaudaciones/exportar")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "recaudaciones-2026-10-19.xlsx")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()
	rows, err := f.GetRows("Recaudaciones")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ana Pérez", rows[1][4])
}

func TestBackendUnreachable(t *testing.T) {
	dead := httptest.NewServer(http.NotFoundHandler())
	deadURL := dead.URL
	dead.Close()

	srv := console.NewServer(api.NewClient(deadURL), config.ConsoleConfig{})
	r := routes.SetupConsole(srv, metrics.New("console"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/choferes", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No se puede conectar al servidor. ¿Está el backend corriendo en "+deadURL+"?")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `<span class="stat-value">0</span><span class="stat-label">Choferes</span>`)
}

func TestLoginFlow(t *testing.T) {
	hash, err := console.HashPassword("clave-segura")
	require.NoError(t, err)
	h := newHarness(t, config.ConsoleConfig{
		AdminUser:         "admin",
		AdminPasswordHash: hash,
		JWTSecret:         "test-secret",
		SessionTTL:        time.Hour,
	})

	w := h.get(t, "/")
	assert.Equal(t, http.StatusOK, w.Code)

	w = h.get(t, "/choferes")
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	w = h.post(t, "/login", url.Values{"username": {"admin"}, "password": {"incorrecta"}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Usuario o contraseña incorrectos")

	w = h.post(t, "/login", url.Values{"username": {"admin"}, "password": {"clave-segura"}})
	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)

	w = h.get(t, "/choferes", session)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Salir")

	w = h.post(t, "/logout", nil, session)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

func TestProbesAndUnknownPaths(t *testing.T) {
	h := newHarness(t, config.ConsoleConfig{})

	w := h.get(t, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = h.get(t, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)

	w = h.get(t, "/no-existe")
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	w = h.get(t, "/static/app.css")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), ".badge-green")
}
