package pages

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"fleet_admin/internal/models"
)

// StatsService lists the three collections whose sizes the summary pages show.
type StatsService interface {
	ListChoferes(ctx context.Context) ([]models.Chofer, error)
	ListCoches(ctx context.Context) ([]models.Coche, error)
	ListRecaudaciones(ctx context.Context) ([]models.Recaudacion, error)
}

type Stats struct {
	Choferes      int
	Coches        int
	Recaudaciones int
}

// LoadStats counts each list independently: a failed fetch leaves only its own count at zero.
func LoadStats(ctx context.Context, svc StatsService) Stats {
	var (
		stats Stats
		g     errgroup.Group
	)
	g.Go(func() error {
		if choferes, err := svc.ListChoferes(ctx); err == nil {
			stats.Choferes = len(choferes)
		}
		return nil
	})
	g.Go(func() error {
		if coches, err := svc.ListCoches(ctx); err == nil {
			stats.Coches = len(coches)
		}
		return nil
	})
	g.Go(func() error {
		if recaudaciones, err := svc.ListRecaudaciones(ctx); err == nil {
			stats.Recaudaciones = len(recaudaciones)
		}
		return nil
	})
	_ = g.Wait()
	return stats
}

// LandingPage is the public front page.
type LandingPage struct {
	svc   StatsService
	Stats Stats
}

func NewLandingPage(svc StatsService) *LandingPage {
	return &LandingPage{svc: svc}
}

func (p *LandingPage) Init(ctx context.Context) {
	p.Stats = LoadStats(ctx, p.svc)
}

// DashboardPage is the landing page plus today's date.
type DashboardPage struct {
	svc         StatsService
	now         func() time.Time
	Stats       Stats
	CurrentDate string
}

func NewDashboardPage(svc StatsService, now func() time.Time) *DashboardPage {
	if now == nil {
		now = time.Now
	}
	return &DashboardPage{svc: svc, now: now}
}

func (p *DashboardPage) Init(ctx context.Context) {
	p.CurrentDate = FechaLarga(p.now())
	p.Stats = LoadStats(ctx, p.svc)
}

var (
	diasSemana = [...]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"}
	meses      = [...]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio",
		"agosto", "septiembre", "octubre", "noviembre", "diciembre"}
)

// FechaLarga formats t as a long Spanish date, e.g. "lunes, 19 de octubre de 2026".
func FechaLarga(t time.Time) string {
	return fmt.Sprintf("%s, %d de %s de %d", diasSemana[t.Weekday()], t.Day(), meses[t.Month()-1], t.Year())
}
