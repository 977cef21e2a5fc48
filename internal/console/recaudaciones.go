package console

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet_admin/internal/export"
	"fleet_admin/internal/pages"
)

func (s *Server) renderRecaudaciones(c *gin.Context, p *pages.RecaudacionesPage, pr *formPrompter) {
	s.render(c, http.StatusOK, s.recaudacionesTmpl, viewData{
		Title: "Recaudaciones", Active: "recaudaciones", Notices: pr.notices, Page: p,
	})
}

// Recaudaciones lists collection records; ?nuevo=1 opens the create modal and ?editar={id} the edit modal.
func (s *Server) Recaudaciones(c *gin.Context) {
	ctx := c.Request.Context()
	pr := &formPrompter{}
	p := pages.NewRecaudacionesPage(s.backend, pr)
	p.Init(ctx)

	if raw := c.Query("editar"); raw != "" {
		if id, err := parseID(raw); err != nil {
			pr.Notify("Error al cargar: " + err.Error())
		} else if rec, err := s.backend.GetRecaudacion(ctx, id); err != nil {
			editFailed(pr, err, "La recaudación ya no existe")
		} else {
			p.OpenEdit(*rec)
		}
	} else if c.Query("nuevo") != "" {
		p.OpenCreate()
	}

	s.renderRecaudaciones(c, p, pr)
}

func recaudacionForm(c *gin.Context) pages.RecaudacionForm {
	return pages.RecaudacionForm{
		ChoferID:       c.PostForm("chofer_id"),
		CocheID:        c.PostForm("coche_id"),
		FechaTurno:     c.PostForm("fecha_turno"),
		Turno:          c.PostForm("turno"),
		KmEntrada:      c.PostForm("km_entrada"),
		KmSalida:       c.PostForm("km_salida"),
		TotalRecaudado: c.PostForm("total_recaudado"),
		Combustible:    c.PostForm("combustible"),
		OtrosGastos:    c.PostForm("otros_gastos"),
		H13:            c.PostForm("h13"),
		Credito:        c.PostForm("credito"),
	}
}

// SaveRecaudacion submits the modal. A hidden id selects update over create.
func (s *Server) SaveRecaudacion(c *gin.Context) {
	ctx := c.Request.Context()
	pr := &formPrompter{}
	p := pages.NewRecaudacionesPage(s.backend, pr)

	if raw := c.PostForm("id"); raw != "" {
		id, err := parseID(raw)
		if err == nil {
			rec, getErr := s.backend.GetRecaudacion(ctx, id)
			if getErr == nil {
				p.OpenEdit(*rec)
			}
			err = getErr
		}
		if err != nil {
			pr.Notify("Error al actualizar: " + err.Error())
			p.Load(ctx)
			s.renderRecaudaciones(c, p, pr)
			return
		}
	} else {
		p.OpenCreate()
	}
	p.Form = recaudacionForm(c)

	if !p.Submit(ctx) {
		p.Load(ctx)
	}
	s.renderRecaudaciones(c, p, pr)
}

// DeleteRecaudacion deletes when the browser dialog set confirmado=si.
func (s *Server) DeleteRecaudacion(c *gin.Context) {
	ctx := c.Request.Context()
	pr := promptFrom(c)
	p := pages.NewRecaudacionesPage(s.backend, pr)

	id, err := parseID(c.Param("id"))
	if err != nil {
		pr.Notify("Error al eliminar: " + err.Error())
		p.Load(ctx)
	} else if !p.Delete(ctx, id) {
		p.Load(ctx)
	}
	s.renderRecaudaciones(c, p, pr)
}

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportRecaudaciones downloads every collection record as a workbook.
func (s *Server) ExportRecaudaciones(c *gin.Context) {
	ctx := c.Request.Context()
	recs, err := s.backend.ListRecaudaciones(ctx)
	if err == nil {
		var buf bytes.Buffer
		if err = export.WriteRecaudaciones(&buf, recs); err == nil {
			name := fmt.Sprintf("recaudaciones-%s.xlsx", s.now().Format("2006-01-02"))
			c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
			c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
			return
		}
	}

	pr := &formPrompter{}
	pr.Notify("Error al exportar: " + err.Error())
	p := pages.NewRecaudacionesPage(s.backend, pr)
	p.Init(ctx)
	s.renderRecaudaciones(c, p, pr)
}
