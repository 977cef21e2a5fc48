package console

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet_admin/internal/pages"
)

func (s *Server) renderCoches(c *gin.Context, p *pages.CochesPage, pr *formPrompter) {
	s.render(c, http.StatusOK, s.cochesTmpl, viewData{
		Title: "Coches", Active: "coches", Notices: pr.notices, Page: p,
	})
}

// Coches lists vehicles; ?nuevo=1 opens the create modal and ?editar={id} the edit modal.
func (s *Server) Coches(c *gin.Context) {
	ctx := c.Request.Context()
	pr := &formPrompter{}
	p := pages.NewCochesPage(s.backend, pr)
	p.Init(ctx)

	if raw := c.Query("editar"); raw != "" {
		if id, err := parseID(raw); err != nil {
			pr.Notify("Error al cargar: " + err.Error())
		} else if coche, err := s.backend.GetCoche(ctx, id); err != nil {
			editFailed(pr, err, "El coche ya no existe")
		} else {
			p.OpenEdit(*coche)
		}
	} else if c.Query("nuevo") != "" {
		p.OpenCreate()
	}

	s.renderCoches(c, p, pr)
}

func cocheForm(c *gin.Context) pages.CocheForm {
	return pages.CocheForm{
		Matricula:  c.PostForm("matricula"),
		Movil:      c.PostForm("movil"),
		Marca:      c.PostForm("marca"),
		Modelo:     c.PostForm("modelo"),
		Anio:       c.PostForm("anio"),
		Kilometros: c.PostForm("kilometros"),
		Estado:     c.PostForm("estado"),
	}
}

// SaveCoche submits the modal. A hidden id selects update over create.
func (s *Server) SaveCoche(c *gin.Context) {
	ctx := c.Request.Context()
	pr := &formPrompter{}
	p := pages.NewCochesPage(s.backend, pr)

	if raw := c.PostForm("id"); raw != "" {
		id, err := parseID(raw)
		if err == nil {
			coche, getErr := s.backend.GetCoche(ctx, id)
			if getErr == nil {
				p.OpenEdit(*coche)
			}
			err = getErr
		}
		if err != nil {
			pr.Notify("Error al actualizar: " + err.Error())
			p.Load(ctx)
			s.renderCoches(c, p, pr)
			return
		}
	} else {
		p.OpenCreate()
	}
	p.Form = cocheForm(c)

	if !p.Submit(ctx) {
		p.Load(ctx)
	}
	s.renderCoches(c, p, pr)
}

// DeleteCoche deletes when the browser dialog set confirmado=si.
func (s *Server) DeleteCoche(c *gin.Context) {
	ctx := c.Request.Context()
	pr := promptFrom(c)
	p := pages.NewCochesPage(s.backend, pr)

	id, err := parseID(c.Param("id"))
	if err != nil {
		pr.Notify("Error al eliminar: " + err.Error())
		p.Load(ctx)
	} else if !p.Delete(ctx, id) {
		p.Load(ctx)
	}
	s.renderCoches(c, p, pr)
}
