package console

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fleet_admin/internal/pages"
)

func (s *Server) renderChoferes(c *gin.Context, p *pages.ChoferesPage, pr *formPrompter) {
	s.render(c, http.StatusOK, s.choferesTmpl, viewData{
		Title: "Choferes", Active: "choferes", Notices: pr.notices, Page: p,
	})
}

// Choferes lists drivers; ?nuevo=1 opens the create modal and ?editar={id} the edit modal.
func (s *Server) Choferes(c *gin.Context) {
	ctx := c.Request.Context()
	pr := &formPrompter{}
	p := pages.NewChoferesPage(s.backend, pr)
	p.Init(ctx)

	if raw := c.Query("editar"); raw != "" {
		if id, err := parseID(raw); err != nil {
			pr.Notify("Error al cargar: " + err.Error())
		} else if chofer, err := s.backend.GetChofer(ctx, id); err != nil {
			editFailed(pr, err, "El chofer ya no existe")
		} else {
			p.OpenEdit(*chofer)
		}
	} else if c.Query("nuevo") != "" {
		p.OpenCreate()
	}

	s.renderChoferes(c, p, pr)
}

func choferForm(c *gin.Context) pages.ChoferForm {
	return pages.ChoferForm{
		CodigoChofer:       c.PostForm("codigo_chofer"),
		CedulaIdentidad:    c.PostForm("cedula_identidad"),
		Nombre:             c.PostForm("nombre"),
		Apellido:           c.PostForm("apellido"),
		Telefono:           c.PostForm("telefono"),
		FechaIngreso:       c.PostForm("fecha_ingreso"),
		VencimientoLibreta: c.PostForm("vencimiento_libreta"),
		Estado:             c.PostForm("estado"),
	}
}

// SaveChofer submits the modal. A hidden id selects update over create.
func (s *Server) SaveChofer(c *gin.Context) {
	ctx := c.Request.Context()
	pr := &formPrompter{}
	p := pages.NewChoferesPage(s.backend, pr)

	if raw := c.PostForm("id"); raw != "" {
		id, err := parseID(raw)
		if err == nil {
			chofer, getErr := s.backend.GetChofer(ctx, id)
			if getErr == nil {
				p.OpenEdit(*chofer)
			}
			err = getErr
		}
		if err != nil {
			pr.Notify("Error al actualizar: " + err.Error())
			p.Load(ctx)
			s.renderChoferes(c, p, pr)
			return
		}
	} else {
		p.OpenCreate()
	}
	p.Form = choferForm(c)

	if !p.Submit(ctx) {
		p.Load(ctx)
	}
	s.renderChoferes(c, p, pr)
}

// DeleteChofer deletes when the browser dialog set confirmado=si.
func (s *Server) DeleteChofer(c *gin.Context) {
	ctx := c.Request.Context()
	pr := promptFrom(c)
	p := pages.NewChoferesPage(s.backend, pr)

	id, err := parseID(c.Param("id"))
	if err != nil {
		pr.Notify("Error al eliminar: " + err.Error())
		p.Load(ctx)
	} else if !p.Delete(ctx, id) {
		p.Load(ctx)
	}
	s.renderChoferes(c, p, pr)
}
