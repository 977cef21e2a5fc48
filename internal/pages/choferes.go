package pages

import (
	"context"

	"fleet_admin/internal/models"
)

// ChoferService is the slice of the backend client the drivers page needs.
type ChoferService interface {
	ListChoferes(ctx context.Context) ([]models.Chofer, error)
	CreateChofer(ctx context.Context, in models.ChoferCreate) (*models.Chofer, error)
	UpdateChofer(ctx context.Context, id uint, in models.ChoferPatch) (*models.Chofer, error)
	DeleteChofer(ctx context.Context, id uint) error
}

// ChoferForm mirrors the modal's inputs as the browser submits them.
type ChoferForm struct {
	CodigoChofer       string
	CedulaIdentidad    string
	Nombre             string
	Apellido           string
	Telefono           string
	FechaIngreso       string
	VencimientoLibreta string
	Estado             string
}

func (f ChoferForm) Valid() bool {
	return required(f.CodigoChofer) && maxLen(f.CodigoChofer, 5) &&
		required(f.CedulaIdentidad) &&
		required(f.Nombre) &&
		required(f.Apellido) &&
		required(f.FechaIngreso) &&
		required(f.VencimientoLibreta) &&
		required(f.Estado)
}

func (f ChoferForm) create() models.ChoferCreate {
	return models.ChoferCreate{
		CodigoChofer:       f.CodigoChofer,
		CedulaIdentidad:    f.CedulaIdentidad,
		Nombre:             f.Nombre,
		Apellido:           f.Apellido,
		Telefono:           f.Telefono,
		FechaIngreso:       f.FechaIngreso,
		VencimientoLibreta: f.VencimientoLibreta,
		Estado:             f.Estado,
	}
}

func (f ChoferForm) patch() models.ChoferPatch {
	return models.ChoferPatch{
		CodigoChofer:       ptr(f.CodigoChofer),
		CedulaIdentidad:    ptr(f.CedulaIdentidad),
		Nombre:             ptr(f.Nombre),
		Apellido:           ptr(f.Apellido),
		Telefono:           ptr(f.Telefono),
		FechaIngreso:       ptr(f.FechaIngreso),
		VencimientoLibreta: ptr(f.VencimientoLibreta),
		Estado:             ptr(f.Estado),
	}
}

// ChoferesPage drives the drivers list and its modal.
type ChoferesPage struct {
	page
	svc ChoferService

	Choferes []models.Chofer
	Form     ChoferForm
	editing  *models.Chofer
}

func NewChoferesPage(svc ChoferService, prompter Prompter) *ChoferesPage {
	return &ChoferesPage{page: page{prompter: prompter}, svc: svc}
}

func (p *ChoferesPage) Init(ctx context.Context) {
	p.Load(ctx)
}

func (p *ChoferesPage) Load(ctx context.Context) {
	p.beginLoad()
	choferes, err := p.svc.ListChoferes(ctx)
	if err == nil {
		p.Choferes = choferes
	}
	p.endLoad(err)
}

// Editing returns the driver being edited, or nil in create mode or with the modal closed.
func (p *ChoferesPage) Editing() *models.Chofer { return p.editing }

func (p *ChoferesPage) OpenCreate() {
	p.editing = nil
	p.Form = ChoferForm{Estado: models.EstadoActivo}
	p.modal = ModalCreate
}

func (p *ChoferesPage) OpenEdit(chofer models.Chofer) {
	p.editing = &chofer
	p.Form = ChoferForm{
		CodigoChofer:       chofer.CodigoChofer,
		CedulaIdentidad:    chofer.CedulaIdentidad,
		Nombre:             chofer.Nombre,
		Apellido:           chofer.Apellido,
		Telefono:           deref(chofer.Telefono),
		FechaIngreso:       chofer.FechaIngreso,
		VencimientoLibreta: chofer.VencimientoLibreta,
		Estado:             chofer.Estado,
	}
	p.modal = ModalEdit
}

func (p *ChoferesPage) Close() {
	p.closeModal()
	p.editing = nil
	p.Form = ChoferForm{}
}

// Submit saves the modal form. It reports whether the save went through; an invalid
// form returns false without calling the backend.
func (p *ChoferesPage) Submit(ctx context.Context) bool {
	if !p.Form.Valid() {
		return false
	}

	p.saving = true
	var err error
	if p.editing != nil {
		_, err = p.svc.UpdateChofer(ctx, p.editing.ID, p.Form.patch())
	} else {
		_, err = p.svc.CreateChofer(ctx, p.Form.create())
	}
	if err != nil {
		p.saveFailed(p.editing != nil, err)
		return false
	}

	p.saving = false
	p.Close()
	p.Load(ctx)
	return true
}

func (p *ChoferesPage) Delete(ctx context.Context, id uint) bool {
	if !p.confirm("¿Estás seguro de que deseas eliminar este chofer?") {
		return false
	}
	if err := p.svc.DeleteChofer(ctx, id); err != nil {
		p.notify("Error al eliminar: " + err.Error())
		return false
	}
	p.Load(ctx)
	return true
}

func (p *ChoferesPage) EstadoClass(estado string) string {
	return ChoferEstadoClass(estado)
}

func (p *ChoferesPage) Estados() []string { return models.ChoferEstados }
