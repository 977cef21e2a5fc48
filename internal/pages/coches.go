package pages

import (
	"context"
	"strconv"

	"fleet_admin/internal/models"
)

type CocheService interface {
	ListCoches(ctx context.Context) ([]models.Coche, error)
	CreateCoche(ctx context.Context, in models.CocheCreate) (*models.Coche, error)
	UpdateCoche(ctx context.Context, id uint, in models.CochePatch) (*models.Coche, error)
	DeleteCoche(ctx context.Context, id uint) error
}

type CocheForm struct {
	Matricula  string
	Movil      string
	Marca      string
	Modelo     string
	Anio       string
	Kilometros string
	Estado     string
}

func (f CocheForm) Valid() bool {
	return required(f.Matricula) && maxLen(f.Matricula, 4) &&
		required(f.Movil) && maxLen(f.Movil, 4) &&
		isInt(f.Kilometros) &&
		required(f.Estado)
}

func (f CocheForm) create() models.CocheCreate {
	return models.CocheCreate{
		Matricula:  f.Matricula,
		Movil:      f.Movil,
		Marca:      f.Marca,
		Modelo:     f.Modelo,
		Anio:       f.Anio,
		Kilometros: toInt(f.Kilometros),
		Estado:     f.Estado,
	}
}

func (f CocheForm) patch() models.CochePatch {
	return models.CochePatch{
		Matricula:  ptr(f.Matricula),
		Movil:      ptr(f.Movil),
		Marca:      ptr(f.Marca),
		Modelo:     ptr(f.Modelo),
		Anio:       ptr(f.Anio),
		Kilometros: ptr(toInt(f.Kilometros)),
		Estado:     ptr(f.Estado),
	}
}

// CochesPage drives the vehicles list and its modal.
type CochesPage struct {
	page
	svc CocheService

	Coches  []models.Coche
	Form    CocheForm
	editing *models.Coche
}

func NewCochesPage(svc CocheService, prompter Prompter) *CochesPage {
	return &CochesPage{page: page{prompter: prompter}, svc: svc}
}

func (p *CochesPage) Init(ctx context.Context) {
	p.Load(ctx)
}

func (p *CochesPage) Load(ctx context.Context) {
	p.beginLoad()
	coches, err := p.svc.ListCoches(ctx)
	if err == nil {
		p.Coches = coches
	}
	p.endLoad(err)
}

func (p *CochesPage) Editing() *models.Coche { return p.editing }

func (p *CochesPage) OpenCreate() {
	p.editing = nil
	p.Form = CocheForm{Estado: models.EstadoActivo, Kilometros: "0"}
	p.modal = ModalCreate
}

func (p *CochesPage) OpenEdit(coche models.Coche) {
	p.editing = &coche
	p.Form = CocheForm{
		Matricula:  coche.Matricula,
		Movil:      coche.Movil,
		Marca:      deref(coche.Marca),
		Modelo:     deref(coche.Modelo),
		Anio:       deref(coche.Anio),
		Kilometros: strconv.Itoa(coche.Kilometros),
		Estado:     coche.Estado,
	}
	p.modal = ModalEdit
}

func (p *CochesPage) Close() {
	p.closeModal()
	p.editing = nil
	p.Form = CocheForm{}
}

func (p *CochesPage) Submit(ctx context.Context) bool {
	if !p.Form.Valid() {
		return false
	}

	p.saving = true
	var err error
	if p.editing != nil {
		_, err = p.svc.UpdateCoche(ctx, p.editing.ID, p.Form.patch())
	} else {
		_, err = p.svc.CreateCoche(ctx, p.Form.create())
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

func (p *CochesPage) Delete(ctx context.Context, id uint) bool {
	if !p.confirm("¿Estás seguro de que deseas eliminar este coche?") {
		return false
	}
	if err := p.svc.DeleteCoche(ctx, id); err != nil {
		p.notify("Error al eliminar: " + err.Error())
		return false
	}
	p.Load(ctx)
	return true
}

func (p *CochesPage) EstadoClass(estado string) string {
	return CocheEstadoClass(estado)
}

func (p *CochesPage) Estados() []string { return models.CocheEstados }
