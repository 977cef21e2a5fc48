package pages

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"fleet_admin/internal/models"
)

// RecaudacionService also lists drivers and vehicles: the modal offers them as choices.
type RecaudacionService interface {
	ListRecaudaciones(ctx context.Context) ([]models.Recaudacion, error)
	CreateRecaudacion(ctx context.Context, in models.RecaudacionCreate) (*models.Recaudacion, error)
	UpdateRecaudacion(ctx context.Context, id uint, in models.RecaudacionPatch) (*models.Recaudacion, error)
	DeleteRecaudacion(ctx context.Context, id uint) error
	ListChoferes(ctx context.Context) ([]models.Chofer, error)
	ListCoches(ctx context.Context) ([]models.Coche, error)
}

// RecaudacionForm keeps every input as text; ChoferID and CocheID come from <select>s.
type RecaudacionForm struct {
	ChoferID       string
	CocheID        string
	FechaTurno     string
	Turno          string
	KmEntrada      string
	KmSalida       string
	TotalRecaudado string
	Combustible    string
	OtrosGastos    string
	H13            string
	Credito        string
}

func (f RecaudacionForm) Valid() bool {
	return isID(f.ChoferID) &&
		isID(f.CocheID) &&
		required(f.FechaTurno) &&
		required(f.Turno) &&
		required(f.KmEntrada) && isInt(f.KmEntrada) &&
		required(f.KmSalida) && isInt(f.KmSalida) &&
		required(f.TotalRecaudado) && isNumber(f.TotalRecaudado) &&
		isNumber(f.Combustible) &&
		isNumber(f.OtrosGastos) &&
		isNumber(f.H13) &&
		isNumber(f.Credito)
}

func (f RecaudacionForm) create() models.RecaudacionCreate {
	return models.RecaudacionCreate{
		ChoferID:       toID(f.ChoferID),
		CocheID:        toID(f.CocheID),
		Turno:          f.Turno,
		FechaTurno:     f.FechaTurno,
		KmEntrada:      toInt(f.KmEntrada),
		KmSalida:       toInt(f.KmSalida),
		TotalRecaudado: toFloat(f.TotalRecaudado),
		Combustible:    toFloat(f.Combustible),
		OtrosGastos:    toFloat(f.OtrosGastos),
		H13:            toFloat(f.H13),
		Credito:        toFloat(f.Credito),
	}
}

func (f RecaudacionForm) patch() models.RecaudacionPatch {
	return models.RecaudacionPatch{
		ChoferID:       ptr(toID(f.ChoferID)),
		CocheID:        ptr(toID(f.CocheID)),
		Turno:          ptr(f.Turno),
		FechaTurno:     ptr(f.FechaTurno),
		KmEntrada:      ptr(toInt(f.KmEntrada)),
		KmSalida:       ptr(toInt(f.KmSalida)),
		TotalRecaudado: ptr(toFloat(f.TotalRecaudado)),
		Combustible:    ptr(toFloat(f.Combustible)),
		OtrosGastos:    ptr(toFloat(f.OtrosGastos)),
		H13:            ptr(toFloat(f.H13)),
		Credito:        ptr(toFloat(f.Credito)),
	}
}

// RecaudacionesPage drives the collection records list. Its load also brings the
// driver and vehicle lists.
type RecaudacionesPage struct {
	page
	svc RecaudacionService

	Recaudaciones []models.Recaudacion
	Choferes      []models.Chofer
	Coches        []models.Coche
	Form          RecaudacionForm
	editing       *models.Recaudacion
}

func NewRecaudacionesPage(svc RecaudacionService, prompter Prompter) *RecaudacionesPage {
	return &RecaudacionesPage{page: page{prompter: prompter}, svc: svc}
}

func (p *RecaudacionesPage) Init(ctx context.Context) {
	p.Load(ctx)
}

// Load fetches the three lists concurrently and waits for all of them. Any failure
// fails the load with the first error; lists that did arrive still replace their copy.
func (p *RecaudacionesPage) Load(ctx context.Context) {
	p.beginLoad()

	var (
		recaudaciones []models.Recaudacion
		choferes      []models.Chofer
		coches        []models.Coche
		recErr        error
		choferErr     error
		cocheErr      error
	)

	var g errgroup.Group
	g.Go(func() error {
		recaudaciones, recErr = p.svc.ListRecaudaciones(ctx)
		return recErr
	})
	g.Go(func() error {
		choferes, choferErr = p.svc.ListChoferes(ctx)
		return choferErr
	})
	g.Go(func() error {
		coches, cocheErr = p.svc.ListCoches(ctx)
		return cocheErr
	})
	err := g.Wait()

	if recErr == nil {
		p.Recaudaciones = recaudaciones
	}
	if choferErr == nil {
		p.Choferes = choferes
	}
	if cocheErr == nil {
		p.Coches = coches
	}
	p.endLoad(err)
}

func (p *RecaudacionesPage) Editing() *models.Recaudacion { return p.editing }

func (p *RecaudacionesPage) OpenCreate() {
	p.editing = nil
	p.Form = RecaudacionForm{
		Turno:          models.TurnoManana,
		KmEntrada:      "0",
		KmSalida:       "0",
		TotalRecaudado: "0",
		Combustible:    "0",
		OtrosGastos:    "0",
		H13:            "0",
		Credito:        "0",
	}
	p.modal = ModalCreate
}

func (p *RecaudacionesPage) OpenEdit(rec models.Recaudacion) {
	p.editing = &rec
	p.Form = RecaudacionForm{
		ChoferID:       idString(rec.ChoferID),
		CocheID:        idString(rec.CocheID),
		FechaTurno:     rec.FechaTurno,
		Turno:          rec.Turno,
		KmEntrada:      strconv.Itoa(rec.KmEntrada),
		KmSalida:       strconv.Itoa(rec.KmSalida),
		TotalRecaudado: formatFloat(rec.TotalRecaudado),
		Combustible:    formatFloat(rec.Combustible),
		OtrosGastos:    formatFloat(rec.OtrosGastos),
		H13:            formatFloat(rec.H13),
		Credito:        formatFloat(rec.Credito),
	}
	p.modal = ModalEdit
}

func (p *RecaudacionesPage) Close() {
	p.closeModal()
	p.editing = nil
	p.Form = RecaudacionForm{}
}

func (p *RecaudacionesPage) Submit(ctx context.Context) bool {
	if !p.Form.Valid() {
		return false
	}

	p.saving = true
	var err error
	if p.editing != nil {
		_, err = p.svc.UpdateRecaudacion(ctx, p.editing.ID, p.Form.patch())
	} else {
		_, err = p.svc.CreateRecaudacion(ctx, p.Form.create())
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

func (p *RecaudacionesPage) Delete(ctx context.Context, id uint) bool {
	if !p.confirm("¿Estás seguro de que deseas eliminar esta recaudación?") {
		return false
	}
	if err := p.svc.DeleteRecaudacion(ctx, id); err != nil {
		p.notify("Error al eliminar: " + err.Error())
		return false
	}
	p.Load(ctx)
	return true
}

func (p *RecaudacionesPage) TurnoClass(turno string) string {
	return TurnoClass(turno)
}

func (p *RecaudacionesPage) Turnos() []string { return models.Turnos }

func idString(id *uint) string {
	if id == nil {
		return ""
	}
	return strconv.FormatUint(uint64(*id), 10)
}
