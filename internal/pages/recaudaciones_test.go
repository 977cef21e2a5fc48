package pages

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet_admin/internal/models"
)

func uintPtr(v uint) *uint { return &v }

func TestRecaudacionesPage_LoadsThreeLists(t *testing.T) {
	svc := &fakeService{
		choferes:      sampleChoferes(),
		coches:        []models.Coche{{ID: 1}},
		recaudaciones: []models.Recaudacion{{ID: 1}, {ID: 2}, {ID: 3}},
	}
	p := NewRecaudacionesPage(svc, &fakePrompter{})
	p.Init(context.Background())

	assert.Equal(t, Loaded, p.State())
	assert.Len(t, p.Recaudaciones, 3)
	assert.Len(t, p.Choferes, 2)
	assert.Len(t, p.Coches, 1)
	assert.Equal(t, 1, svc.count("list_recaudaciones"))
	assert.Equal(t, 1, svc.count("list_choferes"))
	assert.Equal(t, 1, svc.count("list_coches"))
}

func TestRecaudacionesPage_AnyFailureFailsLoad(t *testing.T) {
	svc := &fakeService{
		choferes:      sampleChoferes(),
		recaudaciones: []models.Recaudacion{{ID: 1}},
		listErr:       map[string]error{"list_coches": errors.New("Error 500: coches caídos")},
	}
	p := NewRecaudacionesPage(svc, &fakePrompter{})
	p.Init(context.Background())

	assert.Equal(t, LoadFailed, p.State())
	assert.False(t, p.Loading())
	assert.Equal(t, "Error 500: coches caídos", p.Error())
	assert.Len(t, p.Recaudaciones, 1)
	assert.Len(t, p.Choferes, 2)
	assert.Nil(t, p.Coches)
}

func TestRecaudacionesPage_FirstFailureWins(t *testing.T) {
	choferesFailing := make(chan struct{})
	svc := &fakeService{
		listErr: map[string]error{
			"list_choferes": errors.New("primero"),
			"list_coches":   errors.New("segundo"),
		},
		listHook: map[string]func(){
			"list_choferes": func() { close(choferesFailing) },
			"list_coches": func() {
				<-choferesFailing
				time.Sleep(50 * time.Millisecond)
			},
		},
	}
	p := NewRecaudacionesPage(svc, &fakePrompter{})
	p.Init(context.Background())

	assert.Equal(t, LoadFailed, p.State())
	assert.Equal(t, "primero", p.Error())
}

func TestRecaudacionesPage_CreateSendsWholeNumberKeys(t *testing.T) {
	svc := &fakeService{}
	p := NewRecaudacionesPage(svc, &fakePrompter{})
	p.OpenCreate()
	assert.Equal(t, models.TurnoManana, p.Form.Turno)
	assert.Equal(t, "0", p.Form.KmEntrada)

	p.Form.ChoferID = "3"
	p.Form.CocheID = "12"
	p.Form.FechaTurno = "2024-03-01"
	p.Form.KmEntrada = "1000"
	p.Form.KmSalida = "1250"
	p.Form.TotalRecaudado = "4500.5"
	p.Form.Combustible = "800"
	p.Form.Credito = ""

	require.True(t, p.Submit(context.Background()))

	created, ok := svc.find("create_recaudacion")
	require.True(t, ok)
	assert.Equal(t, models.RecaudacionCreate{
		ChoferID:       3,
		CocheID:        12,
		Turno:          models.TurnoManana,
		FechaTurno:     "2024-03-01",
		KmEntrada:      1000,
		KmSalida:       1250,
		TotalRecaudado: 4500.5,
		Combustible:    800,
	}, created.Payload)
	assert.Equal(t, 1, svc.count("list_recaudaciones"))
	assert.False(t, p.ModalOpen())
}

func TestRecaudacionesPage_InvalidKeysAreNoop(t *testing.T) {
	svc := &fakeService{}
	p := NewRecaudacionesPage(svc, &fakePrompter{})
	p.OpenCreate()
	p.Form.FechaTurno = "2024-03-01"
	p.Form.CocheID = "1"

	p.Form.ChoferID = ""
	assert.False(t, p.Submit(context.Background()))
	p.Form.ChoferID = "abc"
	assert.False(t, p.Submit(context.Background()))
	p.Form.ChoferID = "1"
	p.Form.KmSalida = ""
	assert.False(t, p.Submit(context.Background()))

	assert.Empty(t, svc.calls)
}

func TestRecaudacionesPage_EditRoundTripsValues(t *testing.T) {
	rec := models.Recaudacion{
		ID: 5, ChoferID: uintPtr(2), CocheID: uintPtr(7), Turno: models.TurnoNoche, FechaTurno: "2024-04-02",
		KmEntrada: 100, KmSalida: 340, TotalRecaudado: 3200.75, Combustible: 600, OtrosGastos: 50, H13: 12.5, Credito: 0,
		KmTotales: 240, TotalEntregar: 999,
	}
	prompter := &fakePrompter{}
	svc := &fakeService{recaudaciones: []models.Recaudacion{rec}}
	p := NewRecaudacionesPage(svc, prompter)
	p.Init(context.Background())

	p.OpenEdit(rec)
	assert.Equal(t, RecaudacionForm{
		ChoferID: "2", CocheID: "7", FechaTurno: "2024-04-02", Turno: models.TurnoNoche,
		KmEntrada: "100", KmSalida: "340", TotalRecaudado: "3200.75", Combustible: "600",
		OtrosGastos: "50", H13: "12.5", Credito: "0",
	}, p.Form)

	svc.saveErr = errors.New("Error 422")
	before := p.Form
	assert.False(t, p.Submit(context.Background()))
	assert.Equal(t, []string{"Error al actualizar: Error 422"}, prompter.notices)
	assert.True(t, p.ModalOpen())
	assert.Equal(t, ModalEdit, p.Modal())
	assert.False(t, p.Saving())
	assert.Equal(t, before, p.Form)
	assert.Equal(t, []models.Recaudacion{rec}, p.Recaudaciones)
	assert.Equal(t, 1, svc.count("list_recaudaciones"))

	svc.saveErr = nil
	require.True(t, p.Submit(context.Background()))
	var updates []call
	for _, c := range svc.calls {
		if c.Op == "update_recaudacion" {
			updates = append(updates, c)
		}
	}
	require.Len(t, updates, 2)
	patch := updates[1].Payload.(models.RecaudacionPatch)
	assert.Equal(t, uint(5), updates[1].ID)
	assert.Equal(t, uint(2), *patch.ChoferID)
	assert.Equal(t, 340, *patch.KmSalida)
	assert.Equal(t, 3200.75, *patch.TotalRecaudado)
}

func TestRecaudacionesPage_CreateFailureKeepsModal(t *testing.T) {
	prompter := &fakePrompter{}
	svc := &fakeService{recaudaciones: []models.Recaudacion{{ID: 1}, {ID: 2}}}
	p := NewRecaudacionesPage(svc, prompter)
	p.Init(context.Background())

	p.OpenCreate()
	p.Form.ChoferID = "1"
	p.Form.CocheID = "1"
	p.Form.FechaTurno = "2024-03-01"
	p.Form.KmSalida = "120"
	before := p.Form

	svc.saveErr = errors.New("Error 409: duplicado")
	assert.False(t, p.Submit(context.Background()))

	assert.Equal(t, []string{"Error al crear: Error 409: duplicado"}, prompter.notices)
	assert.Equal(t, ModalCreate, p.Modal())
	assert.Equal(t, before, p.Form)
	assert.Len(t, p.Recaudaciones, 2)
	assert.Equal(t, 1, svc.count("list_recaudaciones"))
}

func TestRecaudacionesPage_DeleteDeclinedIssuesNoCall(t *testing.T) {
	prompter := &fakePrompter{answer: false}
	svc := &fakeService{recaudaciones: []models.Recaudacion{{ID: 1}, {ID: 2}}}
	p := NewRecaudacionesPage(svc, prompter)
	p.Init(context.Background())

	assert.False(t, p.Delete(context.Background(), 1))

	assert.Equal(t, 0, svc.count("delete_recaudacion"))
	assert.Equal(t, 1, svc.count("list_recaudaciones"))
	assert.Len(t, p.Recaudaciones, 2)
	assert.Equal(t, []string{"¿Estás seguro de que deseas eliminar esta recaudación?"}, prompter.confirms)
}

func TestRecaudacionesPage_DeleteConfirmedReloadsAll(t *testing.T) {
	svc := &fakeService{}
	p := NewRecaudacionesPage(svc, &fakePrompter{answer: true})

	assert.True(t, p.Delete(context.Background(), 4))
	assert.Equal(t, 1, svc.count("delete_recaudacion"))
	assert.Equal(t, 1, svc.count("list_recaudaciones"))
	assert.Equal(t, 1, svc.count("list_choferes"))
	assert.Equal(t, 1, svc.count("list_coches"))
}

func TestTurnoClass(t *testing.T) {
	assert.Equal(t, BadgeYellow, TurnoClass(models.TurnoManana))
	assert.Equal(t, BadgeIndigo, TurnoClass(models.TurnoNoche))
	assert.Equal(t, "badge badge-gray", TurnoClass("Tarde"))
}
