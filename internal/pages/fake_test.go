package pages

import (
	"context"
	"sync"

	"fleet_admin/internal/models"
)

type call struct {
	Op      string
	ID      uint
	Payload any
}

// fakeService implements every service interface of this package.
type fakeService struct {
	mu    sync.Mutex
	calls []call

	choferes      []models.Chofer
	coches        []models.Coche
	recaudaciones []models.Recaudacion

	listErr   map[string]error
	listHook  map[string]func()
	saveErr   error
	deleteErr error
	onSave    func()
}

func (f *fakeService) record(c call) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
}

func (f *fakeService) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Op == op {
			n++
		}
	}
	return n
}

func (f *fakeService) find(op string) (call, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c.Op == op {
			return c, true
		}
	}
	return call{}, false
}

func (f *fakeService) list(op string) error {
	f.record(call{Op: op})
	if hook := f.listHook[op]; hook != nil {
		hook()
	}
	return f.listErr[op]
}

func (f *fakeService) save(c call) error {
	f.record(c)
	if f.onSave != nil {
		f.onSave()
	}
	return f.saveErr
}

func (f *fakeService) ListChoferes(ctx context.Context) ([]models.Chofer, error) {
	if err := f.list("list_choferes"); err != nil {
		return nil, err
	}
	return f.choferes, nil
}

func (f *fakeService) CreateChofer(ctx context.Context, in models.ChoferCreate) (*models.Chofer, error) {
	if err := f.save(call{Op: "create_chofer", Payload: in}); err != nil {
		return nil, err
	}
	return &models.Chofer{ID: 100}, nil
}

func (f *fakeService) UpdateChofer(ctx context.Context, id uint, in models.ChoferPatch) (*models.Chofer, error) {
	if err := f.save(call{Op: "update_chofer", ID: id, Payload: in}); err != nil {
		return nil, err
	}
	return &models.Chofer{ID: id}, nil
}

func (f *fakeService) DeleteChofer(ctx context.Context, id uint) error {
	f.record(call{Op: "delete_chofer", ID: id})
	return f.deleteErr
}

func (f *fakeService) ListCoches(ctx context.Context) ([]models.Coche, error) {
	if err := f.list("list_coches"); err != nil {
		return nil, err
	}
	return f.coches, nil
}

func (f *fakeService) CreateCoche(ctx context.Context, in models.CocheCreate) (*models.Coche, error) {
	if err := f.save(call{Op: "create_coche", Payload: in}); err != nil {
		return nil, err
	}
	return &models.Coche{ID: 100}, nil
}

func (f *fakeService) UpdateCoche(ctx context.Context, id uint, in models.CochePatch) (*models.Coche, error) {
	if err := f.save(call{Op: "update_coche", ID: id, Payload: in}); err != nil {
		return nil, err
	}
	return &models.Coche{ID: id}, nil
}

func (f *fakeService) DeleteCoche(ctx context.Context, id uint) error {
	f.record(call{Op: "delete_coche", ID: id})
	return f.deleteErr
}

func (f *fakeService) ListRecaudaciones(ctx context.Context) ([]models.Recaudacion, error) {
	if err := f.list("list_recaudaciones"); err != nil {
		return nil, err
	}
	return f.recaudaciones, nil
}

func (f *fakeService) CreateRecaudacion(ctx context.Context, in models.RecaudacionCreate) (*models.Recaudacion, error) {
	if err := f.save(call{Op: "create_recaudacion", Payload: in}); err != nil {
		return nil, err
	}
	return &models.Recaudacion{ID: 100}, nil
}

func (f *fakeService) UpdateRecaudacion(ctx context.Context, id uint, in models.RecaudacionPatch) (*models.Recaudacion, error) {
	if err := f.save(call{Op: "update_recaudacion", ID: id, Payload: in}); err != nil {
		return nil, err
	}
	return &models.Recaudacion{ID: id}, nil
}

func (f *fakeService) DeleteRecaudacion(ctx context.Context, id uint) error {
	f.record(call{Op: "delete_recaudacion", ID: id})
	return f.deleteErr
}

type fakePrompter struct {
	answer   bool
	confirms []string
	notices  []string
}

func (p *fakePrompter) Confirm(message string) bool {
	p.confirms = append(p.confirms, message)
	return p.answer
}

func (p *fakePrompter) Notify(message string) {
	p.notices = append(p.notices, message)
}
