package repository

import (
	"context"
	"slices"
	"sync"

	"fleet_admin/internal/models"
)

// MemoryStore keeps everything in process. It enforces the same unique and
// foreign-key rules as the Postgres schema and backs `fleetapi -memory`.
type MemoryStore struct {
	mu sync.Mutex

	seq           map[string]uint
	choferes      map[uint]models.Chofer
	coches        map[uint]models.Coche
	recaudaciones map[uint]models.Recaudacion
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		seq:           map[string]uint{},
		choferes:      map[uint]models.Chofer{},
		coches:        map[uint]models.Coche{},
		recaudaciones: map[uint]models.Recaudacion{},
	}
}

// id hands out per-table serials, like Postgres.
func (s *MemoryStore) id(table string) uint {
	s.seq[table]++
	return s.seq[table]
}

func sorted[T any](m map[uint]T) []T {
	ids := make([]uint, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]T, 0, len(m))
	for _, id := range ids {
		out = append(out, m[id])
	}
	return out
}

func (s *MemoryStore) codigoTaken(codigo string, except uint) bool {
	for id, c := range s.choferes {
		if id != except && c.CodigoChofer == codigo {
			return true
		}
	}
	return false
}

func (s *MemoryStore) matriculaTaken(matricula string, except uint) bool {
	for id, c := range s.coches {
		if id != except && c.Matricula == matricula {
			return true
		}
	}
	return false
}

func (s *MemoryStore) referenced(match func(models.Recaudacion) bool) bool {
	for _, r := range s.recaudaciones {
		if match(r) {
			return true
		}
	}
	return false
}

func (s *MemoryStore) ListChoferes(_ context.Context) ([]models.Chofer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sorted(s.choferes), nil
}

func (s *MemoryStore) GetChofer(_ context.Context, id uint) (*models.Chofer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.choferes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemoryStore) CreateChofer(_ context.Context, c *models.Chofer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.codigoTaken(c.CodigoChofer, 0) {
		return ErrDuplicate
	}
	c.ID = s.id("choferes")
	s.choferes[c.ID] = *c
	return nil
}

func (s *MemoryStore) UpdateChofer(_ context.Context, c *models.Chofer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.choferes[c.ID]; !ok {
		return ErrNotFound
	}
	if s.codigoTaken(c.CodigoChofer, c.ID) {
		return ErrDuplicate
	}
	s.choferes[c.ID] = *c
	return nil
}

func (s *MemoryStore) DeleteChofer(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.choferes[id]; !ok {
		return ErrNotFound
	}
	if s.referenced(func(r models.Recaudacion) bool { return r.ChoferID != nil && *r.ChoferID == id }) {
		return ErrInUse
	}
	delete(s.choferes, id)
	return nil
}

func (s *MemoryStore) ListCoches(_ context.Context) ([]models.Coche, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sorted(s.coches), nil
}

func (s *MemoryStore) GetCoche(_ context.Context, id uint) (*models.Coche, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.coches[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *MemoryStore) CreateCoche(_ context.Context, c *models.Coche) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.matriculaTaken(c.Matricula, 0) {
		return ErrDuplicate
	}
	c.ID = s.id("coches")
	s.coches[c.ID] = *c
	return nil
}

func (s *MemoryStore) UpdateCoche(_ context.Context, c *models.Coche) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.coches[c.ID]; !ok {
		return ErrNotFound
	}
	if s.matriculaTaken(c.Matricula, c.ID) {
		return ErrDuplicate
	}
	s.coches[c.ID] = *c
	return nil
}

func (s *MemoryStore) DeleteCoche(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.coches[id]; !ok {
		return ErrNotFound
	}
	if s.referenced(func(r models.Recaudacion) bool { return r.CocheID != nil && *r.CocheID == id }) {
		return ErrInUse
	}
	delete(s.coches, id)
	return nil
}

// withParties returns a copy of r with Chofer and Coche attached.
func (s *MemoryStore) withParties(r models.Recaudacion) models.Recaudacion {
	r.Chofer, r.Coche = nil, nil
	if r.ChoferID != nil {
		if c, ok := s.choferes[*r.ChoferID]; ok {
			r.Chofer = &c
		}
	}
	if r.CocheID != nil {
		if c, ok := s.coches[*r.CocheID]; ok {
			r.Coche = &c
		}
	}
	return r
}

func (s *MemoryStore) partiesExist(r *models.Recaudacion) bool {
	if r.ChoferID != nil {
		if _, ok := s.choferes[*r.ChoferID]; !ok {
			return false
		}
	}
	if r.CocheID != nil {
		if _, ok := s.coches[*r.CocheID]; !ok {
			return false
		}
	}
	return true
}

func (s *MemoryStore) ListRecaudaciones(_ context.Context) ([]models.Recaudacion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := sorted(s.recaudaciones)
	for i := range out {
		out[i] = s.withParties(out[i])
	}
	return out, nil
}

func (s *MemoryStore) GetRecaudacion(_ context.Context, id uint) (*models.Recaudacion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.recaudaciones[id]
	if !ok {
		return nil, ErrNotFound
	}
	r = s.withParties(r)
	return &r, nil
}

func (s *MemoryStore) CreateRecaudacion(_ context.Context, r *models.Recaudacion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.partiesExist(r) {
		return ErrInUse
	}
	r.ID = s.id("recaudaciones")
	stored := *r
	stored.Chofer, stored.Coche = nil, nil
	s.recaudaciones[r.ID] = stored
	return nil
}

func (s *MemoryStore) UpdateRecaudacion(_ context.Context, r *models.Recaudacion) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recaudaciones[r.ID]; !ok {
		return ErrNotFound
	}
	if !s.partiesExist(r) {
		return ErrInUse
	}
	stored := *r
	stored.Chofer, stored.Coche = nil, nil
	s.recaudaciones[r.ID] = stored
	return nil
}

func (s *MemoryStore) DeleteRecaudacion(_ context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.recaudaciones[id]; !ok {
		return ErrNotFound
	}
	delete(s.recaudaciones, id)
	return nil
}
