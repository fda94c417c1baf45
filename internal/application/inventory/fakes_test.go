package inventory_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jprezende/AgroGestor-api/internal/domain/entity"
	"github.com/jprezende/AgroGestor-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória para os casos de uso de inventário. O memTxRunner entrega os
// mesmos repositórios ao callback; a ordem das escritas nos casos de uso é que
// garante que nenhum estado parcial é observável nos cenários testados.
// ──────────────────────────────────────────────────────────────────────────────

type memLevelRepo struct {
	levels map[entity.ItemRef]*entity.StockLevel
}

func newMemLevelRepo() *memLevelRepo {
	return &memLevelRepo{levels: map[entity.ItemRef]*entity.StockLevel{}}
}

func (r *memLevelRepo) Get(ref entity.ItemRef) (*entity.StockLevel, error) {
	if l, ok := r.levels[ref]; ok {
		cp := *l
		return &cp, nil
	}
	return &entity.StockLevel{ItemKind: ref.Kind, ItemID: ref.ID, Quantity: decimal.Zero}, nil
}

func (r *memLevelRepo) GetForUpdate(ref entity.ItemRef) (*entity.StockLevel, error) {
	return r.Get(ref)
}

func (r *memLevelRepo) Upsert(level *entity.StockLevel) error {
	cp := *level
	r.levels[entity.ItemRef{Kind: level.ItemKind, ID: level.ItemID}] = &cp
	return nil
}

func (r *memLevelRepo) set(ref entity.ItemRef, qty int64) {
	r.levels[ref] = &entity.StockLevel{
		ItemKind: ref.Kind, ItemID: ref.ID,
		Quantity: decimal.NewFromInt(qty), UpdatedAt: time.Now(),
	}
}

type memMovementRepo struct {
	movements map[string]*entity.Movement
	order     []string
}

func newMemMovementRepo() *memMovementRepo {
	return &memMovementRepo{movements: map[string]*entity.Movement{}}
}

func (r *memMovementRepo) Create(m *entity.Movement) error {
	cp := *m
	r.movements[m.ID] = &cp
	r.order = append(r.order, m.ID)
	return nil
}

func (r *memMovementRepo) GetByID(id string) (*entity.Movement, error) {
	if m, ok := r.movements[id]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, nil
}

func (r *memMovementRepo) Delete(id string) error {
	delete(r.movements, id)
	return nil
}

func (r *memMovementRepo) ListWithRefs(filter repository.MovementFilter) ([]*entity.MovementWithRefs, int, error) {
	var out []*entity.MovementWithRefs
	for _, id := range r.order {
		m, ok := r.movements[id]
		if !ok || (filter.FarmID != "" && m.FarmID != filter.FarmID) {
			continue
		}
		out = append(out, &entity.MovementWithRefs{Movement: *m})
	}
	return out, len(out), nil
}

type memTxRunner struct {
	levels *memLevelRepo
	movs   *memMovementRepo
}

func (t *memTxRunner) Run(_ context.Context, fn func(
	levelRepo repository.StockLevelRepository,
	movRepo repository.MovementRepository,
) error) error {
	return fn(t.levels, t.movs)
}

type memProductRepo struct {
	products map[string]*entity.Product
}

func newMemProductRepo() *memProductRepo { return &memProductRepo{products: map[string]*entity.Product{}} }

func (r *memProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) GetByID(id string) (*entity.Product, error) {
	return r.products[id], nil
}
func (r *memProductRepo) GetByFarmAndCode(farmID, code string) (*entity.Product, error) {
	for _, p := range r.products {
		if p.FarmID == farmID && p.Code == code {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }
func (r *memProductRepo) ListByFarm(farmID string, limit, offset int) ([]*entity.Product, int, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.FarmID == farmID {
			out = append(out, p)
		}
	}
	return out, len(out), nil
}
func (r *memProductRepo) Delete(id string) error { delete(r.products, id); return nil }

type memAgroRepo struct {
	items map[string]*entity.Agrochemical
}

func newMemAgroRepo() *memAgroRepo { return &memAgroRepo{items: map[string]*entity.Agrochemical{}} }

func (r *memAgroRepo) Create(a *entity.Agrochemical) error { r.items[a.ID] = a; return nil }
func (r *memAgroRepo) GetByID(id string) (*entity.Agrochemical, error) {
	return r.items[id], nil
}
func (r *memAgroRepo) GetByFarmAndRegistry(farmID, registry string) (*entity.Agrochemical, error) {
	for _, a := range r.items {
		if a.FarmID == farmID && a.RegistryNumber == registry && registry != "" {
			return a, nil
		}
	}
	return nil, nil
}
func (r *memAgroRepo) GetByFarmAndName(farmID, name string) (*entity.Agrochemical, error) {
	for _, a := range r.items {
		if a.FarmID == farmID && a.Name == name {
			return a, nil
		}
	}
	return nil, nil
}
func (r *memAgroRepo) Update(a *entity.Agrochemical) error { r.items[a.ID] = a; return nil }
func (r *memAgroRepo) ListByFarm(farmID string, limit, offset int) ([]*entity.Agrochemical, int, error) {
	var out []*entity.Agrochemical
	for _, a := range r.items {
		if a.FarmID == farmID {
			out = append(out, a)
		}
	}
	return out, len(out), nil
}
func (r *memAgroRepo) Delete(id string) error { delete(r.items, id); return nil }

type memEmployeeRepo struct {
	employees map[string]*entity.Employee
}

func newMemEmployeeRepo() *memEmployeeRepo {
	return &memEmployeeRepo{employees: map[string]*entity.Employee{}}
}

func (r *memEmployeeRepo) Create(e *entity.Employee) error { r.employees[e.ID] = e; return nil }
func (r *memEmployeeRepo) GetByID(id string) (*entity.Employee, error) {
	return r.employees[id], nil
}
func (r *memEmployeeRepo) Update(e *entity.Employee) error { r.employees[e.ID] = e; return nil }
func (r *memEmployeeRepo) ListByFarm(farmID string, limit, offset int) ([]*entity.Employee, int, error) {
	var out []*entity.Employee
	for _, e := range r.employees {
		if e.FarmID == farmID {
			out = append(out, e)
		}
	}
	return out, len(out), nil
}
func (r *memEmployeeRepo) Delete(id string) error { delete(r.employees, id); return nil }

type memMachineRepo struct {
	machines map[string]*entity.Machine
}

func newMemMachineRepo() *memMachineRepo { return &memMachineRepo{machines: map[string]*entity.Machine{}} }

func (r *memMachineRepo) Create(m *entity.Machine) error { r.machines[m.ID] = m; return nil }
func (r *memMachineRepo) GetByID(id string) (*entity.Machine, error) {
	return r.machines[id], nil
}
func (r *memMachineRepo) Update(m *entity.Machine) error { r.machines[m.ID] = m; return nil }
func (r *memMachineRepo) ListByFarm(farmID string, limit, offset int) ([]*entity.Machine, int, error) {
	var out []*entity.Machine
	for _, m := range r.machines {
		if m.FarmID == farmID {
			out = append(out, m)
		}
	}
	return out, len(out), nil
}
func (r *memMachineRepo) Delete(id string) error { delete(r.machines, id); return nil }
