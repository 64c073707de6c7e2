package ledger_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/PuntoVenta-api/internal/domain"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/entity"
	"github.com/jhoicas/PuntoVenta-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// memStore emula el comportamiento transaccional de PostgreSQL que el motor
// necesita: el txRunner serializa las transacciones con un mutex (equivalente
// al bloqueo de fila para un mismo producto) y toma un snapshot del estado
// para revertirlo si la función devuelve error.
// ──────────────────────────────────────────────────────────────────────────────

type prodKey struct {
	tenant string
	id     int64
}

type memStore struct {
	mu       sync.Mutex
	products map[prodKey]*entity.Product
	entries  []*entity.LedgerEntry
}

func newMemStore() *memStore {
	return &memStore{products: make(map[prodKey]*entity.Product)}
}

func (s *memStore) snapshot() (map[prodKey]*entity.Product, []*entity.LedgerEntry) {
	products := make(map[prodKey]*entity.Product, len(s.products))
	for k, v := range s.products {
		cp := *v
		products[k] = &cp
	}
	entries := make([]*entity.LedgerEntry, len(s.entries))
	copy(entries, s.entries)
	return products, entries
}

// producto devuelve una copia del estado actual (para asserts fuera de tx).
func (s *memStore) producto(tenant string, id int64) *entity.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[prodKey{tenant, id}]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

// movimientos devuelve las entradas del producto en orden de inserción.
func (s *memStore) movimientos(tenant string, id int64) []*entity.LedgerEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.LedgerEntry
	for _, e := range s.entries {
		if e.TenantID == tenant && e.ProductID == id {
			cp := *e
			out = append(out, &cp)
		}
	}
	return out
}

// fakeTxRunner implementa ledger.TxRunner sobre memStore.
type fakeTxRunner struct {
	store *memStore
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	ledgerRepo repository.LedgerRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	products, entries := r.store.snapshot()
	err := fn(&fakeProductRepo{store: r.store}, &fakeLedgerRepo{store: r.store})
	if err != nil {
		r.store.products = products
		r.store.entries = entries
		return err
	}
	return nil
}

// ── ProductRepository ─────────────────────────────────────────────────────────

type fakeProductRepo struct {
	store *memStore
}

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	k := prodKey{p.TenantID, p.ProductID}
	if _, ok := r.store.products[k]; ok {
		return domain.ErrDuplicate
	}
	cp := *p
	r.store.products[k] = &cp
	return nil
}

func (r *fakeProductRepo) Get(_ context.Context, tenantID string, productID int64) (*entity.Product, error) {
	p, ok := r.store.products[prodKey{tenantID, productID}]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, tenantID string, productID int64) (*entity.Product, error) {
	return r.Get(ctx, tenantID, productID)
}

func (r *fakeProductRepo) GetByNameAndCategory(_ context.Context, tenantID, name string, categoryID int64) (*entity.Product, error) {
	for _, p := range r.store.products {
		if p.TenantID == tenantID && p.Name == name && p.CategoryID == categoryID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeProductRepo) NextProductID(_ context.Context, tenantID string) (int64, error) {
	var max int64
	for k := range r.store.products {
		if k.tenant == tenantID && k.id > max {
			max = k.id
		}
	}
	return max + 1, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	k := prodKey{p.TenantID, p.ProductID}
	existing, ok := r.store.products[k]
	if !ok {
		return domain.ErrNotFound
	}
	existing.Name = p.Name
	existing.CategoryID = p.CategoryID
	existing.Unit = p.Unit
	existing.CostPrice = p.CostPrice
	existing.RetailPrice = p.RetailPrice
	existing.Markup = p.Markup
	existing.UpdatedAt = p.UpdatedAt
	return nil
}

func (r *fakeProductRepo) UpdateQuantities(_ context.Context, tenantID string, productID, stock, damaged int64) error {
	if stock < 0 || damaged < 0 {
		return domain.ErrInsufficientStock
	}
	p, ok := r.store.products[prodKey{tenantID, productID}]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	p.Damaged = damaged
	return nil
}

func (r *fakeProductRepo) ListByTenant(_ context.Context, tenantID string, limit, offset int) ([]*entity.Product, error) {
	var all []*entity.Product
	for _, p := range r.store.products {
		if p.TenantID == tenantID {
			cp := *p
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ProductID < all[j].ProductID })
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, tenantID string, productID int64) error {
	delete(r.store.products, prodKey{tenantID, productID})
	return nil
}

func (r *fakeProductRepo) CountByUnit(_ context.Context, tenantID, unitName string) (int64, error) {
	var n int64
	for _, p := range r.store.products {
		if p.TenantID == tenantID && p.Unit == unitName {
			n++
		}
	}
	return n, nil
}

// ── LedgerRepository ──────────────────────────────────────────────────────────

type fakeLedgerRepo struct {
	store *memStore
}

func (r *fakeLedgerRepo) Append(_ context.Context, e *entity.LedgerEntry) error {
	cp := *e
	if cp.ID == "" {
		cp.ID = uuid.New().String()
	}
	if cp.CreatedAt.IsZero() {
		cp.CreatedAt = time.Now()
	}
	r.store.entries = append(r.store.entries, &cp)
	return nil
}

func (r *fakeLedgerRepo) ListByProduct(_ context.Context, tenantID string, productID int64, limit, offset int) ([]*entity.LedgerEntry, error) {
	var all []*entity.LedgerEntry
	for i := len(r.store.entries) - 1; i >= 0; i-- { // más reciente primero
		e := r.store.entries[i]
		if e.TenantID == tenantID && e.ProductID == productID {
			cp := *e
			all = append(all, &cp)
		}
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeLedgerRepo) ListByTenant(_ context.Context, tenantID string, from, to *time.Time, limit, offset int) ([]*entity.LedgerEntry, error) {
	var all []*entity.LedgerEntry
	for i := len(r.store.entries) - 1; i >= 0; i-- {
		e := r.store.entries[i]
		if e.TenantID != tenantID {
			continue
		}
		if from != nil && e.CreatedAt.Before(*from) {
			continue
		}
		if to != nil && e.CreatedAt.After(*to) {
			continue
		}
		cp := *e
		all = append(all, &cp)
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *fakeLedgerRepo) SumDeltas(_ context.Context, tenantID string, productID int64) (int64, error) {
	var sum int64
	for _, e := range r.store.entries {
		if e.TenantID == tenantID && e.ProductID == productID {
			sum += e.Delta
		}
	}
	return sum, nil
}

func (r *fakeLedgerRepo) PurgeByProduct(_ context.Context, tenantID string, productID int64) (int64, error) {
	var kept []*entity.LedgerEntry
	var purged int64
	for _, e := range r.store.entries {
		if e.TenantID == tenantID && e.ProductID == productID {
			purged++
			continue
		}
		kept = append(kept, e)
	}
	r.store.entries = kept
	return purged, nil
}
