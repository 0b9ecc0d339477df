// Package memory provides an in-memory implementation of the repository
// ports and the TxRunner. It backs tests and local demos; PostgreSQL is the
// store everywhere else. Atomicity comes from a single store-wide mutex:
// Run holds it for the whole callback, so a reader never sees an item whose
// balance moved without its ledger entry.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/templeops/temple-stock-api/internal/application/stock"
	"github.com/templeops/temple-stock-api/internal/domain"
	"github.com/templeops/temple-stock-api/internal/domain/entity"
	"github.com/templeops/temple-stock-api/internal/domain/repository"
)

var _ stock.TxRunner = (*Store)(nil)

// Store holds all collections behind one mutex.
type Store struct {
	mu           sync.Mutex
	items        map[string]entity.StockItem
	transactions []entity.StockTransaction
	adjustments  []entity.StockAdjustment
	structures   map[string]entity.Structure
	txSeq        atomic.Int64
	codeSeq      atomic.Int64
}

// NewStore builds an empty store.
func NewStore() *Store {
	return &Store{
		items:      make(map[string]entity.StockItem),
		structures: make(map[string]entity.Structure),
	}
}

// Run executes fn with unlocked repository views while holding the store
// mutex, serializing writers and making the item write + ledger append one
// atomic unit.
func (s *Store) Run(ctx context.Context, fn func(
	itemRepo repository.ItemRepository,
	txRepo repository.TransactionRepository,
	adjRepo repository.AdjustmentRepository,
) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(&itemRepo{s: s}, &txRepo{s: s}, &adjRepo{s: s})
}

// ItemRepository returns a locking view for use outside transactions.
func (s *Store) ItemRepository() repository.ItemRepository {
	return &itemRepo{s: s, lock: true}
}

// TransactionRepository returns a locking view for use outside transactions.
func (s *Store) TransactionRepository() repository.TransactionRepository {
	return &txRepo{s: s, lock: true}
}

// AdjustmentRepository returns a locking view for use outside transactions.
func (s *Store) AdjustmentRepository() repository.AdjustmentRepository {
	return &adjRepo{s: s, lock: true}
}

// StructureRepository returns a locking view for use outside transactions.
func (s *Store) StructureRepository() repository.StructureRepository {
	return &structRepo{s: s}
}

// ── items ───────────────────────────────────────────────────────────────────

type itemRepo struct {
	s    *Store
	lock bool
}

func (r *itemRepo) locked(fn func() error) error {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	return fn()
}

func (r *itemRepo) Create(ctx context.Context, item *entity.StockItem) error {
	return r.locked(func() error {
		if _, ok := r.s.items[item.ID]; ok {
			return domain.ErrDuplicate
		}
		for _, it := range r.s.items {
			if it.TempleID == item.TempleID && it.Code == item.Code {
				return domain.ErrDuplicate
			}
		}
		r.s.items[item.ID] = *item
		return nil
	})
}

func (r *itemRepo) GetByID(ctx context.Context, id string) (*entity.StockItem, error) {
	var out *entity.StockItem
	_ = r.locked(func() error {
		if it, ok := r.s.items[id]; ok {
			cp := it
			out = &cp
		}
		return nil
	})
	return out, nil
}

func (r *itemRepo) GetByCode(ctx context.Context, templeID, code string) (*entity.StockItem, error) {
	var out *entity.StockItem
	_ = r.locked(func() error {
		for _, it := range r.s.items {
			if it.TempleID == templeID && it.Code == code {
				cp := it
				out = &cp
				break
			}
		}
		return nil
	})
	return out, nil
}

// GetForUpdate is GetByID here: the transaction already holds the store lock.
func (r *itemRepo) GetForUpdate(ctx context.Context, id string) (*entity.StockItem, error) {
	return r.GetByID(ctx, id)
}

func (r *itemRepo) Update(ctx context.Context, item *entity.StockItem) error {
	return r.locked(func() error {
		stored, ok := r.s.items[item.ID]
		if !ok {
			return domain.ErrItemNotFound
		}
		// Descriptive fields only; stock state stays as stored.
		item.CurrentStock = stored.CurrentStock
		item.Status = stored.Status
		item.LastRestocked = stored.LastRestocked
		item.Version = stored.Version
		r.s.items[item.ID] = *item
		return nil
	})
}

func (r *itemRepo) UpdateStockState(ctx context.Context, item *entity.StockItem) error {
	return r.locked(func() error {
		stored, ok := r.s.items[item.ID]
		if !ok {
			return domain.ErrItemNotFound
		}
		if stored.Version != item.Version {
			return domain.ErrConcurrentWrite
		}
		item.Version++
		r.s.items[item.ID] = *item
		return nil
	})
}

func (r *itemRepo) List(ctx context.Context, filter repository.ItemFilter) ([]*entity.StockItem, error) {
	var list []*entity.StockItem
	_ = r.locked(func() error {
		for _, it := range r.s.items {
			if filter.TempleID != "" && it.TempleID != filter.TempleID {
				continue
			}
			if filter.Category != "" && it.Category != filter.Category {
				continue
			}
			if filter.Status != "" && it.Status != filter.Status {
				continue
			}
			if filter.Structure != "" && it.DefaultStructure != filter.Structure {
				continue
			}
			cp := it
			list = append(list, &cp)
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool { return list[i].Code < list[j].Code })
	return page(list, filter.Limit, filter.Offset), nil
}

func (r *itemRepo) ListBelowReorder(ctx context.Context, templeID string) ([]*entity.StockItem, error) {
	var list []*entity.StockItem
	_ = r.locked(func() error {
		for _, it := range r.s.items {
			if templeID != "" && it.TempleID != templeID {
				continue
			}
			if it.CurrentStock.LessThanOrEqual(it.ReorderLevel) {
				cp := it
				list = append(list, &cp)
			}
		}
		return nil
	})
	sort.Slice(list, func(i, j int) bool {
		return list[i].CurrentStock.Sub(list[i].MinimumLevel).
			LessThan(list[j].CurrentStock.Sub(list[j].MinimumLevel))
	})
	return list, nil
}

func (r *itemRepo) NextCode(ctx context.Context) (string, error) {
	return fmt.Sprintf("ITM-%03d", r.s.codeSeq.Add(1)), nil
}

// ── ledger ──────────────────────────────────────────────────────────────────

type txRepo struct {
	s    *Store
	lock bool
}

func (r *txRepo) locked(fn func() error) error {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	return fn()
}

func (r *txRepo) Append(ctx context.Context, tx *entity.StockTransaction) error {
	return r.locked(func() error {
		tx.ID = r.s.txSeq.Add(1)
		r.s.transactions = append(r.s.transactions, *tx)
		return nil
	})
}

func (r *txRepo) GetByID(ctx context.Context, id int64) (*entity.StockTransaction, error) {
	var out *entity.StockTransaction
	_ = r.locked(func() error {
		for i := range r.s.transactions {
			if r.s.transactions[i].ID == id {
				cp := r.s.transactions[i]
				out = &cp
				break
			}
		}
		return nil
	})
	return out, nil
}

func (r *txRepo) List(ctx context.Context, filter repository.TransactionFilter) ([]*entity.StockTransaction, error) {
	var list []*entity.StockTransaction
	_ = r.locked(func() error {
		for i := len(r.s.transactions) - 1; i >= 0; i-- {
			tx := r.s.transactions[i]
			if filter.ItemID != "" && tx.ItemID != filter.ItemID {
				continue
			}
			if filter.StructureID != "" && tx.StructureID != filter.StructureID {
				continue
			}
			if filter.Type != "" && tx.Type != filter.Type {
				continue
			}
			if filter.From != nil && tx.OccurredAt.Before(*filter.From) {
				continue
			}
			if filter.To != nil && tx.OccurredAt.After(*filter.To) {
				continue
			}
			cp := tx
			list = append(list, &cp)
		}
		return nil
	})
	return page(list, filter.Limit, filter.Offset), nil
}

// ── adjustments ─────────────────────────────────────────────────────────────

type adjRepo struct {
	s    *Store
	lock bool
}

func (r *adjRepo) locked(fn func() error) error {
	if r.lock {
		r.s.mu.Lock()
		defer r.s.mu.Unlock()
	}
	return fn()
}

func (r *adjRepo) Create(ctx context.Context, adj *entity.StockAdjustment) error {
	return r.locked(func() error {
		r.s.adjustments = append(r.s.adjustments, *adj)
		return nil
	})
}

func (r *adjRepo) GetByID(ctx context.Context, id string) (*entity.StockAdjustment, error) {
	var out *entity.StockAdjustment
	_ = r.locked(func() error {
		for i := range r.s.adjustments {
			if r.s.adjustments[i].ID == id {
				cp := r.s.adjustments[i]
				out = &cp
				break
			}
		}
		return nil
	})
	return out, nil
}

func (r *adjRepo) List(ctx context.Context, filter repository.AdjustmentFilter) ([]*entity.StockAdjustment, error) {
	var list []*entity.StockAdjustment
	_ = r.locked(func() error {
		for i := len(r.s.adjustments) - 1; i >= 0; i-- {
			adj := r.s.adjustments[i]
			if filter.ItemID != "" && adj.ItemID != filter.ItemID {
				continue
			}
			if filter.Reason != "" && adj.Reason != filter.Reason {
				continue
			}
			cp := adj
			list = append(list, &cp)
		}
		return nil
	})
	return page(list, filter.Limit, filter.Offset), nil
}

// ── structures ──────────────────────────────────────────────────────────────

type structRepo struct {
	s *Store
}

func (r *structRepo) Create(ctx context.Context, st *entity.Structure) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.structures {
		if existing.TempleID == st.TempleID && strings.EqualFold(existing.Name, st.Name) {
			return domain.ErrDuplicate
		}
	}
	r.s.structures[st.ID] = *st
	return nil
}

func (r *structRepo) GetByID(ctx context.Context, id string) (*entity.Structure, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if st, ok := r.s.structures[id]; ok {
		cp := st
		return &cp, nil
	}
	return nil, nil
}

func (r *structRepo) List(ctx context.Context, templeID string, limit, offset int) ([]*entity.Structure, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var list []*entity.Structure
	for _, st := range r.s.structures {
		if templeID != "" && st.TempleID != templeID {
			continue
		}
		cp := st
		list = append(list, &cp)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return page(list, limit, offset), nil
}

func page[T any](list []*T, limit, offset int) []*T {
	if offset >= len(list) {
		return nil
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
