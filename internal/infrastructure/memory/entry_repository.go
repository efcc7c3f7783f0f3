package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/minhasfinancas/api/internal/domain/entity"
	repo "github.com/minhasfinancas/api/internal/domain/repository"
)

type EntryRepository struct {
	mu      sync.RWMutex
	nextID  int64
	entries map[int64]entity.Entry
}

func NewEntryRepository() *EntryRepository {
	return &EntryRepository{entries: make(map[int64]entity.Entry)}
}

func (r *EntryRepository) Save(ctx context.Context, e *entity.Entry) (*entity.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *e
	if stored.ID == 0 {
		r.nextID++
		stored.ID = r.nextID
		if stored.RegistrationDate.IsZero() {
			stored.RegistrationDate = time.Now()
		}
	} else {
		prev, ok := r.entries[stored.ID]
		if !ok {
			return nil, repo.ErrNotFound
		}
		// registration date is immutable once assigned
		stored.RegistrationDate = prev.RegistrationDate
	}
	r.entries[stored.ID] = stored
	out := stored
	return &out, nil
}

func (r *EntryRepository) FindByID(ctx context.Context, id int64) (*entity.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	out := e
	return &out, nil
}

func (r *EntryRepository) Delete(ctx context.Context, e *entity.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.entries[e.ID]; !ok {
		return repo.ErrNotFound
	}
	delete(r.entries, e.ID)
	return nil
}

// FindMatching applies the probe: description as case-insensitive substring,
// everything else by equality; zero/nil fields are wildcards. Results come
// back in ascending id order.
func (r *EntryRepository) FindMatching(ctx context.Context, f repo.EntryFilter) ([]*entity.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Entry, 0)
	for _, e := range r.entries {
		if !matches(e, f) {
			continue
		}
		cp := e
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func matches(e entity.Entry, f repo.EntryFilter) bool {
	if d := strings.TrimSpace(f.Description); d != "" {
		if !strings.Contains(strings.ToLower(e.Description), strings.ToLower(d)) {
			return false
		}
	}
	if f.Month != nil && e.Month != *f.Month {
		return false
	}
	if f.Year != nil && e.Year != *f.Year {
		return false
	}
	if f.UserID != 0 && e.UserID != f.UserID {
		return false
	}
	if f.Type != "" && e.Type != f.Type {
		return false
	}
	if f.Status != "" && e.Status != f.Status {
		return false
	}
	return true
}

var _ repo.EntryRepository = (*EntryRepository)(nil)
