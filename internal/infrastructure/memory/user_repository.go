// Package memory implements the repositories over in-process maps. It backs
// the test suites and local runs without postgres (DB_DRIVER=memory).
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/minhasfinancas/api/internal/domain/entity"
	repo "github.com/minhasfinancas/api/internal/domain/repository"
)

type UserRepository struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[int64]entity.User)}
}

func (r *UserRepository) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *u
	for _, other := range r.users {
		if other.Email == stored.Email && other.ID != stored.ID {
			return nil, repo.ErrDuplicateEmail
		}
	}
	if stored.ID == 0 {
		r.nextID++
		stored.ID = r.nextID
		stored.RegistrationDate = time.Now()
	} else if _, ok := r.users[stored.ID]; !ok {
		return nil, repo.ErrNotFound
	}
	r.users[stored.ID] = stored
	out := stored
	return &out, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	out := u
	return &out, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			out := u
			return &out, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.FindByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	return false, nil
}

var _ repo.UserRepository = (*UserRepository)(nil)
