package repository

import (
	"context"

	"github.com/minhasfinancas/api/internal/domain/entity"
)

// UserRepository abstracts persistence of users. Save assigns ID and
// RegistrationDate on first insert and returns the stored copy.
type UserRepository interface {
	Save(ctx context.Context, u *entity.User) (*entity.User, error)
	FindByID(ctx context.Context, id int64) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
