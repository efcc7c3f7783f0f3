package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/minhasfinancas/api/internal/domain/entity"
	"github.com/minhasfinancas/api/internal/domain/errs"
	repo "github.com/minhasfinancas/api/internal/domain/repository"
	"github.com/minhasfinancas/api/pkg/helpers"
)

// Contract messages, returned verbatim to the client.
const (
	MsgEmailTaken      = "Already exists a user registered with this email."
	MsgUserNotFound    = "user not found for the given e-mail."
	MsgInvalidPassword = "Invalid password."
)

// UserService handles registration and password-based authentication.
// Stateless; safety is the safety of the repository backend. Email
// uniqueness is re-checked here but only a unique index in the store
// closes the race between ExistsByEmail and Save.
type UserService struct {
	Repo      repo.UserRepository
	Passwords helpers.Verifier
	Logger    *logrus.Logger
}

func NewUserService(r repo.UserRepository, v helpers.Verifier, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, Passwords: v, Logger: logger}
}

// Register persists a new user after enforcing email uniqueness. The
// password passes through the configured verifier before storage.
func (s *UserService) Register(ctx context.Context, u *entity.User) (*entity.User, error) {
	if err := s.ValidateEmail(ctx, u.Email); err != nil {
		return nil, err
	}
	stored, err := s.Passwords.Hash(u.Password)
	if err != nil {
		return nil, errs.Persistence(err)
	}
	u.Password = stored

	saved, err := s.Repo.Save(ctx, u)
	if errors.Is(err, repo.ErrDuplicateEmail) {
		// a concurrent registration can win between ExistsByEmail and Save
		return nil, errs.BusinessRule(MsgEmailTaken)
	}
	if err != nil {
		helpers.LogError(s.Logger, "user save failed", err, logrus.Fields{"email": u.Email})
		return nil, errs.Persistence(err)
	}
	helpers.LogInfo(s.Logger, "user registered", logrus.Fields{"user_id": saved.ID, "email": saved.Email})
	return saved, nil
}

// ValidateEmail fails with a business-rule error when the email is taken.
func (s *UserService) ValidateEmail(ctx context.Context, email string) error {
	exists, err := s.Repo.ExistsByEmail(ctx, email)
	if err != nil {
		return errs.Persistence(err)
	}
	if exists {
		return errs.BusinessRule(MsgEmailTaken)
	}
	return nil
}

// Authenticate looks the user up by email and checks the password.
// A matching password is the success path; mismatch fails. Mind the
// polarity of the comparison here: it has historically been easy to get
// backwards, and a flipped branch rejects every valid login.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errs.Authentication(MsgUserNotFound)
		}
		return nil, errs.Persistence(err)
	}
	if !s.Passwords.Verify(u.Password, password) {
		return nil, errs.Authentication(MsgInvalidPassword)
	}
	return u, nil
}

// FindByID loads a user; the entry adapter uses it to resolve probe owners.
func (s *UserService) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	u, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errs.NotFound("user not found")
		}
		return nil, errs.Persistence(err)
	}
	return u, nil
}
