package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/minhasfinancas/api/internal/domain/entity"
	"github.com/minhasfinancas/api/internal/domain/errs"
	repo "github.com/minhasfinancas/api/internal/domain/repository"
	"github.com/minhasfinancas/api/pkg/helpers"
)

// Contract messages for entry validation, returned verbatim.
const (
	MsgInvalidDescription = "Inform a valid Description."
	MsgInvalidMonth       = "Inform a valid Month."
	MsgInvalidYear        = "Inform a valid Year."
	MsgInvalidUser        = "Inform a User."
	MsgInvalidValue       = "Inform a valid Value."
	MsgInvalidType        = "Inform a launch type."
	MsgInvalidStatus      = "Inform a valid Status."
	MsgEntryNotFound      = "Entry not found in database."
)

// EntryService handles CRUD, the filtered query and status transitions of
// entries. Every mutation path runs through Validate first.
type EntryService struct {
	Repo   repo.EntryRepository
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewEntryService(r repo.EntryRepository, users repo.UserRepository, logger *logrus.Logger) *EntryService {
	return &EntryService{Repo: r, Users: users, Logger: logger}
}

// Validate fails with a business-rule error on the first failing check.
// The order is part of the contract: description, month, year, user,
// value, type.
func (s *EntryService) Validate(ctx context.Context, e *entity.Entry) error {
	if strings.TrimSpace(e.Description) == "" {
		return errs.BusinessRule(MsgInvalidDescription)
	}
	if e.Month < 1 || e.Month > 12 {
		return errs.BusinessRule(MsgInvalidMonth)
	}
	if e.Year < 1000 || e.Year > 9999 {
		return errs.BusinessRule(MsgInvalidYear)
	}
	if e.UserID == 0 {
		return errs.BusinessRule(MsgInvalidUser)
	}
	if _, err := s.Users.FindByID(ctx, e.UserID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errs.BusinessRule(MsgInvalidUser)
		}
		return errs.Persistence(err)
	}
	if !e.Value.IsPositive() {
		return errs.BusinessRule(MsgInvalidValue)
	}
	if e.Type == "" {
		return errs.BusinessRule(MsgInvalidType)
	}
	return nil
}

// Save validates and persists a new entry. Status always starts as PENDING
// and the registration date is set to today, whatever the caller sent.
func (s *EntryService) Save(ctx context.Context, e *entity.Entry) (*entity.Entry, error) {
	if err := s.Validate(ctx, e); err != nil {
		return nil, err
	}
	e.Status = entity.StatusPending
	e.RegistrationDate = time.Now()

	saved, err := s.Repo.Save(ctx, e)
	if err != nil {
		helpers.LogError(s.Logger, "entry save failed", err, logrus.Fields{"user_id": e.UserID})
		return nil, errs.Persistence(err)
	}
	helpers.LogInfo(s.Logger, "entry created", logrus.Fields{"entry_id": saved.ID, "user_id": saved.UserID})
	return saved, nil
}

// Update validates and overwrites an existing entry. The entry must have
// been saved before; a zero id fails before the store is touched.
func (s *EntryService) Update(ctx context.Context, e *entity.Entry) (*entity.Entry, error) {
	if e.ID == 0 {
		return nil, errs.NotFound(MsgEntryNotFound)
	}
	if err := s.Validate(ctx, e); err != nil {
		return nil, err
	}
	saved, err := s.Repo.Save(ctx, e)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errs.NotFound(MsgEntryNotFound)
		}
		return nil, errs.Persistence(err)
	}
	return saved, nil
}

// Delete removes a previously saved entry.
func (s *EntryService) Delete(ctx context.Context, e *entity.Entry) error {
	if e.ID == 0 {
		return errs.NotFound(MsgEntryNotFound)
	}
	if err := s.Repo.Delete(ctx, e); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return errs.NotFound(MsgEntryNotFound)
		}
		return errs.Persistence(err)
	}
	helpers.LogInfo(s.Logger, "entry deleted", logrus.Fields{"entry_id": e.ID})
	return nil
}

// FindByID loads a single entry.
func (s *EntryService) FindByID(ctx context.Context, id int64) (*entity.Entry, error) {
	e, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, errs.NotFound(MsgEntryNotFound)
		}
		return nil, errs.Persistence(err)
	}
	return e, nil
}

// Find runs the example-based query. The service does not require a user
// on the probe; the HTTP adapter does.
func (s *EntryService) Find(ctx context.Context, f repo.EntryFilter) ([]*entity.Entry, error) {
	list, err := s.Repo.FindMatching(ctx, f)
	if err != nil {
		return nil, errs.Persistence(err)
	}
	return list, nil
}

// UpdateStatus assigns the new status and routes through Update, so the
// transition re-runs validation. Every transition between the three
// states is allowed.
func (s *EntryService) UpdateStatus(ctx context.Context, e *entity.Entry, status entity.EntryStatus) (*entity.Entry, error) {
	e.Status = status
	return s.Update(ctx, e)
}
