package application

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhasfinancas/api/internal/domain/entity"
	"github.com/minhasfinancas/api/internal/domain/errs"
	repo "github.com/minhasfinancas/api/internal/domain/repository"
	"github.com/minhasfinancas/api/internal/infrastructure/memory"
	"github.com/minhasfinancas/api/pkg/helpers"
)

type entryFixture struct {
	users   *UserService
	entries *EntryService
	owner   *entity.User
}

func newEntryFixture(t *testing.T) *entryFixture {
	t.Helper()
	users := NewUserService(memory.NewUserRepository(), helpers.PlainVerifier{}, nil)
	entries := NewEntryService(memory.NewEntryRepository(), users.Repo, nil)

	owner, err := users.Register(context.Background(), &entity.User{
		Name: "usuario", Email: "usuario@email.com", Password: "123",
	})
	require.NoError(t, err)
	return &entryFixture{users: users, entries: entries, owner: owner}
}

func (f *entryFixture) validEntry() *entity.Entry {
	return &entity.Entry{
		Description: "Salary",
		Month:       1,
		Year:        2024,
		Value:       decimal.NewFromInt(5000),
		UserID:      f.owner.ID,
		Type:        entity.TypeIncome,
	}
}

func requireRule(t *testing.T, err error, msg string) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errs.IsBusinessRule(err))
	assert.Equal(t, msg, err.Error())
}

// Fixing one field at a time must walk the error message through all six
// checks in order, never skipping.
func TestValidateCascade(t *testing.T) {
	f := newEntryFixture(t)
	ctx := context.Background()
	e := &entity.Entry{}

	requireRule(t, f.entries.Validate(ctx, e), MsgInvalidDescription)

	e.Description = "   "
	requireRule(t, f.entries.Validate(ctx, e), MsgInvalidDescription)

	e.Description = "Salary"
	requireRule(t, f.entries.Validate(ctx, e), MsgInvalidMonth)

	e.Month = 13
	requireRule(t, f.entries.Validate(ctx, e), MsgInvalidMonth)

	e.Month = 1
	requireRule(t, f.entries.Validate(ctx, e), MsgInvalidYear)

	e.Year = 202
	requireRule(t, f.entries.Validate(ctx, e), MsgInvalidYear)

	e.Year = 2024
	requireRule(t, f.entries.Validate(ctx, e), MsgInvalidUser)

	e.UserID = 999 // unknown user
	requireRule(t, f.entries.Validate(ctx, e), MsgInvalidUser)

	e.UserID = f.owner.ID
	requireRule(t, f.entries.Validate(ctx, e), MsgInvalidValue)

	e.Value = decimal.NewFromInt(-10)
	requireRule(t, f.entries.Validate(ctx, e), MsgInvalidValue)

	e.Value = decimal.NewFromInt(100)
	requireRule(t, f.entries.Validate(ctx, e), MsgInvalidType)

	e.Type = entity.TypeIncome
	require.NoError(t, f.entries.Validate(ctx, e))
}

func TestSaveDefaults(t *testing.T) {
	f := newEntryFixture(t)
	ctx := context.Background()

	e := f.validEntry()
	e.Status = entity.StatusSettled // caller input must be overridden
	saved, err := f.entries.Save(ctx, e)
	require.NoError(t, err)

	assert.NotZero(t, saved.ID)
	assert.Equal(t, entity.StatusPending, saved.Status)
	assert.False(t, saved.RegistrationDate.IsZero())
}

func TestSaveInvalidWritesNothing(t *testing.T) {
	f := newEntryFixture(t)
	ctx := context.Background()

	e := f.validEntry()
	e.Value = decimal.Zero
	_, err := f.entries.Save(ctx, e)
	requireRule(t, err, MsgInvalidValue)

	list, err := f.entries.Find(ctx, repo.EntryFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSaveRoundTrip(t *testing.T) {
	f := newEntryFixture(t)
	ctx := context.Background()

	saved, err := f.entries.Save(ctx, f.validEntry())
	require.NoError(t, err)

	got, err := f.entries.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Salary", got.Description)
	assert.Equal(t, 1, got.Month)
	assert.Equal(t, 2024, got.Year)
	assert.True(t, decimal.NewFromInt(5000).Equal(got.Value))
	assert.Equal(t, f.owner.ID, got.UserID)
	assert.Equal(t, entity.TypeIncome, got.Type)
}

func TestUpdate(t *testing.T) {
	f := newEntryFixture(t)
	ctx := context.Background()

	saved, err := f.entries.Save(ctx, f.validEntry())
	require.NoError(t, err)

	saved.Description = "Salary (revised)"
	saved.Value = decimal.NewFromInt(5200)
	updated, err := f.entries.Update(ctx, saved)
	require.NoError(t, err)

	got, err := f.entries.FindByID(ctx, updated.ID)
	require.NoError(t, err)
	assert.Equal(t, "Salary (revised)", got.Description)
	assert.True(t, decimal.NewFromInt(5200).Equal(got.Value))
}

func TestUpdateRequiresID(t *testing.T) {
	f := newEntryFixture(t)

	_, err := f.entries.Update(context.Background(), f.validEntry())
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
	assert.Equal(t, MsgEntryNotFound, err.Error())
}

func TestUpdateRevalidates(t *testing.T) {
	f := newEntryFixture(t)
	ctx := context.Background()

	saved, err := f.entries.Save(ctx, f.validEntry())
	require.NoError(t, err)

	saved.Month = 0
	_, err = f.entries.Update(ctx, saved)
	requireRule(t, err, MsgInvalidMonth)
}

func TestDeleteRequiresID(t *testing.T) {
	f := newEntryFixture(t)
	ctx := context.Background()

	err := f.entries.Delete(ctx, f.validEntry())
	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))

	saved, err := f.entries.Save(ctx, f.validEntry())
	require.NoError(t, err)
	require.NoError(t, f.entries.Delete(ctx, saved))

	_, err = f.entries.FindByID(ctx, saved.ID)
	assert.True(t, errs.IsNotFound(err))
}

func TestFindFiltersByMonth(t *testing.T) {
	f := newEntryFixture(t)
	ctx := context.Background()

	for _, month := range []int{1, 2, 3} {
		e := f.validEntry()
		e.Month = month
		_, err := f.entries.Save(ctx, e)
		require.NoError(t, err)
	}

	month := 1
	list, err := f.entries.Find(ctx, repo.EntryFilter{UserID: f.owner.ID, Month: &month})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 1, list[0].Month)
}

func TestUpdateStatus(t *testing.T) {
	f := newEntryFixture(t)
	ctx := context.Background()

	saved, err := f.entries.Save(ctx, f.validEntry())
	require.NoError(t, err)
	require.Equal(t, entity.StatusPending, saved.Status)

	before := *saved
	updated, err := f.entries.UpdateStatus(ctx, saved, entity.StatusSettled)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusSettled, updated.Status)

	got, err := f.entries.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusSettled, got.Status)
	assert.Equal(t, before.Description, got.Description)
	assert.Equal(t, before.Month, got.Month)
	assert.Equal(t, before.Year, got.Year)
	assert.True(t, before.Value.Equal(got.Value))
	assert.Equal(t, before.UserID, got.UserID)
	assert.Equal(t, before.Type, got.Type)
}

// Every transition between the three states is allowed, including back
// out of CANCELLED.
func TestStatusTransitionsUnrestricted(t *testing.T) {
	f := newEntryFixture(t)
	ctx := context.Background()

	saved, err := f.entries.Save(ctx, f.validEntry())
	require.NoError(t, err)

	for _, status := range []entity.EntryStatus{
		entity.StatusSettled,
		entity.StatusCancelled,
		entity.StatusPending,
	} {
		updated, err := f.entries.UpdateStatus(ctx, saved, status)
		require.NoError(t, err)
		assert.Equal(t, status, updated.Status)
		saved = updated
	}
}
