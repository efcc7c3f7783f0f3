package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minhasfinancas/api/internal/domain/entity"
	repo "github.com/minhasfinancas/api/internal/domain/repository"
)

func intp(v int) *int { return &v }

func seedEntries(t *testing.T, r *EntryRepository) []*entity.Entry {
	t.Helper()
	ctx := context.Background()
	in := []*entity.Entry{
		{Description: "Salary", Month: 1, Year: 2024, Value: decimal.NewFromInt(5000), UserID: 1, Type: entity.TypeIncome, Status: entity.StatusPending},
		{Description: "Rent payment", Month: 1, Year: 2024, Value: decimal.NewFromInt(1200), UserID: 1, Type: entity.TypeExpense, Status: entity.StatusSettled},
		{Description: "salary bonus", Month: 2, Year: 2024, Value: decimal.NewFromInt(800), UserID: 2, Type: entity.TypeIncome, Status: entity.StatusPending},
	}
	out := make([]*entity.Entry, 0, len(in))
	for _, e := range in {
		saved, err := r.Save(ctx, e)
		require.NoError(t, err)
		out = append(out, saved)
	}
	return out
}

func TestEntrySaveAssignsIDAndRegistrationDate(t *testing.T) {
	r := NewEntryRepository()
	saved, err := r.Save(context.Background(), &entity.Entry{
		Description: "Groceries", Month: 3, Year: 2024,
		Value: decimal.NewFromInt(230), UserID: 1, Type: entity.TypeExpense,
	})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.False(t, saved.RegistrationDate.IsZero())
}

func TestEntryRoundTrip(t *testing.T) {
	r := NewEntryRepository()
	saved := seedEntries(t, r)[0]

	got, err := r.FindByID(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved.Description, got.Description)
	assert.Equal(t, saved.Month, got.Month)
	assert.Equal(t, saved.Year, got.Year)
	assert.True(t, saved.Value.Equal(got.Value))
	assert.Equal(t, saved.UserID, got.UserID)
	assert.Equal(t, saved.Type, got.Type)
}

func TestEntryOverwriteKeepsRegistrationDate(t *testing.T) {
	r := NewEntryRepository()
	saved := seedEntries(t, r)[0]

	updated := *saved
	updated.Description = "Salary (corrected)"
	updated.RegistrationDate = updated.RegistrationDate.AddDate(0, 0, 7)
	_, err := r.Save(context.Background(), &updated)
	require.NoError(t, err)

	got, err := r.FindByID(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Salary (corrected)", got.Description)
	assert.True(t, saved.RegistrationDate.Equal(got.RegistrationDate))
}

func TestEntryDelete(t *testing.T) {
	r := NewEntryRepository()
	saved := seedEntries(t, r)[0]

	require.NoError(t, r.Delete(context.Background(), saved))
	_, err := r.FindByID(context.Background(), saved.ID)
	assert.ErrorIs(t, err, repo.ErrNotFound)

	assert.ErrorIs(t, r.Delete(context.Background(), saved), repo.ErrNotFound)
}

func TestFindMatching(t *testing.T) {
	r := NewEntryRepository()
	seedEntries(t, r)
	ctx := context.Background()

	t.Run("by user and month", func(t *testing.T) {
		got, err := r.FindMatching(ctx, repo.EntryFilter{UserID: 1, Month: intp(1)})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("description is case-insensitive substring", func(t *testing.T) {
		got, err := r.FindMatching(ctx, repo.EntryFilter{Description: "SALARY"})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("empty description is not a filter", func(t *testing.T) {
		got, err := r.FindMatching(ctx, repo.EntryFilter{Description: "   "})
		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("type and status match exactly", func(t *testing.T) {
		got, err := r.FindMatching(ctx, repo.EntryFilter{Type: entity.TypeIncome, Status: entity.StatusPending})
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("no match", func(t *testing.T) {
		got, err := r.FindMatching(ctx, repo.EntryFilter{UserID: 2, Month: intp(1)})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("ascending id order", func(t *testing.T) {
		got, err := r.FindMatching(ctx, repo.EntryFilter{})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Less(t, got[0].ID, got[1].ID)
		assert.Less(t, got[1].ID, got[2].ID)
	})
}

func TestUserRepository(t *testing.T) {
	r := NewUserRepository()
	ctx := context.Background()

	saved, err := r.Save(ctx, &entity.User{Name: "usuario", Email: "usuario@email.com", Password: "123"})
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.False(t, saved.RegistrationDate.IsZero())

	exists, err := r.ExistsByEmail(ctx, "usuario@email.com")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := r.FindByEmail(ctx, "usuario@email.com")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, got.ID)

	_, err = r.FindByEmail(ctx, "nobody@x")
	assert.ErrorIs(t, err, repo.ErrNotFound)
}

func TestUserSaveRejectsDuplicateEmail(t *testing.T) {
	r := NewUserRepository()
	ctx := context.Background()

	first, err := r.Save(ctx, &entity.User{Name: "usuario", Email: "usuario@email.com", Password: "123"})
	require.NoError(t, err)

	_, err = r.Save(ctx, &entity.User{Name: "outro", Email: "usuario@email.com", Password: "456"})
	assert.ErrorIs(t, err, repo.ErrDuplicateEmail)

	// updating a different user onto a taken email is rejected too
	second, err := r.Save(ctx, &entity.User{Name: "outro", Email: "outro@email.com", Password: "456"})
	require.NoError(t, err)
	second.Email = first.Email
	_, err = r.Save(ctx, second)
	assert.ErrorIs(t, err, repo.ErrDuplicateEmail)

	// re-saving the same user under its own email is fine
	first.Name = "usuario atualizado"
	_, err = r.Save(ctx, first)
	assert.NoError(t, err)
}

func TestSaveUnknownIDReturnsNotFound(t *testing.T) {
	ctx := context.Background()

	users := NewUserRepository()
	_, err := users.Save(ctx, &entity.User{ID: 99, Name: "ghost", Email: "ghost@email.com", Password: "123"})
	assert.ErrorIs(t, err, repo.ErrNotFound)

	entries := NewEntryRepository()
	_, err = entries.Save(ctx, &entity.Entry{
		ID: 99, Description: "Ghost", Month: 1, Year: 2024,
		Value: decimal.NewFromInt(10), UserID: 1, Type: entity.TypeExpense, Status: entity.StatusPending,
	})
	assert.ErrorIs(t, err, repo.ErrNotFound)
}
