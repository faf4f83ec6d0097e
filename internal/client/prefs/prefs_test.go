package prefs

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"taskpurse/internal/common"
	"taskpurse/internal/logging"

	_ "modernc.org/sqlite"
)

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewSQLiteRepository(db)
}

func TestSQLiteRepository_RoundTrip(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.Get(ctx, common.PrefKeyTheme)
	require.ErrorIs(t, err, common.ErrorNotFound)

	require.NoError(t, repo.Set(ctx, common.PrefKeyTheme, common.ThemeDark))
	v, err := repo.Get(ctx, common.PrefKeyTheme)
	require.NoError(t, err)
	require.Equal(t, common.ThemeDark, v)

	// upsert overwrites
	require.NoError(t, repo.Set(ctx, common.PrefKeyTheme, common.ThemeLight))
	v, err = repo.Get(ctx, common.PrefKeyTheme)
	require.NoError(t, err)
	require.Equal(t, common.ThemeLight, v)

	require.NoError(t, repo.Clear(ctx))
	_, err = repo.Get(ctx, common.PrefKeyTheme)
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestStore_DefaultsWhenUnset(t *testing.T) {
	s := NewStore(setupRepo(t), discardLogger())
	ctx := context.Background()

	require.Equal(t, common.ThemeLight, s.Theme(ctx))
	require.Equal(t, "USD", s.Currency(ctx))
}

func TestStore_SetAndReadBack(t *testing.T) {
	repo := setupRepo(t)
	s := NewStore(repo, discardLogger())
	ctx := context.Background()

	s.SetTheme(ctx, common.ThemeDark)
	s.SetCurrency(ctx, "EUR")

	require.Equal(t, common.ThemeDark, s.Theme(ctx))
	require.Equal(t, "EUR", s.Currency(ctx))

	// a second store over the same repo simulates the next screen mount
	fresh := NewStore(repo, discardLogger())
	require.Equal(t, common.ThemeDark, fresh.Theme(ctx))
	require.Equal(t, "EUR", fresh.Currency(ctx))
}

func TestStore_IgnoresInvalidValues(t *testing.T) {
	s := NewStore(setupRepo(t), discardLogger())
	ctx := context.Background()

	s.SetTheme(ctx, "sepia")
	s.SetCurrency(ctx, "BTC")

	require.Equal(t, common.ThemeLight, s.Theme(ctx))
	require.Equal(t, "USD", s.Currency(ctx))
}

// failingRepo rejects every write.
type failingRepo struct{}

func (failingRepo) Get(ctx context.Context, key string) (string, error) {
	return "", common.ErrorNotFound
}
func (failingRepo) Set(ctx context.Context, key, value string) error {
	return errors.New("disk full")
}
func (failingRepo) Clear(ctx context.Context) error { return nil }

func TestStore_MemoryAuthoritativeAfterFailedWrite(t *testing.T) {
	s := NewStore(failingRepo{}, discardLogger())
	ctx := context.Background()

	s.SetTheme(ctx, common.ThemeDark)
	// persistence failed, but the session value still wins
	require.Equal(t, common.ThemeDark, s.Theme(ctx))
}
