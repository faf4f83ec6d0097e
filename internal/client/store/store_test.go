package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"taskpurse/internal/common"
)

type row struct {
	ID    string
	Title string
}

func newRows(ids ...string) []row {
	out := make([]row, 0, len(ids))
	for _, id := range ids {
		out = append(out, row{ID: id, Title: "title-" + id})
	}
	return out
}

func newCollection() *Collection[row] {
	return NewCollection(func(r row) string { return r.ID })
}

func ids(rows []row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func TestReplaceKeepsServerOrder(t *testing.T) {
	c := newCollection()
	c.Replace(newRows("c", "a", "b"))
	require.Equal(t, []string{"c", "a", "b"}, ids(c.Snapshot()))
}

func TestInsertPutsNewestFirst(t *testing.T) {
	c := newCollection()
	c.Replace(newRows("a"))
	c.Insert(row{ID: "b"})
	require.Equal(t, []string{"b", "a"}, ids(c.Snapshot()))
}

func TestApply_CommitSuccessVisibleWithoutRefetch(t *testing.T) {
	c := newCollection()
	c.Replace(newRows("a"))

	err := c.Apply(context.Background(), "a",
		func(r row) row { r.Title = "patched"; return r },
		func(ctx context.Context) error { return nil })
	require.NoError(t, err)

	got, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, "patched", got.Title)
}

func TestApply_CommitFailureRollsBack(t *testing.T) {
	c := newCollection()
	c.Replace(newRows("a"))
	boom := errors.New("boom")

	err := c.Apply(context.Background(), "a",
		func(r row) row { r.Title = "patched"; return r },
		func(ctx context.Context) error { return boom })
	require.ErrorIs(t, err, boom)

	got, _ := c.Get("a")
	require.Equal(t, "title-a", got.Title)
}

func TestApply_MissingRow(t *testing.T) {
	c := newCollection()
	err := c.Apply(context.Background(), "ghost",
		func(r row) row { return r },
		func(ctx context.Context) error { return nil })
	require.ErrorIs(t, err, common.ErrorNotFound)
}

func TestApply_PatchVisibleDuringCommit(t *testing.T) {
	c := newCollection()
	c.Replace(newRows("a"))

	err := c.Apply(context.Background(), "a",
		func(r row) row { r.Title = "optimistic"; return r },
		func(ctx context.Context) error {
			got, _ := c.Get("a")
			require.Equal(t, "optimistic", got.Title)
			return nil
		})
	require.NoError(t, err)
}

func TestDelete_SuccessRemovesLocallyWithoutRefetch(t *testing.T) {
	c := newCollection()
	c.Replace(newRows("a", "b", "c"))

	err := c.Delete(context.Background(), "b", func(ctx context.Context) error { return nil })
	require.NoError(t, err)
	require.Equal(t, []string{"a", "c"}, ids(c.Snapshot()))
}

func TestDelete_FailureRestoresRowAtPosition(t *testing.T) {
	c := newCollection()
	c.Replace(newRows("a", "b", "c"))
	boom := errors.New("boom")

	err := c.Delete(context.Background(), "b", func(ctx context.Context) error { return boom })
	require.ErrorIs(t, err, boom)
	require.Equal(t, []string{"a", "b", "c"}, ids(c.Snapshot()))
}

func TestSubscribeNotifyAndUnsubscribe(t *testing.T) {
	c := newCollection()
	var calls int
	unsubscribe := c.Subscribe(func() { calls++ })

	c.Replace(newRows("a"))
	require.Equal(t, 1, calls)

	_ = c.Apply(context.Background(), "a",
		func(r row) row { return r },
		func(ctx context.Context) error { return nil })
	// one notification for the optimistic patch; none extra on success
	require.Equal(t, 2, calls)

	unsubscribe()
	c.Clear()
	require.Equal(t, 2, calls)
}

func TestTwoSubscribersSeeSameData(t *testing.T) {
	c := newCollection()
	var first, second []string
	c.Subscribe(func() { first = ids(c.Snapshot()) })
	c.Subscribe(func() { second = ids(c.Snapshot()) })

	c.Replace(newRows("x", "y"))
	require.Equal(t, first, second)
	require.Equal(t, []string{"x", "y"}, first)
}

func TestSnapshotIsACopy(t *testing.T) {
	c := newCollection()
	c.Replace(newRows("a"))
	snap := c.Snapshot()
	snap[0].Title = "mutated"

	got, _ := c.Get("a")
	require.Equal(t, "title-a", got.Title)
}
