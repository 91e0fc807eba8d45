// Package storetest checks that a lessonplan.Store implementation behaves
// like the in-memory reference.
package storetest

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tordrt/biaslab/internal/lessonplan"
)

// Run exercises store. The store must start empty.
func Run(t *testing.T, store lessonplan.Store) {
	t.Helper()
	ctx := context.Background()
	created := time.Date(2025, 5, 16, 10, 30, 0, 0, time.UTC)

	plan := func(theme string, curriculum ...string) lessonplan.Plan {
		return lessonplan.Plan{
			Level:           lessonplan.HighSchool,
			Theme:           theme,
			Objectives:      "Spot biased recommendations",
			DurationMinutes: 60,
			Resources:       lessonplan.DefaultResources,
			Curriculum:      curriculum,
			Content:         "## Lesson Plan: " + theme + "\n",
			CreatedAt:       created,
		}
	}

	t.Run("empty session", func(t *testing.T) {
		got, err := store.List(ctx, "nobody")
		require.NoError(t, err)
		assert.Empty(t, got)

		_, err = store.Get(ctx, "nobody", 1)
		assert.ErrorIs(t, err, lessonplan.ErrNotFound)

		err = store.Delete(ctx, "nobody", 1)
		assert.ErrorIs(t, err, lessonplan.ErrNotFound)
	})

	t.Run("ids per session", func(t *testing.T) {
		a1, err := store.Save(ctx, "alice", plan("Facial recognition", "Science", "History"))
		require.NoError(t, err)
		a2, err := store.Save(ctx, "alice", plan("Chatbots"))
		require.NoError(t, err)
		b1, err := store.Save(ctx, "bob", plan("Search engines"))
		require.NoError(t, err)

		assert.Equal(t, 1, a1.ID)
		assert.Equal(t, 2, a2.ID)
		assert.Equal(t, 1, b1.ID)
	})

	t.Run("round trip", func(t *testing.T) {
		got, err := store.Get(ctx, "alice", 1)
		require.NoError(t, err)

		want := plan("Facial recognition", "Science", "History")
		want.ID = 1
		assert.Equal(t, want.Theme, got.Theme)
		assert.Equal(t, want.Level, got.Level)
		assert.Equal(t, want.Objectives, got.Objectives)
		assert.Equal(t, want.DurationMinutes, got.DurationMinutes)
		assert.Equal(t, want.Resources, got.Resources)
		assert.Equal(t, want.Curriculum, got.Curriculum)
		assert.Equal(t, want.Content, got.Content)
		assert.True(t, want.CreatedAt.Equal(got.CreatedAt), "created_at %v != %v", got.CreatedAt, want.CreatedAt)
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		got, err := store.List(ctx, "bob")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Search engines", got[0].Theme)

		_, err = store.Get(ctx, "bob", 2)
		assert.ErrorIs(t, err, lessonplan.ErrNotFound)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, "alice", 1))

		got, err := store.List(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].ID)

		next, err := store.Save(ctx, "alice", plan("Grading tools"))
		require.NoError(t, err)
		assert.Equal(t, 3, next.ID)

		got, err = store.List(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, 2, got[0].ID)
		assert.Equal(t, 3, got[1].ID)
		assert.Empty(t, got[0].Curriculum)
	})
}
