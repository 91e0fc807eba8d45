package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tordrt/biaslab/internal/lessonplan"
	"github.com/tordrt/biaslab/internal/lessonplan/storetest"
)

func newTestSQLiteStore(t *testing.T) (*SQLPlanStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plans.db")
	store, err := NewSQLitePlanStore(context.Background(), path)
	require.NoError(t, err)
	return store, path
}

func TestSQLitePlanStore(t *testing.T) {
	store, _ := newTestSQLiteStore(t)
	defer func() { _ = store.Close() }()

	storetest.Run(t, store)
}

func TestSQLitePlanStorePersists(t *testing.T) {
	ctx := context.Background()
	store, path := newTestSQLiteStore(t)

	saved, err := store.Save(ctx, "s", lessonplan.Plan{Theme: "Persisted", Curriculum: []string{"Science"}})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	reopened, err := NewSQLitePlanStore(ctx, path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	got, err := reopened.Get(ctx, "s", saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Persisted", got.Theme)
	assert.Equal(t, []string{"Science"}, got.Curriculum)
}

func TestNewSQLitePlanStoreBadPath(t *testing.T) {
	_, err := NewSQLitePlanStore(context.Background(), filepath.Join(t.TempDir(), "missing", "dir", "plans.db"))
	assert.Error(t, err)
}

func TestCurriculumEncoding(t *testing.T) {
	tests := []struct {
		name     string
		subjects []string
		encoded  string
		decoded  []string
	}{
		{name: "nil", subjects: nil, encoded: "[]", decoded: nil},
		{name: "empty", subjects: []string{}, encoded: "[]", decoded: nil},
		{name: "two", subjects: []string{"History", "Science"}, encoded: `["History","Science"]`, decoded: []string{"History", "Science"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc, err := encodeCurriculum(tt.subjects)
			require.NoError(t, err)
			assert.Equal(t, tt.encoded, enc)

			dec, err := decodeCurriculum(enc)
			require.NoError(t, err)
			assert.Equal(t, tt.decoded, dec)
		})
	}

	_, err := decodeCurriculum("not json")
	assert.Error(t, err)
}
