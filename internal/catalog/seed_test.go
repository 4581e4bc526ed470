package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Leganyst/wellness-catalog/internal/model"
	"github.com/Leganyst/wellness-catalog/internal/testutil"
)

func TestSeedRemote(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	conn := Remote{DB: db}
	fx := staticFixture()

	n, err := SeedRemote(ctx, conn, fx, testutil.DiscardLogger())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	var services []model.Service
	require.NoError(t, db.Order("id").Find(&services).Error)
	require.Len(t, services, 3)
	assert.True(t, services[0].Active)
	assert.False(t, services[2].Active, "inactive static services stay inactive")

	var providers []model.Provider
	require.NoError(t, db.Find(&providers).Error)
	assert.Len(t, providers, 2)

	// Повторный запуск ничего не делает.
	n, err = SeedRemote(ctx, conn, fx, testutil.DiscardLogger())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSeedRemote_Unconfigured(t *testing.T) {
	_, err := SeedRemote(context.Background(), Unconfigured{}, staticFixture(), testutil.DiscardLogger())
	require.ErrorIs(t, err, ErrNotConfigured)
}

// После засева id в БД совпадают со статическими, удалённая услуга не должна
// возвращаться из снапшота.
func TestSeedRemote_SoftDeleteWithOverlappingIDs(t *testing.T) {
	ctx := context.Background()
	db := testutil.NewSQLiteDB(t)
	conn := Remote{DB: db}
	fx := staticFixture()

	_, err := SeedRemote(ctx, conn, fx, testutil.DiscardLogger())
	require.NoError(t, err)

	src := NewRemoteSource(conn, fx.services, testutil.DiscardLogger())
	m := NewManager(src, fx, &recordingWriter{}, testutil.DiscardLogger())
	require.NoError(t, m.Initialize(ctx))

	got, ok := m.ServiceByID(ctx, 1)
	require.True(t, ok)
	require.Equal(t, "Reiki Healing", got.Name, "seeded ids follow the static file")

	deleted, err := m.DeleteService(ctx, 1)
	require.NoError(t, err)
	require.True(t, deleted)

	_, ok = m.ServiceByID(ctx, 1)
	assert.False(t, ok)
	for _, svc := range m.AllServices(ctx) {
		assert.NotEqual(t, int64(1), svc.ID)
	}

	// Засеянная неактивной услуга тоже не видна.
	_, ok = m.ServiceByID(ctx, 3)
	assert.False(t, ok)
}
