package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Leganyst/wellness-catalog/internal/model"
	"github.com/Leganyst/wellness-catalog/internal/testutil"
)

func seedService(t *testing.T, repo *GormServiceRepository, name, category string) *model.Service {
	t.Helper()
	s := &model.Service{
		Name:        name,
		Description: name + " session",
		Price:       40,
		Active:      true,
	}
	if category != "" {
		s.Category = testutil.Ptr(category)
	}
	require.NoError(t, repo.Create(context.Background(), s))
	require.NotZero(t, s.ID)
	return s
}

func TestGormServiceRepository_ListActiveSkipsDeactivated(t *testing.T) {
	ctx := context.Background()
	repo := NewGormServiceRepository(testutil.NewSQLiteDB(t))

	first := seedService(t, repo, "Reiki", "Energy")
	second := seedService(t, repo, "Yoga", "Movement")
	gone := seedService(t, repo, "Sound bath", "Energy")
	require.NoError(t, repo.Deactivate(ctx, gone.ID))

	got, err := repo.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	// новые первыми
	assert.Equal(t, second.ID, got[0].ID)
	assert.Equal(t, first.ID, got[1].ID)
}

func TestGormServiceRepository_GetByIDIgnoresActive(t *testing.T) {
	ctx := context.Background()
	repo := NewGormServiceRepository(testutil.NewSQLiteDB(t))

	s := seedService(t, repo, "Massage", "Bodywork")
	require.NoError(t, repo.Deactivate(ctx, s.ID))

	_, err := repo.GetActiveByID(ctx, s.ID)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}

func TestGormServiceRepository_UpdateColumns(t *testing.T) {
	ctx := context.Background()
	repo := NewGormServiceRepository(testutil.NewSQLiteDB(t))

	s := seedService(t, repo, "Massage", "Bodywork")
	require.NoError(t, repo.UpdateColumns(ctx, s.ID, map[string]any{
		"name":  "Deep tissue massage",
		"price": 85.5,
	}))

	got, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Deep tissue massage", got.Name)
	assert.InDelta(t, 85.5, got.Price, 0.001)
	assert.Equal(t, s.Description, got.Description)
}

func TestGormServiceRepository_ActiveCategories(t *testing.T) {
	ctx := context.Background()
	repo := NewGormServiceRepository(testutil.NewSQLiteDB(t))

	seedService(t, repo, "Reiki", "Energy")
	seedService(t, repo, "Yoga", "Movement")
	seedService(t, repo, "Chakra balancing", "Energy")
	seedService(t, repo, "Consultation", "")
	require.NoError(t, repo.Create(ctx, &model.Service{Name: "Intake", Description: "Intake call", Price: 10, Category: testutil.Ptr(""), Active: true}))
	hidden := seedService(t, repo, "Tarot", "Divination")
	require.NoError(t, repo.Deactivate(ctx, hidden.ID))

	got, err := repo.ActiveCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Energy", "Movement", "Energy"}, got)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 6, n)
}

func TestGormProviderRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := NewGormProviderRepository(testutil.NewSQLiteDB(t))

	providers := []model.Provider{
		{ID: 1, Name: "Dr. Sarah Chen", Email: "sarah@example.com", Specialties: []string{"Acupuncture", "Herbalism"}, Verified: true},
		{ID: 2, Name: "Maya Patel", Email: "maya@example.com"},
	}
	require.NoError(t, repo.Upsert(ctx, providers))

	providers[1].Bio = "Yoga teacher"
	require.NoError(t, repo.Upsert(ctx, providers))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Acupuncture", "Herbalism"}, []string(got.Specialties))
	assert.True(t, got.Verified)

	got, err = repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "Yoga teacher", got.Bio)
}
