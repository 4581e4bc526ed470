package catalog

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Leganyst/wellness-catalog/internal/model"
	"github.com/Leganyst/wellness-catalog/internal/testutil"
)

type fakeStatic struct {
	services   []model.Service
	categories []model.Category
	providers  []model.Provider
	err        error
}

func (f *fakeStatic) Services(context.Context) ([]model.Service, error) {
	return f.services, f.err
}

func (f *fakeStatic) Categories(context.Context) ([]model.Category, error) {
	return f.categories, f.err
}

func (f *fakeStatic) Providers(context.Context) ([]model.Provider, error) {
	return f.providers, f.err
}

type recordingWriter struct {
	mu    sync.Mutex
	saves [][]model.Service
	err   error
}

func (w *recordingWriter) SaveServices(_ context.Context, services []model.Service) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.saves = append(w.saves, services)
	return w.err
}

func (w *recordingWriter) count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.saves)
}

func staticFixture() *fakeStatic {
	return &fakeStatic{
		services: []model.Service{
			{ID: 1, Name: "Reiki Healing", Description: "Energy work", Price: 75, Category: testutil.Ptr("Energy Healing"), Active: true},
			{ID: 2, Name: "Hatha Yoga", Description: "Gentle flow", Price: 25, Category: testutil.Ptr("Movement"), Active: true},
			{ID: 3, Name: "Old Tarot", Description: "Retired", Price: 40, Category: testutil.Ptr("Divination"), Active: false},
		},
		categories: []model.Category{
			{ID: 1, Name: "Energy Healing"},
			{ID: 2, Name: "Movement"},
			{ID: 3, Name: "Divination"},
		},
		providers: []model.Provider{
			{ID: 10, Name: "Dr. Sarah Chen", Email: "sarah@example.com", Specialties: []string{"Reiki"}, Verified: true},
			{ID: 11, Name: "Maya Patel", Email: "maya@example.com"},
		},
	}
}

var errStatic = errors.New("static data unavailable")

func newRemote(t *testing.T, fallback []model.Service) (*RemoteSource, *gorm.DB) {
	t.Helper()
	db := testutil.NewSQLiteDB(t)
	return NewRemoteSource(Remote{DB: db}, fallback, testutil.DiscardLogger()), db
}

func newUnconfigured(fallback []model.Service) *RemoteSource {
	return NewRemoteSource(Unconfigured{Reason: errors.New("no url")}, fallback, testutil.DiscardLogger())
}

// breakDB закрывает пул, после этого любой запрос падает.
func breakDB(t *testing.T, db *gorm.DB) {
	t.Helper()
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func addRemote(t *testing.T, src *RemoteSource, name, category string) model.Service {
	t.Helper()
	draft := model.ServiceDraft{Name: name, Description: name + " session", Price: 50}
	if category != "" {
		draft.Category = testutil.Ptr(category)
	}
	svc, err := src.AddService(context.Background(), draft)
	require.NoError(t, err)
	return svc
}
