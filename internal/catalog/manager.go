package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Leganyst/wellness-catalog/internal/model"
	"github.com/Leganyst/wellness-catalog/internal/static"
)

// StaticSource: статический набор данных.
type StaticSource interface {
	Services(ctx context.Context) ([]model.Service, error)
	Categories(ctx context.Context) ([]model.Category, error)
	Providers(ctx context.Context) ([]model.Provider, error)
}

// SnapshotWriter сохраняет снапшот услуг, когда удалённой БД нет.
// Ошибки менеджер только логирует.
type SnapshotWriter interface {
	SaveServices(ctx context.Context, services []model.Service) error
}

const (
	BackendRemote = "remote"
	BackendStatic = "static"
)

type snapshot struct {
	services   []model.Service
	categories []string
	providers  []model.Provider
}

// Manager: единая точка доступа к данным каталога. Если удалённая БД
// настроена, всё делегируется ей, иначе отдаётся снапшот из Initialize.
// Один экземпляр на процесс.
type Manager struct {
	remote *RemoteSource
	static StaticSource
	writer SnapshotWriter
	logger *slog.Logger

	mu    sync.RWMutex
	snap  snapshot
	ready bool
}

func NewManager(remote *RemoteSource, src StaticSource, writer SnapshotWriter, logger *slog.Logger) *Manager {
	return &Manager{
		remote: remote,
		static: src,
		writer: writer,
		logger: logger.With("component", "catalog_manager"),
	}
}

// Backend: какой бэкенд отвечает на чтение.
func (m *Manager) Backend() string {
	if m.remote.IsConfigured() {
		return BackendRemote
	}
	return BackendStatic
}

// Ready: завершился ли Initialize.
func (m *Manager) Ready() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.ready
}

// Initialize загружает снапшот. Методы чтения его не вызывают, до его
// завершения их результатам верить нельзя. Ошибка удалённой БД ведёт к
// статическим файлам, наружу возвращается только отмена контекста.
func (m *Manager) Initialize(ctx context.Context) error {
	if m.remote.IsConfigured() {
		snap, err := m.loadRemote(ctx)
		if err == nil {
			m.setSnapshot(snap)
			m.logger.Info("catalog initialized", "backend", BackendRemote,
				"services", len(snap.services), "categories", len(snap.categories), "providers", len(snap.providers))
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		m.logger.Warn("remote catalog failed, falling back to static data", "err", err)
	}

	snap, err := m.loadStatic(ctx)
	if err != nil {
		return err
	}
	m.setSnapshot(snap)
	m.logger.Info("catalog initialized", "backend", BackendStatic,
		"services", len(snap.services), "categories", len(snap.categories), "providers", len(snap.providers))
	return nil
}

func (m *Manager) loadRemote(ctx context.Context) (snapshot, error) {
	var snap snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		services, err := m.remote.FetchServices(gctx)
		snap.services = services
		return err
	})
	g.Go(func() error {
		categories, err := m.remote.FetchCategories(gctx)
		snap.categories = categories
		return err
	})
	g.Go(func() error {
		snap.providers = m.staticProviders(gctx)
		return nil
	})
	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}
	return snap, nil
}

func (m *Manager) loadStatic(ctx context.Context) (snapshot, error) {
	var snap snapshot
	var g errgroup.Group
	g.Go(func() error {
		services, err := m.static.Services(ctx)
		if err != nil {
			m.logger.Error("load static services", "err", err)
		}
		snap.services = orEmpty(slices.Clone(services))
		return nil
	})
	g.Go(func() error {
		categories, err := m.static.Categories(ctx)
		if err != nil {
			m.logger.Error("load static categories", "err", err)
		}
		snap.categories = static.CategoryNames(categories)
		return nil
	})
	g.Go(func() error {
		snap.providers = m.staticProviders(ctx)
		return nil
	})
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return snapshot{}, err
	}
	return snap, nil
}

func (m *Manager) staticProviders(ctx context.Context) []model.Provider {
	providers, err := m.static.Providers(ctx)
	if err != nil {
		m.logger.Error("load static providers", "err", err)
	}
	return orEmpty(providers)
}

func (m *Manager) setSnapshot(snap snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = snap
	m.ready = true
}

func (m *Manager) AllServices(ctx context.Context) []model.Service {
	if m.remote.IsConfigured() {
		return m.remote.AllServices(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return activeOnly(m.snap.services)
}

func (m *Manager) ServiceByID(ctx context.Context, id int64) (model.Service, bool) {
	if m.remote.IsConfigured() {
		return m.remote.ServiceByID(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return deref(findActive(m.snap.services, id))
}

// ServicesByCategory: активные услуги категории name без учёта регистра.
func (m *Manager) ServicesByCategory(ctx context.Context, name string) []model.Service {
	name = strings.TrimSpace(name)
	out := []model.Service{}
	for _, svc := range m.AllServices(ctx) {
		if strings.EqualFold(svc.CategoryLabel(), name) {
			out = append(out, svc)
		}
	}
	return out
}

func (m *Manager) AllCategories(ctx context.Context) []string {
	if m.remote.IsConfigured() {
		return m.remote.AllCategories(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	return orEmpty(slices.Clone(m.snap.categories))
}

// AddService работает только с удалённой БД, снапшот не расширяется.
func (m *Manager) AddService(ctx context.Context, draft model.ServiceDraft) (model.Service, error) {
	if m.remote.IsConfigured() {
		return m.remote.AddService(ctx, draft)
	}
	return model.Service{}, ErrNotConfigured
}

// UpdateService патчит строку в БД либо снапшот с последующим сохранением
// без гарантий.
func (m *Manager) UpdateService(ctx context.Context, id int64, patch model.ServicePatch) (model.Service, error) {
	if m.remote.IsConfigured() {
		return m.remote.UpdateService(ctx, id, patch)
	}

	m.mu.Lock()
	i := slices.IndexFunc(m.snap.services, func(s model.Service) bool { return s.ID == id })
	if i < 0 {
		m.mu.Unlock()
		return model.Service{}, fmt.Errorf("service with ID %d: %w", id, ErrServiceNotFound)
	}
	normalizePatch(m.snap.services[i], patch).Apply(&m.snap.services[i])
	updated := m.snap.services[i]
	services := slices.Clone(m.snap.services)
	m.mu.Unlock()

	m.save(ctx, services)
	return updated, nil
}

// DeleteService в БД удаляет мягко. Без БД услуга убирается из снапшота,
// и сохраняется укороченный список.
func (m *Manager) DeleteService(ctx context.Context, id int64) (bool, error) {
	if m.remote.IsConfigured() {
		return m.remote.DeleteService(ctx, id)
	}

	m.mu.Lock()
	i := slices.IndexFunc(m.snap.services, func(s model.Service) bool { return s.ID == id })
	if i < 0 {
		m.mu.Unlock()
		return false, nil
	}
	m.snap.services = slices.Delete(m.snap.services, i, i+1)
	services := slices.Clone(m.snap.services)
	m.mu.Unlock()

	m.save(ctx, services)
	return true, nil
}

func (m *Manager) save(ctx context.Context, services []model.Service) {
	if err := m.writer.SaveServices(ctx, services); err != nil {
		m.logger.Warn("persist services snapshot", "err", err)
	}
}

func (m *Manager) AllProviders() []model.Provider {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return orEmpty(slices.Clone(m.snap.providers))
}

func (m *Manager) ProviderByID(id int64) (model.Provider, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.snap.providers {
		if p.ID == id {
			return p, true
		}
	}
	return model.Provider{}, false
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
