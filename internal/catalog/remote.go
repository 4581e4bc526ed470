package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"gorm.io/gorm"

	"github.com/Leganyst/wellness-catalog/internal/model"
	"github.com/Leganyst/wellness-catalog/internal/repository"
	"github.com/Leganyst/wellness-catalog/internal/utils"
)

// RemoteSource отдаёт каталог из удалённой БД. Чтение при ошибке уходит в
// запасной снапшот, запись возвращает ошибку (см. policies).
type RemoteSource struct {
	conn     Connection
	services repository.ServiceRepository
	fallback []model.Service
	logger   *slog.Logger
}

func NewRemoteSource(conn Connection, fallback []model.Service, logger *slog.Logger) *RemoteSource {
	s := &RemoteSource{
		conn:     conn,
		fallback: slices.Clone(fallback),
		logger:   logger.With("component", "remote_source"),
	}
	if r, ok := conn.(Remote); ok {
		s.services = repository.NewGormServiceRepository(r.DB)
	}
	return s
}

func (s *RemoteSource) IsConfigured() bool {
	_, ok := s.conn.(Remote)
	return ok
}

// FetchServices: AllServices без запасного варианта.
func (s *RemoteSource) FetchServices(ctx context.Context) ([]model.Service, error) {
	if !s.IsConfigured() {
		return nil, ErrNotConfigured
	}
	return s.services.ListActive(ctx)
}

// FetchCategories: AllCategories без подавления ошибки.
func (s *RemoteSource) FetchCategories(ctx context.Context) ([]string, error) {
	if !s.IsConfigured() {
		return nil, ErrNotConfigured
	}
	raw, err := s.services.ActiveCategories(ctx)
	if err != nil {
		return nil, err
	}
	return uniqueLabels(raw), nil
}

// AllServices возвращает активные услуги, новые первыми.
func (s *RemoteSource) AllServices(ctx context.Context) []model.Service {
	if !s.IsConfigured() {
		s.logger.Debug("remote catalog not configured, using fallback data")
		return activeOnly(s.fallback)
	}

	services, err := s.services.ListActive(ctx)
	services, _ = settle(s.logger, OpListServices, services, err, func() []model.Service {
		return activeOnly(s.fallback)
	})
	return services
}

// ServiceByID ищет активную услугу. Если строки в БД нет или запрос упал,
// ответ берётся из снапшота. Мягко удалённая строка даёт "не найдено".
func (s *RemoteSource) ServiceByID(ctx context.Context, id int64) (model.Service, bool) {
	fromFallback := func() *model.Service { return findActive(s.fallback, id) }

	if !s.IsConfigured() {
		return deref(fromFallback())
	}

	found, err := s.services.GetActiveByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Строка есть, но неактивна: услуга удалена, снапшот не спрашиваем.
		if _, getErr := s.services.GetByID(ctx, id); getErr == nil {
			return model.Service{}, false
		}
	}
	found, _ = settle(s.logger, OpGetService, found, err, fromFallback)
	return deref(found)
}

// AllCategories возвращает уникальные категории активных услуг. При ошибке
// запроса пустой список, а не категории из снапшота.
func (s *RemoteSource) AllCategories(ctx context.Context) []string {
	if !s.IsConfigured() {
		return categoriesOf(activeOnly(s.fallback))
	}

	categories, err := s.FetchCategories(ctx)
	categories, _ = settle(s.logger, OpListCategories, categories, err, func() []string {
		return []string{}
	})
	return categories
}

// AddService вставляет draft и возвращает сохранённую запись.
func (s *RemoteSource) AddService(ctx context.Context, draft model.ServiceDraft) (model.Service, error) {
	if !s.IsConfigured() {
		return model.Service{}, ErrNotConfigured
	}

	svc := model.Service{
		Name:        draft.Name,
		Description: draft.Description,
		Price:       utils.RoundPrice(draft.Price),
		Duration:    draft.Duration,
		Image:       draft.Image,
		Category:    draft.Category,
		Provider:    draft.Provider,
		Active:      true,
	}
	err := s.services.Create(ctx, &svc)
	return settle(s.logger, OpAddService, svc, err, nil)
}

// UpdateService применяет патч (в том числе к неактивной услуге) и
// возвращает строку, перечитанную после записи.
func (s *RemoteSource) UpdateService(ctx context.Context, id int64, patch model.ServicePatch) (model.Service, error) {
	if !s.IsConfigured() {
		return model.Service{}, ErrNotConfigured
	}

	current, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			err = fmt.Errorf("service with ID %d: %w", id, ErrServiceNotFound)
		} else {
			err = fmt.Errorf("database error: %w", err)
		}
		return settle(s.logger, OpUpdateService, model.Service{}, err, nil)
	}

	patch = normalizePatch(*current, patch)
	cols := patch.Columns()
	if len(cols) == 0 {
		s.logger.Debug("no fields to update", "id", id)
		return *current, nil
	}

	if err := s.services.UpdateColumns(ctx, id, cols); err != nil {
		return settle(s.logger, OpUpdateService, model.Service{}, fmt.Errorf("database error: %w", err), nil)
	}

	// Сам UPDATE изменение не подтверждает, подтверждает повторное чтение.
	updated, err := s.services.GetByID(ctx, id)
	if err != nil {
		err = fmt.Errorf("update may have succeeded but could not fetch updated service: %w", err)
		return settle(s.logger, OpUpdateService, model.Service{}, err, nil)
	}
	return *updated, nil
}

// DeleteService: мягкое удаление, сбрасываем active.
func (s *RemoteSource) DeleteService(ctx context.Context, id int64) (bool, error) {
	if !s.IsConfigured() {
		return false, ErrNotConfigured
	}
	err := s.services.Deactivate(ctx, id)
	return settle(s.logger, OpDeleteService, err == nil, err, nil)
}

// normalizePatch округляет цену и отбрасывает попытку вернуть
// удалённую услугу в активные.
func normalizePatch(current model.Service, patch model.ServicePatch) model.ServicePatch {
	if patch.Price != nil {
		rounded := utils.RoundPrice(*patch.Price)
		patch.Price = &rounded
	}
	if !current.Active && patch.Active != nil && *patch.Active {
		patch.Active = nil
	}
	return patch
}

func activeOnly(services []model.Service) []model.Service {
	out := make([]model.Service, 0, len(services))
	for _, svc := range services {
		if svc.Active {
			out = append(out, svc)
		}
	}
	return out
}

func findActive(services []model.Service, id int64) *model.Service {
	for i := range services {
		if services[i].ID == id && services[i].Active {
			svc := services[i]
			return &svc
		}
	}
	return nil
}

func categoriesOf(services []model.Service) []string {
	labels := make([]string, 0, len(services))
	for _, svc := range services {
		labels = append(labels, svc.CategoryLabel())
	}
	return uniqueLabels(labels)
}

func uniqueLabels(labels []string) []string {
	seen := make(map[string]struct{}, len(labels))
	out := make([]string, 0, len(labels))
	for _, l := range labels {
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		out = append(out, l)
	}
	return out
}

func deref(svc *model.Service) (model.Service, bool) {
	if svc == nil {
		return model.Service{}, false
	}
	return *svc, true
}
