package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/Leganyst/wellness-catalog/internal/model"
)

type ServiceRepository interface {
	ListActive(ctx context.Context) ([]model.Service, error)
	GetActiveByID(ctx context.Context, id int64) (*model.Service, error)
	// Без фильтра по active: неактивные услуги тоже можно обновлять.
	GetByID(ctx context.Context, id int64) (*model.Service, error)
	Create(ctx context.Context, service *model.Service) error
	UpdateColumns(ctx context.Context, id int64, cols map[string]any) error
	Deactivate(ctx context.Context, id int64) error
	ActiveCategories(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
}

type GormServiceRepository struct {
	db *gorm.DB
}

func NewGormServiceRepository(db *gorm.DB) *GormServiceRepository {
	return &GormServiceRepository{db: db}
}

func (r *GormServiceRepository) ListActive(ctx context.Context) ([]model.Service, error) {
	var services []model.Service
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("created_at DESC").
		Order("id DESC").
		Find(&services).Error
	if err != nil {
		return nil, err
	}
	return services, nil
}

func (r *GormServiceRepository) GetActiveByID(ctx context.Context, id int64) (*model.Service, error) {
	var s model.Service
	if err := r.db.WithContext(ctx).Where("id = ? AND active = ?", id, true).First(&s).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormServiceRepository) GetByID(ctx context.Context, id int64) (*model.Service, error) {
	var s model.Service
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *GormServiceRepository) Create(ctx context.Context, service *model.Service) error {
	return r.db.WithContext(ctx).Create(service).Error
}

func (r *GormServiceRepository) UpdateColumns(ctx context.Context, id int64, cols map[string]any) error {
	return r.db.WithContext(ctx).
		Model(&model.Service{}).
		Where("id = ?", id).
		Updates(cols).Error
}

func (r *GormServiceRepository) Deactivate(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).
		Model(&model.Service{}).
		Where("id = ?", id).
		Update("active", false).Error
}

// ActiveCategories возвращает категории активных услуг в порядке выдачи.
// Пустые и NULL пропускаются, дубли остаются.
func (r *GormServiceRepository) ActiveCategories(ctx context.Context) ([]string, error) {
	out := []string{}
	err := r.db.WithContext(ctx).
		Model(&model.Service{}).
		Where("active = ?", true).
		Where("category IS NOT NULL AND category <> ''").
		Order("created_at DESC").
		Order("id DESC").
		Pluck("category", &out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}
