package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Leganyst/wellness-catalog/internal/model"
)

// ProviderRepository пишется только при начальном наполнении, читает
// каталог провайдеров из статического снапшота.
type ProviderRepository interface {
	GetByID(ctx context.Context, id int64) (*model.Provider, error)
	Upsert(ctx context.Context, providers []model.Provider) error
}

type GormProviderRepository struct {
	db *gorm.DB
}

func NewGormProviderRepository(db *gorm.DB) *GormProviderRepository {
	return &GormProviderRepository{db: db}
}

func (r *GormProviderRepository) GetByID(ctx context.Context, id int64) (*model.Provider, error) {
	var p model.Provider
	if err := r.db.WithContext(ctx).First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *GormProviderRepository) Upsert(ctx context.Context, providers []model.Provider) error {
	if len(providers) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&providers).Error
}
