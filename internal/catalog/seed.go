package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/Leganyst/wellness-catalog/internal/model"
	"github.com/Leganyst/wellness-catalog/internal/repository"
	"github.com/Leganyst/wellness-catalog/internal/utils"
)

// SeedRemote переносит статические услуги и провайдеров в удалённую БД,
// если таблица услуг пуста. ID выдаёт база, неактивные услуги остаются
// неактивными. Возвращает число записанных услуг.
func SeedRemote(ctx context.Context, conn Connection, src StaticSource, logger *slog.Logger) (int, error) {
	r, ok := conn.(Remote)
	if !ok {
		return 0, ErrNotConfigured
	}

	services, err := src.Services(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	providers, err := src.Providers(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}

	written, seededProviders := 0, 0
	err = r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		serviceRepo := repository.NewGormServiceRepository(tx)
		providerRepo := repository.NewGormProviderRepository(tx)

		n, err := serviceRepo.Count(ctx)
		if err != nil {
			return fmt.Errorf("count services: %w", err)
		}
		if n > 0 {
			logger.Info("remote catalog already has services, skipping seed", "services", n)
			return nil
		}

		for _, svc := range services {
			active := svc.Active
			row := model.Service{
				Name:        svc.Name,
				Description: svc.Description,
				Price:       utils.RoundPrice(svc.Price),
				Duration:    svc.Duration,
				Image:       svc.Image,
				Category:    svc.Category,
				Provider:    svc.Provider,
				Active:      true,
			}
			if err := serviceRepo.Create(ctx, &row); err != nil {
				return fmt.Errorf("create service %q: %w", svc.Name, err)
			}
			// Из-за default у колонки false при вставке превращается в true.
			if !active {
				if err := serviceRepo.Deactivate(ctx, row.ID); err != nil {
					return fmt.Errorf("deactivate service %q: %w", svc.Name, err)
				}
			}
			written++
		}

		if err := providerRepo.Upsert(ctx, providers); err != nil {
			return fmt.Errorf("upsert providers: %w", err)
		}
		seededProviders = len(providers)
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Info("seeded remote catalog", "services", written, "providers", seededProviders)
	return written, nil
}
