// Package static работает со статическими JSON-данными: снапшот для старта
// и файловое хранилище за эндпоинтом записи.
package static

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Leganyst/wellness-catalog/internal/model"
)

const (
	ServicesFile   = "services.json"
	CategoriesFile = "categories.json"
	ProvidersFile  = "providers.json"
)

// DataDir: каталог данных внутри base path.
func DataDir(basePath string) string {
	return filepath.Join(basePath, "data")
}

// Source читает три файла данных из fsys.
type Source struct {
	fsys fs.FS
}

func NewSource(fsys fs.FS) *Source {
	return &Source{fsys: fsys}
}

// NewDirSource читает basePath/data с диска.
func NewDirSource(basePath string) *Source {
	return NewSource(os.DirFS(DataDir(basePath)))
}

func (s *Source) Services(ctx context.Context) ([]model.Service, error) {
	b, err := s.read(ctx, ServicesFile)
	if err != nil {
		return nil, err
	}
	services, err := decodeServices(b)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", ServicesFile, err)
	}
	return services, nil
}

func (s *Source) Categories(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	if err := s.decode(ctx, CategoriesFile, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Source) Providers(ctx context.Context) ([]model.Provider, error) {
	var out []model.Provider
	if err := s.decode(ctx, ProvidersFile, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CategoryNames: уникальные имена категорий в порядке файла.
func CategoryNames(categories []model.Category) []string {
	seen := make(map[string]struct{}, len(categories))
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		if c.Name == "" {
			continue
		}
		if _, ok := seen[c.Name]; ok {
			continue
		}
		seen[c.Name] = struct{}{}
		names = append(names, c.Name)
	}
	return names
}

func (s *Source) read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", name, err)
	}
	return b, nil
}

func (s *Source) decode(ctx context.Context, name string, v any) error {
	b, err := s.read(ctx, name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

// serviceRecord: нет ключа "active": услуга активна. Старые файлы
// этого поля не содержат.
type serviceRecord struct {
	model.Service
	Active *bool `json:"active"`
}

func decodeServices(b []byte) ([]model.Service, error) {
	var records []serviceRecord
	if err := json.Unmarshal(b, &records); err != nil {
		return nil, err
	}
	services := make([]model.Service, 0, len(records))
	for _, r := range records {
		svc := r.Service
		svc.Active = r.Active == nil || *r.Active
		services = append(services, svc)
	}
	return services, nil
}
