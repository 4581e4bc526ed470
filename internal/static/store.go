package static

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/Leganyst/wellness-catalog/internal/model"
)

// Store: файл услуг за эндпоинтом записи.
type Store struct {
	mu   sync.Mutex
	path string
}

func NewStore(basePath string) *Store {
	return &Store{path: filepath.Join(DataDir(basePath), ServicesFile)}
}

// List читает услуги, нет файла: пустой список.
func (s *Store) List() ([]model.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Replace перезаписывает файл.
func (s *Store) Replace(services []model.Service) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(services)
}

// Append добавляет svc активной записью с id max+1.
func (s *Store) Append(svc model.Service) (model.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	services, err := s.load()
	if err != nil {
		return model.Service{}, err
	}

	var maxID int64
	for _, existing := range services {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	svc.ID = maxID + 1
	svc.Active = true

	if err := s.save(append(services, svc)); err != nil {
		return model.Service{}, err
	}
	return svc, nil
}

func (s *Store) load() ([]model.Service, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []model.Service{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read services: %w", err)
	}
	services, err := decodeServices(b)
	if err != nil {
		return nil, fmt.Errorf("decode services: %w", err)
	}
	return services, nil
}

func (s *Store) save(services []model.Service) error {
	if services == nil {
		services = []model.Service{}
	}
	b, err := json.MarshalIndent(services, "", "  ")
	if err != nil {
		return fmt.Errorf("encode services: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".services-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return fmt.Errorf("write services: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace services: %w", err)
	}
	return nil
}
