package persist

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Leganyst/wellness-catalog/internal/model"
)

const defaultTimeout = 10 * time.Second

// Writer отправляет снапшот услуг на эндпоинт, который перезаписывает
// файл services.json.
type Writer struct {
	endpoint string
	timeout  time.Duration
}

func NewWriter(endpoint string) *Writer {
	return &Writer{endpoint: endpoint, timeout: defaultTimeout}
}

// WithTimeout: копия w с другим таймаутом запроса.
func (w *Writer) WithTimeout(timeout time.Duration) *Writer {
	c := *w
	c.timeout = timeout
	return &c
}

func (w *Writer) SaveServices(ctx context.Context, services []model.Service) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if services == nil {
		services = []model.Service{}
	}

	agent := fiber.Post(w.endpoint)
	agent.JSON(services)
	agent.Timeout(w.timeout)

	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return fmt.Errorf("save services: %w", errors.Join(errs...))
	}
	if status < fiber.StatusOK || status >= fiber.StatusMultipleChoices {
		return fmt.Errorf("save services: endpoint returned %d: %s", status, truncate(body, 200))
	}
	return nil
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}

// Nop ничего не сохраняет, если эндпоинт записи не задан.
type Nop struct{}

func (Nop) SaveServices(context.Context, []model.Service) error { return nil }
