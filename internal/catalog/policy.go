package catalog

import (
	"log/slog"
)

// Operation: имя вызова каталога для таблицы политик и логов.
type Operation string

const (
	OpListServices   Operation = "list_services"
	OpGetService     Operation = "get_service"
	OpListCategories Operation = "list_categories"
	OpAddService     Operation = "add_service"
	OpUpdateService  Operation = "update_service"
	OpDeleteService  Operation = "delete_service"
)

// Policy определяет, во что превращается ошибка бэкенда.
type Policy int

const (
	// Degrade логирует ошибку и отвечает запасными данными.
	Degrade Policy = iota
	// Propagate возвращает ошибку вызывающему.
	Propagate
)

func (p Policy) String() string {
	if p == Degrade {
		return "degrade"
	}
	return "propagate"
}

var policies = map[Operation]Policy{
	OpListServices:   Degrade,
	OpGetService:     Degrade,
	OpListCategories: Degrade,
	OpAddService:     Propagate,
	OpUpdateService:  Propagate,
	OpDeleteService:  Propagate,
}

// PolicyFor возвращает политику для op. Для неизвестных операций Propagate.
func PolicyFor(op Operation) Policy {
	if p, ok := policies[op]; ok {
		return p
	}
	return Propagate
}

// settle применяет политику op к результату вызова. При Degrade ошибка
// логируется, а ответ берётся из fallback().
func settle[T any](logger *slog.Logger, op Operation, val T, err error, fallback func() T) (T, error) {
	if err == nil {
		return val, nil
	}

	policy := PolicyFor(op)
	if policy == Degrade {
		logger.Warn("remote catalog read failed, using fallback", "op", op, "policy", policy, "err", err)
		return fallback(), nil
	}

	logger.Error("remote catalog write failed", "op", op, "policy", policy, "err", err)
	var zero T
	return zero, err
}
