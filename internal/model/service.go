package model

import (
	"strings"
	"time"
)

// services
type Service struct {
	ID int64 `gorm:"primaryKey;autoIncrement" json:"id"`

	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Description string  `gorm:"type:text;not null" json:"description"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`

	// Свободный текст, показывается как есть: "60 minutes", "1h 30m".
	Duration *string `gorm:"type:text" json:"duration,omitempty"`
	Image    *string `gorm:"type:text" json:"image,omitempty"`

	// Просто подписи, не внешние ключи.
	Category *string `gorm:"type:varchar(255);index" json:"category,omitempty"`
	Provider *string `gorm:"type:varchar(255)" json:"provider,omitempty"`

	// false: услуга мягко удалена.
	Active bool `gorm:"not null;default:true;index" json:"active"`

	CreatedAt time.Time `gorm:"not null;index" json:"created_at,omitzero"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at,omitzero"`
}

// CategoryLabel возвращает категорию или "", если её нет.
func (s Service) CategoryLabel() string {
	if s.Category == nil {
		return ""
	}
	return strings.TrimSpace(*s.Category)
}

// ProviderLabel возвращает провайдера или "", если его нет.
func (s Service) ProviderLabel() string {
	if s.Provider == nil {
		return ""
	}
	return strings.TrimSpace(*s.Provider)
}

// ServiceDraft: услуга, которая ещё не сохранена.
type ServiceDraft struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    *string `json:"duration,omitempty"`
	Image       *string `json:"image,omitempty"`
	Category    *string `json:"category,omitempty"`
	Provider    *string `json:"provider,omitempty"`
}

// ServicePatch: частичное обновление. Писать можно только эти поля,
// nil означает, что поле не передано.
type ServicePatch struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Provider    *string  `json:"provider,omitempty"`
	Duration    *string  `json:"duration,omitempty"`
	Active      *bool    `json:"active,omitempty"`
}

// Columns возвращает переданные поля по именам колонок.
func (p ServicePatch) Columns() map[string]any {
	cols := make(map[string]any, 8)
	if p.Name != nil {
		cols["name"] = *p.Name
	}
	if p.Description != nil {
		cols["description"] = *p.Description
	}
	if p.Price != nil {
		cols["price"] = *p.Price
	}
	if p.Image != nil {
		cols["image"] = *p.Image
	}
	if p.Category != nil {
		cols["category"] = *p.Category
	}
	if p.Provider != nil {
		cols["provider"] = *p.Provider
	}
	if p.Duration != nil {
		cols["duration"] = *p.Duration
	}
	if p.Active != nil {
		cols["active"] = *p.Active
	}
	return cols
}

// IsEmpty: в патче нет ни одного поля.
func (p ServicePatch) IsEmpty() bool {
	return len(p.Columns()) == 0
}

// Apply переносит переданные поля в s.
func (p ServicePatch) Apply(s *Service) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.Image != nil {
		s.Image = p.Image
	}
	if p.Category != nil {
		s.Category = p.Category
	}
	if p.Provider != nil {
		s.Provider = p.Provider
	}
	if p.Duration != nil {
		s.Duration = p.Duration
	}
	if p.Active != nil {
		s.Active = *p.Active
	}
}
