package model

import "gorm.io/datatypes"

// Provider: специалист, оказывающий услуги. Каталог провайдеров только
// читает, таблица нужна для переноса статических данных в БД.
type Provider struct {
	ID int64 `gorm:"primaryKey;autoIncrement:false" json:"id"`

	Name  string `gorm:"type:varchar(255);not null" json:"name"`
	Email string `gorm:"type:varchar(255)" json:"email"`
	Bio   string `gorm:"type:text" json:"bio"`

	Specialties datatypes.JSONSlice[string] `json:"specialties"`

	Verified bool `gorm:"not null;default:false" json:"verified"`
}
