package model

import "gorm.io/gorm"

// AutoMigrate выполняет миграцию таблиц каталога.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Service{},
		&Provider{},
	)
}
