package catalog

import (
	"gorm.io/gorm"

	"github.com/Leganyst/wellness-catalog/internal/config"
	"github.com/Leganyst/wellness-catalog/internal/db"
)

// Connection: удалённый бэкенд, определяется один раз при старте:
// Unconfigured или Remote.
type Connection interface {
	isConnection()
}

// Unconfigured: чтение из снапшота, запись падает.
type Unconfigured struct {
	Reason error
}

// Remote держит открытое подключение к БД.
type Remote struct {
	DB *gorm.DB
}

func (Unconfigured) isConnection() {}
func (Remote) isConnection()       {}

// Connect проверяет cfg и открывает БД.
func Connect(cfg config.RemoteConfig) Connection {
	gdb, err := db.NewGormDB(cfg)
	if err != nil {
		return Unconfigured{Reason: err}
	}
	return Remote{DB: gdb}
}
