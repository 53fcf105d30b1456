package repo

import (
	"github.com/KNICEX/surge-monitor/internal/entity"
	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&entity.Surge{})
}
