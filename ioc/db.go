package ioc

import (
	"github.com/KNICEX/surge-monitor/internal/repo"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 打开异动记录库, 未配置 dsn 时返回 nil
func InitDB(cfg SqliteConfig) *gorm.DB {
	if cfg.Dsn == "" {
		return nil
	}

	db, err := gorm.Open(sqlite.Open(cfg.Dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		panic(err)
	}
	if err = repo.InitTables(db); err != nil {
		panic(err)
	}
	return db
}
