package repo

import (
	"context"

	"github.com/KNICEX/surge-monitor/internal/entity"
	"gorm.io/gorm"
)

// SurgeRepo 只写的异动日志, 程序运行时不会读回
type SurgeRepo interface {
	CreateBatch(ctx context.Context, surges []entity.Surge) error
}

type surgeRepo struct {
	db *gorm.DB
}

func NewSurgeRepo(db *gorm.DB) SurgeRepo {
	return &surgeRepo{
		db: db,
	}
}

func (r *surgeRepo) CreateBatch(ctx context.Context, surges []entity.Surge) error {
	if len(surges) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&surges).Error
}
