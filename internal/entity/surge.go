package entity

import (
	"time"
)

// Surge 已上报的成交量异动, 只写入不回读
type Surge struct {
	Id              int64  `gorm:"primaryKey;autoIncrement"`
	CycleId         string `gorm:"index"`
	BaseSymbol      string `gorm:"index"`
	QuoteSymbol     string `gorm:"index"`
	VolumeChangePct float64
	PriceChangePct  float64
	Threshold       float64
	Notified        bool
	CreatedAt       time.Time `gorm:"index"`
}
