package monitor

import (
	"context"
	"time"

	"github.com/KNICEX/surge-monitor/internal/service/exchange"
)

// Thresholds 交易对 (BTCUSDT) -> 成交量异动阈值
type Thresholds map[string]float64

// State is built once at startup and never mutated afterwards.
// Every symbol in Symbols has an entry in Thresholds.
type State struct {
	Symbols    []exchange.Symbol
	Thresholds Thresholds
}

func (s *State) Threshold(symbol exchange.Symbol) (float64, bool) {
	t, ok := s.Thresholds[symbol.ToString()]
	return t, ok
}

// Surge 单个交易对的成交量异动
type Surge struct {
	Symbol          exchange.Symbol
	VolumeChangePct float64
	PriceChangePct  float64
	Threshold       float64
}

// Report 一次检查周期内所有异动, 顺序与交易对遍历顺序一致
type Report struct {
	CycleId   string
	CheckedAt time.Time
	Items     []Surge
}

func (r Report) Empty() bool {
	return len(r.Items) == 0
}

// ThresholdUnit 阈值的单位.
// 阈值由小数形式的变化率计算 (0.05 表示 5%), 而实时成交量变化是百分比 (5.0 表示 5%).
type ThresholdUnit string

const (
	// UnitFraction compares the percentage change with the fractional threshold as is.
	UnitFraction ThresholdUnit = "fraction"
	// UnitPercent scales the threshold by 100 before comparing.
	UnitPercent ThresholdUnit = "percent"
)

func (u ThresholdUnit) Valid() bool {
	return u == UnitFraction || u == UnitPercent
}

func (u ThresholdUnit) scale(threshold float64) float64 {
	if u == UnitPercent {
		return threshold * 100
	}
	return threshold
}

// SurgeService 执行一次检查周期
type SurgeService interface {
	Check(ctx context.Context) (Report, error)
}

type Notifier interface {
	Notify(ctx context.Context, text string) error
}

// Commentator 为报告生成一句附加说明
type Commentator interface {
	Comment(ctx context.Context, report Report) (string, error)
}
