package exchange

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Interval string

func (i Interval) ToString() string {
	return string(i)
}

const (
	Interval1m  Interval = "1m"
	Interval3m  Interval = "3m"
	Interval5m  Interval = "5m"
	Interval15m Interval = "15m"
	Interval30m Interval = "30m"
	Interval1h  Interval = "1h"
	Interval2h  Interval = "2h"
	Interval4h  Interval = "4h"
	Interval6h  Interval = "6h"
	Interval8h  Interval = "8h"
	Interval12h Interval = "12h"
	Interval1d  Interval = "1d"
	Interval3d  Interval = "3d"
	Interval1w  Interval = "1w"
)

var intervalDurations = map[Interval]time.Duration{
	Interval1m:  time.Minute,
	Interval3m:  3 * time.Minute,
	Interval5m:  5 * time.Minute,
	Interval15m: 15 * time.Minute,
	Interval30m: 30 * time.Minute,
	Interval1h:  time.Hour,
	Interval2h:  2 * time.Hour,
	Interval4h:  4 * time.Hour,
	Interval6h:  6 * time.Hour,
	Interval8h:  8 * time.Hour,
	Interval12h: 12 * time.Hour,
	Interval1d:  24 * time.Hour,
	Interval3d:  72 * time.Hour,
	Interval1w:  7 * 24 * time.Hour,
}

// Duration 返回单根K线的时长, 未知周期返回 0
func (i Interval) Duration() time.Duration {
	return intervalDurations[i]
}

func (i Interval) Valid() bool {
	_, ok := intervalDurations[i]
	return ok
}

type Kline struct {
	OpenTime         time.Time
	CloseTime        time.Time
	Open             decimal.Decimal
	Close            decimal.Decimal
	High             decimal.Decimal
	Low              decimal.Decimal
	Volume           decimal.Decimal // 成交量
	QuoteAssetVolume decimal.Decimal // 成交额
	TradeNum         int64           // 成交笔数
}

type MarketService interface {
	// GetHistoricalKlines 获取 lookback 时间窗口内的全部K线, 旧的在前
	GetHistoricalKlines(ctx context.Context, symbol Symbol, interval Interval, lookback time.Duration) ([]Kline, error)
	// GetRecentKlines 获取最近 count 根K线 (最后一根可能尚未收盘)
	GetRecentKlines(ctx context.Context, symbol Symbol, interval Interval, count int) ([]Kline, error)
}

var lookbackUnits = map[string]time.Duration{
	"minute": time.Minute,
	"hour":   time.Hour,
	"day":    24 * time.Hour,
	"week":   7 * 24 * time.Hour,
}

// ParseLookback parses windows written like "7 days", "7 days ago UTC" or "12 hours".
// Plain Go durations ("168h") are accepted too.
func ParseLookback(s string) (time.Duration, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if d, err := time.ParseDuration(s); err == nil {
		if d <= 0 {
			return 0, fmt.Errorf("lookback must be positive: %q", s)
		}
		return d, nil
	}

	s = strings.TrimSuffix(s, " utc")
	s = strings.TrimSuffix(s, " ago")
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, fmt.Errorf("invalid lookback: %q", s)
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid lookback amount: %q", fields[0])
	}
	unit, ok := lookbackUnits[strings.TrimSuffix(fields[1], "s")]
	if !ok {
		return 0, fmt.Errorf("invalid lookback unit: %q", fields[1])
	}
	return time.Duration(n) * unit, nil
}
