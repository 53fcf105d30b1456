package monitor

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/KNICEX/surge-monitor/internal/service/exchange"
	"github.com/KNICEX/surge-monitor/pkg/decimalx"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

const DefaultSigma = 2.0

var (
	ErrNotEnoughKlines = errors.New("not enough k lines")
	ErrZeroVolume      = errors.New("previous volume is zero")
	ErrZeroPrice       = errors.New("previous close price is zero")
)

// ComputeThreshold returns mean + sigma*stddev of the fractional volume
// changes between consecutive k lines. Population statistics are used.
func ComputeThreshold(kLines []exchange.Kline, sigma float64) (float64, error) {
	if len(kLines) < 2 {
		return 0, ErrNotEnoughKlines
	}

	volumes := lo.Map(kLines, func(item exchange.Kline, index int) decimal.Decimal {
		return item.Volume
	})
	changes, err := decimalx.Changes(volumes)
	if err != nil {
		if errors.Is(err, decimalx.ErrZeroBase) {
			return 0, ErrZeroVolume
		}
		return 0, err
	}

	mean, stdDev := decimalx.MeanStd(changes)
	return mean + sigma*stdDev, nil
}

type ThresholdCalculator struct {
	marketSvc exchange.MarketService
	interval  exchange.Interval
	lookback  time.Duration
	sigma     float64
}

func NewThresholdCalculator(marketSvc exchange.MarketService, interval exchange.Interval, lookback time.Duration, sigma float64) *ThresholdCalculator {
	return &ThresholdCalculator{
		marketSvc: marketSvc,
		interval:  interval,
		lookback:  lookback,
		sigma:     sigma,
	}
}

// Build 计算所有交易对的阈值, 单个交易对失败只跳过该交易对.
// 只有 ctx 被取消才会返回错误.
func (c *ThresholdCalculator) Build(ctx context.Context, symbols []exchange.Symbol) (State, error) {
	state := State{
		Symbols:    make([]exchange.Symbol, 0, len(symbols)),
		Thresholds: make(Thresholds, len(symbols)),
	}

	for _, symbol := range symbols {
		if err := ctx.Err(); err != nil {
			return State{}, err
		}

		kLines, err := c.marketSvc.GetHistoricalKlines(ctx, symbol, c.interval, c.lookback)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return State{}, ctxErr
			}
			slog.Error("failed to get historical k lines", "symbol", symbol.ToString(), "error", err)
			continue
		}

		threshold, err := ComputeThreshold(kLines, c.sigma)
		if err != nil {
			slog.Warn("skip symbol threshold", "symbol", symbol.ToString(), "k_lines", len(kLines), "reason", err)
			continue
		}

		state.Symbols = append(state.Symbols, symbol)
		state.Thresholds[symbol.ToString()] = threshold
	}

	slog.Info("thresholds computed", "symbols", len(symbols), "usable", len(state.Symbols))
	return state, nil
}
