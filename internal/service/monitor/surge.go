package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KNICEX/surge-monitor/internal/entity"
	"github.com/KNICEX/surge-monitor/internal/repo"
	"github.com/KNICEX/surge-monitor/internal/service/exchange"
	"github.com/KNICEX/surge-monitor/internal/service/notification"
	"github.com/KNICEX/surge-monitor/pkg/decimalx"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type SurgeMonitor struct {
	state     *State
	marketSvc exchange.MarketService
	interval  exchange.Interval
	unit      ThresholdUnit

	notifier    Notifier
	commentator Commentator
	repo        repo.SurgeRepo

	now   func() time.Time
	newId func() string
}

type Option func(m *SurgeMonitor)

func WithNotifier(notifier Notifier) Option {
	return func(m *SurgeMonitor) {
		m.notifier = notifier
	}
}

func WithCommentator(commentator Commentator) Option {
	return func(m *SurgeMonitor) {
		m.commentator = commentator
	}
}

// WithRepo 记录每次上报的异动
func WithRepo(repo repo.SurgeRepo) Option {
	return func(m *SurgeMonitor) {
		m.repo = repo
	}
}

func WithInterval(interval exchange.Interval) Option {
	return func(m *SurgeMonitor) {
		m.interval = interval
	}
}

func WithThresholdUnit(unit ThresholdUnit) Option {
	return func(m *SurgeMonitor) {
		m.unit = unit
	}
}

func NewSurgeMonitor(state *State, marketSvc exchange.MarketService, opts ...Option) *SurgeMonitor {
	m := &SurgeMonitor{
		state:     state,
		marketSvc: marketSvc,
		interval:  exchange.Interval1h,
		unit:      UnitFraction,
		notifier:  notification.NewConsoleNotifier(nil),
		now:       time.Now,
		newId:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.unit == UnitFraction {
		slog.Warn("thresholds are fractional changes while live volume changes are percentages",
			"threshold_unit", m.unit)
	}
	return m
}

// Check runs one cycle over every symbol of the state in order.
// A failure on one symbol is logged and never stops the others.
func (m *SurgeMonitor) Check(ctx context.Context) (Report, error) {
	report := Report{
		CycleId:   m.newId(),
		CheckedAt: m.now(),
	}

	for _, symbol := range m.state.Symbols {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		surge, abnormal, err := m.checkSymbol(ctx, symbol)
		if err != nil {
			slog.Error("failed to check symbol", "cycle", report.CycleId, "symbol", symbol.ToString(), "error", err)
			continue
		}
		if abnormal {
			report.Items = append(report.Items, surge)
		}
	}

	if report.Empty() {
		slog.Info("no volume surge found", "cycle", report.CycleId, "symbols", len(m.state.Symbols))
		return report, nil
	}

	err := m.notify(ctx, report)
	m.record(ctx, report, err == nil)
	return report, err
}

func (m *SurgeMonitor) checkSymbol(ctx context.Context, symbol exchange.Symbol) (Surge, bool, error) {
	threshold, ok := m.state.Threshold(symbol)
	if !ok {
		return Surge{}, false, fmt.Errorf("no threshold for %s", symbol.ToString())
	}

	kLines, err := m.marketSvc.GetRecentKlines(ctx, symbol, m.interval, 2)
	if err != nil {
		return Surge{}, false, fmt.Errorf("get k lines: %w", err)
	}
	if len(kLines) < 2 {
		return Surge{}, false, ErrNotEnoughKlines
	}
	prev, cur := kLines[len(kLines)-2], kLines[len(kLines)-1]

	volumeChange, err := decimalx.PctChange(prev.Volume, cur.Volume)
	if err != nil {
		return Surge{}, false, ErrZeroVolume
	}
	priceChange, err := decimalx.PctChange(prev.Close, cur.Close)
	if err != nil {
		return Surge{}, false, ErrZeroPrice
	}

	threshold = m.unit.scale(threshold)
	volumeChangePct := volumeChange.InexactFloat64()
	slog.Info("volume change", "symbol", symbol.ToString(), "volume_change", volumeChangePct, "threshold", threshold)

	if volumeChangePct <= threshold {
		return Surge{}, false, nil
	}
	return Surge{
		Symbol:          symbol,
		VolumeChangePct: volumeChangePct,
		PriceChangePct:  priceChange.InexactFloat64(),
		Threshold:       threshold,
	}, true, nil
}

func (m *SurgeMonitor) notify(ctx context.Context, report Report) error {
	var comment string
	if m.commentator != nil {
		c, err := m.commentator.Comment(ctx, report)
		if err != nil {
			slog.Warn("failed to comment surge report", "cycle", report.CycleId, "error", err)
		}
		comment = c
	}

	text := FormatReport(report, comment)
	slog.Debug("consolidated message", "cycle", report.CycleId, "text", text)

	if err := m.notifier.Notify(ctx, text); err != nil {
		return fmt.Errorf("notify surge report: %w", err)
	}
	slog.Info("surge report sent", "cycle", report.CycleId, "surges", len(report.Items))
	return nil
}

func (m *SurgeMonitor) record(ctx context.Context, report Report, notified bool) {
	if m.repo == nil {
		return
	}
	surges := lo.Map(report.Items, func(item Surge, index int) entity.Surge {
		return entity.Surge{
			CycleId:         report.CycleId,
			BaseSymbol:      item.Symbol.Base,
			QuoteSymbol:     item.Symbol.Quote,
			VolumeChangePct: item.VolumeChangePct,
			PriceChangePct:  item.PriceChangePct,
			Threshold:       item.Threshold,
			Notified:        notified,
			CreatedAt:       report.CheckedAt,
		}
	})
	// 退出时 ctx 已取消, 记录仍需写入
	if err := m.repo.CreateBatch(context.WithoutCancel(ctx), surges); err != nil {
		slog.Error("failed to save surge report", "cycle", report.CycleId, "error", err)
	}
}
