package ioc

import (
	"fmt"
	"strings"
	"time"

	"github.com/KNICEX/surge-monitor/internal/service/exchange"
	"github.com/KNICEX/surge-monitor/internal/service/monitor"
)

type MonitorSettings struct {
	Quote         string
	Interval      exchange.Interval
	Lookback      time.Duration
	PollInterval  time.Duration
	Sigma         float64
	ThresholdUnit monitor.ThresholdUnit
	IgnoreBase    []string
}

func InitMonitorSettings(cfg MonitorConfig) (MonitorSettings, error) {
	interval := exchange.Interval(cfg.Interval)
	if !interval.Valid() {
		return MonitorSettings{}, fmt.Errorf("monitor.interval: unsupported interval %q", cfg.Interval)
	}
	lookback, err := exchange.ParseLookback(cfg.Lookback)
	if err != nil {
		return MonitorSettings{}, fmt.Errorf("monitor.lookback: %w", err)
	}
	if cfg.PollInterval <= 0 {
		return MonitorSettings{}, fmt.Errorf("monitor.poll_interval must be positive, got %s", cfg.PollInterval)
	}
	if cfg.Sigma < 0 {
		return MonitorSettings{}, fmt.Errorf("monitor.sigma must not be negative, got %v", cfg.Sigma)
	}
	unit := monitor.ThresholdUnit(strings.ToLower(cfg.ThresholdUnit))
	if !unit.Valid() {
		return MonitorSettings{}, fmt.Errorf("monitor.threshold_unit: expect fraction or percent, got %q", cfg.ThresholdUnit)
	}
	quote := strings.ToUpper(strings.TrimSpace(cfg.Quote))
	if quote == "" {
		return MonitorSettings{}, fmt.Errorf("monitor.quote must not be empty")
	}

	return MonitorSettings{
		Quote:         quote,
		Interval:      interval,
		Lookback:      lookback,
		PollInterval:  cfg.PollInterval,
		Sigma:         cfg.Sigma,
		ThresholdUnit: unit,
		IgnoreBase:    cfg.IgnoreBase,
	}, nil
}
