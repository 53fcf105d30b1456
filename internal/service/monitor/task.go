package monitor

import (
	"context"
	"log/slog"

	"github.com/KNICEX/surge-monitor/internal/schedule"
)

type SurgeMonitorTask struct {
	surgeSvc SurgeService
}

func NewSurgeMonitorTask(surgeSvc SurgeService) schedule.Task {
	return &SurgeMonitorTask{
		surgeSvc: surgeSvc,
	}
}

func (t *SurgeMonitorTask) Run(ctx context.Context) error {
	report, err := t.surgeSvc.Check(ctx)
	slog.Info("surge check finished", "cycle", report.CycleId, "surges", len(report.Items))
	return err
}

func (t *SurgeMonitorTask) Name() string {
	return "volume surge monitor task"
}
