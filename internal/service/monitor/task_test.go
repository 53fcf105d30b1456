package monitor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeSurgeService struct {
	calls  int
	report Report
	err    error
}

func (s *fakeSurgeService) Check(ctx context.Context) (Report, error) {
	s.calls++
	return s.report, s.err
}

func TestSurgeMonitorTask_Run(t *testing.T) {
	svc := &fakeSurgeService{report: Report{CycleId: "c1", Items: []Surge{{Symbol: sym("AAA")}}}}
	task := NewSurgeMonitorTask(svc)

	assert.NoError(t, task.Run(context.Background()))
	assert.Equal(t, 1, svc.calls)
	assert.Equal(t, "volume surge monitor task", task.Name())

	svc.err = errors.New("notify failed")
	assert.ErrorIs(t, task.Run(context.Background()), svc.err)
	assert.Equal(t, 2, svc.calls)
}
