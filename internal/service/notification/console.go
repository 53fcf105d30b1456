package notification

import (
	"context"
	"fmt"
	"io"
	"os"
)

var _ Notifier = (*ConsoleNotifier)(nil)

// ConsoleNotifier 打印到标准输出, 是 SurgeMonitor 未指定通知通道时的默认实现
type ConsoleNotifier struct {
	w io.Writer
}

func NewConsoleNotifier(w io.Writer) *ConsoleNotifier {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleNotifier{w: w}
}

func (c *ConsoleNotifier) Notify(ctx context.Context, text string) error {
	_, err := fmt.Fprintln(c.w, text)
	return err
}
