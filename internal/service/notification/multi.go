package notification

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

var _ Notifier = Multi(nil)

// Multi 依次投递到每个通道, 一个通道失败不影响其他通道.
// 只要有一个通道送达就返回 nil, 失败的通道单独记录日志; 全部失败时返回合并的错误
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, text string) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, text); err != nil {
			slog.Warn("failed to deliver notification", "channel", fmt.Sprintf("%T", n), "error", err)
			errs = append(errs, err)
		}
	}
	if len(errs) < len(m) {
		return nil
	}
	return errors.Join(errs...)
}
