package notification

import "context"

// Notifier 把一条已格式化的 HTML 文本投递到固定的目的地
type Notifier interface {
	Notify(ctx context.Context, text string) error
}
