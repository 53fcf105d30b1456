package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/slack-go/slack"
)

// SlackPoster is the part of *slack.Client used for delivery.
type SlackPoster interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
}

var _ Notifier = (*SlackNotifier)(nil)

type SlackNotifier struct {
	cli       SlackPoster
	channelId string
}

func NewSlackNotifier(cli SlackPoster, channelId string) *SlackNotifier {
	return &SlackNotifier{
		cli:       cli,
		channelId: channelId,
	}
}

// html 标签转换为 slack mrkdwn, 实体 (&lt; &gt; &amp;) slack 本身就要求转义, 保持不变
var htmlToMrkdwn = strings.NewReplacer(
	"<b>", "*", "</b>", "*",
	"<i>", "_", "</i>", "_",
	"<pre>", "```", "</pre>", "```",
)

func (n *SlackNotifier) Notify(ctx context.Context, text string) error {
	_, _, err := n.cli.PostMessageContext(ctx, n.channelId,
		slack.MsgOptionText(htmlToMrkdwn.Replace(text), false),
	)
	if err != nil {
		return fmt.Errorf("slack post to %s: %w", n.channelId, err)
	}
	return nil
}
