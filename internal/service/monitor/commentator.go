package monitor

import (
	"context"
	"fmt"
	"strings"

	"github.com/KNICEX/surge-monitor/internal/service/llm"
)

const maxCommentLen = 280

type llmCommentator struct {
	llmSvc llm.Service
}

func NewLLMCommentator(llmSvc llm.Service) Commentator {
	return &llmCommentator{
		llmSvc: llmSvc,
	}
}

func (c *llmCommentator) Comment(ctx context.Context, report Report) (string, error) {
	var rows strings.Builder
	for _, item := range report.Items {
		rows.WriteString(fmt.Sprintf("%s volume %+.2f%% price %+.2f%%\n",
			item.Symbol.ToString(), item.VolumeChangePct, item.PriceChangePct))
	}
	prompt := "These spot pairs just showed an abnormal volume change between their last two candles:\n" +
		rows.String() +
		"Reply with one plain-text sentence (no markdown) summarising what stands out, for example " +
		"whether volume spikes come with price rises or drops, or whether they look market-wide."

	answer, err := c.llmSvc.AskOnce(ctx, llm.Question{Content: prompt})
	if err != nil {
		return "", err
	}

	comment := strings.TrimSpace(answer.Content)
	if r := []rune(comment); len(r) > maxCommentLen {
		comment = string(r[:maxCommentLen]) + "..."
	}
	return comment, nil
}
