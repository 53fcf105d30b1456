package monitor

import (
	"fmt"
	"html"
	"strings"
)

const (
	reportHeader = "<b>Volume and price change notifications:</b>"
	// Telegram 单条消息最长 4096 字符
	maxMessageLen = 4096
)

func formatSurge(s Surge) string {
	return fmt.Sprintf("%s | volume: %.2f%% | price: %.2f%%",
		html.EscapeString(s.Symbol.ToString()), s.VolumeChangePct, s.PriceChangePct)
}

// FormatReport renders the report as one HTML message: a bold header followed
// by a preformatted block with one line per surge. Rows that would push the
// message past the Telegram limit are collapsed into a trailing "... and N more".
func FormatReport(report Report, comment string) string {
	var footer string
	if comment != "" {
		footer = "\n\n<i>" + html.EscapeString(comment) + "</i>"
	}

	const open, closing = "\n\n<pre>", "</pre>"
	budget := maxMessageLen - len(reportHeader) - len(open) - len(closing) - len(footer)

	rows := make([]string, 0, len(report.Items))
	used := 0
	for i, item := range report.Items {
		row := formatSurge(item)
		rest := len(report.Items) - i - 1
		need := len(row)
		if i > 0 {
			need++
		}
		// 给 "... and N more" 预留空间
		reserve := 0
		if rest > 0 {
			reserve = len(fmt.Sprintf("\n... and %d more", rest))
		}
		if used+need+reserve > budget {
			rows = append(rows, fmt.Sprintf("... and %d more", len(report.Items)-i))
			break
		}
		rows = append(rows, row)
		used += need
	}

	return reportHeader + open + strings.Join(rows, "\n") + closing + footer
}
