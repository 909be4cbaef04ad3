package report

import (
	"fmt"
	"strings"

	"github.com/ewanmcn/wintermeds/internal/model"
)

const chartWidth = 48

// SeasonChart renders a horizontal bar chart of December/January paid
// quantity totals per season. Bars are scaled to the largest total.
func SeasonChart(totals []model.AggregateRow[model.SeasonLabel]) string {
	if len(totals) == 0 {
		return SubtleStyle.Render("no seasonal data") + "\n"
	}

	var maxSum int64
	labelWidth := 0
	for _, row := range totals {
		if row.PaidQuantitySum > maxSum {
			maxSum = row.PaidQuantitySum
		}
		label := chartLabel(row.Key)
		if len(label) > labelWidth {
			labelWidth = len(label)
		}
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Paid quantity by season and month"))
	b.WriteString("\n")
	for _, row := range totals {
		label := chartLabel(row.Key)
		bar := barFor(row.PaidQuantitySum, maxSum)
		b.WriteString(fmt.Sprintf("%-*s %s %s\n",
			labelWidth, label,
			BarStyle.Render(bar),
			formatCount(row.PaidQuantitySum)))
	}
	return b.String()
}

func chartLabel(key model.SeasonLabel) string {
	return key.Season + " " + key.MonthName
}

func barFor(value, maxValue int64) string {
	if maxValue <= 0 || value <= 0 {
		return ""
	}
	n := int(value * chartWidth / maxValue)
	if n == 0 {
		n = 1 // nonzero values always get a visible bar
	}
	return strings.Repeat("█", n)
}
