package report

import (
	"fmt"
	"strings"

	"github.com/ewanmcn/wintermeds/internal/model"
)

const (
	scatterWidth  = 56
	scatterHeight = 16
)

// EducationScatter plots each board's census no-qualifications proportion
// (x) against its average seasonal difference (y) on a character grid. Rows
// missing either value are left out of the plot; the table rendering is
// where one-sided join rows stay visible.
func EducationScatter(rows []model.CombinedRow) string {
	type point struct{ x, y float64 }

	var points []point
	for _, row := range rows {
		if row.EducationProportion == nil || row.AverageDifference == nil {
			continue
		}
		points = append(points, point{x: *row.EducationProportion, y: *row.AverageDifference})
	}
	if len(points) < 2 {
		return SubtleStyle.Render("not enough matched boards to plot") + "\n"
	}

	minX, maxX := points[0].x, points[0].x
	minY, maxY := points[0].y, points[0].y
	for _, p := range points[1:] {
		minX = min(minX, p.x)
		maxX = max(maxX, p.x)
		minY = min(minY, p.y)
		maxY = max(maxY, p.y)
	}
	if maxX == minX {
		maxX = minX + 1
	}
	if maxY == minY {
		maxY = minY + 1
	}

	grid := make([][]rune, scatterHeight)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", scatterWidth))
	}
	for _, p := range points {
		col := int((p.x - minX) / (maxX - minX) * float64(scatterWidth-1))
		row := int((maxY - p.y) / (maxY - minY) * float64(scatterHeight-1))
		grid[row][col] = '•'
	}

	var b strings.Builder
	b.WriteString(TitleStyle.Render("No-qualifications % vs average seasonal difference"))
	b.WriteString("\n")
	for i, line := range grid {
		label := "        "
		if i == 0 {
			label = fmt.Sprintf("%8.1f", maxY)
		}
		if i == scatterHeight-1 {
			label = fmt.Sprintf("%8.1f", minY)
		}
		b.WriteString(SubtleStyle.Render(label))
		b.WriteString(" |")
		b.WriteString(BarStyle.Render(string(line)))
		b.WriteString("\n")
	}
	b.WriteString("         +")
	b.WriteString(strings.Repeat("-", scatterWidth))
	b.WriteString("\n")
	b.WriteString(SubtleStyle.Render(fmt.Sprintf("          %-10.1f%*s", minX, scatterWidth-10, fmt.Sprintf("%.1f", maxX))))
	b.WriteString("\n")
	return b.String()
}
