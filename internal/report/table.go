package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ewanmcn/wintermeds/internal/model"
)

// renderTable lays out rows under a styled header with padded columns.
// styledCells may carry ANSI sequences; widths are computed from the plain
// cells to keep alignment stable.
func renderTable(headers []string, plain [][]string, styled [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range plain {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	headerCells := make([]string, len(headers))
	for i, h := range headers {
		headerCells[i] = HeaderStyle.Render(pad(h, widths[i]))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, headerCells...))
	b.WriteString("\n")

	for r, row := range styled {
		cells := make([]string, len(row))
		for i, cell := range row {
			padding := widths[i] - len(plain[r][i])
			cells[i] = CellStyle.Render(cell + strings.Repeat(" ", padding))
		}
		b.WriteString(strings.Join(cells, ""))
		b.WriteString("\n")
	}

	return b.String()
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s + "  "
	}
	return s + strings.Repeat(" ", width-len(s)) + "  "
}

// SeasonComparisonTable renders the per-season December/January comparison.
func SeasonComparisonTable(rows []model.ComparisonRow) string {
	headers := []string{"Season", "December", "January", "Difference", "Change"}
	plain := make([][]string, len(rows))
	styled := make([][]string, len(rows))
	for i, row := range rows {
		diff := formatInt(row.Difference)
		plain[i] = []string{
			row.Season,
			formatInt(row.DecemberValue),
			formatInt(row.JanuaryValue),
			diff,
			formatPercent(row.PercentChange),
		}
		styled[i] = append([]string{}, plain[i]...)
		styled[i][3] = styleSigned(diff, row.Difference)
	}

	return TitleStyle.Render("December vs January paid quantities") + "\n" +
		renderTable(headers, plain, styled)
}

// BoardComparisonTable renders per-board comparison rows, optionally headed
// by the season they cover.
func BoardComparisonTable(title string, rows []model.ComparisonRow) string {
	headers := []string{"Health board", "Season", "December", "January", "Difference", "Change"}
	plain := make([][]string, len(rows))
	styled := make([][]string, len(rows))
	for i, row := range rows {
		diff := formatInt(row.Difference)
		plain[i] = []string{
			row.Board,
			row.Season,
			formatInt(row.DecemberValue),
			formatInt(row.JanuaryValue),
			diff,
			formatPercent(row.PercentChange),
		}
		styled[i] = append([]string{}, plain[i]...)
		styled[i][4] = styleSigned(diff, row.Difference)
	}

	return TitleStyle.Render(title) + "\n" + renderTable(headers, plain, styled)
}

// CombinedTable renders the education join output.
func CombinedTable(rows []model.CombinedRow) string {
	headers := []string{"Health board", "Seasons", "Avg difference", "No quals %", "Per 16+ head"}
	plain := make([][]string, len(rows))
	styled := make([][]string, len(rows))
	for i, row := range rows {
		plain[i] = []string{
			row.BoardName,
			fmt.Sprintf("%d", row.SeasonsObserved),
			formatFloat(row.AverageDifference, 1),
			formatFloat(row.EducationProportion, 1),
			formatFloat(row.ScaledDifference, 6),
		}
		styled[i] = append([]string{}, plain[i]...)
		if row.AverageDifference == nil || row.EducationProportion == nil {
			// A one-sided outer-join row; keep it visible but muted.
			for c := range styled[i] {
				styled[i][c] = SubtleStyle.Render(plain[i][c])
			}
		}
	}

	return TitleStyle.Render("Average seasonal difference vs census qualifications") + "\n" +
		renderTable(headers, plain, styled)
}
