package report

import (
	"fmt"
	"strconv"
)

// missingCell is the placeholder for nil (missing-data) values. Missing must
// stay visually distinct from zero.
const missingCell = "-"

func formatInt(v *int64) string {
	if v == nil {
		return missingCell
	}
	return formatCount(*v)
}

// formatCount renders an integer with thousands separators.
func formatCount(n int64) string {
	s := strconv.FormatInt(n, 10)
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}

func formatPercent(v *float64) string {
	if v == nil {
		return missingCell
	}
	return fmt.Sprintf("%+.1f%%", *v*100)
}

func formatFloat(v *float64, decimals int) string {
	if v == nil {
		return missingCell
	}
	return strconv.FormatFloat(*v, 'f', decimals, 64)
}

// styleSigned colors a rendered difference by its direction.
func styleSigned(text string, v *int64) string {
	switch {
	case v == nil:
		return SubtleStyle.Render(text)
	case *v < 0:
		return DecreaseStyle.Render(text)
	case *v > 0:
		return IncreaseStyle.Render(text)
	default:
		return text
	}
}
