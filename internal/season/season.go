// Package season derives winter holiday season labels from calendar dates.
//
// A "season" pairs a December with the January that follows it: December 2019
// and January 2020 are both season "2019/2020". Only those two months carry a
// label; the caller decides whether an unlabeled month is an error or a
// filterable case.
package season

import (
	"fmt"
	"time"

	"github.com/ewanmcn/wintermeds/internal/model"
)

// Label returns the season label for a calendar year and month. ok is false
// for any month other than December or January.
func Label(year int, month time.Month) (model.SeasonLabel, bool) {
	switch month {
	case time.December:
		return model.SeasonLabel{
			Season:    fmt.Sprintf("%d/%d", year, year+1),
			MonthName: model.MonthDecember,
		}, true
	case time.January:
		return model.SeasonLabel{
			Season:    fmt.Sprintf("%d/%d", year-1, year),
			MonthName: model.MonthJanuary,
		}, true
	default:
		return model.SeasonLabel{}, false
	}
}

// ForDate is a convenience wrapper over Label for a record's paid date.
func ForDate(d model.PaidDate) (model.SeasonLabel, bool) {
	return Label(d.Year, d.Month)
}
