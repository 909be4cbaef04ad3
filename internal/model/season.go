package model

// Month display labels emitted by the season labeler. These exact strings key
// the wide pivot and the chart legends.
const (
	MonthDecember = "December"
	MonthJanuary  = "January"
)

// SeasonLabel identifies the winter holiday season a December or January
// record belongs to. A December of year Y and the following January share the
// same "Y/Y+1" season.
type SeasonLabel struct {
	Season    string // "YYYY/YYYY"
	MonthName string // MonthDecember or MonthJanuary
}
