package model

// AggregateRow is the sum of paid quantities over one group of records.
// K is the grouping key: a PaidDate, a season/month pair, or a board/month
// pair depending on the stage.
type AggregateRow[K comparable] struct {
	Key             K
	PaidQuantitySum int64
}

// ComparisonRow is one season's wide December/January comparison. Board is
// empty for national totals. Nil fields mean the month was absent from the
// input, which is distinct from a true zero; PercentChange is additionally
// nil when DecemberValue is zero.
type ComparisonRow struct {
	DecemberValue *int64
	JanuaryValue  *int64
	Difference    *int64
	PercentChange *float64
	Season        string
	Board         string
}

// CombinedRow joins a board's average seasonal difference with its census
// education figures. Either side of the outer join may be missing: a board
// seen in prescriptions but absent from the census keeps nil education
// fields, and vice versa.
type CombinedRow struct {
	AverageDifference   *float64
	Population16Plus    *int64
	EducationProportion *float64 // % of 16+ population with no qualifications
	ScaledDifference    *float64 // AverageDifference per head of 16+ population
	BoardName           string
	SeasonsObserved     int
}
