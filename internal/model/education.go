package model

// QualificationTier names one census qualification level. Only the
// no-qualifications tier is consumed today; the map representation keeps the
// schema open to further tiers without committing to which ones.
type QualificationTier string

// TierNoQualifications is the only tier currently wired into the analysis.
const TierNoQualifications QualificationTier = "no_qualifications"

// EducationReference is one row of the census qualification table for a
// health-board area. Loaded once, never mutated.
type EducationReference struct {
	Tiers            map[QualificationTier]int64
	BoardName        string
	Population16Plus int64
}

// Proportion returns the percentage of the 16+ population holding the given
// tier, or nil when the tier is absent or the population is zero.
func (e EducationReference) Proportion(tier QualificationTier) *float64 {
	count, ok := e.Tiers[tier]
	if !ok || e.Population16Plus == 0 {
		return nil
	}
	p := float64(count) / float64(e.Population16Plus) * 100
	return &p
}
