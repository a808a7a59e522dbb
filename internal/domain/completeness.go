package domain

import "time"

type CompletenessStatus string

const (
	CompletenessStatusPass               CompletenessStatus = "PASS"
	CompletenessStatusFail               CompletenessStatus = "FAIL"
	CompletenessStatusPassWithImputation CompletenessStatus = "PASS_WITH_IMPUTATION"
)

type DayCoverage struct {
	Date     time.Time
	Expected int
	Ok       int
	Coverage float64
	Holiday  bool
	Bad      bool
}

type CompletenessReport struct {
	Start   time.Time
	End     time.Time
	Status  CompletenessStatus
	Days    []DayCoverage
	BadDays int

	// worst offenders, for alerting
	WorstDates      []DayCoverage
	MissingByTicker map[string]int
}

// Downgrade marks a FAIL report as recovered once imputation has filled
// the gaps it was complaining about.
func (r *CompletenessReport) Downgrade() {
	if r.Status == CompletenessStatusFail {
		r.Status = CompletenessStatusPassWithImputation
	}
}
