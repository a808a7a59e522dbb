package calculator

import (
	"math"

	"tech100/internal/db/models/postgres/public/model"

	"github.com/montanaflynn/stats"
)

// ProviderPrice is one vendor's quote for a single (ticker, date). Order
// matters: the slice preserves ingestion order so "first provider
// encountered" is a stable tie-break.
type ProviderPrice struct {
	Provider string
	Close    *float64
	AdjClose *float64
}

type ReconcileInput struct {
	Quotes []ProviderPrice

	// max pairwise divergence (percent) before providers are considered
	// in conflict
	ThresholdPct float64

	PreferredProvider string
	SecondaryProvider string
}

const ChosenProviderMedian = "MEDIAN"

type ReconcileResult struct {
	CanonClose     *float64
	CanonAdjClose  *float64
	ChosenProvider *string
	ProvidersOk    int32
	DivergencePct  *float64
	Quality        model.PriceQuality
}

// Reconcile merges per-provider quotes into one canonical price. It is a
// pure function: same input, same output, no side effects.
func Reconcile(in ReconcileInput) ReconcileResult {
	usable := []ProviderPrice{}
	for _, q := range in.Quotes {
		if q.AdjClose != nil {
			usable = append(usable, q)
		}
	}

	switch len(usable) {
	case 0:
		return ReconcileResult{Quality: model.PriceQuality_Low}
	case 1:
		p := usable[0].Provider
		return ReconcileResult{
			CanonClose:     usable[0].Close,
			CanonAdjClose:  usable[0].AdjClose,
			ChosenProvider: &p,
			ProvidersOk:    1,
			Quality:        model.PriceQuality_Low,
		}
	}

	divergence := maxPairwiseDivergencePct(usable)

	if divergence <= in.ThresholdPct {
		adjCloses := make([]float64, 0, len(usable))
		closes := []float64{}
		for _, q := range usable {
			adjCloses = append(adjCloses, *q.AdjClose)
			if q.Close != nil {
				closes = append(closes, *q.Close)
			}
		}

		// stats.Median averages the two middle values for even counts
		medianAdj, _ := stats.Median(adjCloses)
		result := ReconcileResult{
			CanonAdjClose:  &medianAdj,
			ChosenProvider: strPtr(ChosenProviderMedian),
			ProvidersOk:    int32(len(usable)),
			DivergencePct:  &divergence,
			Quality:        model.PriceQuality_High,
		}
		if len(closes) > 0 {
			medianClose, _ := stats.Median(closes)
			result.CanonClose = &medianClose
		}
		return result
	}

	chosen := pickProvider(usable, in.PreferredProvider, in.SecondaryProvider)
	return ReconcileResult{
		CanonClose:     chosen.Close,
		CanonAdjClose:  chosen.AdjClose,
		ChosenProvider: &chosen.Provider,
		ProvidersOk:    int32(len(usable)),
		DivergencePct:  &divergence,
		Quality:        model.PriceQuality_Conflict,
	}
}

// maxPairwiseDivergencePct computes max over all provider pairs of
// |a_i - a_j| / avg(a_i, a_j) * 100. A pair whose average is zero but
// whose values differ yields +Inf, which exceeds any threshold and
// lands on the conflict path.
func maxPairwiseDivergencePct(quotes []ProviderPrice) float64 {
	maxDivergence := 0.0
	for i := 0; i < len(quotes); i++ {
		for j := i + 1; j < len(quotes); j++ {
			a, b := *quotes[i].AdjClose, *quotes[j].AdjClose
			if a == b {
				continue
			}
			avg := (a + b) / 2
			if avg == 0 {
				return math.Inf(1)
			}
			d := math.Abs(a-b) / avg * 100
			if d > maxDivergence {
				maxDivergence = d
			}
		}
	}
	return maxDivergence
}

// pickProvider is the precedence rule for conflicting quotes: preferred
// provider, then secondary, then first encountered.
func pickProvider(quotes []ProviderPrice, preferred, secondary string) ProviderPrice {
	for _, q := range quotes {
		if q.Provider == preferred {
			return q
		}
	}
	for _, q := range quotes {
		if q.Provider == secondary {
			return q
		}
	}
	return quotes[0]
}

func strPtr(s string) *string {
	return &s
}
