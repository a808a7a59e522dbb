package calculator

import (
	"sort"
	"time"

	"github.com/montanaflynn/stats"
)

type LevelPoint struct {
	Date time.Time
	// nil when no level was published for the day (coverage gap)
	Level *float64
}

type RollingStats struct {
	Ret1d  *float64
	Ret5d  *float64
	Ret20d *float64
	Vol20d *float64
}

// ComputeRollingStats derives trailing return and volatility figures for
// levels[i]. Levels must be ordered by trading day ascending, one point
// per day, with a nil level marking a day where none was published. A
// window that reaches past the start of the series, or whose bound is a
// nil point, yields nil, never a partial figure.
func ComputeRollingStats(levels []LevelPoint, i int) RollingStats {
	out := RollingStats{
		Ret1d:  trailingReturn(levels, i, 1),
		Ret5d:  trailingReturn(levels, i, 5),
		Ret20d: trailingReturn(levels, i, 20),
	}

	// population stdev of the trailing 20 daily returns; a nil point
	// inside the window means fewer than 20 returns exist
	if i >= 20 {
		returns := make([]float64, 0, 20)
		for j := i - 19; j <= i; j++ {
			prev, cur := levels[j-1].Level, levels[j].Level
			if prev == nil || cur == nil || *prev == 0 {
				return out
			}
			returns = append(returns, *cur / *prev - 1)
		}
		vol, err := stats.StandardDeviationPopulation(returns)
		if err == nil {
			out.Vol20d = &vol
		}
	}

	return out
}

func trailingReturn(levels []LevelPoint, i, n int) *float64 {
	if i < n {
		return nil
	}
	cur, base := levels[i].Level, levels[i-n].Level
	if cur == nil || base == nil || *base == 0 {
		return nil
	}
	ret := *cur / *base - 1
	return &ret
}

// TopNWeight sums the n largest weights.
func TopNWeight(weights map[string]float64, n int) float64 {
	values := make([]float64, 0, len(weights))
	for _, w := range weights {
		values = append(values, w)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(values)))

	total := 0.0
	for i := 0; i < n && i < len(values); i++ {
		total += values[i]
	}
	return total
}

// Herfindahl is the sum of squared weights - the standard concentration
// measure for the portfolio.
func Herfindahl(weights map[string]float64) float64 {
	total := 0.0
	for _, w := range weights {
		total += w * w
	}
	return total
}
