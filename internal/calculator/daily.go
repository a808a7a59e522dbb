package calculator

import "sort"

type ValuationInput struct {
	Shares  map[string]float64
	Prices  map[string]float64
	Divisor float64

	// minimum fraction of holdings that must have a price for the level
	// to be defined
	MinCoverage float64
}

type Valuation struct {
	// nil when coverage is below the floor - a gap, never a zero
	Level *float64

	MarketValue float64
	Weights     map[string]float64
	Coverage    float64
	Missing     []string
}

// ComputeValuation prices the active holdings on one trading day. Tickers
// without a price are excluded from the sum, not treated as zero; if too
// many are missing the level is left undefined.
func ComputeValuation(in ValuationInput) Valuation {
	out := Valuation{
		Weights: map[string]float64{},
		Missing: []string{},
	}
	if len(in.Shares) == 0 || in.Divisor <= 0 {
		return out
	}

	priced := 0
	for ticker, shares := range in.Shares {
		price, ok := in.Prices[ticker]
		if !ok {
			out.Missing = append(out.Missing, ticker)
			continue
		}
		priced++
		out.MarketValue += shares * price
	}
	sort.Strings(out.Missing)

	out.Coverage = float64(priced) / float64(len(in.Shares))
	if out.Coverage < in.MinCoverage || out.MarketValue <= 0 {
		return out
	}

	level := out.MarketValue / in.Divisor
	out.Level = &level

	for ticker, shares := range in.Shares {
		if price, ok := in.Prices[ticker]; ok {
			out.Weights[ticker] = shares * price / out.MarketValue
		}
	}

	return out
}

// ComputeContributions attributes the day's index return to constituents:
// contribution[t] = weight_prior[t] * (price[t]/price_prior[t] - 1).
// Summed across tickers this reconciles to the index return.
type Contribution struct {
	PriorWeight  float64
	PriceReturn  float64
	Contribution float64
}

func ComputeContributions(priorWeights, priorPrices, prices map[string]float64) map[string]Contribution {
	out := map[string]Contribution{}
	for ticker, priorWeight := range priorWeights {
		priorPrice, ok := priorPrices[ticker]
		if !ok || priorPrice == 0 {
			continue
		}
		price, ok := prices[ticker]
		if !ok {
			continue
		}
		ret := price/priorPrice - 1
		out[ticker] = Contribution{
			PriorWeight:  priorWeight,
			PriceReturn:  ret,
			Contribution: priorWeight * ret,
		}
	}
	return out
}
