package calculator

import (
	"tech100/internal/domain"
)

type RebalanceInput struct {
	Tickers []string

	// canonical prices on the prior trading day - never the rebalance day
	// itself, to avoid look-ahead
	PriorPrices map[string]float64

	PriorLevel   float64
	PriorDivisor float64
}

type RebalanceResult struct {
	Shares       map[string]float64
	TargetWeight float64
	MarketValue  float64
	NewDivisor   float64
}

// ComputeRebalance derives equal-weight share counts and a new divisor
// such that the index level is unchanged at the instant of rebalance:
// sum(shares * price_prior) / new_divisor == level_prior.
func ComputeRebalance(in RebalanceInput) (*RebalanceResult, error) {
	if len(in.Tickers) == 0 {
		return nil, domain.NewConfigurationError("cannot rebalance with empty ticker set")
	}
	if in.PriorLevel <= 0 {
		return nil, domain.NewConfigurationError("cannot rebalance from prior level %f", in.PriorLevel)
	}
	if in.PriorDivisor <= 0 {
		return nil, domain.NewConfigurationError("cannot rebalance from prior divisor %f", in.PriorDivisor)
	}

	targetWeight := 1.0 / float64(len(in.Tickers))
	marketValuePrior := in.PriorLevel * in.PriorDivisor

	shares := map[string]float64{}
	for _, ticker := range in.Tickers {
		price, ok := in.PriorPrices[ticker]
		if !ok {
			return nil, domain.NewDataUnavailableError("no prior-day price for %s at rebalance", ticker)
		}
		if price <= 0 {
			return nil, domain.NewDataUnavailableError("non-positive prior-day price %f for %s at rebalance", price, ticker)
		}
		shares[ticker] = targetWeight * marketValuePrior / price
	}

	newMarketValue := 0.0
	for ticker, count := range shares {
		newMarketValue += count * in.PriorPrices[ticker]
	}
	if newMarketValue <= 0 {
		return nil, domain.NewDataUnavailableError("rebalance produced non-positive market value %f", newMarketValue)
	}

	return &RebalanceResult{
		Shares:       shares,
		TargetWeight: targetWeight,
		MarketValue:  newMarketValue,
		NewDivisor:   newMarketValue / in.PriorLevel,
	}, nil
}
