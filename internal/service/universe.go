package service

import (
	"time"

	"tech100/internal/db/models/postgres/public/model"
	"tech100/internal/util"

	"github.com/shopspring/decimal"
)

// declaredUniverse returns the ticker set declared for the given day: the
// membership with the latest effective_date <= day. Declarations arrive
// ordered by effective_date.
func declaredUniverse(decls []model.PortfolioDecl, day time.Time) []string {
	var effective *time.Time
	for _, d := range decls {
		if util.DateLte(d.EffectiveDate, day) {
			t := d.EffectiveDate
			effective = &t
		}
	}
	if effective == nil {
		return nil
	}

	tickers := []string{}
	for _, d := range decls {
		if util.SameDate(d.EffectiveDate, *effective) {
			tickers = append(tickers, d.Ticker)
		}
	}
	return tickers
}

// usablePrice picks the price a canonical row contributes to index
// computation: adjusted close, or raw close when the fallback is enabled.
func usablePrice(p model.PricesCanon, allowClose bool) *decimal.Decimal {
	if p.CanonAdjClose != nil {
		return p.CanonAdjClose
	}
	if allowClose {
		return p.CanonClose
	}
	return nil
}

func priceKey(ticker string, day time.Time) string {
	return ticker + "|" + day.Format(time.DateOnly)
}
