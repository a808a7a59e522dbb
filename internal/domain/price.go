package domain

import "time"

// AssetPrice is the canonical price view the calculators consume - one
// usable price per ticker per trading day, with an imputation marker.
type AssetPrice struct {
	Ticker  string
	Date    time.Time
	Price   float64
	Imputed bool
}

// PriceBook indexes canonical prices by ticker and yyyy-mm-dd date string.
type PriceBook struct {
	prices map[string]map[string]AssetPrice
}

func NewPriceBook() *PriceBook {
	return &PriceBook{prices: map[string]map[string]AssetPrice{}}
}

func (b *PriceBook) Add(p AssetPrice) {
	if _, ok := b.prices[p.Ticker]; !ok {
		b.prices[p.Ticker] = map[string]AssetPrice{}
	}
	b.prices[p.Ticker][p.Date.Format(time.DateOnly)] = p
}

func (b *PriceBook) Get(ticker string, date time.Time) (AssetPrice, bool) {
	if byDate, ok := b.prices[ticker]; ok {
		if p, ok := byDate[date.Format(time.DateOnly)]; ok {
			return p, true
		}
	}
	return AssetPrice{}, false
}

// PriceMap returns the prices available for the given tickers on date.
func (b *PriceBook) PriceMap(tickers []string, date time.Time) map[string]float64 {
	out := map[string]float64{}
	for _, t := range tickers {
		if p, ok := b.Get(t, date); ok {
			out[t] = p.Price
		}
	}
	return out
}
