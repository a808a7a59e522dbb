package service

import (
	"database/sql"
	"sort"
	"time"

	"tech100/internal/db/models/postgres/public/model"
	"tech100/internal/util"
)

// in-memory repository fakes for service tests

type fakeRawPriceRepository struct {
	rows []model.PricesRaw
	err  error
}

func (f *fakeRawPriceRepository) Add(_ *sql.Tx, quotes []model.PricesRaw) error {
	if f.err != nil {
		return f.err
	}
	f.rows = append(f.rows, quotes...)
	return nil
}

func (f *fakeRawPriceRepository) List(start, end time.Time) ([]model.PricesRaw, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []model.PricesRaw{}
	for _, r := range f.rows {
		if util.DateLte(start, r.TradeDate) && util.DateLte(r.TradeDate, end) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Ticker != out[j].Ticker {
			return out[i].Ticker < out[j].Ticker
		}
		if !util.SameDate(out[i].TradeDate, out[j].TradeDate) {
			return out[i].TradeDate.Before(out[j].TradeDate)
		}
		return out[i].IngestedAt.Before(out[j].IngestedAt)
	})
	return out, nil
}

type fakeCanonicalPriceRepository struct {
	rows map[string]model.PricesCanon
}

func newFakeCanonicalPriceRepository() *fakeCanonicalPriceRepository {
	return &fakeCanonicalPriceRepository{rows: map[string]model.PricesCanon{}}
}

func (f *fakeCanonicalPriceRepository) key(p model.PricesCanon) string {
	return priceKey(p.Ticker, p.TradeDate)
}

func (f *fakeCanonicalPriceRepository) Upsert(_ *sql.Tx, prices []model.PricesCanon) error {
	for _, p := range prices {
		f.rows[f.key(p)] = p
	}
	return nil
}

func (f *fakeCanonicalPriceRepository) AddIfMissing(_ *sql.Tx, price model.PricesCanon) (bool, error) {
	if _, ok := f.rows[f.key(price)]; ok {
		return false, nil
	}
	f.rows[f.key(price)] = price
	return true, nil
}

func (f *fakeCanonicalPriceRepository) List(start, end time.Time) ([]model.PricesCanon, error) {
	out := []model.PricesCanon{}
	for _, p := range f.rows {
		if util.DateLte(start, p.TradeDate) && util.DateLte(p.TradeDate, end) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !util.SameDate(out[i].TradeDate, out[j].TradeDate) {
			return out[i].TradeDate.Before(out[j].TradeDate)
		}
		return out[i].Ticker < out[j].Ticker
	})
	return out, nil
}

func (f *fakeCanonicalPriceRepository) GetLastReal(ticker string, before time.Time) (*model.PricesCanon, error) {
	var best *model.PricesCanon
	for _, p := range f.rows {
		p := p
		if p.Ticker != ticker || !p.TradeDate.Before(before) {
			continue
		}
		if p.Quality == model.PriceQuality_Imputed || p.CanonAdjClose == nil {
			continue
		}
		if best == nil || p.TradeDate.After(best.TradeDate) {
			best = &p
		}
	}
	return best, nil
}

type fakeImputationRepository struct {
	rows map[string]model.Imputation
}

func newFakeImputationRepository() *fakeImputationRepository {
	return &fakeImputationRepository{rows: map[string]model.Imputation{}}
}

func (f *fakeImputationRepository) Upsert(_ *sql.Tx, record model.Imputation) error {
	f.rows[priceKey(record.Ticker, record.TradeDate)] = record
	return nil
}

func (f *fakeImputationRepository) List(indexCode string, start, end time.Time) ([]model.Imputation, error) {
	out := []model.Imputation{}
	for _, r := range f.rows {
		if r.IndexCode == indexCode && util.DateLte(start, r.TradeDate) && util.DateLte(r.TradeDate, end) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeTradingDayRepository struct {
	days []time.Time
}

func (f *fakeTradingDayRepository) List(start, end time.Time) ([]time.Time, error) {
	out := []time.Time{}
	for _, d := range f.days {
		if util.DateLte(start, d) && util.DateLte(d, end) {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakePortfolioRepository struct {
	decls []model.PortfolioDecl
}

func (f *fakePortfolioRepository) ListDeclarations(indexCode string) ([]model.PortfolioDecl, error) {
	out := []model.PortfolioDecl{}
	for _, d := range f.decls {
		if d.IndexCode == indexCode {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !util.SameDate(out[i].EffectiveDate, out[j].EffectiveDate) {
			return out[i].EffectiveDate.Before(out[j].EffectiveDate)
		}
		return out[i].Ticker < out[j].Ticker
	})
	return out, nil
}

func (f *fakePortfolioRepository) Add(_ *sql.Tx, decls []model.PortfolioDecl) error {
	f.decls = append(f.decls, decls...)
	return nil
}

type fakeHoldingsRepository struct {
	rows []model.Holdings
}

func (f *fakeHoldingsRepository) Replace(_ *sql.Tx, indexCode string, rebalanceDate time.Time, holdings []model.Holdings) error {
	kept := []model.Holdings{}
	for _, h := range f.rows {
		if h.IndexCode == indexCode && util.SameDate(h.RebalanceDate, rebalanceDate) {
			continue
		}
		kept = append(kept, h)
	}
	f.rows = append(kept, holdings...)
	return nil
}

func (f *fakeHoldingsRepository) GetActive(indexCode string, date time.Time) ([]model.Holdings, error) {
	var latest *time.Time
	for _, h := range f.rows {
		if h.IndexCode != indexCode || !util.DateLte(h.RebalanceDate, date) {
			continue
		}
		if latest == nil || h.RebalanceDate.After(*latest) {
			t := h.RebalanceDate
			latest = &t
		}
	}
	if latest == nil {
		return nil, nil
	}
	out := []model.Holdings{}
	for _, h := range f.rows {
		if h.IndexCode == indexCode && util.SameDate(h.RebalanceDate, *latest) {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ticker < out[j].Ticker })
	return out, nil
}

type fakeDivisorRepository struct {
	rows []model.Divisor
}

func (f *fakeDivisorRepository) Upsert(_ *sql.Tx, divisor model.Divisor) error {
	for i, d := range f.rows {
		if d.IndexCode == divisor.IndexCode && util.SameDate(d.RebalanceDate, divisor.RebalanceDate) {
			f.rows[i] = divisor
			return nil
		}
	}
	f.rows = append(f.rows, divisor)
	return nil
}

func (f *fakeDivisorRepository) GetActive(indexCode string, date time.Time) (*model.Divisor, error) {
	var best *model.Divisor
	for _, d := range f.rows {
		d := d
		if d.IndexCode != indexCode || !util.DateLte(d.RebalanceDate, date) {
			continue
		}
		if best == nil || d.RebalanceDate.After(best.RebalanceDate) {
			best = &d
		}
	}
	return best, nil
}

type fakeIndexLevelRepository struct {
	rows map[string]model.IndexLevel
}

func newFakeIndexLevelRepository() *fakeIndexLevelRepository {
	return &fakeIndexLevelRepository{rows: map[string]model.IndexLevel{}}
}

func (f *fakeIndexLevelRepository) Upsert(_ *sql.Tx, level model.IndexLevel) error {
	f.rows[level.IndexCode+"|"+level.TradeDate.Format(time.DateOnly)] = level
	return nil
}

func (f *fakeIndexLevelRepository) List(indexCode string, start, end time.Time) ([]model.IndexLevel, error) {
	out := []model.IndexLevel{}
	for _, l := range f.rows {
		if l.IndexCode == indexCode && util.DateLte(start, l.TradeDate) && util.DateLte(l.TradeDate, end) {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TradeDate.Before(out[j].TradeDate) })
	return out, nil
}

func (f *fakeIndexLevelRepository) GetLatestBefore(indexCode string, date time.Time) (*model.IndexLevel, error) {
	var best *model.IndexLevel
	for _, l := range f.rows {
		l := l
		if l.IndexCode != indexCode || !l.TradeDate.Before(date) {
			continue
		}
		if best == nil || l.TradeDate.After(best.TradeDate) {
			best = &l
		}
	}
	return best, nil
}

func (f *fakeIndexLevelRepository) DeleteRange(_ *sql.Tx, indexCode string, start, end time.Time) error {
	for key, l := range f.rows {
		if l.IndexCode == indexCode && util.DateLte(start, l.TradeDate) && util.DateLte(l.TradeDate, end) {
			delete(f.rows, key)
		}
	}
	return nil
}

type fakeConstituentDailyRepository struct {
	rows map[string]model.ConstituentDaily
}

func newFakeConstituentDailyRepository() *fakeConstituentDailyRepository {
	return &fakeConstituentDailyRepository{rows: map[string]model.ConstituentDaily{}}
}

func (f *fakeConstituentDailyRepository) Upsert(_ *sql.Tx, rows []model.ConstituentDaily) error {
	for _, r := range rows {
		f.rows[r.TradeDate.Format(time.DateOnly)+"|"+r.Ticker] = r
	}
	return nil
}

func (f *fakeConstituentDailyRepository) List(indexCode string, start, end time.Time) ([]model.ConstituentDaily, error) {
	out := []model.ConstituentDaily{}
	for _, r := range f.rows {
		if r.IndexCode == indexCode && util.DateLte(start, r.TradeDate) && util.DateLte(r.TradeDate, end) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !util.SameDate(out[i].TradeDate, out[j].TradeDate) {
			return out[i].TradeDate.Before(out[j].TradeDate)
		}
		return out[i].Ticker < out[j].Ticker
	})
	return out, nil
}

func (f *fakeConstituentDailyRepository) DeleteRange(_ *sql.Tx, indexCode string, start, end time.Time) error {
	for key, r := range f.rows {
		if r.IndexCode == indexCode && util.DateLte(start, r.TradeDate) && util.DateLte(r.TradeDate, end) {
			delete(f.rows, key)
		}
	}
	return nil
}

type fakeContributionDailyRepository struct {
	rows map[string]model.ContributionDaily
}

func newFakeContributionDailyRepository() *fakeContributionDailyRepository {
	return &fakeContributionDailyRepository{rows: map[string]model.ContributionDaily{}}
}

func (f *fakeContributionDailyRepository) Upsert(_ *sql.Tx, rows []model.ContributionDaily) error {
	for _, r := range rows {
		f.rows[r.TradeDate.Format(time.DateOnly)+"|"+r.Ticker] = r
	}
	return nil
}

func (f *fakeContributionDailyRepository) DeleteRange(_ *sql.Tx, indexCode string, start, end time.Time) error {
	for key, r := range f.rows {
		if r.IndexCode == indexCode && util.DateLte(start, r.TradeDate) && util.DateLte(r.TradeDate, end) {
			delete(f.rows, key)
		}
	}
	return nil
}

type fakeStatsDailyRepository struct {
	rows map[string]model.StatsDaily
}

func newFakeStatsDailyRepository() *fakeStatsDailyRepository {
	return &fakeStatsDailyRepository{rows: map[string]model.StatsDaily{}}
}

func (f *fakeStatsDailyRepository) Upsert(_ *sql.Tx, row model.StatsDaily) error {
	f.rows[row.TradeDate.Format(time.DateOnly)] = row
	return nil
}

func (f *fakeStatsDailyRepository) List(indexCode string, start, end time.Time) ([]model.StatsDaily, error) {
	out := []model.StatsDaily{}
	for _, r := range f.rows {
		if r.IndexCode == indexCode && util.DateLte(start, r.TradeDate) && util.DateLte(r.TradeDate, end) {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TradeDate.Before(out[j].TradeDate) })
	return out, nil
}

func (f *fakeStatsDailyRepository) DeleteRange(_ *sql.Tx, indexCode string, start, end time.Time) error {
	for key, r := range f.rows {
		if r.IndexCode == indexCode && util.DateLte(start, r.TradeDate) && util.DateLte(r.TradeDate, end) {
			delete(f.rows, key)
		}
	}
	return nil
}

type fakeAlertLogRepository struct {
	inserted map[string]bool
}

func newFakeAlertLogRepository() *fakeAlertLogRepository {
	return &fakeAlertLogRepository{inserted: map[string]bool{}}
}

func (f *fakeAlertLogRepository) TryInsert(_ *sql.Tx, key string, day time.Time, _ string) (bool, error) {
	k := key + "|" + day.Format(time.DateOnly)
	if f.inserted[k] {
		return false, nil
	}
	f.inserted[k] = true
	return true, nil
}

type sentEmail struct {
	To      string
	Subject string
	Body    string
}

type fakeEmailRepository struct {
	sent []sentEmail
}

func (f *fakeEmailRepository) SendEmail(to, subject, body string) error {
	f.sent = append(f.sent, sentEmail{To: to, Subject: subject, Body: body})
	return nil
}
