package service

import (
	"context"
	"testing"
	"time"

	"tech100/internal/db/models/postgres/public/model"
	"tech100/internal/domain"
	"tech100/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func canonRow(ticker string, date time.Time, price float64, quality model.PriceQuality) model.PricesCanon {
	provider := "PRIMARY"
	return model.PricesCanon{
		Ticker:         ticker,
		TradeDate:      date,
		CanonClose:     util.DecimalPointer(decimal.NewFromFloat(price)),
		CanonAdjClose:  util.DecimalPointer(decimal.NewFromFloat(price)),
		ChosenProvider: &provider,
		ProvidersOk:    2,
		Quality:        quality,
		ComputedAt:     time.Now().UTC(),
	}
}

func declarations(indexCode string, effective time.Time, tickers ...string) []model.PortfolioDecl {
	decls := make([]model.PortfolioDecl, 0, len(tickers))
	for _, t := range tickers {
		decls = append(decls, model.PortfolioDecl{
			IndexCode:     indexCode,
			EffectiveDate: effective,
			Ticker:        t,
		})
	}
	return decls
}

func TestCompletenessService(t *testing.T) {
	ctx := context.Background()
	cfg := domain.DefaultIndexConfig()
	cfg.MinDailyCoverage = 0.95
	cfg.MaxBadDays = 0

	// Tue and Wed; the weekday fallback is exercised by leaving the
	// trading calendar empty
	day1 := util.NewDate(2024, 1, 2)
	day2 := util.NewDate(2024, 1, 3)
	effective := util.NewDate(2024, 1, 1)

	build := func(canonRepo *fakeCanonicalPriceRepository, alerts AlertService, cfg domain.IndexConfig) CompletenessService {
		return NewCompletenessService(
			&fakeTradingDayRepository{},
			&fakePortfolioRepository{decls: declarations(cfg.IndexCode, effective, "AAA", "BBB", "CCC", "DDD")},
			canonRepo,
			alerts,
			cfg,
		)
	}

	t.Run("full coverage passes", func(t *testing.T) {
		canonRepo := newFakeCanonicalPriceRepository()
		for _, ticker := range []string{"AAA", "BBB", "CCC", "DDD"} {
			require.NoError(t, canonRepo.Upsert(nil, []model.PricesCanon{
				canonRow(ticker, day1, 100, model.PriceQuality_High),
				canonRow(ticker, day2, 101, model.PriceQuality_High),
			}))
		}

		report, err := build(canonRepo, nil, cfg).Check(ctx, day1, day2)
		require.NoError(t, err)
		require.Equal(t, domain.CompletenessStatusPass, report.Status)
		require.Equal(t, 0, report.BadDays)
		require.Len(t, report.Days, 2)
	})

	t.Run("one missing ticker fails the window", func(t *testing.T) {
		canonRepo := newFakeCanonicalPriceRepository()
		for _, ticker := range []string{"AAA", "BBB", "CCC", "DDD"} {
			require.NoError(t, canonRepo.Upsert(nil, []model.PricesCanon{canonRow(ticker, day1, 100, model.PriceQuality_High)}))
		}
		for _, ticker := range []string{"AAA", "BBB", "CCC"} {
			require.NoError(t, canonRepo.Upsert(nil, []model.PricesCanon{canonRow(ticker, day2, 101, model.PriceQuality_High)}))
		}

		alertLog := newFakeAlertLogRepository()
		email := &fakeEmailRepository{}
		alerts := NewAlertService(alertLog, email, "ops@example.com")

		report, err := build(canonRepo, alerts, cfg).Check(ctx, day1, day2)
		require.NoError(t, err)
		require.Equal(t, domain.CompletenessStatusFail, report.Status)
		require.Equal(t, 1, report.BadDays)
		require.Equal(t, map[string]int{"DDD": 1}, report.MissingByTicker)
		require.Len(t, report.WorstDates, 1)
		require.True(t, util.SameDate(day2, report.WorstDates[0].Date))

		// alert delivered once, suppressed on re-check
		require.Len(t, email.sent, 1)
		_, err = build(canonRepo, alerts, cfg).Check(ctx, day1, day2)
		require.NoError(t, err)
		require.Len(t, email.sent, 1)
	})

	t.Run("market-wide dark day is a holiday, not a failure", func(t *testing.T) {
		canonRepo := newFakeCanonicalPriceRepository()
		for _, ticker := range []string{"AAA", "BBB", "CCC", "DDD"} {
			require.NoError(t, canonRepo.Upsert(nil, []model.PricesCanon{canonRow(ticker, day1, 100, model.PriceQuality_High)}))
		}

		report, err := build(canonRepo, nil, cfg).Check(ctx, day1, day2)
		require.NoError(t, err)
		require.Equal(t, domain.CompletenessStatusPass, report.Status)
		require.True(t, report.Days[1].Holiday)
		require.False(t, report.Days[1].Bad)
	})

	t.Run("imputed rows do not count as coverage", func(t *testing.T) {
		canonRepo := newFakeCanonicalPriceRepository()
		for _, ticker := range []string{"AAA", "BBB", "CCC"} {
			require.NoError(t, canonRepo.Upsert(nil, []model.PricesCanon{canonRow(ticker, day1, 100, model.PriceQuality_High)}))
		}
		require.NoError(t, canonRepo.Upsert(nil, []model.PricesCanon{canonRow("DDD", day1, 100, model.PriceQuality_Imputed)}))

		report, err := build(canonRepo, nil, cfg).Check(ctx, day1, day1)
		require.NoError(t, err)
		require.Equal(t, domain.CompletenessStatusFail, report.Status)
		require.Equal(t, 3, report.Days[0].Ok)
	})

	t.Run("days before the first declaration are recorded as dark", func(t *testing.T) {
		preInception := util.NewDate(2023, 12, 29)

		report, err := build(newFakeCanonicalPriceRepository(), nil, cfg).Check(ctx, preInception, preInception)
		require.NoError(t, err)
		require.Equal(t, domain.CompletenessStatusPass, report.Status)
		require.Len(t, report.Days, 1)
		require.Equal(t, 0, report.Days[0].Expected)
		require.True(t, report.Days[0].Holiday)
		require.False(t, report.Days[0].Bad)
	})

	t.Run("no declarations is a configuration error", func(t *testing.T) {
		svc := NewCompletenessService(
			&fakeTradingDayRepository{}, &fakePortfolioRepository{}, newFakeCanonicalPriceRepository(), nil, cfg)
		_, err := svc.Check(ctx, day1, day2)
		require.Error(t, err)
		require.IsType(t, domain.ConfigurationError{}, err)
	})
}
