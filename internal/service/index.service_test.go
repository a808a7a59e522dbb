package service

import (
	"context"
	"testing"
	"time"

	"tech100/internal/db/models/postgres/public/model"
	"tech100/internal/domain"
	"tech100/internal/util"

	"github.com/stretchr/testify/require"
)

type indexFixture struct {
	canonRepo        *fakeCanonicalPriceRepository
	portfolioRepo    *fakePortfolioRepository
	holdingsRepo     *fakeHoldingsRepository
	divisorRepo      *fakeDivisorRepository
	levelRepo        *fakeIndexLevelRepository
	constituentRepo  *fakeConstituentDailyRepository
	contributionRepo *fakeContributionDailyRepository
	statsRepo        *fakeStatsDailyRepository
	cfg              domain.IndexConfig
}

func newIndexFixture() *indexFixture {
	return &indexFixture{
		canonRepo:        newFakeCanonicalPriceRepository(),
		portfolioRepo:    &fakePortfolioRepository{},
		holdingsRepo:     &fakeHoldingsRepository{},
		divisorRepo:      &fakeDivisorRepository{},
		levelRepo:        newFakeIndexLevelRepository(),
		constituentRepo:  newFakeConstituentDailyRepository(),
		contributionRepo: newFakeContributionDailyRepository(),
		statsRepo:        newFakeStatsDailyRepository(),
		cfg:              domain.DefaultIndexConfig(),
	}
}

func (f *indexFixture) service() IndexService {
	return NewIndexService(
		nil,
		&fakeTradingDayRepository{},
		f.portfolioRepo,
		f.canonRepo,
		f.holdingsRepo,
		f.divisorRepo,
		f.levelRepo,
		f.constituentRepo,
		f.contributionRepo,
		f.statsRepo,
		f.cfg,
	)
}

func (f *indexFixture) addPrice(ticker string, date time.Time, price float64) {
	if err := f.canonRepo.Upsert(nil, []model.PricesCanon{canonRow(ticker, date, price, model.PriceQuality_High)}); err != nil {
		panic(err)
	}
}

func TestIndexServiceRecompute(t *testing.T) {
	ctx := context.Background()

	// Tue through Thu
	day1 := util.NewDate(2024, 1, 2)
	day2 := util.NewDate(2024, 1, 3)
	day3 := util.NewDate(2024, 1, 4)

	t.Run("bootstrap pins the base level and moves with prices", func(t *testing.T) {
		f := newIndexFixture()
		f.portfolioRepo.decls = declarations(f.cfg.IndexCode, day1, "AAA", "BBB")
		f.addPrice("AAA", day1, 100)
		f.addPrice("BBB", day1, 200)
		f.addPrice("AAA", day2, 110)
		f.addPrice("BBB", day2, 190)

		summary, err := f.service().Recompute(ctx, day1, day2, RecomputeOptions{})
		require.NoError(t, err)
		require.Equal(t, 2, summary.DaysPublished)
		require.Equal(t, 1, summary.Rebalances)
		require.Empty(t, summary.GapDays)

		levels, err := f.levelRepo.List(f.cfg.IndexCode, day1, day2)
		require.NoError(t, err)
		require.Len(t, levels, 2)
		require.InDelta(t, 1000.0, levels[0].Level, 1e-9)
		require.True(t, levels[0].RebalanceFlag)
		require.InDelta(t, 1025.0, levels[1].Level, 1e-9)
		require.False(t, levels[1].RebalanceFlag)

		holdings, err := f.holdingsRepo.GetActive(f.cfg.IndexCode, day2)
		require.NoError(t, err)
		require.Len(t, holdings, 2)
		require.InDelta(t, 5.0, holdings[0].Shares.InexactFloat64(), 1e-9)
		require.InDelta(t, 2.5, holdings[1].Shares.InexactFloat64(), 1e-9)

		divisor, err := f.divisorRepo.GetActive(f.cfg.IndexCode, day1)
		require.NoError(t, err)
		require.NotNil(t, divisor)
		require.Equal(t, "INITIAL", divisor.Reason)

		stats, err := f.statsRepo.List(f.cfg.IndexCode, day2, day2)
		require.NoError(t, err)
		require.Len(t, stats, 1)
		require.NotNil(t, stats[0].Ret1d)
		require.InDelta(t, 0.025, *stats[0].Ret1d, 1e-12)
		require.Equal(t, int32(2), stats[0].NConstituents)
	})

	t.Run("membership change keeps the level continuous", func(t *testing.T) {
		f := newIndexFixture()
		f.portfolioRepo.decls = declarations(f.cfg.IndexCode, day1, "AAA", "BBB")
		f.portfolioRepo.decls = append(f.portfolioRepo.decls,
			declarations(f.cfg.IndexCode, day3, "AAA", "BBB", "CCC")...)
		f.addPrice("AAA", day1, 100)
		f.addPrice("BBB", day1, 200)
		f.addPrice("AAA", day2, 110)
		f.addPrice("BBB", day2, 190)
		f.addPrice("CCC", day2, 50)
		f.addPrice("AAA", day3, 110)
		f.addPrice("BBB", day3, 190)
		f.addPrice("CCC", day3, 50)

		summary, err := f.service().Recompute(ctx, day1, day3, RecomputeOptions{})
		require.NoError(t, err)
		require.Equal(t, 2, summary.Rebalances)

		levels, err := f.levelRepo.List(f.cfg.IndexCode, day1, day3)
		require.NoError(t, err)
		require.Len(t, levels, 3)
		require.True(t, levels[2].RebalanceFlag)

		// day-3 prices equal day-2 prices, so the rebalance itself must
		// not move the level
		require.InDelta(t, levels[1].Level, levels[2].Level, 1e-9)

		holdings, err := f.holdingsRepo.GetActive(f.cfg.IndexCode, day3)
		require.NoError(t, err)
		require.Len(t, holdings, 3)

		// equal target weights after the rebalance
		constituents, err := f.constituentRepo.List(f.cfg.IndexCode, day3, day3)
		require.NoError(t, err)
		require.Len(t, constituents, 3)
		for _, c := range constituents {
			require.InDelta(t, 1.0/3.0, c.Weight, 1e-9)
		}
	})

	t.Run("contributions reconcile to the index return", func(t *testing.T) {
		f := newIndexFixture()
		f.portfolioRepo.decls = declarations(f.cfg.IndexCode, day1, "AAA", "BBB")
		f.addPrice("AAA", day1, 100)
		f.addPrice("BBB", day1, 200)
		f.addPrice("AAA", day2, 110)
		f.addPrice("BBB", day2, 190)

		_, err := f.service().Recompute(ctx, day1, day2, RecomputeOptions{})
		require.NoError(t, err)

		total := 0.0
		for _, c := range f.contributionRepo.rows {
			require.True(t, util.SameDate(day2, c.TradeDate))
			total += c.Contribution
		}
		require.InDelta(t, 0.025, total, 1e-12)
	})

	t.Run("coverage gap leaves no level row", func(t *testing.T) {
		f := newIndexFixture()
		f.portfolioRepo.decls = declarations(f.cfg.IndexCode, day1, "AAA", "BBB")
		f.addPrice("AAA", day1, 100)
		f.addPrice("BBB", day1, 200)
		f.addPrice("AAA", day2, 110)

		summary, err := f.service().Recompute(ctx, day1, day2, RecomputeOptions{})
		require.NoError(t, err)
		require.Equal(t, 1, summary.DaysPublished)
		require.Equal(t, []string{"2024-01-03"}, summary.GapDays)

		levels, err := f.levelRepo.List(f.cfg.IndexCode, day1, day2)
		require.NoError(t, err)
		require.Len(t, levels, 1)
	})

	t.Run("no 1d return off a coverage-gap day", func(t *testing.T) {
		f := newIndexFixture()
		f.portfolioRepo.decls = declarations(f.cfg.IndexCode, day1, "AAA", "BBB")
		f.addPrice("AAA", day1, 100)
		f.addPrice("BBB", day1, 200)
		f.addPrice("AAA", day2, 110)
		f.addPrice("AAA", day3, 115)
		f.addPrice("BBB", day3, 210)

		summary, err := f.service().Recompute(ctx, day1, day3, RecomputeOptions{})
		require.NoError(t, err)
		require.Equal(t, []string{"2024-01-03"}, summary.GapDays)

		// day3's previous trading day has no level, so the 1d return is
		// undefined rather than measured against day1
		stats, err := f.statsRepo.List(f.cfg.IndexCode, day3, day3)
		require.NoError(t, err)
		require.Len(t, stats, 1)
		require.Nil(t, stats[0].Ret1d)
	})

	t.Run("resumed run keeps the gap in the stat windows", func(t *testing.T) {
		f := newIndexFixture()
		f.portfolioRepo.decls = declarations(f.cfg.IndexCode, day1, "AAA", "BBB")
		f.addPrice("AAA", day1, 100)
		f.addPrice("BBB", day1, 200)
		f.addPrice("AAA", day2, 110)
		f.addPrice("AAA", day3, 115)
		f.addPrice("BBB", day3, 210)

		summary, err := f.service().Recompute(ctx, day1, day2, RecomputeOptions{})
		require.NoError(t, err)
		require.Equal(t, []string{"2024-01-03"}, summary.GapDays)

		_, err = f.service().Recompute(ctx, day3, day3, RecomputeOptions{})
		require.NoError(t, err)

		levels, err := f.levelRepo.List(f.cfg.IndexCode, day3, day3)
		require.NoError(t, err)
		require.Len(t, levels, 1)
		require.InDelta(t, 1100.0, levels[0].Level, 1e-9)

		stats, err := f.statsRepo.List(f.cfg.IndexCode, day3, day3)
		require.NoError(t, err)
		require.Len(t, stats, 1)
		require.Nil(t, stats[0].Ret1d)
	})

	t.Run("strict mode fails on a missing price", func(t *testing.T) {
		f := newIndexFixture()
		f.portfolioRepo.decls = declarations(f.cfg.IndexCode, day1, "AAA", "BBB")
		f.addPrice("AAA", day1, 100)
		f.addPrice("BBB", day1, 200)
		f.addPrice("AAA", day2, 110)

		_, err := f.service().Recompute(ctx, day1, day2, RecomputeOptions{Strict: true})
		require.Error(t, err)
		require.IsType(t, domain.DataUnavailableError{}, err)
	})

	t.Run("resumes from published state", func(t *testing.T) {
		f := newIndexFixture()
		f.portfolioRepo.decls = declarations(f.cfg.IndexCode, day1, "AAA", "BBB")
		f.addPrice("AAA", day1, 100)
		f.addPrice("BBB", day1, 200)
		f.addPrice("AAA", day2, 110)
		f.addPrice("BBB", day2, 190)

		_, err := f.service().Recompute(ctx, day1, day1, RecomputeOptions{})
		require.NoError(t, err)

		summary, err := f.service().Recompute(ctx, day2, day2, RecomputeOptions{})
		require.NoError(t, err)
		require.Equal(t, 0, summary.Rebalances)

		levels, err := f.levelRepo.List(f.cfg.IndexCode, day2, day2)
		require.NoError(t, err)
		require.Len(t, levels, 1)
		require.InDelta(t, 1025.0, levels[0].Level, 1e-9)
	})

	t.Run("rebuild clears and recomputes the range", func(t *testing.T) {
		f := newIndexFixture()
		f.portfolioRepo.decls = declarations(f.cfg.IndexCode, day1, "AAA", "BBB")
		f.addPrice("AAA", day1, 100)
		f.addPrice("BBB", day1, 200)
		f.addPrice("AAA", day2, 110)
		f.addPrice("BBB", day2, 190)

		_, err := f.service().Recompute(ctx, day1, day2, RecomputeOptions{})
		require.NoError(t, err)

		// a corrected price lands; rebuild picks it up
		f.addPrice("AAA", day2, 120)
		_, err = f.service().Recompute(ctx, day1, day2, RecomputeOptions{Rebuild: true})
		require.NoError(t, err)

		levels, err := f.levelRepo.List(f.cfg.IndexCode, day1, day2)
		require.NoError(t, err)
		require.Len(t, levels, 2)
		require.InDelta(t, 1075.0, levels[1].Level, 1e-9)
	})

	t.Run("no declarations is a configuration error", func(t *testing.T) {
		f := newIndexFixture()
		_, err := f.service().Recompute(ctx, day1, day2, RecomputeOptions{})
		require.Error(t, err)
		require.IsType(t, domain.ConfigurationError{}, err)
	})
}
