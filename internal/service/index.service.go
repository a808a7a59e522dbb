package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"tech100/internal/calculator"
	"tech100/internal/db/models/postgres/public/model"
	"tech100/internal/domain"
	"tech100/internal/logger"
	"tech100/internal/repository"
	"tech100/internal/util"

	"github.com/shopspring/decimal"
)

const (
	divisorReasonInitial   = "INITIAL"
	divisorReasonRebalance = "REBALANCE"

	// calendar-day lookback that safely covers 20 trading days of level
	// history plus a prior-day price buffer
	historyBufferDays = 45
)

type RecomputeOptions struct {
	// Rebuild clears previously published rows in the range before
	// recomputing, for threshold or membership corrections.
	Rebuild bool
	// Strict turns any missing constituent price into a hard failure
	// instead of a coverage gap.
	Strict bool
}

type RecomputeSummary struct {
	DaysPublished int
	Rebalances    int
	// days where coverage fell below the floor and no level was written
	GapDays []string
}

func (s RecomputeSummary) String() string {
	return fmt.Sprintf("published=%d rebalances=%d gaps=%d", s.DaysPublished, s.Rebalances, len(s.GapDays))
}

// IndexService runs the daily index engine: rebalances on declared
// membership changes, levels, weights, contributions, and rolling stats.
type IndexService interface {
	Recompute(ctx context.Context, start, end time.Time, opts RecomputeOptions) (*RecomputeSummary, error)
}

type indexServiceHandler struct {
	// nil in unit tests; repositories then run untransacted
	Db *sql.DB

	TradingDayRepository        repository.TradingDayRepository
	PortfolioRepository         repository.PortfolioRepository
	CanonicalPriceRepository    repository.CanonicalPriceRepository
	HoldingsRepository          repository.HoldingsRepository
	DivisorRepository           repository.DivisorRepository
	IndexLevelRepository        repository.IndexLevelRepository
	ConstituentDailyRepository  repository.ConstituentDailyRepository
	ContributionDailyRepository repository.ContributionDailyRepository
	StatsDailyRepository        repository.StatsDailyRepository
	Config                      domain.IndexConfig
}

func NewIndexService(
	db *sql.DB,
	tradingDayRepository repository.TradingDayRepository,
	portfolioRepository repository.PortfolioRepository,
	canonicalPriceRepository repository.CanonicalPriceRepository,
	holdingsRepository repository.HoldingsRepository,
	divisorRepository repository.DivisorRepository,
	indexLevelRepository repository.IndexLevelRepository,
	constituentDailyRepository repository.ConstituentDailyRepository,
	contributionDailyRepository repository.ContributionDailyRepository,
	statsDailyRepository repository.StatsDailyRepository,
	config domain.IndexConfig,
) IndexService {
	return &indexServiceHandler{
		Db:                          db,
		TradingDayRepository:        tradingDayRepository,
		PortfolioRepository:         portfolioRepository,
		CanonicalPriceRepository:    canonicalPriceRepository,
		HoldingsRepository:          holdingsRepository,
		DivisorRepository:           divisorRepository,
		IndexLevelRepository:        indexLevelRepository,
		ConstituentDailyRepository:  constituentDailyRepository,
		ContributionDailyRepository: contributionDailyRepository,
		StatsDailyRepository:        statsDailyRepository,
		Config:                      config,
	}
}

// engineState is the running context the daily loop carries from one
// trading day to the next.
type engineState struct {
	shares       map[string]float64
	divisor      float64
	priorLevel   *float64
	priorWeights map[string]float64
	priorPrices  map[string]float64

	// effective date of the last declaration applied as a rebalance
	lastApplied *time.Time

	levelHistory []calculator.LevelPoint
}

func (h *indexServiceHandler) Recompute(ctx context.Context, start, end time.Time, opts RecomputeOptions) (*RecomputeSummary, error) {
	log := logger.FromContext(ctx)

	if end.Before(start) {
		return nil, domain.NewConfigurationError("recompute range ends (%s) before it starts (%s)", end.Format(time.DateOnly), start.Format(time.DateOnly))
	}

	days, err := h.tradingDays(start, end)
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, domain.NewConfigurationError("no trading days between %s and %s", start.Format(time.DateOnly), end.Format(time.DateOnly))
	}

	decls, err := h.PortfolioRepository.ListDeclarations(h.Config.IndexCode)
	if err != nil {
		return nil, fmt.Errorf("failed to load portfolio declarations: %w", err)
	}
	if len(decls) == 0 {
		return nil, domain.NewConfigurationError("no portfolio declarations for %s", h.Config.IndexCode)
	}

	if opts.Rebuild {
		if err := h.clearRange(start, end); err != nil {
			return nil, err
		}
	}

	book, err := h.loadPriceBook(start.AddDate(0, 0, -historyBufferDays), end)
	if err != nil {
		return nil, err
	}

	state, err := h.loadState(start)
	if err != nil {
		return nil, err
	}

	priorDay, err := h.priorTradingDay(start)
	if err != nil {
		return nil, err
	}

	summary := &RecomputeSummary{GapDays: []string{}}
	for i, day := range days {
		prev := priorDay
		if i > 0 {
			prev = &days[i-1]
		}

		if err := h.computeDay(ctx, day, prev, decls, book, state, opts, summary); err != nil {
			return nil, err
		}
	}

	log.Infow("recompute complete",
		"published", summary.DaysPublished, "rebalances", summary.Rebalances, "gaps", len(summary.GapDays))
	return summary, nil
}

func (h *indexServiceHandler) computeDay(
	ctx context.Context,
	day time.Time,
	prev *time.Time,
	decls []model.PortfolioDecl,
	book *domain.PriceBook,
	state *engineState,
	opts RecomputeOptions,
	summary *RecomputeSummary,
) error {
	log := logger.FromContext(ctx)

	tx, commit, rollback, err := h.begin()
	if err != nil {
		return err
	}
	defer rollback()

	rebalanced, err := h.maybeRebalance(ctx, tx, day, prev, decls, book, state, opts.Strict)
	if err != nil {
		return err
	}
	if rebalanced {
		summary.Rebalances++
	}

	if len(state.shares) == 0 {
		// before inception there is nothing to price
		return commit()
	}

	tickers := make([]string, 0, len(state.shares))
	for t := range state.shares {
		tickers = append(tickers, t)
	}
	prices := book.PriceMap(tickers, day)

	valuation := calculator.ComputeValuation(calculator.ValuationInput{
		Shares:      state.shares,
		Prices:      prices,
		Divisor:     state.divisor,
		MinCoverage: h.Config.MinLevelCoverage,
	})

	if opts.Strict && len(valuation.Missing) > 0 {
		return domain.NewDataUnavailableError("no canonical price for %v on %s", valuation.Missing, day.Format(time.DateOnly))
	}
	if valuation.Level == nil {
		// a coverage gap stays a gap: no level row, no zero
		summary.GapDays = append(summary.GapDays, day.Format(time.DateOnly))
		log.Warnw("level undefined, coverage below floor",
			"date", day.Format(time.DateOnly), "coverage", valuation.Coverage, "missing", valuation.Missing)
		if err := commit(); err != nil {
			return err
		}
		// the gap stays visible to the rolling stat windows as a nil point
		state.levelHistory = append(state.levelHistory, calculator.LevelPoint{Date: day})
		return nil
	}

	if err := h.persistDay(tx, day, rebalanced, book, state, valuation, prices); err != nil {
		return err
	}
	if err := commit(); err != nil {
		return err
	}

	summary.DaysPublished++
	state.priorLevel = valuation.Level
	state.priorWeights = valuation.Weights
	state.priorPrices = prices
	state.levelHistory = append(state.levelHistory, calculator.LevelPoint{Date: day, Level: valuation.Level})
	return nil
}

// maybeRebalance applies the latest declaration whose effective date has
// been reached but not yet taken effect. Share counts are set from
// prior-day prices so the rebalance itself never moves the level.
func (h *indexServiceHandler) maybeRebalance(
	ctx context.Context,
	tx *sql.Tx,
	day time.Time,
	prev *time.Time,
	decls []model.PortfolioDecl,
	book *domain.PriceBook,
	state *engineState,
	strict bool,
) (bool, error) {
	log := logger.FromContext(ctx)

	var pending *time.Time
	for _, d := range decls {
		if util.DateLte(d.EffectiveDate, day) {
			t := d.EffectiveDate
			pending = &t
		}
	}
	if pending == nil {
		return false, nil
	}
	if state.lastApplied != nil && util.DateLte(*pending, *state.lastApplied) {
		return false, nil
	}

	tickers := declaredUniverse(decls, day)
	bootstrap := state.priorLevel == nil

	priorLevel := h.Config.BaseLevel
	priorDivisor := 1.0
	pricingDay := day
	reason := divisorReasonInitial
	if !bootstrap {
		priorLevel = *state.priorLevel
		priorDivisor = state.divisor
		reason = divisorReasonRebalance
		if prev == nil {
			return false, domain.NewDataUnavailableError("no prior trading day before rebalance on %s", day.Format(time.DateOnly))
		}
		pricingDay = *prev
	}

	result, err := calculator.ComputeRebalance(calculator.RebalanceInput{
		Tickers:      tickers,
		PriorPrices:  book.PriceMap(tickers, pricingDay),
		PriorLevel:   priorLevel,
		PriorDivisor: priorDivisor,
	})
	if err != nil {
		if !strict {
			var dataErr domain.DataUnavailableError
			if errors.As(err, &dataErr) {
				// keep the holdings in force; the declaration is retried
				// on the next trading day
				log.Warnw("rebalance deferred", "date", day.Format(time.DateOnly), "error", err)
				return false, nil
			}
		}
		return false, err
	}

	holdings := make([]model.Holdings, 0, len(result.Shares))
	for _, ticker := range tickers {
		holdings = append(holdings, model.Holdings{
			IndexCode:     h.Config.IndexCode,
			RebalanceDate: util.Midnight(day),
			Ticker:        ticker,
			Shares:        decimal.NewFromFloat(result.Shares[ticker]),
			TargetWeight:  result.TargetWeight,
		})
	}
	if err := h.HoldingsRepository.Replace(tx, h.Config.IndexCode, day, holdings); err != nil {
		return false, fmt.Errorf("failed to store holdings: %w", err)
	}

	err = h.DivisorRepository.Upsert(tx, model.Divisor{
		IndexCode:     h.Config.IndexCode,
		RebalanceDate: util.Midnight(day),
		Divisor:       result.NewDivisor,
		Reason:        reason,
	})
	if err != nil {
		return false, fmt.Errorf("failed to store divisor: %w", err)
	}

	state.shares = result.Shares
	state.divisor = result.NewDivisor
	state.lastApplied = pending

	log.Infow("rebalanced",
		"date", day.Format(time.DateOnly), "constituents", len(tickers), "divisor", result.NewDivisor, "reason", reason)
	return true, nil
}

func (h *indexServiceHandler) persistDay(
	tx *sql.Tx,
	day time.Time,
	rebalanced bool,
	book *domain.PriceBook,
	state *engineState,
	valuation calculator.Valuation,
	prices map[string]float64,
) error {
	err := h.IndexLevelRepository.Upsert(tx, model.IndexLevel{
		IndexCode:     h.Config.IndexCode,
		TradeDate:     util.Midnight(day),
		Level:         *valuation.Level,
		RebalanceFlag: rebalanced,
		Divisor:       state.divisor,
	})
	if err != nil {
		return fmt.Errorf("failed to store index level: %w", err)
	}

	constituents := []model.ConstituentDaily{}
	imputedCount := 0
	for ticker, price := range prices {
		imputed := false
		if p, ok := book.Get(ticker, day); ok {
			imputed = p.Imputed
		}
		if imputed {
			imputedCount++
		}
		constituents = append(constituents, model.ConstituentDaily{
			IndexCode:   h.Config.IndexCode,
			TradeDate:   util.Midnight(day),
			Ticker:      ticker,
			ClosePrice:  price,
			Shares:      decimal.NewFromFloat(state.shares[ticker]),
			MarketValue: state.shares[ticker] * price,
			Weight:      valuation.Weights[ticker],
			Imputed:     imputed,
		})
	}
	if err := h.ConstituentDailyRepository.Upsert(tx, constituents); err != nil {
		return fmt.Errorf("failed to store constituent rows: %w", err)
	}

	if len(state.priorWeights) > 0 {
		contributions := calculator.ComputeContributions(state.priorWeights, state.priorPrices, prices)
		rows := make([]model.ContributionDaily, 0, len(contributions))
		for ticker, c := range contributions {
			rows = append(rows, model.ContributionDaily{
				IndexCode:    h.Config.IndexCode,
				TradeDate:    util.Midnight(day),
				Ticker:       ticker,
				PriorWeight:  c.PriorWeight,
				PriceReturn:  c.PriceReturn,
				Contribution: c.Contribution,
			})
		}
		if err := h.ContributionDailyRepository.Upsert(tx, rows); err != nil {
			return fmt.Errorf("failed to store contribution rows: %w", err)
		}
	}

	history := append(state.levelHistory, calculator.LevelPoint{Date: day, Level: valuation.Level})
	rolling := calculator.ComputeRollingStats(history, len(history)-1)

	err = h.StatsDailyRepository.Upsert(tx, model.StatsDaily{
		IndexCode:     h.Config.IndexCode,
		TradeDate:     util.Midnight(day),
		Ret1d:         rolling.Ret1d,
		Ret5d:         rolling.Ret5d,
		Ret20d:        rolling.Ret20d,
		Vol20d:        rolling.Vol20d,
		Top5Weight:    calculator.TopNWeight(valuation.Weights, 5),
		Herfindahl:    calculator.Herfindahl(valuation.Weights),
		NConstituents: int32(len(state.shares)),
		NImputed:      int32(imputedCount),
	})
	if err != nil {
		return fmt.Errorf("failed to store daily stats: %w", err)
	}

	return nil
}

func (h *indexServiceHandler) tradingDays(start, end time.Time) ([]time.Time, error) {
	days, err := h.TradingDayRepository.List(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load trading calendar: %w", err)
	}
	if len(days) == 0 {
		return util.Weekdays(start, end), nil
	}
	return days, nil
}

func (h *indexServiceHandler) priorTradingDay(start time.Time) (*time.Time, error) {
	days, err := h.tradingDays(start.AddDate(0, 0, -historyBufferDays), start.AddDate(0, 0, -1))
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, nil
	}
	return &days[len(days)-1], nil
}

func (h *indexServiceHandler) loadPriceBook(start, end time.Time) (*domain.PriceBook, error) {
	canon, err := h.CanonicalPriceRepository.List(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load canonical prices: %w", err)
	}

	book := domain.NewPriceBook()
	for _, p := range canon {
		price := usablePrice(p, h.Config.AllowCanonClose)
		if price == nil {
			continue
		}
		book.Add(domain.AssetPrice{
			Ticker:  p.Ticker,
			Date:    p.TradeDate,
			Price:   price.InexactFloat64(),
			Imputed: p.Quality == model.PriceQuality_Imputed,
		})
	}
	return book, nil
}

// loadState reconstructs the engine state as of the day before start so
// partial recomputes continue seamlessly from published history.
func (h *indexServiceHandler) loadState(start time.Time) (*engineState, error) {
	state := &engineState{
		shares:       map[string]float64{},
		priorWeights: map[string]float64{},
		priorPrices:  map[string]float64{},
	}

	holdings, err := h.HoldingsRepository.GetActive(h.Config.IndexCode, start.AddDate(0, 0, -1))
	if err != nil {
		return nil, fmt.Errorf("failed to load active holdings: %w", err)
	}
	for _, row := range holdings {
		state.shares[row.Ticker] = row.Shares.InexactFloat64()
	}
	if len(holdings) > 0 {
		applied := util.Midnight(holdings[0].RebalanceDate)
		state.lastApplied = &applied
	}

	divisor, err := h.DivisorRepository.GetActive(h.Config.IndexCode, start.AddDate(0, 0, -1))
	if err != nil {
		return nil, fmt.Errorf("failed to load active divisor: %w", err)
	}
	if divisor != nil {
		state.divisor = divisor.Divisor
	}

	levels, err := h.IndexLevelRepository.List(h.Config.IndexCode, start.AddDate(0, 0, -historyBufferDays), start.AddDate(0, 0, -1))
	if err != nil {
		return nil, fmt.Errorf("failed to load level history: %w", err)
	}
	if len(levels) > 0 {
		// walk the trading calendar so coverage-gap days inside the
		// published history stay visible to the rolling stat windows
		byDate := map[string]float64{}
		for _, l := range levels {
			byDate[l.TradeDate.Format(time.DateOnly)] = l.Level
		}
		historyDays, err := h.tradingDays(levels[0].TradeDate, start.AddDate(0, 0, -1))
		if err != nil {
			return nil, err
		}
		for _, d := range historyDays {
			point := calculator.LevelPoint{Date: d}
			if level, ok := byDate[d.Format(time.DateOnly)]; ok {
				point.Level = util.FloatPointer(level)
			}
			state.levelHistory = append(state.levelHistory, point)
		}
	}

	last, err := h.IndexLevelRepository.GetLatestBefore(h.Config.IndexCode, start)
	if err != nil {
		return nil, fmt.Errorf("failed to load last published level: %w", err)
	}
	if last != nil {
		state.priorLevel = &last.Level

		// recover prior-close weights and prices so the first day of a
		// resumed run still gets contributions
		constituents, err := h.ConstituentDailyRepository.List(h.Config.IndexCode, last.TradeDate, last.TradeDate)
		if err != nil {
			return nil, fmt.Errorf("failed to load prior constituent rows: %w", err)
		}
		for _, c := range constituents {
			state.priorWeights[c.Ticker] = c.Weight
			state.priorPrices[c.Ticker] = c.ClosePrice
		}
	}

	return state, nil
}

func (h *indexServiceHandler) clearRange(start, end time.Time) error {
	tx, commit, rollback, err := h.begin()
	if err != nil {
		return err
	}
	defer rollback()

	if err := h.IndexLevelRepository.DeleteRange(tx, h.Config.IndexCode, start, end); err != nil {
		return fmt.Errorf("failed to clear levels: %w", err)
	}
	if err := h.ConstituentDailyRepository.DeleteRange(tx, h.Config.IndexCode, start, end); err != nil {
		return fmt.Errorf("failed to clear constituent rows: %w", err)
	}
	if err := h.ContributionDailyRepository.DeleteRange(tx, h.Config.IndexCode, start, end); err != nil {
		return fmt.Errorf("failed to clear contribution rows: %w", err)
	}
	if err := h.StatsDailyRepository.DeleteRange(tx, h.Config.IndexCode, start, end); err != nil {
		return fmt.Errorf("failed to clear stats rows: %w", err)
	}

	return commit()
}

// begin opens a transaction when a real connection is present. With a
// nil Db (fake repositories in tests) both commit and rollback are
// no-ops and repositories run untransacted.
func (h *indexServiceHandler) begin() (*sql.Tx, func() error, func(), error) {
	if h.Db == nil {
		return nil, func() error { return nil }, func() {}, nil
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, nil, nil, wrapTxErr(err)
	}

	committed := false
	commit := func() error {
		committed = true
		if err := tx.Commit(); err != nil {
			return wrapTxErr(err)
		}
		return nil
	}
	rollback := func() {
		if !committed {
			_ = tx.Rollback()
		}
	}
	return tx, commit, rollback, nil
}

func wrapTxErr(err error) error {
	return domain.StorageError{
		Op:   "index_service.tx",
		Kind: repository.ErrorKind(err),
		Err:  err,
	}
}
