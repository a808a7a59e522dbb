package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"tech100/internal/db/models/postgres/public/model"
	"tech100/internal/domain"
	"tech100/internal/logger"
	"tech100/internal/repository"
	"tech100/internal/util"
)

// CompletenessService audits canonical price coverage against the
// declared index membership, day by day. Days where nearly the whole
// market is dark are treated as holidays, not data failures.
type CompletenessService interface {
	Check(ctx context.Context, start, end time.Time) (*domain.CompletenessReport, error)
}

type completenessServiceHandler struct {
	TradingDayRepository     repository.TradingDayRepository
	PortfolioRepository      repository.PortfolioRepository
	CanonicalPriceRepository repository.CanonicalPriceRepository
	AlertService             AlertService
	Config                   domain.IndexConfig
}

func NewCompletenessService(
	tradingDayRepository repository.TradingDayRepository,
	portfolioRepository repository.PortfolioRepository,
	canonicalPriceRepository repository.CanonicalPriceRepository,
	alertService AlertService,
	config domain.IndexConfig,
) CompletenessService {
	return &completenessServiceHandler{
		TradingDayRepository:     tradingDayRepository,
		PortfolioRepository:      portfolioRepository,
		CanonicalPriceRepository: canonicalPriceRepository,
		AlertService:             alertService,
		Config:                   config,
	}
}

func (h *completenessServiceHandler) Check(ctx context.Context, start, end time.Time) (*domain.CompletenessReport, error) {
	log := logger.FromContext(ctx)

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

	canon, err := h.CanonicalPriceRepository.List(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load canonical prices: %w", err)
	}

	// real coverage only: imputed rows don't count toward "ok", otherwise
	// a re-run after imputation would mask the original gap
	covered := map[string]bool{}
	for _, p := range canon {
		if p.Quality == model.PriceQuality_Imputed {
			continue
		}
		if usablePrice(p, h.Config.AllowCanonClose) != nil {
			covered[priceKey(p.Ticker, p.TradeDate)] = true
		}
	}

	report := &domain.CompletenessReport{
		Start:           util.Midnight(start),
		End:             util.Midnight(end),
		Status:          domain.CompletenessStatusPass,
		MissingByTicker: map[string]int{},
	}

	for _, day := range days {
		tickers := declaredUniverse(decls, day)
		if len(tickers) == 0 {
			// before the first declaration takes effect nothing is
			// expected; the day is recorded as dark, not dropped
			report.Days = append(report.Days, domain.DayCoverage{Date: day, Holiday: true})
			continue
		}

		ok := 0
		missing := []string{}
		for _, ticker := range tickers {
			if covered[priceKey(ticker, day)] {
				ok++
			} else {
				missing = append(missing, ticker)
			}
		}

		coverage := float64(ok) / float64(len(tickers))
		dc := domain.DayCoverage{
			Date:     day,
			Expected: len(tickers),
			Ok:       ok,
			Coverage: coverage,
			Holiday:  coverage <= h.Config.HolidayCoverage,
		}
		dc.Bad = !dc.Holiday && coverage < h.Config.MinDailyCoverage

		if dc.Bad {
			report.BadDays++
			for _, ticker := range missing {
				report.MissingByTicker[ticker]++
			}
		}
		report.Days = append(report.Days, dc)
	}

	if report.BadDays > h.Config.MaxBadDays {
		report.Status = domain.CompletenessStatusFail
	}
	report.WorstDates = worstDates(report.Days, 5)

	log.Infow("completeness check complete",
		"status", report.Status, "days", len(report.Days), "bad_days", report.BadDays)

	if report.Status == domain.CompletenessStatusFail && h.Config.EmailOnFail && h.AlertService != nil {
		if err := h.alertOnFailure(ctx, report); err != nil {
			log.Errorw("failed to alert on completeness failure", "error", err)
		}
	}

	return report, nil
}

func (h *completenessServiceHandler) tradingDays(start, end time.Time) ([]time.Time, error) {
	days, err := h.TradingDayRepository.List(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load trading calendar: %w", err)
	}
	if len(days) == 0 {
		return util.Weekdays(start, end), nil
	}
	return days, nil
}

func (h *completenessServiceHandler) alertOnFailure(ctx context.Context, report *domain.CompletenessReport) error {
	lines := []string{
		fmt.Sprintf("%s completeness FAIL: %d bad day(s) between %s and %s",
			h.Config.IndexCode, report.BadDays,
			report.Start.Format(time.DateOnly), report.End.Format(time.DateOnly)),
		"",
		"worst dates:",
	}
	for _, d := range report.WorstDates {
		lines = append(lines, fmt.Sprintf("  %s: %d/%d (%.1f%%)",
			d.Date.Format(time.DateOnly), d.Ok, d.Expected, d.Coverage*100))
	}

	return h.AlertService.Alert(ctx,
		"completeness_fail",
		fmt.Sprintf("[%s] price completeness check failed", h.Config.IndexCode),
		strings.Join(lines, "\n"),
	)
}

// worstDates returns up to n bad days ordered by coverage ascending.
func worstDates(days []domain.DayCoverage, n int) []domain.DayCoverage {
	bad := []domain.DayCoverage{}
	for _, d := range days {
		if d.Bad {
			bad = append(bad, d)
		}
	}
	sort.Slice(bad, func(i, j int) bool {
		if bad[i].Coverage != bad[j].Coverage {
			return bad[i].Coverage < bad[j].Coverage
		}
		return bad[i].Date.Before(bad[j].Date)
	})
	if len(bad) > n {
		bad = bad[:n]
	}
	return bad
}
