package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"tech100/internal/db/models/postgres/public/model"
	"tech100/internal/domain"
	"tech100/internal/logger"
	"tech100/internal/repository"
	"tech100/internal/util"
)

const (
	imputationReason      = "MISSING_PROVIDER_DATA"
	imputedProviderMarker = "CARRY_FORWARD"
	imputationAlertKey    = "imputation_gaps"
)

// ImputationService fills canonical price gaps by carrying the last real
// price forward, with an audit row per filled gap. Tickers with no real
// history at all cannot be filled and are reported instead.
type ImputationService interface {
	Impute(ctx context.Context, start, end time.Time) (*ImputationSummary, error)
}

type ImputationSummary struct {
	Filled       int
	FilledByDate map[string]int
	// "TICKER@date" pairs with no prior real price to carry forward
	NoHistory []string
}

func (s ImputationSummary) String() string {
	return fmt.Sprintf("filled=%d no_history=%d", s.Filled, len(s.NoHistory))
}

type imputationServiceHandler struct {
	TradingDayRepository     repository.TradingDayRepository
	PortfolioRepository      repository.PortfolioRepository
	CanonicalPriceRepository repository.CanonicalPriceRepository
	ImputationRepository     repository.ImputationRepository
	AlertService             AlertService
	Config                   domain.IndexConfig
}

func NewImputationService(
	tradingDayRepository repository.TradingDayRepository,
	portfolioRepository repository.PortfolioRepository,
	canonicalPriceRepository repository.CanonicalPriceRepository,
	imputationRepository repository.ImputationRepository,
	alertService AlertService,
	config domain.IndexConfig,
) ImputationService {
	return &imputationServiceHandler{
		TradingDayRepository:     tradingDayRepository,
		PortfolioRepository:      portfolioRepository,
		CanonicalPriceRepository: canonicalPriceRepository,
		ImputationRepository:     imputationRepository,
		AlertService:             alertService,
		Config:                   config,
	}
}

func (h *imputationServiceHandler) Impute(ctx context.Context, start, end time.Time) (*ImputationSummary, error) {
	log := logger.FromContext(ctx)

	days, err := h.TradingDayRepository.List(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load trading calendar: %w", err)
	}
	if len(days) == 0 {
		days = util.Weekdays(start, end)
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

	hasRealPrice := map[string]bool{}
	existing := map[string]model.PricesCanon{}
	for _, p := range canon {
		key := priceKey(p.Ticker, p.TradeDate)
		existing[key] = p
		if p.Quality != model.PriceQuality_Imputed && usablePrice(p, h.Config.AllowCanonClose) != nil {
			hasRealPrice[key] = true
		}
	}

	summary := &ImputationSummary{FilledByDate: map[string]int{}, NoHistory: []string{}}
	for _, day := range days {
		for _, ticker := range declaredUniverse(decls, day) {
			if hasRealPrice[priceKey(ticker, day)] {
				continue
			}
			var current *model.PricesCanon
			if row, ok := existing[priceKey(ticker, day)]; ok {
				current = &row
			}
			if err := h.imputeOne(ticker, day, current, summary); err != nil {
				return nil, err
			}
		}
	}

	log.Infow("imputation complete", "filled", summary.Filled, "no_history", len(summary.NoHistory))

	if (summary.Filled > 0 || len(summary.NoHistory) > 0) && h.Config.EmailOnFail && h.AlertService != nil {
		if err := h.alertOnGaps(ctx, summary); err != nil {
			log.Errorw("failed to alert on imputed gaps", "error", err)
		}
	}

	return summary, nil
}

func (h *imputationServiceHandler) alertOnGaps(ctx context.Context, summary *ImputationSummary) error {
	body := fmt.Sprintf("carried forward %d price(s)", summary.Filled)
	for date, n := range summary.FilledByDate {
		body += fmt.Sprintf("\n  %s: %d", date, n)
	}
	if len(summary.NoHistory) > 0 {
		body += "\nno prior real price to carry forward for:\n  " + strings.Join(summary.NoHistory, "\n  ")
	}

	return h.AlertService.Alert(ctx,
		imputationAlertKey,
		fmt.Sprintf("[%s] %d price gap(s) imputed, %d unfillable", h.Config.IndexCode, summary.Filled, len(summary.NoHistory)),
		body,
	)
}

func (h *imputationServiceHandler) imputeOne(ticker string, day time.Time, existing *model.PricesCanon, summary *ImputationSummary) error {
	if existing != nil && !replaceable(*existing) {
		// the row carries a real price the current configuration just
		// doesn't use; it is never overwritten
		return nil
	}

	last, err := h.CanonicalPriceRepository.GetLastReal(ticker, day)
	if err != nil {
		return fmt.Errorf("failed to look up carry-forward source for %s: %w", ticker, err)
	}
	if last == nil {
		summary.NoHistory = append(summary.NoHistory, fmt.Sprintf("%s@%s", ticker, day.Format(time.DateOnly)))
		return nil
	}

	err = h.ImputationRepository.Upsert(nil, model.Imputation{
		IndexCode:       h.Config.IndexCode,
		TradeDate:       util.Midnight(day),
		Ticker:          ticker,
		ImputedFromDate: util.Midnight(last.TradeDate),
		ImputedPrice:    *last.CanonAdjClose,
		Reason:          imputationReason,
	})
	if err != nil {
		return fmt.Errorf("failed to record imputation for %s on %s: %w", ticker, day.Format(time.DateOnly), err)
	}

	provider := imputedProviderMarker
	row := model.PricesCanon{
		Ticker:         ticker,
		TradeDate:      util.Midnight(day),
		CanonClose:     last.CanonClose,
		CanonAdjClose:  last.CanonAdjClose,
		ChosenProvider: &provider,
		ProvidersOk:    0,
		Quality:        model.PriceQuality_Imputed,
		ComputedAt:     time.Now().UTC(),
	}

	// a replaceable row (reconciled from empty quotes, or a previous
	// imputation) is overwritten in place
	if existing != nil {
		if err := h.CanonicalPriceRepository.Upsert(nil, []model.PricesCanon{row}); err != nil {
			return fmt.Errorf("failed to replace priceless canonical row for %s: %w", ticker, err)
		}
		summary.Filled++
		summary.FilledByDate[day.Format(time.DateOnly)]++
		return nil
	}

	inserted, err := h.CanonicalPriceRepository.AddIfMissing(nil, row)
	if err != nil {
		return fmt.Errorf("failed to insert imputed price for %s: %w", ticker, err)
	}
	if inserted {
		summary.Filled++
		summary.FilledByDate[day.Format(time.DateOnly)]++
	}
	return nil
}

// replaceable reports whether an existing canonical row may be replaced
// by a carry-forward: only rows that were themselves imputed, or that
// carry no price at all.
func replaceable(p model.PricesCanon) bool {
	if p.Quality == model.PriceQuality_Imputed {
		return true
	}
	return p.CanonClose == nil && p.CanonAdjClose == nil
}
