package service

import (
	"context"
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

// ReconciliationService turns raw provider quotes into canonical prices,
// one row per (ticker, trade_date), via the pure reconciler.
type ReconciliationService interface {
	Reconcile(ctx context.Context, start, end time.Time) (*ReconcileSummary, error)
}

type ReconcileSummary struct {
	Rows      int
	High      int
	Low       int
	Conflicts []string
}

func (s ReconcileSummary) String() string {
	return fmt.Sprintf("rows=%d high=%d low=%d conflicts=%d", s.Rows, s.High, s.Low, len(s.Conflicts))
}

type reconciliationServiceHandler struct {
	RawPriceRepository       repository.RawPriceRepository
	CanonicalPriceRepository repository.CanonicalPriceRepository
	Config                   domain.IndexConfig
}

func NewReconciliationService(
	rawPriceRepository repository.RawPriceRepository,
	canonicalPriceRepository repository.CanonicalPriceRepository,
	config domain.IndexConfig,
) ReconciliationService {
	return &reconciliationServiceHandler{
		RawPriceRepository:       rawPriceRepository,
		CanonicalPriceRepository: canonicalPriceRepository,
		Config:                   config,
	}
}

func (h *reconciliationServiceHandler) Reconcile(ctx context.Context, start, end time.Time) (*ReconcileSummary, error) {
	log := logger.FromContext(ctx)

	if end.Before(start) {
		return nil, domain.NewConfigurationError("reconcile range ends (%s) before it starts (%s)", end.Format(time.DateOnly), start.Format(time.DateOnly))
	}

	raw, err := h.RawPriceRepository.List(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to load raw prices: %w", err)
	}

	summary := &ReconcileSummary{}
	canonical := []model.PricesCanon{}

	// rows arrive ordered by ticker, date, ingestion time, so each
	// (ticker, date) group is contiguous and provider order is stable
	for i := 0; i < len(raw); {
		j := i
		for j < len(raw) && raw[j].Ticker == raw[i].Ticker && util.SameDate(raw[j].TradeDate, raw[i].TradeDate) {
			j++
		}
		canonical = append(canonical, h.reconcileGroup(raw[i:j], summary))
		i = j
	}

	if err := h.CanonicalPriceRepository.Upsert(nil, canonical); err != nil {
		return nil, fmt.Errorf("failed to store canonical prices: %w", err)
	}
	summary.Rows = len(canonical)

	log.Infow("reconciliation complete",
		"rows", summary.Rows, "high", summary.High, "low", summary.Low, "conflicts", len(summary.Conflicts))
	return summary, nil
}

func (h *reconciliationServiceHandler) reconcileGroup(group []model.PricesRaw, summary *ReconcileSummary) model.PricesCanon {
	quotes := make([]calculator.ProviderPrice, 0, len(group))
	for _, r := range group {
		quotes = append(quotes, calculator.ProviderPrice{
			Provider: r.Provider,
			Close:    decimalToFloatPtr(r.Close),
			AdjClose: decimalToFloatPtr(r.AdjClose),
		})
	}

	result := calculator.Reconcile(calculator.ReconcileInput{
		Quotes:            quotes,
		ThresholdPct:      h.Config.DivergenceThresholdPct,
		PreferredProvider: h.Config.PreferredProvider,
		SecondaryProvider: h.Config.SecondaryProvider,
	})

	switch result.Quality {
	case model.PriceQuality_High:
		summary.High++
	case model.PriceQuality_Low:
		summary.Low++
	case model.PriceQuality_Conflict:
		summary.Conflicts = append(summary.Conflicts,
			fmt.Sprintf("%s@%s", group[0].Ticker, group[0].TradeDate.Format(time.DateOnly)))
	}

	return model.PricesCanon{
		Ticker:         group[0].Ticker,
		TradeDate:      util.Midnight(group[0].TradeDate),
		CanonClose:     floatToDecimalPtr(result.CanonClose),
		CanonAdjClose:  floatToDecimalPtr(result.CanonAdjClose),
		ChosenProvider: result.ChosenProvider,
		ProvidersOk:    result.ProvidersOk,
		DivergencePct:  result.DivergencePct,
		Quality:        result.Quality,
		ComputedAt:     time.Now().UTC(),
	}
}

func decimalToFloatPtr(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	return util.FloatPointer(d.InexactFloat64())
}

func floatToDecimalPtr(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	return util.DecimalPointer(decimal.NewFromFloat(*f))
}
