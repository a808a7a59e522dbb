package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tech100/internal/db/models/postgres/public/model"
	"tech100/internal/logger"
	"tech100/internal/repository"
	"tech100/internal/util"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// IngestService loads provider quote files into PRICES_RAW. The vendor
// HTTP clients live outside this system; by the time data reaches us it
// is one CSV per provider with columns
// ticker,trade_date,close,adj_close,volume.
type IngestService interface {
	LoadProviderFile(ctx context.Context, provider, path string) (*IngestSummary, error)
	LoadProviderDir(ctx context.Context, dir string) (*IngestSummary, error)
}

type IngestSummary struct {
	Providers int
	Rows      int
	Skipped   int
}

func (s IngestSummary) String() string {
	return fmt.Sprintf("providers=%d rows=%d skipped=%d", s.Providers, s.Rows, s.Skipped)
}

type providerQuoteRow struct {
	Ticker    string   `csv:"ticker"`
	TradeDate string   `csv:"trade_date"`
	Close     *float64 `csv:"close"`
	AdjClose  *float64 `csv:"adj_close"`
	Volume    *int64   `csv:"volume"`
}

type ingestServiceHandler struct {
	RawPriceRepository repository.RawPriceRepository
}

func NewIngestService(rawPriceRepository repository.RawPriceRepository) IngestService {
	return &ingestServiceHandler{RawPriceRepository: rawPriceRepository}
}

func (h *ingestServiceHandler) LoadProviderFile(ctx context.Context, provider, path string) (*IngestSummary, error) {
	log := logger.FromContext(ctx)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open provider file %s: %w", path, err)
	}
	defer f.Close()

	rows := []providerQuoteRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse provider file %s: %w", path, err)
	}

	summary := &IngestSummary{Providers: 1}
	quotes := []model.PricesRaw{}
	for _, row := range rows {
		tradeDate, err := time.Parse(time.DateOnly, row.TradeDate)
		if err != nil || row.Ticker == "" {
			summary.Skipped++
			continue
		}
		quote := model.PricesRaw{
			Provider:   provider,
			Ticker:     strings.ToUpper(row.Ticker),
			TradeDate:  tradeDate,
			Volume:     row.Volume,
			IngestedAt: time.Now().UTC(),
			Status:     "OK",
		}
		if row.Close != nil {
			quote.Close = util.DecimalPointer(decimal.NewFromFloat(*row.Close))
		}
		if row.AdjClose != nil {
			quote.AdjClose = util.DecimalPointer(decimal.NewFromFloat(*row.AdjClose))
		}
		quotes = append(quotes, quote)
	}

	if err := h.RawPriceRepository.Add(nil, quotes); err != nil {
		return nil, fmt.Errorf("failed to store quotes from %s: %w", provider, err)
	}
	summary.Rows = len(quotes)

	log.Infow("ingested provider file", "provider", provider, "rows", summary.Rows, "skipped", summary.Skipped)
	return summary, nil
}

// LoadProviderDir ingests every *.csv in dir; the file stem is the
// provider name (e.g. refinitiv.csv -> provider REFINITIV).
func (h *ingestServiceHandler) LoadProviderDir(ctx context.Context, dir string) (*IngestSummary, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan provider dir %s: %w", dir, err)
	}

	total := &IngestSummary{}
	for _, path := range paths {
		provider := strings.ToUpper(strings.TrimSuffix(filepath.Base(path), ".csv"))
		summary, err := h.LoadProviderFile(ctx, provider, path)
		if err != nil {
			return nil, err
		}
		total.Providers++
		total.Rows += summary.Rows
		total.Skipped += summary.Skipped
	}

	return total, nil
}
