package repository

import (
	"database/sql"
	"fmt"
	"time"

	"tech100/internal/db/models/postgres/public/model"
	"tech100/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type CanonicalPriceRepository interface {
	// Upsert replaces the canonical row for (ticker, trade_date). Only the
	// reconciler calls this - it owns real canonical prices.
	Upsert(tx *sql.Tx, prices []model.PricesCanon) error
	// AddIfMissing inserts an imputed row only when no canonical price
	// exists yet. A real price is never overwritten by imputation.
	AddIfMissing(tx *sql.Tx, price model.PricesCanon) (bool, error)
	List(start, end time.Time) ([]model.PricesCanon, error)
	// GetLastReal returns the nearest non-imputed canonical price for
	// ticker strictly before the given date, or nil if none exists.
	GetLastReal(ticker string, before time.Time) (*model.PricesCanon, error)
}

type canonicalPriceRepositoryHandler struct {
	Db *sql.DB
}

func NewCanonicalPriceRepository(db *sql.DB) CanonicalPriceRepository {
	return canonicalPriceRepositoryHandler{Db: db}
}

func (h canonicalPriceRepositoryHandler) Upsert(tx *sql.Tx, prices []model.PricesCanon) error {
	if len(prices) == 0 {
		return nil
	}

	query := table.PricesCanon.
		INSERT(table.PricesCanon.AllColumns).
		MODELS(prices).
		ON_CONFLICT(
			table.PricesCanon.Ticker, table.PricesCanon.TradeDate,
		).DO_UPDATE(
		postgres.SET(
			table.PricesCanon.CanonClose.SET(table.PricesCanon.EXCLUDED.CanonClose),
			table.PricesCanon.CanonAdjClose.SET(table.PricesCanon.EXCLUDED.CanonAdjClose),
			table.PricesCanon.ChosenProvider.SET(table.PricesCanon.EXCLUDED.ChosenProvider),
			table.PricesCanon.ProvidersOk.SET(table.PricesCanon.EXCLUDED.ProvidersOk),
			table.PricesCanon.DivergencePct.SET(table.PricesCanon.EXCLUDED.DivergencePct),
			table.PricesCanon.Quality.SET(table.PricesCanon.EXCLUDED.Quality),
			table.PricesCanon.ComputedAt.SET(table.PricesCanon.EXCLUDED.ComputedAt),
		),
	)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return wrapStorageErr("prices_canon.upsert", fmt.Errorf("failed to upsert canonical prices: %w", err))
	}

	return nil
}

func (h canonicalPriceRepositoryHandler) AddIfMissing(tx *sql.Tx, price model.PricesCanon) (bool, error) {
	query := table.PricesCanon.
		INSERT(table.PricesCanon.AllColumns).
		MODEL(price).
		ON_CONFLICT(
			table.PricesCanon.Ticker, table.PricesCanon.TradeDate,
		).DO_NOTHING()

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	result, err := query.Exec(db)
	if err != nil {
		return false, wrapStorageErr("prices_canon.add_if_missing", fmt.Errorf("failed to insert canonical price for %s on %s: %w", price.Ticker, price.TradeDate.Format(time.DateOnly), err))
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return inserted > 0, nil
}

func (h canonicalPriceRepositoryHandler) List(start, end time.Time) ([]model.PricesCanon, error) {
	query := table.PricesCanon.
		SELECT(table.PricesCanon.AllColumns).
		WHERE(
			table.PricesCanon.TradeDate.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
		).
		ORDER_BY(
			table.PricesCanon.TradeDate.ASC(),
			table.PricesCanon.Ticker.ASC(),
		)

	result := []model.PricesCanon{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, wrapStorageErr("prices_canon.list", fmt.Errorf("failed to list canonical prices: %w", err))
	}

	return result, nil
}

func (h canonicalPriceRepositoryHandler) GetLastReal(ticker string, before time.Time) (*model.PricesCanon, error) {
	query := table.PricesCanon.
		SELECT(table.PricesCanon.AllColumns).
		WHERE(
			postgres.AND(
				table.PricesCanon.Ticker.EQ(postgres.String(ticker)),
				table.PricesCanon.TradeDate.LT(postgres.DateT(before)),
				table.PricesCanon.Quality.NOT_EQ(postgres.String(model.PriceQuality_Imputed.String())),
				table.PricesCanon.CanonAdjClose.IS_NOT_NULL(),
			),
		).
		ORDER_BY(table.PricesCanon.TradeDate.DESC()).
		LIMIT(1)

	result := model.PricesCanon{}
	err := query.Query(h.Db, &result)
	if err == qrm.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, wrapStorageErr("prices_canon.get_last_real", fmt.Errorf("failed to query last real price for %s before %s: %w", ticker, before.Format(time.DateOnly), err))
	}

	return &result, nil
}
