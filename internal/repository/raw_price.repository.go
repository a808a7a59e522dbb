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

type RawPriceRepository interface {
	Add(tx *sql.Tx, quotes []model.PricesRaw) error
	List(start, end time.Time) ([]model.PricesRaw, error)
}

type rawPriceRepositoryHandler struct {
	Db *sql.DB
}

func NewRawPriceRepository(db *sql.DB) RawPriceRepository {
	return rawPriceRepositoryHandler{Db: db}
}

// Add upserts raw provider quotes. Raw rows are append-only in spirit;
// re-ingesting the same provider/ticker/date just refreshes the values.
func (h rawPriceRepositoryHandler) Add(tx *sql.Tx, quotes []model.PricesRaw) error {
	if len(quotes) == 0 {
		return nil
	}

	query := table.PricesRaw.
		INSERT(table.PricesRaw.AllColumns).
		MODELS(quotes).
		ON_CONFLICT(
			table.PricesRaw.Provider, table.PricesRaw.Ticker, table.PricesRaw.TradeDate,
		).DO_UPDATE(
		postgres.SET(
			table.PricesRaw.Close.SET(table.PricesRaw.EXCLUDED.Close),
			table.PricesRaw.AdjClose.SET(table.PricesRaw.EXCLUDED.AdjClose),
			table.PricesRaw.Volume.SET(table.PricesRaw.EXCLUDED.Volume),
			table.PricesRaw.IngestedAt.SET(table.PricesRaw.EXCLUDED.IngestedAt),
			table.PricesRaw.Status.SET(table.PricesRaw.EXCLUDED.Status),
		),
	)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return wrapStorageErr("prices_raw.add", fmt.Errorf("failed to add raw prices: %w", err))
	}

	return nil
}

func (h rawPriceRepositoryHandler) List(start, end time.Time) ([]model.PricesRaw, error) {
	query := table.PricesRaw.
		SELECT(table.PricesRaw.AllColumns).
		WHERE(
			table.PricesRaw.TradeDate.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
		).
		ORDER_BY(
			table.PricesRaw.Ticker.ASC(),
			table.PricesRaw.TradeDate.ASC(),
			table.PricesRaw.IngestedAt.ASC(),
		)

	result := []model.PricesRaw{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, wrapStorageErr("prices_raw.list", fmt.Errorf("failed to list raw prices: %w", err))
	}

	return result, nil
}
