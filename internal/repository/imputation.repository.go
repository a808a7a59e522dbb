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

type ImputationRepository interface {
	// Upsert is idempotent on (index_code, trade_date, ticker) so
	// re-running imputation never duplicates audit rows.
	Upsert(tx *sql.Tx, record model.Imputation) error
	List(indexCode string, start, end time.Time) ([]model.Imputation, error)
}

type imputationRepositoryHandler struct {
	Db *sql.DB
}

func NewImputationRepository(db *sql.DB) ImputationRepository {
	return imputationRepositoryHandler{Db: db}
}

func (h imputationRepositoryHandler) Upsert(tx *sql.Tx, record model.Imputation) error {
	record.CreatedAt = time.Now().UTC()

	query := table.Imputation.
		INSERT(table.Imputation.AllColumns).
		MODEL(record).
		ON_CONFLICT(
			table.Imputation.IndexCode, table.Imputation.TradeDate, table.Imputation.Ticker,
		).DO_UPDATE(
		postgres.SET(
			table.Imputation.ImputedFromDate.SET(table.Imputation.EXCLUDED.ImputedFromDate),
			table.Imputation.ImputedPrice.SET(table.Imputation.EXCLUDED.ImputedPrice),
			table.Imputation.Reason.SET(table.Imputation.EXCLUDED.Reason),
		),
	)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return wrapStorageErr("imputation.upsert", fmt.Errorf("failed to upsert imputation for %s on %s: %w", record.Ticker, record.TradeDate.Format(time.DateOnly), err))
	}

	return nil
}

func (h imputationRepositoryHandler) List(indexCode string, start, end time.Time) ([]model.Imputation, error) {
	query := table.Imputation.
		SELECT(table.Imputation.AllColumns).
		WHERE(
			postgres.AND(
				table.Imputation.IndexCode.EQ(postgres.String(indexCode)),
				table.Imputation.TradeDate.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
			),
		).
		ORDER_BY(table.Imputation.TradeDate.ASC(), table.Imputation.Ticker.ASC())

	result := []model.Imputation{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, wrapStorageErr("imputation.list", fmt.Errorf("failed to list imputations: %w", err))
	}

	return result, nil
}
