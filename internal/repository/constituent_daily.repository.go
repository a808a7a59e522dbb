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

type ConstituentDailyRepository interface {
	Upsert(tx *sql.Tx, rows []model.ConstituentDaily) error
	List(indexCode string, start, end time.Time) ([]model.ConstituentDaily, error)
	DeleteRange(tx *sql.Tx, indexCode string, start, end time.Time) error
}

type constituentDailyRepositoryHandler struct {
	Db *sql.DB
}

func NewConstituentDailyRepository(db *sql.DB) ConstituentDailyRepository {
	return constituentDailyRepositoryHandler{Db: db}
}

func (h constituentDailyRepositoryHandler) Upsert(tx *sql.Tx, rows []model.ConstituentDaily) error {
	if len(rows) == 0 {
		return nil
	}

	query := table.ConstituentDaily.
		INSERT(table.ConstituentDaily.AllColumns).
		MODELS(rows).
		ON_CONFLICT(
			table.ConstituentDaily.IndexCode, table.ConstituentDaily.TradeDate, table.ConstituentDaily.Ticker,
		).DO_UPDATE(
		postgres.SET(
			table.ConstituentDaily.ClosePrice.SET(table.ConstituentDaily.EXCLUDED.ClosePrice),
			table.ConstituentDaily.Shares.SET(table.ConstituentDaily.EXCLUDED.Shares),
			table.ConstituentDaily.MarketValue.SET(table.ConstituentDaily.EXCLUDED.MarketValue),
			table.ConstituentDaily.Weight.SET(table.ConstituentDaily.EXCLUDED.Weight),
			table.ConstituentDaily.Imputed.SET(table.ConstituentDaily.EXCLUDED.Imputed),
		),
	)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return wrapStorageErr("constituent_daily.upsert", fmt.Errorf("failed to upsert constituent rows: %w", err))
	}

	return nil
}

func (h constituentDailyRepositoryHandler) List(indexCode string, start, end time.Time) ([]model.ConstituentDaily, error) {
	query := table.ConstituentDaily.
		SELECT(table.ConstituentDaily.AllColumns).
		WHERE(
			postgres.AND(
				table.ConstituentDaily.IndexCode.EQ(postgres.String(indexCode)),
				table.ConstituentDaily.TradeDate.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
			),
		).
		ORDER_BY(table.ConstituentDaily.TradeDate.ASC(), table.ConstituentDaily.Ticker.ASC())

	result := []model.ConstituentDaily{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, wrapStorageErr("constituent_daily.list", fmt.Errorf("failed to list constituent rows: %w", err))
	}

	return result, nil
}

func (h constituentDailyRepositoryHandler) DeleteRange(tx *sql.Tx, indexCode string, start, end time.Time) error {
	query := table.ConstituentDaily.
		DELETE().
		WHERE(
			postgres.AND(
				table.ConstituentDaily.IndexCode.EQ(postgres.String(indexCode)),
				table.ConstituentDaily.TradeDate.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
			),
		)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return wrapStorageErr("constituent_daily.delete_range", fmt.Errorf("failed to delete constituent rows: %w", err))
	}

	return nil
}
