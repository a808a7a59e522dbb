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

type StatsDailyRepository interface {
	Upsert(tx *sql.Tx, row model.StatsDaily) error
	List(indexCode string, start, end time.Time) ([]model.StatsDaily, error)
	DeleteRange(tx *sql.Tx, indexCode string, start, end time.Time) error
}

type statsDailyRepositoryHandler struct {
	Db *sql.DB
}

func NewStatsDailyRepository(db *sql.DB) StatsDailyRepository {
	return statsDailyRepositoryHandler{Db: db}
}

func (h statsDailyRepositoryHandler) Upsert(tx *sql.Tx, row model.StatsDaily) error {
	query := table.StatsDaily.
		INSERT(table.StatsDaily.AllColumns).
		MODEL(row).
		ON_CONFLICT(
			table.StatsDaily.IndexCode, table.StatsDaily.TradeDate,
		).DO_UPDATE(
		postgres.SET(
			table.StatsDaily.Ret1d.SET(table.StatsDaily.EXCLUDED.Ret1d),
			table.StatsDaily.Ret5d.SET(table.StatsDaily.EXCLUDED.Ret5d),
			table.StatsDaily.Ret20d.SET(table.StatsDaily.EXCLUDED.Ret20d),
			table.StatsDaily.Vol20d.SET(table.StatsDaily.EXCLUDED.Vol20d),
			table.StatsDaily.Top5Weight.SET(table.StatsDaily.EXCLUDED.Top5Weight),
			table.StatsDaily.Herfindahl.SET(table.StatsDaily.EXCLUDED.Herfindahl),
			table.StatsDaily.NConstituents.SET(table.StatsDaily.EXCLUDED.NConstituents),
			table.StatsDaily.NImputed.SET(table.StatsDaily.EXCLUDED.NImputed),
		),
	)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return wrapStorageErr("stats_daily.upsert", fmt.Errorf("failed to upsert stats for %s: %w", row.TradeDate.Format(time.DateOnly), err))
	}

	return nil
}

func (h statsDailyRepositoryHandler) List(indexCode string, start, end time.Time) ([]model.StatsDaily, error) {
	query := table.StatsDaily.
		SELECT(table.StatsDaily.AllColumns).
		WHERE(
			postgres.AND(
				table.StatsDaily.IndexCode.EQ(postgres.String(indexCode)),
				table.StatsDaily.TradeDate.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
			),
		).
		ORDER_BY(table.StatsDaily.TradeDate.ASC())

	result := []model.StatsDaily{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, wrapStorageErr("stats_daily.list", fmt.Errorf("failed to list stats rows: %w", err))
	}

	return result, nil
}

func (h statsDailyRepositoryHandler) DeleteRange(tx *sql.Tx, indexCode string, start, end time.Time) error {
	query := table.StatsDaily.
		DELETE().
		WHERE(
			postgres.AND(
				table.StatsDaily.IndexCode.EQ(postgres.String(indexCode)),
				table.StatsDaily.TradeDate.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
			),
		)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return wrapStorageErr("stats_daily.delete_range", fmt.Errorf("failed to delete stats rows: %w", err))
	}

	return nil
}
