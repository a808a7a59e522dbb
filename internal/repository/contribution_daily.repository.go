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

type ContributionDailyRepository interface {
	Upsert(tx *sql.Tx, rows []model.ContributionDaily) error
	DeleteRange(tx *sql.Tx, indexCode string, start, end time.Time) error
}

type contributionDailyRepositoryHandler struct {
	Db *sql.DB
}

func NewContributionDailyRepository(db *sql.DB) ContributionDailyRepository {
	return contributionDailyRepositoryHandler{Db: db}
}

func (h contributionDailyRepositoryHandler) Upsert(tx *sql.Tx, rows []model.ContributionDaily) error {
	if len(rows) == 0 {
		return nil
	}

	query := table.ContributionDaily.
		INSERT(table.ContributionDaily.AllColumns).
		MODELS(rows).
		ON_CONFLICT(
			table.ContributionDaily.IndexCode, table.ContributionDaily.TradeDate, table.ContributionDaily.Ticker,
		).DO_UPDATE(
		postgres.SET(
			table.ContributionDaily.PriorWeight.SET(table.ContributionDaily.EXCLUDED.PriorWeight),
			table.ContributionDaily.PriceReturn.SET(table.ContributionDaily.EXCLUDED.PriceReturn),
			table.ContributionDaily.Contribution.SET(table.ContributionDaily.EXCLUDED.Contribution),
		),
	)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return wrapStorageErr("contribution_daily.upsert", fmt.Errorf("failed to upsert contribution rows: %w", err))
	}

	return nil
}

func (h contributionDailyRepositoryHandler) DeleteRange(tx *sql.Tx, indexCode string, start, end time.Time) error {
	query := table.ContributionDaily.
		DELETE().
		WHERE(
			postgres.AND(
				table.ContributionDaily.IndexCode.EQ(postgres.String(indexCode)),
				table.ContributionDaily.TradeDate.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
			),
		)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return wrapStorageErr("contribution_daily.delete_range", fmt.Errorf("failed to delete contribution rows: %w", err))
	}

	return nil
}
