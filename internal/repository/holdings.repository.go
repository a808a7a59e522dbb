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

type HoldingsRepository interface {
	// Replace writes the full holdings set for one rebalance date. A
	// rebalance is computed once; recomputes overwrite rather than merge.
	Replace(tx *sql.Tx, indexCode string, rebalanceDate time.Time, holdings []model.Holdings) error
	// GetActive returns the holdings set in force on the given date, i.e.
	// the one with the latest rebalance_date <= date. Nil slice when the
	// index has never rebalanced.
	GetActive(indexCode string, date time.Time) ([]model.Holdings, error)
}

type holdingsRepositoryHandler struct {
	Db *sql.DB
}

func NewHoldingsRepository(db *sql.DB) HoldingsRepository {
	return holdingsRepositoryHandler{Db: db}
}

func (h holdingsRepositoryHandler) Replace(tx *sql.Tx, indexCode string, rebalanceDate time.Time, holdings []model.Holdings) error {
	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	deleteQuery := table.Holdings.
		DELETE().
		WHERE(
			postgres.AND(
				table.Holdings.IndexCode.EQ(postgres.String(indexCode)),
				table.Holdings.RebalanceDate.EQ(postgres.DateT(rebalanceDate)),
			),
		)

	_, err := deleteQuery.Exec(db)
	if err != nil {
		return wrapStorageErr("holdings.replace", fmt.Errorf("failed to clear holdings for %s: %w", rebalanceDate.Format(time.DateOnly), err))
	}

	if len(holdings) == 0 {
		return nil
	}

	insertQuery := table.Holdings.
		INSERT(table.Holdings.AllColumns).
		MODELS(holdings)

	_, err = insertQuery.Exec(db)
	if err != nil {
		return wrapStorageErr("holdings.replace", fmt.Errorf("failed to insert holdings for %s: %w", rebalanceDate.Format(time.DateOnly), err))
	}

	return nil
}

func (h holdingsRepositoryHandler) GetActive(indexCode string, date time.Time) ([]model.Holdings, error) {
	latestDate := postgres.
		SELECT(postgres.MAX(table.Holdings.RebalanceDate)).
		FROM(table.Holdings).
		WHERE(
			postgres.AND(
				table.Holdings.IndexCode.EQ(postgres.String(indexCode)),
				table.Holdings.RebalanceDate.LT_EQ(postgres.DateT(date)),
			),
		)

	query := table.Holdings.
		SELECT(table.Holdings.AllColumns).
		WHERE(
			postgres.AND(
				table.Holdings.IndexCode.EQ(postgres.String(indexCode)),
				table.Holdings.RebalanceDate.EQ(postgres.DateExp(latestDate)),
			),
		).
		ORDER_BY(table.Holdings.Ticker.ASC())

	result := []model.Holdings{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, wrapStorageErr("holdings.get_active", fmt.Errorf("failed to get active holdings on %s: %w", date.Format(time.DateOnly), err))
	}

	return result, nil
}
