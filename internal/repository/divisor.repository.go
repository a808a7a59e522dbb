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

type DivisorRepository interface {
	Upsert(tx *sql.Tx, divisor model.Divisor) error
	// GetActive returns the divisor in force on the given date, or nil
	// before the first rebalance.
	GetActive(indexCode string, date time.Time) (*model.Divisor, error)
}

type divisorRepositoryHandler struct {
	Db *sql.DB
}

func NewDivisorRepository(db *sql.DB) DivisorRepository {
	return divisorRepositoryHandler{Db: db}
}

func (h divisorRepositoryHandler) Upsert(tx *sql.Tx, divisor model.Divisor) error {
	query := table.Divisor.
		INSERT(table.Divisor.AllColumns).
		MODEL(divisor).
		ON_CONFLICT(
			table.Divisor.IndexCode, table.Divisor.RebalanceDate,
		).DO_UPDATE(
		postgres.SET(
			table.Divisor.Divisor.SET(table.Divisor.EXCLUDED.Divisor),
			table.Divisor.Reason.SET(table.Divisor.EXCLUDED.Reason),
		),
	)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return wrapStorageErr("divisor.upsert", fmt.Errorf("failed to upsert divisor for %s: %w", divisor.RebalanceDate.Format(time.DateOnly), err))
	}

	return nil
}

func (h divisorRepositoryHandler) GetActive(indexCode string, date time.Time) (*model.Divisor, error) {
	query := table.Divisor.
		SELECT(table.Divisor.AllColumns).
		WHERE(
			postgres.AND(
				table.Divisor.IndexCode.EQ(postgres.String(indexCode)),
				table.Divisor.RebalanceDate.LT_EQ(postgres.DateT(date)),
			),
		).
		ORDER_BY(table.Divisor.RebalanceDate.DESC()).
		LIMIT(1)

	result := model.Divisor{}
	err := query.Query(h.Db, &result)
	if err == qrm.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, wrapStorageErr("divisor.get_active", fmt.Errorf("failed to get active divisor on %s: %w", date.Format(time.DateOnly), err))
	}

	return &result, nil
}
