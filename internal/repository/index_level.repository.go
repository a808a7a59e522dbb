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

type IndexLevelRepository interface {
	Upsert(tx *sql.Tx, level model.IndexLevel) error
	List(indexCode string, start, end time.Time) ([]model.IndexLevel, error)
	// GetLatestBefore returns the last published level strictly before
	// date, or nil if the index has no history yet.
	GetLatestBefore(indexCode string, date time.Time) (*model.IndexLevel, error)
	DeleteRange(tx *sql.Tx, indexCode string, start, end time.Time) error
}

type indexLevelRepositoryHandler struct {
	Db *sql.DB
}

func NewIndexLevelRepository(db *sql.DB) IndexLevelRepository {
	return indexLevelRepositoryHandler{Db: db}
}

func (h indexLevelRepositoryHandler) Upsert(tx *sql.Tx, level model.IndexLevel) error {
	query := table.IndexLevel.
		INSERT(table.IndexLevel.AllColumns).
		MODEL(level).
		ON_CONFLICT(
			table.IndexLevel.IndexCode, table.IndexLevel.TradeDate,
		).DO_UPDATE(
		postgres.SET(
			table.IndexLevel.Level.SET(table.IndexLevel.EXCLUDED.Level),
			table.IndexLevel.RebalanceFlag.SET(table.IndexLevel.EXCLUDED.RebalanceFlag),
			table.IndexLevel.Divisor.SET(table.IndexLevel.EXCLUDED.Divisor),
		),
	)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return wrapStorageErr("index_level.upsert", fmt.Errorf("failed to upsert level for %s: %w", level.TradeDate.Format(time.DateOnly), err))
	}

	return nil
}

func (h indexLevelRepositoryHandler) List(indexCode string, start, end time.Time) ([]model.IndexLevel, error) {
	query := table.IndexLevel.
		SELECT(table.IndexLevel.AllColumns).
		WHERE(
			postgres.AND(
				table.IndexLevel.IndexCode.EQ(postgres.String(indexCode)),
				table.IndexLevel.TradeDate.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
			),
		).
		ORDER_BY(table.IndexLevel.TradeDate.ASC())

	result := []model.IndexLevel{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, wrapStorageErr("index_level.list", fmt.Errorf("failed to list levels: %w", err))
	}

	return result, nil
}

func (h indexLevelRepositoryHandler) GetLatestBefore(indexCode string, date time.Time) (*model.IndexLevel, error) {
	query := table.IndexLevel.
		SELECT(table.IndexLevel.AllColumns).
		WHERE(
			postgres.AND(
				table.IndexLevel.IndexCode.EQ(postgres.String(indexCode)),
				table.IndexLevel.TradeDate.LT(postgres.DateT(date)),
			),
		).
		ORDER_BY(table.IndexLevel.TradeDate.DESC()).
		LIMIT(1)

	result := model.IndexLevel{}
	err := query.Query(h.Db, &result)
	if err == qrm.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, wrapStorageErr("index_level.get_latest_before", fmt.Errorf("failed to get level before %s: %w", date.Format(time.DateOnly), err))
	}

	return &result, nil
}

func (h indexLevelRepositoryHandler) DeleteRange(tx *sql.Tx, indexCode string, start, end time.Time) error {
	query := table.IndexLevel.
		DELETE().
		WHERE(
			postgres.AND(
				table.IndexLevel.IndexCode.EQ(postgres.String(indexCode)),
				table.IndexLevel.TradeDate.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
			),
		)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return wrapStorageErr("index_level.delete_range", fmt.Errorf("failed to delete levels: %w", err))
	}

	return nil
}
