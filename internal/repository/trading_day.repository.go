package repository

import (
	"database/sql"
	"fmt"
	"time"

	"tech100/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
)

// TradingDayRepository reads the externally maintained trading calendar.
// The calendar source itself (exchange holiday feeds) lives outside this
// system; an empty table means callers fall back to weekday generation.
type TradingDayRepository interface {
	List(start, end time.Time) ([]time.Time, error)
}

type tradingDayRepositoryHandler struct {
	Db *sql.DB
}

func NewTradingDayRepository(db *sql.DB) TradingDayRepository {
	return tradingDayRepositoryHandler{Db: db}
}

func (h tradingDayRepositoryHandler) List(start, end time.Time) ([]time.Time, error) {
	query := table.TradingDay.
		SELECT(table.TradingDay.Day).
		WHERE(
			table.TradingDay.Day.BETWEEN(postgres.DateT(start), postgres.DateT(end)),
		).
		ORDER_BY(table.TradingDay.Day.ASC())

	q, args := query.Sql()
	rows, err := h.Db.Query(q, args...)
	if err != nil {
		return nil, wrapStorageErr("trading_day.list", fmt.Errorf("failed to list trading days: %w", err))
	}
	defer rows.Close()

	out := []time.Time{}
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		out = append(out, d)
	}

	return out, nil
}
