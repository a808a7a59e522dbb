package repository

import (
	"database/sql"
	"fmt"
	"time"

	"tech100/internal/db/models/postgres/public/model"
	"tech100/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/qrm"
)

// AlertLogRepository backs alert deduplication. The unique
// (alert_key, alert_date) constraint makes "insert if missing" the
// suppression primitive: an alert is only sent when its row lands.
type AlertLogRepository interface {
	TryInsert(tx *sql.Tx, key string, day time.Time, subject string) (bool, error)
}

type alertLogRepositoryHandler struct {
	Db *sql.DB
}

func NewAlertLogRepository(db *sql.DB) AlertLogRepository {
	return alertLogRepositoryHandler{Db: db}
}

func (h alertLogRepositoryHandler) TryInsert(tx *sql.Tx, key string, day time.Time, subject string) (bool, error) {
	query := table.AlertLog.
		INSERT(table.AlertLog.AllColumns).
		MODEL(model.AlertLog{
			AlertKey:  key,
			AlertDate: day,
			Subject:   subject,
			SentAt:    time.Now().UTC(),
		}).
		ON_CONFLICT(
			table.AlertLog.AlertKey, table.AlertLog.AlertDate,
		).DO_NOTHING()

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	result, err := query.Exec(db)
	if err != nil {
		return false, wrapStorageErr("alert_log.try_insert", fmt.Errorf("failed to insert alert log row for %s: %w", key, err))
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read rows affected: %w", err)
	}

	return inserted > 0, nil
}
