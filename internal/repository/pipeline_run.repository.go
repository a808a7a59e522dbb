package repository

import (
	"database/sql"
	"fmt"

	"tech100/internal/db/models/postgres/public/model"
	"tech100/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// PipelineRunRepository is an append-only audit trail: one STARTED row
// when a stage begins and one OK/ERROR row when it finishes.
type PipelineRunRepository interface {
	Add(tx *sql.Tx, run model.PipelineRun) (*model.PipelineRun, error)
	List(runID uuid.UUID) ([]model.PipelineRun, error)
}

type pipelineRunRepositoryHandler struct {
	Db *sql.DB
}

func NewPipelineRunRepository(db *sql.DB) PipelineRunRepository {
	return pipelineRunRepositoryHandler{Db: db}
}

func (h pipelineRunRepositoryHandler) Add(tx *sql.Tx, run model.PipelineRun) (*model.PipelineRun, error) {
	query := table.PipelineRun.
		INSERT(table.PipelineRun.MutableColumns).
		MODEL(run).
		RETURNING(table.PipelineRun.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.PipelineRun{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, wrapStorageErr("pipeline_run.add", fmt.Errorf("failed to insert pipeline run row: %w", err))
	}

	return &out, nil
}

func (h pipelineRunRepositoryHandler) List(runID uuid.UUID) ([]model.PipelineRun, error) {
	query := table.PipelineRun.
		SELECT(table.PipelineRun.AllColumns).
		WHERE(table.PipelineRun.RunID.EQ(postgres.UUID(runID))).
		ORDER_BY(table.PipelineRun.ID.ASC())

	result := []model.PipelineRun{}
	err := query.Query(h.Db, &result)
	if err != nil {
		return nil, wrapStorageErr("pipeline_run.list", fmt.Errorf("failed to list pipeline runs: %w", err))
	}

	return result, nil
}
