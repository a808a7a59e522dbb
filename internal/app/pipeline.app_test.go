package app

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"tech100/internal/db/models/postgres/public/model"
	"tech100/internal/domain"
	"tech100/internal/service"
	"tech100/internal/util"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type fakeReconciliationService struct {
	failures int
	failWith error
	attempts int
}

func (f *fakeReconciliationService) Reconcile(context.Context, time.Time, time.Time) (*service.ReconcileSummary, error) {
	f.attempts++
	if f.attempts <= f.failures {
		return nil, f.failWith
	}
	return &service.ReconcileSummary{Rows: 10, High: 10}, nil
}

type fakeCompletenessService struct {
	report *domain.CompletenessReport
}

func (f *fakeCompletenessService) Check(context.Context, time.Time, time.Time) (*domain.CompletenessReport, error) {
	return f.report, nil
}

type fakeImputationService struct {
	summary service.ImputationSummary
}

func (f *fakeImputationService) Impute(context.Context, time.Time, time.Time) (*service.ImputationSummary, error) {
	s := f.summary
	return &s, nil
}

type fakeIndexService struct {
	calls int
}

func (f *fakeIndexService) Recompute(context.Context, time.Time, time.Time, service.RecomputeOptions) (*service.RecomputeSummary, error) {
	f.calls++
	return &service.RecomputeSummary{DaysPublished: 1}, nil
}

type fakeAlertService struct {
	keys []string
}

func (f *fakeAlertService) Alert(_ context.Context, key, _, _ string) error {
	f.keys = append(f.keys, key)
	return nil
}

type fakePipelineRunRepository struct {
	rows []model.PipelineRun
}

func (f *fakePipelineRunRepository) Add(_ *sql.Tx, run model.PipelineRun) (*model.PipelineRun, error) {
	run.ID = int64(len(f.rows) + 1)
	f.rows = append(f.rows, run)
	return &run, nil
}

func (f *fakePipelineRunRepository) List(runID uuid.UUID) ([]model.PipelineRun, error) {
	out := []model.PipelineRun{}
	for _, r := range f.rows {
		if r.RunID == runID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakePipelineRunRepository) statuses(stage string) []model.RunStatus {
	out := []model.RunStatus{}
	for _, r := range f.rows {
		if r.Stage == stage {
			out = append(out, r.Status)
		}
	}
	return out
}

type pipelineFixture struct {
	reconciliation *fakeReconciliationService
	completeness   *fakeCompletenessService
	imputation     *fakeImputationService
	index          *fakeIndexService
	alerts         *fakeAlertService
	runs           *fakePipelineRunRepository
	handler        *PipelineHandler
}

func newPipelineFixture() *pipelineFixture {
	cfg := domain.DefaultIndexConfig()
	cfg.MaxRetryAttempts = 3
	cfg.RetryBaseDelay = time.Millisecond

	f := &pipelineFixture{
		reconciliation: &fakeReconciliationService{},
		completeness: &fakeCompletenessService{
			report: &domain.CompletenessReport{Status: domain.CompletenessStatusPass},
		},
		imputation: &fakeImputationService{},
		index:      &fakeIndexService{},
		alerts:     &fakeAlertService{},
		runs:       &fakePipelineRunRepository{},
	}
	f.handler = &PipelineHandler{
		ReconciliationService: f.reconciliation,
		CompletenessService:   f.completeness,
		ImputationService:     f.imputation,
		IndexService:          f.index,
		AlertService:          f.alerts,
		PipelineRunRepository: f.runs,
		Config:                cfg,
	}
	return f
}

func pipelineInput() PipelineInput {
	return PipelineInput{
		Start: util.NewDate(2024, 1, 2),
		End:   util.NewDate(2024, 1, 5),
	}
}

func TestPipelineRun(t *testing.T) {
	ctx := context.Background()

	t.Run("clean run audits every stage", func(t *testing.T) {
		f := newPipelineFixture()

		err := f.handler.Run(ctx, pipelineInput())
		require.NoError(t, err)

		for _, stage := range []string{"reconcile_prices", "completeness_check", "impute_gaps", "recompute_index"} {
			require.Equal(t, []model.RunStatus{model.RunStatus_Started, model.RunStatus_Ok}, f.runs.statuses(stage))
		}
		require.Equal(t, 1, f.index.calls)
		require.Empty(t, f.alerts.keys)
	})

	t.Run("transient storage failures are retried", func(t *testing.T) {
		f := newPipelineFixture()
		f.reconciliation.failures = 2
		f.reconciliation.failWith = domain.StorageError{
			Op:   "prices_canon.upsert",
			Kind: domain.ErrorKindTransient,
			Err:  errors.New("connection reset"),
		}

		err := f.handler.Run(ctx, pipelineInput())
		require.NoError(t, err)
		require.Equal(t, 3, f.reconciliation.attempts)
		require.Equal(t, []model.RunStatus{model.RunStatus_Started, model.RunStatus_Ok}, f.runs.statuses("reconcile_prices"))
	})

	t.Run("retries are exhausted and the failure is alerted", func(t *testing.T) {
		f := newPipelineFixture()
		f.reconciliation.failures = 10
		f.reconciliation.failWith = domain.StorageError{
			Op:   "prices_canon.upsert",
			Kind: domain.ErrorKindTransient,
			Err:  errors.New("connection reset"),
		}

		err := f.handler.Run(ctx, pipelineInput())
		require.Error(t, err)
		require.Equal(t, 3, f.reconciliation.attempts)
		require.Equal(t, []model.RunStatus{model.RunStatus_Started, model.RunStatus_Error}, f.runs.statuses("reconcile_prices"))
		require.Equal(t, []string{"pipeline_reconcile_prices"}, f.alerts.keys)
		require.Equal(t, 0, f.index.calls)
	})

	t.Run("configuration errors are not retried", func(t *testing.T) {
		f := newPipelineFixture()
		f.reconciliation.failures = 10
		f.reconciliation.failWith = domain.NewConfigurationError("bad range")

		err := f.handler.Run(ctx, pipelineInput())
		require.Error(t, err)
		require.Equal(t, 1, f.reconciliation.attempts)

		var cfgErr domain.ConfigurationError
		require.True(t, errors.As(err, &cfgErr))
	})

	t.Run("completeness failure covered by imputation is downgraded", func(t *testing.T) {
		f := newPipelineFixture()
		f.completeness.report = &domain.CompletenessReport{Status: domain.CompletenessStatusFail, BadDays: 1}
		f.imputation.summary = service.ImputationSummary{Filled: 3}

		err := f.handler.Run(ctx, pipelineInput())
		require.NoError(t, err)
		require.Equal(t, domain.CompletenessStatusPassWithImputation, f.completeness.report.Status)
		require.Equal(t, 1, f.index.calls)
	})

	t.Run("completeness failure with unfillable gaps aborts the run", func(t *testing.T) {
		f := newPipelineFixture()
		f.completeness.report = &domain.CompletenessReport{Status: domain.CompletenessStatusFail, BadDays: 1}
		f.imputation.summary = service.ImputationSummary{NoHistory: []string{"ZZZ@2024-01-02"}}

		err := f.handler.Run(ctx, pipelineInput())
		require.Error(t, err)

		var dataErr domain.DataUnavailableError
		require.True(t, errors.As(err, &dataErr))
		require.Equal(t, 0, f.index.calls)
	})

	t.Run("inverted range is rejected before any stage runs", func(t *testing.T) {
		f := newPipelineFixture()
		in := pipelineInput()
		in.Start, in.End = in.End, in.Start

		err := f.handler.Run(ctx, in)
		require.Error(t, err)
		require.Empty(t, f.runs.rows)
	})
}
