package app

import (
	"context"
	"fmt"
	"time"

	"tech100/internal/db/models/postgres/public/model"
	"tech100/internal/domain"
	"tech100/internal/logger"
	"tech100/internal/repository"
	"tech100/internal/service"
	"tech100/internal/util"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
)

type PipelineInput struct {
	Start, End time.Time
	Strict     bool
	Rebuild    bool
	// directory of provider CSVs; empty skips ingestion
	CSVDir string
}

// Stage is one retryable unit of the batch run. Run returns a short
// human-readable detail string for the audit trail.
type Stage struct {
	Name string
	Run  func(ctx context.Context) (string, error)
}

// PipelineHandler chains the daily batch: ingest, reconcile, check
// completeness, impute, recompute. Each stage is audited in PIPELINE_RUN
// and retried on transient storage failures with exponential backoff.
type PipelineHandler struct {
	IngestService         service.IngestService
	ReconciliationService service.ReconciliationService
	CompletenessService   service.CompletenessService
	ImputationService     service.ImputationService
	IndexService          service.IndexService
	AlertService          service.AlertService
	PipelineRunRepository repository.PipelineRunRepository
	Config                domain.IndexConfig
}

func (h *PipelineHandler) Run(ctx context.Context, in PipelineInput) error {
	log := logger.FromContext(ctx)

	if in.End.Before(in.Start) {
		return domain.NewConfigurationError("pipeline range ends (%s) before it starts (%s)", in.End.Format(time.DateOnly), in.Start.Format(time.DateOnly))
	}

	runID := uuid.New()
	log.Infow("pipeline run starting",
		"run_id", runID, "start", in.Start.Format(time.DateOnly), "end", in.End.Format(time.DateOnly),
		"strict", in.Strict, "rebuild", in.Rebuild)

	for _, stage := range h.Stages(in) {
		if err := h.runStage(ctx, runID, stage); err != nil {
			return fmt.Errorf("stage %s failed: %w", stage.Name, err)
		}
	}

	log.Infow("pipeline run complete", "run_id", runID)
	return nil
}

// Stages builds the stage list for one run. The completeness report is
// shared between the check and imputation stages: a FAIL that imputation
// fully covers is downgraded to PASS_WITH_IMPUTATION instead of aborting
// the run.
func (h *PipelineHandler) Stages(in PipelineInput) []Stage {
	var report *domain.CompletenessReport

	stages := []Stage{}

	if in.CSVDir != "" {
		stages = append(stages, Stage{
			Name: "ingest_providers",
			Run: func(ctx context.Context) (string, error) {
				summary, err := h.IngestService.LoadProviderDir(ctx, in.CSVDir)
				if err != nil {
					return "", err
				}
				return summary.String(), nil
			},
		})
	}

	stages = append(stages,
		Stage{
			Name: "reconcile_prices",
			Run: func(ctx context.Context) (string, error) {
				summary, err := h.ReconciliationService.Reconcile(ctx, in.Start, in.End)
				if err != nil {
					return "", err
				}
				return summary.String(), nil
			},
		},
		Stage{
			Name: "completeness_check",
			Run: func(ctx context.Context) (string, error) {
				r, err := h.CompletenessService.Check(ctx, in.Start, in.End)
				if err != nil {
					return "", err
				}
				report = r
				return fmt.Sprintf("status=%s bad_days=%d", r.Status, r.BadDays), nil
			},
		},
		Stage{
			Name: "impute_gaps",
			Run: func(ctx context.Context) (string, error) {
				summary, err := h.ImputationService.Impute(ctx, in.Start, in.End)
				if err != nil {
					return "", err
				}
				if report != nil && report.Status == domain.CompletenessStatusFail {
					if len(summary.NoHistory) > 0 {
						return "", domain.NewDataUnavailableError(
							"completeness failed and %d gap(s) have no history to carry forward", len(summary.NoHistory))
					}
					report.Downgrade()
				}
				return summary.String(), nil
			},
		},
		Stage{
			Name: "recompute_index",
			Run: func(ctx context.Context) (string, error) {
				summary, err := h.IndexService.Recompute(ctx, in.Start, in.End, service.RecomputeOptions{
					Rebuild: in.Rebuild,
					Strict:  in.Strict,
				})
				if err != nil {
					return "", err
				}
				return summary.String(), nil
			},
		},
	)

	return stages
}

func (h *PipelineHandler) runStage(ctx context.Context, runID uuid.UUID, stage Stage) error {
	log := logger.FromContext(ctx)

	_, err := h.PipelineRunRepository.Add(nil, model.PipelineRun{
		RunID:     runID,
		Stage:     stage.Name,
		Status:    model.RunStatus_Started,
		StartedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to record stage start: %w", err)
	}

	detail, err := h.withRetry(ctx, stage)

	status := model.RunStatus_Ok
	if err != nil {
		status = model.RunStatus_Error
		detail = err.Error()
	}

	_, recordErr := h.PipelineRunRepository.Add(nil, model.PipelineRun{
		RunID:     runID,
		Stage:     stage.Name,
		Status:    status,
		StartedAt: time.Now().UTC(),
		EndedAt:   util.TimePointer(time.Now().UTC()),
		Detail:    util.StringPointer(detail),
	})
	if recordErr != nil {
		log.Errorw("failed to record stage result", "stage", stage.Name, "error", recordErr)
	}

	if err != nil {
		log.Errorw("stage failed", "stage", stage.Name, "error", err)
		if h.AlertService != nil && h.Config.EmailOnFail {
			alertErr := h.AlertService.Alert(ctx,
				"pipeline_"+stage.Name,
				fmt.Sprintf("[%s] pipeline stage %s failed", h.Config.IndexCode, stage.Name),
				err.Error(),
			)
			if alertErr != nil {
				log.Errorw("failed to alert on stage failure", "stage", stage.Name, "error", alertErr)
			}
		}
		return err
	}

	log.Infow("stage complete", "stage", stage.Name, "detail", detail)
	return nil
}

// withRetry re-runs the stage on transient storage failures only, with
// doubling delays starting at the configured base. Configuration and
// data errors surface immediately.
func (h *PipelineHandler) withRetry(ctx context.Context, stage Stage) (string, error) {
	log := logger.FromContext(ctx)

	attempt := 0
	operation := func() (string, error) {
		attempt++
		detail, err := stage.Run(ctx)
		if err == nil {
			return detail, nil
		}
		if repository.ErrorKind(err) != domain.ErrorKindTransient {
			return "", backoff.Permanent(err)
		}
		log.Warnw("transient stage failure", "stage", stage.Name, "attempt", attempt, "error", err)
		return "", err
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = h.Config.RetryBaseDelay
	policy.Multiplier = 2
	policy.RandomizationFactor = 0
	policy.MaxElapsedTime = 0

	maxRetries := uint64(0)
	if h.Config.MaxRetryAttempts > 1 {
		maxRetries = uint64(h.Config.MaxRetryAttempts - 1)
	}

	return backoff.RetryWithData(operation, backoff.WithContext(backoff.WithMaxRetries(policy, maxRetries), ctx))
}
