package service

import (
	"context"
	"fmt"
	"time"

	"tech100/internal/logger"
	"tech100/internal/repository"
)

// AlertService sends operator alerts with once-per-day suppression: at
// most one email per alert key per calendar day, enforced through the
// alert log table so restarts don't re-alert.
type AlertService interface {
	Alert(ctx context.Context, key, subject, body string) error
}

type alertServiceHandler struct {
	AlertLogRepository repository.AlertLogRepository
	EmailRepository    repository.EmailRepository
	ToEmail            string
}

func NewAlertService(
	alertLogRepository repository.AlertLogRepository,
	emailRepository repository.EmailRepository,
	toEmail string,
) AlertService {
	return &alertServiceHandler{
		AlertLogRepository: alertLogRepository,
		EmailRepository:    emailRepository,
		ToEmail:            toEmail,
	}
}

func (h *alertServiceHandler) Alert(ctx context.Context, key, subject, body string) error {
	log := logger.FromContext(ctx)

	today := time.Now().UTC().Truncate(24 * time.Hour)
	inserted, err := h.AlertLogRepository.TryInsert(nil, key, today, subject)
	if err != nil {
		return fmt.Errorf("failed to record alert %s: %w", key, err)
	}
	if !inserted {
		log.Infow("alert suppressed", "key", key, "date", today.Format(time.DateOnly))
		return nil
	}

	if h.EmailRepository == nil || h.ToEmail == "" {
		log.Warnw("alert raised but email delivery is not configured", "key", key, "subject", subject)
		return nil
	}

	if err := h.EmailRepository.SendEmail(h.ToEmail, subject, body); err != nil {
		return fmt.Errorf("failed to send alert %s: %w", key, err)
	}

	log.Infow("alert sent", "key", key, "subject", subject)
	return nil
}
