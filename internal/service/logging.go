package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kyhorne/coload/internal/domain/model"
	"github.com/kyhorne/coload/internal/repository"
)

// CheckoutAuditService records quote and checkout activity for the
// operator. Writes are best-effort: an audit failure is logged and
// never propagated into the request path.
type CheckoutAuditService interface {
	// Record stores a single audit entry.
	Record(ctx context.Context, entry *model.CheckoutLogEntry) error
	// RecordAsync stores an entry in the background with its own timeout.
	RecordAsync(entry *model.CheckoutLogEntry)
	// Query retrieves audit entries matching the query.
	Query(ctx context.Context, q model.CheckoutLogQuery) ([]*model.CheckoutLogEntry, error)
	// Count returns the number of audit entries matching the query.
	Count(ctx context.Context, q model.CheckoutLogQuery) (int64, error)
}

// checkoutAuditService implements CheckoutAuditService over the Mongo
// repository.
type checkoutAuditService struct {
	repo repository.CheckoutLogsRepositoryInterface
}

// NewCheckoutAuditService creates an audit service over the given
// repository.
func NewCheckoutAuditService(repo repository.CheckoutLogsRepositoryInterface) CheckoutAuditService {
	return &checkoutAuditService{repo: repo}
}

func (s *checkoutAuditService) Record(ctx context.Context, entry *model.CheckoutLogEntry) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	return s.repo.Create(ctx, entry)
}

func (s *checkoutAuditService) RecordAsync(entry *model.CheckoutLogEntry) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.Record(ctx, entry); err != nil {
			log.Warn().Err(err).Str("action", entry.Action).Msg("Audit write failed")
		}
	}()
}

func (s *checkoutAuditService) Query(ctx context.Context, q model.CheckoutLogQuery) ([]*model.CheckoutLogEntry, error) {
	return s.repo.Query(ctx, q)
}

func (s *checkoutAuditService) Count(ctx context.Context, q model.CheckoutLogQuery) (int64, error) {
	return s.repo.Count(ctx, q)
}
