package usecase

import (
	"context"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"

	"memes/internal/domain/entity"
	"memes/internal/domain/model"
	"memes/internal/domain/repository/broker"
	"memes/internal/domain/repository/ledger"
	"memes/internal/infrastructure/metrics"
)

// Orphan reasons.
const (
	ReasonRowCreateFailed     = "row_create_failed"
	ReasonRowUpdateFailed     = "row_update_failed"
	ReasonOldBlobDeleteFailed = "old_blob_delete_failed"
	ReasonBlobDeleteFailed    = "blob_delete_failed"
)

// Reporter runs the side effects that follow a mutation step: events,
// orphan records and counters. A failing side effect is logged and counted,
// it never changes the outcome returned to the caller.
type Reporter struct {
	publisher broker.Publisher
	recorder  ledger.Recorder
	metrics   *metrics.Metrics
}

// NewReporter accepts nil collaborators; the matching side effect is then
// skipped.
func NewReporter(publisher broker.Publisher, recorder ledger.Recorder, m *metrics.Metrics) *Reporter {
	return &Reporter{
		publisher: publisher,
		recorder:  recorder,
		metrics:   m,
	}
}

func (r *Reporter) track(operation string) func() {
	if r == nil {
		return func() {}
	}

	return r.metrics.Track(operation)
}

func (r *Reporter) mutation(operation string, err error) {
	if r == nil {
		return
	}
	r.metrics.Mutation(operation, err)
}

func (r *Reporter) blob(operation string, err error) {
	if r == nil {
		return
	}
	r.metrics.Blob(operation, err)
}

func (r *Reporter) event(ctx context.Context, kind entity.EventKind, meme *model.Meme) {
	if r == nil || r.publisher == nil {
		return
	}

	event := entity.MemeEvent{
		Kind:     kind,
		MemeID:   meme.ID,
		Owner:    meme.UserID.String(),
		ImageURL: meme.ImageURL,
		At:       time.Now().UTC(),
	}

	if err := r.publisher.Publish(context.WithoutCancel(ctx), event); err != nil {
		logger.Warn("failed to publish meme event", "kind", string(kind), "meme_id", meme.ID, "err", err)
		r.metrics.SideEffectFailed("publish")
	}
}

// orphan reports a blob object that no row references any more.
func (r *Reporter) orphan(ctx context.Context, locator, reason string, memeID uint) {
	logger.Warn("blob object orphaned", "locator", locator, "reason", reason, "meme_id", memeID)

	if r == nil {
		return
	}
	r.metrics.Orphan(reason)

	// The request context may already be cancelled; that is often why the
	// orphan exists.
	ctx = context.WithoutCancel(ctx)
	now := time.Now().UTC()

	if r.recorder != nil {
		err := r.recorder.Record(ctx, entity.Orphan{
			Locator:    locator,
			Reason:     reason,
			MemeID:     memeID,
			RecordedAt: now,
		})
		if err != nil {
			logger.Error("failed to record orphan", "locator", locator, "err", err)
			r.metrics.SideEffectFailed("ledger")
		}
	}

	if r.publisher != nil {
		err := r.publisher.Publish(ctx, entity.MemeEvent{
			Kind:     entity.EventOrphaned,
			MemeID:   memeID,
			ImageURL: locator,
			At:       now,
		})
		if err != nil {
			logger.Warn("failed to publish orphan event", "locator", locator, "err", err)
			r.metrics.SideEffectFailed("publish")
		}
	}
}
