package ledger

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"memes/internal/domain/entity"
)

type Recorder struct {
	ledger *Ledger
}

func NewRecorder(ledger *Ledger) *Recorder {
	return &Recorder{ledger: ledger}
}

// Record upserts by locator so the same orphan reported twice stays one
// entry with its latest reason.
func (r *Recorder) Record(ctx context.Context, orphan entity.Orphan) error {
	ctx, cancel := context.WithTimeout(ctx, r.ledger.QueryTimeout)
	defer cancel()

	if orphan.RecordedAt.IsZero() {
		orphan.RecordedAt = time.Now().UTC()
	}

	set := bson.M{
		"reason":      orphan.Reason,
		"recorded_at": orphan.RecordedAt,
	}
	if orphan.MemeID != 0 {
		set["meme_id"] = int64(orphan.MemeID)
	}

	_, err := r.ledger.collection().UpdateOne(ctx,
		bson.M{"_id": orphan.Locator},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)

	return err
}
