package ledger

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"memes/internal/domain/entity"
)

type Lister struct {
	ledger *Ledger
}

func NewLister(ledger *Ledger) *Lister {
	return &Lister{ledger: ledger}
}

type orphanDocument struct {
	Locator    string    `bson:"_id"`
	Reason     string    `bson:"reason"`
	MemeID     int64     `bson:"meme_id,omitempty"`
	RecordedAt time.Time `bson:"recorded_at"`
}

// List returns orphans oldest first, optionally only those recorded at or
// after since.
func (l *Lister) List(ctx context.Context, since *time.Time) ([]entity.Orphan, error) {
	ctx, cancel := context.WithTimeout(ctx, l.ledger.QueryTimeout)
	defer cancel()

	filter := bson.M{}
	if since != nil {
		filter["recorded_at"] = bson.M{"$gte": *since}
	}

	cursor, err := l.ledger.collection().Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "recorded_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var docs []orphanDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	orphans := make([]entity.Orphan, 0, len(docs))
	for _, d := range docs {
		orphans = append(orphans, entity.Orphan{
			Locator:    d.Locator,
			Reason:     d.Reason,
			MemeID:     uint(d.MemeID),
			RecordedAt: d.RecordedAt,
		})
	}

	return orphans, nil
}
