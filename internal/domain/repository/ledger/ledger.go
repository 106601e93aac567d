package ledger

import (
	"context"
	"time"

	"memes/internal/domain/entity"
)

// Recorder keeps track of blob objects that lost their referencing row.
type Recorder interface {
	Record(ctx context.Context, orphan entity.Orphan) error
}

type Lister interface {
	List(ctx context.Context, since *time.Time) ([]entity.Orphan, error)
}
