package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"

	"memes/internal/infrastructure/ledger"
)

// HandleOrphans prints the orphaned images recorded in the ledger as JSON
// lines, one per object, so they can be fed to a cleanup script.
func HandleOrphans(args []string) {
	cfg := loadConfig(args)

	var since *time.Time
	if len(args) > 3 {
		t, err := time.Parse(time.RFC3339, args[3])
		if err != nil {
			ExitOnError(fmt.Errorf("invalid since timestamp: %w", err))
		}
		since = &t
	}

	l, err := ledger.Connect(cfg.LedgerConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer func() {
		if err := l.Stop(); err != nil {
			logger.Error("couldn't stop ledger", "err", err)
		}
	}()

	orphans, err := ledger.NewLister(l).List(context.Background(), since)
	if err != nil {
		ExitOnError(err)
	}

	enc := json.NewEncoder(os.Stdout)
	for _, o := range orphans {
		if err := enc.Encode(o); err != nil {
			ExitOnError(err)
		}
	}

	logger.Info("orphans listed", "count", len(orphans))
}
