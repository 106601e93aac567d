package commands

import (
	"github.com/dezh-tech/immortal/pkg/logger"

	"memes/internal/infrastructure/database"
)

func HandleMigrate(args []string) {
	cfg := loadConfig(args)

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer func() {
		if err := db.Stop(); err != nil {
			logger.Error("couldn't stop db instance", "err", err)
		}
	}()

	if err := db.Migrate(); err != nil {
		ExitOnError(err)
	}

	logger.Info("database schema is up to date")
}
