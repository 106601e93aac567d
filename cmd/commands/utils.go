package commands

import (
	"errors"
	"os"

	"github.com/dezh-tech/immortal/pkg/logger"

	"memes/config"
)

func ExitOnError(err error) {
	logger.Error("memes error", "err", err.Error())
	os.Exit(1)
}

// loadConfig reads the config file named by the second argument and sets
// up the global logger from it.
func loadConfig(args []string) *config.Config {
	if len(args) < 3 {
		ExitOnError(errors.New("at least 1 arguments expected\nuse help command for more information"))
	}

	cfg, err := config.Load(args[2])
	if err != nil {
		ExitOnError(err)
	}

	logger.InitGlobalLogger(&cfg.Logger)

	return cfg
}
