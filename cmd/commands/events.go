package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dezh-tech/immortal/pkg/logger"

	"memes/internal/infrastructure/broker"
)

// HandleEvents follows the meme event stream as a member of the configured
// consumer group and prints every event body until interrupted.
func HandleEvents(args []string) {
	cfg := loadConfig(args)

	consumer := "memes-cli"
	if len(args) > 3 {
		consumer = args[3]
	}

	client, err := broker.NewClient(cfg.BrokerConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer func() {
		if err := client.Close(); err != nil {
			logger.Error("couldn't close broker client", "err", err)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	messages, err := broker.NewReceiver(client, cfg.ReceiverConfig).Messages(ctx, consumer)
	if err != nil {
		ExitOnError(err)
	}

	for msg := range messages {
		if _, err := fmt.Println(msg.Body()); err != nil {
			logger.Warn("failed to print event, requeueing", "id", msg.ID(), "err", err)
			if err := msg.Nack(); err != nil {
				logger.Error("failed to requeue event", "id", msg.ID(), "err", err)
			}

			continue
		}

		if err := msg.Ack(); err != nil {
			logger.Warn("failed to ack event", "id", msg.ID(), "err", err)
		}
	}
}
