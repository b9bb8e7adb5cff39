package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/hjerpbakk/dipsbot/src/bot/host"
	"github.com/hjerpbakk/dipsbot/src/common/config"
	"github.com/hjerpbakk/dipsbot/src/common/utils"
	"github.com/joho/godotenv"
)

const restartDelay = 5 * time.Second

func main() {
	// Load .env if present; in the cluster everything comes from the
	// environment directly.
	_ = godotenv.Load()

	utils.InitLogger()
	defer utils.SyncLogger()
	log := utils.GetLogger()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalw("invalid configuration", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Crash-restart supervision: a fatal error throws the whole instance
	// away and composes a fresh one. Nothing is carried across restarts.
	for {
		log.Infow("starting dipsbot")
		err := runOnce(ctx, cfg)

		if ctx.Err() != nil {
			log.Infow("dipsbot stopped")
			return
		}

		log.Errorw("dipsbot crashed, restarting", "error", err, "delay", restartDelay)
		select {
		case <-time.After(restartDelay):
		case <-ctx.Done():
			log.Infow("dipsbot stopped")
			return
		}
	}
}

func runOnce(ctx context.Context, cfg *config.Config) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("panic: %v", recovered)
		}
	}()

	return host.New(cfg).Run(ctx)
}
