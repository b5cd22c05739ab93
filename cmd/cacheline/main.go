package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/cacheline/cacheline/pkg/config"
	"github.com/cacheline/cacheline/pkg/logger"
	"github.com/cacheline/cacheline/pkg/protocol"
)

type appConfig struct {
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"text"`
	MaxLineBytes int    `env:"MAX_LINE_BYTES" envDefault:"1048576"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	// Logs go to stderr; stdout carries nothing but protocol responses.
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess := protocol.NewSession(
		protocol.WithLogger(log),
		protocol.WithMaxLineBytes(cfg.MaxLineBytes),
	)

	if err := sess.Run(ctx, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, context.Canceled) {
			log.Info("session interrupted")
			return
		}
		log.Error("session failed", logger.Error(err))
		os.Exit(1)
	}
}
