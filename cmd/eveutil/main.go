package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/eagleviewent/go-utilities/internal/cli"
	"github.com/eagleviewent/go-utilities/logger"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := cli.LoadConfig(".")
	if err != nil {
		fmt.Fprintln(os.Stderr, "load config:", err)

		return 1
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "create logger:", err)

		return 1
	}

	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.NewRootCommand(cfg, log).ExecuteContext(ctx); err != nil {
		log.Error("command failed", zap.Error(err))

		return 1
	}

	return 0
}
