package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/aryaprdni/cash-ease-be/internal/pkg/logging"
	"github.com/aryaprdni/cash-ease-be/internal/wallet/bootstrap"
	"github.com/joho/godotenv"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger

	if err := godotenv.Load(); err != nil {
		defaultLogger.Info("no .env file found, using process environment")
	}

	cfg, err := bootstrap.LoadWalletConfig()
	if err != nil {
		defaultLogger.Error("failed to load config", "error", err.Error())
		return
	}

	app := bootstrap.NewWalletApp(cfg, defaultLogger)

	if err := app.Run(mainCtx); err != nil {
		defaultLogger.Error("wallet app stopped with error", "error", err.Error())
	}

	app.Shutdown()
}
