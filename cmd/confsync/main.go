package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		zap.L().Fatal("confsync failed", zap.Error(err))
	}
	_ = zap.L().Sync()
}

func init() {
	// replaced once settings are loaded, see setupLogger
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
}
