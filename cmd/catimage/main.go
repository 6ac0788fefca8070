package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/youruser/catimage/internal/app"
	"github.com/youruser/catimage/internal/cli"
	"github.com/youruser/catimage/internal/config"
	imagepkg "github.com/youruser/catimage/internal/image"
	"github.com/youruser/catimage/internal/util"
	"github.com/youruser/catimage/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString("catimage: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		os.Stderr.WriteString("catimage: failed to initialize logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	// one client for the whole process
	client := util.NewHTTPClient(log)

	fetcher := imagepkg.NewFetcher(client, cfg.BaseURL, os.Stdout, log)
	composer := imagepkg.NewComposer(imagepkg.SystemFontLoader{
		Family: cfg.Font.Family,
		File:   cfg.Font.File,
		Size:   cfg.Font.Size,
	}, log)
	runner := app.NewRunner(fetcher, composer, os.Stdout, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd(runner).ExecuteContext(ctx); err != nil {
		stop()
		log.Sync()
		os.Exit(1)
	}
}
