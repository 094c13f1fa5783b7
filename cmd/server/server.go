package main

import (
	"context"
	"net/http"
	"time"

	"github.com/chaosweaver007/Genesis/internal/config"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/crontab"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/logger"
	"github.com/chaosweaver007/Genesis/internal/infrastructure/observability"
	"github.com/chaosweaver007/Genesis/internal/interfaces/httpserver"

	"golang.org/x/sync/errgroup"

	_ "net/http/pprof"
)

type Application struct {
	httpServer *httpserver.HTTPServer
	crontab    *crontab.Crontab
}

func init() {
	logger.GetLogger()
	config.Load()
}

// @title Genesis API
// @version 1.0
// @description Persona chat service with a consent-gated conversation archive, wisdom pattern aggregation, and collective insight synthesis.
// @contact.name Genesis Collective
// @contact.url https://github.com/chaosweaver007/Genesis
// @BasePath /
func (application *Application) Start() {
	background := context.Background()
	ctx, cancel := context.WithCancel(background)
	defer cancel()

	var eg errgroup.Group
	if config.IsDev() {
		eg.Go(func() error {
			err := http.ListenAndServe("0.0.0.0:6060", nil)
			if err != nil {
				cancel()
			}
			return err
		})
	}
	eg.Go(func() error {
		err := application.crontab.Run(ctx)
		if err != nil {
			cancel()
		}
		return err
	})
	eg.Go(func() error {
		err := application.httpServer.Run()
		if err != nil {
			cancel()
		}
		return err
	})

	if err := eg.Wait(); err != nil {
		panic(err)
	}
}

func main() {
	ctx := context.Background()
	log := logger.GetLogger()

	cfg := config.GetGlobal()
	if cfg == nil {
		log.Fatal().Msg("config not loaded")
	}

	application, err := CreateApplication()
	if err != nil {
		log.Fatal().Err(err).Msg("create application")
	}

	otelShutdown, err := observability.Setup(ctx, cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("initialize observability")
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := otelShutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("shutdown telemetry")
			}
		}()
	}

	application.Start()
}
