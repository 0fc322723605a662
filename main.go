package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/gcordner/chargeguard/internal/config"
	"github.com/gcordner/chargeguard/internal/infra"
	"github.com/gcordner/chargeguard/internal/metrics"
)

const defaultConnectTimeout = 5 * time.Second

func main() {
	cfg, err := config.Build()
	if err != nil {
		logrus.Fatalf("failed to build config - %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultConnectTimeout)
	defer cancel()

	pgPool, err := infra.Postgresql(ctx, cfg.PostgresCfg)
	if err != nil {
		logrus.Fatalf("failed to connect to postgresql - %v", err)
	}
	defer pgPool.Close()

	mongoClient, err := infra.Mongodb(ctx, cfg.MongoCfg)
	if err != nil {
		logrus.Fatalf("failed to connect to mongodb - %v", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			logrus.Errorf("failed to disconnect from mongodb - %v", err)
		}
	}()

	redisClient, err := infra.Redis(ctx, cfg.RedisCfg)
	if err != nil {
		logrus.Fatalf("failed to connect to redis - %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logrus.Errorf("failed to close redis client - %v", err)
		}
	}()

	metrics.Register()

	app, err := infra.Router(pgPool, mongoClient, redisClient, cfg)
	if err != nil {
		logrus.Fatalf("failed to build router - %v", err)
	}

	start(app, cfg.HTTPCfg)
}

func start(app *echo.Echo, cfg config.HTTPCfg) {
	shutdownCh := make(chan os.Signal, 1)
	errorCh := make(chan error, 1)
	signal.Notify(shutdownCh, os.Interrupt)

	go func() {
		errorCh <- app.Start(fmt.Sprintf(":%d", cfg.Port))
	}()

	select {
	case <-shutdownCh:
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		app.Logger.Infof("shutdown signal has been sent, stopping the server...")
		if err := app.Shutdown(ctx); err != nil {
			app.Logger.Fatalf("failed to stop server gracefully - %s", err)
		}
	case err := <-errorCh:
		if !errors.Is(err, http.ErrServerClosed) {
			app.Logger.Fatalf("shutting down the server, unexpected error occurred - %s", err)
		}
	}
}
