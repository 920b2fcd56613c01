package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/karigar-app/admin-api/internal/config"
	"github.com/karigar-app/admin-api/internal/infra"
	"github.com/karigar-app/admin-api/internal/logging"
	"github.com/karigar-app/admin-api/internal/mailer"
	"github.com/karigar-app/admin-api/internal/push"
	"github.com/karigar-app/admin-api/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.LogLevel)

	ctx := context.Background()

	db, err := infra.NewMongoDatabase(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		logger.Error("connect mongo", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Client().Disconnect(context.Background()); err != nil {
			logger.Warn("disconnect mongo", "error", err)
		}
	}()

	cache, err := infra.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		logger.Error("connect redis", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := cache.Close(); err != nil {
			logger.Warn("close redis", "error", err)
		}
	}()

	var sender push.Sender
	if cfg.FirebaseCredentialsFile != "" {
		sender, err = push.NewFCMSender(ctx, cfg.FirebaseCredentialsFile)
		if err != nil {
			logger.Error("init fcm", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("FIREBASE_CREDENTIALS_FILE not set, push notifications are logged only")
		sender = push.NewLogSender(logger)
	}

	var mail mailer.Mailer
	if cfg.EmailFrom != "" && cfg.AdminEmail != "" {
		mail, err = mailer.NewSESMailer(ctx, cfg.AWSRegion, cfg.EmailFrom, cfg.AdminEmail)
		if err != nil {
			logger.Error("init ses", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Warn("EMAIL_FROM/ADMIN_EMAIL not set, admin email is logged only")
		mail = mailer.NewLogMailer(logger)
	}

	srv, err := server.New(cfg, db, cache, logger, sender, mail)
	if err != nil {
		logger.Error("build server", "error", err)
		os.Exit(1)
	}

	srvErrCh := make(chan error, 1)
	go func() {
		srvErrCh <- srv.Listen()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Info("shutdown signal received", "signal", sig.String())
	case err := <-srvErrCh:
		if err != nil {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownPeriod)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server exited cleanly")
}
