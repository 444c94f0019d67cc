package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"dnfapi/internal/config"
	"dnfapi/internal/database"
	"dnfapi/internal/domain/health"
	"dnfapi/internal/domain/lead"
	"dnfapi/internal/domain/proposal"
	"dnfapi/internal/pkg/asset"
	"dnfapi/internal/pkg/logger"
	"dnfapi/internal/pkg/mailer"
	"dnfapi/internal/pkg/metrics"
	"dnfapi/internal/repository"
	"dnfapi/internal/server"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		log.Fatal(err)
	}
	lg = lg.With("service", cfg.ServiceName)

	if cfg.IsProdLike() {
		gin.SetMode(gin.ReleaseMode)
	}

	leadRepo, proposalRepo, store, closeStore, err := openStore(cfg, lg)
	if err != nil {
		lg.Error("store init failed", "error", err)
		os.Exit(1)
	}
	defer closeStore()

	sender, err := mailer.New(mailer.Options{
		Provider:     cfg.EmailProvider,
		ResendAPIKey: cfg.ResendAPIKey,
		SMTPHost:     cfg.SMTPHost,
		SMTPPort:     cfg.SMTPPort,
		SMTPUser:     cfg.EmailUser,
		SMTPPassword: cfg.EmailPassword,
	}, lg)
	if err != nil {
		lg.Error("mailer init failed", "error", err)
		os.Exit(1)
	}

	pdf, err := asset.New(cfg.PDFPath, asset.S3Options{
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		UseSSL:    cfg.S3UseSSL,
	})
	if err != nil {
		lg.Error("asset reader init failed", "error", err)
		os.Exit(1)
	}

	router := server.NewRouter(server.Deps{
		ServiceName:   cfg.ServiceName,
		ExposeDetails: cfg.ErrorDetailsEnabled(),
		AllowOrigins:  cfg.AllowedOrigins(),
		MetricsToken:  cfg.MetricsToken,
		MetricsIPs:    cfg.MetricsIPs(),
		Leads:         lead.NewService(leadRepo, pdf, sender, cfg.EmailFrom, lg),
		Proposals:     proposal.NewService(proposalRepo, lg),
		Store:         store,
		Metrics:       metrics.NewManager(),
		Log:           lg,
	})
	srv := server.New(cfg.Addr(), router)

	errCh := make(chan error, 1)
	go func() {
		lg.Info("starting", "addr", cfg.Addr(), "env", cfg.AppEnv, "email_provider", cfg.EmailProvider)
		errCh <- srv.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		lg.Info("shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			lg.Error("shutdown failed", "error", err)
			os.Exit(1)
		}
		lg.Info("shutdown complete")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			lg.Error("server failed", "error", err)
			os.Exit(1)
		}
	}
}

// openStore returns the repositories for the configured DSN. memory://
// keeps everything in process; anything else goes through the SQL pool.
func openStore(cfg *config.Config, lg *slog.Logger) (lead.Repository, proposal.Repository, health.Pinger, func(), error) {
	dsn := cfg.DSN()

	if database.IsMemory(dsn) {
		lg.Warn("using in-memory store; data is lost on restart")
		mem, err := repository.NewMemoryStore()
		if err != nil {
			return nil, nil, nil, nil, err
		}
		return mem.Leads(), mem.Proposals(), mem, func() {}, nil
	}

	db, err := database.Connect(dsn, database.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	}, lg)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	if cfg.DBAutoMigrate {
		if err := database.Migrate(db, dsn, &lead.Lead{}, &proposal.Proposal{}); err != nil {
			_ = database.Close(db)
			return nil, nil, nil, nil, fmt.Errorf("migrate: %w", err)
		}
	}

	ping := health.PingerFunc(func(ctx context.Context) error { return database.Ping(ctx, db) })
	closeDB := func() {
		if err := database.Close(db); err != nil {
			lg.Error("close database", "error", err)
		}
	}
	return lead.NewRepository(db), proposal.NewRepository(db), ping, closeDB, nil
}
