package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	httpctx "github.com/MTomala-IT/storeapi/internal/api/http/context"
	"github.com/MTomala-IT/storeapi/internal/api/http/router"
	httpServer "github.com/MTomala-IT/storeapi/internal/api/http/server"
	"github.com/MTomala-IT/storeapi/internal/config"
	"github.com/MTomala-IT/storeapi/internal/hasher"
	"github.com/MTomala-IT/storeapi/internal/logger"
	"github.com/MTomala-IT/storeapi/internal/model"
	"github.com/MTomala-IT/storeapi/internal/notify"
	"github.com/MTomala-IT/storeapi/internal/repository/postgres"
	"github.com/MTomala-IT/storeapi/internal/server"
	"github.com/MTomala-IT/storeapi/internal/service"
	storage "github.com/MTomala-IT/storeapi/internal/storage/minio"
	"github.com/MTomala-IT/storeapi/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	logger, err := logger.New(logger.Options{
		Level:            cfg.LogLevel(),
		Development:      cfg.IsDevelopment(),
		FilePath:         cfg.Log.File,
		MaxSizeBytes:     cfg.Log.MaxSizeBytes,
		Backups:          cfg.Log.Backups,
		ObfuscatedLength: cfg.ObfuscatedEmailLength(),
	})
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	tokenManager, err := token.NewJWT(cfg.JWT.Secret)
	if err != nil {
		logger.Fatal("failed to initialize token manager", "error", err)
	}
	tokenService := service.NewTokenService(tokenManager, cfg.JWT.AccessTTL(), cfg.JWT.ConfirmationTTL(), logger)

	passwordHasher := hasher.NewBcrypt(cfg.Bcrypt.Cost, cfg.Bcrypt.MaxConcurrent)
	authService := service.NewAuth(postgres.NewUserRepository(db), passwordHasher, tokenService, logger)
	postService := service.NewPost(
		postgres.NewPostRepository(db),
		postgres.NewCommentRepository(db),
		postgres.NewLikeRepository(db),
		logger,
	)

	minioClient, err := minio.New(cfg.Storage.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Storage.AccessKey, cfg.Storage.SecretKey, ""),
		Secure: cfg.Storage.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}
	storageClient, err := storage.NewClient(ctx, minioClient, cfg.Storage.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", "error", err)
	}
	uploadService := service.NewUpload(storageClient, logger)

	dispatcher := notify.NewDispatcher(newMailer(cfg, logger), cfg.Notify.QueueSize, logger)
	dispatcher.Start(cfg.Notify.Workers)

	r := router.New(router.Services{
		Auth:     authService,
		Resolver: authService,
		Post:     postService,
		Upload:   uploadService,
		Notifier: dispatcher,
		Pinger:   db,
	}, router.Options{
		BaseURL:             cfg.HTTP.BaseURL,
		CorrelationIDLength: cfg.CorrelationIDLength(),
	}, httpctx.NewManager(), logger)

	srv := httpServer.NewHTTPServer(r.Register(), cfg.HTTP.Address)
	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	dispatcher.Stop()
	logger.Info("shutdown complete")
}

func newMailer(cfg *config.Config, logger *logger.Logger) model.Mailer {
	if cfg.Mailgun.APIKey == "" || cfg.Mailgun.Domain == "" {
		logger.Warn("Mailgun is not configured, emails will only be logged")
		return notify.NewLogMailer(logger)
	}
	return notify.NewMailgun(cfg.Mailgun.Domain, cfg.Mailgun.APIKey, cfg.Mailgun.Sender, cfg.Mailgun.APIBase)
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
