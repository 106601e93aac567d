package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dezh-tech/immortal/pkg/logger"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"memes"
	"memes/internal/application/usecase"
	brokerRepo "memes/internal/domain/repository/broker"
	ledgerRepo "memes/internal/domain/repository/ledger"
	"memes/internal/infrastructure/broker"
	"memes/internal/infrastructure/database"
	"memes/internal/infrastructure/identity"
	"memes/internal/infrastructure/ledger"
	"memes/internal/infrastructure/metrics"
	"memes/internal/infrastructure/minio"
	"memes/internal/presentation"
	"memes/internal/presentation/handler"
	"memes/internal/presentation/middleware"
)

func HandleRun(args []string) {
	cfg := loadConfig(args)

	logger.Info("running memes", "version", memes.StringVersion())

	db, err := database.Connect(cfg.DBConfig)
	if err != nil {
		ExitOnError(err)
	}
	defer func() {
		if err := db.Stop(); err != nil {
			logger.Error("couldn't stop db instance", "err", err)
		}
	}()

	if err := db.Migrate(); err != nil {
		ExitOnError(err)
	}

	minIOClient, err := minio.New(&cfg.MinIOClient)
	if err != nil {
		ExitOnError(err)
	}
	minIOUploader := minio.NewUploader(minIOClient, &cfg.MinIOUploader)
	minIOFetcher := minio.NewFetcher(minIOClient, &cfg.MinIOFetcher)
	minIORemover := minio.NewRemover(minIOClient, &cfg.MinIORemover)

	var publisher brokerRepo.Publisher
	if cfg.BrokerConfig.URI != "" {
		brokerClient, err := broker.NewClient(cfg.BrokerConfig)
		if err != nil {
			ExitOnError(err)
		}
		defer brokerClient.Close()

		publisher = broker.NewPublisher(brokerClient, cfg.PublisherConfig)
	} else {
		logger.Warn("BROKER_URI is not set, meme events will not be published")
	}

	var recorder ledgerRepo.Recorder
	if cfg.LedgerConfig.URI != "" {
		orphanLedger, err := ledger.Connect(cfg.LedgerConfig)
		if err != nil {
			ExitOnError(err)
		}
		defer func() {
			if err := orphanLedger.Stop(); err != nil {
				logger.Error("couldn't stop ledger", "err", err)
			}
		}()

		recorder = ledger.NewRecorder(orphanLedger)
	} else {
		logger.Warn("LEDGER_URI is not set, orphaned images will only be logged")
	}

	m := metrics.New()
	reporter := usecase.NewReporter(publisher, recorder, m)

	tokens, err := identity.NewTokenService(cfg.Identity)
	if err != nil {
		ExitOnError(err)
	}
	hasher := identity.NewBcryptHasher(cfg.Identity.BcryptCost)
	users := database.NewUserStore(db)
	resolver := identity.NewResolver(tokens, users)

	dbRetriever := database.NewMemeRetriever(db)

	uploadHandler := handler.NewUploadHandler(
		usecase.NewUploader(database.NewMemeWriter(db), minIOUploader, reporter))
	updateHandler := handler.NewUpdateHandler(
		usecase.NewUpdater(dbRetriever, database.NewMemeUpdater(db), minIOUploader, minIORemover, reporter))
	deleteHandler := handler.NewDeleteHandler(
		usecase.NewDeleter(dbRetriever, database.NewMemeRemover(db), minIORemover, reporter))
	getHandler := handler.NewGetHandler(usecase.NewGetter(dbRetriever))
	imageHandler := handler.NewImageHandler(usecase.NewImageGetter(dbRetriever, minIOFetcher))
	listHandler := handler.NewListHandler(usecase.NewLister(database.NewMemeLister(db)))
	userHandler := handler.NewUserHandler(usecase.NewRegistrar(users, hasher),
		usecase.NewAuthenticator(users, hasher, tokens))

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderAuthorization, echo.HeaderContentType, echo.HeaderContentLength},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch,
			http.MethodDelete, http.MethodOptions},
		MaxAge: 86400,
	}))
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Secure())
	e.Use(echoMiddleware.BodyLimit(cfg.HTTPServer.BodyLimit))
	e.Use(echoMiddleware.RateLimiter(echoMiddleware.NewRateLimiterMemoryStore(rate.Limit(cfg.HTTPServer.RateLimit))))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))

	auth := middleware.AuthMiddleware(resolver)
	idPath := "/:" + presentation.IDParam

	g := e.Group("/memes")
	g.POST("/user/sign-up", userHandler.HandleSignUp)
	g.POST("/user/token", userHandler.HandleToken)
	g.GET("/", listHandler.Handle)
	g.POST("/", uploadHandler.Handle, auth)
	g.GET("/image"+idPath, imageHandler.Handle, auth)
	g.GET(idPath, getHandler.Handle, auth)
	g.PATCH(idPath, updateHandler.Handle, auth)
	g.DELETE(idPath, deleteHandler.Handle, auth)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(cfg.HTTPServer.Address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			ExitOnError(fmt.Errorf("shutting down server: %w", err))
		}
	}()

	<-ctx.Done()
	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.HTTPServer.ShutdownTimeout)*time.Millisecond)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("failed to shut down http server", "err", err)
	}
}
