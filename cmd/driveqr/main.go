package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/mgsouza/driveqr/internal/app/delivery"
	"github.com/mgsouza/driveqr/internal/app/repository"
	"github.com/mgsouza/driveqr/internal/app/usecase"
	"github.com/mgsouza/driveqr/internal/config"
	"github.com/mgsouza/driveqr/internal/drive"
	"github.com/mgsouza/driveqr/internal/middleware"
	"github.com/mgsouza/driveqr/internal/preview"
	"github.com/mgsouza/driveqr/internal/qr"
	"github.com/mgsouza/driveqr/internal/utils/logger"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		fmt.Printf("error initializing config: %v\n", err)
		os.Exit(1)
	}

	err = logger.Init(cfg.LogMode)
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("configuration loaded successfully")
	logger.Debug("debug mode enabled",
		zap.String("log_mode", cfg.LogMode),
		zap.String("extract_endpoint", cfg.ExtractEndpoint),
		zap.Duration("resolve_timeout", cfg.ResolveTimeout),
		zap.Int("max_batch_size", cfg.MaxBatchSize),
	)

	previews, err := preview.CreateManager(afero.NewOsFs(), cfg.PreviewDir)
	if err != nil {
		logger.Error("failed to create preview store", zap.Error(err))
		os.Exit(1)
	}
	defer previews.ReleaseAll()

	results := repository.CreateResultRepository()
	decoder := qr.CreateDecoder()
	resolver := drive.CreateResolver(cfg.ExtractEndpoint, cfg.ResolveTimeout)
	extractor := drive.CreateExtractor(nil)

	scanUsecase := usecase.CreateScanUsecase(results, previews, decoder, resolver, cfg.MaxBatchSize)
	scanDelivery := delivery.CreateScanDelivery(scanUsecase, extractor)

	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}).Methods("GET")

	router.HandleFunc("/previews/{id}", scanDelivery.GetPreview).Methods("GET")

	apiRouter := router.PathPrefix("/api/v1").Subrouter()
	scanRouter := apiRouter.PathPrefix("/scans").Subrouter()
	scanRouter.HandleFunc("", scanDelivery.ProcessBatch).Methods("POST")
	scanRouter.HandleFunc("", scanDelivery.GetResults).Methods("GET")
	scanRouter.HandleFunc("", scanDelivery.ClearResults).Methods("DELETE")

	driveRouter := apiRouter.PathPrefix("/drive").Subrouter()
	driveRouter.HandleFunc("/extract-title", scanDelivery.ExtractTitle).Methods("POST")
	driveRouter.HandleFunc("/audio/{fileId}", scanDelivery.ProxyAudio).Methods("GET")

	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.PanicMiddleware)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	serverErr := make(chan error, 1)

	go func() {
		logger.Info("starting HTTP server",
			zap.String("address", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", zap.Error(err))
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("failed to start server", zap.Error(err))
		os.Exit(1)
	case sig := <-quit:
		logger.Info("server is shutting down",
			zap.String("signal", sig.String()),
		)

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server shutdown error", zap.Error(err))
			os.Exit(1)
		}

		logger.Info("server stopped")
	}
}
