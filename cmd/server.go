package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"nsslens/internal/config"
	"nsslens/internal/core"
	"nsslens/internal/db"
	"nsslens/internal/http/handler"
	"nsslens/internal/http/handler/middleware"
	"nsslens/internal/http/payload"
	"nsslens/internal/http/server"
	"nsslens/internal/repository"
	"nsslens/internal/storage"
	"nsslens/pkg/log"

	"github.com/joho/godotenv"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	// optional .env for local development
	_ = godotenv.Load()

	config, err := config.NewApp()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	level, lvlErr := zapcore.ParseLevel(config.LogLevel)
	if lvlErr != nil {
		level = zapcore.InfoLevel
	}
	logger := log.NewZapLogger("nsslens", level)
	if lvlErr != nil {
		logger.Warnw("invalid log level, using info", "value", config.LogLevel)
	}

	dbConn, err := db.NewGormDB(config.DBDriver, config.DBDSN)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// repository
	repo := repository.NewContestRepository(dbConn)

	err = repo.MigrateTables()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// upload directory
	files, err := storage.NewStore(config.UploadDir)
	if err != nil {
		logger.Errorw("failed to prepare upload directory", "error", err)
		return err
	}

	// lens
	lens := core.NewLens(
		logger,
		repo,
		files)

	// handler
	lensHlr := handler.NewLensHandler(
		logger,
		payload.DecodeValidator{},
		lens,
		config.MaxUploadBytes)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewLoggingMiddleware(logger).Logging(mux)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Index, lensHlr.HandleIndex)
	mux.HandleFunc(handler.Register, lensHlr.HandleRegister)
	mux.HandleFunc(handler.SubmitPhoto, lensHlr.HandleSubmitPhoto)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir(config.StaticDir))))

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
