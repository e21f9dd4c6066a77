package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/SantoTourViagens/santo-tour-agency/internal/config"
	router "github.com/SantoTourViagens/santo-tour-agency/internal/http"
	"github.com/SantoTourViagens/santo-tour-agency/internal/logging"
	"github.com/SantoTourViagens/santo-tour-agency/internal/migrations"
)

func main() {
	env, err := config.Load()
	if err != nil {
		log.Fatalf("falha ao carregar configuracao: %v", err)
	}
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	logger, err := logging.New(env.LogLevel, env.LogFormat)
	if err != nil {
		log.Fatalf("falha ao iniciar logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := config.ConnectDB(env.DSN)
	if err != nil {
		logger.Fatal("falha ao conectar ao banco", zap.Error(err))
	}
	defer config.CloseDB()

	if env.MigrateOnStart {
		if err := migrations.Up(db); err != nil {
			logger.Fatal("falha ao migrar o banco", zap.Error(err))
		}
	}

	r := router.NewRouter(env, logger)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("servidor no ar", zap.String("addr", env.AppAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("falha ao subir o servidor", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("encerrando servidor")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("shutdown falhou", zap.Error(err))
	}

	logger.Info("servidor encerrado")
}
