package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"

	"github.com/vanshaj8/Promptly/internal/common"
	"github.com/vanshaj8/Promptly/internal/wire"
)

const shutdownTimeout = 15 * time.Second

func main() {
	app, cleanup, err := wire.InitializeApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer cleanup()

	logger := app.Logger.WithField("module", "main")

	router := mux.NewRouter()
	router.Use(common.LoggingMiddleware(app.Logger))
	router.Use(common.CORSMiddleware(app.Config.Server.FrontendURL))
	app.Handler.RegisterRoutes(router, common.AuthMiddleware(app.JWT))

	srv := &http.Server{
		Addr:         net.JoinHostPort(app.Config.Server.Host, app.Config.Server.Port),
		Handler:      router,
		ReadTimeout:  app.Config.Server.ReadTimeout,
		WriteTimeout: app.Config.Server.WriteTimeout,
	}

	go func() {
		logger.WithField("addr", srv.Addr).Info("promptly service listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("graceful shutdown failed")
	}
	logger.Info("stopped")
}
