package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"bookcatalog/internal/catalog/variants"
	"bookcatalog/internal/config"
	transporthttp "bookcatalog/internal/transport/http"
	"bookcatalog/pkg/jwt"
	"bookcatalog/pkg/logger"

	"bookcatalog/internal/bookstore"
	"bookcatalog/internal/stockmanager"
)

func main() {
	if err := godotenv.Load(); err != nil {
		stdlog.Println("no .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)

	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger.Info("starting bookcatalog server", map[string]interface{}{
		"environment": cfg.App.Environment,
		"single_lock": cfg.App.SingleLock,
	})

	Serve(cfg)
}

// Serve builds the catalog, the HTTP adapter, and runs the server until an
// interrupt or terminate signal arrives.
func Serve(cfg *config.Config) {
	var controller variants.Controller
	if cfg.App.SingleLock {
		controller = variants.NewControllerS()
	} else {
		controller = variants.NewControllerT()
	}

	store := bookstore.New(controller)
	manager := stockmanager.New(controller)
	tokens := jwt.NewManager(cfg.HTTP.AdminTokenSecret)

	operatorToken, err := tokens.IssueOperatorToken(24 * time.Hour)
	if err != nil {
		stdlog.Fatalf("failed to issue operator token: %v", err)
	}
	logger.Info("operator token issued", map[string]interface{}{
		"expires_in": "24h",
		"token":      operatorToken,
	})

	router := transporthttp.NewRouter(store, manager, tokens)

	srv := &http.Server{
		Addr:           fmt.Sprintf(":%s", cfg.HTTP.Port),
		Handler:        router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    60 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	go func() {
		logger.Info("listening", map[string]interface{}{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			stdlog.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", err)
	}

	logger.Info("server exited gracefully", nil)
}
