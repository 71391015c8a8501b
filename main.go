package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "library-backend/docs"
	"library-backend/internal/books"
	"library-backend/internal/borrowing"
	"library-backend/internal/platform/config"
	"library-backend/internal/platform/db"
	"library-backend/internal/platform/logging"
)

// @title        Library Management API
// @version      1.0
// @description  Books and borrowing records.
// @BasePath     /
func main() {
	// 設定読み込み
	cfg, err := config.Load(config.Path())
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("load config")
	}

	logger := logging.New(cfg.Mode, cfg.Log.Level)
	logger.Info().Str("mode", cfg.Mode).Str("version", cfg.Version).Msg("starting")

	conn, err := db.Connect(cfg.DB)
	if err != nil {
		logger.Fatal().Err(err).Msg("connect database")
	}
	defer conn.Close()

	logger.Info().Str("driver", cfg.DB.Driver).Str("db", cfg.DB.DBName).Msg("connected to DB")

	srv := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      newRouter(cfg, logger, conn),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		var err error
		if cfg.Certificate.Enabled() {
			logger.Info().Str("addr", srv.Addr).Msg("listening (TLS)")
			err = srv.ListenAndServeTLS(cfg.Certificate.Cert, cfg.Certificate.Key)
		} else {
			logger.Info().Str("addr", srv.Addr).Msg("listening")
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("serve")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
}

func newRouter(cfg *config.Config, logger zerolog.Logger, conn *sql.DB) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(logging.Middleware(logger), gin.Recovery())
	_ = r.SetTrustedProxies(nil)

	if cfg.Mode == "dev" {
		// CORS（開発中のみ必要）
		r.Use(cors.New(cors.Config{
			AllowOrigins:  []string{"http://localhost:3000"},
			AllowHeaders:  []string{"Origin", "Content-Type", logging.RequestIDHeader},
			ExposeHeaders: []string{"Content-Length", "Location", logging.RequestIDHeader},
			AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		}))
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// ヘルス
	r.GET("/healthz", func(c *gin.Context) { c.String(http.StatusOK, "ok") })

	books.RegisterRoutes(r, books.NewService(conn))
	borrowing.RegisterRoutes(r, borrowing.NewService(conn))

	return r
}
