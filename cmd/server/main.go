package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/h0pler/whs2nd-secureshoppingmall/internal/config"
	"github.com/h0pler/whs2nd-secureshoppingmall/internal/events"
	"github.com/h0pler/whs2nd-secureshoppingmall/internal/httpserver"
	"github.com/h0pler/whs2nd-secureshoppingmall/internal/logging"
	loggingmw "github.com/h0pler/whs2nd-secureshoppingmall/internal/middleware/logging"
	"github.com/h0pler/whs2nd-secureshoppingmall/internal/repo"
	"github.com/h0pler/whs2nd-secureshoppingmall/internal/service"
	pkgdb "github.com/h0pler/whs2nd-secureshoppingmall/pkg/db"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := service.EnsureSchema(db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	rp := &repo.GormRepo{DB: db}

	bootCtx, bootCancel := context.WithTimeout(logging.IntoContext(context.Background(), logger), 10*time.Second)
	err = service.EnsureAdmin(bootCtx, rp)
	bootCancel()
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)

	accountSvc := &service.AccountService{Repo: rp, Producer: producer}
	catalogSvc := &service.CatalogService{Repo: rp, Producer: producer}

	e := echo.New()
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		AccountHandler: &httpserver.AccountHTTP{Svc: accountSvc},
		CatalogHandler: &httpserver.CatalogHTTP{Svc: catalogSvc},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
