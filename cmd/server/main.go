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

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/mkravets/ecommerce_api/internal/config"
	"github.com/mkravets/ecommerce_api/internal/es"
	"github.com/mkravets/ecommerce_api/internal/httpserver"
	"github.com/mkravets/ecommerce_api/internal/logging"
	loggingmw "github.com/mkravets/ecommerce_api/internal/middleware/logging"
	"github.com/mkravets/ecommerce_api/internal/mykafka"
	"github.com/mkravets/ecommerce_api/internal/repo"
	"github.com/mkravets/ecommerce_api/internal/service"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	ctx := context.Background()
	db, err := config.InitDB(ctx, configuration)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}

	var prod *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		prod = mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})
	}

	var searchHandler *httpserver.SearchHTTP
	if configuration.ES_URL != "" {
		client, err := es.NewClient(configuration)
		if err != nil {
			log.Fatalf("elasticsearch init error: %v", err)
		}
		searchHandler = &httpserver.SearchHTTP{ES: client, Index: es.ProductIndex}
	} else {
		searchHandler = &httpserver.SearchHTTP{Index: es.ProductIndex}
	}

	r := repo.NewGormRepo(db)

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		DB:             db,
		UserHandler:    &httpserver.UserHTTP{Svc: &service.UserService{Repo: r}, Producer: prod},
		ProductHandler: &httpserver.ProductHTTP{Svc: &service.ProductService{Repo: r}, Producer: prod, ES: searchHandler.ES},
		OrderHandler:   &httpserver.OrderHTTP{Svc: &service.OrderService{Repo: r}, Producer: prod},
		SearchHandler:  searchHandler,
	}

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + configuration.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
