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

	"github.com/fothel/collectorvault/internal/config"
	"github.com/fothel/collectorvault/internal/es"
	"github.com/fothel/collectorvault/internal/handlers"
	"github.com/fothel/collectorvault/internal/logging"
	loggingmw "github.com/fothel/collectorvault/internal/middleware/logging"
	"github.com/fothel/collectorvault/internal/mykafka"
	"github.com/fothel/collectorvault/internal/service"
	httpserver "github.com/fothel/collectorvault/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}

	jwtSecret := []byte(configuration.JWT_SECRET)

	var prod *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		prod, err = mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})
		if err != nil {
			log.Fatal(err)
		}
		defer prod.Close()
	} else {
		logger.Warn("KAFKA_ADDRESS not set, event publishing disabled")
	}

	var indexer *es.Indexer
	if configuration.ES_URL != "" {
		esClient, err := es.NewClient(configuration)
		if err != nil {
			log.Fatal(err)
		}
		indexer = es.NewIndexer(esClient, "products")
	} else {
		logger.Warn("ES_URL not set, catalog search disabled")
	}

	e := echo.New()
	e.HideBanner = true
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID(), loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		JWTSecret:       jwtSecret,
		AuthHandler:     &handlers.AuthHandler{DB: db, JWTSecret: jwtSecret, Producer: prod},
		ProductHandler:  &handlers.ProductHandler{DB: db, Producer: prod, Indexer: indexer},
		PurchaseHandler: &handlers.PurchaseHandler{Svc: &service.PurchaseService{DB: db}, Producer: prod},
		ReviewHandler:   &handlers.ReviewHandler{DB: db},
		SearchHandler:   &handlers.SearchHandler{Indexer: indexer},
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
		logger.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
	logger.Info("server stopped")
}
