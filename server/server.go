package server

import (
	"context"
	"fmt"
	stdlog "log"
	"log/slog"
	"net/http"
	"time"

	"github.com/fasthttp/router"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/royalcat/geostash/game"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const MaxBodySize = 1 * 1000 * 1000 // 1MB

var meter = otel.Meter("github.com/royalcat/geostash/server")

func Run(ctx context.Context, address string, g *game.Game) error {
	if err := setupTelemetry(ctx); err != nil {
		return fmt.Errorf("failed to initialize otel metrics: %w", err)
	}

	log := slog.Default()

	metricMoveCallCount, err := meter.Int64Counter("http_move_call_total")
	if err != nil {
		return err
	}
	metricTransferCallCount, err := meter.Int64Counter("http_transfer_call_total")
	if err != nil {
		return err
	}
	metricCoinsMoved, err := meter.Int64Counter("coins_moved_total")
	if err != nil {
		return err
	}
	s := &server{
		game: g,

		metricMoveCallCount:     metricMoveCallCount,
		metricTransferCallCount: metricTransferCallCount,
		metricCoinsMoved:        metricCoinsMoved,
	}

	r := router.New()
	r.POST("/geostash/move/{lat}/{lon}", s.MoveHandler)
	r.GET("/geostash/stashes", s.StashesHandler)
	r.GET("/geostash/stash/{lat}/{lon}", s.StashAtHandler)
	r.GET("/geostash/inventory", s.InventoryHandler)
	r.POST("/geostash/collect/{i}/{j}/{count}", s.CollectHandler)
	r.POST("/geostash/deposit/{i}/{j}/{count}", s.DepositHandler)
	r.Handle(http.MethodGet, "/metrics", fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler()))

	server := &fasthttp.Server{
		ReadTimeout:        time.Second,
		MaxRequestBodySize: MaxBodySize,
		Handler:            r.Handler,
	}

	go func() {
		log.Info("Server listening", "address", address)
		if err := server.ListenAndServe(address); err != http.ErrServerClosed {
			stdlog.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	// wait cancel
	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	return server.ShutdownWithContext(shutdownCtx)
}

type server struct {
	game *game.Game

	metricMoveCallCount     metric.Int64Counter
	metricTransferCallCount metric.Int64Counter
	metricCoinsMoved        metric.Int64Counter
}
