package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/tekbug/http-server/internal/router"
	"github.com/tekbug/http-server/internal/server"
)

func main() {
	port := flag.Uint("port", 8080, "TCP port to listen on")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	config := server.DefaultConfig()
	config.Addr = fmt.Sprintf(":%d", *port)

	srv, err := server.Serve(config, router.Default(), log)
	if err != nil {
		log.Fatal().Err(err).Str("addr", config.Addr).Msg("listen failed")
	}
	log.Info().Str("addr", config.Addr).Msg("server started")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("shutting down")
	if err := srv.Close(); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}

	stats := srv.Metrics().Snapshot()
	log.Info().
		Int64("requests_total", stats.RequestsTotal).
		Int64("transport_errors", stats.TransportErrors).
		Int64("errors_4xx", stats.Errors4xx).
		Int64("errors_5xx", stats.Errors5xx).
		Dur("avg_latency", stats.AverageLatency).
		Msg("server stopped")
}
