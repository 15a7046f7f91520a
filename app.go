package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/angristan/spotify-search-provider/internal/app/host"
	"github.com/angristan/spotify-search-provider/internal/app/services/spotify"
	"github.com/angristan/spotify-search-provider/internal/infra/metrics"
	repository "github.com/angristan/spotify-search-provider/internal/infra/repository/spotify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// app is the wired provider: a host engine with the Spotify plugin loaded.
type app struct {
	logger   *logrus.Logger
	engine   *host.Engine
	registry *prometheus.Registry
	shutdown func(context.Context) error
}

func newApp(ctx context.Context, cfg *Env) (*app, error) {
	logger, err := newLogger(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	shutdown := func(context.Context) error { return nil }
	if cfg.OTLPEndpoint != "" {
		exporter, err := newSpanExporter(ctx, cfg.OTLPEndpoint)
		if err != nil {
			return nil, fmt.Errorf("creating span exporter: %w", err)
		}
		tp, err := newTracerProvider(exporter)
		if err != nil {
			return nil, fmt.Errorf("creating tracer provider: %w", err)
		}
		otel.SetTracerProvider(tp)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		))
		shutdown = tp.Shutdown
	}
	tracer := otel.Tracer(serviceName)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	resolver, err := repository.New(repository.Config{
		ClientID:          cfg.SpotifyClientID,
		ClientSecret:      cfg.SpotifyClientSecret,
		SearchLimit:       cfg.SpotifySearchLimit,
		Market:            cfg.SpotifySearchMarket,
		AlbumPageLimit:    cfg.SpotifyAlbumPageLimit,
		PlaylistPageLimit: cfg.SpotifyPlaylistPageLimit,
	}, tracer, logger, m)
	if err != nil {
		return nil, err
	}

	engine := host.New(logger)
	if err := engine.Use(spotify.New(tracer, logger, resolver, m)); err != nil {
		return nil, err
	}

	return &app{
		logger:   logger,
		engine:   engine,
		registry: registry,
		shutdown: shutdown,
	}, nil
}

func (a *app) close(ctx context.Context) {
	if err := a.shutdown(ctx); err != nil && !errors.Is(err, context.Canceled) {
		a.logger.WithError(err).Warn("Failed to flush traces")
	}
}
