package spotify

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/angristan/spotify-search-provider/internal/infra/metrics"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// TokenCache holds the application access token and renews it on demand with
// the client-credentials flow.
//
// The state is guarded, the exchange is not: callers racing past expiry may
// each run an exchange and the last one stored wins.
type TokenCache struct {
	config     clientcredentials.Config
	httpClient *http.Client
	tracer     trace.Tracer
	logger     logrus.FieldLogger
	metrics    *metrics.Metrics
	now        func() time.Time

	mu          sync.RWMutex
	accessToken string
	expiresAt   time.Time
}

func NewTokenCache(
	cfg Config,
	tracer trace.Tracer,
	logger logrus.FieldLogger,
	m *metrics.Metrics,
) *TokenCache {
	return &TokenCache{
		config: clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			AuthStyle:    oauth2.AuthStyleInHeader,
		},
		httpClient: cfg.HTTPClient,
		tracer:     tracer,
		logger:     logger,
		metrics:    m,
		now:        time.Now,
	}
}

// Token returns a valid bearer token, exchanging credentials first when the
// cached one is missing or expired.
func (c *TokenCache) Token(ctx context.Context) (*oauth2.Token, error) {
	c.mu.RLock()
	accessToken, expiresAt := c.accessToken, c.expiresAt
	c.mu.RUnlock()

	if accessToken != "" && c.now().Before(expiresAt) {
		return bearer(accessToken, expiresAt), nil
	}

	return c.renew(ctx)
}

// Source binds the cache to ctx so it can back an oauth2.Transport.
func (c *TokenCache) Source(ctx context.Context) oauth2.TokenSource {
	return contextSource{ctx: ctx, cache: c}
}

type contextSource struct {
	ctx   context.Context
	cache *TokenCache
}

func (s contextSource) Token() (*oauth2.Token, error) {
	return s.cache.Token(s.ctx)
}

func (c *TokenCache) renew(ctx context.Context) (*oauth2.Token, error) {
	ctx, span := c.tracer.Start(ctx, "TokenCache.renew")
	defer span.End()

	if c.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	}

	token, err := c.config.Token(ctx)
	if err == nil && token.AccessToken == "" {
		err = errors.New("empty access token")
	}
	c.metrics.TokenExchange(err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.WithError(err).Error("Failed to get Spotify access token")
		return nil, fmt.Errorf("%w: %s", ErrAuth, err.Error())
	}

	// Validity is measured on the cache clock, not on the wall clock oauth2
	// used to fill token.Expiry.
	now := c.now()
	expiresAt := now
	if lifetime := expiresIn(token); lifetime > 0 {
		expiresAt = now.Add(lifetime)
	}

	c.mu.Lock()
	c.accessToken = token.AccessToken
	c.expiresAt = expiresAt
	c.mu.Unlock()

	span.AddEvent("Token refreshed", trace.WithAttributes(
		attribute.Float64("minutes_until_expiry", expiresAt.Sub(now).Minutes()),
	))
	c.logger.WithField("expires_at", expiresAt).Debug("Spotify token refreshed")

	return bearer(token.AccessToken, expiresAt), nil
}

// expiresIn reads the token lifetime from the raw "expires_in" field. A
// response without it yields zero, which expires the token immediately.
func expiresIn(token *oauth2.Token) time.Duration {
	switch v := token.Extra("expires_in").(type) {
	case float64:
		return time.Duration(v * float64(time.Second))
	case int64:
		return time.Duration(v) * time.Second
	case string:
		if seconds, err := strconv.ParseInt(v, 10, 64); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return 0
}

func bearer(accessToken string, expiresAt time.Time) *oauth2.Token {
	return &oauth2.Token{
		AccessToken: accessToken,
		TokenType:   "Bearer",
		Expiry:      expiresAt,
	}
}
