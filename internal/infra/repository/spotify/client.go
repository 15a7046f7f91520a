package spotify

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/angristan/spotify-search-provider/internal/infra/metrics"
	"github.com/sirupsen/logrus"
	spotifyLib "github.com/zmb3/spotify/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/oauth2"
)

// transport authenticates Web API requests with the cached application token.
// Each request gets its own span and an upstream metric sample.
type transport struct {
	tokens  *TokenCache
	base    http.RoundTripper
	tracer  trace.Tracer
	logger  logrus.FieldLogger
	metrics *metrics.Metrics
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx, span := t.tracer.Start(req.Context(), "SpotifyClient.get",
		trace.WithAttributes(attribute.String("spotify.url", req.URL.String())),
	)
	defer span.End()

	authed := &oauth2.Transport{Source: t.tokens.Source(ctx), Base: t.base}
	resp, err := authed.RoundTrip(req.WithContext(ctx))
	if err != nil {
		if !errors.Is(err, ErrAuth) {
			t.metrics.UpstreamRequest(0)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	t.metrics.UpstreamRequest(resp.StatusCode)
	if resp.StatusCode != http.StatusOK {
		span.SetStatus(codes.Error, resp.Status)
	}
	t.logger.WithFields(logrus.Fields{
		"url":    req.URL.String(),
		"status": resp.StatusCode,
	}).Debug("Spotify request done")

	return resp, nil
}

// newAPIClient builds the Web API client on top of cfg.HTTPClient, keeping its
// transport and timeout.
func newAPIClient(
	cfg Config,
	tokens *TokenCache,
	tracer trace.Tracer,
	logger logrus.FieldLogger,
	m *metrics.Metrics,
) *spotifyLib.Client {
	base := cfg.HTTPClient.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	httpClient := &http.Client{
		Transport: &transport{
			tokens:  tokens,
			base:    base,
			tracer:  tracer,
			logger:  logger,
			metrics: m,
		},
		Timeout: cfg.HTTPClient.Timeout,
	}

	return spotifyLib.New(httpClient, spotifyLib.WithBaseURL(cfg.BaseURL))
}

// upstream maps a Web API client error onto the package sentinels. Token
// failures keep ErrAuth; everything else becomes ErrUpstream.
func upstream(err error) error {
	if err == nil {
		return nil
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && errors.Is(urlErr.Err, ErrAuth) {
		return urlErr.Err
	}

	var apiErr spotifyLib.Error
	if errors.As(err, &apiErr) {
		return upstreamError(apiErr.Status, apiErr.Message)
	}

	return fmt.Errorf("%w: %s", ErrUpstream, err.Error())
}
