package spotify

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/angristan/spotify-search-provider/internal/infra/metrics"
	"github.com/sirupsen/logrus"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"go.opentelemetry.io/otel/trace"
)

const (
	// BaseURL is the Spotify Web API base URL. Endpoint paths are appended
	// to it, so it ends with a slash.
	BaseURL = "https://api.spotify.com/v1/"

	DefaultMarket      = "US"
	DefaultSearchLimit = 10
	MaxSearchLimit     = 49
)

var (
	ErrAuth               = errors.New("spotify authentication failed")
	ErrUpstream           = errors.New("spotify api error")
	ErrMissingCredentials = errors.New("spotify client id and secret are required")
)

type Config struct {
	ClientID     string
	ClientSecret string

	// SearchLimit bounds free-text results; values outside 1-49 fall back to 10.
	SearchLimit int
	Market      string
	// Page limits count the first page. Zero means unbounded.
	AlbumPageLimit    int
	PlaylistPageLimit int

	BaseURL    string
	TokenURL   string
	HTTPClient *http.Client
}

func (c Config) withDefaults(logger logrus.FieldLogger) Config {
	if c.SearchLimit < 1 || c.SearchLimit > MaxSearchLimit {
		if c.SearchLimit != 0 {
			logger.WithField("search_limit", c.SearchLimit).
				Warnf("Search limit out of range, using %d", DefaultSearchLimit)
		}
		c.SearchLimit = DefaultSearchLimit
	}
	if c.Market == "" {
		c.Market = DefaultMarket
	}
	if c.AlbumPageLimit < 0 {
		c.AlbumPageLimit = 0
	}
	if c.PlaylistPageLimit < 0 {
		c.PlaylistPageLimit = 0
	}
	if c.BaseURL == "" {
		c.BaseURL = BaseURL
	}
	if !strings.HasSuffix(c.BaseURL, "/") {
		c.BaseURL += "/"
	}
	if c.TokenURL == "" {
		c.TokenURL = spotifyauth.TokenURL
	}
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}

	return c
}

// New wires the token cache, the HTTP client and the resolvers for cfg.
// No request is sent until the first lookup.
func New(
	cfg Config,
	tracer trace.Tracer,
	logger logrus.FieldLogger,
	m *metrics.Metrics,
) (*Resolver, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, ErrMissingCredentials
	}

	cfg = cfg.withDefaults(logger)

	tokens := NewTokenCache(cfg, tracer, logger, m)
	api := newAPIClient(cfg, tokens, tracer, logger, m)

	return newResolver(api, tokens, cfg, tracer), nil
}

// upstreamError formats an error object returned by the Web API. Status is
// zero when the body did not carry one.
func upstreamError(status int, message string) error {
	if status == 0 {
		return fmt.Errorf("%w: %s", ErrUpstream, message)
	}
	if message == "" {
		message = http.StatusText(status)
	}
	return fmt.Errorf("%w: status %d: %s", ErrUpstream, status, message)
}
