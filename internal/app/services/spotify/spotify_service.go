package spotify

import (
	"context"
	"errors"
	"sync"

	"github.com/angristan/spotify-search-provider/internal/app/search"
	"github.com/angristan/spotify-search-provider/internal/infra/metrics"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/trace"
)

// EngineName is the Options.Engine value that routes free text to Spotify.
const EngineName = "spotify"

var (
	ErrNotLoaded     = errors.New("spotify search provider is not loaded")
	ErrInvalidQuery  = errors.New("query must be a non-empty string")
	ErrAlreadyLoaded = errors.New("spotify search provider is already loaded")
	ErrNilHost       = errors.New("host is nil")
)

type resolveFunc func(ctx context.Context, id string, requester any) (search.Collection, error)

// SpotifySearchService answers Spotify links and, on request, free-text
// queries. Everything else goes to the searcher the host had before Load.
type SpotifySearchService struct {
	tracer   trace.Tracer
	logger   logrus.FieldLogger
	resolver Resolver
	metrics  *metrics.Metrics

	methods map[ResourceType]resolveFunc

	mu       sync.RWMutex
	fallback search.Searcher
}

func New(
	tracer trace.Tracer,
	logger logrus.FieldLogger,
	resolver Resolver,
	m *metrics.Metrics,
) *SpotifySearchService {
	return &SpotifySearchService{
		tracer:   tracer,
		logger:   logger,
		resolver: resolver,
		metrics:  m,
		methods: map[ResourceType]resolveFunc{
			ResourceTrack:    resolver.Track,
			ResourceAlbum:    resolver.Album,
			ResourceArtist:   resolver.Artist,
			ResourcePlaylist: resolver.Playlist,
		},
	}
}

// Load installs the service on host. The searcher host used until now becomes
// the fallback for queries the service does not handle. A host without a
// current searcher, including a typed nil, is rejected with ErrNilHost.
func (s *SpotifySearchService) Load(host search.Host) error {
	if host == nil {
		return ErrNilHost
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.fallback != nil {
		return ErrAlreadyLoaded
	}

	fallback := host.CurrentSearcher()
	if fallback == nil {
		return ErrNilHost
	}
	s.fallback = fallback
	host.UseSearcher(s)

	s.logger.Info("Spotify search provider loaded")

	return nil
}

func (s *SpotifySearchService) loaded() (search.Searcher, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fallback, s.fallback != nil
}
