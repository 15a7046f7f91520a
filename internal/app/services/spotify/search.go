package spotify

import (
	"context"
	"fmt"
	"time"

	"github.com/angristan/spotify-search-provider/internal/app/search"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

func (s *SpotifySearchService) Search(ctx context.Context, query string, opts search.Options) (search.Result, error) {
	ctx, span := s.tracer.Start(ctx, "SpotifySearchService.Search")
	defer span.End()

	fallback, ok := s.loaded()
	if !ok {
		return search.Result{}, ErrNotLoaded
	}
	if query == "" {
		return search.Result{}, fmt.Errorf("%w: %q", ErrInvalidQuery, query)
	}

	if res, ok := parseResource(query); ok {
		span.SetAttributes(
			attribute.String("spotify.resource", string(res.Type)),
			attribute.String("spotify.id", res.ID),
		)
		return s.resolve(ctx, res, opts.Requester), nil
	}

	if opts.Engine == EngineName && !isHTTPURL(query) {
		span.SetAttributes(attribute.String("spotify.resource", resourceSearch))
		return s.searchTracks(ctx, query, opts.Requester), nil
	}

	return fallback.Search(ctx, query, opts)
}

func (s *SpotifySearchService) resolve(ctx context.Context, res resource, requester any) search.Result {
	start := time.Now()
	collection, err := s.methods[res.Type](ctx, res.ID, requester)
	s.metrics.Resolution(string(res.Type), err, time.Since(start))
	if err != nil {
		s.degrade(ctx, err, logrus.Fields{"resource": res.Type, "id": res.ID})
		return search.EmptyResult()
	}

	if res.Type == ResourceTrack {
		return search.Result{Type: search.LoadTypeTrack, Tracks: collection.Tracks}
	}

	return search.Result{
		Type:         search.LoadTypePlaylist,
		PlaylistName: collection.Name,
		Tracks:       collection.Tracks,
	}
}

func (s *SpotifySearchService) searchTracks(ctx context.Context, query string, requester any) search.Result {
	start := time.Now()
	collection, err := s.resolver.SearchTracks(ctx, query, requester)
	s.metrics.Resolution(resourceSearch, err, time.Since(start))
	if err != nil {
		s.degrade(ctx, err, logrus.Fields{"resource": resourceSearch, "query": query})
		return search.EmptyResult()
	}

	return search.Result{Type: search.LoadTypeSearch, Tracks: collection.Tracks}
}

// degrade records a failed lookup that is reported to the caller as an empty
// result.
func (s *SpotifySearchService) degrade(ctx context.Context, err error, fields logrus.Fields) {
	span := trace.SpanFromContext(ctx)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	s.logger.WithFields(fields).WithError(err).Warn("Spotify lookup failed")
}
