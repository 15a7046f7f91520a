package spotify

import (
	"context"
	"fmt"
	"net/url"

	"github.com/angristan/spotify-search-provider/internal/app/search"
	spotifyLib "github.com/zmb3/spotify/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Resolver maps Spotify object IDs to normalized track lists.
type Resolver struct {
	api    *spotifyLib.Client
	tokens *TokenCache
	tracer trace.Tracer

	market            string
	searchLimit       int
	albumPageLimit    int
	playlistPageLimit int
}

// newResolver expects cfg to have its defaults applied.
func newResolver(api *spotifyLib.Client, tokens *TokenCache, cfg Config, tracer trace.Tracer) *Resolver {
	return &Resolver{
		api:               api,
		tokens:            tokens,
		tracer:            tracer,
		market:            cfg.Market,
		searchLimit:       cfg.SearchLimit,
		albumPageLimit:    cfg.AlbumPageLimit,
		playlistPageLimit: cfg.PlaylistPageLimit,
	}
}

func (r *Resolver) Track(ctx context.Context, id string, requester any) (search.Collection, error) {
	ctx, span := r.start(ctx, "Resolver.Track", id)
	defer span.End()

	t, err := r.api.GetTrack(ctx, spotifyLib.ID(id))
	if err != nil {
		return search.Collection{}, upstream(err)
	}

	track, ok := fromFullTrack(t, "", requester)
	if !ok {
		return search.Collection{}, fmt.Errorf("%w: track %s has no id", ErrUpstream, id)
	}

	return search.Collection{Tracks: []search.Track{track}}, nil
}

func (r *Resolver) Album(ctx context.Context, id string, requester any) (search.Collection, error) {
	ctx, span := r.start(ctx, "Resolver.Album", id)
	defer span.End()

	a, err := r.api.GetAlbum(ctx, spotifyLib.ID(id), spotifyLib.Market(r.market))
	if err != nil {
		return search.Collection{}, upstream(err)
	}

	thumbnail := firstImage(a.Images)
	page := &a.Tracks
	var tracks []search.Track
	err = paginate(ctx, r.albumPageLimit,
		func() string { return page.Next },
		func(ctx context.Context) error { return r.api.NextPage(ctx, page) },
		func() {
			for i := range page.Tracks {
				if track, ok := fromSimpleTrack(&page.Tracks[i], thumbnail, requester); ok {
					tracks = append(tracks, track)
				}
			}
		},
	)
	if err != nil {
		return search.Collection{}, err
	}

	return search.Collection{Name: a.Name, Tracks: nonNil(tracks)}, nil
}

// Artist resolves an artist to its top tracks. The market goes out as the
// endpoint's country parameter.
func (r *Resolver) Artist(ctx context.Context, id string, requester any) (search.Collection, error) {
	ctx, span := r.start(ctx, "Resolver.Artist", id)
	defer span.End()

	artist, err := r.api.GetArtist(ctx, spotifyLib.ID(id))
	if err != nil {
		return search.Collection{}, upstream(err)
	}

	top, err := r.api.GetArtistsTopTracks(ctx, spotifyLib.ID(id), r.market)
	if err != nil {
		return search.Collection{}, upstream(err)
	}

	thumbnail := firstImage(artist.Images)
	tracks := make([]search.Track, 0, len(top))
	for i := range top {
		if track, ok := fromFullTrack(&top[i], thumbnail, requester); ok {
			tracks = append(tracks, track)
		}
	}

	return search.Collection{Name: artist.Name, Tracks: tracks}, nil
}

func (r *Resolver) Playlist(ctx context.Context, id string, requester any) (search.Collection, error) {
	ctx, span := r.start(ctx, "Resolver.Playlist", id)
	defer span.End()

	p, err := r.api.GetPlaylist(ctx, spotifyLib.ID(id), spotifyLib.Market(r.market))
	if err != nil {
		return search.Collection{}, upstream(err)
	}

	thumbnail := firstImage(p.Images)
	page := &p.Tracks
	var tracks []search.Track
	err = paginate(ctx, r.playlistPageLimit,
		func() string { return page.Next },
		func(ctx context.Context) error { return r.api.NextPage(ctx, page) },
		func() {
			for i := range page.Tracks {
				if track, ok := fromPlaylistItem(&page.Tracks[i], thumbnail, requester); ok {
					tracks = append(tracks, track)
				}
			}
		},
	)
	if err != nil {
		return search.Collection{}, err
	}

	return search.Collection{Name: p.Name, Tracks: nonNil(tracks)}, nil
}

// SearchTracks runs a free-text track search bounded by the configured limit.
func (r *Resolver) SearchTracks(ctx context.Context, query string, requester any) (search.Collection, error) {
	ctx, span := r.tracer.Start(ctx, "Resolver.SearchTracks")
	defer span.End()

	// The Spotify SDK will re-encode it, so we need to decode it first
	decoded, err := url.QueryUnescape(query)
	if err != nil {
		decoded = query
	}
	span.SetAttributes(attribute.String("spotify.query", decoded))

	res, err := r.api.Search(ctx, decoded, spotifyLib.SearchTypeTrack,
		spotifyLib.Limit(r.searchLimit),
		spotifyLib.Market(r.market),
	)
	if err != nil {
		return search.Collection{}, upstream(err)
	}

	tracks := []search.Track{}
	if res.Tracks == nil {
		return search.Collection{Tracks: tracks}, nil
	}
	for i := range res.Tracks.Tracks {
		if len(tracks) == r.searchLimit {
			break
		}
		if track, ok := fromFullTrack(&res.Tracks.Tracks[i], "", requester); ok {
			tracks = append(tracks, track)
		}
	}

	return search.Collection{Tracks: tracks}, nil
}

func (r *Resolver) start(ctx context.Context, name, id string) (context.Context, trace.Span) {
	return r.tracer.Start(ctx, name, trace.WithAttributes(attribute.String("spotify.id", id)))
}

// paginate collects the current page, then follows "next" cursors until the
// API stops returning one or limit pages (first included) have been read. A
// limit of zero means no ceiling.
func paginate(
	ctx context.Context,
	limit int,
	next func() string,
	fetch func(ctx context.Context) error,
	collect func(),
) error {
	collect()
	for pages := 1; next() != "" && (limit <= 0 || pages < limit); pages++ {
		if err := fetch(ctx); err != nil {
			return fmt.Errorf("fetching page %d: %w", pages+1, upstream(err))
		}
		collect()
	}

	return nil
}

func nonNil(tracks []search.Track) []search.Track {
	if tracks == nil {
		return []search.Track{}
	}
	return tracks
}
