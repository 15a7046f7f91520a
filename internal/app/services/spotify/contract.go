package spotify

import (
	"context"

	"github.com/angristan/spotify-search-provider/internal/app/search"
)

type Resolver interface {
	Track(ctx context.Context, id string, requester any) (search.Collection, error)
	Album(ctx context.Context, id string, requester any) (search.Collection, error)
	Artist(ctx context.Context, id string, requester any) (search.Collection, error)
	Playlist(ctx context.Context, id string, requester any) (search.Collection, error)
	SearchTracks(ctx context.Context, query string, requester any) (search.Collection, error)
}
