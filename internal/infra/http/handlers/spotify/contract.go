package spotify

import (
	"context"

	"github.com/angristan/spotify-search-provider/internal/app/search"
)

type SearchService interface {
	Search(ctx context.Context, query string, opts search.Options) (search.Result, error)
}
