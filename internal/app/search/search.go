// Package search holds the types shared between the host engine, the search
// providers plugged into it and the HTTP transport.
package search

import "context"

type LoadType string

const (
	LoadTypeTrack    LoadType = "TRACK"
	LoadTypePlaylist LoadType = "PLAYLIST"
	LoadTypeSearch   LoadType = "SEARCH"
)

// Track is a playable item in the shape the host queues.
type Track struct {
	SourceName string `json:"sourceName"`
	Identifier string `json:"identifier"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	// Length is the duration in milliseconds.
	Length     int64  `json:"length"`
	IsSeekable bool   `json:"isSeekable"`
	IsStream   bool   `json:"isStream"`
	Position   int64  `json:"position"`
	URI        string `json:"uri"`
	Thumbnail  string `json:"thumbnail,omitempty"`
	Requester  any    `json:"requester,omitempty"`
}

type Result struct {
	Type         LoadType `json:"type"`
	PlaylistName string   `json:"playlistName,omitempty"`
	Tracks       []Track  `json:"tracks"`
}

// Collection is what a resolver hands back before it is wrapped into a Result.
type Collection struct {
	Name   string
	Tracks []Track
}

type Options struct {
	Requester any
	Engine    string
}

type Searcher interface {
	Search(ctx context.Context, query string, opts Options) (Result, error)
}

// SearcherFunc adapts a plain function to Searcher.
type SearcherFunc func(ctx context.Context, query string, opts Options) (Result, error)

func (f SearcherFunc) Search(ctx context.Context, query string, opts Options) (Result, error) {
	return f(ctx, query, opts)
}

// Host is an engine that providers can plug into. A provider keeps the
// searcher returned by CurrentSearcher for queries it does not handle and
// installs itself with UseSearcher.
type Host interface {
	CurrentSearcher() Searcher
	UseSearcher(s Searcher)
}

// EmptyResult is the envelope returned when nothing could be resolved.
func EmptyResult() Result {
	return Result{Type: LoadTypeSearch, Tracks: []Track{}}
}
