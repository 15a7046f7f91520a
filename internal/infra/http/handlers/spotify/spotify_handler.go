package spotify

import (
	"go.opentelemetry.io/otel/trace"
)

type SpotifyHandler struct {
	tracer        trace.Tracer
	searchService SearchService
}

func New(
	tracer trace.Tracer,
	searchService SearchService,
) *SpotifyHandler {
	return &SpotifyHandler{
		tracer:        tracer,
		searchService: searchService,
	}
}
