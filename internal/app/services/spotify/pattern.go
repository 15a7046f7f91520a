package spotify

import (
	"regexp"
	"strings"
)

type ResourceType string

const (
	ResourceTrack    ResourceType = "track"
	ResourceAlbum    ResourceType = "album"
	ResourceArtist   ResourceType = "artist"
	ResourcePlaylist ResourceType = "playlist"

	// resourceSearch labels free-text lookups in metrics.
	resourceSearch = "search"
)

// Matches open.spotify.com links, locale prefixed ones included
// (https://open.spotify.com/intl-fr/track/...), and spotify: URIs.
var resourcePattern = regexp.MustCompile(
	`(?:https://open\.spotify\.com/|spotify:)(?:.+)?(track|playlist|album|artist)[/:]([A-Za-z0-9]+)`,
)

type resource struct {
	Type ResourceType
	ID   string
}

func parseResource(query string) (resource, bool) {
	m := resourcePattern.FindStringSubmatch(query)
	if m == nil {
		return resource{}, false
	}
	return resource{Type: ResourceType(m[1]), ID: m[2]}, true
}

func isHTTPURL(query string) bool {
	lower := strings.ToLower(query)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
