package spotify

import (
	"github.com/angristan/spotify-search-provider/internal/app/search"
	spotifyLib "github.com/zmb3/spotify/v2"
)

const (
	SourceName    = "spotify"
	TrackURL      = "https://open.spotify.com/track/"
	UnknownArtist = "Unknown"
)

// fromFullTrack normalizes t; the track's own album art is used only when no
// collection thumbnail is given.
func fromFullTrack(t *spotifyLib.FullTrack, thumbnail string, requester any) (search.Track, bool) {
	if t == nil || t.ID == "" {
		return search.Track{}, false
	}
	if thumbnail == "" {
		thumbnail = firstImage(t.Album.Images)
	}

	return newTrack(t.ID, t.Name, t.Artists, int64(t.Duration), thumbnail, requester), true
}

func fromSimpleTrack(t *spotifyLib.SimpleTrack, thumbnail string, requester any) (search.Track, bool) {
	if t == nil || t.ID == "" {
		return search.Track{}, false
	}

	return newTrack(t.ID, t.Name, t.Artists, int64(t.Duration), thumbnail, requester), true
}

// fromPlaylistItem unwraps a playlist entry. Removed tracks decode to a zero
// track and local files carry no ID, so both are dropped.
func fromPlaylistItem(item *spotifyLib.PlaylistTrack, thumbnail string, requester any) (search.Track, bool) {
	return fromFullTrack(&item.Track, thumbnail, requester)
}

func firstImage(images []spotifyLib.Image) string {
	if len(images) == 0 {
		return ""
	}
	return images[0].URL
}

func newTrack(
	id spotifyLib.ID,
	title string,
	artists []spotifyLib.SimpleArtist,
	durationMs int64,
	thumbnail string,
	requester any,
) search.Track {
	author := UnknownArtist
	if len(artists) > 0 && artists[0].Name != "" {
		author = artists[0].Name
	}

	return search.Track{
		SourceName: SourceName,
		Identifier: string(id),
		Title:      title,
		Author:     author,
		Length:     durationMs,
		IsSeekable: true,
		IsStream:   false,
		Position:   0,
		URI:        TrackURL + string(id),
		Thumbnail:  thumbnail,
		Requester:  requester,
	}
}
