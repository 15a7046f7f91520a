package main

import (
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Env struct {
	SpotifyClientID     string `env:"SPOTIFY_CLIENT_ID" env-required:"true"`
	SpotifyClientSecret string `env:"SPOTIFY_CLIENT_SECRET" env-required:"true"`

	SpotifySearchLimit       int    `env:"SPOTIFY_SEARCH_LIMIT" env-default:"10"`
	SpotifySearchMarket      string `env:"SPOTIFY_SEARCH_MARKET" env-default:"US"`
	SpotifyAlbumPageLimit    int    `env:"SPOTIFY_ALBUM_PAGE_LIMIT" env-default:"0"`
	SpotifyPlaylistPageLimit int    `env:"SPOTIFY_PLAYLIST_PAGE_LIMIT" env-default:"0"`

	Port string `env:"PORT" env-default:"1323"`

	LogFormat string `env:"LOG_FORMAT" env-default:"json"`
	LogLevel  string `env:"LOG_LEVEL" env-default:"info"`

	// Tracing is disabled when empty.
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

var env Env

func LoadEnv() error {
	err := godotenv.Load()
	if err != nil {
		logrus.WithError(err).Debug("Failed to load env variables from file")
	}

	return cleanenv.ReadEnv(&env)
}

func GetEnv() *Env {
	return &env
}
