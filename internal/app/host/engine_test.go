package host_test

import (
	"context"
	"errors"
	"testing"

	"github.com/angristan/spotify-search-provider/internal/app/host"
	"github.com/angristan/spotify-search-provider/internal/app/search"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wrappingPlugin struct {
	name     string
	previous search.Searcher
}

func (p *wrappingPlugin) Load(h search.Host) error {
	p.previous = h.CurrentSearcher()
	h.UseSearcher(search.SearcherFunc(func(ctx context.Context, query string, opts search.Options) (search.Result, error) {
		if query == p.name {
			return search.Result{Type: search.LoadTypeTrack, PlaylistName: p.name}, nil
		}
		return p.previous.Search(ctx, query, opts)
	}))
	return nil
}

type failingPlugin struct{}

func (failingPlugin) Load(search.Host) error { return errors.New("boom") }

func TestEngine_NativeSearch(t *testing.T) {
	logger, _ := logrustest.NewNullLogger()
	e := host.New(logger)

	_, err := e.Search(context.Background(), "anything", search.Options{})
	assert.ErrorIs(t, err, host.ErrNoSearchEngine)
}

func TestEngine_NilCurrentSearcher(t *testing.T) {
	var e *host.Engine
	assert.Nil(t, e.CurrentSearcher())
}

func TestEngine_Use(t *testing.T) {
	logger, _ := logrustest.NewNullLogger()
	e := host.New(logger)

	first := &wrappingPlugin{name: "first"}
	second := &wrappingPlugin{name: "second"}
	require.NoError(t, e.Use(first, second))

	t.Run("latest plugin answers", func(t *testing.T) {
		res, err := e.Search(context.Background(), "second", search.Options{})
		require.NoError(t, err)
		assert.Equal(t, "second", res.PlaylistName)
	})

	t.Run("falls through the chain", func(t *testing.T) {
		res, err := e.Search(context.Background(), "first", search.Options{})
		require.NoError(t, err)
		assert.Equal(t, "first", res.PlaylistName)
	})

	t.Run("reaches the native searcher", func(t *testing.T) {
		_, err := e.Search(context.Background(), "third", search.Options{})
		assert.ErrorIs(t, err, host.ErrNoSearchEngine)
	})
}

func TestEngine_UseError(t *testing.T) {
	logger, _ := logrustest.NewNullLogger()
	e := host.New(logger)

	err := e.Use(failingPlugin{})
	assert.EqualError(t, err, "loading plugin 0: boom")
}
