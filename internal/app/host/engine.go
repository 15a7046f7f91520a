package host

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/angristan/spotify-search-provider/internal/app/search"
	"github.com/sirupsen/logrus"
)

var ErrNoSearchEngine = errors.New("no search engine can handle this query")

// Plugin is a search provider that binds itself to an Engine.
type Plugin interface {
	Load(h search.Host) error
}

// Engine is the host side of the plugin contract: it owns the searcher that
// answers Search calls and lets plugins replace it.
type Engine struct {
	logger logrus.FieldLogger

	mu       sync.RWMutex
	searcher search.Searcher
}

func New(logger logrus.FieldLogger) *Engine {
	e := &Engine{logger: logger}
	e.searcher = search.SearcherFunc(e.native)

	return e
}

// CurrentSearcher returns nil on a nil Engine so plugins can reject it.
func (e *Engine) CurrentSearcher() search.Searcher {
	if e == nil {
		return nil
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.searcher
}

func (e *Engine) UseSearcher(s search.Searcher) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.searcher = s
}

// Use loads plugins in order; each one wraps whatever searcher the previous
// one installed.
func (e *Engine) Use(plugins ...Plugin) error {
	for i, p := range plugins {
		if err := p.Load(e); err != nil {
			return fmt.Errorf("loading plugin %d: %w", i, err)
		}
	}

	return nil
}

func (e *Engine) Search(ctx context.Context, query string, opts search.Options) (search.Result, error) {
	return e.CurrentSearcher().Search(ctx, query, opts)
}

func (e *Engine) native(_ context.Context, query string, opts search.Options) (search.Result, error) {
	e.logger.WithFields(logrus.Fields{
		"query":  query,
		"engine": opts.Engine,
	}).Debug("No plugin handled the query")

	return search.Result{}, fmt.Errorf("%w: %q", ErrNoSearchEngine, query)
}
