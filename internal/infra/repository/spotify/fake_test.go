package spotify

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/angristan/spotify-search-provider/internal/infra/metrics"
	"github.com/prometheus/client_golang/prometheus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

const (
	testClientID     = "client-id"
	testClientSecret = "client-secret"
)

// fakeSpotify serves the accounts token endpoint and canned Web API routes.
type fakeSpotify struct {
	t      *testing.T
	server *httptest.Server
	mux    *http.ServeMux

	mu         sync.Mutex
	hits       map[string]int
	queries    map[string]string
	auth       map[string]string
	tokens     int
	expiresIn  int
	tokenReply func(w http.ResponseWriter)
}

func newFakeSpotify(t *testing.T) *fakeSpotify {
	t.Helper()

	f := &fakeSpotify{
		t:         t,
		mux:       http.NewServeMux(),
		hits:      map[string]int{},
		queries:   map[string]string{},
		auth:      map[string]string{},
		expiresIn: 3600,
	}
	f.mux.HandleFunc("/api/token", f.serveToken)
	f.server = httptest.NewServer(f.mux)
	t.Cleanup(f.server.Close)

	return f
}

func (f *fakeSpotify) serveToken(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.tokens++
	n := f.tokens
	expiresIn := f.expiresIn
	reply := f.tokenReply
	f.mu.Unlock()

	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte(testClientID+":"+testClientSecret))
	if r.Method != http.MethodPost || r.Header.Get("Authorization") != wantAuth {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	if err := r.ParseForm(); err != nil || r.PostForm.Get("grant_type") != "client_credentials" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if reply != nil {
		reply(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"access_token": "token-" + strconv.Itoa(n),
		"token_type":   "bearer",
		"expires_in":   expiresIn,
	})
}

func (f *fakeSpotify) setExpiresIn(seconds int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.expiresIn = seconds
}

func (f *fakeSpotify) setTokenReply(reply func(w http.ResponseWriter)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokenReply = reply
}

// handle registers body under the API path (without the /v1 prefix).
func (f *fakeSpotify) handle(path string, status int, body any) {
	f.mux.HandleFunc("/v1"+path, func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.hits[path]++
		f.queries[path] = r.URL.RawQuery
		f.auth[path] = r.Header.Get("Authorization")
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		switch b := body.(type) {
		case string:
			_, _ = w.Write([]byte(b))
		default:
			_ = json.NewEncoder(w).Encode(b)
		}
	})
}

func (f *fakeSpotify) url(path string) string {
	return f.server.URL + "/v1" + path
}

func (f *fakeSpotify) hitCount(path string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.hits[path]
}

func (f *fakeSpotify) query(path string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.queries[path]
}

func (f *fakeSpotify) authHeader(path string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.auth[path]
}

func (f *fakeSpotify) tokenCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.tokens
}

type testDeps struct {
	resolver *Resolver
	tokens   *TokenCache
	metrics  *metrics.Metrics
	logs     *logrustest.Hook
}

func (f *fakeSpotify) resolver(mutate func(*Config)) testDeps {
	f.t.Helper()

	logger, hook := logrustest.NewNullLogger()
	m := metrics.New(prometheus.NewRegistry())

	cfg := Config{
		ClientID:     testClientID,
		ClientSecret: testClientSecret,
		BaseURL:      f.server.URL + "/v1",
		TokenURL:     f.server.URL + "/api/token",
		HTTPClient:   f.server.Client(),
	}
	if mutate != nil {
		mutate(&cfg)
	}

	r, err := New(cfg, otel.Tracer("test"), logger, m)
	require.NoError(f.t, err)

	return testDeps{
		resolver: r,
		tokens:   r.tokens,
		metrics:  m,
		logs:     hook,
	}
}

// clock is a manually advanced time source for the token cache.
type clock struct {
	mu  sync.Mutex
	now time.Time
}

func newClock() *clock { return &clock{now: time.Now()} }

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func trackObject(id, name string, artists []string, albumImage string) map[string]any {
	artistObjs := make([]map[string]any, 0, len(artists))
	for _, a := range artists {
		artistObjs = append(artistObjs, map[string]any{"id": a + "-id", "name": a})
	}
	images := []map[string]any{}
	if albumImage != "" {
		images = append(images, map[string]any{"url": albumImage, "height": 640, "width": 640})
	}

	return map[string]any{
		"id":          id,
		"name":        name,
		"duration_ms": 180000,
		"artists":     artistObjs,
		"album": map[string]any{
			"id":     "album-of-" + id,
			"name":   "Album of " + name,
			"images": images,
		},
	}
}

func imageList(url string) []map[string]any {
	return []map[string]any{{"url": url, "height": 300, "width": 300}}
}
