package spotify_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/angristan/spotify-search-provider/internal/app/host"
	"github.com/angristan/spotify-search-provider/internal/app/search"
	appspotify "github.com/angristan/spotify-search-provider/internal/app/services/spotify"
	handler "github.com/angristan/spotify-search-provider/internal/infra/http/handlers/spotify"
	"github.com/angristan/spotify-search-provider/internal/infra/http/handlers/spotify/mocks"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

var _ handler.SearchService = (*mocks.MockSearchService)(nil)

func TestSpotifyHandler_SearchStatuses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	track := search.Track{
		SourceName: "spotify",
		Identifier: "4uLU6hMCjMI75M1A2tKUQC",
		Title:      "Never Gonna Give You Up",
		Author:     "Rick Astley",
		Length:     213573,
		IsSeekable: true,
		URI:        "https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC",
		Requester:  "user-1",
	}

	tests := []struct {
		name           string
		params         url.Values
		expectedQuery  string
		expectedOpts   search.Options
		serviceResult  search.Result
		serviceErr     error
		skipService    bool
		expectedStatus int
		expectedBody   map[string]string
	}{
		{
			name:           "missing query",
			params:         url.Values{"engine": {"spotify"}},
			skipService:    true,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]string{"error": "q is required"},
		},
		{
			name:           "whitespace query is passed on",
			params:         url.Values{"q": {"   "}, "engine": {"spotify"}},
			expectedQuery:  "   ",
			expectedOpts:   search.Options{Engine: "spotify"},
			serviceResult:  search.EmptyResult(),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "invalid query",
			params:         url.Values{"q": {"x"}},
			expectedQuery:  "x",
			serviceErr:     fmt.Errorf("%w: %q", appspotify.ErrInvalidQuery, "x"),
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]string{"error": "invalid query"},
		},
		{
			name:           "no engine",
			params:         url.Values{"q": {"twice"}, "engine": {"youtube"}},
			expectedQuery:  "twice",
			expectedOpts:   search.Options{Engine: "youtube"},
			serviceErr:     fmt.Errorf("%w: %q", host.ErrNoSearchEngine, "twice"),
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   map[string]string{"error": "no search engine can handle this query"},
		},
		{
			name:           "not loaded",
			params:         url.Values{"q": {"aespa"}},
			expectedQuery:  "aespa",
			serviceErr:     appspotify.ErrNotLoaded,
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   map[string]string{"error": "spotify search provider is not loaded"},
		},
		{
			name:           "unexpected error",
			params:         url.Values{"q": {"ive"}},
			expectedQuery:  "ive",
			serviceErr:     assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]string{"error": "internal server error"},
		},
		{
			name: "success",
			params: url.Values{
				"q":         {"https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC"},
				"engine":    {"spotify"},
				"requester": {"user-1"},
			},
			expectedQuery:  "https://open.spotify.com/track/4uLU6hMCjMI75M1A2tKUQC",
			expectedOpts:   search.Options{Engine: "spotify", Requester: "user-1"},
			serviceResult:  search.Result{Type: search.LoadTypeTrack, Tracks: []search.Track{track}},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(recorder)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/search?"+tt.params.Encode(), nil)

			mockService := mocks.NewMockSearchService(t)
			if !tt.skipService {
				mockService.On("Search", mock.Anything, tt.expectedQuery, tt.expectedOpts).
					Return(tt.serviceResult, tt.serviceErr).
					Once()
			}

			h := handler.New(otel.Tracer("test"), mockService)
			h.Search(ctx)

			assert.Equal(t, tt.expectedStatus, recorder.Code)

			if tt.expectedStatus == http.StatusOK {
				var payload search.Result
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
				assert.Equal(t, tt.serviceResult, payload)
				return
			}

			var payload map[string]string
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &payload))
			assert.Equal(t, tt.expectedBody, payload)
		})
	}
}

func TestSpotifyHandler_EmptyResultShape(t *testing.T) {
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/search?q=spotify:album:gone", nil)

	mockService := mocks.NewMockSearchService(t)
	mockService.On("Search", mock.Anything, "spotify:album:gone", search.Options{}).
		Return(search.EmptyResult(), nil).
		Once()

	handler.New(otel.Tracer("test"), mockService).Search(ctx)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"type":"SEARCH","tracks":[]}`, recorder.Body.String())
}
