package episodes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcastr/api/types"
	"github.com/killallgit/podcastr/internal/models"
	"github.com/killallgit/podcastr/internal/render"
	"github.com/killallgit/podcastr/internal/services/episodes"
	"github.com/killallgit/podcastr/internal/services/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockEpisodeService struct {
	mock.Mock
}

func (m *mockEpisodeService) StaticPaths(ctx context.Context) (*episodes.StaticPaths, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*episodes.StaticPaths), args.Error(1)
}

func (m *mockEpisodeService) LoadEpisode(ctx context.Context, slug string) (*models.Episode, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Episode), args.Error(1)
}

func (m *mockEpisodeService) GetEpisodePage(ctx context.Context, slug string) (*episodes.Page, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*episodes.Page), args.Error(1)
}

func (m *mockEpisodeService) Revalidate(ctx context.Context, slug string) error {
	args := m.Called(ctx, slug)
	return args.Error(0)
}

func sampleEpisode() *models.Episode {
	return &models.Episode{
		ID:               "a-importancia-da-contribuicao-em-open-source",
		Title:            "A importância da contribuição em Open Source",
		Thumbnail:        "https://example.com/opensource.jpg",
		Members:          "Diego Fernandes, João Pedro, Diego e Richard",
		PublishedAt:      "8 jan 21",
		Duration:         3981,
		DurationAsString: "01:06:21",
		Description:      "<p>Nesse episódio do Faladev, a gente vai falar sobre <strong>open source</strong>.</p>",
		URL:              "https://example.com/opensource.m4a",
	}
}

func samplePage() *episodes.Page {
	return &episodes.Page{
		Episode:     sampleEpisode(),
		Revalidate:  86400,
		GeneratedAt: time.Now().Add(-90 * time.Second).UTC(),
	}
}

func newTestDeps(t *testing.T, svc episodes.EpisodeService) (*types.Dependencies, *player.Session) {
	t.Helper()

	renderer, err := render.New(render.Site{Name: "Podcastr", URL: "https://podcastr.dev/", Locale: "pt_BR"})
	require.NoError(t, err)

	session := player.NewSession(5)
	return &types.Dependencies{
		EpisodeService: svc,
		Renderer:       renderer,
		Player:         session,
		Playback:       session,
	}, session
}

func newTestRouter(deps *types.Dependencies) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	RegisterPageRoutes(router, deps)
	RegisterRoutes(router.Group("/api/v1/episodes"), deps)
	return router
}

func TestGetPage(t *testing.T) {
	slug := "a-importancia-da-contribuicao-em-open-source"

	tests := []struct {
		name           string
		setupMock      func(m *mockEpisodeService)
		expectedStatus int
		check          func(t *testing.T, w *httptest.ResponseRecorder, doc *goquery.Document)
	}{
		{
			name: "renders episode page",
			setupMock: func(m *mockEpisodeService) {
				m.On("GetEpisodePage", mock.Anything, slug).Return(samplePage(), nil)
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, w *httptest.ResponseRecorder, doc *goquery.Document) {
				assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
				assert.NotEmpty(t, w.Header().Get("Age"))
				assert.Equal(t, "A importância da contribuição em Open Source | Podcastr", doc.Find("title").Text())
				assert.Equal(t, "A importância da contribuição em Open Source", doc.Find("header h1").Text())
				assert.Equal(t, "01:06:21", strings.TrimSpace(doc.Find(".duration").Text()))

				action, _ := doc.Find("form.play").Attr("action")
				assert.Equal(t, "/episodes/"+slug+"/play", action)

				og, _ := doc.Find(`meta[property="og:title"]`).Attr("content")
				assert.Equal(t, "Podcastr | A importância da contribuição em Open Source", og)

				assert.Equal(t, "open source", doc.Find(".description strong").Text())
			},
		},
		{
			name: "unknown slug renders 404 page",
			setupMock: func(m *mockEpisodeService) {
				m.On("GetEpisodePage", mock.Anything, slug).Return(nil, episodes.NewNotFoundError("episode", slug))
			},
			expectedStatus: http.StatusNotFound,
			check: func(t *testing.T, w *httptest.ResponseRecorder, doc *goquery.Document) {
				assert.Equal(t, "404", strings.TrimSpace(doc.Find("h1").Text()))
				assert.Empty(t, w.Header().Get("Age"))
			},
		},
		{
			name: "upstream failure renders 502 page",
			setupMock: func(m *mockEpisodeService) {
				m.On("GetEpisodePage", mock.Anything, slug).Return(nil, episodes.NewAPIError("/episodes/"+slug, 500, "boom"))
			},
			expectedStatus: http.StatusBadGateway,
			check: func(t *testing.T, w *httptest.ResponseRecorder, doc *goquery.Document) {
				assert.Equal(t, "502", strings.TrimSpace(doc.Find("h1").Text()))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockEpisodeService{}
			tt.setupMock(svc)
			deps, _ := newTestDeps(t, svc)
			router := newTestRouter(deps)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/episodes/"+slug, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			doc, err := goquery.NewDocumentFromReader(w.Body)
			require.NoError(t, err)
			tt.check(t, w, doc)
			svc.AssertExpectations(t)
		})
	}
}

func TestGetPage_NoService(t *testing.T) {
	deps, _ := newTestDeps(t, nil)
	router := newTestRouter(deps)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/episodes/x", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestPostPlay(t *testing.T) {
	slug := "a-importancia-da-contribuicao-em-open-source"

	t.Run("form post redirects back to the page", func(t *testing.T) {
		svc := &mockEpisodeService{}
		svc.On("GetEpisodePage", mock.Anything, slug).Return(samplePage(), nil)
		deps, session := newTestDeps(t, svc)
		router := newTestRouter(deps)

		req := httptest.NewRequest(http.MethodPost, "/episodes/"+slug+"/play", nil)
		req.Header.Set("Accept", "text/html")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/episodes/"+slug, w.Header().Get("Location"))

		entry, ok := session.NowPlaying()
		require.True(t, ok)
		assert.Equal(t, slug, entry.Episode.ID)
	})

	t.Run("json client gets the started entry", func(t *testing.T) {
		svc := &mockEpisodeService{}
		svc.On("GetEpisodePage", mock.Anything, slug).Return(samplePage(), nil)
		deps, _ := newTestDeps(t, svc)
		router := newTestRouter(deps)

		req := httptest.NewRequest(http.MethodPost, "/episodes/"+slug+"/play", nil)
		req.Header.Set("Accept", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response types.PlayResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, types.StatusOK, response.Status)
		require.NotNil(t, response.Episode)
		assert.Equal(t, "01:06:21", response.Episode.DurationAsString)
	})

	t.Run("unknown episode", func(t *testing.T) {
		svc := &mockEpisodeService{}
		svc.On("GetEpisodePage", mock.Anything, "nope").Return(nil, episodes.NewNotFoundError("episode", "nope"))
		deps, session := newTestDeps(t, svc)
		router := newTestRouter(deps)

		req := httptest.NewRequest(http.MethodPost, "/episodes/nope/play", nil)
		req.Header.Set("Accept", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		_, ok := session.NowPlaying()
		assert.False(t, ok)
	})

	t.Run("player failure", func(t *testing.T) {
		svc := &mockEpisodeService{}
		svc.On("GetEpisodePage", mock.Anything, slug).Return(samplePage(), nil)
		deps, _ := newTestDeps(t, svc)
		deps.Player = player.PlayerFunc(func(ctx context.Context, episode *models.Episode) error {
			return assert.AnError
		})
		router := newTestRouter(deps)

		req := httptest.NewRequest(http.MethodPost, "/episodes/"+slug+"/play", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetPaths(t *testing.T) {
	t.Run("lists static paths", func(t *testing.T) {
		svc := &mockEpisodeService{}
		svc.On("StaticPaths", mock.Anything).Return(&episodes.StaticPaths{
			Paths: []episodes.Path{
				{Params: episodes.PathParams{Slug: "a"}},
				{Params: episodes.PathParams{Slug: "b"}},
			},
			Fallback: episodes.FallbackBlocking,
		}, nil)
		deps, _ := newTestDeps(t, svc)
		router := newTestRouter(deps)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/episodes/paths", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var response types.StaticPathsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 2, response.Count)
		assert.Equal(t, episodes.FallbackBlocking, response.Fallback)
		assert.Equal(t, "b", response.Paths[1].Params.Slug)
	})

	t.Run("listing failure", func(t *testing.T) {
		svc := &mockEpisodeService{}
		svc.On("StaticPaths", mock.Anything).Return(nil, episodes.NewAPIError("/episodes", 500, "boom"))
		deps, _ := newTestDeps(t, svc)
		router := newTestRouter(deps)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/episodes/paths", nil))

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestGetProps(t *testing.T) {
	tests := []struct {
		name           string
		slug           string
		setupMock      func(m *mockEpisodeService)
		expectedStatus int
	}{
		{
			name: "returns page props",
			slug: "a",
			setupMock: func(m *mockEpisodeService) {
				m.On("GetEpisodePage", mock.Anything, "a").Return(samplePage(), nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found",
			slug: "missing",
			setupMock: func(m *mockEpisodeService) {
				m.On("GetEpisodePage", mock.Anything, "missing").Return(nil, episodes.NewNotFoundError("episode", "missing"))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "malformed upstream record",
			slug: "broken",
			setupMock: func(m *mockEpisodeService) {
				m.On("GetEpisodePage", mock.Anything, "broken").Return(nil, episodes.NewValidationError("file.duration", "not a number: abc"))
			},
			expectedStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockEpisodeService{}
			tt.setupMock(svc)
			deps, _ := newTestDeps(t, svc)
			router := newTestRouter(deps)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/episodes/"+tt.slug, nil))

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, "ok", response["status"])
				assert.Equal(t, float64(86400), response["revalidate"])
				episode := response["episode"].(map[string]interface{})
				assert.Equal(t, "8 jan 21", episode["publishedAt"])
			} else {
				assert.Equal(t, "error", response["status"])
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestPostRevalidate(t *testing.T) {
	t.Run("drops cached page", func(t *testing.T) {
		svc := &mockEpisodeService{}
		svc.On("Revalidate", mock.Anything, "a").Return(nil)
		deps, _ := newTestDeps(t, svc)
		router := newTestRouter(deps)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/episodes/a/revalidate", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var response types.RevalidateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "a", response.Slug)
		svc.AssertExpectations(t)
	})

	t.Run("cache failure", func(t *testing.T) {
		svc := &mockEpisodeService{}
		svc.On("Revalidate", mock.Anything, "a").Return(assert.AnError)
		deps, _ := newTestDeps(t, svc)
		router := newTestRouter(deps)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/episodes/a/revalidate", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
