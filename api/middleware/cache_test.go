package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPageRouter(enabled bool) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(PageCache(CacheConfig{SharedMaxAge: 24 * time.Hour, Enabled: enabled}))
	router.GET("/episodes/:slug", func(c *gin.Context) {
		if c.Param("slug") == "missing" {
			c.Data(http.StatusNotFound, "text/html; charset=utf-8", []byte("<h1>404</h1>"))
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte("<h1>"+c.Param("slug")+"</h1>"))
	})
	return router
}

func TestCacheControl(t *testing.T) {
	assert.Equal(t, "public, s-maxage=86400, stale-while-revalidate", CacheControl(24*time.Hour))
	assert.Equal(t, "public, s-maxage=60, stale-while-revalidate", CacheControl(time.Minute))
}

func TestPageCache_SetsHeaders(t *testing.T) {
	router := newPageRouter(true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/episodes/a", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "<h1>a</h1>", w.Body.String())
	assert.Equal(t, "public, s-maxage=86400, stale-while-revalidate", w.Header().Get("Cache-Control"))
	assert.NotEmpty(t, w.Header().Get("ETag"))
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
}

func TestPageCache_ConditionalRequest(t *testing.T) {
	router := newPageRouter(true)

	first := httptest.NewRecorder()
	router.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/episodes/a", nil))
	etag := first.Header().Get("ETag")
	require.NotEmpty(t, etag)

	tests := []struct {
		name       string
		headers    map[string]string
		wantStatus int
	}{
		{name: "matching etag", headers: map[string]string{"If-None-Match": etag}, wantStatus: http.StatusNotModified},
		{name: "weak matching etag", headers: map[string]string{"If-None-Match": "W/" + etag}, wantStatus: http.StatusNotModified},
		{name: "wildcard", headers: map[string]string{"If-None-Match": "*"}, wantStatus: http.StatusNotModified},
		{name: "other etag", headers: map[string]string{"If-None-Match": `"abc"`}, wantStatus: http.StatusOK},
		{
			name:       "client bypass",
			headers:    map[string]string{"If-None-Match": etag, "Cache-Control": "no-cache"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "pragma bypass",
			headers:    map[string]string{"If-None-Match": etag, "Pragma": "no-cache"},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/episodes/a", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusNotModified {
				assert.Empty(t, w.Body.String())
			}
		})
	}
}

func TestPageCache_ErrorsAreNotCacheable(t *testing.T) {
	router := newPageRouter(true)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/episodes/missing", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "<h1>404</h1>", w.Body.String())
	assert.Empty(t, w.Header().Get("Cache-Control"))
	assert.Empty(t, w.Header().Get("ETag"))
}

func TestPageCache_Disabled(t *testing.T) {
	router := newPageRouter(false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/episodes/a", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Cache-Control"))
}

func TestShouldBypassCache(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   bool
	}{
		{"empty", "", false},
		{"no-cache", "no-cache", true},
		{"no-store mixed case", "No-Store", true},
		{"max-age zero", "max-age=0", true},
		{"max-age positive", "max-age=60", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Cache-Control", tt.header)
			}
			assert.Equal(t, tt.want, shouldBypassCache(req))
		})
	}
}
