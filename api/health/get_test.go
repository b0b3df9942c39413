package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcastr/api/types"
	"github.com/killallgit/podcastr/internal/database"
	"github.com/killallgit/podcastr/internal/services/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name             string
		setupDeps        func(t *testing.T) *types.Dependencies
		expectedStatus   int
		expectedHealth   string
		expectedDBStatus string
		expectedCache    string
	}{
		{
			name: "healthy with database and cache",
			setupDeps: func(t *testing.T) *types.Dependencies {
				db, err := database.Initialize(":memory:", false)
				require.NoError(t, err)
				t.Cleanup(func() { _ = db.Close() })

				mc := cache.NewMemoryCache(1, time.Minute)
				t.Cleanup(mc.Stop)
				return &types.Dependencies{DB: db, PageCache: mc}
			},
			expectedStatus:   http.StatusOK,
			expectedHealth:   "healthy",
			expectedDBStatus: "healthy",
			expectedCache:    "healthy",
		},
		{
			name: "healthy without database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				return &types.Dependencies{}
			},
			expectedStatus:   http.StatusOK,
			expectedHealth:   "healthy",
			expectedDBStatus: "not configured",
			expectedCache:    "not configured",
		},
		{
			name: "unhealthy with closed database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				db, err := database.Initialize(":memory:", false)
				require.NoError(t, err)
				require.NoError(t, db.Close())
				return &types.Dependencies{DB: db}
			},
			expectedStatus:   http.StatusServiceUnavailable,
			expectedHealth:   "unhealthy",
			expectedDBStatus: "unhealthy",
			expectedCache:    "not configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

			Get(tt.setupDeps(t))(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedHealth, response["status"])

			services := response["services"].(map[string]interface{})
			db := services["database"].(map[string]interface{})
			assert.Equal(t, tt.expectedDBStatus, db["status"])
			pc := services["cache"].(map[string]interface{})
			assert.Equal(t, tt.expectedCache, pc["status"])
		})
	}
}

func TestGetCacheStatus_Stats(t *testing.T) {
	mc := cache.NewMemoryCache(1, time.Minute)
	defer mc.Stop()

	status := getCacheStatus(&types.Dependencies{PageCache: mc})
	_, ok := status["stats"].(cache.CacheStats)
	assert.True(t, ok)
}
