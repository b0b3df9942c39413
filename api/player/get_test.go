package player

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcastr/api/types"
	"github.com/killallgit/podcastr/internal/models"
	playback "github.com/killallgit/podcastr/internal/services/player"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		setupDeps      func(t *testing.T) *types.Dependencies
		expectedStatus int
		check          func(t *testing.T, response types.PlayerResponse)
	}{
		{
			name: "nothing playing",
			setupDeps: func(t *testing.T) *types.Dependencies {
				return &types.Dependencies{Playback: playback.NewSession(3)}
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, response types.PlayerResponse) {
				assert.False(t, response.Playing)
				assert.Nil(t, response.NowPlaying)
				assert.Empty(t, response.History)
			},
		},
		{
			name: "two episodes played",
			setupDeps: func(t *testing.T) *types.Dependencies {
				session := playback.NewSession(3)
				require.NoError(t, session.Begin(context.Background(), &models.Episode{ID: "first"}))
				require.NoError(t, session.Begin(context.Background(), &models.Episode{ID: "second"}))
				return &types.Dependencies{Playback: session}
			},
			expectedStatus: http.StatusOK,
			check: func(t *testing.T, response types.PlayerResponse) {
				assert.True(t, response.Playing)
				require.NotNil(t, response.NowPlaying)
				assert.Equal(t, "second", response.NowPlaying.Episode.ID)
				require.Len(t, response.History, 1)
				assert.Equal(t, "first", response.History[0].Episode.ID)
			},
		},
		{
			name: "no player configured",
			setupDeps: func(t *testing.T) *types.Dependencies {
				return &types.Dependencies{}
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			RegisterRoutes(router.Group("/api/v1/player"), tt.setupDeps(t))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/player", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.check == nil {
				return
			}

			var response types.PlayerResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			tt.check(t, response)
		})
	}
}
