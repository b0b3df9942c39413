package version

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcastr/api/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name         string
		deps         *types.Dependencies
		expectedBody map[string]interface{}
	}{
		{
			name: "build info from dependencies",
			deps: &types.Dependencies{Build: types.BuildInfo{Version: "1.2.3", GitCommit: "abc1234"}},
			expectedBody: map[string]interface{}{
				"name":    "Podcastr",
				"version": "1.2.3",
				"commit":  "abc1234",
				"status":  "running",
			},
		},
		{
			name: "no dependencies",
			expectedBody: map[string]interface{}{
				"name":    "Podcastr",
				"version": "dev",
				"status":  "running",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			Get(tt.deps)(c)

			assert.Equal(t, http.StatusOK, w.Code)

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			for key, expectedValue := range tt.expectedBody {
				assert.Equal(t, expectedValue, response[key], "Key: %s", key)
			}
		})
	}
}
