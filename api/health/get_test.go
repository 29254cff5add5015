package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
	"github.com/killallgit/podcast-api/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openDB(t *testing.T) *database.DB {
	t.Helper()
	db, err := database.Initialize(database.Options{Path: filepath.Join(t.TempDir(), "health.db")})
	require.NoError(t, err)
	return db
}

func TestGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name           string
		setupDeps      func(t *testing.T) *types.Dependencies
		expectedStatus int
		expectedBody   string
		expectedDB     string
	}{
		{
			name: "healthy with database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				db := openDB(t)
				t.Cleanup(func() { _ = db.Close() })
				return &types.Dependencies{DB: db}
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "healthy",
			expectedDB:     "connected",
		},
		{
			name: "healthy without database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				return &types.Dependencies{}
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "healthy",
			expectedDB:     "not configured",
		},
		{
			name: "unhealthy with closed database",
			setupDeps: func(t *testing.T) *types.Dependencies {
				db := openDB(t)
				require.NoError(t, db.Close())
				return &types.Dependencies{DB: db}
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   "unhealthy",
			expectedDB:     "unhealthy",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

			Get(tt.setupDeps(t))(c)

			assert.Equal(t, tt.expectedStatus, w.Code)

			var response types.HealthResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.expectedBody, response.Status)
			assert.Equal(t, tt.expectedDB, response.Database["status"])
			assert.NotEmpty(t, response.Timestamp)
		})
	}
}
