package podcasts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/internal/services/podcasts"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
	"github.com/killallgit/podcast-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const requester = uint(7)

type MockPodcastService struct {
	mock.Mock
}

func (m *MockPodcastService) Create(ctx context.Context, requesterID uint, in podcasts.PodcastInput) (models.PodcastView, error) {
	args := m.Called(ctx, requesterID, in)
	return args.Get(0).(models.PodcastView), args.Error(1)
}

func (m *MockPodcastService) Update(ctx context.Context, id, requesterID uint, patch podcasts.PodcastPatch) (models.PodcastView, error) {
	args := m.Called(ctx, id, requesterID, patch)
	return args.Get(0).(models.PodcastView), args.Error(1)
}

func (m *MockPodcastService) Delete(ctx context.Context, id, requesterID uint) error {
	return m.Called(ctx, id, requesterID).Error(0)
}

func (m *MockPodcastService) DeleteEpisodes(ctx context.Context, id, requesterID uint) error {
	return m.Called(ctx, id, requesterID).Error(0)
}

func (m *MockPodcastService) Get(ctx context.Context, id, requesterID uint) (models.PodcastView, error) {
	args := m.Called(ctx, id, requesterID)
	return args.Get(0).(models.PodcastView), args.Error(1)
}

func (m *MockPodcastService) Search(ctx context.Context, term string, p *pagination.Params, requesterID uint) (pagination.Result[models.PodcastView], error) {
	args := m.Called(ctx, term, p, requesterID)
	return args.Get(0).(pagination.Result[models.PodcastView]), args.Error(1)
}

func (m *MockPodcastService) Subscribe(ctx context.Context, userID, podcastID uint) ([]models.PodcastView, error) {
	args := m.Called(ctx, userID, podcastID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PodcastView), args.Error(1)
}

func (m *MockPodcastService) Unsubscribe(ctx context.Context, userID, podcastID uint) ([]models.PodcastView, error) {
	args := m.Called(ctx, userID, podcastID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PodcastView), args.Error(1)
}

func (m *MockPodcastService) Subscriptions(ctx context.Context, userID uint, p *pagination.Params) (pagination.Result[models.PodcastView], error) {
	args := m.Called(ctx, userID, p)
	return args.Get(0).(pagination.Result[models.PodcastView]), args.Error(1)
}

func setupRouter(svc *MockPodcastService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(types.UserIDKey, requester)
		c.Next()
	})
	RegisterRoutes(router.Group("/api/v1/podcasts"), &types.Dependencies{PodcastService: svc, DefaultLimit: 10})
	return router
}

func view(id uint, name string) models.PodcastView {
	return models.PodcastView{PodcastSummary: models.PodcastSummary{ID: id, Name: name}}
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(*MockPodcastService)
		wantStatus int
	}{
		{
			name: "created",
			body: `{"name":"Daily","category_id":2}`,
			setup: func(m *MockPodcastService) {
				m.On("Create", mock.Anything, requester, podcasts.PodcastInput{Name: "Daily", CategoryID: 2}).
					Return(view(1, "Daily"), nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "not a creator",
			body: `{"name":"Daily","category_id":2}`,
			setup: func(m *MockPodcastService) {
				m.On("Create", mock.Anything, requester, mock.Anything).
					Return(models.PodcastView{}, apperrors.Forbidden("podcast", uint(0)))
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "missing category",
			body:       `{"name":"Daily"}`,
			setup:      func(m *MockPodcastService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockPodcastService)
			tt.setup(svc)

			w := serve(setupRouter(svc), http.MethodPost, "/api/v1/podcasts", tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		setup      func(*MockPodcastService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "found",
			path: "/api/v1/podcasts/3",
			setup: func(m *MockPodcastService) {
				m.On("Get", mock.Anything, uint(3), requester).Return(view(3, "Daily"), nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `"name":"Daily"`,
		},
		{
			name: "not found",
			path: "/api/v1/podcasts/4",
			setup: func(m *MockPodcastService) {
				m.On("Get", mock.Anything, uint(4), requester).
					Return(models.PodcastView{}, apperrors.NotFound("podcast", uint(4)))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"NOT_FOUND"`,
		},
		{
			name:       "invalid id",
			path:       "/api/v1/podcasts/abc",
			setup:      func(m *MockPodcastService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `"INVALID_INPUT"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockPodcastService)
			tt.setup(svc)

			w := serve(setupRouter(svc), http.MethodGet, tt.path, "")

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			svc.AssertExpectations(t)
		})
	}
}

func TestUpdate(t *testing.T) {
	svc := new(MockPodcastService)
	name := "Weekly"
	svc.On("Update", mock.Anything, uint(3), requester, podcasts.PodcastPatch{Name: &name}).
		Return(view(3, "Weekly"), nil)

	w := serve(setupRouter(svc), http.MethodPatch, "/api/v1/podcasts/3", `{"name":"Weekly"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Weekly"`)
	svc.AssertExpectations(t)
}

func TestDelete(t *testing.T) {
	t.Run("podcast", func(t *testing.T) {
		svc := new(MockPodcastService)
		svc.On("Delete", mock.Anything, uint(3), requester).Return(nil)

		w := serve(setupRouter(svc), http.MethodDelete, "/api/v1/podcasts/3", "")

		assert.Equal(t, http.StatusNoContent, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("episodes of someone else's podcast", func(t *testing.T) {
		svc := new(MockPodcastService)
		svc.On("DeleteEpisodes", mock.Anything, uint(3), requester).Return(apperrors.Forbidden("podcast", uint(3)))

		w := serve(setupRouter(svc), http.MethodDelete, "/api/v1/podcasts/3/episodes", "")

		assert.Equal(t, http.StatusForbidden, w.Code)
		svc.AssertExpectations(t)
	})
}

func TestSearch(t *testing.T) {
	t.Run("flat list without paging", func(t *testing.T) {
		svc := new(MockPodcastService)
		svc.On("Search", mock.Anything, "news", (*pagination.Params)(nil), requester).
			Return(pagination.Result[models.PodcastView]{Items: []models.PodcastView{view(1, "News Hour")}}, nil)

		w := serve(setupRouter(svc), http.MethodGet, "/api/v1/podcasts/search?q=news", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"data":[{`)
		svc.AssertExpectations(t)
	})

	t.Run("page envelope", func(t *testing.T) {
		svc := new(MockPodcastService)
		p := &pagination.Params{Page: 2, PerPage: 10}
		svc.On("Search", mock.Anything, "news", p, requester).
			Return(pagination.Result[models.PodcastView]{
				Items: []models.PodcastView{},
				Info:  pagination.NewInfo(p, 11),
			}, nil)

		w := serve(setupRouter(svc), http.MethodGet, "/api/v1/podcasts/search?q=news&offset=2", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total_page":2`)
		svc.AssertExpectations(t)
	})
}

func TestSubscribe(t *testing.T) {
	t.Run("subscribe", func(t *testing.T) {
		svc := new(MockPodcastService)
		svc.On("Subscribe", mock.Anything, requester, uint(3)).Return([]models.PodcastView{view(3, "Daily")}, nil)

		w := serve(setupRouter(svc), http.MethodPost, "/api/v1/podcasts/3/subscribe", "")

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("unsubscribe when not subscribed", func(t *testing.T) {
		svc := new(MockPodcastService)
		svc.On("Unsubscribe", mock.Anything, requester, uint(3)).
			Return(nil, apperrors.Conflict("subscribed", "not in list"))

		w := serve(setupRouter(svc), http.MethodDelete, "/api/v1/podcasts/3/subscribe", "")

		assert.Equal(t, http.StatusConflict, w.Code)
		svc.AssertExpectations(t)
	})
}
