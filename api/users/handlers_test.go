package users

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/internal/services/episodes"
	"github.com/killallgit/podcast-api/internal/services/podcasts"
	"github.com/killallgit/podcast-api/internal/services/users"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
	"github.com/killallgit/podcast-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const requester = uint(7)

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) CreateUser(ctx context.Context, email, name string) (*models.User, error) {
	args := m.Called(ctx, email, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) Profile(ctx context.Context, userID uint) (models.UserProfile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(models.UserProfile), args.Error(1)
}

func (m *MockUserService) UpdateProfile(ctx context.Context, userID uint, update users.ProfileUpdate) (models.UserProfile, error) {
	args := m.Called(ctx, userID, update)
	return args.Get(0).(models.UserProfile), args.Error(1)
}

func (m *MockUserService) CreateChannel(ctx context.Context, userID uint, name string) (models.UserProfile, error) {
	args := m.Called(ctx, userID, name)
	return args.Get(0).(models.UserProfile), args.Error(1)
}

func (m *MockUserService) UpdateChannel(ctx context.Context, userID uint, name string) (models.UserProfile, error) {
	args := m.Called(ctx, userID, name)
	return args.Get(0).(models.UserProfile), args.Error(1)
}

func (m *MockUserService) Channel(ctx context.Context, channelUserID, requesterID uint) (models.ChannelView, error) {
	args := m.Called(ctx, channelUserID, requesterID)
	return args.Get(0).(models.ChannelView), args.Error(1)
}

func (m *MockUserService) SearchCreators(ctx context.Context, term string, p *pagination.Params, requesterID uint) (pagination.Result[models.UserSummary], error) {
	args := m.Called(ctx, term, p, requesterID)
	return args.Get(0).(pagination.Result[models.UserSummary]), args.Error(1)
}

func (m *MockUserService) RecordSearch(ctx context.Context, userID uint, term string) error {
	return m.Called(ctx, userID, term).Error(0)
}

func (m *MockUserService) SearchHistory(ctx context.Context, userID uint) ([]string, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockUserService) RemoveSearchTerm(ctx context.Context, userID uint, term string) ([]string, error) {
	args := m.Called(ctx, userID, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockUserService) ClearSearchHistory(ctx context.Context, userID uint) error {
	return m.Called(ctx, userID).Error(0)
}

// MockEpisodeService covers the set operations reached from /self. Other
// methods panic through the nil embedded interface.
type MockEpisodeService struct {
	mock.Mock
	episodes.EpisodeService
}

func (m *MockEpisodeService) list(args mock.Arguments) ([]models.EpisodeView, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EpisodeView), args.Error(1)
}

func (m *MockEpisodeService) Favorites(ctx context.Context, userID uint, p *pagination.Params) (pagination.Result[models.EpisodeView], error) {
	args := m.Called(ctx, userID, p)
	return args.Get(0).(pagination.Result[models.EpisodeView]), args.Error(1)
}

func (m *MockEpisodeService) AddFavorite(ctx context.Context, userID, episodeID uint) ([]models.EpisodeView, error) {
	return m.list(m.Called(ctx, userID, episodeID))
}

func (m *MockEpisodeService) RemoveFavorite(ctx context.Context, userID, episodeID uint) ([]models.EpisodeView, error) {
	return m.list(m.Called(ctx, userID, episodeID))
}

func (m *MockEpisodeService) ClearFavorites(ctx context.Context, userID uint) ([]models.EpisodeView, error) {
	return m.list(m.Called(ctx, userID))
}

func (m *MockEpisodeService) Listened(ctx context.Context, userID uint, p *pagination.Params) (pagination.Result[models.EpisodeView], error) {
	args := m.Called(ctx, userID, p)
	return args.Get(0).(pagination.Result[models.EpisodeView]), args.Error(1)
}

func (m *MockEpisodeService) RemoveListened(ctx context.Context, userID, episodeID uint) ([]models.EpisodeView, error) {
	return m.list(m.Called(ctx, userID, episodeID))
}

func (m *MockEpisodeService) ClearListened(ctx context.Context, userID uint) ([]models.EpisodeView, error) {
	return m.list(m.Called(ctx, userID))
}

type MockPodcastService struct {
	mock.Mock
	podcasts.PodcastService
}

func (m *MockPodcastService) Subscriptions(ctx context.Context, userID uint, p *pagination.Params) (pagination.Result[models.PodcastView], error) {
	args := m.Called(ctx, userID, p)
	return args.Get(0).(pagination.Result[models.PodcastView]), args.Error(1)
}

type mocks struct {
	users    *MockUserService
	episodes *MockEpisodeService
	podcasts *MockPodcastService
}

func (m mocks) assert(t *testing.T) {
	m.users.AssertExpectations(t)
	m.episodes.AssertExpectations(t)
	m.podcasts.AssertExpectations(t)
}

func setupRouter() (*gin.Engine, mocks) {
	gin.SetMode(gin.TestMode)
	m := mocks{users: new(MockUserService), episodes: new(MockEpisodeService), podcasts: new(MockPodcastService)}
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set(types.UserIDKey, requester)
		c.Next()
	})
	RegisterRoutes(router.Group("/api/v1/users"), &types.Dependencies{
		UserService:    m.users,
		EpisodeService: m.episodes,
		PodcastService: m.podcasts,
	})
	return router, m
}

func serve(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestProfile(t *testing.T) {
	router, m := setupRouter()
	name := "Phuong"
	m.users.On("Profile", mock.Anything, requester).Return(models.UserProfile{ID: requester, Email: "p@example.com"}, nil)
	m.users.On("UpdateProfile", mock.Anything, requester, users.ProfileUpdate{Name: &name}).
		Return(models.UserProfile{ID: requester, Name: "Phuong"}, nil)

	w := serve(router, http.MethodGet, "/api/v1/users/self", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"email":"p@example.com"`)

	w = serve(router, http.MethodPatch, "/api/v1/users/self", `{"name":"Phuong"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"name":"Phuong"`)

	m.assert(t)
}

func TestChannelRoutes(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		setup      func(mocks)
		wantStatus int
	}{
		{
			name:   "create channel",
			method: http.MethodPost,
			path:   "/api/v1/users/self/channel",
			body:   `{"name":"Tech Talk"}`,
			setup: func(m mocks) {
				m.users.On("CreateChannel", mock.Anything, requester, "Tech Talk").
					Return(models.UserProfile{IsCreator: true, ChannelName: "Tech Talk"}, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:   "create channel twice",
			method: http.MethodPost,
			path:   "/api/v1/users/self/channel",
			body:   `{"name":"Tech Talk"}`,
			setup: func(m mocks) {
				m.users.On("CreateChannel", mock.Anything, requester, "Tech Talk").
					Return(models.UserProfile{}, apperrors.Conflict("channel", "already a creator"))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "rename without channel",
			method: http.MethodPatch,
			path:   "/api/v1/users/self/channel",
			body:   `{"name":"Other"}`,
			setup: func(m mocks) {
				m.users.On("UpdateChannel", mock.Anything, requester, "Other").
					Return(models.UserProfile{}, apperrors.Forbidden("channel", requester))
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "public channel",
			method: http.MethodGet,
			path:   "/api/v1/users/3/channel",
			setup: func(m mocks) {
				m.users.On("Channel", mock.Anything, uint(3), requester).
					Return(models.ChannelView{UserSummary: models.UserSummary{ID: 3, ChannelName: "Tech Talk"}}, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "not a creator",
			method: http.MethodGet,
			path:   "/api/v1/users/4/channel",
			setup: func(m mocks) {
				m.users.On("Channel", mock.Anything, uint(4), requester).
					Return(models.ChannelView{}, apperrors.NotFound("channel", uint(4)))
			},
			wantStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := setupRouter()
			tt.setup(m)

			w := serve(router, tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			m.assert(t)
		})
	}
}

func TestSearchCreators(t *testing.T) {
	router, m := setupRouter()
	m.users.On("SearchCreators", mock.Anything, "phuong", (*pagination.Params)(nil), requester).
		Return(pagination.Result[models.UserSummary]{Items: []models.UserSummary{{ID: 3, Name: "Phương"}}}, nil)

	w := serve(router, http.MethodGet, "/api/v1/users/search?q=phuong", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":3`)
	m.assert(t)
}

func TestFavorites(t *testing.T) {
	router, m := setupRouter()
	p := &pagination.Params{Page: 1, PerPage: 2}
	m.episodes.On("Favorites", mock.Anything, requester, p).
		Return(pagination.Result[models.EpisodeView]{Items: []models.EpisodeView{{ID: 2}, {ID: 1}}, Info: pagination.NewInfo(p, 3)}, nil)
	m.episodes.On("AddFavorite", mock.Anything, requester, uint(5)).Return([]models.EpisodeView{{ID: 5}}, nil)
	m.episodes.On("RemoveFavorite", mock.Anything, requester, uint(6)).
		Return(nil, apperrors.Conflict("favorites", "not in list"))
	m.episodes.On("ClearFavorites", mock.Anything, requester).Return([]models.EpisodeView{}, nil)

	w := serve(router, http.MethodGet, "/api/v1/users/self/favorites?offset=1&limit=2", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"total_page":2`)

	w = serve(router, http.MethodPost, "/api/v1/users/self/favorites/5", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(router, http.MethodDelete, "/api/v1/users/self/favorites/6", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = serve(router, http.MethodDelete, "/api/v1/users/self/favorites", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"data":[]`)

	m.assert(t)
}

func TestListenedAndSubscriptions(t *testing.T) {
	router, m := setupRouter()
	m.episodes.On("Listened", mock.Anything, requester, (*pagination.Params)(nil)).
		Return(pagination.Result[models.EpisodeView]{Items: []models.EpisodeView{{ID: 9}}}, nil)
	m.episodes.On("RemoveListened", mock.Anything, requester, uint(9)).Return([]models.EpisodeView{}, nil)
	m.episodes.On("ClearListened", mock.Anything, requester).Return([]models.EpisodeView{}, nil)
	m.podcasts.On("Subscriptions", mock.Anything, requester, (*pagination.Params)(nil)).
		Return(pagination.Result[models.PodcastView]{Items: []models.PodcastView{}}, nil)

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/v1/users/self/listened", "").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodDelete, "/api/v1/users/self/listened/9", "").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodDelete, "/api/v1/users/self/listened", "").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/api/v1/users/self/subscriptions", "").Code)

	m.assert(t)
}

func TestSearchHistory(t *testing.T) {
	router, m := setupRouter()
	m.users.On("SearchHistory", mock.Anything, requester).Return([]string{"tech", "news"}, nil)
	m.users.On("RemoveSearchTerm", mock.Anything, requester, "tech").Return([]string{"news"}, nil)
	m.users.On("RemoveSearchTerm", mock.Anything, requester, "sport").
		Return(nil, apperrors.Conflict("search history", "not in list"))
	m.users.On("ClearSearchHistory", mock.Anything, requester).Return(nil)

	w := serve(router, http.MethodGet, "/api/v1/users/self/search-history", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `["tech","news"]`)

	w = serve(router, http.MethodDelete, "/api/v1/users/self/search-history/tech", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `["news"]`)

	w = serve(router, http.MethodDelete, "/api/v1/users/self/search-history/sport", "")
	assert.Equal(t, http.StatusConflict, w.Code)

	w = serve(router, http.MethodDelete, "/api/v1/users/self/search-history", "")
	assert.Equal(t, http.StatusOK, w.Code)

	m.assert(t)
}
