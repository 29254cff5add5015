package podcasts_test

import (
	"context"
	"testing"

	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/internal/services/aggregation"
	"github.com/killallgit/podcast-api/internal/services/cascade"
	"github.com/killallgit/podcast-api/internal/services/membership"
	"github.com/killallgit/podcast-api/internal/services/podcasts"
	"github.com/killallgit/podcast-api/internal/store"
	"github.com/killallgit/podcast-api/internal/store/storetest"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
	"github.com/killallgit/podcast-api/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSearchRecorder is a mock implementation of SearchRecorder
type MockSearchRecorder struct {
	mock.Mock
}

func (m *MockSearchRecorder) RecordSearch(ctx context.Context, userID uint, term string) error {
	args := m.Called(ctx, userID, term)
	return args.Error(0)
}

type fixture struct {
	svc      podcasts.PodcastService
	store    *store.Store
	history  *MockSearchRecorder
	author   *models.User
	listener *models.User
	category *models.Category
}

func setup(t *testing.T) fixture {
	db, s := storetest.Open(t)
	engine := aggregation.New(s)
	history := new(MockSearchRecorder)
	svc := podcasts.NewService(
		s,
		engine,
		membership.NewService(s, engine, nil),
		cascade.NewCoordinator(db, s, nil),
		history,
		nil,
	)
	return fixture{
		svc:      svc,
		store:    s,
		history:  history,
		author:   storetest.User(t, s, "An", true),
		listener: storetest.User(t, s, "Lan", false),
		category: storetest.Category(t, s, "News"),
	}
}

func TestCreate(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	view, err := f.svc.Create(ctx, f.author.ID, podcasts.PodcastInput{
		Name:        "Morning Brief",
		Description: "daily news",
		CategoryID:  f.category.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, view.ID)

	author, ok := view.Author.Value()
	require.True(t, ok)
	assert.Equal(t, f.author.ID, author.ID)
	category, ok := view.Category.Value()
	require.True(t, ok)
	assert.Equal(t, "News", category.Name)
	assert.Zero(t, view.NumListening)

	_, err = f.svc.Create(ctx, f.listener.ID, podcasts.PodcastInput{Name: "Nope", CategoryID: f.category.ID})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeForbidden))

	_, err = f.svc.Create(ctx, f.author.ID, podcasts.PodcastInput{Name: "Nope", CategoryID: 999})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
}

func TestUpdate(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	p := storetest.Podcast(t, f.store, f.author, f.category, "Before")
	other := storetest.Category(t, f.store, "Comedy")

	name := "After"
	view, err := f.svc.Update(ctx, p.ID, f.author.ID, podcasts.PodcastPatch{Name: &name, CategoryID: &other.ID})
	require.NoError(t, err)
	assert.Equal(t, "After", view.Name)
	assert.Equal(t, p.Description, view.Description)
	category, _ := view.Category.Value()
	assert.Equal(t, "Comedy", category.Name)

	missing := uint(999)
	_, err = f.svc.Update(ctx, p.ID, f.author.ID, podcasts.PodcastPatch{CategoryID: &missing})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))

	_, err = f.svc.Update(ctx, p.ID, f.listener.ID, podcasts.PodcastPatch{Name: &name})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeForbidden))
}

func TestGetAggregates(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	p := storetest.Podcast(t, f.store, f.author, f.category, "A")
	storetest.Episode(t, f.store, p, "one", 2)
	gone := storetest.Episode(t, f.store, p, "two", 40)
	require.NoError(t, f.store.Episodes.SoftDelete(ctx, gone.ID))

	_, err := f.svc.Subscribe(ctx, f.listener.ID, p.ID)
	require.NoError(t, err)

	view, err := f.svc.Get(ctx, p.ID, f.listener.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), view.NumListening)
	assert.True(t, view.IsSubscribed)
	assert.Len(t, view.Episodes, 1)

	view, err = f.svc.Get(ctx, p.ID, f.author.ID)
	require.NoError(t, err)
	assert.False(t, view.IsSubscribed)
}

func TestSubscribeOwnPodcastConflicts(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	p := storetest.Podcast(t, f.store, f.author, f.category, "A")

	_, err := f.svc.Subscribe(ctx, f.author.ID, p.ID)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeConflict))

	list, err := f.svc.Subscribe(ctx, f.listener.ID, p.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = f.svc.Subscribe(ctx, f.listener.ID, p.ID)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeConflict))

	list, err = f.svc.Unsubscribe(ctx, f.listener.ID, p.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	res, err := f.svc.Subscriptions(ctx, f.listener.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Items)
}

func TestSearch(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	storetest.Podcast(t, f.store, f.author, f.category, "Phóng Sự")
	storetest.Podcast(t, f.store, f.author, f.category, "Cooking")
	deleted := storetest.Podcast(t, f.store, f.author, f.category, "Phong Van")
	require.NoError(t, f.store.Podcasts.SoftDelete(ctx, deleted.ID))

	f.history.On("RecordSearch", mock.Anything, f.listener.ID, "phong").Return(nil).Once()

	res, err := f.svc.Search(ctx, "phong", pagination.New(1, 10, 10), f.listener.ID)
	require.NoError(t, err)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Phóng Sự", res.Items[0].Name)
	assert.Equal(t, 1, res.Info.TotalResults)
	f.history.AssertExpectations(t)
}

func TestDeleteCascades(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	p := storetest.Podcast(t, f.store, f.author, f.category, "A")
	e := storetest.Episode(t, f.store, p, "one", 3)

	assert.True(t, apperrors.Is(f.svc.Delete(ctx, p.ID, f.listener.ID), apperrors.ErrCodeForbidden))

	require.NoError(t, f.svc.DeleteEpisodes(ctx, p.ID, f.author.ID))
	assert.Equal(t, models.StatusDeleted, storetest.Status[models.Episode](t, f.store, e.ID))
	assert.Equal(t, models.StatusActive, storetest.Status[models.Podcast](t, f.store, p.ID))

	require.NoError(t, f.svc.Delete(ctx, p.ID, f.author.ID))
	_, err := f.svc.Get(ctx, p.ID, f.author.ID)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
}
