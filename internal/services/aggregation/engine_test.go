package aggregation_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/internal/services/aggregation"
	"github.com/killallgit/podcast-api/internal/store/storetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPodcastViewCount(t *testing.T) {
	_, s := storetest.Open(t)
	ctx := context.Background()
	engine := aggregation.New(s)

	author := storetest.User(t, s, "An", true)
	p := storetest.Podcast(t, s, author, nil, "A")
	storetest.Episode(t, s, p, "e1", 10)
	storetest.Episode(t, s, p, "e2", 5)
	deleted := storetest.Episode(t, s, p, "e3", 1000)
	require.NoError(t, s.Episodes.SoftDelete(ctx, deleted.ID))

	count, err := engine.PodcastViewCount(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(15), count)
}

func TestFlags(t *testing.T) {
	_, s := storetest.Open(t)
	ctx := context.Background()
	engine := aggregation.New(s)

	author := storetest.User(t, s, "An", true)
	listener := storetest.User(t, s, "Lan", false)
	p := storetest.Podcast(t, s, author, nil, "A")
	e := storetest.Episode(t, s, p, "e1", 0)

	require.NoError(t, s.Users.SaveSet(ctx, listener.ID, models.SetSubscribed, []uint{p.ID}))
	require.NoError(t, s.Users.SaveSet(ctx, listener.ID, models.SetFavorites, []uint{e.ID}))

	tests := []struct {
		name      string
		check     func(id, requester uint) (bool, error)
		id        uint
		requester uint
		want      bool
	}{
		{"subscribed", func(id, r uint) (bool, error) { return engine.IsSubscribed(ctx, id, r) }, p.ID, listener.ID, true},
		{"not subscribed", func(id, r uint) (bool, error) { return engine.IsSubscribed(ctx, id, r) }, p.ID, author.ID, false},
		{"favorite", func(id, r uint) (bool, error) { return engine.IsFavorite(ctx, id, r) }, e.ID, listener.ID, true},
		{"not listened", func(id, r uint) (bool, error) { return engine.IsListened(ctx, id, r) }, e.ID, listener.ID, false},
		{"no requester", func(id, r uint) (bool, error) { return engine.IsFavorite(ctx, id, r) }, e.ID, 0, false},
		{"unknown requester", func(id, r uint) (bool, error) { return engine.IsFavorite(ctx, id, r) }, e.ID, 999, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.check(tt.id, tt.requester)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPodcastDetail(t *testing.T) {
	_, s := storetest.Open(t)
	ctx := context.Background()
	engine := aggregation.New(s)

	author := storetest.User(t, s, "An", true)
	listener := storetest.User(t, s, "Lan", false)
	news := storetest.Category(t, s, "News")
	p := storetest.Podcast(t, s, author, news, "A")
	e1 := storetest.Episode(t, s, p, "e1", 2)
	e2 := storetest.Episode(t, s, p, "e2", 3)

	require.NoError(t, s.Users.SaveSet(ctx, listener.ID, models.SetListened, []uint{e1.ID}))
	require.NoError(t, s.Users.SaveSet(ctx, listener.ID, models.SetFavorites, []uint{e2.ID}))
	require.NoError(t, s.Users.SaveSet(ctx, listener.ID, models.SetSubscribed, []uint{p.ID}))

	view, err := engine.PodcastDetail(ctx, p, listener.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(5), view.NumListening)
	assert.True(t, view.IsSubscribed)

	author2, ok := view.Author.Value()
	require.True(t, ok)
	assert.Equal(t, "An", author2.Name)
	category, ok := view.Category.Value()
	require.True(t, ok)
	assert.Equal(t, "News", category.Name)

	require.Len(t, view.Episodes, 2)
	flags := map[uint][2]bool{}
	for _, ev := range view.Episodes {
		flags[ev.ID] = [2]bool{ev.IsListened, ev.IsFavorite}
		assert.False(t, ev.Podcast.IsResolved(), "nested episodes reference the podcast by id")
	}
	assert.Equal(t, [2]bool{true, false}, flags[e1.ID])
	assert.Equal(t, [2]bool{false, true}, flags[e2.ID])
}

func TestEpisodeViews(t *testing.T) {
	_, s := storetest.Open(t)
	ctx := context.Background()
	engine := aggregation.New(s)

	author := storetest.User(t, s, "An", true)
	listener := storetest.User(t, s, "Lan", false)
	live := storetest.Podcast(t, s, author, nil, "Live")
	gone := storetest.Podcast(t, s, author, nil, "Gone")
	e1 := storetest.Episode(t, s, live, "e1", 0)
	e2 := storetest.Episode(t, s, gone, "e2", 0)
	require.NoError(t, s.Podcasts.SoftDelete(ctx, gone.ID))
	require.NoError(t, s.Users.SaveSet(ctx, listener.ID, models.SetFavorites, []uint{e1.ID}))

	views, err := engine.EpisodeViews(ctx, []models.Episode{*e1, *e2}, listener.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)

	podcast, ok := views[0].Podcast.Value()
	require.True(t, ok)
	assert.Equal(t, "Live", podcast.Name)
	assert.True(t, podcast.Author.IsResolved())
	assert.True(t, views[0].IsFavorite)

	assert.False(t, views[1].Podcast.IsResolved())
	assert.Equal(t, gone.ID, views[1].Podcast.ID)

	b, err := json.Marshal(views[1])
	require.NoError(t, err)
	assert.Contains(t, string(b), `"podcast":`)
}
