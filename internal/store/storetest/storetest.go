// Package storetest opens throwaway databases and seeds records for tests.
package storetest

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/killallgit/podcast-api/internal/database"
	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/internal/store"
	"github.com/stretchr/testify/require"
)

// Open returns a migrated database in t's temp dir and a store over it.
func Open(t *testing.T) (*database.DB, *store.Store) {
	t.Helper()

	db, err := database.Initialize(database.Options{
		Path:              filepath.Join(t.TempDir(), "test.db"),
		MaxConnections:    4,
		BusyTimeout:       5 * time.Second,
		EnableWAL:         true,
		EnableForeignKeys: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate())
	return db, store.New(db.DB)
}

// User creates an ACTIVE user; creators get a channel name.
func User(t *testing.T, s *store.Store, name string, creator bool) *models.User {
	t.Helper()
	u := models.NewUser(fmt.Sprintf("%s-%d@example.com", name, time.Now().UnixNano()), name)
	if creator {
		u.IsCreator = true
		u.ChannelName = name + " channel"
	}
	require.NoError(t, s.Users.Create(context.Background(), u))
	return u
}

// Category creates an ACTIVE category
func Category(t *testing.T, s *store.Store, name string) *models.Category {
	t.Helper()
	c := &models.Category{Name: name}
	require.NoError(t, s.Categories.Create(context.Background(), c))
	return c
}

// Podcast creates an ACTIVE podcast owned by author
func Podcast(t *testing.T, s *store.Store, author *models.User, category *models.Category, name string) *models.Podcast {
	t.Helper()
	p := &models.Podcast{Name: name, Description: name + " description", Image: "podcast.png", AuthorID: author.ID}
	if category != nil {
		p.CategoryID = category.ID
	}
	require.NoError(t, s.Podcasts.Create(context.Background(), p))
	return p
}

// Episode creates an ACTIVE episode with the given listen count
func Episode(t *testing.T, s *store.Store, podcast *models.Podcast, name string, listens int64) *models.Episode {
	t.Helper()
	e := &models.Episode{
		Name:         name,
		Description:  name + " notes",
		Duration:     600,
		Image:        podcast.Image,
		Href:         "https://cdn.example.com/" + name + ".mp3",
		PodcastID:    podcast.ID,
		NumListening: listens,
	}
	require.NoError(t, s.Episodes.Create(context.Background(), e))
	return e
}

// Status reads the stored status of a record regardless of filters.
func Status[T any](t *testing.T, s *store.Store, id uint) models.Status {
	t.Helper()
	var row struct{ Status models.Status }
	require.NoError(t, s.DB().Model(new(T)).Select("status").Where("id = ?", id).Scan(&row).Error)
	return row.Status
}
