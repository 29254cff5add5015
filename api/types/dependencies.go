package types

import (
	"github.com/killallgit/podcast-api/internal/database"
	"github.com/killallgit/podcast-api/internal/services/auth"
	"github.com/killallgit/podcast-api/internal/services/categories"
	"github.com/killallgit/podcast-api/internal/services/episodes"
	"github.com/killallgit/podcast-api/internal/services/playlists"
	"github.com/killallgit/podcast-api/internal/services/podcasts"
	"github.com/killallgit/podcast-api/internal/services/users"
	"github.com/killallgit/podcast-api/pkg/pagination"
	"github.com/sirupsen/logrus"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB     *database.DB
	Logger *logrus.Logger
	Auth   *auth.Service

	UserService     users.UserService
	CategoryService categories.CategoryService
	PodcastService  podcasts.PodcastService
	EpisodeService  episodes.EpisodeService
	PlaylistService playlists.PlaylistService

	// DefaultLimit is the page size used when a request asks for
	// pagination without a valid limit.
	DefaultLimit int
}

// PageLimit returns the configured default page size
func (d *Dependencies) PageLimit() int {
	if d == nil || d.DefaultLimit < 1 {
		return pagination.DefaultLimit
	}
	return d.DefaultLimit
}
