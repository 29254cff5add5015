package api

import (
	"github.com/killallgit/podcast-api/api/types"
	"github.com/killallgit/podcast-api/internal/database"
	"github.com/killallgit/podcast-api/internal/services/aggregation"
	"github.com/killallgit/podcast-api/internal/services/auth"
	"github.com/killallgit/podcast-api/internal/services/cascade"
	"github.com/killallgit/podcast-api/internal/services/categories"
	"github.com/killallgit/podcast-api/internal/services/episodes"
	"github.com/killallgit/podcast-api/internal/services/membership"
	"github.com/killallgit/podcast-api/internal/services/playlists"
	"github.com/killallgit/podcast-api/internal/services/podcasts"
	"github.com/killallgit/podcast-api/internal/services/users"
	"github.com/killallgit/podcast-api/internal/store"
	"github.com/killallgit/podcast-api/pkg/config"
	"github.com/sirupsen/logrus"
)

// NewDependencies wires the services over db
func NewDependencies(db *database.DB, cfg *config.Config, authService *auth.Service, logger *logrus.Logger) *types.Dependencies {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	s := store.New(db.DB)
	engine := aggregation.New(s)
	members := membership.NewService(s, engine, logger)
	coordinator := cascade.NewCoordinator(db, s, logger)
	userService := users.NewService(s, engine, cfg.Search.HistoryLimit, logger)

	return &types.Dependencies{
		DB:     db,
		Logger: logger,
		Auth:   authService,

		UserService:     userService,
		CategoryService: categories.NewService(s),
		PodcastService:  podcasts.NewService(s, engine, members, coordinator, userService, logger),
		EpisodeService:  episodes.NewService(db, s, engine, members, coordinator, userService, logger),
		PlaylistService: playlists.NewService(s, engine, logger),

		DefaultLimit: cfg.Pagination.DefaultLimit,
	}
}
