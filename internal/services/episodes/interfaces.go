package episodes

import (
	"context"

	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/pkg/pagination"
)

// FeedLimit is the size of the newest and most-listened feeds
const FeedLimit = 10

// EpisodeInput is the body of a create request
type EpisodeInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Image       string `json:"image"`
	Href        string `json:"href" binding:"required"`
	PodcastID   uint   `json:"podcast_id" binding:"required"`
}

// EpisodePatch is a partial update; nil fields are left untouched.
type EpisodePatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Duration    *int    `json:"duration"`
	Image       *string `json:"image"`
	Href        *string `json:"href"`
	PodcastID   *uint   `json:"podcast_id"`
}

// SearchRecorder stores a requester's search term
type SearchRecorder interface {
	RecordSearch(ctx context.Context, userID uint, term string) error
}

// EpisodeService defines the business logic interface for episode operations
type EpisodeService interface {
	// Feeds
	Newest(ctx context.Context, requesterID uint) ([]models.EpisodeView, error)
	MostListened(ctx context.Context, requesterID uint) ([]models.EpisodeView, error)

	// Authoring
	Create(ctx context.Context, requesterID uint, in EpisodeInput) (models.EpisodeView, error)
	Update(ctx context.Context, id, requesterID uint, patch EpisodePatch) (models.EpisodeView, error)
	Delete(ctx context.Context, id, requesterID uint) error

	// Reads
	Get(ctx context.Context, id, requesterID uint) (models.EpisodeView, error)
	Search(ctx context.Context, term string, p *pagination.Params, requesterID uint) (pagination.Result[models.EpisodeView], error)
	Listen(ctx context.Context, id, userID uint) (models.EpisodeView, error)

	// Favorites
	Favorites(ctx context.Context, userID uint, p *pagination.Params) (pagination.Result[models.EpisodeView], error)
	AddFavorite(ctx context.Context, userID, episodeID uint) ([]models.EpisodeView, error)
	RemoveFavorite(ctx context.Context, userID, episodeID uint) ([]models.EpisodeView, error)
	ClearFavorites(ctx context.Context, userID uint) ([]models.EpisodeView, error)

	// Listen history
	Listened(ctx context.Context, userID uint, p *pagination.Params) (pagination.Result[models.EpisodeView], error)
	RemoveListened(ctx context.Context, userID, episodeID uint) ([]models.EpisodeView, error)
	ClearListened(ctx context.Context, userID uint) ([]models.EpisodeView, error)
}
