package podcasts

import (
	"context"

	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/pkg/pagination"
)

// PodcastInput is the body of a create request
type PodcastInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
	CategoryID  uint   `json:"category_id" binding:"required"`
}

// PodcastPatch is a partial update; nil fields are left untouched.
type PodcastPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	CategoryID  *uint   `json:"category_id"`
}

// SearchRecorder stores a requester's search term
type SearchRecorder interface {
	RecordSearch(ctx context.Context, userID uint, term string) error
}

// PodcastService defines the business logic interface for podcast operations
type PodcastService interface {
	// Authoring
	Create(ctx context.Context, requesterID uint, in PodcastInput) (models.PodcastView, error)
	Update(ctx context.Context, id, requesterID uint, patch PodcastPatch) (models.PodcastView, error)
	Delete(ctx context.Context, id, requesterID uint) error
	DeleteEpisodes(ctx context.Context, id, requesterID uint) error

	// Reads
	Get(ctx context.Context, id, requesterID uint) (models.PodcastView, error)
	Search(ctx context.Context, term string, p *pagination.Params, requesterID uint) (pagination.Result[models.PodcastView], error)

	// Subscriptions
	Subscribe(ctx context.Context, userID, podcastID uint) ([]models.PodcastView, error)
	Unsubscribe(ctx context.Context, userID, podcastID uint) ([]models.PodcastView, error)
	Subscriptions(ctx context.Context, userID uint, p *pagination.Params) (pagination.Result[models.PodcastView], error)
}
