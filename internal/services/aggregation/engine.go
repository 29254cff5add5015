// Package aggregation computes read-time values that are never stored:
// podcast view counts and the requester's subscribed, favorite and
// listened flags. It also populates references so a view is complete in
// one pass.
package aggregation

import (
	"context"

	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/internal/store"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
)

type Engine struct {
	store *store.Store
}

func New(s *store.Store) *Engine {
	return &Engine{store: s}
}

// Requester loads the user flags are computed against. A zero id or a
// missing user yields nil, which makes every flag false.
func (e *Engine) Requester(ctx context.Context, requesterID uint) (*models.User, error) {
	if requesterID == 0 {
		return nil, nil
	}
	u, err := e.store.Users.FindActiveByID(ctx, requesterID)
	if apperrors.Is(err, apperrors.ErrCodeNotFound) {
		return nil, nil
	}
	return u, err
}

// PodcastViewCount sums num_listening over the podcast's ACTIVE episodes.
func (e *Engine) PodcastViewCount(ctx context.Context, podcastID uint) (int64, error) {
	return e.store.Episodes.SumListening(ctx, podcastID)
}

// IsSubscribed reports whether the requester subscribes to the podcast
func (e *Engine) IsSubscribed(ctx context.Context, podcastID, requesterID uint) (bool, error) {
	return e.has(ctx, requesterID, models.SetSubscribed, podcastID)
}

// IsFavorite reports whether the episode is in the requester's favorites
func (e *Engine) IsFavorite(ctx context.Context, episodeID, requesterID uint) (bool, error) {
	return e.has(ctx, requesterID, models.SetFavorites, episodeID)
}

// IsListened reports whether the requester has listened to the episode
func (e *Engine) IsListened(ctx context.Context, episodeID, requesterID uint) (bool, error) {
	return e.has(ctx, requesterID, models.SetListened, episodeID)
}

func (e *Engine) has(ctx context.Context, requesterID uint, set models.SetName, id uint) (bool, error) {
	u, err := e.Requester(ctx, requesterID)
	if err != nil || u == nil {
		return false, err
	}
	return u.Has(set, id), nil
}

func flag(u *models.User, set models.SetName, id uint) bool {
	return u != nil && u.Has(set, id)
}
