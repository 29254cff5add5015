package store

import (
	"context"

	"github.com/killallgit/podcast-api/internal/models"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
)

// Podcasts persists podcasts
type Podcasts struct {
	*Table[models.Podcast]
}

// ListByAuthor returns the author's ACTIVE podcasts, newest first.
func (r *Podcasts) ListByAuthor(ctx context.Context, authorID uint) ([]models.Podcast, error) {
	var podcasts []models.Podcast
	err := r.db.WithContext(ctx).Scopes(Active).
		Where("author_id = ?", authorID).
		Order("created_at DESC, id DESC").
		Find(&podcasts).Error
	if err != nil {
		return nil, apperrors.DatabaseError("list podcasts", err)
	}
	return podcasts, nil
}

// Search returns podcasts whose name or description matches tokens.
func (r *Podcasts) Search(ctx context.Context, tokens []string) ([]models.Podcast, error) {
	return r.SearchCandidates(ctx, tokens)
}
