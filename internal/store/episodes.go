package store

import (
	"context"

	"github.com/killallgit/podcast-api/internal/models"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
	"gorm.io/gorm"
)

// Episodes persists episodes and their listen counters
type Episodes struct {
	*Table[models.Episode]
}

// ListByPodcast returns the ACTIVE episodes of a podcast, newest first.
func (r *Episodes) ListByPodcast(ctx context.Context, podcastID uint) ([]models.Episode, error) {
	var episodes []models.Episode
	err := r.db.WithContext(ctx).Scopes(Active).
		Where("podcast_id = ?", podcastID).
		Order("created_at DESC, id DESC").
		Find(&episodes).Error
	if err != nil {
		return nil, apperrors.DatabaseError("list episodes", err)
	}
	return episodes, nil
}

// SumListening is the total num_listening over ACTIVE episodes of a podcast.
func (r *Episodes) SumListening(ctx context.Context, podcastID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Episode{}).Scopes(Active).
		Where("podcast_id = ?", podcastID).
		Select("COALESCE(SUM(num_listening), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, apperrors.DatabaseError("sum listening", err)
	}
	return total, nil
}

// SumListeningByPodcast computes SumListening for several podcasts at once.
// Podcasts without active episodes map to zero.
func (r *Episodes) SumListeningByPodcast(ctx context.Context, podcastIDs []uint) (map[uint]int64, error) {
	out := make(map[uint]int64, len(podcastIDs))
	if len(podcastIDs) == 0 {
		return out, nil
	}

	var rows []struct {
		PodcastID uint
		Total     int64
	}
	err := r.db.WithContext(ctx).Model(&models.Episode{}).Scopes(Active).
		Where("podcast_id IN ?", podcastIDs).
		Select("podcast_id, COALESCE(SUM(num_listening), 0) AS total").
		Group("podcast_id").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.DatabaseError("sum listening", err)
	}

	for _, id := range podcastIDs {
		out[id] = 0
	}
	for _, row := range rows {
		out[row.PodcastID] = row.Total
	}
	return out, nil
}

// IncrementListening atomically adds one listen to an ACTIVE episode.
func (r *Episodes) IncrementListening(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Model(&models.Episode{}).Scopes(Active).
		Where("id = ?", id).
		UpdateColumn("num_listening", gorm.Expr("num_listening + ?", 1))
	if res.Error != nil {
		return apperrors.DatabaseError("increment listening", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound(string(models.KindEpisode), id)
	}
	return nil
}

// Newest returns the most recently created ACTIVE episodes
func (r *Episodes) Newest(ctx context.Context, limit int) ([]models.Episode, error) {
	return r.top(ctx, "created_at DESC, id DESC", limit)
}

// MostListened returns the ACTIVE episodes with the highest num_listening
func (r *Episodes) MostListened(ctx context.Context, limit int) ([]models.Episode, error) {
	return r.top(ctx, "num_listening DESC, id ASC", limit)
}

func (r *Episodes) top(ctx context.Context, order string, limit int) ([]models.Episode, error) {
	var episodes []models.Episode
	err := r.db.WithContext(ctx).Scopes(Active).Order(order).Limit(limit).Find(&episodes).Error
	if err != nil {
		return nil, apperrors.DatabaseError("list episodes", err)
	}
	return episodes, nil
}

// SoftDeleteByPodcast marks every ACTIVE episode of a podcast DELETED and
// reports how many changed.
func (r *Episodes) SoftDeleteByPodcast(ctx context.Context, podcastID uint) (int64, error) {
	res := r.db.WithContext(ctx).Model(&models.Episode{}).Scopes(Active).
		Where("podcast_id = ?", podcastID).
		Update("status", models.StatusDeleted)
	if res.Error != nil {
		return 0, apperrors.DatabaseError("delete episodes", res.Error)
	}
	return res.RowsAffected, nil
}

// Search returns episodes whose name or description matches tokens.
func (r *Episodes) Search(ctx context.Context, tokens []string) ([]models.Episode, error) {
	return r.SearchCandidates(ctx, tokens)
}
