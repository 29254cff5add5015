package store

import (
	"context"
	"errors"

	"github.com/killallgit/podcast-api/internal/models"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Playlists persists user playlists
type Playlists struct {
	*Table[models.Playlist]
}

// ListByUser returns a user's ACTIVE playlists, newest first.
func (r *Playlists) ListByUser(ctx context.Context, userID uint) ([]models.Playlist, error) {
	var playlists []models.Playlist
	err := r.db.WithContext(ctx).Scopes(Active).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&playlists).Error
	if err != nil {
		return nil, apperrors.DatabaseError("list playlists", err)
	}
	return playlists, nil
}

// ExistsByName reports whether the user already has an ACTIVE playlist
// with exactly this name, ignoring excludeID.
func (r *Playlists) ExistsByName(ctx context.Context, userID uint, name string, excludeID uint) (bool, error) {
	var pl models.Playlist
	q := r.db.WithContext(ctx).Scopes(Active).Where("user_id = ? AND name = ?", userID, name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.First(&pl).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, apperrors.DatabaseError("find playlist", err)
	}
	return true, nil
}

// SaveEpisodes persists the playlist's episode list
func (r *Playlists) SaveEpisodes(ctx context.Context, id uint, ids []uint) error {
	value := datatypes.JSONSlice[uint](ids)
	if value == nil {
		value = datatypes.JSONSlice[uint]{}
	}
	return r.SetColumn(ctx, id, "episodes", value)
}
