package store

import (
	"context"
	"errors"

	"github.com/killallgit/podcast-api/internal/models"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Users persists accounts and their membership sets
type Users struct {
	*Table[models.User]
}

// FindByEmail returns the ACTIVE user with the given email
func (r *Users) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).Scopes(Active).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(string(models.KindUser), email)
		}
		return nil, apperrors.DatabaseError("find user", err)
	}
	return &user, nil
}

// SaveSet persists one membership set as a single-column write.
func (r *Users) SaveSet(ctx context.Context, userID uint, set models.SetName, ids []uint) error {
	if !set.Valid() {
		return apperrors.ValidationError("set", "unknown membership set")
	}
	value := datatypes.JSONSlice[uint](ids)
	if value == nil {
		value = datatypes.JSONSlice[uint]{}
	}
	return r.SetColumn(ctx, userID, set.Column(), value)
}

// SaveSearchHistory persists the search history column
func (r *Users) SaveSearchHistory(ctx context.Context, userID uint, history []string) error {
	value := datatypes.JSONSlice[string](history)
	if value == nil {
		value = datatypes.JSONSlice[string]{}
	}
	return r.SetColumn(ctx, userID, "search_history", value)
}

// CreatorScope limits a query to users with a channel
func CreatorScope(db *gorm.DB) *gorm.DB {
	return db.Where("is_creator = ?", true)
}

// SearchCreators returns creator accounts whose name or channel matches tokens.
func (r *Users) SearchCreators(ctx context.Context, tokens []string) ([]models.User, error) {
	return r.SearchCandidates(ctx, tokens, CreatorScope)
}
