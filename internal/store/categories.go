package store

import (
	"context"

	"github.com/killallgit/podcast-api/internal/models"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
)

// Categories persists podcast categories
type Categories struct {
	*Table[models.Category]
}

// List returns ACTIVE categories ordered by name
func (r *Categories) List(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Scopes(Active).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.DatabaseError("list categories", err)
	}
	return categories, nil
}
