// Package categories manages the podcast category list.
package categories

import (
	"context"
	"strings"

	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/internal/store"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
)

// CategoryService defines category operations
type CategoryService interface {
	List(ctx context.Context) ([]models.Category, error)
	Create(ctx context.Context, name string) (*models.Category, error)
}

type Service struct {
	store *store.Store
}

func NewService(s *store.Store) CategoryService {
	return &Service{store: s}
}

// List returns ACTIVE categories by name
func (s *Service) List(ctx context.Context) ([]models.Category, error) {
	categories, err := s.store.Categories.List(ctx)
	if err != nil {
		return nil, err
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

// Create adds a category; names are unique.
func (s *Service) Create(ctx context.Context, name string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ValidationError("name", "is required")
	}

	c := &models.Category{Name: name}
	if err := s.store.Categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
