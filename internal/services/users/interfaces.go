package users

import (
	"context"
	"time"

	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/pkg/pagination"
)

// ProfileUpdate is a patch; nil fields are left untouched.
type ProfileUpdate struct {
	Name     *string    `json:"name"`
	Avatar   *string    `json:"avatar"`
	Birthday *time.Time `json:"birthday"`
}

// UserService defines account, channel and search history operations
type UserService interface {
	// Accounts
	CreateUser(ctx context.Context, email, name string) (*models.User, error)
	Profile(ctx context.Context, userID uint) (models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (models.UserProfile, error)

	// Channels
	CreateChannel(ctx context.Context, userID uint, name string) (models.UserProfile, error)
	UpdateChannel(ctx context.Context, userID uint, name string) (models.UserProfile, error)
	Channel(ctx context.Context, channelUserID, requesterID uint) (models.ChannelView, error)
	SearchCreators(ctx context.Context, term string, p *pagination.Params, requesterID uint) (pagination.Result[models.UserSummary], error)

	// Search history
	RecordSearch(ctx context.Context, userID uint, term string) error
	SearchHistory(ctx context.Context, userID uint) ([]string, error)
	RemoveSearchTerm(ctx context.Context, userID uint, term string) ([]string, error)
	ClearSearchHistory(ctx context.Context, userID uint) error
}
