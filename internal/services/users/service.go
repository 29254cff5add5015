// Package users manages accounts, creator channels and search history.
package users

import (
	"context"
	"net/mail"
	"strings"

	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/internal/services/aggregation"
	"github.com/killallgit/podcast-api/internal/services/search"
	"github.com/killallgit/podcast-api/internal/store"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
	"github.com/killallgit/podcast-api/pkg/pagination"
	"github.com/sirupsen/logrus"
)

type Service struct {
	store        *store.Store
	engine       *aggregation.Engine
	historyLimit int
	logger       *logrus.Logger
}

// NewService builds the user service. historyLimit caps the stored search
// history; zero keeps every term.
func NewService(s *store.Store, engine *aggregation.Engine, historyLimit int, logger *logrus.Logger) UserService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{store: s, engine: engine, historyLimit: historyLimit, logger: logger}
}

func (s *Service) CreateUser(ctx context.Context, email, name string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, apperrors.ValidationError("email", "not a valid address")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.ValidationError("name", "is required")
	}

	if _, err := s.store.Users.FindByEmail(ctx, email); err == nil {
		return nil, apperrors.Conflict(string(models.KindUser), "email already registered")
	} else if !apperrors.Is(err, apperrors.ErrCodeNotFound) {
		return nil, err
	}

	u := models.NewUser(email, name)
	if err := s.store.Users.Create(ctx, u); err != nil {
		return nil, err
	}

	s.logger.WithField("user_id", u.ID).Info("created user")
	return u, nil
}

func (s *Service) Profile(ctx context.Context, userID uint) (models.UserProfile, error) {
	u, err := s.store.Users.FindActiveByID(ctx, userID)
	if err != nil {
		return models.UserProfile{}, err
	}
	return u.Profile(), nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (models.UserProfile, error) {
	fields := make(map[string]any)
	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return models.UserProfile{}, apperrors.ValidationError("name", "cannot be empty")
		}
		fields["name"] = name
	}
	if update.Avatar != nil {
		fields["avatar"] = strings.TrimSpace(*update.Avatar)
	}
	if update.Birthday != nil {
		fields["birthday"] = *update.Birthday
	}

	u, err := s.store.Users.UpdateFields(ctx, userID, fields)
	if err != nil {
		return models.UserProfile{}, err
	}
	return u.Profile(), nil
}

// CreateChannel turns a user into a creator. A user can own one channel.
func (s *Service) CreateChannel(ctx context.Context, userID uint, name string) (models.UserProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.UserProfile{}, apperrors.ValidationError("channel_name", "is required")
	}

	u, err := s.store.Users.FindActiveByID(ctx, userID)
	if err != nil {
		return models.UserProfile{}, err
	}
	if u.IsCreator {
		return models.UserProfile{}, apperrors.Conflict("channel", "user already has a channel")
	}

	u, err = s.store.Users.UpdateFields(ctx, userID, map[string]any{
		"is_creator":   true,
		"channel_name": name,
	})
	if err != nil {
		return models.UserProfile{}, err
	}

	s.logger.WithFields(logrus.Fields{"user_id": userID, "channel": name}).Info("created channel")
	return u.Profile(), nil
}

func (s *Service) UpdateChannel(ctx context.Context, userID uint, name string) (models.UserProfile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.UserProfile{}, apperrors.ValidationError("channel_name", "is required")
	}

	u, err := s.store.Users.FindActiveByID(ctx, userID)
	if err != nil {
		return models.UserProfile{}, err
	}
	if !u.IsCreator {
		return models.UserProfile{}, apperrors.Forbidden("channel", userID)
	}

	u, err = s.store.Users.UpdateFields(ctx, userID, map[string]any{"channel_name": name})
	if err != nil {
		return models.UserProfile{}, err
	}
	return u.Profile(), nil
}

// Channel returns a creator and their podcasts, flagged for the requester.
func (s *Service) Channel(ctx context.Context, channelUserID, requesterID uint) (models.ChannelView, error) {
	u, err := s.store.Users.FindActiveByID(ctx, channelUserID)
	if err != nil {
		return models.ChannelView{}, err
	}
	if !u.IsCreator {
		return models.ChannelView{}, apperrors.NotFound("channel", channelUserID)
	}

	podcasts, err := s.store.Podcasts.ListByAuthor(ctx, u.ID)
	if err != nil {
		return models.ChannelView{}, err
	}
	views, err := s.engine.PodcastViews(ctx, podcasts, requesterID)
	if err != nil {
		return models.ChannelView{}, err
	}
	return models.ChannelView{UserSummary: u.Summary(), Podcasts: views}, nil
}

func (s *Service) SearchCreators(ctx context.Context, term string, p *pagination.Params, requesterID uint) (pagination.Result[models.UserSummary], error) {
	if err := s.RecordSearch(ctx, requesterID, term); err != nil {
		return pagination.Result[models.UserSummary]{}, err
	}

	query := search.Query(term)
	candidates, err := s.store.Users.SearchCreators(ctx, query)
	if err != nil {
		return pagination.Result[models.UserSummary]{}, err
	}

	res := search.Page(candidates, query, func(u models.User) []search.Field {
		return search.Weighted(u.ChannelName, u.Name)
	}, p)
	return pagination.Map(res, func(u models.User) models.UserSummary { return u.Summary() }), nil
}
