// Package podcasts implements podcast authoring, reads, search and
// subscriptions.
package podcasts

import (
	"context"
	"strings"

	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/internal/services/aggregation"
	"github.com/killallgit/podcast-api/internal/services/cascade"
	"github.com/killallgit/podcast-api/internal/services/membership"
	"github.com/killallgit/podcast-api/internal/services/search"
	"github.com/killallgit/podcast-api/internal/store"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
	"github.com/killallgit/podcast-api/pkg/pagination"
	"github.com/sirupsen/logrus"
)

type Service struct {
	store   *store.Store
	engine  *aggregation.Engine
	members *membership.Service
	cascade *cascade.Coordinator
	history SearchRecorder
	logger  *logrus.Logger
}

func NewService(
	s *store.Store,
	engine *aggregation.Engine,
	members *membership.Service,
	coordinator *cascade.Coordinator,
	history SearchRecorder,
	logger *logrus.Logger,
) PodcastService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{
		store:   s,
		engine:  engine,
		members: members,
		cascade: coordinator,
		history: history,
		logger:  logger,
	}
}

func (s *Service) category(ctx context.Context, id uint) error {
	if _, err := s.store.Categories.FindActiveByID(ctx, id); err != nil {
		if apperrors.Is(err, apperrors.ErrCodeNotFound) {
			return apperrors.ValidationError("category_id", "category does not exist")
		}
		return err
	}
	return nil
}

func (s *Service) owned(ctx context.Context, id, requesterID uint) (*models.Podcast, error) {
	podcast, err := s.store.Podcasts.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if podcast.AuthorID != requesterID {
		return nil, apperrors.Forbidden(string(models.KindPodcast), id)
	}
	return podcast, nil
}

// Create stores a podcast authored by the requester, who must be a creator.
func (s *Service) Create(ctx context.Context, requesterID uint, in PodcastInput) (models.PodcastView, error) {
	author, err := s.store.Users.FindActiveByID(ctx, requesterID)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrCodeNotFound) {
			return models.PodcastView{}, apperrors.Forbidden(string(models.KindPodcast), 0)
		}
		return models.PodcastView{}, err
	}
	if !author.IsCreator {
		return models.PodcastView{}, apperrors.Forbidden(string(models.KindPodcast), 0).
			WithDetail("reason", "requester has no channel")
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.PodcastView{}, apperrors.ValidationError("name", "is required")
	}
	if err := s.category(ctx, in.CategoryID); err != nil {
		return models.PodcastView{}, err
	}

	podcast := &models.Podcast{
		Name:        name,
		Description: in.Description,
		Image:       in.Image,
		AuthorID:    author.ID,
		CategoryID:  in.CategoryID,
	}
	if err := s.store.Podcasts.Create(ctx, podcast); err != nil {
		return models.PodcastView{}, err
	}

	s.logger.WithFields(logrus.Fields{"podcast_id": podcast.ID, "user_id": author.ID}).Info("created podcast")
	return s.engine.PodcastDetail(ctx, podcast, requesterID)
}

// Update patches a podcast. The author never changes; a new category must
// resolve.
func (s *Service) Update(ctx context.Context, id, requesterID uint, patch PodcastPatch) (models.PodcastView, error) {
	if _, err := s.owned(ctx, id, requesterID); err != nil {
		return models.PodcastView{}, err
	}

	fields := make(map[string]any)
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return models.PodcastView{}, apperrors.ValidationError("name", "cannot be empty")
		}
		fields["name"] = name
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Image != nil {
		fields["image"] = *patch.Image
	}
	if patch.CategoryID != nil {
		if err := s.category(ctx, *patch.CategoryID); err != nil {
			return models.PodcastView{}, err
		}
		fields["category_id"] = *patch.CategoryID
	}

	podcast, err := s.store.Podcasts.UpdateFields(ctx, id, fields)
	if err != nil {
		return models.PodcastView{}, err
	}
	return s.engine.PodcastDetail(ctx, podcast, requesterID)
}

func (s *Service) Delete(ctx context.Context, id, requesterID uint) error {
	return s.cascade.DeletePodcast(ctx, id, requesterID)
}

func (s *Service) DeleteEpisodes(ctx context.Context, id, requesterID uint) error {
	return s.cascade.DeleteEpisodesOfPodcast(ctx, id, requesterID)
}

// Get returns the podcast with its episodes and aggregates
func (s *Service) Get(ctx context.Context, id, requesterID uint) (models.PodcastView, error) {
	podcast, err := s.store.Podcasts.FindActiveByID(ctx, id)
	if err != nil {
		return models.PodcastView{}, err
	}
	return s.engine.PodcastDetail(ctx, podcast, requesterID)
}

// Search ranks ACTIVE podcasts by name and description and records the term
// in the requester's history.
func (s *Service) Search(ctx context.Context, term string, p *pagination.Params, requesterID uint) (pagination.Result[models.PodcastView], error) {
	if err := s.history.RecordSearch(ctx, requesterID, term); err != nil {
		return pagination.Result[models.PodcastView]{}, err
	}

	query := search.Query(term)
	candidates, err := s.store.Podcasts.Search(ctx, query)
	if err != nil {
		return pagination.Result[models.PodcastView]{}, err
	}

	res := search.Page(candidates, query, func(p models.Podcast) []search.Field {
		return search.Weighted(p.Name, p.Description)
	}, p)

	views, err := s.engine.PodcastViews(ctx, res.Items, requesterID)
	if err != nil {
		return pagination.Result[models.PodcastView]{}, err
	}
	return pagination.Result[models.PodcastView]{Items: views, Info: res.Info}, nil
}

// Subscribe adds the podcast to the user's subscriptions. Authors cannot
// subscribe to their own podcasts.
func (s *Service) Subscribe(ctx context.Context, userID, podcastID uint) ([]models.PodcastView, error) {
	podcast, err := s.store.Podcasts.FindActiveByID(ctx, podcastID)
	if err != nil {
		return nil, err
	}
	if podcast.AuthorID == userID {
		return nil, apperrors.Conflict(string(models.SetSubscribed), "cannot subscribe to own podcast")
	}
	return s.members.Subscribe(ctx, userID, podcastID)
}

func (s *Service) Unsubscribe(ctx context.Context, userID, podcastID uint) ([]models.PodcastView, error) {
	return s.members.Unsubscribe(ctx, userID, podcastID)
}

// Subscriptions lists subscribed podcasts, most recent first
func (s *Service) Subscriptions(ctx context.Context, userID uint, p *pagination.Params) (pagination.Result[models.PodcastView], error) {
	return s.members.Podcasts(ctx, userID, p)
}
