// Package episodes implements episode authoring, feeds, listening and the
// favorite and listened sets.
package episodes

import (
	"context"
	"strings"

	"github.com/killallgit/podcast-api/internal/database"
	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/internal/services/aggregation"
	"github.com/killallgit/podcast-api/internal/services/cascade"
	"github.com/killallgit/podcast-api/internal/services/membership"
	"github.com/killallgit/podcast-api/internal/services/search"
	"github.com/killallgit/podcast-api/internal/store"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
	"github.com/killallgit/podcast-api/pkg/pagination"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Service struct {
	tx      database.Transactor
	store   *store.Store
	engine  *aggregation.Engine
	members *membership.Service
	cascade *cascade.Coordinator
	history SearchRecorder
	logger  *logrus.Logger
}

func NewService(
	tx database.Transactor,
	s *store.Store,
	engine *aggregation.Engine,
	members *membership.Service,
	coordinator *cascade.Coordinator,
	history SearchRecorder,
	logger *logrus.Logger,
) EpisodeService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{
		tx:      tx,
		store:   s,
		engine:  engine,
		members: members,
		cascade: coordinator,
		history: history,
		logger:  logger,
	}
}

// podcast resolves a podcast reference from a request body
func (s *Service) podcast(ctx context.Context, id uint) (*models.Podcast, error) {
	podcast, err := s.store.Podcasts.FindActiveByID(ctx, id)
	if apperrors.Is(err, apperrors.ErrCodeNotFound) {
		return nil, apperrors.ValidationError("podcast_id", "podcast does not exist")
	}
	return podcast, err
}

func (s *Service) Newest(ctx context.Context, requesterID uint) ([]models.EpisodeView, error) {
	episodes, err := s.store.Episodes.Newest(ctx, FeedLimit)
	if err != nil {
		return nil, err
	}
	return s.engine.EpisodeViews(ctx, episodes, requesterID)
}

func (s *Service) MostListened(ctx context.Context, requesterID uint) ([]models.EpisodeView, error) {
	episodes, err := s.store.Episodes.MostListened(ctx, FeedLimit)
	if err != nil {
		return nil, err
	}
	return s.engine.EpisodeViews(ctx, episodes, requesterID)
}

// Create adds an episode to a podcast the requester authors. Without an
// image the episode uses the podcast's.
func (s *Service) Create(ctx context.Context, requesterID uint, in EpisodeInput) (models.EpisodeView, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return models.EpisodeView{}, apperrors.ValidationError("name", "is required")
	}
	if in.Duration < 0 {
		return models.EpisodeView{}, apperrors.ValidationError("duration", "cannot be negative")
	}

	podcast, err := s.podcast(ctx, in.PodcastID)
	if err != nil {
		return models.EpisodeView{}, err
	}
	if podcast.AuthorID != requesterID {
		return models.EpisodeView{}, apperrors.Forbidden(string(models.KindPodcast), podcast.ID)
	}

	episode := &models.Episode{
		Name:        name,
		Description: in.Description,
		Duration:    in.Duration,
		Image:       in.Image,
		Href:        in.Href,
		PodcastID:   podcast.ID,
	}
	if episode.Image == "" {
		episode.Image = podcast.Image
	}
	if err := s.store.Episodes.Create(ctx, episode); err != nil {
		return models.EpisodeView{}, err
	}

	s.logger.WithFields(logrus.Fields{"episode_id": episode.ID, "podcast_id": podcast.ID}).Info("created episode")
	return s.engine.EpisodeView(ctx, episode, requesterID)
}

// Update patches an episode. It may move to another podcast only if that
// podcast has the same author.
func (s *Service) Update(ctx context.Context, id, requesterID uint, patch EpisodePatch) (models.EpisodeView, error) {
	episode, err := s.store.Episodes.FindActiveByID(ctx, id)
	if err != nil {
		return models.EpisodeView{}, err
	}
	current, err := s.store.Podcasts.FindByID(ctx, episode.PodcastID)
	if err != nil {
		return models.EpisodeView{}, err
	}
	if current.AuthorID != requesterID {
		return models.EpisodeView{}, apperrors.Forbidden(string(models.KindEpisode), id)
	}

	fields := make(map[string]any)
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return models.EpisodeView{}, apperrors.ValidationError("name", "cannot be empty")
		}
		fields["name"] = name
	}
	if patch.Description != nil {
		fields["description"] = *patch.Description
	}
	if patch.Duration != nil {
		if *patch.Duration < 0 {
			return models.EpisodeView{}, apperrors.ValidationError("duration", "cannot be negative")
		}
		fields["duration"] = *patch.Duration
	}
	if patch.Image != nil {
		fields["image"] = *patch.Image
	}
	if patch.Href != nil {
		fields["href"] = *patch.Href
	}
	if patch.PodcastID != nil && *patch.PodcastID != episode.PodcastID {
		target, err := s.podcast(ctx, *patch.PodcastID)
		if err != nil {
			return models.EpisodeView{}, err
		}
		if target.AuthorID != current.AuthorID {
			return models.EpisodeView{}, apperrors.ValidationError("podcast_id", "podcast belongs to another author")
		}
		fields["podcast_id"] = target.ID
	}

	updated, err := s.store.Episodes.UpdateFields(ctx, id, fields)
	if err != nil {
		return models.EpisodeView{}, err
	}
	return s.engine.EpisodeView(ctx, updated, requesterID)
}

func (s *Service) Delete(ctx context.Context, id, requesterID uint) error {
	return s.cascade.DeleteEpisode(ctx, id, requesterID)
}

func (s *Service) Get(ctx context.Context, id, requesterID uint) (models.EpisodeView, error) {
	episode, err := s.store.Episodes.FindActiveByID(ctx, id)
	if err != nil {
		return models.EpisodeView{}, err
	}
	return s.engine.EpisodeView(ctx, episode, requesterID)
}

// Search ranks ACTIVE episodes by name and description and records the term
// in the requester's history.
func (s *Service) Search(ctx context.Context, term string, p *pagination.Params, requesterID uint) (pagination.Result[models.EpisodeView], error) {
	if err := s.history.RecordSearch(ctx, requesterID, term); err != nil {
		return pagination.Result[models.EpisodeView]{}, err
	}

	query := search.Query(term)
	candidates, err := s.store.Episodes.Search(ctx, query)
	if err != nil {
		return pagination.Result[models.EpisodeView]{}, err
	}

	res := search.Page(candidates, query, func(e models.Episode) []search.Field {
		return search.Weighted(e.Name, e.Description)
	}, p)

	views, err := s.engine.EpisodeViews(ctx, res.Items, requesterID)
	if err != nil {
		return pagination.Result[models.EpisodeView]{}, err
	}
	return pagination.Result[models.EpisodeView]{Items: views, Info: res.Info}, nil
}

// Listen counts one play and puts the episode in the listened set if it is
// not there yet. Repeat listens are never a Conflict. The count and the set
// are written in one transaction, so a failed listen changes neither.
func (s *Service) Listen(ctx context.Context, id, userID uint) (models.EpisodeView, error) {
	var added bool
	err := s.tx.Transaction(ctx, func(tx *gorm.DB) error {
		st := s.store.WithTx(tx)
		if _, err := st.Users.FindActiveByID(ctx, userID); err != nil {
			return err
		}
		if err := st.Episodes.IncrementListening(ctx, id); err != nil {
			return err
		}

		var err error
		added, err = s.members.WithStore(st).AddIfAbsent(ctx, userID, models.SetListened, id)
		return err
	})
	if err != nil {
		return models.EpisodeView{}, err
	}

	s.logger.WithFields(logrus.Fields{"episode_id": id, "user_id": userID, "first": added}).Debug("listen")
	return s.Get(ctx, id, userID)
}
