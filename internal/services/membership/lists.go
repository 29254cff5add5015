package membership

import (
	"context"

	"github.com/killallgit/podcast-api/internal/models"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
	"github.com/killallgit/podcast-api/pkg/pagination"
)

func page[T any](items []T, p *pagination.Params, total int) pagination.Result[T] {
	if p == nil {
		return pagination.Result[T]{Items: items}
	}
	return pagination.Result[T]{Items: items, Info: pagination.NewInfo(p, total)}
}

func episodeSet(set models.SetName) error {
	if !set.Valid() || set.Target() != models.KindEpisode {
		return apperrors.ValidationError("set", "not an episode set")
	}
	return nil
}

// Episodes lists an episode set hydrated for the user; soft-deleted
// episodes are left out.
func (s *Service) Episodes(ctx context.Context, userID uint, set models.SetName, p *pagination.Params) (pagination.Result[models.EpisodeView], error) {
	if err := episodeSet(set); err != nil {
		return pagination.Result[models.EpisodeView]{}, err
	}
	ids, total, err := s.Members(ctx, userID, set, p)
	if err != nil {
		return pagination.Result[models.EpisodeView]{}, err
	}

	found, err := s.store.Episodes.FindActiveByIDs(ctx, ids)
	if err != nil {
		return pagination.Result[models.EpisodeView]{}, err
	}
	episodes := make([]models.Episode, 0, len(ids))
	for _, id := range ids {
		if ep, ok := found[id]; ok {
			episodes = append(episodes, *ep)
		}
	}

	views, err := s.engine.EpisodeViews(ctx, episodes, userID)
	if err != nil {
		return pagination.Result[models.EpisodeView]{}, err
	}
	return page(views, p, total), nil
}

// Podcasts lists the user's subscriptions hydrated with aggregates.
func (s *Service) Podcasts(ctx context.Context, userID uint, p *pagination.Params) (pagination.Result[models.PodcastView], error) {
	ids, total, err := s.Members(ctx, userID, models.SetSubscribed, p)
	if err != nil {
		return pagination.Result[models.PodcastView]{}, err
	}

	found, err := s.store.Podcasts.FindActiveByIDs(ctx, ids)
	if err != nil {
		return pagination.Result[models.PodcastView]{}, err
	}
	podcasts := make([]models.Podcast, 0, len(ids))
	for _, id := range ids {
		if pod, ok := found[id]; ok {
			podcasts = append(podcasts, *pod)
		}
	}

	views, err := s.engine.PodcastViews(ctx, podcasts, userID)
	if err != nil {
		return pagination.Result[models.PodcastView]{}, err
	}
	return page(views, p, total), nil
}

// AddEpisode adds to an episode set and returns the hydrated set.
func (s *Service) AddEpisode(ctx context.Context, userID uint, set models.SetName, episodeID uint) ([]models.EpisodeView, error) {
	if err := episodeSet(set); err != nil {
		return nil, err
	}
	if err := s.Add(ctx, userID, set, episodeID); err != nil {
		return nil, err
	}
	res, err := s.Episodes(ctx, userID, set, nil)
	return res.Items, err
}

// RemoveEpisode removes from an episode set and returns what remains.
func (s *Service) RemoveEpisode(ctx context.Context, userID uint, set models.SetName, episodeID uint) ([]models.EpisodeView, error) {
	if err := episodeSet(set); err != nil {
		return nil, err
	}
	if err := s.Remove(ctx, userID, set, episodeID); err != nil {
		return nil, err
	}
	res, err := s.Episodes(ctx, userID, set, nil)
	return res.Items, err
}

// ClearEpisodes empties an episode set
func (s *Service) ClearEpisodes(ctx context.Context, userID uint, set models.SetName) ([]models.EpisodeView, error) {
	if err := episodeSet(set); err != nil {
		return nil, err
	}
	if err := s.RemoveAll(ctx, userID, set); err != nil {
		return nil, err
	}
	return []models.EpisodeView{}, nil
}

// Subscribe adds a podcast subscription and returns all subscriptions.
func (s *Service) Subscribe(ctx context.Context, userID, podcastID uint) ([]models.PodcastView, error) {
	if err := s.Add(ctx, userID, models.SetSubscribed, podcastID); err != nil {
		return nil, err
	}
	res, err := s.Podcasts(ctx, userID, nil)
	return res.Items, err
}

// Unsubscribe removes a podcast subscription and returns the rest.
func (s *Service) Unsubscribe(ctx context.Context, userID, podcastID uint) ([]models.PodcastView, error) {
	if err := s.Remove(ctx, userID, models.SetSubscribed, podcastID); err != nil {
		return nil, err
	}
	res, err := s.Podcasts(ctx, userID, nil)
	return res.Items, err
}
