package episodes

import (
	"context"

	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/pkg/pagination"
)

func (s *Service) Favorites(ctx context.Context, userID uint, p *pagination.Params) (pagination.Result[models.EpisodeView], error) {
	return s.members.Episodes(ctx, userID, models.SetFavorites, p)
}

func (s *Service) AddFavorite(ctx context.Context, userID, episodeID uint) ([]models.EpisodeView, error) {
	return s.members.AddEpisode(ctx, userID, models.SetFavorites, episodeID)
}

func (s *Service) RemoveFavorite(ctx context.Context, userID, episodeID uint) ([]models.EpisodeView, error) {
	return s.members.RemoveEpisode(ctx, userID, models.SetFavorites, episodeID)
}

func (s *Service) ClearFavorites(ctx context.Context, userID uint) ([]models.EpisodeView, error) {
	return s.members.ClearEpisodes(ctx, userID, models.SetFavorites)
}

func (s *Service) Listened(ctx context.Context, userID uint, p *pagination.Params) (pagination.Result[models.EpisodeView], error) {
	return s.members.Episodes(ctx, userID, models.SetListened, p)
}

func (s *Service) RemoveListened(ctx context.Context, userID, episodeID uint) ([]models.EpisodeView, error) {
	return s.members.RemoveEpisode(ctx, userID, models.SetListened, episodeID)
}

func (s *Service) ClearListened(ctx context.Context, userID uint) ([]models.EpisodeView, error) {
	return s.members.ClearEpisodes(ctx, userID, models.SetListened)
}
