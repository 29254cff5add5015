// Package playlists manages user playlists. Every operation is limited to
// the playlist's owner.
package playlists

import (
	"context"
	"slices"
	"strings"

	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/internal/services/aggregation"
	"github.com/killallgit/podcast-api/internal/store"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
)

// PlaylistService defines playlist operations
type PlaylistService interface {
	Create(ctx context.Context, userID uint, name string) (models.PlaylistView, error)
	Rename(ctx context.Context, id, userID uint, name string) (models.PlaylistView, error)
	List(ctx context.Context, userID uint) ([]models.PlaylistSummary, error)
	Get(ctx context.Context, id, userID uint) (models.PlaylistView, error)
	AddEpisode(ctx context.Context, id, userID, episodeID uint) (models.PlaylistView, error)
	RemoveEpisode(ctx context.Context, id, userID, episodeID uint) (models.PlaylistView, error)
	RemoveAllEpisodes(ctx context.Context, id, userID uint) (models.PlaylistView, error)
	Delete(ctx context.Context, id, userID uint) error
}

type Service struct {
	store  *store.Store
	engine *aggregation.Engine
	logger *logrus.Logger
}

func NewService(s *store.Store, engine *aggregation.Engine, logger *logrus.Logger) PlaylistService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{store: s, engine: engine, logger: logger}
}

func (s *Service) owned(ctx context.Context, id, userID uint) (*models.Playlist, error) {
	pl, err := s.store.Playlists.FindActiveByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pl.UserID != userID {
		return nil, apperrors.Forbidden(string(models.KindPlaylist), id)
	}
	return pl, nil
}

// checkName rejects blank names and names the user already uses. Names are
// stored and compared exactly as given, whitespace included.
func (s *Service) checkName(ctx context.Context, userID uint, name string, excludeID uint) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", apperrors.ValidationError("name", "is required")
	}
	exists, err := s.store.Playlists.ExistsByName(ctx, userID, name, excludeID)
	if err != nil {
		return "", err
	}
	if exists {
		return "", apperrors.Conflict(string(models.KindPlaylist), "name already exists")
	}
	return name, nil
}

func (s *Service) Create(ctx context.Context, userID uint, name string) (models.PlaylistView, error) {
	if _, err := s.store.Users.FindActiveByID(ctx, userID); err != nil {
		return models.PlaylistView{}, err
	}
	name, err := s.checkName(ctx, userID, name, 0)
	if err != nil {
		return models.PlaylistView{}, err
	}

	pl := &models.Playlist{Name: name, UserID: userID, Episodes: datatypes.JSONSlice[uint]{}}
	if err := s.store.Playlists.Create(ctx, pl); err != nil {
		return models.PlaylistView{}, err
	}

	s.logger.WithFields(logrus.Fields{"playlist_id": pl.ID, "user_id": userID}).Info("created playlist")
	return s.view(ctx, pl, userID)
}

func (s *Service) Rename(ctx context.Context, id, userID uint, name string) (models.PlaylistView, error) {
	if _, err := s.owned(ctx, id, userID); err != nil {
		return models.PlaylistView{}, err
	}
	name, err := s.checkName(ctx, userID, name, id)
	if err != nil {
		return models.PlaylistView{}, err
	}

	pl, err := s.store.Playlists.UpdateFields(ctx, id, map[string]any{"name": name})
	if err != nil {
		return models.PlaylistView{}, err
	}
	return s.view(ctx, pl, userID)
}

// List returns the user's playlists without their episodes
func (s *Service) List(ctx context.Context, userID uint) ([]models.PlaylistSummary, error) {
	if _, err := s.store.Users.FindActiveByID(ctx, userID); err != nil {
		return nil, err
	}
	playlists, err := s.store.Playlists.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]models.PlaylistSummary, len(playlists))
	for i := range playlists {
		out[i] = playlists[i].Summary()
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id, userID uint) (models.PlaylistView, error) {
	pl, err := s.owned(ctx, id, userID)
	if err != nil {
		return models.PlaylistView{}, err
	}
	return s.view(ctx, pl, userID)
}

// AddEpisode appends an ACTIVE episode; an episode already in the playlist
// is a Conflict.
func (s *Service) AddEpisode(ctx context.Context, id, userID, episodeID uint) (models.PlaylistView, error) {
	pl, err := s.owned(ctx, id, userID)
	if err != nil {
		return models.PlaylistView{}, err
	}
	if _, err := s.store.Episodes.FindActiveByID(ctx, episodeID); err != nil {
		return models.PlaylistView{}, err
	}
	if slices.Contains(pl.Episodes, episodeID) {
		return models.PlaylistView{}, apperrors.Conflict(string(models.KindPlaylist), "episode already in playlist")
	}

	pl.Episodes = append(pl.Episodes, episodeID)
	if err := s.store.Playlists.SaveEpisodes(ctx, id, pl.Episodes); err != nil {
		return models.PlaylistView{}, err
	}
	return s.view(ctx, pl, userID)
}

func (s *Service) RemoveEpisode(ctx context.Context, id, userID, episodeID uint) (models.PlaylistView, error) {
	pl, err := s.owned(ctx, id, userID)
	if err != nil {
		return models.PlaylistView{}, err
	}
	if !slices.Contains(pl.Episodes, episodeID) {
		return models.PlaylistView{}, apperrors.Conflict(string(models.KindPlaylist), "episode not in playlist")
	}

	pl.Episodes = slices.DeleteFunc(pl.Episodes, func(e uint) bool { return e == episodeID })
	if err := s.store.Playlists.SaveEpisodes(ctx, id, pl.Episodes); err != nil {
		return models.PlaylistView{}, err
	}
	return s.view(ctx, pl, userID)
}

func (s *Service) RemoveAllEpisodes(ctx context.Context, id, userID uint) (models.PlaylistView, error) {
	pl, err := s.owned(ctx, id, userID)
	if err != nil {
		return models.PlaylistView{}, err
	}
	pl.Episodes = datatypes.JSONSlice[uint]{}
	if err := s.store.Playlists.SaveEpisodes(ctx, id, nil); err != nil {
		return models.PlaylistView{}, err
	}
	return s.view(ctx, pl, userID)
}

// Delete soft-deletes the playlist, freeing its name for reuse.
func (s *Service) Delete(ctx context.Context, id, userID uint) error {
	if _, err := s.owned(ctx, id, userID); err != nil {
		return err
	}
	if err := s.store.Playlists.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.WithFields(logrus.Fields{"playlist_id": id, "user_id": userID}).Info("deleted playlist")
	return nil
}

// view hydrates the playlist's ACTIVE episodes in playlist order.
func (s *Service) view(ctx context.Context, pl *models.Playlist, userID uint) (models.PlaylistView, error) {
	found, err := s.store.Episodes.FindActiveByIDs(ctx, pl.Episodes)
	if err != nil {
		return models.PlaylistView{}, err
	}
	episodes := make([]models.Episode, 0, len(pl.Episodes))
	for _, id := range pl.Episodes {
		if ep, ok := found[id]; ok {
			episodes = append(episodes, *ep)
		}
	}

	items, err := s.engine.EpisodeViews(ctx, episodes, userID)
	if err != nil {
		return models.PlaylistView{}, err
	}
	return models.PlaylistView{
		ID:        pl.ID,
		Name:      pl.Name,
		Episodes:  models.PlaylistEpisodes{Items: items, Count: len(items)},
		CreatedAt: pl.CreatedAt,
		UpdatedAt: pl.UpdatedAt,
	}, nil
}
