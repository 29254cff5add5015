// Package cascade performs multi-entity soft deletes atomically. Every
// operation checks ownership and runs in one transaction; on any error the
// transaction is rolled back and nothing changes.
package cascade

import (
	"context"

	"github.com/killallgit/podcast-api/internal/database"
	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/internal/store"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type Coordinator struct {
	tx     database.Transactor
	store  *store.Store
	logger *logrus.Logger
}

func NewCoordinator(tx database.Transactor, s *store.Store, logger *logrus.Logger) *Coordinator {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Coordinator{tx: tx, store: s, logger: logger}
}

func ownedPodcast(ctx context.Context, s *store.Store, podcastID, requesterID uint) (*models.Podcast, error) {
	podcast, err := s.Podcasts.FindActiveByID(ctx, podcastID)
	if err != nil {
		return nil, err
	}
	if podcast.AuthorID != requesterID {
		return nil, apperrors.Forbidden(string(models.KindPodcast), podcastID)
	}
	return podcast, nil
}

// DeletePodcast soft-deletes every ACTIVE episode of the podcast and then
// the podcast itself.
func (c *Coordinator) DeletePodcast(ctx context.Context, podcastID, requesterID uint) error {
	var deleted int64
	err := c.tx.Transaction(ctx, func(tx *gorm.DB) error {
		s := c.store.WithTx(tx)
		if _, err := ownedPodcast(ctx, s, podcastID, requesterID); err != nil {
			return err
		}

		n, err := s.Episodes.SoftDeleteByPodcast(ctx, podcastID)
		if err != nil {
			return err
		}
		deleted = n
		return s.Podcasts.SoftDelete(ctx, podcastID)
	})
	if err != nil {
		return err
	}

	c.logger.WithFields(logrus.Fields{
		"podcast_id": podcastID,
		"episodes":   deleted,
		"user_id":    requesterID,
	}).Info("deleted podcast")
	return nil
}

// DeleteEpisodesOfPodcast soft-deletes the podcast's ACTIVE episodes and
// keeps the podcast.
func (c *Coordinator) DeleteEpisodesOfPodcast(ctx context.Context, podcastID, requesterID uint) error {
	var deleted int64
	err := c.tx.Transaction(ctx, func(tx *gorm.DB) error {
		s := c.store.WithTx(tx)
		if _, err := ownedPodcast(ctx, s, podcastID, requesterID); err != nil {
			return err
		}

		n, err := s.Episodes.SoftDeleteByPodcast(ctx, podcastID)
		deleted = n
		return err
	})
	if err != nil {
		return err
	}

	c.logger.WithFields(logrus.Fields{
		"podcast_id": podcastID,
		"episodes":   deleted,
		"user_id":    requesterID,
	}).Info("deleted podcast episodes")
	return nil
}

// DeleteEpisode soft-deletes one episode; the requester must author its
// podcast.
func (c *Coordinator) DeleteEpisode(ctx context.Context, episodeID, requesterID uint) error {
	err := c.tx.Transaction(ctx, func(tx *gorm.DB) error {
		s := c.store.WithTx(tx)
		episode, err := s.Episodes.FindActiveByID(ctx, episodeID)
		if err != nil {
			return err
		}

		podcast, err := s.Podcasts.FindByID(ctx, episode.PodcastID)
		if err != nil {
			return err
		}
		if podcast.AuthorID != requesterID {
			return apperrors.Forbidden(string(models.KindEpisode), episodeID)
		}

		return s.Episodes.SoftDelete(ctx, episodeID)
	})
	if err != nil {
		return err
	}

	c.logger.WithFields(logrus.Fields{"episode_id": episodeID, "user_id": requesterID}).Info("deleted episode")
	return nil
}
