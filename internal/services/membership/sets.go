// Package membership maintains a user's ordered, duplicate-free reference
// sets: favorite episodes, listened episodes and subscribed podcasts.
package membership

import (
	"context"
	"slices"

	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/internal/services/aggregation"
	"github.com/killallgit/podcast-api/internal/store"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
	"github.com/killallgit/podcast-api/pkg/pagination"
	"github.com/sirupsen/logrus"
)

type Service struct {
	store  *store.Store
	engine *aggregation.Engine
	logger *logrus.Logger
}

func NewService(s *store.Store, engine *aggregation.Engine, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Service{store: s, engine: engine, logger: logger}
}

// WithStore returns a copy of the service that reads and writes through st,
// typically a store bound to a transaction.
func (s *Service) WithStore(st *store.Store) *Service {
	clone := *s
	clone.store = st
	return &clone
}

func (s *Service) user(ctx context.Context, userID uint, set models.SetName) (*models.User, error) {
	if !set.Valid() {
		return nil, apperrors.ValidationError("set", "unknown membership set")
	}
	return s.store.Users.FindActiveByID(ctx, userID)
}

func (s *Service) ensureTarget(ctx context.Context, set models.SetName, targetID uint) error {
	var err error
	switch set.Target() {
	case models.KindPodcast:
		_, err = s.store.Podcasts.FindActiveByID(ctx, targetID)
	default:
		_, err = s.store.Episodes.FindActiveByID(ctx, targetID)
	}
	return err
}

// Add appends targetID to the set. The target must be ACTIVE; a target
// already in the set is a Conflict.
func (s *Service) Add(ctx context.Context, userID uint, set models.SetName, targetID uint) error {
	u, err := s.user(ctx, userID, set)
	if err != nil {
		return err
	}
	if err := s.ensureTarget(ctx, set, targetID); err != nil {
		return err
	}
	if u.Has(set, targetID) {
		return apperrors.Conflict(string(set), "already in list").WithDetail("id", targetID)
	}

	members := append(slices.Clone(u.Members(set)), targetID)
	if err := s.store.Users.SaveSet(ctx, userID, set, members); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{"user_id": userID, "set": set, "target_id": targetID}).Debug("added to set")
	return nil
}

// AddIfAbsent is Add without the Conflict: it reports whether the target
// was appended.
func (s *Service) AddIfAbsent(ctx context.Context, userID uint, set models.SetName, targetID uint) (bool, error) {
	err := s.Add(ctx, userID, set, targetID)
	if apperrors.Is(err, apperrors.ErrCodeConflict) {
		return false, nil
	}
	return err == nil, err
}

// Remove drops targetID from the set; a target not in the set is a Conflict.
func (s *Service) Remove(ctx context.Context, userID uint, set models.SetName, targetID uint) error {
	u, err := s.user(ctx, userID, set)
	if err != nil {
		return err
	}
	if !u.Has(set, targetID) {
		return apperrors.Conflict(string(set), "not in list").WithDetail("id", targetID)
	}

	members := slices.DeleteFunc(slices.Clone(u.Members(set)), func(id uint) bool { return id == targetID })
	if err := s.store.Users.SaveSet(ctx, userID, set, members); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{"user_id": userID, "set": set, "target_id": targetID}).Debug("removed from set")
	return nil
}

// RemoveAll empties the set
func (s *Service) RemoveAll(ctx context.Context, userID uint, set models.SetName) error {
	if _, err := s.user(ctx, userID, set); err != nil {
		return err
	}
	return s.store.Users.SaveSet(ctx, userID, set, nil)
}

// Members returns the ids of one page of the set, most recently added first,
// and the raw size of the set. The page is cut from the stored list before
// deleted targets are filtered out, so total counts them too.
func (s *Service) Members(ctx context.Context, userID uint, set models.SetName, p *pagination.Params) ([]uint, int, error) {
	u, err := s.user(ctx, userID, set)
	if err != nil {
		return nil, 0, err
	}

	ids := slices.Clone(u.Members(set))
	slices.Reverse(ids)

	total := len(ids)
	if p != nil {
		start, end := p.Window(total)
		ids = ids[start:end]
	}
	return ids, total, nil
}
