package users

import (
	"context"
	"slices"
	"strings"

	apperrors "github.com/killallgit/podcast-api/pkg/errors"
)

// RecordSearch moves term to the end of the user's history, dropping the
// oldest entries past the limit. Blank terms and anonymous requesters are
// ignored.
func (s *Service) RecordSearch(ctx context.Context, userID uint, term string) error {
	term = strings.TrimSpace(term)
	if term == "" || userID == 0 {
		return nil
	}

	u, err := s.store.Users.FindActiveByID(ctx, userID)
	if err != nil {
		return err
	}

	history := slices.DeleteFunc(slices.Clone([]string(u.SearchHistory)), func(t string) bool { return t == term })
	history = append(history, term)
	if s.historyLimit > 0 && len(history) > s.historyLimit {
		history = history[len(history)-s.historyLimit:]
	}
	return s.store.Users.SaveSearchHistory(ctx, userID, history)
}

// SearchHistory returns the user's terms, most recent first.
func (s *Service) SearchHistory(ctx context.Context, userID uint) ([]string, error) {
	u, err := s.store.Users.FindActiveByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	history := slices.Clone([]string(u.SearchHistory))
	slices.Reverse(history)
	if history == nil {
		history = []string{}
	}
	return history, nil
}

// RemoveSearchTerm deletes one term; a term not in the history is a Conflict.
func (s *Service) RemoveSearchTerm(ctx context.Context, userID uint, term string) ([]string, error) {
	u, err := s.store.Users.FindActiveByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(u.SearchHistory, term) {
		return nil, apperrors.Conflict("search_history", "not in list")
	}

	history := slices.DeleteFunc(slices.Clone([]string(u.SearchHistory)), func(t string) bool { return t == term })
	if err := s.store.Users.SaveSearchHistory(ctx, userID, history); err != nil {
		return nil, err
	}
	return s.SearchHistory(ctx, userID)
}

func (s *Service) ClearSearchHistory(ctx context.Context, userID uint) error {
	if _, err := s.store.Users.FindActiveByID(ctx, userID); err != nil {
		return err
	}
	return s.store.Users.SaveSearchHistory(ctx, userID, nil)
}
