package aggregation

import (
	"context"

	"github.com/killallgit/podcast-api/internal/models"
)

func uniqueIDs[T any](items []T, id func(T) uint) []uint {
	seen := make(map[uint]bool, len(items))
	out := make([]uint, 0, len(items))
	for _, item := range items {
		if v := id(item); v != 0 && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// PodcastSummaries populates author and category. References whose target
// is gone stay unresolved.
func (e *Engine) PodcastSummaries(ctx context.Context, podcasts []models.Podcast) ([]models.PodcastSummary, error) {
	authors, err := e.store.Users.FindActiveByIDs(ctx, uniqueIDs(podcasts, func(p models.Podcast) uint { return p.AuthorID }))
	if err != nil {
		return nil, err
	}
	categories, err := e.store.Categories.FindActiveByIDs(ctx, uniqueIDs(podcasts, func(p models.Podcast) uint { return p.CategoryID }))
	if err != nil {
		return nil, err
	}

	out := make([]models.PodcastSummary, len(podcasts))
	for i := range podcasts {
		p := &podcasts[i]
		summary := p.Summary()
		if author, ok := authors[p.AuthorID]; ok {
			summary.Author = models.Resolved(p.AuthorID, author.Summary())
		}
		if category, ok := categories[p.CategoryID]; ok {
			summary.Category = models.Resolved(p.CategoryID, *category)
		}
		out[i] = summary
	}
	return out, nil
}

// PodcastViews populates references, then attaches view counts and the
// requester's subscription flag.
func (e *Engine) PodcastViews(ctx context.Context, podcasts []models.Podcast, requesterID uint) ([]models.PodcastView, error) {
	requester, err := e.Requester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return e.podcastViews(ctx, podcasts, requester)
}

func (e *Engine) podcastViews(ctx context.Context, podcasts []models.Podcast, requester *models.User) ([]models.PodcastView, error) {
	summaries, err := e.PodcastSummaries(ctx, podcasts)
	if err != nil {
		return nil, err
	}
	counts, err := e.store.Episodes.SumListeningByPodcast(ctx, uniqueIDs(podcasts, func(p models.Podcast) uint { return p.ID }))
	if err != nil {
		return nil, err
	}

	out := make([]models.PodcastView, len(podcasts))
	for i, summary := range summaries {
		out[i] = models.PodcastView{
			PodcastSummary: summary,
			NumListening:   counts[summary.ID],
			IsSubscribed:   flag(requester, models.SetSubscribed, summary.ID),
		}
	}
	return out, nil
}

// PodcastDetail is a single podcast with its ACTIVE episodes attached.
func (e *Engine) PodcastDetail(ctx context.Context, podcast *models.Podcast, requesterID uint) (models.PodcastView, error) {
	requester, err := e.Requester(ctx, requesterID)
	if err != nil {
		return models.PodcastView{}, err
	}
	views, err := e.podcastViews(ctx, []models.Podcast{*podcast}, requester)
	if err != nil {
		return models.PodcastView{}, err
	}
	view := views[0]

	episodes, err := e.store.Episodes.ListByPodcast(ctx, podcast.ID)
	if err != nil {
		return models.PodcastView{}, err
	}

	view.Episodes = make([]models.EpisodeView, len(episodes))
	for i := range episodes {
		ev := episodes[i].View()
		ev.IsListened = flag(requester, models.SetListened, ev.ID)
		ev.IsFavorite = flag(requester, models.SetFavorites, ev.ID)
		view.Episodes[i] = ev
	}
	return view, nil
}

// EpisodeViews populates each episode's podcast (with its author and
// category), then attaches the requester's listened and favorite flags.
func (e *Engine) EpisodeViews(ctx context.Context, episodes []models.Episode, requesterID uint) ([]models.EpisodeView, error) {
	requester, err := e.Requester(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	podcastsByID, err := e.store.Podcasts.FindActiveByIDs(ctx, uniqueIDs(episodes, func(ep models.Episode) uint { return ep.PodcastID }))
	if err != nil {
		return nil, err
	}
	podcasts := make([]models.Podcast, 0, len(podcastsByID))
	for _, p := range podcastsByID {
		podcasts = append(podcasts, *p)
	}
	summaries, err := e.PodcastSummaries(ctx, podcasts)
	if err != nil {
		return nil, err
	}
	summaryByID := make(map[uint]models.PodcastSummary, len(summaries))
	for _, s := range summaries {
		summaryByID[s.ID] = s
	}

	out := make([]models.EpisodeView, len(episodes))
	for i := range episodes {
		ev := episodes[i].View()
		if s, ok := summaryByID[ev.Podcast.ID]; ok {
			ev.Podcast = models.Resolved(s.ID, s)
		}
		ev.IsListened = flag(requester, models.SetListened, ev.ID)
		ev.IsFavorite = flag(requester, models.SetFavorites, ev.ID)
		out[i] = ev
	}
	return out, nil
}

// EpisodeView hydrates a single episode
func (e *Engine) EpisodeView(ctx context.Context, episode *models.Episode, requesterID uint) (models.EpisodeView, error) {
	views, err := e.EpisodeViews(ctx, []models.Episode{*episode}, requesterID)
	if err != nil {
		return models.EpisodeView{}, err
	}
	return views[0], nil
}
