package models

import "time"

// UserSummary is the public face of a user, used for authors and creators.
type UserSummary struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Avatar      string `json:"avatar"`
	ChannelName string `json:"channel_name,omitempty"`
}

// UserProfile is what a user sees about themselves
type UserProfile struct {
	ID          uint       `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	Avatar      string     `json:"avatar"`
	Birthday    *time.Time `json:"birthday,omitempty"`
	IsCreator   bool       `json:"is_creator"`
	ChannelName string     `json:"channel_name,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// PodcastSummary is a podcast with its author and category populated.
type PodcastSummary struct {
	ID          uint             `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Author      Ref[UserSummary] `json:"author"`
	Category    Ref[Category]    `json:"category"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// PodcastView adds the read-time aggregates to a podcast summary.
type PodcastView struct {
	PodcastSummary
	NumListening int64         `json:"num_listening"`
	IsSubscribed bool          `json:"is_subscribed"`
	Episodes     []EpisodeView `json:"episodes,omitempty"`
}

// EpisodeView is an episode with its podcast reference and requester flags.
type EpisodeView struct {
	ID           uint                `json:"id"`
	Name         string              `json:"name"`
	Description  string              `json:"description"`
	Duration     int                 `json:"duration"`
	Image        string              `json:"image"`
	Href         string              `json:"href"`
	NumListening int64               `json:"num_listening"`
	Podcast      Ref[PodcastSummary] `json:"podcast"`
	IsListened   bool                `json:"is_listened"`
	IsFavorite   bool                `json:"is_favorite"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// PlaylistSummary is a playlist without its episodes
type PlaylistSummary struct {
	ID           uint      `json:"id"`
	Name         string    `json:"name"`
	EpisodeCount int       `json:"episode_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PlaylistEpisodes is the {items, count} listing of a playlist.
type PlaylistEpisodes struct {
	Items []EpisodeView `json:"items"`
	Count int           `json:"count"`
}

// PlaylistView is a playlist with its episodes hydrated
type PlaylistView struct {
	ID        uint             `json:"id"`
	Name      string           `json:"name"`
	Episodes  PlaylistEpisodes `json:"episodes"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// ChannelView is a creator with their podcasts
type ChannelView struct {
	UserSummary
	Podcasts []PodcastView `json:"podcasts"`
}

// Summary returns the public view of u
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Avatar: u.Avatar, ChannelName: u.ChannelName}
}

// Profile returns the private view of u
func (u *User) Profile() UserProfile {
	return UserProfile{
		ID:          u.ID,
		Email:       u.Email,
		Name:        u.Name,
		Avatar:      u.Avatar,
		Birthday:    u.Birthday,
		IsCreator:   u.IsCreator,
		ChannelName: u.ChannelName,
		CreatedAt:   u.CreatedAt,
	}
}

// Summary returns p with unresolved author and category references.
func (p *Podcast) Summary() PodcastSummary {
	return PodcastSummary{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Image:       p.Image,
		Author:      Unresolved[UserSummary](p.AuthorID),
		Category:    Unresolved[Category](p.CategoryID),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// View returns e with an unresolved podcast reference and no flags set.
func (e *Episode) View() EpisodeView {
	return EpisodeView{
		ID:           e.ID,
		Name:         e.Name,
		Description:  e.Description,
		Duration:     e.Duration,
		Image:        e.Image,
		Href:         e.Href,
		NumListening: e.NumListening,
		Podcast:      Unresolved[PodcastSummary](e.PodcastID),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

// Summary returns pl without its episodes
func (pl *Playlist) Summary() PlaylistSummary {
	return PlaylistSummary{
		ID:           pl.ID,
		Name:         pl.Name,
		EpisodeCount: len(pl.Episodes),
		CreatedAt:    pl.CreatedAt,
		UpdatedAt:    pl.UpdatedAt,
	}
}
