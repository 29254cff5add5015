package models

import (
	"fmt"

	"gorm.io/datatypes"
)

// SetName identifies one of a user's membership sets.
type SetName string

const (
	SetFavorites  SetName = "favorites"
	SetListened   SetName = "listened"
	SetSubscribed SetName = "subscribed"
)

// Kind names the entity stored in a set or table
type Kind string

const (
	KindUser     Kind = "user"
	KindCategory Kind = "category"
	KindPodcast  Kind = "podcast"
	KindEpisode  Kind = "episode"
	KindPlaylist Kind = "playlist"
)

// Column is the users column holding the set.
func (s SetName) Column() string {
	switch s {
	case SetFavorites:
		return "favorite_episodes"
	case SetListened:
		return "listened_episodes"
	case SetSubscribed:
		return "subscribed_podcasts"
	}
	return ""
}

// Target is the kind of entity the set references.
func (s SetName) Target() Kind {
	if s == SetSubscribed {
		return KindPodcast
	}
	return KindEpisode
}

// Valid reports whether s names a known set
func (s SetName) Valid() bool {
	return s.Column() != ""
}

// ParseSetName accepts the canonical names.
func ParseSetName(raw string) (SetName, error) {
	s := SetName(raw)
	if !s.Valid() {
		return "", fmt.Errorf("unknown membership set %q", raw)
	}
	return s, nil
}

// Members returns the ids in the named set, oldest first.
func (u *User) Members(s SetName) []uint {
	switch s {
	case SetFavorites:
		return u.FavoriteEpisodes
	case SetListened:
		return u.ListenedEpisodes
	case SetSubscribed:
		return u.SubscribedPodcasts
	}
	return nil
}

// SetMembers replaces the ids in the named set.
func (u *User) SetMembers(s SetName, ids []uint) {
	v := datatypes.JSONSlice[uint](ids)
	if v == nil {
		v = datatypes.JSONSlice[uint]{}
	}
	switch s {
	case SetFavorites:
		u.FavoriteEpisodes = v
	case SetListened:
		u.ListenedEpisodes = v
	case SetSubscribed:
		u.SubscribedPodcasts = v
	}
}

// Has reports whether id is in the named set
func (u *User) Has(s SetName, id uint) bool {
	for _, member := range u.Members(s) {
		if member == id {
			return true
		}
	}
	return false
}
