package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status marks whether a record is visible to default reads.
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusDeleted Status = "DELETED"
)

// DefaultAvatar is assigned to users created without one
const DefaultAvatar = "https://cdn.pixabay.com/photo/2016/08/08/09/17/avatar-1577909_960_720.png"

// Record is implemented by every stored entity
type Record interface {
	GetID() uint
	IsActive() bool
}

// Searchable entities contribute text to the search index column.
type Searchable interface {
	SearchFields() []string
	SetSearchText(text string)
}

// Base carries identity, timestamps and soft-delete status.
type Base struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at" gorm:"index"`
	UpdatedAt time.Time `json:"updated_at"`
	Status    Status    `json:"-" gorm:"type:varchar(16);not null;index"`
}

// BeforeCreate defaults new records to ACTIVE
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.Status == "" {
		b.Status = StatusActive
	}
	return nil
}

func (b *Base) GetID() uint { return b.ID }

func (b *Base) IsActive() bool { return b.Status == StatusActive }

// User is an account. Membership sets are ordered reference arrays,
// oldest first.
type User struct {
	Base
	Email              string                      `json:"email" gorm:"uniqueIndex;not null"`
	Name               string                      `json:"name"`
	Avatar             string                      `json:"avatar"`
	Birthday           *time.Time                  `json:"birthday,omitempty"`
	IsCreator          bool                        `json:"is_creator" gorm:"not null"`
	ChannelName        string                      `json:"channel_name,omitempty"`
	FavoriteEpisodes   datatypes.JSONSlice[uint]   `json:"-" gorm:"not null"`
	ListenedEpisodes   datatypes.JSONSlice[uint]   `json:"-" gorm:"not null"`
	SubscribedPodcasts datatypes.JSONSlice[uint]   `json:"-" gorm:"not null"`
	SearchHistory      datatypes.JSONSlice[string] `json:"-" gorm:"not null"`
	SearchText         string                      `json:"-" gorm:"index"`
}

// NewUser returns a user with empty sets and the default avatar.
func NewUser(email, name string) *User {
	return &User{
		Email:              email,
		Name:               name,
		Avatar:             DefaultAvatar,
		FavoriteEpisodes:   datatypes.JSONSlice[uint]{},
		ListenedEpisodes:   datatypes.JSONSlice[uint]{},
		SubscribedPodcasts: datatypes.JSONSlice[uint]{},
		SearchHistory:      datatypes.JSONSlice[string]{},
	}
}

func (u *User) SearchFields() []string { return []string{u.Name, u.ChannelName} }

func (u *User) SetSearchText(text string) { u.SearchText = text }

// Category groups podcasts
type Category struct {
	Base
	Name string `json:"name" gorm:"uniqueIndex;not null"`
}

// Podcast is owned by its author; its episodes are found by query, never stored.
type Podcast struct {
	Base
	Name        string `json:"name" gorm:"not null"`
	Description string `json:"description" gorm:"type:text"`
	Image       string `json:"image"`
	AuthorID    uint   `json:"author_id" gorm:"not null;index"`
	CategoryID  uint   `json:"category_id" gorm:"index"`
	SearchText  string `json:"-" gorm:"index"`
}

func (p *Podcast) SearchFields() []string { return []string{p.Name, p.Description} }

func (p *Podcast) SetSearchText(text string) { p.SearchText = text }

// Episode belongs to one podcast. NumListening only grows.
type Episode struct {
	Base
	Name         string `json:"name" gorm:"not null"`
	Description  string `json:"description" gorm:"type:text"`
	Duration     int    `json:"duration"`
	Image        string `json:"image"`
	Href         string `json:"href"`
	PodcastID    uint   `json:"podcast_id" gorm:"not null;index"`
	NumListening int64  `json:"num_listening" gorm:"not null"`
	SearchText   string `json:"-" gorm:"index"`
}

func (e *Episode) SearchFields() []string { return []string{e.Name, e.Description} }

func (e *Episode) SetSearchText(text string) { e.SearchText = text }

// Playlist names are unique among a user's active playlists.
type Playlist struct {
	Base
	Name     string                    `json:"name" gorm:"not null;uniqueIndex:idx_playlists_user_name,where:status = 'ACTIVE'"`
	UserID   uint                      `json:"user_id" gorm:"not null;index;uniqueIndex:idx_playlists_user_name,where:status = 'ACTIVE'"`
	Episodes datatypes.JSONSlice[uint] `json:"-" gorm:"not null"`
}

// All lists every model for migration
func All() []any {
	return []any{
		&User{},
		&Category{},
		&Podcast{},
		&Episode{},
		&Playlist{},
	}
}
