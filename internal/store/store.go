package store

import (
	"github.com/killallgit/podcast-api/internal/models"
	"gorm.io/gorm"
)

// Store groups the repositories sharing one connection or transaction.
type Store struct {
	db *gorm.DB

	Users      *Users
	Categories *Categories
	Podcasts   *Podcasts
	Episodes   *Episodes
	Playlists  *Playlists
}

// New builds a store over db
func New(db *gorm.DB) *Store {
	return &Store{
		db:         db,
		Users:      &Users{Table: newTable[models.User](db, models.KindUser)},
		Categories: &Categories{Table: newTable[models.Category](db, models.KindCategory)},
		Podcasts:   &Podcasts{Table: newTable[models.Podcast](db, models.KindPodcast)},
		Episodes:   &Episodes{Table: newTable[models.Episode](db, models.KindEpisode)},
		Playlists:  &Playlists{Table: newTable[models.Playlist](db, models.KindPlaylist)},
	}
}

// WithTx returns a store whose repositories all run inside tx.
func (s *Store) WithTx(tx *gorm.DB) *Store {
	return New(tx)
}

// DB is the underlying handle
func (s *Store) DB() *gorm.DB {
	return s.db
}
