// Package store is the entity store: soft-delete aware persistence for every
// entity kind. Default reads only see ACTIVE records.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/killallgit/podcast-api/internal/models"
	"github.com/killallgit/podcast-api/internal/services/search"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
	"gorm.io/gorm"
)

// Active restricts a query to ACTIVE records
func Active(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", models.StatusActive)
}

// Table is the shared implementation behind each repository. T is the model
// struct; kind names it in errors.
type Table[T any] struct {
	db   *gorm.DB
	kind models.Kind
}

func newTable[T any](db *gorm.DB, kind models.Kind) *Table[T] {
	return &Table[T]{db: db, kind: kind}
}

func (t *Table[T]) withTx(tx *gorm.DB) *Table[T] {
	return &Table[T]{db: tx, kind: t.kind}
}

func (t *Table[T]) query(ctx context.Context) *gorm.DB {
	return t.db.WithContext(ctx).Model(new(T))
}

func (t *Table[T]) notFoundOr(err error, id any, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(string(t.kind), id)
	}
	return apperrors.DatabaseError(fmt.Sprintf("%s %s", op, t.kind), err)
}

// FindActiveByID returns the ACTIVE record or a NotFound error.
func (t *Table[T]) FindActiveByID(ctx context.Context, id uint) (*T, error) {
	rec := new(T)
	if err := t.db.WithContext(ctx).Scopes(Active).First(rec, id).Error; err != nil {
		return nil, t.notFoundOr(err, id, "find")
	}
	return rec, nil
}

// FindByID returns the record whatever its status.
func (t *Table[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	rec := new(T)
	if err := t.db.WithContext(ctx).First(rec, id).Error; err != nil {
		return nil, t.notFoundOr(err, id, "find")
	}
	return rec, nil
}

// FindActiveByIDs loads the ACTIVE records among ids, keyed by id.
// Missing or deleted ids are absent from the map.
func (t *Table[T]) FindActiveByIDs(ctx context.Context, ids []uint) (map[uint]*T, error) {
	out := make(map[uint]*T, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var recs []*T
	if err := t.db.WithContext(ctx).Scopes(Active).Where("id IN ?", ids).Find(&recs).Error; err != nil {
		return nil, apperrors.DatabaseError(fmt.Sprintf("list %s", t.kind), err)
	}
	for _, rec := range recs {
		out[any(rec).(models.Record).GetID()] = rec
	}
	return out, nil
}

// Create inserts rec, filling its search column when it has one.
func (t *Table[T]) Create(ctx context.Context, rec *T) error {
	if s, ok := any(rec).(models.Searchable); ok {
		s.SetSearchText(search.IndexText(s.SearchFields()...))
	}
	if err := t.db.WithContext(ctx).Create(rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.Conflict(string(t.kind), "already exists").WithCause(err)
		}
		return apperrors.DatabaseError(fmt.Sprintf("create %s", t.kind), err)
	}
	return nil
}

// UpdateFields applies only the given columns to an ACTIVE record and
// returns the reloaded record. Keys not in fields are left untouched.
func (t *Table[T]) UpdateFields(ctx context.Context, id uint, fields map[string]any) (*T, error) {
	var updated *T
	err := t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		scoped := t.withTx(tx)
		rec, err := scoped.FindActiveByID(ctx, id)
		if err != nil {
			return err
		}

		if len(fields) > 0 {
			if err := tx.Model(rec).Updates(fields).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return apperrors.Conflict(string(t.kind), "already exists").WithCause(err)
				}
				return apperrors.DatabaseError(fmt.Sprintf("update %s", t.kind), err)
			}
		}

		if rec, err = scoped.FindByID(ctx, id); err != nil {
			return err
		}

		if s, ok := any(rec).(models.Searchable); ok {
			text := search.IndexText(s.SearchFields()...)
			if err := tx.Model(rec).UpdateColumn("search_text", text).Error; err != nil {
				return apperrors.DatabaseError(fmt.Sprintf("index %s", t.kind), err)
			}
			s.SetSearchText(text)
		}

		updated = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// SetColumn writes one column of an ACTIVE record.
func (t *Table[T]) SetColumn(ctx context.Context, id uint, column string, value any) error {
	res := t.query(ctx).Scopes(Active).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return apperrors.DatabaseError(fmt.Sprintf("update %s", t.kind), res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound(string(t.kind), id)
	}
	return nil
}

// SoftDelete marks the record DELETED. Deleting a deleted record is a no-op;
// an id that never existed is NotFound.
func (t *Table[T]) SoftDelete(ctx context.Context, id uint) error {
	res := t.query(ctx).Scopes(Active).Where("id = ?", id).Update("status", models.StatusDeleted)
	if res.Error != nil {
		return apperrors.DatabaseError(fmt.Sprintf("delete %s", t.kind), res.Error)
	}
	if res.RowsAffected > 0 {
		return nil
	}
	_, err := t.FindByID(ctx, id)
	return err
}

// SearchCandidates returns ACTIVE records whose search column contains any of
// tokens, oldest first. Callers rank the candidates.
func (t *Table[T]) SearchCandidates(ctx context.Context, tokens []string, scopes ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	if len(tokens) == 0 {
		return nil, nil
	}

	clauses := make([]string, len(tokens))
	args := make([]any, len(tokens))
	for i, tok := range tokens {
		clauses[i] = "search_text LIKE ?"
		args[i] = "%" + tok + "%"
	}
	q := t.db.WithContext(ctx).Scopes(Active).Scopes(scopes...).
		Where("("+strings.Join(clauses, " OR ")+")", args...)

	var recs []T
	if err := q.Order("id ASC").Find(&recs).Error; err != nil {
		return nil, apperrors.DatabaseError(fmt.Sprintf("search %s", t.kind), err)
	}
	return recs, nil
}
