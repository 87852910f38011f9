// Package repository holds the CRUD base shared by the per-area repositories.
package repository

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrDuplicate wraps unique constraint violations (sku, barcode, email).
	ErrDuplicate = errors.New("duplicate key")
	// ErrForeignKey wraps writes that reference a missing parent row.
	ErrForeignKey = errors.New("foreign key violation")
)

// Translate maps driver constraint errors onto ErrDuplicate / ErrForeignKey.
// gorm's TranslateError does most of the work; the string checks cover
// connections opened without it.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(msg, "UNIQUE constraint failed"),
		strings.Contains(msg, "Duplicate entry"):
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated),
		strings.Contains(msg, "FOREIGN KEY constraint failed"),
		strings.Contains(msg, "a foreign key constraint fails"):
		return fmt.Errorf("%w: %v", ErrForeignKey, err)
	}
	return err
}

// Repository is a CRUD helper for one entity type.
type Repository[T any] struct {
	db *gorm.DB
}

func New[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{db: db}
}

// DB returns the underlying handle.
func (r *Repository[T]) DB() *gorm.DB {
	return r.db
}

func (r *Repository[T]) Create(v *T) error {
	return Translate(r.db.Create(v).Error)
}

// Update writes every column of v except created_at; updated_at is bumped.
// Associations are left alone. Returns gorm.ErrRecordNotFound when v's row
// does not exist.
func (r *Repository[T]) Update(v *T) error {
	res := r.db.Model(v).Select("*").Omit("created_at", clause.Associations).Updates(v)
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// FindByID returns gorm.ErrRecordNotFound when no row matches.
func (r *Repository[T]) FindByID(id uint, preloads ...string) (*T, error) {
	var v T
	if err := withPreloads(r.db, preloads).First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *Repository[T]) FindAll(preloads ...string) ([]T, error) {
	var out []T
	err := withPreloads(r.db, preloads).Order("id").Find(&out).Error
	return out, err
}

// FindWhere returns rows matching query (gorm Where syntax), ordered by id.
func (r *Repository[T]) FindWhere(query interface{}, args ...interface{}) ([]T, error) {
	var out []T
	err := r.db.Where(query, args...).Order("id").Find(&out).Error
	return out, err
}

// FirstWhere returns the first row matching query.
func (r *Repository[T]) FirstWhere(query interface{}, args ...interface{}) (*T, error) {
	var v T
	if err := r.db.Where(query, args...).First(&v).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

// Delete removes the row; dependents go with it through ON DELETE CASCADE.
// Returns gorm.ErrRecordNotFound when nothing was deleted.
func (r *Repository[T]) Delete(id uint) error {
	return deleteByID[T](r.db, id)
}

func (r *Repository[T]) Count() (int64, error) {
	var n int64
	var v T
	err := r.db.Model(&v).Count(&n).Error
	return n, err
}

// DeleteWithJoins removes the row inside a transaction after clearing the
// given join-table rows (table -> column matching id).
func (r *Repository[T]) DeleteWithJoins(id uint, joins map[string]string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for table, column := range joins {
			if err := tx.Exec("DELETE FROM "+table+" WHERE "+column+" = ?", id).Error; err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		return deleteByID[T](tx, id)
	})
}

func deleteByID[T any](db *gorm.DB, id uint) error {
	var v T
	res := db.Delete(&v, id)
	if res.Error != nil {
		return Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func withPreloads(db *gorm.DB, preloads []string) *gorm.DB {
	for _, p := range preloads {
		db = db.Preload(p)
	}
	return db
}
