package repository

import (
	"fmt"

	"gorm.io/gorm"
)

// AppendAssociation links owner to the rows of T with the given ids through
// the many-to-many field name. Every id must exist; associated rows are
// never created implicitly.
func AppendAssociation[T any](db *gorm.DB, owner interface{}, name string, ids ...uint) error {
	rows, err := loadExactly[T](db, name, ids)
	if err != nil || len(rows) == 0 {
		return err
	}
	return Translate(db.Model(owner).Association(name).Append(&rows))
}

// DeleteAssociation unlinks the given ids from owner. The rows themselves stay.
func DeleteAssociation[T any](db *gorm.DB, owner interface{}, name string, ids ...uint) error {
	if len(ids) == 0 {
		return nil
	}
	var rows []T
	if err := db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return db.Model(owner).Association(name).Delete(&rows)
}

// FindAssociation returns the rows of T linked to owner.
func FindAssociation[T any](db *gorm.DB, owner interface{}, name string) ([]T, error) {
	var out []T
	err := db.Model(owner).Association(name).Find(&out)
	return out, err
}

func loadExactly[T any](db *gorm.DB, name string, ids []uint) ([]T, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	uniq := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		uniq[id] = struct{}{}
	}
	var rows []T
	if err := db.Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) != len(uniq) {
		return nil, fmt.Errorf("%s: %d of %d ids found: %w", name, len(rows), len(uniq), gorm.ErrRecordNotFound)
	}
	return rows, nil
}
