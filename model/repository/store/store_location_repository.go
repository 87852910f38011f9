package store

import (
	"gorm.io/gorm"

	storeEntity "storefront.GO/model/entity/store"
	"storefront.GO/model/repository"
)

type StoreLocationRepository struct {
	*repository.Repository[storeEntity.StoreLocation]
	db *gorm.DB
}

func NewStoreLocationRepository(db *gorm.DB) *StoreLocationRepository {
	return &StoreLocationRepository{Repository: repository.New[storeEntity.StoreLocation](db), db: db}
}

func (r *StoreLocationRepository) FindByCity(city string) ([]storeEntity.StoreLocation, error) {
	return r.FindWhere("city = ?", city)
}

// Delete removes the store with its inventory and stock availability rows
// and the supplier links of those rows.
func (r *StoreLocationRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Exec(
			"DELETE FROM stock_availability_suppliers WHERE stock_availability_id IN (SELECT id FROM stock_availabilities WHERE store_id = ?)",
			id,
		).Error
		if err != nil {
			return err
		}
		return repository.New[storeEntity.StoreLocation](tx).Delete(id)
	})
}
