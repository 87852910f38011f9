package store

import (
	"gorm.io/gorm"

	storeEntity "storefront.GO/model/entity/store"
	"storefront.GO/model/repository"
)

type InventoryRepository struct {
	*repository.Repository[storeEntity.Inventory]
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{Repository: repository.New[storeEntity.Inventory](db), db: db}
}

// FindByProductAndStore returns the first inventory row for the pair.
// Nothing prevents several rows for one pair.
func (r *InventoryRepository) FindByProductAndStore(productID, storeID uint) (*storeEntity.Inventory, error) {
	var inv storeEntity.Inventory
	err := r.db.Preload("Product").Preload("Store").
		Where("product_id = ? AND store_id = ?", productID, storeID).
		Order("id").
		First(&inv).Error
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *InventoryRepository) ListByStore(storeID uint) ([]storeEntity.Inventory, error) {
	return r.list("store_id = ?", storeID)
}

func (r *InventoryRepository) ListByProduct(productID uint) ([]storeEntity.Inventory, error) {
	return r.list("product_id = ?", productID)
}

func (r *InventoryRepository) list(query string, arg uint) ([]storeEntity.Inventory, error) {
	var rows []storeEntity.Inventory
	err := r.db.Preload("Product").Preload("Store").Where(query, arg).Order("id").Find(&rows).Error
	return rows, err
}
