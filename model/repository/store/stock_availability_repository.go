package store

import (
	"fmt"

	"gorm.io/gorm"

	catalogEntity "storefront.GO/model/entity/catalog"
	storeEntity "storefront.GO/model/entity/store"
	"storefront.GO/model/repository"
)

type StockAvailabilityRepository struct {
	*repository.Repository[storeEntity.StockAvailability]
	db *gorm.DB
}

func NewStockAvailabilityRepository(db *gorm.DB) *StockAvailabilityRepository {
	return &StockAvailabilityRepository{Repository: repository.New[storeEntity.StockAvailability](db), db: db}
}

func (r *StockAvailabilityRepository) ListByStore(storeID uint) ([]storeEntity.StockAvailability, error) {
	return r.list("store_id = ?", storeID)
}

func (r *StockAvailabilityRepository) ListByProduct(productID uint) ([]storeEntity.StockAvailability, error) {
	return r.list("product_id = ?", productID)
}

func (r *StockAvailabilityRepository) list(query string, arg uint) ([]storeEntity.StockAvailability, error) {
	var rows []storeEntity.StockAvailability
	err := r.db.Preload("Store").Preload("Product").Preload("Suppliers").
		Where(query, arg).Order("id").Find(&rows).Error
	return rows, err
}

func (r *StockAvailabilityRepository) AddSuppliers(id uint, supplierIDs ...uint) error {
	owner, err := r.FindByID(id)
	if err != nil {
		return fmt.Errorf("stock availability %d: %w", id, err)
	}
	return repository.AppendAssociation[catalogEntity.Supplier](r.db, owner, "Suppliers", supplierIDs...)
}

func (r *StockAvailabilityRepository) RemoveSuppliers(id uint, supplierIDs ...uint) error {
	return repository.DeleteAssociation[catalogEntity.Supplier](r.db, &storeEntity.StockAvailability{ID: id}, "Suppliers", supplierIDs...)
}

func (r *StockAvailabilityRepository) Suppliers(id uint) ([]catalogEntity.Supplier, error) {
	return repository.FindAssociation[catalogEntity.Supplier](r.db, &storeEntity.StockAvailability{ID: id}, "Suppliers")
}

func (r *StockAvailabilityRepository) Delete(id uint) error {
	return r.DeleteWithJoins(id, map[string]string{
		"stock_availability_suppliers": "stock_availability_id",
	})
}
