package catalog

import (
	"gorm.io/gorm"

	catalogEntity "storefront.GO/model/entity/catalog"
	storeEntity "storefront.GO/model/entity/store"
	"storefront.GO/model/repository"
)

type SupplierRepository struct {
	*repository.Repository[catalogEntity.Supplier]
	db *gorm.DB
}

func NewSupplierRepository(db *gorm.DB) *SupplierRepository {
	return &SupplierRepository{Repository: repository.New[catalogEntity.Supplier](db), db: db}
}

// Products returns the products the supplier is linked to.
func (r *SupplierRepository) Products(supplierID uint) ([]catalogEntity.Product, error) {
	var products []catalogEntity.Product
	err := r.db.
		Joins("JOIN product_suppliers ps ON ps.product_id = products.id").
		Where("ps.supplier_id = ?", supplierID).
		Order("products.id").
		Find(&products).Error
	return products, err
}

// StockAvailabilities returns the stock rows the supplier can restock,
// with store and product loaded for display.
func (r *SupplierRepository) StockAvailabilities(supplierID uint) ([]storeEntity.StockAvailability, error) {
	var rows []storeEntity.StockAvailability
	err := r.db.
		Preload("Store").
		Preload("Product").
		Joins("JOIN stock_availability_suppliers sas ON sas.stock_availability_id = stock_availabilities.id").
		Where("sas.supplier_id = ?", supplierID).
		Order("stock_availabilities.id").
		Find(&rows).Error
	return rows, err
}

// Delete removes the supplier and every link to products and stock rows.
func (r *SupplierRepository) Delete(id uint) error {
	return r.DeleteWithJoins(id, map[string]string{
		"product_suppliers":            "supplier_id",
		"stock_availability_suppliers": "supplier_id",
	})
}
