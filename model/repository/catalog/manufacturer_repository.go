package catalog

import (
	"gorm.io/gorm"

	catalogEntity "storefront.GO/model/entity/catalog"
	"storefront.GO/model/repository"
)

type ManufacturerRepository struct {
	*repository.Repository[catalogEntity.Manufacturer]
	db *gorm.DB
}

func NewManufacturerRepository(db *gorm.DB) *ManufacturerRepository {
	return &ManufacturerRepository{Repository: repository.New[catalogEntity.Manufacturer](db), db: db}
}

// Products returns the products made by the manufacturer.
func (r *ManufacturerRepository) Products(manufacturerID uint) ([]catalogEntity.Product, error) {
	var products []catalogEntity.Product
	err := r.db.
		Joins("JOIN product_manufacturers pm ON pm.product_id = products.id").
		Where("pm.manufacturer_id = ?", manufacturerID).
		Order("products.id").
		Find(&products).Error
	return products, err
}

// Delete removes the manufacturer and its product links.
func (r *ManufacturerRepository) Delete(id uint) error {
	return r.DeleteWithJoins(id, map[string]string{"product_manufacturers": "manufacturer_id"})
}
