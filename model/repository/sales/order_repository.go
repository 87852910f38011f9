package sales

import (
	"gorm.io/gorm"

	salesEntity "storefront.GO/model/entity/sales"
	"storefront.GO/model/repository"
)

type OrderRepository struct {
	*repository.Repository[salesEntity.Order]
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{Repository: repository.New[salesEntity.Order](db), db: db}
}

func (r *OrderRepository) FindByCustomer(customerID uint) ([]salesEntity.Order, error) {
	return r.FindWhere("customer_id = ?", customerID)
}

func (r *OrderRepository) FindByStatus(status string) ([]salesEntity.Order, error) {
	return r.FindWhere("status = ?", status)
}

// FindWithDetails loads the order with its customer, line items (with
// products), payments, tracking events and invoices.
func (r *OrderRepository) FindWithDetails(id uint) (*salesEntity.Order, error) {
	return r.FindByID(id,
		"Customer",
		"Details", "Details.Product",
		"Payments",
		"Trackings",
		"Invoices",
	)
}
