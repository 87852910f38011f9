package customer

import (
	"strings"

	"gorm.io/gorm"

	customerEntity "storefront.GO/model/entity/customer"
	"storefront.GO/model/repository"
)

type CustomerRepository struct {
	*repository.Repository[customerEntity.Customer]
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{Repository: repository.New[customerEntity.Customer](db), db: db}
}

// FindByEmail matches the address exactly after trimming surrounding space.
func (r *CustomerRepository) FindByEmail(email string) (*customerEntity.Customer, error) {
	return r.FirstWhere("email = ?", strings.TrimSpace(email))
}

func (r *CustomerRepository) FindByType(customerType string) ([]customerEntity.Customer, error) {
	return r.FindWhere("customer_type = ?", customerType)
}
