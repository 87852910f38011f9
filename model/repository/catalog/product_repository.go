package catalog

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"storefront.GO/core/cache"
	catalogEntity "storefront.GO/model/entity/catalog"
	"storefront.GO/model/repository"
)

const defaultCacheTTL = 5 * time.Minute

type ProductRepository struct {
	*repository.Repository[catalogEntity.Product]
	db    *gorm.DB
	cache cache.Store
	ttl   time.Duration
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{Repository: repository.New[catalogEntity.Product](db), db: db}
}

// WithCache enables caching of SKU and barcode lookups. ttl <= 0 uses five
// minutes.
func (r *ProductRepository) WithCache(store cache.Store, ttl time.Duration) *ProductRepository {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	r.cache = store
	r.ttl = ttl
	return r
}

// FindBySKU returns gorm.ErrRecordNotFound when no product has the SKU.
func (r *ProductRepository) FindBySKU(sku string) (*catalogEntity.Product, error) {
	return r.findByUnique("sku", sku)
}

func (r *ProductRepository) FindByBarcode(barcode string) (*catalogEntity.Product, error) {
	return r.findByUnique("barcode", barcode)
}

func (r *ProductRepository) FindByCategory(category string) ([]catalogEntity.Product, error) {
	return r.FindWhere("category = ?", category)
}

func (r *ProductRepository) findByUnique(column, value string) (*catalogEntity.Product, error) {
	key := "product:" + column + ":" + value
	if r.cache != nil {
		if b, ok := r.cache.Get(key); ok {
			var p catalogEntity.Product
			if err := json.Unmarshal(b, &p); err == nil {
				return &p, nil
			}
			r.cache.Delete(key)
		}
	}
	p, err := r.FirstWhere(column+" = ?", value)
	if err != nil {
		return nil, err
	}
	if r.cache != nil {
		if b, err := json.Marshal(p); err == nil {
			r.cache.Set(key, b, r.ttl, []string{ProductTag(p.ID)})
		}
	}
	return p, nil
}

func (r *ProductRepository) Update(p *catalogEntity.Product) error {
	if err := r.Repository.Update(p); err != nil {
		return err
	}
	r.invalidate(p.ID)
	return nil
}

// productJoinCleanup clears every join row that hangs off a product,
// including supplier links of its stock availability rows.
var productJoinCleanup = []struct{ table, query string }{
	{"stock_availability_suppliers", "DELETE FROM stock_availability_suppliers WHERE stock_availability_id IN (SELECT id FROM stock_availabilities WHERE product_id = ?)"},
	{"product_manufacturers", "DELETE FROM product_manufacturers WHERE product_id = ?"},
	{"product_suppliers", "DELETE FROM product_suppliers WHERE product_id = ?"},
}

// Delete removes the product and all of its join rows, then through
// cascades its inventory, order line and stock availability rows.
func (r *ProductRepository) Delete(id uint) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, j := range productJoinCleanup {
			if err := tx.Exec(j.query, id).Error; err != nil {
				return fmt.Errorf("clear %s: %w", j.table, err)
			}
		}
		return repository.New[catalogEntity.Product](tx).Delete(id)
	})
	if err != nil {
		return err
	}
	r.invalidate(id)
	return nil
}

func (r *ProductRepository) AddManufacturers(productID uint, manufacturerIDs ...uint) error {
	owner, err := r.owner(productID)
	if err != nil {
		return err
	}
	defer r.invalidate(productID)
	return repository.AppendAssociation[catalogEntity.Manufacturer](r.db, owner, "Manufacturers", manufacturerIDs...)
}

func (r *ProductRepository) RemoveManufacturers(productID uint, manufacturerIDs ...uint) error {
	defer r.invalidate(productID)
	return repository.DeleteAssociation[catalogEntity.Manufacturer](r.db, &catalogEntity.Product{ID: productID}, "Manufacturers", manufacturerIDs...)
}

func (r *ProductRepository) Manufacturers(productID uint) ([]catalogEntity.Manufacturer, error) {
	return repository.FindAssociation[catalogEntity.Manufacturer](r.db, &catalogEntity.Product{ID: productID}, "Manufacturers")
}

func (r *ProductRepository) AddSuppliers(productID uint, supplierIDs ...uint) error {
	owner, err := r.owner(productID)
	if err != nil {
		return err
	}
	defer r.invalidate(productID)
	return repository.AppendAssociation[catalogEntity.Supplier](r.db, owner, "Suppliers", supplierIDs...)
}

func (r *ProductRepository) RemoveSuppliers(productID uint, supplierIDs ...uint) error {
	defer r.invalidate(productID)
	return repository.DeleteAssociation[catalogEntity.Supplier](r.db, &catalogEntity.Product{ID: productID}, "Suppliers", supplierIDs...)
}

func (r *ProductRepository) Suppliers(productID uint) ([]catalogEntity.Supplier, error) {
	return repository.FindAssociation[catalogEntity.Supplier](r.db, &catalogEntity.Product{ID: productID}, "Suppliers")
}

func (r *ProductRepository) owner(productID uint) (*catalogEntity.Product, error) {
	p, err := r.FindByID(productID)
	if err != nil {
		return nil, fmt.Errorf("product %d: %w", productID, err)
	}
	return p, nil
}

func (r *ProductRepository) invalidate(id uint) {
	if r.cache != nil {
		r.cache.DeleteByTag(ProductTag(id))
	}
}

// ProductTag is the cache tag carried by every cached entry of a product.
func ProductTag(id uint) string {
	return fmt.Sprintf("product:%d", id)
}
