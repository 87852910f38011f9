package store

import (
	"time"

	"storefront.GO/model/entity/catalog"
)

// StockAvailability represents the stock_availabilities table. Suppliers
// able to restock the product at this store link through
// stock_availability_suppliers.
type StockAvailability struct {
	ID               uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	StoreID          uint      `gorm:"column:store_id;not null;index" json:"store_id"`
	ProductID        uint      `gorm:"column:product_id;not null;index" json:"product_id"`
	StockQuantity    uint      `gorm:"column:stock_quantity;not null" json:"stock_quantity"`
	ReorderThreshold uint      `gorm:"column:reorder_threshold;not null" json:"reorder_threshold"`
	ReorderQuantity  uint      `gorm:"column:reorder_quantity;not null" json:"reorder_quantity"`
	LastReorderDate  time.Time `gorm:"column:last_reorder_date;not null" json:"last_reorder_date"`
	Remarks          string    `gorm:"column:remarks;type:text;not null" json:"remarks"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Store     *StoreLocation     `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"store,omitempty"`
	Product   *catalog.Product   `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	Suppliers []catalog.Supplier `gorm:"many2many:stock_availability_suppliers;constraint:OnDelete:CASCADE" json:"suppliers,omitempty"`
}

func (StockAvailability) TableName() string {
	return "stock_availabilities"
}

func (s StockAvailability) String() string {
	return Label(s.Store, s.StoreID) + " - " + catalog.Label(s.Product, s.ProductID)
}
