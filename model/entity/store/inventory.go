package store

import (
	"time"

	"storefront.GO/model/entity/catalog"
)

// Inventory represents the inventories table: stock of one product at one store.
type Inventory struct {
	ID                    uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProductID             uint      `gorm:"column:product_id;not null;index" json:"product_id"`
	StoreID               uint      `gorm:"column:store_id;not null;index" json:"store_id"`
	StockQuantity         uint      `gorm:"column:stock_quantity;not null" json:"stock_quantity"`
	LastRestockDate       time.Time `gorm:"column:last_restock_date;not null" json:"last_restock_date"`
	LastSoldDate          time.Time `gorm:"column:last_sold_date;not null" json:"last_sold_date"`
	MinimumStockThreshold uint      `gorm:"column:minimum_stock_threshold;not null" json:"minimum_stock_threshold"`
	MaximumStockCapacity  uint      `gorm:"column:maximum_stock_capacity;not null" json:"maximum_stock_capacity"`
	Location              string    `gorm:"column:location;type:varchar(100);not null" json:"location"`
	CreatedAt             time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Product *catalog.Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
	Store   *StoreLocation   `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE" json:"store,omitempty"`
}

func (Inventory) TableName() string {
	return "inventories"
}

func (i Inventory) String() string {
	return catalog.Label(i.Product, i.ProductID) + " - " + Label(i.Store, i.StoreID)
}
