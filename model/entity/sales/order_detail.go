package sales

import (
	"time"

	"github.com/shopspring/decimal"

	"storefront.GO/model/entity/catalog"
)

// OrderDetail represents the order_details table (one line item).
type OrderDetail struct {
	ID           uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderID      uint            `gorm:"column:order_id;not null;index" json:"order_id"`
	ProductID    uint            `gorm:"column:product_id;not null;index" json:"product_id"`
	Quantity     uint            `gorm:"column:quantity;not null" json:"quantity"`
	PricePerUnit decimal.Decimal `gorm:"column:price_per_unit;type:decimal(10,2);not null" json:"price_per_unit"`
	Discount     decimal.Decimal `gorm:"column:discount;type:decimal(10,2);not null" json:"discount"`
	Subtotal     decimal.Decimal `gorm:"column:subtotal;type:decimal(10,2);not null" json:"subtotal"`
	ShippingCost decimal.Decimal `gorm:"column:shipping_cost;type:decimal(10,2);not null" json:"shipping_cost"`
	TaxAmount    decimal.Decimal `gorm:"column:tax_amount;type:decimal(10,2);not null" json:"tax_amount"`
	Comments     string          `gorm:"column:comments;type:text;not null" json:"comments"`
	CreatedAt    time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Product *catalog.Product `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product,omitempty"`
}

func (OrderDetail) TableName() string {
	return "order_details"
}

func (d OrderDetail) String() string {
	return orderLabel(d.OrderID) + " - " + catalog.Label(d.Product, d.ProductID)
}
