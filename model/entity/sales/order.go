package sales

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"storefront.GO/model/entity/customer"
)

// Order represents the orders table. Line items, payments, tracking events
// and invoices are removed with the order.
type Order struct {
	ID              uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	CustomerID      uint            `gorm:"column:customer_id;not null;index" json:"customer_id"`
	OrderDate       time.Time       `gorm:"column:order_date;not null" json:"order_date"`
	Status          string          `gorm:"column:status;type:varchar(100);not null;index:idx_orders_status" json:"status"`
	TotalAmount     decimal.Decimal `gorm:"column:total_amount;type:decimal(10,2);not null" json:"total_amount"`
	ShippingAddress string          `gorm:"column:shipping_address;type:text;not null" json:"shipping_address"`
	ShippingMethod  string          `gorm:"column:shipping_method;type:varchar(100);not null" json:"shipping_method"`
	PromoCode       string          `gorm:"column:promo_code;type:varchar(100);not null" json:"promo_code"`
	TaxAmount       decimal.Decimal `gorm:"column:tax_amount;type:decimal(10,2);not null" json:"tax_amount"`
	DiscountAmount  decimal.Decimal `gorm:"column:discount_amount;type:decimal(10,2);not null" json:"discount_amount"`
	Currency        string          `gorm:"column:currency;type:varchar(10);not null" json:"currency"`
	PaymentStatus   string          `gorm:"column:payment_status;type:varchar(100);not null" json:"payment_status"`
	OrderRemarks    string          `gorm:"column:order_remarks;type:text;not null" json:"order_remarks"`
	CreatedAt       time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Customer  *customer.Customer `gorm:"foreignKey:CustomerID;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	Details   []OrderDetail      `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"details,omitempty"`
	Payments  []Payment          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"payments,omitempty"`
	Trackings []OrderTracking    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"trackings,omitempty"`
	Invoices  []Invoice          `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"invoices,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

func (o Order) String() string {
	return orderLabel(o.ID)
}

func orderLabel(id uint) string {
	return fmt.Sprintf("Order #%d", id)
}
