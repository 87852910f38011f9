package sales

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment represents the payments table
type Payment struct {
	ID             uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderID        uint            `gorm:"column:order_id;not null;index" json:"order_id"`
	PaymentDate    time.Time       `gorm:"column:payment_date;not null" json:"payment_date"`
	PaymentAmount  decimal.Decimal `gorm:"column:payment_amount;type:decimal(10,2);not null" json:"payment_amount"`
	PaymentMethod  string          `gorm:"column:payment_method;type:varchar(100);not null" json:"payment_method"`
	TransactionID  string          `gorm:"column:transaction_id;type:varchar(100);not null" json:"transaction_id"`
	PaymentStatus  string          `gorm:"column:payment_status;type:varchar(100);not null" json:"payment_status"`
	PaymentRemarks string          `gorm:"column:payment_remarks;type:text;not null" json:"payment_remarks"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Payment) TableName() string {
	return "payments"
}

func (p Payment) String() string {
	return "Payment for " + orderLabel(p.OrderID)
}
