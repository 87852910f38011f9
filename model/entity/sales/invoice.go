package sales

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Invoice represents the invoices table
type Invoice struct {
	ID             uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderID        uint            `gorm:"column:order_id;not null;index" json:"order_id"`
	InvoiceDate    datatypes.Date  `gorm:"column:invoice_date;not null" json:"invoice_date"`
	DueDate        datatypes.Date  `gorm:"column:due_date;not null" json:"due_date"`
	AmountDue      decimal.Decimal `gorm:"column:amount_due;type:decimal(10,2);not null" json:"amount_due"`
	InvoiceNumber  string          `gorm:"column:invoice_number;type:varchar(100);not null" json:"invoice_number"`
	PaymentStatus  string          `gorm:"column:payment_status;type:varchar(100);not null" json:"payment_status"`
	InvoiceRemarks string          `gorm:"column:invoice_remarks;type:text;not null" json:"invoice_remarks"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Invoice) TableName() string {
	return "invoices"
}

func (i Invoice) String() string {
	return "Invoice for " + orderLabel(i.OrderID)
}
