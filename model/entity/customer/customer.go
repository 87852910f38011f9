package customer

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Customer represents the customers table. Email is unique.
type Customer struct {
	ID             uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	FirstName      string          `gorm:"column:first_name;type:varchar(100);not null" json:"first_name"`
	LastName       string          `gorm:"column:last_name;type:varchar(100);not null" json:"last_name"`
	Email          string          `gorm:"column:email;type:varchar(254);not null;uniqueIndex:idx_customers_email" json:"email"`
	Phone          string          `gorm:"column:phone;type:varchar(20);not null" json:"phone"`
	Address        string          `gorm:"column:address;type:text;not null" json:"address"`
	BillingInfo    string          `gorm:"column:billing_info;type:text;not null" json:"billing_info"`
	DateOfBirth    datatypes.Date  `gorm:"column:date_of_birth;not null" json:"date_of_birth"`
	AccountBalance decimal.Decimal `gorm:"column:account_balance;type:decimal(10,2);not null" json:"account_balance"`
	CustomerType   string          `gorm:"column:customer_type;type:varchar(100);not null;index:idx_customers_customer_type" json:"customer_type"`
	CreatedAt      time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Customer) TableName() string {
	return "customers"
}

func (c Customer) String() string {
	return c.FirstName + " " + c.LastName
}
