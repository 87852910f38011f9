package catalog

import "time"

// Supplier represents the suppliers table. Products and stock availability
// rows link to it through product_suppliers and stock_availability_suppliers.
type Supplier struct {
	ID              uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SupplierName    string    `gorm:"column:supplier_name;type:varchar(255);not null" json:"supplier_name"`
	ContactName     string    `gorm:"column:contact_name;type:varchar(255);not null" json:"contact_name"`
	ContactEmail    string    `gorm:"column:contact_email;type:varchar(254);not null" json:"contact_email"`
	ContactPhone    string    `gorm:"column:contact_phone;type:varchar(20);not null" json:"contact_phone"`
	Address         string    `gorm:"column:address;type:text;not null" json:"address"`
	Country         string    `gorm:"column:country;type:varchar(100);not null" json:"country"`
	Website         string    `gorm:"column:website;type:varchar(200);not null" json:"website"`
	SupplierMessage string    `gorm:"column:supplier_message;type:text;not null" json:"supplier_message"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Supplier) TableName() string {
	return "suppliers"
}

func (s Supplier) String() string {
	return s.SupplierName
}
