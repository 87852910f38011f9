package catalog

import "time"

// Manufacturer represents the manufacturers table
type Manufacturer struct {
	ID                  uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ManufacturerName    string    `gorm:"column:manufacturer_name;type:varchar(255);not null" json:"manufacturer_name"`
	ContactName         string    `gorm:"column:contact_name;type:varchar(255);not null" json:"contact_name"`
	ContactEmail        string    `gorm:"column:contact_email;type:varchar(254);not null" json:"contact_email"`
	ContactPhone        string    `gorm:"column:contact_phone;type:varchar(20);not null" json:"contact_phone"`
	Address             string    `gorm:"column:address;type:text;not null" json:"address"`
	Country             string    `gorm:"column:country;type:varchar(100);not null" json:"country"`
	Website             string    `gorm:"column:website;type:varchar(200);not null" json:"website"`
	ManufacturerMessage string    `gorm:"column:manufacturer_message;type:text;not null" json:"manufacturer_message"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Manufacturer) TableName() string {
	return "manufacturers"
}

func (m Manufacturer) String() string {
	return m.ManufacturerName
}
