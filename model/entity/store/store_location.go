package store

import (
	"fmt"
	"time"
)

// StoreLocation represents the store_locations table
type StoreLocation struct {
	ID             uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	StoreName      string    `gorm:"column:store_name;type:varchar(255);not null" json:"store_name"`
	Address        string    `gorm:"column:address;type:text;not null" json:"address"`
	City           string    `gorm:"column:city;type:varchar(100);not null" json:"city"`
	State          string    `gorm:"column:state;type:varchar(100);not null" json:"state"`
	ZipCode        string    `gorm:"column:zip_code;type:varchar(20);not null" json:"zip_code"`
	ManagerName    string    `gorm:"column:manager_name;type:varchar(255);not null" json:"manager_name"`
	ManagerContact string    `gorm:"column:manager_contact;type:varchar(20);not null" json:"manager_contact"`
	OperatingHours string    `gorm:"column:operating_hours;type:text;not null" json:"operating_hours"`
	Facilities     string    `gorm:"column:facilities;type:text;not null" json:"facilities"`
	StoreRemarks   string    `gorm:"column:store_remarks;type:text;not null" json:"store_remarks"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (StoreLocation) TableName() string {
	return "store_locations"
}

func (s StoreLocation) String() string {
	return s.StoreName
}

// Label is the display string of a possibly unloaded store.
func Label(s *StoreLocation, id uint) string {
	if s != nil && s.ID != 0 {
		return s.String()
	}
	return fmt.Sprintf("Store #%d", id)
}
