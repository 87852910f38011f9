package sales

import (
	"time"

	"gorm.io/datatypes"
)

// OrderTracking represents the order_trackings table (one carrier event).
type OrderTracking struct {
	ID                    uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	OrderID               uint           `gorm:"column:order_id;not null;index" json:"order_id"`
	Location              string         `gorm:"column:location;type:varchar(100);not null" json:"location"`
	Status                string         `gorm:"column:status;type:varchar(100);not null" json:"status"`
	TrackingDate          time.Time      `gorm:"column:tracking_date;not null" json:"tracking_date"`
	EstimatedDeliveryDate datatypes.Date `gorm:"column:estimated_delivery_date;not null" json:"estimated_delivery_date"`
	CarrierName           string         `gorm:"column:carrier_name;type:varchar(100);not null" json:"carrier_name"`
	TrackingNumber        string         `gorm:"column:tracking_number;type:varchar(100);not null" json:"tracking_number"`
	TrackingComments      string         `gorm:"column:tracking_comments;type:text;not null" json:"tracking_comments"`
	CreatedAt             time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (OrderTracking) TableName() string {
	return "order_trackings"
}

func (t OrderTracking) String() string {
	return "Tracking for " + orderLabel(t.OrderID)
}
