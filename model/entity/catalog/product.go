package catalog

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// ImageDir is the upload prefix for Product.Images.
const ImageDir = "product_images/"

// Product represents the products table
type Product struct {
	ID                       uint            `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	ProductName              string          `gorm:"column:product_name;type:varchar(255);not null" json:"product_name"`
	Category                 string          `gorm:"column:category;type:varchar(100);not null;index:idx_products_category" json:"category"`
	Price                    decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null;index:idx_products_price" json:"price"`
	Description              string          `gorm:"column:description;type:text;not null" json:"description"`
	Weight                   decimal.Decimal `gorm:"column:weight;type:decimal(10,2);not null" json:"weight"`
	Dimensions               string          `gorm:"column:dimensions;type:varchar(100);not null" json:"dimensions"`
	ReleaseDate              datatypes.Date  `gorm:"column:release_date;not null" json:"release_date"`
	SKU                      string          `gorm:"column:sku;type:varchar(100);not null;uniqueIndex:idx_products_sku" json:"sku"`
	Barcode                  string          `gorm:"column:barcode;type:varchar(100);not null;uniqueIndex:idx_products_barcode" json:"barcode"`
	Images                   string          `gorm:"column:images;type:varchar(255);not null" json:"images"`
	WarrantyInfo             string          `gorm:"column:warranty_info;type:varchar(255);not null" json:"warranty_info"`
	AdditionalSpecifications string          `gorm:"column:additional_specifications;type:text;not null" json:"additional_specifications"`
	CreatedAt                time.Time       `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time       `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	Manufacturers []Manufacturer `gorm:"many2many:product_manufacturers;constraint:OnDelete:CASCADE" json:"manufacturers,omitempty"`
	Suppliers     []Supplier     `gorm:"many2many:product_suppliers;constraint:OnDelete:CASCADE" json:"suppliers,omitempty"`
}

func (Product) TableName() string {
	return "products"
}

func (p Product) String() string {
	return p.ProductName
}

// Label is the display string of a possibly unloaded product.
func Label(p *Product, id uint) string {
	if p != nil && p.ID != 0 {
		return p.String()
	}
	return fmt.Sprintf("Product #%d", id)
}
