package sales

import (
	"gorm.io/gorm"

	salesEntity "storefront.GO/model/entity/sales"
	"storefront.GO/model/repository"
)

type OrderDetailRepository struct {
	*repository.Repository[salesEntity.OrderDetail]
	db *gorm.DB
}

func NewOrderDetailRepository(db *gorm.DB) *OrderDetailRepository {
	return &OrderDetailRepository{Repository: repository.New[salesEntity.OrderDetail](db), db: db}
}

// ListByOrder returns the order's line items with products loaded.
func (r *OrderDetailRepository) ListByOrder(orderID uint) ([]salesEntity.OrderDetail, error) {
	var rows []salesEntity.OrderDetail
	err := r.db.Preload("Product").Where("order_id = ?", orderID).Order("id").Find(&rows).Error
	return rows, err
}

type PaymentRepository struct {
	*repository.Repository[salesEntity.Payment]
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{Repository: repository.New[salesEntity.Payment](db)}
}

func (r *PaymentRepository) ListByOrder(orderID uint) ([]salesEntity.Payment, error) {
	return r.FindWhere("order_id = ?", orderID)
}

func (r *PaymentRepository) FindByTransactionID(transactionID string) (*salesEntity.Payment, error) {
	return r.FirstWhere("transaction_id = ?", transactionID)
}

type OrderTrackingRepository struct {
	*repository.Repository[salesEntity.OrderTracking]
}

func NewOrderTrackingRepository(db *gorm.DB) *OrderTrackingRepository {
	return &OrderTrackingRepository{Repository: repository.New[salesEntity.OrderTracking](db)}
}

func (r *OrderTrackingRepository) ListByOrder(orderID uint) ([]salesEntity.OrderTracking, error) {
	return r.FindWhere("order_id = ?", orderID)
}

func (r *OrderTrackingRepository) FindByTrackingNumber(number string) (*salesEntity.OrderTracking, error) {
	return r.FirstWhere("tracking_number = ?", number)
}

type InvoiceRepository struct {
	*repository.Repository[salesEntity.Invoice]
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{Repository: repository.New[salesEntity.Invoice](db)}
}

func (r *InvoiceRepository) ListByOrder(orderID uint) ([]salesEntity.Invoice, error) {
	return r.FindWhere("order_id = ?", orderID)
}

func (r *InvoiceRepository) FindByInvoiceNumber(number string) (*salesEntity.Invoice, error) {
	return r.FirstWhere("invoice_number = ?", number)
}
