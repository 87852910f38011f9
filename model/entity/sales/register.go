package sales

import "storefront.GO/model/schema"

func init() {
	schema.Register("orders", &Order{})
	schema.Register("order_details", &OrderDetail{})
	schema.Register("payments", &Payment{})
	schema.Register("order_trackings", &OrderTracking{})
	schema.Register("invoices", &Invoice{})
}
