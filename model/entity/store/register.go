package store

import "storefront.GO/model/schema"

func init() {
	schema.Register("store_locations", &StoreLocation{})
	schema.Register("inventories", &Inventory{})
	schema.Register("stock_availabilities", &StockAvailability{})
}
