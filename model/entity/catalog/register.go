package catalog

import "storefront.GO/model/schema"

func init() {
	schema.Register("manufacturers", &Manufacturer{})
	schema.Register("suppliers", &Supplier{})
	schema.Register("products", &Product{})
}
