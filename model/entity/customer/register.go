package customer

import "storefront.GO/model/schema"

func init() {
	schema.Register("customers", &Customer{})
}
