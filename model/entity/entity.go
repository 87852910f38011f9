// Package entity pulls in every entity package so their models are
// registered with the schema registry. Import it for side effects wherever
// the whole schema is needed (migrations, seeding, introspection).
package entity

import (
	_ "storefront.GO/model/entity/catalog"
	_ "storefront.GO/model/entity/customer"
	_ "storefront.GO/model/entity/sales"
	_ "storefront.GO/model/entity/store"
)
