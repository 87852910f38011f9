package catalog

import "testing"

func TestTableNames(t *testing.T) {
	cases := map[string]string{
		Manufacturer{}.TableName(): "manufacturers",
		Supplier{}.TableName():     "suppliers",
		Product{}.TableName():      "products",
	}
	for got, want := range cases {
		if got != want {
			t.Errorf("TableName() = %q, want %q", got, want)
		}
	}
}

func TestString(t *testing.T) {
	if got := (Manufacturer{ManufacturerName: "Acme"}).String(); got != "Acme" {
		t.Errorf("Manufacturer.String() = %q", got)
	}
	if got := (Supplier{SupplierName: "Globex"}).String(); got != "Globex" {
		t.Errorf("Supplier.String() = %q", got)
	}
	if got := (Product{ProductName: "Widget"}).String(); got != "Widget" {
		t.Errorf("Product.String() = %q", got)
	}
}

func TestLabel(t *testing.T) {
	if got := Label(nil, 7); got != "Product #7" {
		t.Errorf("Label(nil) = %q, want Product #7", got)
	}
	if got := Label(&Product{ID: 7, ProductName: "Widget"}, 7); got != "Widget" {
		t.Errorf("Label(loaded) = %q, want Widget", got)
	}
}
