package custom

import (
	"path/filepath"
	"testing"

	"storefront.GO/config"
	catalogEntity "storefront.GO/model/entity/catalog"
	"storefront.GO/model/schema"
)

func TestTableCounts(t *testing.T) {
	db, err := config.OpenSQLite(filepath.Join(t.TempDir(), "stats.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := schema.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db.Create(&catalogEntity.Manufacturer{ManufacturerName: "Acme"})
	db.Create(&catalogEntity.Manufacturer{ManufacturerName: "Initech"})

	counts, err := TableCounts(db)
	if err != nil {
		t.Fatalf("TableCounts: %v", err)
	}
	if len(counts) != len(schema.Models()) {
		t.Fatalf("got %d tables, want %d", len(counts), len(schema.Models()))
	}
	if counts[0].Table != "manufacturers" || counts[0].Rows != 2 {
		t.Errorf("first = %+v, want manufacturers with 2 rows", counts[0])
	}
	for _, c := range counts[1:] {
		if c.Rows != 0 {
			t.Errorf("%s = %d, want 0", c.Table, c.Rows)
		}
	}
}
