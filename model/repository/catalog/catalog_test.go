package catalog

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront.GO/config"
	"storefront.GO/core/cache"
	_ "storefront.GO/model/entity"
	catalogEntity "storefront.GO/model/entity/catalog"
	customerEntity "storefront.GO/model/entity/customer"
	salesEntity "storefront.GO/model/entity/sales"
	storeEntity "storefront.GO/model/entity/store"
	"storefront.GO/model/repository"
	"storefront.GO/model/schema"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := config.OpenSQLite(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := schema.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newProduct(sku, barcode string) *catalogEntity.Product {
	return &catalogEntity.Product{
		ProductName: "Widget " + sku,
		Category:    "tools",
		Price:       decimal.RequireFromString("19.99"),
		Weight:      decimal.RequireFromString("1.25"),
		Dimensions:  "10x10x5",
		ReleaseDate: datatypes.Date(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)),
		SKU:         sku,
		Barcode:     barcode,
		Images:      catalogEntity.ImageDir + sku + ".png",
	}
}

func mustCreate(t *testing.T, db *gorm.DB, v interface{}) {
	t.Helper()
	if err := db.Create(v).Error; err != nil {
		t.Fatalf("create %T: %v", v, err)
	}
}

func count(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	if err := db.Table(table).Count(&n).Error; err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func TestProductRepository_CreateAndFind(t *testing.T) {
	db := testDB(t)
	repo := NewProductRepository(db)

	p := newProduct("SKU-1", "000111")
	if err := repo.Create(p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID == 0 {
		t.Fatal("ID not set after Create")
	}

	found, err := repo.FindBySKU("SKU-1")
	if err != nil {
		t.Fatalf("FindBySKU: %v", err)
	}
	if found.ID != p.ID || !found.Price.Equal(decimal.RequireFromString("19.99")) {
		t.Errorf("FindBySKU = %+v", found)
	}
	if y, m, d := time.Time(found.ReleaseDate).Date(); y != 2024 || m != time.January || d != 2 {
		t.Errorf("ReleaseDate = %v", time.Time(found.ReleaseDate))
	}

	found, err = repo.FindByBarcode("000111")
	if err != nil {
		t.Fatalf("FindByBarcode: %v", err)
	}
	if found.SKU != "SKU-1" {
		t.Errorf("FindByBarcode SKU = %q", found.SKU)
	}

	if _, err := repo.FindBySKU("nope"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("FindBySKU(nope) err = %v, want ErrRecordNotFound", err)
	}

	byCat, err := repo.FindByCategory("tools")
	if err != nil || len(byCat) != 1 {
		t.Errorf("FindByCategory = %d rows, %v", len(byCat), err)
	}
}

func TestProductRepository_DuplicateSKU(t *testing.T) {
	db := testDB(t)
	repo := NewProductRepository(db)

	if err := repo.Create(newProduct("DUP", "B-1")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := repo.Create(newProduct("DUP", "B-2"))
	if !errors.Is(err, repository.ErrDuplicate) {
		t.Errorf("second Create err = %v, want ErrDuplicate", err)
	}
}

func TestProductRepository_DuplicateBarcode(t *testing.T) {
	db := testDB(t)
	repo := NewProductRepository(db)

	if err := repo.Create(newProduct("S-1", "SAME")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := repo.Create(newProduct("S-2", "SAME"))
	if !errors.Is(err, repository.ErrDuplicate) {
		t.Errorf("second Create err = %v, want ErrDuplicate", err)
	}
	if n := count(t, db, "products"); n != 1 {
		t.Errorf("products = %d, want 1", n)
	}
}

func TestProductRepository_Timestamps(t *testing.T) {
	db := testDB(t)
	repo := NewProductRepository(db)

	p := newProduct("TS-1", "TS-B")
	if err := repo.Create(p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	before, err := repo.FindByID(p.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if before.CreatedAt.IsZero() || before.UpdatedAt.IsZero() {
		t.Fatalf("timestamps not set: %+v", before)
	}
	created, updated := before.CreatedAt, before.UpdatedAt

	time.Sleep(20 * time.Millisecond)
	before.ProductName = "Renamed"
	before.CreatedAt = time.Time{}
	if err := repo.Update(before); err != nil {
		t.Fatalf("Update: %v", err)
	}

	after, err := repo.FindByID(p.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if after.ProductName != "Renamed" {
		t.Errorf("ProductName = %q, want Renamed", after.ProductName)
	}
	if !after.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt changed: %v -> %v", created, after.CreatedAt)
	}
	if !after.UpdatedAt.After(updated) {
		t.Errorf("UpdatedAt not bumped: %v -> %v", updated, after.UpdatedAt)
	}
}

func TestProductRepository_UpdateMissing(t *testing.T) {
	db := testDB(t)
	repo := NewProductRepository(db)
	p := newProduct("GHOST", "GHOST")
	p.ID = 999
	if err := repo.Update(p); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("Update missing err = %v, want ErrRecordNotFound", err)
	}
}

func TestProductRepository_ManyToMany(t *testing.T) {
	db := testDB(t)
	products := NewProductRepository(db)
	manufacturers := NewManufacturerRepository(db)
	suppliers := NewSupplierRepository(db)

	p := newProduct("M2M", "M2M")
	if err := products.Create(p); err != nil {
		t.Fatalf("Create product: %v", err)
	}
	m1 := &catalogEntity.Manufacturer{ManufacturerName: "Acme"}
	m2 := &catalogEntity.Manufacturer{ManufacturerName: "Initech"}
	s1 := &catalogEntity.Supplier{SupplierName: "Globex"}
	s2 := &catalogEntity.Supplier{SupplierName: "Umbrella"}
	for _, m := range []*catalogEntity.Manufacturer{m1, m2} {
		if err := manufacturers.Create(m); err != nil {
			t.Fatalf("Create manufacturer: %v", err)
		}
	}
	for _, s := range []*catalogEntity.Supplier{s1, s2} {
		if err := suppliers.Create(s); err != nil {
			t.Fatalf("Create supplier: %v", err)
		}
	}

	if err := products.AddManufacturers(p.ID, m1.ID, m2.ID); err != nil {
		t.Fatalf("AddManufacturers: %v", err)
	}
	if err := products.AddSuppliers(p.ID, s1.ID, s2.ID); err != nil {
		t.Fatalf("AddSuppliers: %v", err)
	}
	// Re-adding is a no-op.
	if err := products.AddManufacturers(p.ID, m1.ID); err != nil {
		t.Fatalf("AddManufacturers again: %v", err)
	}

	ms, err := products.Manufacturers(p.ID)
	if err != nil || len(ms) != 2 {
		t.Fatalf("Manufacturers = %d, %v; want 2", len(ms), err)
	}
	ss, err := products.Suppliers(p.ID)
	if err != nil || len(ss) != 2 {
		t.Fatalf("Suppliers = %d, %v; want 2", len(ss), err)
	}

	for _, m := range []*catalogEntity.Manufacturer{m1, m2} {
		ps, err := manufacturers.Products(m.ID)
		if err != nil || len(ps) != 1 || ps[0].ID != p.ID {
			t.Errorf("manufacturer %d Products = %v, %v", m.ID, ps, err)
		}
	}
	for _, s := range []*catalogEntity.Supplier{s1, s2} {
		ps, err := suppliers.Products(s.ID)
		if err != nil || len(ps) != 1 || ps[0].ID != p.ID {
			t.Errorf("supplier %d Products = %v, %v", s.ID, ps, err)
		}
	}

	loaded, err := products.FindByID(p.ID, "Manufacturers", "Suppliers")
	if err != nil {
		t.Fatalf("FindByID preload: %v", err)
	}
	if len(loaded.Manufacturers) != 2 || len(loaded.Suppliers) != 2 {
		t.Errorf("preloaded %d manufacturers, %d suppliers", len(loaded.Manufacturers), len(loaded.Suppliers))
	}

	if err := products.RemoveManufacturers(p.ID, m1.ID); err != nil {
		t.Fatalf("RemoveManufacturers: %v", err)
	}
	ms, _ = products.Manufacturers(p.ID)
	if len(ms) != 1 || ms[0].ID != m2.ID {
		t.Errorf("after remove Manufacturers = %v", ms)
	}
	if n := count(t, db, "manufacturers"); n != 2 {
		t.Errorf("manufacturers = %d, want 2 (unlink must not delete)", n)
	}

	if err := products.RemoveSuppliers(p.ID, s1.ID, s2.ID); err != nil {
		t.Fatalf("RemoveSuppliers: %v", err)
	}
	if n := count(t, db, "product_suppliers"); n != 0 {
		t.Errorf("product_suppliers = %d, want 0", n)
	}
}

func TestProductRepository_AddMissingManufacturer(t *testing.T) {
	db := testDB(t)
	products := NewProductRepository(db)
	p := newProduct("MISS", "MISS")
	if err := products.Create(p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := products.AddManufacturers(p.ID, 404)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("AddManufacturers(404) err = %v, want ErrRecordNotFound", err)
	}
	if n := count(t, db, "manufacturers"); n != 0 {
		t.Errorf("manufacturers = %d, want 0", n)
	}
	if err := products.AddSuppliers(12345, 1); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("AddSuppliers on missing product err = %v", err)
	}
}

func TestProductRepository_DeleteCascades(t *testing.T) {
	db := testDB(t)
	products := NewProductRepository(db)

	p := newProduct("CASCADE", "CASCADE")
	other := newProduct("KEEP", "KEEP")
	mustCreate(t, db, p)
	mustCreate(t, db, other)
	m := &catalogEntity.Manufacturer{ManufacturerName: "Acme"}
	s := &catalogEntity.Supplier{SupplierName: "Globex"}
	mustCreate(t, db, m)
	mustCreate(t, db, s)
	if err := products.AddManufacturers(p.ID, m.ID); err != nil {
		t.Fatalf("AddManufacturers: %v", err)
	}
	if err := products.AddSuppliers(p.ID, s.ID); err != nil {
		t.Fatalf("AddSuppliers: %v", err)
	}

	st := &storeEntity.StoreLocation{StoreName: "Downtown"}
	mustCreate(t, db, st)
	mustCreate(t, db, &storeEntity.Inventory{ProductID: p.ID, StoreID: st.ID, StockQuantity: 5})
	mustCreate(t, db, &storeEntity.Inventory{ProductID: other.ID, StoreID: st.ID, StockQuantity: 1})
	mustCreate(t, db, &storeEntity.StockAvailability{
		ProductID: p.ID, StoreID: st.ID, StockQuantity: 5,
		Suppliers: []catalogEntity.Supplier{*s},
	})

	c := &customerEntity.Customer{FirstName: "Ada", LastName: "Lovelace", Email: "ada@example.com"}
	mustCreate(t, db, c)
	o := &salesEntity.Order{CustomerID: c.ID, Status: "pending"}
	mustCreate(t, db, o)
	mustCreate(t, db, &salesEntity.OrderDetail{OrderID: o.ID, ProductID: p.ID, Quantity: 2})

	if err := products.Delete(p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	for table, want := range map[string]int64{
		"products":                     1,
		"inventories":                  1,
		"order_details":                0,
		"stock_availabilities":         0,
		"stock_availability_suppliers": 0,
		"product_manufacturers":        0,
		"product_suppliers":            0,
		"manufacturers":                1,
		"suppliers":                    1,
		"orders":                       1,
	} {
		if got := count(t, db, table); got != want {
			t.Errorf("%s = %d, want %d", table, got, want)
		}
	}

	if err := products.Delete(p.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("second Delete err = %v, want ErrRecordNotFound", err)
	}
}

func TestProductRepository_DeleteClearsJoinsWithoutCascades(t *testing.T) {
	// foreign_keys stays off so only the explicit cleanup can empty the joins
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "nofk.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := schema.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	products := NewProductRepository(db)

	p := newProduct("NOFK", "NOFK")
	mustCreate(t, db, p)
	m := &catalogEntity.Manufacturer{ManufacturerName: "Acme"}
	s := &catalogEntity.Supplier{SupplierName: "Globex"}
	mustCreate(t, db, m)
	mustCreate(t, db, s)
	if err := products.AddManufacturers(p.ID, m.ID); err != nil {
		t.Fatalf("AddManufacturers: %v", err)
	}
	if err := products.AddSuppliers(p.ID, s.ID); err != nil {
		t.Fatalf("AddSuppliers: %v", err)
	}
	st := &storeEntity.StoreLocation{StoreName: "Uptown"}
	mustCreate(t, db, st)
	mustCreate(t, db, &storeEntity.StockAvailability{
		ProductID: p.ID, StoreID: st.ID, StockQuantity: 3,
		Suppliers: []catalogEntity.Supplier{*s},
	})
	if n := count(t, db, "stock_availability_suppliers"); n != 1 {
		t.Fatalf("stock_availability_suppliers = %d before delete, want 1", n)
	}

	if err := products.Delete(p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	for _, table := range []string{"products", "product_manufacturers", "product_suppliers", "stock_availability_suppliers"} {
		if got := count(t, db, table); got != 0 {
			t.Errorf("%s = %d, want 0", table, got)
		}
	}
}

func TestProductRepository_Cache(t *testing.T) {
	db := testDB(t)
	store := cache.NewCache()
	repo := NewProductRepository(db).WithCache(store, time.Minute)

	p := newProduct("CACHED", "CACHED-B")
	if err := repo.Create(p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := repo.FindBySKU("CACHED"); err != nil {
		t.Fatalf("FindBySKU: %v", err)
	}
	if _, ok := store.Get("product:sku:CACHED"); !ok {
		t.Fatal("lookup not cached")
	}

	// A write behind the repository's back is not seen while cached.
	db.Exec("UPDATE products SET product_name = ? WHERE id = ?", "Sneaky", p.ID)
	hit, err := repo.FindBySKU("CACHED")
	if err != nil {
		t.Fatalf("FindBySKU: %v", err)
	}
	if hit.ProductName == "Sneaky" {
		t.Error("expected cached value")
	}

	fresh, _ := repo.FindByID(p.ID)
	fresh.ProductName = "Official"
	if err := repo.Update(fresh); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, err := repo.FindBySKU("CACHED")
	if err != nil {
		t.Fatalf("FindBySKU after update: %v", err)
	}
	if got.ProductName != "Official" {
		t.Errorf("ProductName = %q, want Official (cache not invalidated)", got.ProductName)
	}

	if _, err := repo.FindByBarcode("CACHED-B"); err != nil {
		t.Fatalf("FindByBarcode: %v", err)
	}
	if err := repo.Delete(p.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.FindByBarcode("CACHED-B"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("FindByBarcode after delete err = %v, want ErrRecordNotFound", err)
	}
}

func TestManufacturerRepository_DeleteClearsLinks(t *testing.T) {
	db := testDB(t)
	products := NewProductRepository(db)
	manufacturers := NewManufacturerRepository(db)

	p := newProduct("LINK", "LINK")
	mustCreate(t, db, p)
	m := &catalogEntity.Manufacturer{ManufacturerName: "Acme"}
	mustCreate(t, db, m)
	if err := products.AddManufacturers(p.ID, m.ID); err != nil {
		t.Fatalf("AddManufacturers: %v", err)
	}
	if err := manufacturers.Delete(m.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n := count(t, db, "product_manufacturers"); n != 0 {
		t.Errorf("product_manufacturers = %d, want 0", n)
	}
	if n := count(t, db, "products"); n != 1 {
		t.Errorf("products = %d, want 1", n)
	}
}

func TestSupplierRepository_StockAvailabilities(t *testing.T) {
	db := testDB(t)
	suppliers := NewSupplierRepository(db)

	p := newProduct("SA", "SA")
	mustCreate(t, db, p)
	s := &catalogEntity.Supplier{SupplierName: "Globex"}
	mustCreate(t, db, s)
	st := &storeEntity.StoreLocation{StoreName: "Uptown"}
	mustCreate(t, db, st)
	mustCreate(t, db, &storeEntity.StockAvailability{
		ProductID: p.ID, StoreID: st.ID, ReorderThreshold: 3,
		Suppliers: []catalogEntity.Supplier{*s},
	})

	rows, err := suppliers.StockAvailabilities(s.ID)
	if err != nil {
		t.Fatalf("StockAvailabilities: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("StockAvailabilities = %d rows, want 1", len(rows))
	}
	if got := rows[0].String(); got != "Uptown - Widget SA" {
		t.Errorf("String() = %q, want Uptown - Widget SA", got)
	}

	if err := suppliers.Delete(s.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if n := count(t, db, "stock_availability_suppliers"); n != 0 {
		t.Errorf("stock_availability_suppliers = %d, want 0", n)
	}
	if n := count(t, db, "stock_availabilities"); n != 1 {
		t.Errorf("stock_availabilities = %d, want 1", n)
	}
}
