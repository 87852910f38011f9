package product

import (
	"encoding/csv"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"storefront.GO/core/cache"
	catalogEntity "storefront.GO/model/entity/catalog"
	"storefront.GO/model/repository"
	catalogRepo "storefront.GO/model/repository/catalog"
	"storefront.GO/service/seed"
)

// ImportOptions configures a product import run.
type ImportOptions struct {
	BatchSize int
	Comma     rune
	// Cache, when set, has the entries of every written product dropped
	// after the import commits.
	Cache cache.Store
}

// ImportResult holds counters and timing from an import run.
type ImportResult struct {
	TotalRows   int
	Created     int
	Updated     int
	Skipped     int
	Links       map[string]int
	Warnings    []string
	ProcessTime time.Duration
	DBTime      time.Duration
	TotalTime   time.Duration
}

// productColumns are the CSV headers written to the products table.
var productColumns = map[string]bool{
	"product_name": true, "category": true, "price": true, "description": true,
	"weight": true, "dimensions": true, "release_date": true, "barcode": true,
	"images": true, "warranty_info": true, "additional_specifications": true,
}

// ImportProducts reads CSV data from r and upserts products by SKU. Only the
// columns present in the header are overwritten on existing products.
func ImportProducts(db *gorm.DB, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	startTotal := time.Now()

	if opts.BatchSize <= 0 {
		opts.BatchSize = 500
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	if opts.Comma != 0 {
		reader.Comma = opts.Comma
	}
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	colIndex := make(map[string]int, len(headers))
	for i, h := range headers {
		colIndex[h] = i
	}
	skuCol, ok := colIndex["sku"]
	if !ok {
		return nil, fmt.Errorf("CSV must contain a 'sku' column")
	}

	result := &ImportResult{Links: make(map[string]int)}
	var updateCols []string
	for _, h := range headers {
		switch {
		case h == "sku":
		case productColumns[h]:
			updateCols = append(updateCols, h)
		case linkColumns[h] != nil:
		default:
			result.Warnings = append(result.Warnings, fmt.Sprintf("column %q: unknown, skipping", h))
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV rows: %w", err)
	}
	result.TotalRows = len(rows)

	startProcess := time.Now()
	products, kept := collectProducts(rows, headers, skuCol, result)

	skus := make([]string, len(products))
	for i, p := range products {
		skus[i] = p.SKU
	}
	existing, err := lookupSKUs(db, skus, opts.BatchSize)
	if err != nil {
		return nil, err
	}
	for i := range products {
		if e, ok := existing[products[i].SKU]; ok && products[i].Barcode == "" {
			products[i].Barcode = e.Barcode
		}
	}
	links := collectLinks(kept, colIndex, skuCol, result)
	result.ProcessTime = time.Since(startProcess)

	startDB := time.Now()
	var written map[string]existingProduct
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := checkBarcodes(tx, products, opts.BatchSize); err != nil {
			return err
		}
		if len(products) > 0 {
			err := tx.Omit(clause.Associations).Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "sku"}},
				DoUpdates: clause.AssignmentColumns(append(updateCols, "updated_at")),
			}).CreateInBatches(&products, opts.BatchSize).Error
			if err != nil {
				return repository.Translate(err)
			}
		}
		var err error
		written, err = lookupSKUs(tx, skus, opts.BatchSize)
		if err != nil {
			return err
		}
		skuToID := make(map[string]uint, len(written))
		for sku, e := range written {
			skuToID[sku] = e.ID
		}
		for _, l := range links {
			n, err := flushLinks(tx, l, skuToID, opts)
			if err != nil {
				return err
			}
			result.Links[l.table] = n
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.DBTime = time.Since(startDB)
	if opts.Cache != nil {
		for _, e := range written {
			opts.Cache.DeleteByTag(catalogRepo.ProductTag(e.ID))
		}
	}

	for _, sku := range skus {
		if _, ok := existing[sku]; ok {
			result.Updated++
		} else {
			result.Created++
		}
	}
	result.TotalTime = time.Since(startTotal)
	return result, nil
}

// collectProducts decodes each row into a product. Rows without a SKU or
// with unparsable values are skipped; a repeated SKU keeps its last row.
func collectProducts(rows [][]string, headers []string, skuCol int, result *ImportResult) ([]catalogEntity.Product, [][]string) {
	bySKU := make(map[string]int, len(rows))
	products := make([]catalogEntity.Product, 0, len(rows))
	kept := make([][]string, 0, len(rows))

	for ri, row := range rows {
		sku := ""
		if skuCol < len(row) {
			sku = strings.TrimSpace(row[skuCol])
		}
		if sku == "" {
			result.Skipped++
			continue
		}
		values := map[string]interface{}{"sku": sku}
		for ci, h := range headers {
			if !productColumns[h] || ci >= len(row) {
				continue
			}
			if v := strings.TrimSpace(row[ci]); v != "" {
				values[h] = v
			}
		}
		if img, ok := values["images"].(string); ok {
			values["images"] = imagePath(img)
		}

		var p catalogEntity.Product
		if err := seed.DecodeRow(values, &p); err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("row %d sku=%s: %v", ri+2, sku, err))
			result.Skipped++
			continue
		}
		if i, dup := bySKU[sku]; dup {
			result.Warnings = append(result.Warnings, fmt.Sprintf("row %d sku=%s: repeated, later row wins", ri+2, sku))
			products[i] = p
			kept[i] = row
			continue
		}
		bySKU[sku] = len(products)
		products = append(products, p)
		kept = append(kept, row)
	}
	return products, kept
}

// imagePath places bare file names under the product image directory.
func imagePath(img string) string {
	if strings.Contains(img, "/") {
		return img
	}
	return path.Join(catalogEntity.ImageDir, img)
}

type existingProduct struct {
	ID      uint   `gorm:"column:id"`
	SKU     string `gorm:"column:sku"`
	Barcode string `gorm:"column:barcode"`
}

// checkBarcodes fails with repository.ErrDuplicate when a barcode is given
// to two SKUs in the batch or already belongs to another SKU. The upsert
// only resolves SKU conflicts; MySQL would otherwise apply the update to
// whichever row owns the barcode.
func checkBarcodes(db *gorm.DB, products []catalogEntity.Product, batchSize int) error {
	owner := make(map[string]string, len(products))
	barcodes := make([]string, 0, len(products))
	for _, p := range products {
		if p.Barcode == "" {
			continue
		}
		if sku, ok := owner[p.Barcode]; ok {
			return fmt.Errorf("%w: barcode %q given to both %s and %s", repository.ErrDuplicate, p.Barcode, sku, p.SKU)
		}
		owner[p.Barcode] = p.SKU
		barcodes = append(barcodes, p.Barcode)
	}
	for i := 0; i < len(barcodes); i += batchSize {
		end := i + batchSize
		if end > len(barcodes) {
			end = len(barcodes)
		}
		var chunk []existingProduct
		if err := db.Table("products").Select("id, sku, barcode").Where("barcode IN ?", barcodes[i:end]).Find(&chunk).Error; err != nil {
			return fmt.Errorf("lookup barcodes: %w", err)
		}
		for _, e := range chunk {
			if sku := owner[e.Barcode]; sku != e.SKU {
				return fmt.Errorf("%w: barcode %q for %s already belongs to %s", repository.ErrDuplicate, e.Barcode, sku, e.SKU)
			}
		}
	}
	return nil
}

// lookupSKUs batch-queries existing SKUs and returns sku->row.
func lookupSKUs(db *gorm.DB, skus []string, batchSize int) (map[string]existingProduct, error) {
	m := make(map[string]existingProduct, len(skus))
	for i := 0; i < len(skus); i += batchSize {
		end := i + batchSize
		if end > len(skus) {
			end = len(skus)
		}
		var chunk []existingProduct
		if err := db.Table("products").Select("id, sku, barcode").Where("sku IN ?", skus[i:end]).Find(&chunk).Error; err != nil {
			return nil, fmt.Errorf("lookup skus: %w", err)
		}
		for _, e := range chunk {
			m[e.SKU] = e
		}
	}
	return m, nil
}
