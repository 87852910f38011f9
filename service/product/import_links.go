package product

import (
	"fmt"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// linkTable describes a many-to-many link column in the CSV. Values are
// ids separated by '|'.
type linkTable struct {
	table    string
	column   string
	refTable string
	leftKey  string
	rightKey string
}

var linkColumns = map[string]*linkTable{
	"manufacturer_ids": {table: "product_manufacturers", column: "manufacturer_ids", refTable: "manufacturers", leftKey: "product_id", rightKey: "manufacturer_id"},
	"supplier_ids":     {table: "product_suppliers", column: "supplier_ids", refTable: "suppliers", leftKey: "product_id", rightKey: "supplier_id"},
}

type linkRow struct {
	sku string
	ref uint
}

// linkData holds collected link rows for one join table.
type linkData struct {
	*linkTable
	rows []linkRow
}

// collectLinks parses the link columns present in the header.
func collectLinks(rows [][]string, colIndex map[string]int, skuCol int, result *ImportResult) []*linkData {
	var out []*linkData
	for _, col := range []string{"manufacturer_ids", "supplier_ids"} {
		ci, ok := colIndex[col]
		if !ok {
			continue
		}
		d := &linkData{linkTable: linkColumns[col]}
		seen := make(map[linkRow]bool)
		for _, row := range rows {
			if ci >= len(row) {
				continue
			}
			sku := strings.TrimSpace(row[skuCol])
			for _, part := range strings.Split(row[ci], "|") {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				id, err := strconv.ParseUint(part, 10, 64)
				if err != nil || id == 0 {
					result.Warnings = append(result.Warnings, fmt.Sprintf("sku=%s: invalid %s value %q", sku, col, part))
					continue
				}
				lr := linkRow{sku: sku, ref: uint(id)}
				if !seen[lr] {
					seen[lr] = true
					d.rows = append(d.rows, lr)
				}
			}
		}
		out = append(out, d)
	}
	return out
}

// flushLinks inserts join rows, ignoring links that already exist. Every
// referenced id must exist.
func flushLinks(db *gorm.DB, d *linkData, skuToID map[string]uint, opts ImportOptions) (int, error) {
	if len(d.rows) == 0 {
		return 0, nil
	}
	refs := make(map[uint]struct{})
	for _, r := range d.rows {
		refs[r.ref] = struct{}{}
	}
	ids := make([]uint, 0, len(refs))
	for id := range refs {
		ids = append(ids, id)
	}
	var n int64
	if err := db.Table(d.refTable).Where("id IN ?", ids).Count(&n).Error; err != nil {
		return 0, err
	}
	if int(n) != len(ids) {
		return 0, fmt.Errorf("%s: %d of %d referenced %s exist: %w", d.column, n, len(ids), d.refTable, gorm.ErrRecordNotFound)
	}

	values := make([]map[string]interface{}, 0, len(d.rows))
	for _, r := range d.rows {
		pid, ok := skuToID[r.sku]
		if !ok {
			return 0, fmt.Errorf("%s: sku %q was not written: %w", d.column, r.sku, gorm.ErrRecordNotFound)
		}
		values = append(values, map[string]interface{}{d.leftKey: pid, d.rightKey: r.ref})
	}
	if len(values) == 0 {
		return 0, nil
	}
	err := db.Table(d.table).
		Clauses(clause.OnConflict{DoNothing: true}).
		CreateInBatches(values, opts.BatchSize).Error
	if err != nil {
		return 0, fmt.Errorf("flush %s: %w", d.table, err)
	}
	return len(values), nil
}
