// Package seed loads JSON fixtures keyed by table name into the database.
package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormschema "gorm.io/gorm/schema"

	"storefront.GO/model/repository"
	"storefront.GO/model/schema"
)

var (
	ErrUnknownTable     = errors.New("unknown table")
	ErrMissingReference = errors.New("referenced row does not exist")
)

// Result holds per-table counts and timing from a load.
type Result struct {
	Tables    []string
	Counts    map[string]int
	TotalRows int
	TotalTime time.Duration
}

// Load reads a fixture document of the form {"table": [{column: value}]}
// and inserts every row inside one transaction. Tables are loaded in schema
// registration order regardless of their order in the document. Many-to-many
// fields take [{"id": N}] and link existing rows only.
func Load(db *gorm.DB, r io.Reader, log *zap.Logger) (*Result, error) {
	start := time.Now()
	if log == nil {
		log = zap.NewNop()
	}

	doc, err := readDocument(r)
	if err != nil {
		return nil, err
	}
	for table := range doc {
		if _, ok := schema.Lookup(table); !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
		}
	}

	result := &Result{Counts: make(map[string]int)}
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, e := range schema.Models() {
			rows, ok := doc[e.Table]
			if !ok {
				continue
			}
			n, err := loadTable(tx, e, rows)
			if err != nil {
				return err
			}
			result.Tables = append(result.Tables, e.Table)
			result.Counts[e.Table] = n
			result.TotalRows += n
			log.Info("seeded table", zap.String("table", e.Table), zap.Int("rows", n))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.TotalTime = time.Since(start)
	return result, nil
}

func readDocument(r io.Reader) (map[string][]map[string]interface{}, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var doc map[string][]map[string]interface{}
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return doc, nil
}

func loadTable(tx *gorm.DB, e schema.Entry, rows []map[string]interface{}) (int, error) {
	stmt := &gorm.Statement{DB: tx}
	if err := stmt.Parse(e.Model); err != nil {
		return 0, fmt.Errorf("%s: parse model: %w", e.Table, err)
	}
	s := stmt.Schema
	omits := associationOmits(s)
	modelType := reflect.TypeOf(e.Model).Elem()

	for i, row := range rows {
		v := reflect.New(modelType)
		if err := DecodeRow(row, v.Interface()); err != nil {
			return 0, fmt.Errorf("%s row %d: %w", e.Table, i, err)
		}
		if err := checkReferences(tx, s, v.Elem()); err != nil {
			return 0, fmt.Errorf("%s row %d: %w", e.Table, i, err)
		}
		if err := repository.Translate(tx.Omit(omits...).Create(v.Interface()).Error); err != nil {
			return 0, fmt.Errorf("%s row %d: %w", e.Table, i, err)
		}
	}
	return len(rows), nil
}

// associationOmits keeps Create from writing associated rows. Many-to-many
// links are still inserted into their join tables.
func associationOmits(s *gormschema.Schema) []string {
	var omits []string
	for _, rel := range s.Relationships.Relations {
		if rel.Type == gormschema.Many2Many {
			omits = append(omits, rel.Name+".*")
		} else {
			omits = append(omits, rel.Name)
		}
	}
	return omits
}

// checkReferences verifies every many-to-many id on v names an existing row.
func checkReferences(tx *gorm.DB, s *gormschema.Schema, v reflect.Value) error {
	for _, rel := range s.Relationships.Many2Many {
		elems := v.FieldByName(rel.Field.Name)
		if elems.Len() == 0 {
			continue
		}
		pk := rel.FieldSchema.PrioritizedPrimaryField
		ids := make([]interface{}, 0, elems.Len())
		uniq := make(map[interface{}]struct{}, elems.Len())
		for i := 0; i < elems.Len(); i++ {
			id, zero := pk.ValueOf(tx.Statement.Context, reflect.Indirect(elems.Index(i)))
			if zero {
				return fmt.Errorf("%s[%d]: missing id", rel.Name, i)
			}
			if _, seen := uniq[id]; !seen {
				uniq[id] = struct{}{}
				ids = append(ids, id)
			}
		}
		var n int64
		if err := tx.Table(rel.FieldSchema.Table).Where(pk.DBName+" IN ?", ids).Count(&n).Error; err != nil {
			return err
		}
		if int(n) != len(ids) {
			return fmt.Errorf("%s: %d of %d ids exist: %w", rel.Name, n, len(ids), ErrMissingReference)
		}
	}
	return nil
}
