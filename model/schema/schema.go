// Package schema keeps the ordered list of persisted models and migrates them.
package schema

import (
	"fmt"
	"sort"
	"sync"

	"gorm.io/gorm"
	gormschema "gorm.io/gorm/schema"

	"storefront.GO/core/registry"
)

// Entry is one registered model.
type Entry struct {
	Table string
	Model interface{}
}

var mu sync.Mutex

func getEntries() []Entry {
	if v, ok := registry.GlobalRegistry.GetGlobal(registry.KeyRegistrySchema); ok && v != nil {
		return v.([]Entry)
	}
	return nil
}

// Register adds a model. Call from init(). Models are migrated and seeded in
// registration order, so register parents before children. Panics on a
// duplicate table or once the registry is locked.
func Register(table string, model interface{}) {
	mu.Lock()
	defer mu.Unlock()
	if registry.GlobalRegistry.IsLocked(registry.KeyRegistrySchema) {
		panic("schema/registry: locked (register only during init before AutoMigrate)")
	}
	entries := getEntries()
	for _, e := range entries {
		if e.Table == table {
			panic("schema/registry: duplicate table " + table)
		}
	}
	entries = append(entries, Entry{Table: table, Model: model})
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistrySchema, entries)
}

// Unregister removes a table (for tests).
func Unregister(table string) {
	mu.Lock()
	defer mu.Unlock()
	registry.GlobalRegistry.UnlockForTesting(registry.KeyRegistrySchema)
	entries := getEntries()
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if e.Table != table {
			out = append(out, e)
		}
	}
	registry.GlobalRegistry.SetGlobal(registry.KeyRegistrySchema, out)
}

// Models returns a copy of the registered models in order.
func Models() []Entry {
	entries := getEntries()
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup returns the model registered for table.
func Lookup(table string) (interface{}, bool) {
	for _, e := range getEntries() {
		if e.Table == table {
			return e.Model, true
		}
	}
	return nil, false
}

// AutoMigrate creates or updates every registered table, join tables and
// foreign keys included. Locks the registry.
func AutoMigrate(db *gorm.DB) error {
	if !registry.GlobalRegistry.IsLocked(registry.KeyRegistrySchema) {
		registry.GlobalRegistry.Lock(registry.KeyRegistrySchema)
	}
	entries := getEntries()
	models := make([]interface{}, len(entries))
	for i, e := range entries {
		models[i] = e.Model
	}
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// Column describes one persisted field.
type Column struct {
	Name       string
	DataType   string
	PrimaryKey bool
	Unique     bool
	NotNull    bool
}

// Table describes one registered model as GORM sees it.
type Table struct {
	Name       string
	Columns    []Column
	Indexes    []string
	JoinTables []string
}

// Describe parses every registered model without touching a database.
func Describe(namer gormschema.Namer) ([]Table, error) {
	if namer == nil {
		namer = gormschema.NamingStrategy{}
	}
	cache := &sync.Map{}
	var tables []Table
	for _, e := range getEntries() {
		s, err := gormschema.Parse(e.Model, cache, namer)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", e.Table, err)
		}
		t := Table{Name: s.Table}
		for _, f := range s.Fields {
			if f.DBName == "" {
				continue
			}
			t.Columns = append(t.Columns, Column{
				Name:       f.DBName,
				DataType:   string(f.DataType),
				PrimaryKey: f.PrimaryKey,
				Unique:     f.Unique,
				NotNull:    f.NotNull,
			})
		}
		for _, idx := range s.ParseIndexes() {
			t.Indexes = append(t.Indexes, idx.Name)
		}
		sort.Strings(t.Indexes)
		for _, rel := range s.Relationships.Many2Many {
			if rel.JoinTable != nil {
				t.JoinTables = append(t.JoinTables, rel.JoinTable.Table)
			}
		}
		tables = append(tables, t)
	}
	return tables, nil
}
