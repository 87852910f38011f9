// Package custom shows how extensions hook into the CLI: register from
// init() and blank-import the package from main.
package custom

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"storefront.GO/cmd"
	"storefront.GO/config"
	"storefront.GO/model/schema"
)

func init() {
	cmd.Register(&cobra.Command{
		Use:   "db:stats",
		Short: "Print row counts for every registered table",
		RunE: func(c *cobra.Command, args []string) error {
			cfg := config.LoadAppConfig()
			log, err := config.NewLogger(cfg.Env, cfg.LogLevel)
			if err != nil {
				return err
			}
			defer log.Sync()
			db, err := config.NewDB(cfg.DB, log)
			if err != nil {
				return err
			}
			if sqlDB, err := db.DB(); err == nil {
				defer sqlDB.Close()
			}
			counts, err := TableCounts(db)
			if err != nil {
				return err
			}
			for _, row := range counts {
				fmt.Fprintf(c.OutOrStdout(), "%-30s %d\n", row.Table, row.Rows)
			}
			return nil
		},
	})
}

// TableCount is the row count of one table.
type TableCount struct {
	Table string
	Rows  int64
}

// TableCounts counts rows in every registered table, in registration order.
func TableCounts(db *gorm.DB) ([]TableCount, error) {
	entries := schema.Models()
	out := make([]TableCount, 0, len(entries))
	for _, e := range entries {
		var n int64
		if err := db.Model(e.Model).Count(&n).Error; err != nil {
			return nil, fmt.Errorf("count %s: %w", e.Table, err)
		}
		out = append(out, TableCount{Table: e.Table, Rows: n})
	}
	return out, nil
}
