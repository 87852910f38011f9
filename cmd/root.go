// Package cmd holds the storefront CLI.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"storefront.GO/config"
	_ "storefront.GO/model/entity"
)

var rootCmd = &cobra.Command{
	Use:           "storefront",
	Short:         "Storefront schema, migration and data tooling",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute applies registered extension commands and runs the CLI.
func Execute() {
	Apply()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// runtime is what database commands share.
type runtime struct {
	cfg *config.Config
	log *zap.Logger
	db  *gorm.DB
}

func (rt *runtime) close() {
	if rt.db != nil {
		if sqlDB, err := rt.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = rt.log.Sync()
}

// newRuntime loads config and the logger. The database is opened only when
// withDB is set.
func newRuntime(withDB bool) (*runtime, error) {
	cfg := config.LoadAppConfig()
	log, err := config.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	rt := &runtime{cfg: cfg, log: log}
	if !withDB {
		return rt, nil
	}
	db, err := config.NewDB(cfg.DB, log)
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	rt.db = db
	return rt, nil
}
