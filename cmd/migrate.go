package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"storefront.GO/config"
	"storefront.GO/migrations"
	"storefront.GO/model/schema"
)

const (
	modeAuto = "auto"
	modeSQL  = "sql"
)

var (
	migrateMode   string
	rollbackSteps int
)

var migrateCmd = &cobra.Command{
	Use:   "db:migrate",
	Short: "Create or update the schema (GORM AutoMigrate or embedded MySQL migrations)",
	RunE: func(cmd *cobra.Command, args []string) error {
		switch migrateMode {
		case modeAuto:
			rt, err := newRuntime(true)
			if err != nil {
				return err
			}
			defer rt.close()
			if err := schema.AutoMigrate(rt.db); err != nil {
				return err
			}
			rt.log.Info("schema migrated", zap.String("mode", modeAuto), zap.Int("tables", len(schema.Models())))
			return nil
		case modeSQL:
			rt, err := sqlRuntime()
			if err != nil {
				return err
			}
			defer rt.close()
			if err := migrations.Up(rt.cfg.DB.MySQLDSN); err != nil {
				return fmt.Errorf("migrate up: %w", err)
			}
			version, _, err := migrations.Version(rt.cfg.DB.MySQLDSN)
			if err != nil {
				return err
			}
			rt.log.Info("schema migrated", zap.String("mode", modeSQL), zap.Uint("version", version))
			return nil
		default:
			return fmt.Errorf("unknown --mode %q (want %s or %s)", migrateMode, modeAuto, modeSQL)
		}
	},
}

var rollbackCmd = &cobra.Command{
	Use:   "db:rollback",
	Short: "Roll back embedded MySQL migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := sqlRuntime()
		if err != nil {
			return err
		}
		defer rt.close()
		if err := migrations.Down(rt.cfg.DB.MySQLDSN, rollbackSteps); err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
		rt.log.Info("schema rolled back", zap.Int("steps", rollbackSteps))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "db:version",
	Short: "Print the applied migration version",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := sqlRuntime()
		if err != nil {
			return err
		}
		defer rt.close()
		version, dirty, err := migrations.Version(rt.cfg.DB.MySQLDSN)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty=%t)\n", version, dirty)
		return nil
	},
}

// sqlRuntime is newRuntime for the golang-migrate commands, which only
// target MySQL.
func sqlRuntime() (*runtime, error) {
	rt, err := newRuntime(false)
	if err != nil {
		return nil, err
	}
	if rt.cfg.DB.Driver != config.DriverMySQL {
		rt.close()
		return nil, fmt.Errorf("SQL migrations need DB_DRIVER=%s, have %q", config.DriverMySQL, rt.cfg.DB.Driver)
	}
	return rt, nil
}

func init() {
	migrateCmd.Flags().StringVar(&migrateMode, "mode", modeAuto, "auto (GORM AutoMigrate) or sql (embedded MySQL migrations)")
	rollbackCmd.Flags().IntVar(&rollbackSteps, "steps", 1, "number of migrations to roll back (0 = all)")
	rootCmd.AddCommand(migrateCmd, rollbackCmd, versionCmd)
}
