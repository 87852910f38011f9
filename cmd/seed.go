package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"storefront.GO/model/schema"
	"storefront.GO/service/seed"
)

var (
	seedFile    string
	seedMigrate bool
)

var seedCmd = &cobra.Command{
	Use:   "db:seed",
	Short: "Load JSON fixtures keyed by table name",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := os.Open(seedFile)
		if err != nil {
			return fmt.Errorf("open fixtures: %w", err)
		}
		defer f.Close()

		rt, err := newRuntime(true)
		if err != nil {
			return err
		}
		defer rt.close()

		if seedMigrate {
			if err := schema.AutoMigrate(rt.db); err != nil {
				return err
			}
		}
		res, err := seed.Load(rt.db, f, rt.log.Named("seed"))
		if err != nil {
			return fmt.Errorf("seed failed: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "=== Seed Report ===")
		for _, table := range res.Tables {
			fmt.Fprintf(out, "%-30s %d\n", table, res.Counts[table])
		}
		fmt.Fprintf(out, "Total rows:  %d\nTotal time:  %s\n", res.TotalRows, res.TotalTime.Round(time.Millisecond))
		rt.log.Info("seed complete", zap.String("file", seedFile), zap.Int("rows", res.TotalRows))
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "fixture JSON file (required)")
	seedCmd.MarkFlagRequired("file")
	seedCmd.Flags().BoolVar(&seedMigrate, "migrate", false, "run AutoMigrate before loading")
	rootCmd.AddCommand(seedCmd)
}
