package cmd

import (
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	productService "storefront.GO/service/product"
)

var (
	importFile  string
	importBatch int
	importComma string
)

var importCmd = &cobra.Command{
	Use:   "products:import",
	Short: "Import products from CSV, upserting by SKU",
	RunE: func(cmd *cobra.Command, args []string) error {
		comma, _ := utf8.DecodeRuneInString(importComma)
		if comma == utf8.RuneError {
			return fmt.Errorf("invalid --comma %q", importComma)
		}

		f, err := os.Open(importFile)
		if err != nil {
			return fmt.Errorf("open CSV: %w", err)
		}
		defer f.Close()

		rt, err := newRuntime(true)
		if err != nil {
			return err
		}
		defer rt.close()

		res, err := productService.ImportProducts(rt.db, f, productService.ImportOptions{
			BatchSize: importBatch,
			Comma:     comma,
			Cache:     productCache(rt),
		})
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		for _, w := range res.Warnings {
			rt.log.Warn("import", zap.String("warning", w))
		}
		fmt.Fprintf(cmd.OutOrStdout(), `
=== Import Report ===
CSV rows:       %d
Created:        %d
Updated:        %d
Skipped:        %d
Manufacturers:  %d links
Suppliers:      %d links
Total time:     %s
  - Processing: %s
  - DB upsert:  %s
=====================
`, res.TotalRows, res.Created, res.Updated, res.Skipped,
			res.Links["product_manufacturers"], res.Links["product_suppliers"],
			res.TotalTime.Round(time.Millisecond),
			res.ProcessTime.Round(time.Millisecond),
			res.DBTime.Round(time.Millisecond))
		return nil
	},
}

func init() {
	importCmd.Flags().StringVarP(&importFile, "file", "f", "", "CSV file path (required)")
	importCmd.MarkFlagRequired("file")
	importCmd.Flags().IntVar(&importBatch, "batch-size", 500, "Batch size for DB operations")
	importCmd.Flags().StringVar(&importComma, "comma", ",", "CSV field delimiter")
	rootCmd.AddCommand(importCmd)
}
