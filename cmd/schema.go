package cmd

import (
	"fmt"
	"strings"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"

	"storefront.GO/config"
	"storefront.GO/model/schema"
)

var schemaNoBanner bool

var schemaCmd = &cobra.Command{
	Use:   "schema:info",
	Short: "Describe the registered tables, columns and indexes",
	RunE: func(cmd *cobra.Command, args []string) error {
		tables, err := schema.Describe(nil)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if !schemaNoBanner {
			fmt.Fprintln(out, figure.NewFigure(config.LoadAppConfig().AppName, "small", true).String())
		}
		for _, t := range tables {
			fmt.Fprintf(out, "%s\n", t.Name)
			for _, c := range t.Columns {
				var flags []string
				if c.PrimaryKey {
					flags = append(flags, "pk")
				}
				if c.Unique {
					flags = append(flags, "unique")
				}
				if c.NotNull {
					flags = append(flags, "not null")
				}
				fmt.Fprintf(out, "  %-28s %-10s %s\n", c.Name, c.DataType, strings.Join(flags, ","))
			}
			if len(t.Indexes) > 0 {
				fmt.Fprintf(out, "  indexes: %s\n", strings.Join(t.Indexes, ", "))
			}
			if len(t.JoinTables) > 0 {
				fmt.Fprintf(out, "  join tables: %s\n", strings.Join(t.JoinTables, ", "))
			}
		}
		return nil
	},
}

func init() {
	schemaCmd.Flags().BoolVar(&schemaNoBanner, "no-banner", false, "skip the ASCII banner")
	rootCmd.AddCommand(schemaCmd)
}
