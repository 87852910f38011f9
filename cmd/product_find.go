package cmd

import (
	"encoding/json"
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"storefront.GO/config"
	"storefront.GO/core/cache"
	catalogEntity "storefront.GO/model/entity/catalog"
	catalogRepo "storefront.GO/model/repository/catalog"
)

var (
	findSKU     string
	findBarcode string
)

var findCmd = &cobra.Command{
	Use:   "products:find",
	Short: "Look up a product by SKU or barcode (cached in Redis when REDIS_ADDR is set)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if (findSKU == "") == (findBarcode == "") {
			return errors.New("set exactly one of --sku or --barcode")
		}
		rt, err := newRuntime(true)
		if err != nil {
			return err
		}
		defer rt.close()

		repo := catalogRepo.NewProductRepository(rt.db).WithCache(productCache(rt), 0)
		var p *catalogEntity.Product
		if findSKU != "" {
			p, err = repo.FindBySKU(findSKU)
		} else {
			p, err = repo.FindByBarcode(findBarcode)
		}
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(p)
	},
}

// productCache prefers Redis and falls back to the in-process cache.
func productCache(rt *runtime) cache.Store {
	if err := config.InitRedis(rt.cfg.Redis); err != nil {
		rt.log.Warn("redis not reachable, caching in process", zap.Error(err))
	}
	if config.RedisClient != nil {
		return cache.NewRedisStore(config.RedisClient, rt.cfg.AppName+":")
	}
	return cache.GetInstance()
}

func init() {
	findCmd.Flags().StringVar(&findSKU, "sku", "", "product SKU")
	findCmd.Flags().StringVar(&findBarcode, "barcode", "", "product barcode")
	rootCmd.AddCommand(findCmd)
}
