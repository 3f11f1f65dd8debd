// Command storefront runs the clothing storefront demo: a windowed shop with live 3D product
// previews, plus a few non-graphical subcommands for inspecting the catalog and config.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/env"
	"storefront/internal/logger"
)

var (
	cfgPath string
	verbose bool

	cfg config.Config
	lg  *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Clothing storefront with interactive 3D product previews",
	Long: `Storefront opens a window with the product catalog, cart, checkout, account,
and admin pages. Every product card shows a rotatable 3D preview; drag it to turn it.

Press ESC or the backquote key to open the command bar and type /help.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			return err
		}
		dotenv, err := env.Read(".env")
		if err != nil {
			return err
		}
		cfg.ApplyEnv(env.Lookup(dotenv))
		level := cfg.Log.Level
		if verbose {
			level = "debug"
		}
		if lg, err = logger.New(cfg.Log.Path, level); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		lg.Zap().Debug("config loaded", zap.String("path", cfgPath))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if lg != nil {
			_ = lg.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWindow()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", config.DefaultPath, "config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.AddCommand(catalogCmd, configCmd)
}

// loadCatalog builds the product store from the configured seed list.
func loadCatalog() (*catalog.Store, error) {
	products, err := catalog.LoadSeed(cfg.Catalog.SeedPath)
	if err != nil {
		return nil, err
	}
	return catalog.NewStore(products), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
