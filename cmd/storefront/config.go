package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"storefront/internal/config"
)

var forceFlag bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize the config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config to --config",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfgPath); err == nil && !forceFlag {
			return fmt.Errorf("%s exists (use --force to overwrite)", cfgPath)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if err := config.Save(cfgPath, config.Default()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "wrote", cfgPath)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceFlag, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}
