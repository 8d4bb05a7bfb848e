package cli

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/srtgen/srtgen/internal/settings"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or reset the persisted settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings and their file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := settings.DefaultPath()
		current := settings.Load(path)

		data, err := toml.Marshal(current)
		if err != nil {
			return fmt.Errorf("failed to encode settings: %w", err)
		}

		fmt.Printf("# %s\n%s", path, data)
		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore the built-in default settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := settings.DefaultPath()
		if err := settings.Save(settings.Default(), path); err != nil {
			return err
		}
		fmt.Printf("Settings reset: %s\n", path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configResetCmd)
	rootCmd.AddCommand(configCmd)
}
