package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/donut-dash/internal/config"
)

var flagForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or install game tuning",
	Long: `Inspect the game tuning used by play, window and ssh.

Tuning is searched in order:
  1. --config <path>
  2. ~/.donutdash/configs/donutdash.yaml
  3. ./configs/donutdash.yaml
  4. built-in defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective tuning as YAML",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg, err := loadGameConfig()
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check <path>",
	Short: "Validate a tuning file",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		if _, err := config.LoadFile(config.ExpandHome(args[0])); err != nil {
			return err
		}
		fmt.Printf("%s: ok\n", args[0])
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default tuning to ~/.donutdash/configs",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		home := config.HomeDir()
		if home == "" {
			return fmt.Errorf("cannot determine home directory")
		}
		path := filepath.Join(home, "configs", config.FileName)
		if _, err := os.Stat(path); err == nil && !flagForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
		if err := os.WriteFile(path, config.DefaultYAML(), 0o644); err != nil {
			return fmt.Errorf("failed to write config %s: %w", path, err)
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configShowCmd, configCheckCmd, configInitCmd)
}
