package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/docmap-io/pdf2graph/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long: `Manage pdf2graph configuration.

Config file location: ~/.pdf2graph/config.yaml

Subcommands:
  show    display the effective configuration
  init    create a default config file
  path    print the config file path`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the effective configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		loader, err := configLoader()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), loader.ConfigPath())
		return nil
	},
}

var configForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(configCmd)
}

// configLoader picks the config location: --config beats the
// PDF2GRAPH_CONFIG environment variable beats the home-dir default.
func configLoader() (*config.Loader, error) {
	path := flagConfig
	if path == "" {
		path = config.GetEnvOrDefault("PDF2GRAPH_CONFIG", "")
	}
	if path != "" {
		return config.NewLoaderWithPath(path), nil
	}
	loader, err := config.NewLoader()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config loader: %w", err)
	}
	return loader, nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	loader, err := configLoader()
	if err != nil {
		return err
	}

	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if loader.Exists() {
		fmt.Fprintf(cmd.OutOrStdout(), "Config file: %s\n\n", loader.ConfigPath())
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Config file: (using defaults)\n\n")
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to format config: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	loader, err := configLoader()
	if err != nil {
		return err
	}

	if configForce {
		if err := loader.Save(config.DefaultConfig()); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}
	} else if loader.Exists() {
		return fmt.Errorf("config file already exists: %s (use --force to overwrite)", loader.ConfigPath())
	} else if err := loader.Init(); err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config file created: %s\n", loader.ConfigPath())
	return nil
}
