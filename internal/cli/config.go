package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/treemap/pkg/config"
)

// configCommand creates the config inspection command.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect the configuration file",
	}

	cmd.AddCommand(c.configPathCommand())
	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configInitCommand())

	return cmd
}

// configPathCommand creates the "config path" subcommand.
func (c *CLI) configPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.resolveConfigPath()
			if err != nil {
				return fmt.Errorf("get config path: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

// configShowCommand creates the "config show" subcommand.
func (c *CLI) configShowCommand() *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if raw {
				return cfg.Write(cmd.OutOrStdout())
			}
			p := newPrinter(cmd.OutOrStdout())
			p.keyValue("width", fmt.Sprint(cfg.Width))
			p.keyValue("height", fmt.Sprint(cfg.Height))
			p.keyValue("resize step", fmt.Sprint(cfg.ResizeStep))
			p.keyValue("seed", fmt.Sprint(cfg.Seed))
			p.keyValue("ignore", strings.Join(cfg.Ignore, ", "))
			p.keyValue("symlinks", fmt.Sprint(cfg.FollowSymlinks))
			p.keyValue("cache ttl", cfg.CacheTTL.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&raw, "toml", false, "print as TOML")
	return cmd
}

// configInitCommand creates the "config init" subcommand, which writes the
// defaults to the config path unless a file already exists there.
func (c *CLI) configInitCommand() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := c.resolveConfigPath()
			if err != nil {
				return fmt.Errorf("get config path: %w", err)
			}
			if err := config.Create(path, force); err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			p.success("Wrote default config")
			p.file(path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}
