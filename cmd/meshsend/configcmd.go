package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rmacdonaldsmith/meshsend-go/internal/config"
	"github.com/rmacdonaldsmith/meshsend-go/pkg/failure"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}

	cmd.AddCommand(newConfigPathCommand())
	cmd.AddCommand(newConfigInitCommand())

	return cmd
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file location",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	}
}

func newConfigInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration template",
		Long: `Write the default configuration template to the configuration file
location. Refuses to overwrite an existing file unless --force is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath()
			if err != nil {
				return err
			}

			if !force {
				if _, found, err := config.Load(path); err != nil {
					return failure.SettingsFile(err)
				} else if found {
					return failure.SettingsFile(fmt.Errorf("configuration file already exists at %s (use --force to overwrite)", path))
				}
			}

			if err := config.WriteDefault(path); err != nil {
				return failure.SettingsFile(err)
			}
			fmt.Printf("Wrote default configuration to %s\n", path)
			fmt.Println("Edit it with your broker credentials and gateway ID before sending.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing configuration file")

	return cmd
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	path, err := config.DefaultPath()
	if err != nil {
		return "", failure.SettingsFile(err)
	}
	return path, nil
}
