package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/homology/internal/config"
)

func configCmd(cfgFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage homology configuration",
		Long:  `Commands for creating and validating .homology.yaml configuration files.`,
		// Config commands must work with a broken or missing config.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .homology.yaml template",
		Long: `Creates a .homology.yaml configuration file with all available options
and their default values.

Example:
  homology config init
  homology config init --output /etc/homology/.homology.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			toStdout, _ := cmd.Flags().GetBool("stdout")
			output, _ := cmd.Flags().GetString("output")

			template, err := config.GenerateTemplate()
			if err != nil {
				return err
			}
			if toStdout {
				_, err = fmt.Fprint(cmd.OutOrStdout(), template)
				return err
			}
			if _, err := os.Stat(output); err == nil {
				return fmt.Errorf("file %s already exists (use --stdout to print to stdout)", output)
			}
			if err := os.WriteFile(output, []byte(template), 0o644); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Created %s\n", output)

			return nil
		},
	}
	initCmd.Flags().StringP("output", "o", ".homology.yaml", "output file path")
	initCmd.Flags().Bool("stdout", false, "print to stdout instead of file")

	validateCmd := &cobra.Command{
		Use:   "validate [file]",
		Short: "Validate a .homology.yaml configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := findConfig(args, *cfgFile)
			if err != nil {
				return err
			}
			if _, err := config.LoadFromFile(path); err != nil {
				return fmt.Errorf("validation failed for %s:\n%w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Config file %s is valid\n", path)

			return nil
		},
	}

	cmd.AddCommand(initCmd, validateCmd)

	return cmd
}

// findConfig picks the explicit argument, then --config, then the default
// search locations.
func findConfig(args []string, flagPath string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if flagPath != "" {
		return flagPath, nil
	}
	candidates := []string{".homology.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".homology.yaml"))
	}
	for _, c := range candidates {
		if _, err := os.Stat(c); err == nil {
			return c, nil
		}
	}

	return "", errors.New("no config file found (try: homology config validate <file>)")
}
