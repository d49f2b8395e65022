package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/inodb/vibe-fasta/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage vibe-fasta configuration",
		Long:  "Show, get, or set configuration values. Config is stored in ~/.vibe-fasta.yaml.",
		Example: `  vibe-fasta config                       # show all config
  vibe-fasta config set output.format tab  # default to tab-delimited output
  vibe-fasta config get caps               # get a value`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(newConfigSetCmd())
	cmd.AddCommand(newConfigGetCmd())

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigSet(cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigGet(cmd.OutOrStdout(), args[0])
		},
	}
}

func runConfigShow(w io.Writer) error {
	out, err := yaml.Marshal(viper.AllSettings())
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	fmt.Fprint(w, string(out))
	return nil
}

func runConfigSet(w io.Writer, key, value string) error {
	v, err := parseConfigValue(key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	viper.Set(key, v)

	// Ensure config file exists
	cfgFile := viper.ConfigFileUsed()
	if cfgFile == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot determine home directory: %w", err)
		}
		cfgFile = filepath.Join(home, ".vibe-fasta.yaml")
	}

	if err := viper.WriteConfigAs(cfgFile); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(w, "Set %s = %s in %s\n", key, value, cfgFile)
	return nil
}

// parseConfigValue converts value to the type the key is read as, and
// rejects values the commands could not use.
func parseConfigValue(key, value string) (any, error) {
	switch strings.ToLower(key) {
	case "caps":
		b, ok := parseBool(value)
		if !ok {
			return nil, fmt.Errorf("%s must be true or false, got %q", key, value)
		}
		return b, nil
	case "output.format":
		if _, err := output.NewWriter(value, io.Discard, "", output.DefaultWidth); err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		return strings.ToLower(value), nil
	case "output.width", "batch.workers":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%s must be a non-negative integer, got %q", key, value)
		}
		return n, nil
	}

	// Unknown keys are stored as given, with boolean-like values parsed.
	if b, ok := parseBool(value); ok {
		return b, nil
	}
	return value, nil
}

func parseBool(value string) (bool, bool) {
	switch strings.ToLower(value) {
	case "true", "yes", "on":
		return true, true
	case "false", "no", "off":
		return false, true
	}
	return false, false
}

func runConfigGet(w io.Writer, key string) error {
	val := viper.Get(key)
	if val == nil {
		return fmt.Errorf("key %q is not set", key)
	}
	fmt.Fprintln(w, val)
	return nil
}
