package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/teranos/cvecgen/am"
	"github.com/teranos/cvecgen/errors"
	"github.com/teranos/cvecgen/vecgen"
)

// AmCmd represents the am (configuration) command
var AmCmd = &cobra.Command{
	Use:   "am",
	Short: "Manage cvecgen configuration",
	Long: `am - Manage cvecgen configuration ("I am")

Display and check the configuration cvecgen generates from.

Configuration sources (in order of precedence):
1. Environment variables (CVECGEN_* prefix)
2. Project config (./cvecgen.toml, searched up directories)
3. User config (~/.cvecgen/config.toml)
4. Default values

Examples:
  cvecgen am show                    # Show current configuration
  cvecgen am show --format json      # Show configuration in JSON format
  cvecgen am validate                # Validate current configuration
  cvecgen am where                   # Show where each setting comes from
  cvecgen am add Vector Token Token  # Register an element type`,
}

var amShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  "Display the merged cvecgen configuration from all sources",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := rawConfig()
		if err != nil {
			return err
		}
		return runAmShow(cmd.OutOrStdout(), cfg, configFormat)
	},
}

var amValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate current configuration",
	Long:  "Validate the configuration, every unit and every referenced manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadConfig(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s Configuration is valid\n", pterm.LightGreen("✓"))
		return nil
	},
}

var amWhereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where configuration is loaded from",
	Long: `Show the configuration cascade and which files were checked.

Lists all configuration files in order of precedence, showing
which files exist and which are missing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAmWhere(cmd.OutOrStdout())
	},
}

var amAddCmd = &cobra.Command{
	Use:   "add <unit> <element-type> <name>",
	Short: "Add an element type to a unit",
	Long: `Append an element type to a unit in the config file, creating the unit
(and the file) when missing. The previous file is kept as <file>.back1.

Examples:
  cvecgen am add Vector Token Token --include tokens.h
  cvecgen am add Vector "char *" Str`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAmAdd(cmd.OutOrStdout(), args[0], args[1], args[2], addIncludes)
	},
}

var (
	configFormat string
	addIncludes  []string
)

func init() {
	// Add flags
	amShowCmd.Flags().StringVar(&configFormat, "format", "toml", "Output format: toml, json, yaml")
	amAddCmd.Flags().StringSliceVarP(&addIncludes, "include", "i", nil, "Header the element type needs (repeatable)")

	// Add subcommands
	AmCmd.AddCommand(amShowCmd)
	AmCmd.AddCommand(amValidateCmd)
	AmCmd.AddCommand(amWhereCmd)
	AmCmd.AddCommand(amAddCmd)
}

// rawConfig loads without validating, so broken configs can still be shown
func rawConfig() (*am.Config, error) {
	if ConfigPath != "" {
		return am.LoadFromFile(ConfigPath)
	}
	return am.Load()
}

func runAmShow(out io.Writer, cfg *am.Config, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to JSON")
		}
		fmt.Fprintln(out, string(data))

	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to YAML")
		}
		fmt.Fprintf(out, "# cvecgen configuration\n%s", string(data))

	case "toml":
		data, err := toml.Marshal(cfg)
		if err != nil {
			return errors.Wrap(err, "failed to marshal config to TOML")
		}
		fmt.Fprintf(out, "# cvecgen configuration\n%s", string(data))

	default:
		return errors.WithHint(
			errors.Newf("unsupported format: %s", format),
			"supported formats: toml, json, yaml")
	}

	return nil
}

func runAmWhere(out io.Writer) error {
	paths := am.ConfigPaths()
	if ConfigPath != "" {
		paths = []string{ConfigPath}
	}

	intro, err := am.Introspect(paths)
	if err != nil {
		return errors.Wrap(err, "failed to get config introspection")
	}

	// Show config cascade header
	fmt.Fprintln(out, "Configuration cascade (later overrides earlier):")
	fmt.Fprintln(out, "  1. [DEFAULT]  Built-in defaults")
	fmt.Fprintf(out, "  2. [USER]     ~/%s\n", filepath.Join(am.UserConfigDir, am.UserConfigName))
	fmt.Fprintf(out, "  3. [PROJECT]  ./%s (searches up directories)\n", am.ProjectConfigName)
	fmt.Fprintf(out, "  4. [ENV]      %s_* environment variables\n", am.EnvPrefix)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Files checked:")
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			fmt.Fprintf(out, "  %s %s (missing)\n", pterm.Gray("-"), path)
			continue
		}
		fmt.Fprintf(out, "  %s %s\n", pterm.LightGreen("✓"), path)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Active configuration:")
	for _, setting := range intro.Settings {
		valueStr := fmt.Sprintf("%v", setting.Value)
		// Truncate long values
		if len(valueStr) > 50 {
			valueStr = valueStr[:47] + "..."
		}
		fmt.Fprintf(out, "  %-28s = %-30s %s\n", setting.Key, valueStr, pterm.Gray("["+string(setting.Source)+"] "+setting.SourcePath))
	}
	return nil
}

func runAmAdd(out io.Writer, unit, elementType, name string, includes []string) error {
	path := ConfigPath
	if path == "" {
		cfg, err := am.Load()
		if err != nil {
			return errors.Wrap(err, "failed to load config")
		}
		path = cfg.Source()
	}
	if path == "" {
		path = am.ProjectConfigName
	}

	if err := am.AddType(path, unit, includes, am.TypeConfig{Type: elementType, Name: name}); err != nil {
		return err
	}

	fmt.Fprintf(out, "%s Added %s (%s) to unit %s in %s\n",
		pterm.LightGreen("✓"), vecgen.TypeName(name), elementType, unit, path)
	return nil
}
