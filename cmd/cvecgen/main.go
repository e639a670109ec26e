package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/cvecgen/cmd/cvecgen/commands"
	"github.com/teranos/cvecgen/errors"
	"github.com/teranos/cvecgen/logger"
)

var rootCmd = &cobra.Command{
	Use:   "cvecgen",
	Short: "cvecgen - C growable-array container generator",
	Long: `cvecgen - Generate typed C vector containers.

Each configured unit becomes a header/source pair holding one VectorX
container per element type, with init, deinit, add, get and set.

Available commands:
  generate - Write the configured units to include/ and src/
  check    - Fail if the files on disk differ from a fresh generation
  watch    - Regenerate whenever the config file changes
  am       - Manage cvecgen configuration ("I am")
  version  - Show version information

Examples:
  cvecgen generate                 # Generate every configured unit
  cvecgen generate --unit Vector   # Generate one unit
  cvecgen generate --stdout        # Print instead of writing files
  cvecgen check                    # Verify generated files are current`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		verbosity, _ := cmd.Flags().GetCount("verbose")
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		if err := logger.Initialize(jsonLogs, verbosity); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().CountP("verbose", "v", "Increase output verbosity (repeat for more detail: -v, -vv)")
	rootCmd.PersistentFlags().Bool("json-logs", false, "Emit logs as JSON on stderr")
	rootCmd.PersistentFlags().StringVar(&commands.ConfigPath, "config", "", "Config file (default: nearest cvecgen.toml)")

	// Add commands
	rootCmd.AddCommand(commands.GenerateCmd)
	rootCmd.AddCommand(commands.CheckCmd)
	rootCmd.AddCommand(commands.WatchCmd)
	rootCmd.AddCommand(commands.AmCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	err := rootCmd.Execute()
	logger.Cleanup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		for _, hint := range errors.GetAllHints(err) {
			fmt.Fprintf(os.Stderr, "Hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
