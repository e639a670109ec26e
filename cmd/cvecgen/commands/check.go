package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/cvecgen/am"
	"github.com/teranos/cvecgen/errors"
	"github.com/teranos/cvecgen/vecgen"
)

// CheckCmd verifies the generated files on disk are current
var CheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check generated files are up to date",
	Long: `Regenerate every configured unit into a temporary directory and compare
the result with the files under the output root.

Exits non-zero and lists the stale files when anything differs. Useful in CI
to catch edits to cvecgen.toml that were not followed by cvecgen generate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runCheck(cmd.Context(), cmd.OutOrStdout(), cfg, checkOutput)
	},
}

var checkOutput string

func init() {
	CheckCmd.Flags().StringVarP(&checkOutput, "output", "o", "", "Output root to check (default: output.root from config)")
}

func runCheck(ctx context.Context, out io.Writer, cfg *am.Config, output string) error {
	units, err := cfg.ResolveUnits()
	if err != nil {
		return err
	}

	tempDir, err := os.MkdirTemp("", "cvecgen-check-*")
	if err != nil {
		return errors.Wrap(err, "failed to create temp directory")
	}
	defer os.RemoveAll(tempDir)

	if err := vecgen.Run(ctx, units, cfg.DirWriter(tempDir), cfg.Options()); err != nil {
		return err
	}

	existing := cfg.DirWriter(output).Root
	result, err := vecgen.CompareDirectories(tempDir, existing)
	if err != nil {
		return err
	}

	if !result.UpToDate {
		fmt.Fprintf(out, "%s Generated files are out of date:\n", pterm.Red("✗"))
		for _, diff := range result.Differences {
			fmt.Fprintf(out, "  %s %s\n", pterm.Gray("→"), diff)
		}
		return errors.WithHint(
			errors.Wrapf(errors.ErrOutOfDate, "%d of the files under %s differ", len(result.Differences), existing),
			"run 'cvecgen generate' to update them")
	}

	fmt.Fprintf(out, "%s Generated files are up to date (%d units)\n", pterm.LightGreen("✓"), len(units))
	return nil
}
