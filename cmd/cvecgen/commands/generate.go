package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/cvecgen/am"
	"github.com/teranos/cvecgen/vecgen"
)

// GenerateCmd writes the configured units
var GenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate C vector containers",
	Long: `Generate a header and a source file for every configured unit.

Headers are written to <root>/<header_dir>/<unit>.h and sources to
<root>/<source_dir>/<unit>.c (include/ and src/ by default). Existing
files are overwritten.

Examples:
  cvecgen generate                        # All units
  cvecgen generate --unit Vector          # Only the Vector unit
  cvecgen generate --output ./gen         # Different output root
  cvecgen generate --stdout               # Print to stdout`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return runGenerate(cmd.Context(), cmd.OutOrStdout(), cfg, generateOpts)
	},
}

// generateOptions holds the generate flags
type generateOptions struct {
	Units  []string
	Output string
	Stdout bool
}

var generateOpts generateOptions

func init() {
	GenerateCmd.Flags().StringSliceVarP(&generateOpts.Units, "unit", "u", nil, "Generate only these units (repeatable)")
	GenerateCmd.Flags().StringVarP(&generateOpts.Output, "output", "o", "", "Output root (default: output.root from config)")
	GenerateCmd.Flags().BoolVar(&generateOpts.Stdout, "stdout", false, "Print generated files instead of writing them")
}

func runGenerate(ctx context.Context, out io.Writer, cfg *am.Config, opts generateOptions) error {
	units, err := selectedUnits(cfg, opts.Units)
	if err != nil {
		return err
	}

	if len(units) == 0 {
		fmt.Fprintf(out, "%s no units configured in %s\n", pterm.Yellow("!"), configName(cfg))
		return nil
	}

	if opts.Stdout {
		// One unit at a time keeps the printed order equal to the config order
		sequential := cfg.Options()
		sequential.Parallelism = 1
		return vecgen.Run(ctx, units, vecgen.NewStreamWriter(out), sequential)
	}

	w := cfg.DirWriter(opts.Output)
	if err := vecgen.Run(ctx, units, w, cfg.Options()); err != nil {
		return err
	}

	for _, u := range units {
		header, source := w.Paths(u.Name)
		fmt.Fprintf(out, "%s %s\n", pterm.LightGreen("✓ Generated"), displayPath(header))
		fmt.Fprintf(out, "%s %s\n", pterm.LightGreen("✓ Generated"), displayPath(source))
	}
	return nil
}

// displayPath shortens path relative to the working directory when possible
func displayPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	wd, err := filepath.Abs(".")
	if err != nil {
		return path
	}
	if rel, err := filepath.Rel(wd, abs); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}

func configName(cfg *am.Config) string {
	if cfg.Source() == "" {
		return "defaults (no " + am.ProjectConfigName + " found)"
	}
	return cfg.Source()
}
