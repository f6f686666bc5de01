// Command termplot plots functions, predicates and point sets in the
// terminal.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"honnef.co/go/termplot/internal/config"
)

var (
	// Global flags
	verbose    bool
	configPath string

	// Plot flags
	domainFlag  string
	rangeFlag   string
	sizeFlag    string
	titleFlag   string
	glyphsFlag  string
	noAxes      bool
	interactive bool

	logger *zap.Logger
	cfg    *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "termplot",
	Short: "Plot functions and data in the terminal",
	Long: `termplot renders plots as text.

Functions are given as expressions of x, such as "sin(x)/x" or "(x-5)**2".
Without --domain, the interesting part of a function is found automatically.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.DefaultPath()
		}
		var err error
		cfg, err = config.Load(path)
		if err != nil {
			return err
		}

		zc := zap.NewProductionConfig()
		level, err := cfg.LogLevel()
		if err != nil {
			return err
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zc.Level = zap.NewAtomicLevelAt(level)
		logger, err = zc.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var domainCmd = &cobra.Command{
	Use:   "domain EXPR",
	Short: "Print the discovered plot domain of a function",
	Args:  cobra.ExactArgs(1),
	RunE:  runDomain,
}

var funcCmd = &cobra.Command{
	Use:   "func EXPR",
	Short: "Plot a function of x",
	Example: `  termplot func 'sin(x)'
  termplot func 'x**3 - 3*x' --domain -3,3 --size 80x20`,
	Args: cobra.ExactArgs(1),
	RunE: runFunc,
}

var regionCmd = &cobra.Command{
	Use:     "region PRED",
	Short:   "Plot the region where a predicate of x and y holds",
	Example: `  termplot region 'x*x + y*y < 1' --domain -1.5,1.5 --range -1.5,1.5`,
	Args:    cobra.ExactArgs(1),
	RunE:    runRegion,
}

var scatterCmd = &cobra.Command{
	Use:   "scatter [FILE]",
	Short: "Plot whitespace separated x y pairs",
	Long: `Reads one "x y" pair per line from FILE, or from standard input if FILE is
omitted or "-". Empty lines and lines starting with # are skipped.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScatter,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: user config directory)")

	for _, cmd := range []*cobra.Command{funcCmd, regionCmd, scatterCmd} {
		cmd.Flags().StringVar(&domainFlag, "domain", "", "Visible domain as low,high")
		cmd.Flags().StringVar(&rangeFlag, "range", "", "Visible range as low,high")
		cmd.Flags().StringVar(&sizeFlag, "size", "", "Plot size as WIDTHxHEIGHT")
		cmd.Flags().StringVar(&titleFlag, "title", "", "Title above the plot")
		cmd.Flags().BoolVar(&noAxes, "no-axes", false, "Omit the axes")
		cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Show the plot in a full-screen viewer")
	}
	scatterCmd.Flags().StringVar(&glyphsFlag, "glyphs", "", "Glyph set: auto, dots, blocks or braille")

	rootCmd.AddCommand(domainCmd)
	rootCmd.AddCommand(funcCmd)
	rootCmd.AddCommand(regionCmd)
	rootCmd.AddCommand(scatterCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
