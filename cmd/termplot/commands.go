package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"honnef.co/go/termplot"
	"honnef.co/go/termplot/internal/config"
	"honnef.co/go/termplot/internal/expr"
	"honnef.co/go/termplot/internal/view"
)

var (
	errInterval = errors.New("invalid interval")
	errSize     = errors.New("invalid size")
	errPoint    = errors.New("invalid point")
)

var titleStyle = lipgloss.NewStyle().Bold(true)

// settings returns the loaded configuration, or the defaults when the root
// command did not run.
func settings() *config.Config {
	if cfg == nil {
		return config.DefaultConfig()
	}
	return cfg
}

// parseInterval parses "low,high".
func parseInterval(s string) (termplot.Interval, error) {
	lo, hi, ok := strings.Cut(s, ",")
	if !ok {
		return termplot.Interval{}, fmt.Errorf("%w: %q, want low,high", errInterval, s)
	}
	low, err := strconv.ParseFloat(strings.TrimSpace(lo), 64)
	if err != nil {
		return termplot.Interval{}, fmt.Errorf("%w: %q: %w", errInterval, s, err)
	}
	high, err := strconv.ParseFloat(strings.TrimSpace(hi), 64)
	if err != nil {
		return termplot.Interval{}, fmt.Errorf("%w: %q: %w", errInterval, s, err)
	}
	if !(low < high) {
		return termplot.Interval{}, fmt.Errorf("%w: %q is empty", errInterval, s)
	}
	return termplot.Iv(low, high), nil
}

// parseSize parses "WIDTHxHEIGHT".
func parseSize(s string) (termplot.Size, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return termplot.Size{}, fmt.Errorf("%w: %q, want WIDTHxHEIGHT", errSize, s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return termplot.Size{}, fmt.Errorf("%w: %q: %w", errSize, s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return termplot.Size{}, fmt.Errorf("%w: %q: %w", errSize, s, err)
	}
	if w <= 0 || h <= 0 {
		return termplot.Size{}, fmt.Errorf("%w: %q", errSize, s)
	}
	return termplot.Sz(w, h), nil
}

// plotOptions combines the configuration with the plot flags.
func plotOptions(def termplot.Size) (termplot.PlotOptions, error) {
	c := settings()
	opts := c.PlotOptions()
	opts.DomainOptions.Logger = logger
	if sizeFlag != "" {
		sz, err := parseSize(sizeFlag)
		if err != nil {
			return opts, err
		}
		opts.Size = sz
	} else if def != (termplot.Size{}) {
		opts.Size = def
	}
	if domainFlag != "" {
		iv, err := parseInterval(domainFlag)
		if err != nil {
			return opts, err
		}
		opts.Domain = iv
	}
	if rangeFlag != "" {
		iv, err := parseInterval(rangeFlag)
		if err != nil {
			return opts, err
		}
		opts.Range = iv
	}
	if noAxes {
		opts.Axes = false
	}
	return opts, nil
}

// output prints p, or shows it in the viewer with --interactive.
func output(cmd *cobra.Command, p termplot.Plot) error {
	p.Title = ""
	lines := p.Lines()
	if interactive {
		return view.Show(titleFlag, lines)
	}
	w := cmd.OutOrStdout()
	if titleFlag != "" {
		fmt.Fprintln(w, titleStyle.Render(titleFlag))
	}
	for _, l := range lines {
		fmt.Fprintln(w, l)
	}
	return nil
}

func runDomain(cmd *cobra.Command, args []string) error {
	f, err := expr.Compile(args[0])
	if err != nil {
		return err
	}
	opts := settings().DomainOptions()
	opts.Logger = logger
	iv := termplot.DeterminePlotDomainOpt(f.Call, opts)
	logger.Debug("domain", zap.String("expr", f.String()), zap.Stringer("domain", iv))
	fmt.Fprintf(cmd.OutOrStdout(), "%g %g\n", iv.Low, iv.High)
	return nil
}

func runFunc(cmd *cobra.Command, args []string) error {
	f, err := expr.Compile(args[0])
	if err != nil {
		return err
	}
	opts, err := plotOptions(termplot.Size{})
	if err != nil {
		return err
	}
	p := termplot.FunctionPlot(f.Call, opts)
	logger.Debug("function plot", zap.String("expr", f.String()), zap.Stringer("size", opts.Size))
	return output(cmd, p)
}

func runRegion(cmd *cobra.Command, args []string) error {
	pred, err := expr.CompilePred(args[0])
	if err != nil {
		return err
	}
	c := settings()
	opts, err := plotOptions(termplot.Sz(c.Plot.Width, 2*c.Plot.Height))
	if err != nil {
		return err
	}
	return output(cmd, termplot.RegionPlot(pred.Call, opts))
}

func runScatter(cmd *cobra.Command, args []string) error {
	var r io.Reader = cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open points: %w", err)
		}
		defer f.Close()
		r = f
	}
	pts, err := readPoints(r)
	if err != nil {
		return err
	}
	c := settings()
	opts, err := plotOptions(termplot.Sz(c.Plot.Width, 2*c.Plot.Height))
	if err != nil {
		return err
	}
	if glyphsFlag != "" {
		gc := *c
		gc.Plot.Glyphs = glyphsFlag
		if opts.Glyphs, err = gc.Glyphs(); err != nil {
			return err
		}
	}
	logger.Debug("scatter plot", zap.Int("points", len(pts)))
	return output(cmd, termplot.ScatterPlot(pts, opts))
}

// readPoints reads one "x y" pair per line, skipping blank lines and
// comments.
func readPoints(r io.Reader) ([]termplot.Point, error) {
	var pts []termplot.Point
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: %q", errPoint, n, line)
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", errPoint, n, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", errPoint, n, err)
		}
		pts = append(pts, termplot.Pt(x, y))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read points: %w", err)
	}
	return pts, nil
}
