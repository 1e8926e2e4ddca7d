// SPDX-License-Identifier: MIT

// Command gridrev runs the table engine over text files.
//
//	gridrev [-config gridrev.yaml] [-v] <command> [flags]
//
// Commands:
//
//	revise    -base FILE -mods FILE   print base × (1 + mods/100)
//	heatmap   -in FILE [-color HEX]   print per-cell rgba() backgrounds
//	scale     -in FILE                print abs-max and surface scale factor
//	normalize -in FILE                re-serialize a table with 3 decimals
//	version                           print the version
//
// FILE may be "-" for standard input.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/gridrev"
	"github.com/katalvlaran/gridrev/codec"
	"github.com/katalvlaran/gridrev/config"
	"github.com/katalvlaran/gridrev/grid"
	"github.com/katalvlaran/gridrev/heatmap"
	"github.com/katalvlaran/gridrev/revision"
	"github.com/katalvlaran/gridrev/surface"
)

var errUsage = errors.New("usage: gridrev [-config FILE] [-v] revise|heatmap|scale|normalize|version [flags]")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatalf("gridrev: %v", err)
	}
}

// app carries what every subcommand needs.
type app struct {
	cfg   config.Config
	stdin io.Reader
	out   io.Writer
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("gridrev", flag.ContinueOnError)
	var (
		cfgPath = fs.String("config", "", "YAML config file")
		verbose = fs.Bool("v", false, "debug logging to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *verbose {
		gridrev.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer gridrev.SetLogger(nil)
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			return err
		}
	}
	a := &app{cfg: cfg, stdin: stdin, out: stdout}

	rest := fs.Args()
	if len(rest) == 0 {
		return errUsage
	}
	switch rest[0] {
	case "revise":
		return a.revise(rest[1:])
	case "heatmap":
		return a.heatmap(rest[1:])
	case "scale":
		return a.scale(rest[1:])
	case "normalize":
		return a.normalize(rest[1:])
	case "version":
		_, err := fmt.Fprintln(a.out, gridrev.VersionTag())
		return err
	default:
		return fmt.Errorf("unknown command %q: %w", rest[0], errUsage)
	}
}

func (a *app) read(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("missing input file: %w", errUsage)
	}
	if path == "-" {
		raw, err := io.ReadAll(a.stdin)
		return string(raw), err
	}
	raw, err := os.ReadFile(path)

	return string(raw), err
}

func (a *app) revise(args []string) error {
	fs := flag.NewFlagSet("revise", flag.ContinueOnError)
	basePath := fs.String("base", "", "base table file")
	modsPath := fs.String("mods", "", "percentage modifier file (blank = no change)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	baseText, err := a.read(*basePath)
	if err != nil {
		return err
	}
	modsText, err := a.read(*modsPath)
	if err != nil {
		return err
	}
	base, err := codec.ParseDense(baseText, a.cfg.GridSize)
	if err != nil {
		return fmt.Errorf("base: %w", err)
	}
	mods, err := codec.ParseSparse(modsText, a.cfg.GridSize)
	if errors.Is(err, codec.ErrNoContent) {
		mods, err = grid.NewSparse(a.cfg.GridSize)
	}
	if err != nil {
		return fmt.Errorf("mods: %w", err)
	}
	out, err := revision.Apply(base, mods)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, codec.SerializeDense(out))

	return err
}

func (a *app) heatmap(args []string) error {
	fs := flag.NewFlagSet("heatmap", flag.ContinueOnError)
	in := fs.String("in", "", "table file")
	colorFlag := fs.String("color", "", "base color (default: first palette color)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	base := a.cfg.ResolvedPalette().At(0)
	if *colorFlag != "" {
		c, err := heatmap.ParseColor(*colorFlag)
		if err != nil {
			return err
		}
		base = c
	}
	text, err := a.read(*in)
	if err != nil {
		return err
	}
	d, err := codec.ParseDense(text, a.cfg.GridSize)
	if err != nil {
		return err
	}
	m := heatmap.ComputeColors(d, base)

	var sb strings.Builder
	for r := 0; r < m.Size(); r++ {
		for c := 0; c < m.Size(); c++ {
			if c > 0 {
				sb.WriteByte('\t')
			}
			st := m.At(r, c)
			sb.WriteString(st.CSS())
			sb.WriteByte(' ')
			sb.WriteString(st.ForegroundCSS())
		}
		sb.WriteByte('\n')
	}
	_, err = io.WriteString(a.out, sb.String())

	return err
}

func (a *app) scale(args []string) error {
	fs := flag.NewFlagSet("scale", flag.ContinueOnError)
	in := fs.String("in", "", "table file")
	height := fs.Float64("height", a.cfg.TargetHeight, "target surface height")
	if err := fs.Parse(args); err != nil {
		return err
	}
	text, err := a.read(*in)
	if err != nil {
		return err
	}
	d, err := codec.ParseDense(text, a.cfg.GridSize)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(a.out, "absmax=%s scale=%g\n",
		codec.FormatFixed(surface.AbsMax(d)), surface.ScaleFactor(d, *height))

	return err
}

func (a *app) normalize(args []string) error {
	fs := flag.NewFlagSet("normalize", flag.ContinueOnError)
	in := fs.String("in", "", "table file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	text, err := a.read(*in)
	if err != nil {
		return err
	}
	d, err := codec.ParseDense(text, a.cfg.GridSize)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, codec.SerializeDense(d))

	return err
}
