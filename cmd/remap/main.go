// SPDX-License-Identifier: MIT

// Command remap applies a cuboid remapping to points of the unit cube.
//
// Usage:
//
//	remap [--in FILE] [--out FILE] [--u "u11 u12 u13 u21 u22 u23 u31 u32 u33"]
//	remap in=FILE out=FILE u="u11 ... u33"
//
// Input is read one point per line as three reals; blank lines and lines
// starting with '#' are skipped. Each point is written as its coordinates
// inside the cuboid. in defaults to stdin, out to stdout and u to the
// identity.
//
// Exit status: 1 usage error, 2 unreadable input or unwritable output,
// 3 malformed input line, 4 matrix with determinant other than +1,
// 5 point the transform could not place (numerical failure). Points
// remapped before a failing line are still written.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/tekkamanmaverick/BoxRemap/cuboid"
	"github.com/tekkamanmaverick/BoxRemap/internal/config"
	"github.com/tekkamanmaverick/BoxRemap/internal/logging"
	"github.com/tekkamanmaverick/BoxRemap/internal/version"
	"github.com/tekkamanmaverick/BoxRemap/lattice"
	"github.com/tekkamanmaverick/BoxRemap/remap"
)

const (
	exitUsage     = 1
	exitIO        = 2
	exitMalformed = 3
	exitMatrix    = 4
	exitNumeric   = 5
)

// exitError carries the process exit status of a failure.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func fail(code int, err error) error { return &exitError{code: code, err: err} }

type flags struct {
	in         string
	out        string
	u          string
	configPath string
	verbose    bool
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:           `remap [--in FILE] [--out FILE] [--u "u11 ... u33"] [in=FILE] [out=FILE] [u="..."]`,
		Short:         "Map points of the unit cube into a remapped cuboid",
		Version:       version.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := applyKeyValues(&f, args); err != nil {
				return fail(exitUsage, err)
			}
			return runRemap(cmd, f, stderr)
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	fs.StringVar(&f.in, "in", "", "input file (default stdin)")
	fs.StringVar(&f.out, "out", "", "output file (default stdout)")
	fs.StringVar(&f.u, "u", "", "nine matrix entries, row by row (default identity)")
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log at debug level")
	return cmd
}

// applyKeyValues folds in=, out= and u= arguments into f.
func applyKeyValues(f *flags, args []string) error {
	for _, a := range args {
		key, val, ok := strings.Cut(a, "=")
		if !ok {
			return fmt.Errorf("unexpected argument %q", a)
		}
		switch key {
		case "in":
			f.in = val
		case "out":
			f.out = val
		case "u":
			f.u = val
		default:
			return fmt.Errorf("unknown argument %q", key)
		}
	}
	return nil
}

func runRemap(cmd *cobra.Command, f flags, stderr io.Writer) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return fail(exitUsage, err)
	}
	if err := cfg.Validate(); err != nil {
		return fail(exitUsage, err)
	}
	log, err := logging.New(cfg.Logging, f.verbose, stderr)
	if err != nil {
		return fail(exitUsage, err)
	}
	defer func() { _ = log.Sync() }()

	b := lattice.Identity()
	if strings.TrimSpace(f.u) != "" {
		if b, err = lattice.ParseBasis(f.u); err != nil {
			return fail(exitUsage, err)
		}
	}
	c, err := cuboid.New(b)
	if err != nil {
		if errors.Is(err, remap.ErrNotUnimodular) {
			return fail(exitMatrix, err)
		}
		return fail(exitUsage, err)
	}
	l := c.Lengths()
	log.Debug("cuboid ready",
		zap.Stringer("u", b),
		zap.Float64s("lengths", l[:]),
		zap.Int("cells", c.Cells()))

	in := cmd.InOrStdin()
	if !isStdio(f.in, "stdin") {
		fh, err := os.Open(f.in)
		if err != nil {
			return fail(exitIO, fmt.Errorf("could not open input file: %w", err))
		}
		defer fh.Close()
		in = fh
	}
	out := cmd.OutOrStdout()
	var outFile *os.File
	if !isStdio(f.out, "stdout") {
		outFile, err = os.Create(f.out)
		if err != nil {
			return fail(exitIO, fmt.Errorf("could not open output file: %w", err))
		}
		defer outFile.Close()
		out = outFile
	}

	n, err := transformStream(cmd.Context(), c, in, out, log)
	if err != nil {
		return err
	}
	if outFile != nil {
		if err := outFile.Close(); err != nil {
			return fail(exitIO, err)
		}
	}
	log.Debug("points remapped", zap.Int("count", n))
	return nil
}

func isStdio(name, alias string) bool {
	return name == "" || name == "-" || name == alias
}

// transformStream remaps every point line of in onto out and returns the
// number of points written. Output is flushed even when a line fails.
func transformStream(ctx context.Context, c *cuboid.Cuboid, in io.Reader, out io.Writer, log *zap.Logger) (int, error) {
	bw := bufio.NewWriter(out)
	count, err := remapLines(ctx, c, in, bw, log)
	if ferr := bw.Flush(); ferr != nil && err == nil {
		err = fail(exitIO, ferr)
	}
	return count, err
}

func remapLines(ctx context.Context, c *cuboid.Cuboid, in io.Reader, w io.Writer, log *zap.Logger) (int, error) {
	sc := bufio.NewScanner(in)
	warned := false
	lineNo, count := 0, 0
	for sc.Scan() {
		lineNo++
		if lineNo%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return count, fail(exitUsage, err)
			}
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		x, err := parsePoint(line)
		if err != nil {
			return count, fail(exitMalformed, fmt.Errorf("line %d: %w", lineNo, err))
		}
		if !warned && !cuboid.InUnitCube(x) {
			log.Warn("input points should lie in the unit cube [0,1)^3", zap.Int("line", lineNo))
			warned = true
		}
		r, err := c.Transform(x)
		if err != nil {
			return count, transformFailure(lineNo, err)
		}
		if _, err := fmt.Fprintf(w, "%.6g %.6g %.6g\n", r.X, r.Y, r.Z); err != nil {
			return count, fail(exitIO, err)
		}
		count++
	}
	if err := sc.Err(); err != nil {
		return count, fail(exitIO, fmt.Errorf("reading input: %w", err))
	}
	return count, nil
}

// transformFailure maps a Transform error onto its exit status.
func transformFailure(lineNo int, err error) error {
	code := exitUsage
	if errors.Is(err, cuboid.ErrUncovered) {
		code = exitNumeric
	}
	return fail(code, fmt.Errorf("line %d: %w", lineNo, err))
}

// parsePoint reads three reals separated by blanks or commas.
func parsePoint(line string) (r3.Vec, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ' ' || r == '\t' || r == ','
	})
	if len(fields) != 3 {
		return r3.Vec{}, fmt.Errorf("want 3 coordinates, got %d", len(fields))
	}
	var v [3]float64
	for i, s := range fields {
		x, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return r3.Vec{}, err
		}
		v[i] = x
	}
	return r3.Vec{X: v[0], Y: v[1], Z: v[2]}, nil
}

// run executes the command and returns the process exit status.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	fmt.Fprintf(stderr, "remap: %v\n", err)
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUsage
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
