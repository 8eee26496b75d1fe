// SPDX-License-Identifier: MIT

// Command genremap lists the distinct cuboid remappings reachable from
// unimodular bases with entries in [−Nmax,+Nmax], one canonical basis per
// cuboid shape, sorted ascending by the sorted lengths (Lmax, then Lmid,
// then Lmin).
//
// Usage:
//
//	genremap [flags] [Nmax]
//
// Nmax defaults to 3. A negative Nmax is read as a bound, not a flag. Exit
// status is 1 for usage errors, 2 for Nmax < 1 or not an integer, and 3 for
// Nmax above the configured maximum.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/tekkamanmaverick/BoxRemap/catalog"
	"github.com/tekkamanmaverick/BoxRemap/internal/config"
	"github.com/tekkamanmaverick/BoxRemap/internal/logging"
	"github.com/tekkamanmaverick/BoxRemap/internal/version"
	"github.com/tekkamanmaverick/BoxRemap/report"
)

const defaultBound = 3

const (
	exitUsage    = 1
	exitBound    = 2
	exitTooLarge = 3
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
	workers    int
	configPath string
	verbose    bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var f flags
	cmd := &cobra.Command{
		Use:     "genremap [Nmax]",
		Short:   "List the distinct cuboid remappings of the unit cube",
		Version: version.Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				return fail(exitUsage, fmt.Errorf("usage: %s", cmd.UseLine()))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, args, f, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	fs := cmd.Flags()
	fs.IntVarP(&f.workers, "workers", "j", 0, "concurrent enumeration chunks (0 = GOMAXPROCS)")
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML configuration file")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log progress at debug level")
	return cmd
}

func runGenerate(cmd *cobra.Command, args []string, f flags, stdout, stderr io.Writer) error {
	bound := defaultBound
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fail(exitBound, fmt.Errorf("bound %q is not an integer", args[0]))
		}
		bound = n
	}

	cfg, err := config.Load(f.configPath)
	if err != nil {
		return fail(exitUsage, err)
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = f.workers
	}
	if err := cfg.Validate(); err != nil {
		return fail(exitUsage, err)
	}

	log, err := logging.New(cfg.Logging, f.verbose, stderr)
	if err != nil {
		return fail(exitUsage, err)
	}
	defer func() { _ = log.Sync() }()

	if err := catalog.ValidateBound(bound, cfg.MaxBound); err != nil {
		log.Debug("bound rejected", zap.Int("bound", bound), zap.Int("max", cfg.MaxBound))
		return boundError(err)
	}

	opts := cfg.BuildOptions()
	opts.Logger = log
	table, _, err := catalog.Build(cmd.Context(), bound, opts)
	if err != nil {
		return boundError(err)
	}

	if err := report.WriteText(stdout, bound, table.Entries()); err != nil {
		return fail(exitUsage, err)
	}
	return nil
}

// boundError maps catalogue errors onto exit codes.
func boundError(err error) error {
	switch {
	case errors.Is(err, catalog.ErrBoundTooSmall):
		return fail(exitBound, err)
	case errors.Is(err, catalog.ErrBoundTooLarge):
		return fail(exitTooLarge, err)
	}
	return fail(exitUsage, err)
}

// shieldNegatives moves negative integer arguments behind "--" so that
// cobra reads them as positional bounds instead of shorthand flags. Values
// of flags that take one are left in place.
func shieldNegatives(fs *pflag.FlagSet, args []string) []string {
	var keep, tail []string
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			tail = append(tail, args[i+1:]...)
			i = len(args)
		case isNegativeInt(a):
			tail = append(tail, a)
		default:
			keep = append(keep, a)
			if takesValue(fs, a) && i+1 < len(args) {
				i++
				keep = append(keep, args[i])
			}
		}
	}
	if len(tail) == 0 {
		return keep
	}
	return append(append(keep, "--"), tail...)
}

func isNegativeInt(s string) bool {
	n, err := strconv.Atoi(s)
	return err == nil && n < 0
}

// takesValue reports whether a is a flag whose value is the next argument.
func takesValue(fs *pflag.FlagSet, a string) bool {
	var f *pflag.Flag
	switch {
	case strings.HasPrefix(a, "--"):
		if strings.Contains(a, "=") {
			return false
		}
		f = fs.Lookup(a[2:])
	case len(a) == 2 && a[0] == '-':
		f = fs.ShorthandLookup(a[1:])
	}
	return f != nil && f.NoOptDefVal == ""
}

// run executes the command and returns the process exit status.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(shieldNegatives(cmd.Flags(), args))
	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}
	fmt.Fprintf(stderr, "genremap: %v\n", err)
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	// Flag parsing failures.
	return exitUsage
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
