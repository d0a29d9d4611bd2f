// SPDX-License-Identifier: MIT

// Package main is the entry point for the lpsolve binary.
// It solves linear programs stored as YAML files and cross-checks the
// simplex solver against vertex enumeration.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlp/bruteforce"
	"github.com/katalvlaran/lvlp/lpfile"
	"github.com/katalvlaran/lvlp/simplex"
)

const (
	envPrefix       = "LPSOLVE"
	defaultLogLevel = "warn"

	methodSimplex    = "simplex"
	methodBruteForce = "bruteforce"

	keyLogLevel      = "log-level"
	keyMaxIterations = "max-iterations"
	keyZeroTolerance = "zero-tolerance"
	keyMethod        = "method"

	// checkTolerance is the relative objective agreement required by check.
	checkTolerance = 1e-6
)

// errMismatch is returned by check when the solvers disagree.
var errMismatch = errors.New("solvers disagree")

// config holds the resolved flag/env configuration.
type config struct {
	Level         slog.Level
	MaxIterations int
	ZeroTolerance float64
	Method        string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd wires the command tree to a fresh viper instance so flags and
// LPSOLVE_* environment variables resolve through one lookup.
func newRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "lpsolve",
		Short: "Solve linear programs: maximize cᵀx subject to Ax ≤ b, x ≥ 0",
		Long: `lpsolve reads linear programs from YAML files and solves them with a dense
two-phase simplex solver or by exhaustive vertex enumeration.

Every flag can also be set through the environment, e.g. LPSOLVE_LOG_LEVEL=debug.

Example:
  lpsolve solve plan.yaml
  lpsolve solve --method bruteforce plan.yaml
  lpsolve check plan.yaml`,
		SilenceUsage: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.String(keyLogLevel, defaultLogLevel, "Log level (debug, info, warn, error)")
	pf.Int(keyMaxIterations, simplex.DefaultMaxIterations, "Simplex pivot limit per phase")
	pf.Float64(keyZeroTolerance, simplex.DefaultZeroTolerance, "Magnitude below which tableau values are zeroed")
	_ = v.BindPFlags(pf)

	rootCmd.AddCommand(newSolveCmd(v), newCheckCmd(v))

	return rootCmd
}

func newSolveCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve one problem file and print a YAML report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.Level)

			p, err := lpfile.Load(args[0])
			if err != nil {
				return err
			}
			sol, err := solveWith(cfg.Method, p, cfg, logger)
			if err != nil {
				return err
			}
			logger.Info("solved", "file", args[0], "method", cfg.Method, "status", sol.Status.String())

			return lpfile.EncodeReport(cmd.OutOrStdout(), lpfile.NewReport(p, cfg.Method, sol))
		},
	}
	cmd.Flags().String(keyMethod, methodSimplex, "Solver to use (simplex, bruteforce)")
	_ = v.BindPFlag(keyMethod, cmd.Flags().Lookup(keyMethod))

	return cmd
}

func newCheckCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE",
		Short: "Solve with both solvers and fail if they disagree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			logger := newLogger(cmd.ErrOrStderr(), cfg.Level)

			p, err := lpfile.Load(args[0])
			if err != nil {
				return err
			}
			got, err := solveWith(methodSimplex, p, cfg, logger)
			if err != nil {
				return err
			}
			want, err := solveWith(methodBruteForce, p, cfg, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err = lpfile.EncodeReport(out, lpfile.NewReport(p, methodSimplex, got)); err != nil {
				return err
			}
			if err = lpfile.EncodeReport(out, lpfile.NewReport(p, methodBruteForce, want)); err != nil {
				return err
			}

			return compare(got, want)
		},
	}
}

// loadConfig reads and validates the resolved settings.
func loadConfig(v *viper.Viper) (config, error) {
	cfg := config{
		MaxIterations: v.GetInt(keyMaxIterations),
		ZeroTolerance: v.GetFloat64(keyZeroTolerance),
		Method:        strings.ToLower(v.GetString(keyMethod)),
	}
	if cfg.Method == "" {
		cfg.Method = methodSimplex
	}
	if err := cfg.Level.UnmarshalText([]byte(v.GetString(keyLogLevel))); err != nil {
		return config{}, fmt.Errorf("invalid %s: %w", keyLogLevel, err)
	}
	if cfg.MaxIterations <= 0 {
		return config{}, fmt.Errorf("invalid %s %d: must be > 0", keyMaxIterations, cfg.MaxIterations)
	}
	if math.IsNaN(cfg.ZeroTolerance) || math.IsInf(cfg.ZeroTolerance, 0) || cfg.ZeroTolerance < 0 {
		return config{}, fmt.Errorf("invalid %s %g: must be finite and >= 0", keyZeroTolerance, cfg.ZeroTolerance)
	}

	return cfg, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// solveWith dispatches p to the named solver.
func solveWith(method string, p lpfile.Problem, cfg config, logger *slog.Logger) (simplex.Solution, error) {
	switch method {
	case methodSimplex:
		return simplex.Solve(p.A, p.B, p.C,
			simplex.WithMaxIterations(cfg.MaxIterations),
			simplex.WithZeroTolerance(cfg.ZeroTolerance),
			simplex.WithLogger(logger),
		)
	case methodBruteForce:
		return bruteforce.Solve(p.A, p.B, p.C, bruteforce.WithLogger(logger))
	default:
		return simplex.Solution{}, fmt.Errorf("unknown method %q (want %s or %s)", method, methodSimplex, methodBruteForce)
	}
}

// compare reports errMismatch when statuses differ or optimal objectives
// differ by more than checkTolerance relative.
func compare(got, want simplex.Solution) error {
	if got.Status != want.Status {
		return fmt.Errorf("%w: status %v vs %v", errMismatch, got.Status, want.Status)
	}
	if got.Status != simplex.Optimal {
		return nil
	}
	if d := math.Abs(got.Objective - want.Objective); d > checkTolerance*(1+math.Abs(want.Objective)) {
		return fmt.Errorf("%w: objective %g vs %g", errMismatch, got.Objective, want.Objective)
	}

	return nil
}
