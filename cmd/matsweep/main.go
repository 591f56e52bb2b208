// SPDX-License-Identifier: MIT

// Package main is the entry point for the matsweep binary.
// It reads a square matrix from standard input, applies a transform policy
// and prints the input and the result.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/matsweep/config"
	"github.com/katalvlaran/matsweep/console"
	"github.com/katalvlaran/matsweep/logging"
	"github.com/katalvlaran/matsweep/transform"
	"github.com/spf13/cobra"
)

// exitError carries a process exit code out of cobra's RunE.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the CLI and returns the process exit code.
func run(args []string, in io.Reader, out, errOut io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	if err := cmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}

	return 0
}

// newRootCmd creates the root command for matsweep.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "matsweep",
		Short: "Derive a matrix from a square input matrix",
		Long: `matsweep reads the side n (1..20) of a square matrix and then n*n numbers
in row-major order from standard input, applies a transform policy and prints
both the input matrix A and the result B.

Policies:
  global-two-tier  cells with row+col >= n become the global maximum, or the
                   second-largest value where the cell already holds the maximum
  local-triangle   each cell becomes the maximum over the triangle opening to
                   its right

Example:
  echo "2  1 5  3 5" | matsweep --quiet --policy global-two-tier`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runSweep,
	}

	rootCmd.Flags().StringP("config", "c", "", "Path to configuration file (YAML)")
	rootCmd.Flags().StringP("policy", "p", config.DefaultPolicy, "Transform policy (global-two-tier, local-triangle)")
	rootCmd.Flags().Int("precision", config.DefaultPrecision, "Decimals to print (-1 uses the policy default)")
	rootCmd.Flags().Int("max-dimension", config.DimensionLimit, "Largest accepted matrix side")
	rootCmd.Flags().String("lang", config.DefaultLanguage, "Message language (en, ru)")
	rootCmd.Flags().BoolP("quiet", "q", false, "Suppress prompts and row acknowledgements")
	rootCmd.Flags().StringP("log-level", "l", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	rootCmd.Flags().Bool("log-pretty", false, "Human-readable log output")

	return rootCmd
}

// buildConfig loads the config file (if any) and applies explicitly set flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("policy") {
		cfg.Policy, _ = flags.GetString("policy")
	}
	if flags.Changed("precision") {
		cfg.Precision, _ = flags.GetInt("precision")
	}
	if flags.Changed("max-dimension") {
		cfg.MaxDimension, _ = flags.GetInt("max-dimension")
	}
	if flags.Changed("lang") {
		cfg.Language, _ = flags.GetString("lang")
	}
	if flags.Changed("quiet") {
		quiet, _ := flags.GetBool("quiet")
		cfg.Interactive = !quiet
	}
	if flags.Changed("log-level") {
		cfg.Log.Level, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-pretty") {
		cfg.Log.Pretty, _ = flags.GetBool("log-pretty")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// runSweep is the main entry point for the root command.
func runSweep(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	logger := logging.NewLogger(cmd.ErrOrStderr(), logging.Config{
		Level:  cfg.Log.Level,
		Pretty: cfg.Log.Pretty,
	})

	kind, err := cfg.Kind()
	if err != nil {
		return err
	}
	policy, err := transform.New(kind)
	if err != nil {
		return err
	}
	msgs, err := console.Catalog(cfg.Language)
	if err != nil {
		return err
	}

	logger.Info("Starting matsweep",
		"policy", kind.String(),
		"max_dimension", cfg.MaxDimension,
		"interactive", cfg.Interactive,
	)

	session := &console.Session{
		In:           cmd.InOrStdin(),
		Out:          cmd.OutOrStdout(),
		Policy:       policy,
		MaxDimension: cfg.MaxDimension,
		Precision:    cfg.Precision,
		Interactive:  cfg.Interactive,
		Messages:     msgs,
		Logger:       logger,
	}
	res, err := session.Run()
	if err != nil {
		if console.IsInputError(err) {
			return &exitError{code: cfg.FailureExitCode, err: err}
		}
		logger.Error("Session failed", "error", err)
		return err
	}

	if kind == transform.GlobalTwoTier {
		maxV, second, ok, err := transform.TwoTier{}.Extrema(res.Input)
		if err == nil {
			logger.Debug("Global extrema", "max", maxV, "second", second, "has_second", ok)
		}
	}
	logger.Info("Done", "n", res.Input.Rows())

	return nil
}
