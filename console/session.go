// SPDX-License-Identifier: MIT

package console

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/matsweep/matrix"
	"github.com/katalvlaran/matsweep/transform"
)

// Session runs one read → transform → print cycle.
type Session struct {
	In     io.Reader
	Out    io.Writer
	Policy transform.Policy

	// MaxDimension bounds the accepted matrix side (1..MaxDimension).
	MaxDimension int
	// Precision overrides Policy.Precision() when ≥ 0.
	Precision int
	// Interactive enables prompts and per-row acknowledgements.
	Interactive bool

	Messages Messages
	Logger   *slog.Logger
}

// Result holds the matrices produced by a successful Run.
type Result struct {
	Input  *matrix.Dense
	Output *matrix.Dense
}

// Run executes the session. On an input error the localized message is
// written to Out, nothing else is printed, and the error is returned.
func (s *Session) Run() (*Result, error) {
	logger := s.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.Policy == nil {
		return nil, fmt.Errorf("console: session has no policy")
	}
	sc := NewScanner(s.In)

	s.prompt(s.Messages.PromptDimension, s.MaxDimension)
	n, err := sc.ReadDimension(s.MaxDimension)
	if err != nil {
		logger.Warn("rejected matrix size", "error", err)
		return nil, s.fail(err)
	}
	logger.Debug("matrix size accepted", "n", n)

	s.prompt(s.Messages.PromptElements, n, n)
	a, err := sc.ReadMatrix(n, func(row int) {
		s.prompt(s.Messages.RowEntered, row+1)
	})
	if err != nil {
		logger.Warn("rejected matrix element", "error", err)
		return nil, s.fail(err)
	}

	b, err := s.Policy.Apply(a)
	if err != nil {
		return nil, fmt.Errorf("console: apply %s: %w", s.Policy.Kind(), err)
	}
	logger.Debug("transform applied", "policy", s.Policy.Kind().String(), "n", n)

	precision := s.Precision
	if precision < 0 {
		precision = s.Policy.Precision()
	}
	p := NewPrinter(s.Out, precision)

	// Separate the results from the prompt dialogue.
	if s.Interactive {
		if _, err = io.WriteString(s.Out, "\n"); err != nil {
			return nil, err
		}
	}
	if err = p.PrintMatrix(s.Messages.LabelInput, a); err != nil {
		return nil, err
	}
	if _, err = io.WriteString(s.Out, "\n"); err != nil {
		return nil, err
	}
	if err = p.PrintMatrix(s.Messages.LabelResult, b); err != nil {
		return nil, err
	}

	return &Result{Input: a, Output: b}, nil
}

// prompt writes a formatted prompt in interactive mode only.
func (s *Session) prompt(format string, args ...any) {
	if !s.Interactive || format == "" {
		return
	}
	fmt.Fprintf(s.Out, format, args...)
}

// fail reports err to the user and returns it unchanged.
func (s *Session) fail(err error) error {
	fmt.Fprintln(s.Out, s.Messages.Describe(err))

	return err
}
