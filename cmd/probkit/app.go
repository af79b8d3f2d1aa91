package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/born-ml/probkit/internal/logging"
	"github.com/born-ml/probkit/internal/prob"
	"github.com/born-ml/probkit/internal/tensor"
	"go.uber.org/zap"
)

var (
	errUsage      = errors.New("usage")
	errBadValues  = errors.New("cannot parse values")
	errNoCommand  = fmt.Errorf("%w: missing command", errUsage)
	errArgCount   = fmt.Errorf("%w: wrong number of value arguments", errUsage)
	errUnknownCmd = fmt.Errorf("%w: unknown command", errUsage)
)

type app struct {
	log *logging.Logger
	out io.Writer
}

func (a *app) run(args []string) error {
	if len(args) == 0 {
		return errNoCommand
	}

	cmd, rest := args[0], args[1:]
	a.log.Debug("running command", zap.String("command", cmd), zap.Strings("args", rest))

	switch cmd {
	case "version":
		_, err := fmt.Fprintf(a.out, "probkit %s\n", version)
		return err
	case "collapse":
		return a.collapse(rest)
	case "duoramp":
		return a.duoramp(rest)
	case "logistic":
		return a.logistic(rest)
	case "softmax":
		return a.softmax(rest)
	case "entropy":
		return a.entropy(rest)
	case "kl":
		return a.kl(rest)
	default:
		return fmt.Errorf("%w %q", errUnknownCmd, cmd)
	}
}

func (a *app) collapse(args []string) error {
	fs := newFlagSet("collapse")
	modeName := fs.String("mode", "bin", "Output alphabet: bin or ter")
	seed := fs.Int64("seed", -1, "Random seed (-1 = random)")
	x, err := parseSingle(fs, args)
	if err != nil {
		return err
	}

	mode, err := prob.ParseMode(*modeName)
	if err != nil {
		return err
	}
	a.log.Debug("collapse", zap.Stringer("mode", mode), zap.Int64("seed", *seed), zap.Ints("shape", x.Shape()))

	out, err := prob.NewCollapser(prob.CollapseConfig{Seed: *seed}).Collapse(x, mode)
	if err != nil {
		return err
	}
	return a.writeTensor(out)
}

func (a *app) duoramp(args []string) error {
	fs := newFlagSet("duoramp")
	low := fs.Float64("low", 0, "Lower bound (unbounded if unset)")
	high := fs.Float64("high", 0, "Upper bound (unbounded if unset)")
	x, err := parseSingle(fs, args)
	if err != nil {
		return err
	}

	var opts []prob.RampOption
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "low":
			opts = append(opts, prob.WithLow(*low))
		case "high":
			opts = append(opts, prob.WithHigh(*high))
		}
	})
	a.log.Debug("duoramp", zap.Int("bounds", len(opts)), zap.Ints("shape", x.Shape()))

	out, err := prob.DuoRamp(x, opts...)
	if err != nil {
		return err
	}
	return a.writeTensor(out)
}

func (a *app) logistic(args []string) error {
	fs := newFlagSet("logistic")
	temperature := fs.Float64("t", prob.DefaultTemperature, "Temperature (>= 0)")
	x, err := parseSingle(fs, args)
	if err != nil {
		return err
	}
	a.log.Debug("logistic", zap.Float64("temperature", *temperature), zap.Ints("shape", x.Shape()))

	out, err := prob.Logistic(x, *temperature)
	if err != nil {
		return err
	}
	return a.writeTensor(out)
}

func (a *app) softmax(args []string) error {
	fs := newFlagSet("softmax")
	temperature := fs.Float64("t", prob.DefaultTemperature, "Temperature (>= 0)")
	x, err := parseSingle(fs, args)
	if err != nil {
		return err
	}
	a.log.Debug("softmax", zap.Float64("temperature", *temperature), zap.Ints("shape", x.Shape()))

	out, err := prob.Softmax(x, *temperature)
	if err != nil {
		return err
	}
	return a.writeTensor(out)
}

func (a *app) entropy(args []string) error {
	fs := newFlagSet("entropy")
	base := fs.Float64("base", 0, "Logarithm base (natural log if unset)")
	x, err := parseSingle(fs, args)
	if err != nil {
		return err
	}
	opts := logOptions(fs, *base)
	a.log.Debug("entropy", zap.Int("options", len(opts)), zap.Ints("shape", x.Shape()))

	out, err := prob.Entropy(x, opts...)
	if err != nil {
		return err
	}
	return a.writeTensor(out)
}

func (a *app) kl(args []string) error {
	fs := newFlagSet("kl")
	base := fs.Float64("base", 0, "Logarithm base (natural log if unset)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() != 2 {
		return errArgCount
	}
	p, err := parseTensor(fs.Arg(0))
	if err != nil {
		return err
	}
	q, err := parseTensor(fs.Arg(1))
	if err != nil {
		return err
	}
	opts := logOptions(fs, *base)
	a.log.Debug("kl", zap.Int("options", len(opts)), zap.Ints("shape", p.Shape()))

	d, err := prob.KLDivergence(p, q, opts...)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, formatFloat(d))
	return err
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

// parseSingle parses flags followed by exactly one value argument.
func parseSingle(fs *flag.FlagSet, args []string) (*tensor.Tensor, error) {
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %w", errUsage, err)
	}
	if fs.NArg() != 1 {
		return nil, errArgCount
	}
	return parseTensor(fs.Arg(0))
}

func logOptions(fs *flag.FlagSet, base float64) []prob.LogOption {
	var opts []prob.LogOption
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "base" {
			opts = append(opts, prob.WithBase(base))
		}
	})
	return opts
}

// parseTensor reads "1,2,3;4,5,6" into a 2-D tensor.
func parseTensor(s string) (*tensor.Tensor, error) {
	var rows [][]float64
	for i, line := range strings.Split(s, ";") {
		fields := strings.Split(line, ",")
		row := make([]float64, 0, len(fields))
		for j, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: row %d, element %d: %q", errBadValues, i, j, field)
			}
			row = append(row, v)
		}
		rows = append(rows, row)
	}

	t, err := tensor.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errBadValues, err)
	}
	return t, nil
}

func (a *app) writeTensor(t *tensor.Tensor) error {
	for _, row := range t.Rows() {
		fields := make([]string, len(row))
		for i, v := range row {
			fields[i] = formatFloat(v)
		}
		if _, err := fmt.Fprintln(a.out, strings.Join(fields, ",")); err != nil {
			return err
		}
	}
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
