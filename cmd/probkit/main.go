// Package main provides the probkit CLI.
//
// Usage:
//
//	probkit [-debug] <command> [flags] <values>
//
// Values are rows separated by ';' and elements separated by ',':
//
//	probkit softmax -t 0.5 "1,2,3;0,0,1"
//	probkit kl -base 2 "0.5,0.5" "0.25,0.75"
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/born-ml/probkit/internal/logging"
	"go.uber.org/zap"
)

const version = "v0.1.0-dev"

func main() {
	global := flag.NewFlagSet("probkit", flag.ContinueOnError)
	debug := global.Bool("debug", false, "Log in development mode")
	global.Usage = func() { usage(global) }
	if err := global.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	cfg := logging.DefaultConfig()
	if *debug {
		cfg = logging.DevelopmentConfig()
	}
	logger, err := logging.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "probkit: logger: %v\n", err)
		logger = logging.NewNop()
	}
	defer func() { _ = logger.Sync() }()

	a := &app{log: logger, out: os.Stdout}
	if err := a.run(global.Args()); err != nil {
		logger.Error("command failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "probkit: %v\n", err)
		if errors.Is(err, errUsage) {
			global.Usage()
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func usage(fs *flag.FlagSet) {
	out := fs.Output()
	fmt.Fprintf(out, "probkit %s - probability primitives\n\n", version)
	fmt.Fprintln(out, "Usage: probkit [-debug] <command> [flags] <values>")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  version    Show version")
	fmt.Fprintln(out, "  collapse   Sample discrete states (-mode bin|ter, -seed)")
	fmt.Fprintln(out, "  duoramp    Clamp values (-low, -high)")
	fmt.Fprintln(out, "  logistic   Logistic transform (-t)")
	fmt.Fprintln(out, "  softmax    Row-wise softmax (-t)")
	fmt.Fprintln(out, "  entropy    Row-wise entropy (-base)")
	fmt.Fprintln(out, "  kl         KL divergence of two arrays (-base)")
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, "Values: rows separated by ';', elements by ',' (e.g. \"1,2;3,4\").")
	fmt.Fprintln(out, "Put \"--\" before values that start with '-'.")
	fmt.Fprintln(out, "")
	fs.PrintDefaults()
}
