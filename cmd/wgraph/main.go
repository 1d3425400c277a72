// SPDX-License-Identifier: MIT
// Command wgraph inspects weighted undirected graphs stored as JSON.
//
// Usage:
//
//	wgraph [-config file.yaml] <command> [flags] [args]
//
// Commands:
//
//	summary FILE...           banner-framed overview of every graph in each file
//	show FILE                 full rendering of every graph
//	validate [-build] FILE... structure check (and, with -build, a full load)
//	encode FILE               rewrite FILE as a {"graphs": [...]} document on stdout
//	path [-graph N] FILE FROM TO
//	                          fewest-hop route between two labels
//	demo [-n N] [-seed S]     build, print and traverse generated graphs
//
// Settings come from the optional YAML file and the WGRAPH_LOG_LEVEL,
// WGRAPH_LOG_FORMAT, WGRAPH_STRICT_LABELS and WGRAPH_MAX_VERTICES
// environment variables.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/katalvlaran/wgraph/internal/config"
	"github.com/katalvlaran/wgraph/internal/logging"
	"github.com/katalvlaran/wgraph/loader"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitUsage   = 2
)

const usage = `usage: wgraph [-config file.yaml] <command> [flags] [args]

commands:
  summary FILE...                overview of every graph in each file
  show FILE                      full rendering of every graph
  validate [-build] FILE...      structure check; -build also loads the graphs
  encode FILE                    rewrite FILE in the multi-graph format
  path [-graph N] FILE FROM TO   fewest-hop route between two labels
  demo [-n N] [-seed S]          generated graphs, printed and traversed
`

var (
	// errUsage reports bad arguments; the message has been printed already.
	errUsage = errors.New("usage")
	// errReported marks a failure whose details were printed per item.
	errReported = errors.New("one or more inputs failed")
)

// app carries what every command needs.
type app struct {
	stdout, stderr io.Writer
	log            *zap.Logger
	loadOpts       []loader.Option
}

type command func(a *app, args []string) error

var commands = map[string]command{
	"summary":  runSummary,
	"show":     runShow,
	"validate": runValidate,
	"encode":   runEncode,
	"path":     runPath,
	"demo":     runDemo,
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("wgraph", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { fmt.Fprint(stderr, usage) }
	configPath := fs.String("config", "", "YAML configuration file")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return exitUsage
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "wgraph:", err)
		return exitFailure
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(stderr, "wgraph:", err)
		return exitFailure
	}
	defer func() { _ = log.Sync() }()

	name := fs.Arg(0)
	cmd, ok := commands[name]
	if !ok {
		fmt.Fprintf(stderr, "wgraph: unknown command %q\n", name)
		fs.Usage()
		return exitUsage
	}

	a := &app{
		stdout: stdout,
		stderr: stderr,
		log:    log.With(zap.String("command", name)),
	}
	a.loadOpts = []loader.Option{
		loader.WithLogger(a.log),
		loader.WithStrictLabels(cfg.Load.StrictLabels),
		loader.WithMaxVertices(cfg.Load.MaxVertices),
	}

	switch err = cmd(a, fs.Args()[1:]); {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		return exitUsage
	case errors.Is(err, errReported):
		return exitFailure
	default:
		fmt.Fprintln(stderr, "wgraph:", err)
		return exitFailure
	}
}

// subcommand returns a flag set for name that reports to a.stderr.
func (a *app) subcommand(name, synopsis string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintf(a.stderr, "usage: wgraph %s %s\n", name, synopsis)
		fs.PrintDefaults()
	}

	return fs
}

// parse parses args and checks the positional count lies in [min, max]
// (max < 0 means unbounded).
func parse(fs *flag.FlagSet, args []string, min, max int) error {
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() < min || (max >= 0 && fs.NArg() > max) {
		fs.Usage()
		return errUsage
	}

	return nil
}
