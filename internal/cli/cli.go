/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"dirpx.dev/evcode/internal/ctxlog"
	"github.com/spf13/pflag"
)

// ExitError is an error that carries a process exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// usageError returns an ExitError with exit code 2.
func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Env is the process environment a command runs in.
type Env struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// globals are the flags accepted before the subcommand.
type globals struct {
	LogLevel  string
	LogFormat string

	// levelSet and formatSet record whether the flags were given explicitly.
	levelSet  bool
	formatSet bool
}

// command is one subcommand.
type command struct {
	summary string
	run     func(ctx context.Context, env Env, g globals, args []string) error
}

var commands = map[string]command{
	"resolve": {"print the names of hex codes", runResolve},
	"decode":  {"annotate log lines with event names", runDecode},
	"table":   {"print the code table", runTable},
	"explain": {"show how names are classified into subsystems", runExplain},
	"serve":   {"run the HTTP and gRPC lookup servers", runServe},
}

// Run executes the command line args (without the program name). The
// returned error is an *ExitError when a specific exit code applies.
func Run(ctx context.Context, args []string, env Env) error {
	var g globals
	flags := pflag.NewFlagSet("evcode", pflag.ContinueOnError)
	flags.SetOutput(env.Stderr)
	flags.SetInterspersed(false)
	flags.StringVar(&g.LogLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	flags.StringVar(&g.LogFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.Usage = func() { printUsage(env.Stderr, flags) }

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return usageError("%s", err)
	}

	g.LogLevel = strings.ToLower(g.LogLevel)
	switch g.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	g.LogFormat = strings.ToLower(g.LogFormat)
	if g.LogFormat != "text" && g.LogFormat != "json" {
		return usageError("invalid log-format: must be 'text' or 'json'")
	}

	g.levelSet = flags.Changed("log-level")
	g.formatSet = flags.Changed("log-format")

	if flags.NArg() == 0 {
		flags.Usage()
		return usageError("missing command")
	}
	name, rest := flags.Arg(0), flags.Args()[1:]
	cmd, ok := commands[name]
	if !ok {
		flags.Usage()
		return usageError("unknown command %q", name)
	}

	logger := ctxlog.New(g.LogLevel, g.LogFormat, env.Stderr)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Running command.", "command", name, "args", rest)
	return cmd.run(ctx, env, g, rest)
}

func printUsage(w io.Writer, flags *pflag.FlagSet) {
	_, _ = fmt.Fprint(w, `evcode - firmware event code resolver.

Usage:
  evcode [global options] <command> [options] [args]

Commands:
`)
	names := make([]string, 0, len(commands))
	for n := range commands {
		names = append(names, n)
	}
	sort.Strings(names)
	for _, n := range names {
		_, _ = fmt.Fprintf(w, "  %-8s %s\n", n, commands[n].summary)
	}
	_, _ = fmt.Fprint(w, "\nGlobal options:\n")
	flags.PrintDefaults()
}

// newFlagSet creates the flag set of a subcommand.
func newFlagSet(name, usage string, env Env) *pflag.FlagSet {
	fs := pflag.NewFlagSet("evcode "+name, pflag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(env.Stderr, "Usage:\n  evcode %s %s\n\nOptions:\n", name, usage)
		fs.PrintDefaults()
	}
	return fs
}

// parseFlags parses args and maps pflag errors to exit codes. done is true
// when help was requested.
func parseFlags(fs *pflag.FlagSet, args []string) (done bool, err error) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return true, nil
		}
		return false, usageError("%s", err)
	}
	return false, nil
}
