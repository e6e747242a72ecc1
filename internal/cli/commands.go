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
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"dirpx.dev/evcode"
	"dirpx.dev/evcode/internal/app"
	"dirpx.dev/evcode/internal/config"
	"dirpx.dev/evcode/internal/console"
	"dirpx.dev/evcode/internal/ctxlog"
	"dirpx.dev/evcode/name"
	"gopkg.in/yaml.v3"
)

func runResolve(ctx context.Context, env Env, _ globals, args []string) error {
	fs := newFlagSet("resolve", "[--fallback unknown|raw] CODE...", env)
	fallback := fs.String("fallback", "unknown", "What to print for unknown codes. Options: 'unknown' or 'raw'.")
	if done, err := parseFlags(fs, args); done || err != nil {
		return err
	}
	fb, err := evcode.ParseFallback(*fallback)
	if err != nil {
		return usageError("%s", err)
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return usageError("resolve: no codes given")
	}

	reg := evcode.Default().WithFallback(fb)
	missed := 0
	for _, in := range fs.Args() {
		if _, ok := reg.Resolve(in); !ok {
			missed++
		}
		_, _ = fmt.Fprintln(env.Stdout, reg.Display(in))
	}
	ctxlog.FromContext(ctx).Debug("Codes resolved.", "count", fs.NArg(), "missed", missed)
	if missed > 0 {
		return &ExitError{Code: 1, Message: fmt.Sprintf("resolve: %d of %d codes not found", missed, fs.NArg())}
	}
	return nil
}

func runDecode(ctx context.Context, env Env, _ globals, args []string) error {
	fs := newFlagSet("decode", "[--field N] [--separator S] [--fallback unknown|raw] [FILE]", env)
	field := fs.Int("field", 0, "1-based whitespace field holding the code; 0 uses the whole line.")
	sep := fs.String("separator", console.DefaultSeparator, "Text between a line and its name.")
	fallback := fs.String("fallback", "unknown", "What to print for unknown codes. Options: 'unknown' or 'raw'.")
	if done, err := parseFlags(fs, args); done || err != nil {
		return err
	}
	if *field < 0 {
		return usageError("decode: --field must not be negative")
	}
	fb, err := evcode.ParseFallback(*fallback)
	if err != nil {
		return usageError("%s", err)
	}
	if fs.NArg() > 1 {
		return usageError("decode: at most one file")
	}

	in := env.Stdin
	if path := fs.Arg(0); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return &ExitError{Code: 1, Message: err.Error()}
		}
		defer f.Close()
		in = f
	}

	d := console.Decoder{
		Resolver:  evcode.Default().WithFallback(fb),
		Field:     *field,
		Separator: *sep,
	}
	if _, err := d.Decode(ctx, in, env.Stdout); err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}
	return nil
}

// tableDoc is the json/yaml shape of the table command.
type tableDoc struct {
	Entries  []evcode.Entry `json:"entries" yaml:"entries"`
	Shadowed []evcode.Entry `json:"shadowed,omitempty" yaml:"shadowed,omitempty"`
}

func runTable(_ context.Context, env Env, _ globals, args []string) error {
	fs := newFlagSet("table", "[--format text|json|yaml] [--shadowed]", env)
	format := fs.String("format", "text", "Output format. Options: 'text', 'json' or 'yaml'.")
	shadowed := fs.Bool("shadowed", false, "Also list entries overwritten by a later code assignment.")
	if done, err := parseFlags(fs, args); done || err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return usageError("table: unexpected arguments")
	}

	reg := evcode.Default()
	doc := tableDoc{Entries: reg.Entries()}
	if *shadowed {
		doc.Shadowed = reg.Shadowed()
	}

	switch strings.ToLower(*format) {
	case "text":
		return writeTableText(env.Stdout, doc)
	case "json":
		enc := json.NewEncoder(env.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml":
		enc := yaml.NewEncoder(env.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return usageError("table: invalid format %q: must be 'text', 'json' or 'yaml'", *format)
	}
}

func writeTableText(w io.Writer, doc tableDoc) error {
	for _, e := range doc.Entries {
		if _, err := fmt.Fprintln(w, e); err != nil {
			return err
		}
	}
	if len(doc.Shadowed) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "# shadowed"); err != nil {
		return err
	}
	for _, e := range doc.Shadowed {
		if _, err := fmt.Fprintln(w, e); err != nil {
			return err
		}
	}
	return nil
}

func runExplain(_ context.Context, env Env, _ globals, args []string) error {
	fs := newFlagSet("explain", "[--config FILE] NAME...", env)
	cfgPath := fs.String("config", "", "Path to an HCL configuration file with extra classification rules.")
	if done, err := parseFlags(fs, args); done || err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return usageError("explain: no names given")
	}
	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}
	cls, err := cfg.Classifier()
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}

	for i, raw := range fs.Args() {
		n, err := name.Parse(raw)
		if err != nil {
			return usageError("explain: %q: %s", raw, err)
		}
		if i > 0 {
			_, _ = fmt.Fprintln(env.Stdout, "---")
		}
		_, _ = fmt.Fprintln(env.Stdout, cls.Explain(n))
	}
	return nil
}

func runServe(ctx context.Context, env Env, g globals, args []string) error {
	fs := newFlagSet("serve", "[--config FILE] [--http ADDR] [--grpc ADDR]", env)
	cfgPath := fs.String("config", "", "Path to an HCL configuration file.")
	httpAddr := fs.String("http", "", "HTTP listen address (overrides the config file).")
	grpcAddr := fs.String("grpc", "", "gRPC listen address (overrides the config file).")
	if done, err := parseFlags(fs, args); done || err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return usageError("serve: unexpected arguments")
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}
	if *httpAddr != "" {
		cfg.HTTP.Addr = *httpAddr
	}
	if *grpcAddr != "" {
		cfg.GRPC.Addr = *grpcAddr
	}
	// Log flags given on the command line win over the file.
	if g.levelSet || *cfgPath == "" {
		cfg.Log.Level = g.LogLevel
	}
	if g.formatSet || *cfgPath == "" {
		cfg.Log.Format = g.LogFormat
	}

	logger := ctxlog.New(cfg.Log.Level, cfg.Log.Format, env.Stderr)
	a, err := app.New(cfg, logger)
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}
	httpLn, grpcLn, err := a.Listen()
	if err != nil {
		return &ExitError{Code: 1, Message: err.Error()}
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := a.Serve(ctx, httpLn, grpcLn); err != nil && !errors.Is(err, context.Canceled) {
		return &ExitError{Code: 1, Message: err.Error()}
	}
	return nil
}
