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

package config

import (
	"errors"
	"fmt"
	"strings"

	"dirpx.dev/evcode"
	"dirpx.dev/evcode/subsystem"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Config is the resolved configuration.
type Config struct {
	Log     Log
	HTTP    Listen
	GRPC    Listen
	Display Display

	// Subsystems are extra classification prefixes, in file order.
	Subsystems []SubsystemRule
	// Overrides are exact name assignments, in file order.
	Overrides []Override
}

// Log configures the slog handler.
type Log struct {
	Level  string // debug, info, warn or error
	Format string // text or json
}

// Listen is a server address.
type Listen struct {
	Addr string
}

// Display configures how misses are rendered.
type Display struct {
	Fallback string // unknown or raw
}

// SubsystemRule adds prefixes to a subsystem.
type SubsystemRule struct {
	Subsystem string
	Prefixes  []string
}

// Override assigns one name to a subsystem.
type Override struct {
	Name      string
	Subsystem string
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Log:     Log{Level: "info", Format: "text"},
		HTTP:    Listen{Addr: ":8080"},
		GRPC:    Listen{Addr: ":9090"},
		Display: Display{Fallback: evcode.FallbackUnknown.String()},
	}
}

// Validate checks every field and that the classification rules build.
func (c Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q: must be 'debug', 'info', 'warn', or 'error'", ErrInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q: must be 'text' or 'json'", ErrInvalid, c.Log.Format)
	}
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		return fmt.Errorf("%w: http listen address is empty", ErrInvalid)
	}
	if strings.TrimSpace(c.GRPC.Addr) == "" {
		return fmt.Errorf("%w: grpc listen address is empty", ErrInvalid)
	}
	if _, err := evcode.ParseFallback(c.Display.Fallback); err != nil {
		return fmt.Errorf("%w: display: %w", ErrInvalid, err)
	}
	if _, err := c.Classifier(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Fallback returns the parsed display fallback.
func (c Config) Fallback() (evcode.Fallback, error) {
	return evcode.ParseFallback(c.Display.Fallback)
}

// Classifier builds the subsystem classifier: library defaults plus the
// configured prefixes and overrides.
func (c Config) Classifier() (*subsystem.Classifier, error) {
	var opts []subsystem.Option
	for _, r := range c.Subsystems {
		s, err := subsystem.Parse(r.Subsystem)
		if err != nil {
			return nil, err
		}
		if len(r.Prefixes) == 0 {
			return nil, fmt.Errorf("subsystem %q: no prefixes", r.Subsystem)
		}
		for _, p := range r.Prefixes {
			opts = append(opts, subsystem.WithPrefix(p, s))
		}
	}
	for _, o := range c.Overrides {
		s, err := subsystem.Parse(o.Subsystem)
		if err != nil {
			return nil, fmt.Errorf("override %q: %w", o.Name, err)
		}
		opts = append(opts, subsystem.WithOverride(o.Name, s))
	}
	return subsystem.New(opts...)
}
