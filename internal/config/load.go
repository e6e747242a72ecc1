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
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// fileRoot decodes all top-level blocks of a configuration file. Unknown
// blocks and attributes are decode errors.
type fileRoot struct {
	Log        *logBlock         `hcl:"log,block"`
	HTTP       *listenBlock      `hcl:"http,block"`
	GRPC       *listenBlock      `hcl:"grpc,block"`
	Display    *displayBlock     `hcl:"display,block"`
	Subsystems []*subsystemBlock `hcl:"subsystem,block"`
	Overrides  []*overrideBlock  `hcl:"override,block"`
}

type logBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

type listenBlock struct {
	Listen *string `hcl:"listen,optional"`
}

type displayBlock struct {
	Fallback *string `hcl:"fallback,optional"`
}

type subsystemBlock struct {
	Name     string   `hcl:"name,label"`
	Prefixes []string `hcl:"prefixes"`
}

type overrideBlock struct {
	Name      string `hcl:"name,label"`
	Subsystem string `hcl:"subsystem"`
}

// Load reads the HCL file at path on top of Default and validates the
// result. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	f, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("config: failed to parse HCL file %s: %w", path, diags)
	}
	return decode(f, path)
}

// Parse is Load for in-memory sources. filename is used in diagnostics.
func Parse(src []byte, filename string) (Config, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return Config{}, fmt.Errorf("config: failed to parse HCL file %s: %w", filename, diags)
	}
	return decode(f, filename)
}

func decode(f *hcl.File, filename string) (Config, error) {
	var root fileRoot
	if diags := gohcl.DecodeBody(f.Body, nil, &root); diags.HasErrors() {
		return Config{}, fmt.Errorf("config: failed to decode HCL file %s: %w", filename, diags)
	}

	cfg := Default()
	if b := root.Log; b != nil {
		setString(&cfg.Log.Level, b.Level)
		setString(&cfg.Log.Format, b.Format)
	}
	if b := root.HTTP; b != nil {
		setString(&cfg.HTTP.Addr, b.Listen)
	}
	if b := root.GRPC; b != nil {
		setString(&cfg.GRPC.Addr, b.Listen)
	}
	if b := root.Display; b != nil {
		setString(&cfg.Display.Fallback, b.Fallback)
	}
	for _, b := range root.Subsystems {
		cfg.Subsystems = append(cfg.Subsystems, SubsystemRule{Subsystem: b.Name, Prefixes: b.Prefixes})
	}
	for _, b := range root.Overrides {
		cfg.Overrides = append(cfg.Overrides, Override{Name: b.Name, Subsystem: b.Subsystem})
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", filename, err)
	}
	return cfg, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
