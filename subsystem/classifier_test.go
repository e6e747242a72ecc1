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

package subsystem

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"dirpx.dev/evcode/name"
)

func TestDefaults_Classify(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	tests := []struct {
		n    name.Name
		want Subsystem
	}{
		{"WIFI_CONNECTED", Networking},
		{"HTTP_DELETED_PENDING_RESPONSE", Networking},
		{"WEB_SERVER_START", Networking},
		{"WEB_CLIENT_DISCON_CANNOT_FIND_ESPCONN", Networking},
		{"ROUTES_CANNOT_PARSE_JSON", Networking},
		{"MDNS_START", Networking},
		{"SPIFFS_FLASH_READ_TIMEOUT", Filesystem},
		{"FILE_TO_JSON_PAIR_NOT_FOUND", Filesystem},
		{"OTA_SUCCESSFULLY_COMPLETED", OTA},
		{"GPIO_SET_UNPROVISIONED", PeripheralIO},
		{"DHT_HEAP_EXHAUSTED", PeripheralIO},
		{"MAX6675_HEAP_EXHAUSTED", PeripheralIO},
		{"CRON_ENABLED", Scheduling},
		{"SNTP_START", Timekeeping},
		{"TIMEZONE_CHANGED", Timekeeping},
		{"LOGGER_INIT_CFG_DEFAULT_CFG", Configuration},
		{"MEM_MON_HEAP_EXHAUSTED", Diagnostics},
		{"DIAG_INIT_DEFAULT_CFG", Configuration},
		{"ESPBOT_SAVE_CFG_FS_NOT_AVAILABLE", Configuration},
		{"OTA_RESTORE_CFG_FILE_NOT_FOUND", Configuration},
		{"MDNS_SAVED_CFG_NOT_UPDATED_INCOMPLETE", Configuration},
		{"UTILS_CANNOT_PARSE_IP", System},
		{"ESPOT_SET_NAME_TRUNCATED", System},
		{"UNMAPPED", Other},
		{name.Empty, Other},
	}
	for _, tt := range tests {
		if got := c.Classify(tt.n); got != tt.want {
			t.Fatalf("Classify(%q) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestOverride_BeatsPrefix(t *testing.T) {
	c, err := New(WithOverride("wifi-connected", System))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.Classify("WIFI_CONNECTED"); got != System {
		t.Fatalf("override must win; got %q", got)
	}
	if got := c.Classify("WIFI_DISCONNECTED"); got != Networking {
		t.Fatalf("override must be exact; got %q", got)
	}
}

func TestPrefix_UserRules(t *testing.T) {
	c, err := New(
		WithPrefix("espconn", Networking),
		WithPrefix("WIFI", Diagnostics), // replaces the library rule
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.Classify("ESPCONN_ABORTED"); got != Networking {
		t.Fatalf("ESPCONN_ABORTED = %q, want networking", got)
	}
	if got := c.Classify("WIFI_CONNECTED"); got != Diagnostics {
		t.Fatalf("WIFI_CONNECTED = %q, want diagnostics", got)
	}
	// the deeper wildcard still wins over the replaced owner prefix
	if got := c.Classify("WIFI_SAVE_CFG_HEAP_EXHAUSTED"); got != Configuration {
		t.Fatalf("WIFI_SAVE_CFG_HEAP_EXHAUSTED = %q, want configuration", got)
	}
}

func TestWithoutDefaults_And_Fallback(t *testing.T) {
	c, err := New(WithoutDefaults(), WithFallback(System), WithPrefix("OTA", OTA))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := c.Classify("WIFI_CONNECTED"); got != System {
		t.Fatalf("WIFI_CONNECTED = %q, want fallback system", got)
	}
	if got := c.Classify("OTA_STARTED"); got != OTA {
		t.Fatalf("OTA_STARTED = %q, want ota", got)
	}
	if c.Fallback() != System {
		t.Fatalf("Fallback() = %q", c.Fallback())
	}
}

func TestNew_InvalidOptions(t *testing.T) {
	cases := map[string][]Option{
		"empty prefix":      {WithPrefix("", Networking)},
		"only wildcard":     {WithPrefix("*", Networking)},
		"empty segment":     {WithPrefix("WIFI__X", Networking)},
		"bad char":          {WithPrefix("WIFI$", Networking)},
		"unknown subsystem": {WithPrefix("WIFI", Subsystem("radio"))},
		"bad override name": {WithOverride("1WIFI", System)},
		"bad override val":  {WithOverride("WIFI_CONNECTED", Subsystem("radio"))},
		"bad fallback":      {WithFallback("")},
	}
	for label, opts := range cases {
		if _, err := New(opts...); err == nil {
			t.Fatalf("%s: expected error", label)
		}
	}
	if _, err := New(WithPrefix("WIFI", "radio")); !errors.Is(err, ErrUnknownSubsystem) {
		t.Fatalf("unknown subsystem must wrap ErrUnknownSubsystem, got %v", err)
	}
}

func TestParse(t *testing.T) {
	for _, s := range All() {
		got, err := Parse(strings.ToUpper(string(s)))
		if err != nil || got != s {
			t.Fatalf("Parse(%q) = %q, %v", s, got, err)
		}
	}
	if got, err := Parse(" peripheral-io "); err != nil || got != PeripheralIO {
		t.Fatalf("Parse(peripheral-io) = %q, %v", got, err)
	}
	if _, err := Parse("radio"); !errors.Is(err, ErrUnknownSubsystem) {
		t.Fatalf("Parse(radio) error = %v", err)
	}
	if all := All(); all[len(all)-1] != Other {
		t.Fatalf("All() must end with Other")
	}
}

func TestExplain_Sources_And_Pattern(t *testing.T) {
	c := MustNew()
	exp := c.Explain("OTA_SAVE_CFG_HEAP_EXHAUSTED")
	if !strings.Contains(exp, `source=prefix`) {
		t.Fatalf("Explain must include source=prefix:\n%s", exp)
	}
	if !strings.Contains(exp, `pattern="*_SAVE_CFG"`) {
		t.Fatalf("Explain must include matched pattern:\n%s", exp)
	}
}

func TestConcurrency_Classify(t *testing.T) {
	c := MustNew(WithOverride("ESPOT_SET_NAME_TRUNCATED", Diagnostics))
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 2000; j++ {
				_ = c.Classify("WIFI_SAVE_CFG_HEAP_EXHAUSTED")
				_ = c.Classify("ESPOT_SET_NAME_TRUNCATED")
				_ = c.Explain("SPIFFS_FLASH_READ_TIMEOUT")
			}
		}()
	}
	wg.Wait()
}

func BenchmarkClassify_Prefix(b *testing.B) {
	c := MustNew()
	n := name.Name("WEB_CLIENT_SEND_REQ_TIMEOUT")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = c.Classify(n)
	}
}

func BenchmarkClassify_Wildcard(b *testing.B) {
	c := MustNew()
	n := name.Name("TIMEDATE_SAVED_CFG_NOT_UPDATED_INCOMPLETE")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = c.Classify(n)
	}
}
