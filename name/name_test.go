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

package name

import (
	"encoding"
	"reflect"
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trim+upper", "  wifi_connected  ", "WIFI_CONNECTED"},
		{"dash to underscore", "ota-up-to-date", "OTA_UP_TO_DATE"},
		{"dot to underscore", "spiffs.flash.read.error", "SPIFFS_FLASH_READ_ERROR"},
		{"inner space", "cron start", "CRON_START"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			if got != tt.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want Name
	}{
		{"canonical", "WIFI_CONNECTED", Name("WIFI_CONNECTED")},
		{"single word", "OTA", Name("OTA")},
		{"digit segment", "WIFI_TRUNCATING_STRING_TO_31_CHAR", Name("WIFI_TRUNCATING_STRING_TO_31_CHAR")},
		{"digits inside", "max6675-heap-exhausted", Name("MAX6675_HEAP_EXHAUSTED")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Fatalf("Parse(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{"", ErrNameEmpty},
		{"   ", ErrNameEmpty},
		{"WIFI__CONNECTED", ErrNameInvalidFormat},
		{"WIFI_", ErrNameInvalidFormat},
		{"_WIFI", ErrNameInvalidFormat},
		{"1WIFI", ErrNameInvalidFormat},
		{"WIFI/CONNECTED", ErrNameInvalidFormat},
		{"A" + strings.Repeat("_B", MaxLength), ErrNameInvalidLength},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != tt.want {
				t.Fatalf("Parse(%q) error = %v, want %v", tt.in, err, tt.want)
			}
			if got != Empty {
				t.Fatalf("Parse(%q) on error must return Empty, got %q", tt.in, got)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	valid := []Name{
		"WIFI_CONNECTED",
		"OTA_SUCCESSFULLY_COMPLETED",
		"DHT_HEAP_EXHAUSTED",
		"HTTP_PARSE_REQUEST_CANNOT_FIND_ACC_CTRL_REQ_HEADERS",
	}
	for _, n := range valid {
		if err := Validate(n); err != nil {
			t.Fatalf("Validate(%q) unexpected error: %v", n, err)
		}
	}

	invalid := []Name{
		Empty,
		"wifi_connected",
		"WIFI-CONNECTED",
		"WIFI CONNECTED",
	}
	for _, n := range invalid {
		if err := Validate(n); err == nil {
			t.Fatalf("Validate(%q) expected error", n)
		}
	}
}

func TestSegmentsAndPrefix(t *testing.T) {
	n := Name("SPIFFS_FLASH_READ_TIMEOUT")
	if got, want := n.Segments(), []string{"SPIFFS", "FLASH", "READ", "TIMEOUT"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Segments() = %v, want %v", got, want)
	}
	if got := n.Prefix(); got != "SPIFFS" {
		t.Fatalf("Prefix() = %q, want %q", got, "SPIFFS")
	}
	if got := Name("OTA").Prefix(); got != "OTA" {
		t.Fatalf("Prefix() of single word = %q, want %q", got, "OTA")
	}
	if got := Empty.Segments(); got != nil {
		t.Fatalf("Empty.Segments() = %v, want nil", got)
	}
}

func TestMustParse_PanicsOnInvalid(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("MustParse must panic on invalid name")
		}
	}()
	_ = MustParse("WIFI__CONNECTED")
}

func TestName_MarshalText(t *testing.T) {
	n := Name("CRON_START")
	text, err := n.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText unexpected error: %v", err)
	}
	if string(text) != "CRON_START" {
		t.Fatalf("MarshalText = %q, want %q", string(text), "CRON_START")
	}

	if _, err := Empty.MarshalText(); err == nil {
		t.Fatalf("MarshalText on empty name must return error")
	}
	if _, err := Name("cron_start").MarshalText(); err == nil {
		t.Fatalf("MarshalText on non-canonical name must return error")
	}
}

func TestName_UnmarshalText(t *testing.T) {
	var n Name
	if err := n.UnmarshalText([]byte("  cron-start  ")); err != nil {
		t.Fatalf("UnmarshalText unexpected error: %v", err)
	}
	if n != Name("CRON_START") {
		t.Fatalf("UnmarshalText = %q, want %q", n, "CRON_START")
	}

	var bad Name
	if err := bad.UnmarshalText([]byte("   ")); err == nil {
		t.Fatalf("UnmarshalText expected error for empty input")
	}
}

func TestName_ImplementsTextInterfaces(t *testing.T) {
	var _ encoding.TextMarshaler = (*Name)(nil)
	var _ encoding.TextUnmarshaler = (*Name)(nil)
}
