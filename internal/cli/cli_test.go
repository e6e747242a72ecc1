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
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type result struct {
	stdout string
	stderr string
	err    error
}

func run(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	err := Run(context.Background(), args, Env{
		Stdin:  strings.NewReader(stdin),
		Stdout: &out,
		Stderr: &errOut,
	})
	return result{stdout: out.String(), stderr: errOut.String(), err: err}
}

func exitCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return 0
	}
	var ee *ExitError
	require.ErrorAs(t, err, &ee)
	return ee.Code
}

func TestResolve(t *testing.T) {
	r := run(t, "", "resolve", "0050", "00d7", "0100")
	require.NoError(t, r.err)
	assert.Equal(t, "WIFI_CONNECTED\nOTA_SUCCESSFULLY_COMPLETED\nDHT_HEAP_EXHAUSTED\n", r.stdout)

	r = run(t, "", "resolve", "0050", "9999", "zz")
	assert.Equal(t, 1, exitCode(t, r.err))
	assert.Equal(t, "WIFI_CONNECTED\nUNKNOWN\nUNKNOWN\n", r.stdout)

	r = run(t, "", "resolve", "--fallback", "raw", "9999")
	assert.Equal(t, 1, exitCode(t, r.err))
	assert.Equal(t, "9999\n", r.stdout)
}

func TestUsageErrors(t *testing.T) {
	cases := [][]string{
		{},
		{"bogus"},
		{"--log-level", "loud", "resolve", "0050"},
		{"--log-format", "xml", "resolve", "0050"},
		{"resolve"},
		{"resolve", "--fallback", "hex", "0050"},
		{"resolve", "--no-such-flag"},
		{"decode", "--field", "-1"},
		{"table", "--format", "csv"},
		{"explain"},
		{"explain", "not a name!"},
	}
	for _, args := range cases {
		r := run(t, "", args...)
		assert.Equal(t, 2, exitCode(t, r.err), "%v", args)
	}
}

func TestHelp(t *testing.T) {
	r := run(t, "", "--help")
	require.NoError(t, r.err)
	assert.Contains(t, r.stderr, "Commands:")
	assert.Contains(t, r.stderr, "resolve")

	r = run(t, "", "table", "--help")
	require.NoError(t, r.err)
	assert.Contains(t, r.stderr, "--format")
}

func TestDecode_Stdin(t *testing.T) {
	r := run(t, "boot 0050\nota 00D7\nbad zz\n", "decode", "--field", "2", "--separator", " | ")
	require.NoError(t, r.err)
	assert.Equal(t, "boot 0050 | WIFI_CONNECTED\nota 00D7 | OTA_SUCCESSFULLY_COMPLETED\nbad zz | UNKNOWN\n", r.stdout)
}

func TestDecode_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "device.log")
	require.NoError(t, os.WriteFile(path, []byte("0105\n"), 0o644))

	r := run(t, "", "decode", path)
	require.NoError(t, r.err)
	assert.Equal(t, "0105\tMAX6675_HEAP_EXHAUSTED\n", r.stdout)

	r = run(t, "", "decode", filepath.Join(t.TempDir(), "missing.log"))
	assert.Equal(t, 1, exitCode(t, r.err))
}

func TestTable_Text(t *testing.T) {
	r := run(t, "", "table")
	require.NoError(t, r.err)
	lines := strings.Split(strings.TrimSuffix(r.stdout, "\n"), "\n")
	require.Len(t, lines, 248)
	assert.Equal(t, "0010 FILE_TO_JSON_FS_NOT_AVAILABLE", lines[0])
	assert.NotContains(t, r.stdout, "# shadowed")

	r = run(t, "", "table", "--shadowed")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "# shadowed\n0100 WEB_CLIENT_SEND_REQ_CANNOT_SEND_REQ\n")
}

func TestTable_JSONAndYAML(t *testing.T) {
	r := run(t, "", "table", "--format", "json", "--shadowed")
	require.NoError(t, r.err)
	var doc tableDoc
	require.NoError(t, json.Unmarshal([]byte(r.stdout), &doc))
	assert.Len(t, doc.Entries, 248)
	assert.Len(t, doc.Shadowed, 6)
	assert.Contains(t, r.stdout, `"code": "0050"`)

	r = run(t, "", "table", "--format", "yaml")
	require.NoError(t, r.err)
	var ydoc tableDoc
	require.NoError(t, yaml.Unmarshal([]byte(r.stdout), &ydoc))
	assert.Len(t, ydoc.Entries, 248)
	assert.Empty(t, ydoc.Shadowed)
	assert.Equal(t, "0010 FILE_TO_JSON_FS_NOT_AVAILABLE", ydoc.Entries[0].String())
}

func TestExplain(t *testing.T) {
	r := run(t, "", "explain", "wifi_save_cfg_heap_exhausted", "OTA_STARTED")
	require.NoError(t, r.err)
	assert.Equal(t, strings.Join([]string{
		`name="WIFI_SAVE_CFG_HEAP_EXHAUSTED"`,
		`subsystem: source=prefix pattern="*_SAVE_CFG" -> configuration`,
		`---`,
		`name="OTA_STARTED"`,
		`subsystem: source=prefix pattern="OTA" -> ota`,
	}, "\n")+"\n", r.stdout)
}

func TestExplain_Config(t *testing.T) {
	path := filepath.Join(t.TempDir(), "evcode.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`override "OTA_STARTED" { subsystem = "system" }`), 0o644))

	r := run(t, "", "explain", "--config", path, "OTA_STARTED")
	require.NoError(t, r.err)
	assert.Contains(t, r.stdout, "source=override -> system")
}
