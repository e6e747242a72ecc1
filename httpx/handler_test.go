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

package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dirpx.dev/evcode"
	"dirpx.dev/evcode/subsystem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T, opts ...Option) http.Handler {
	t.Helper()
	return NewHandler(evcode.Default(), subsystem.MustNew(), opts...)
}

func do(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	}
	return rec, out
}

func TestGetCode(t *testing.T) {
	h := newTestHandler(t)

	rec, body := do(t, h, http.MethodGet, "/v1/codes/0050", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0050", body["code"])
	assert.Equal(t, "WIFI_CONNECTED", body["name"])
	assert.Equal(t, "networking", body["subsystem"])
	assert.Equal(t, true, body["found"])

	rec, body = do(t, h, http.MethodGet, "/v1/codes/00d7", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "00D7", body["code"])
	assert.Equal(t, "OTA_SUCCESSFULLY_COMPLETED", body["name"])
}

func TestGetCode_Misses(t *testing.T) {
	h := newTestHandler(t)

	rec, body := do(t, h, http.MethodGet, "/v1/codes/9999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "unknown_code", body["kind"])
	assert.Equal(t, "9999", body["input"])
	assert.Equal(t, "9999", body["code"])

	rec, body = do(t, h, http.MethodGet, "/v1/codes/zz", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "malformed_input", body["kind"])
	assert.NotContains(t, body, "code")
}

func TestListCodes(t *testing.T) {
	h := newTestHandler(t)

	rec, body := do(t, h, http.MethodGet, "/v1/codes", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(248), body["count"])
	entries, ok := body["entries"].([]any)
	require.True(t, ok)
	require.Len(t, entries, 248)
	assert.Equal(t, "0010", entries[0].(map[string]any)["code"])
	assert.NotContains(t, body, "shadowed")

	rec, body = do(t, h, http.MethodGet, "/v1/codes?shadowed=true", "")
	require.Equal(t, http.StatusOK, rec.Code)
	shadowed, ok := body["shadowed"].([]any)
	require.True(t, ok)
	require.Len(t, shadowed, 6)
	assert.Equal(t, "WEB_CLIENT_SEND_REQ_CANNOT_SEND_REQ", shadowed[0].(map[string]any)["name"])

	rec, _ = do(t, h, http.MethodGet, "/v1/codes?shadowed=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResolveBatch(t *testing.T) {
	h := newTestHandler(t)

	rec, body := do(t, h, http.MethodPost, "/v1/resolve", `{"codes":["0050","zz","0100","9999"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), body["found"])

	results, ok := body["results"].([]any)
	require.True(t, ok)
	require.Len(t, results, 4)

	first := results[0].(map[string]any)
	assert.Equal(t, "WIFI_CONNECTED", first["name"])
	assert.Equal(t, true, first["found"])

	second := results[1].(map[string]any)
	assert.Equal(t, "zz", second["input"])
	assert.Equal(t, false, second["found"])
	assert.NotContains(t, second, "name")

	third := results[2].(map[string]any)
	assert.Equal(t, "DHT_HEAP_EXHAUSTED", third["name"])
	assert.Equal(t, "peripheral_io", third["subsystem"])

	fourth := results[3].(map[string]any)
	assert.Equal(t, "9999", fourth["code"])
	assert.Equal(t, false, fourth["found"])
}

func TestResolveBatch_BadRequests(t *testing.T) {
	h := newTestHandler(t, WithMaxBatch(2))

	for _, body := range []string{
		`not json`,
		`{"codes":"0050"}`,
		`{"codes":[80]}`,
		`{}`,
		`{"codes":["1","2","3"]}`,
	} {
		rec, out := do(t, h, http.MethodPost, "/v1/resolve", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.Equal(t, "invalid_request", out["kind"], body)
	}
}

func TestHealthz_And_Methods(t *testing.T) {
	h := newTestHandler(t)

	rec, _ := do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK\n", rec.Body.String())

	rec, _ = do(t, h, http.MethodGet, "/v1/resolve", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestWriter_NilIsNoop(t *testing.T) {
	rec := httptest.NewRecorder()
	Writer{}.Write(rec, nil)
	assert.Zero(t, rec.Body.Len())
}
