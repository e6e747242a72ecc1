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
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"dirpx.dev/evcode"
	"dirpx.dev/evcode/adapter"
	"dirpx.dev/evcode/apis"
	"dirpx.dev/evcode/internal/ctxlog"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"
)

// DefaultMaxBatch bounds the number of codes accepted by POST /v1/resolve.
const DefaultMaxBatch = 1024

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// Registry is what the handler needs from a code registry.
// *evcode.Registry satisfies it.
type Registry interface {
	apis.Resolver
	Lookup(s string) (evcode.Entry, error)
	Entries() []evcode.Entry
	Shadowed() []evcode.Entry
}

// Option configures the handler.
type Option func(*handler)

// WithLogger sets the request logger. The default discards records.
func WithLogger(l *slog.Logger) Option {
	return func(h *handler) { h.logger = l }
}

// WithMaxBatch overrides DefaultMaxBatch.
func WithMaxBatch(n int) Option {
	return func(h *handler) { h.maxBatch = n }
}

type handler struct {
	reg      Registry
	cls      apis.Classifier
	logger   *slog.Logger
	maxBatch int
	mux      *http.ServeMux
}

// NewHandler returns the HTTP API for reg. cls may be nil, in which case
// views carry no subsystem.
func NewHandler(reg Registry, cls apis.Classifier, opts ...Option) http.Handler {
	h := &handler{
		reg:      reg,
		cls:      cls,
		logger:   ctxlog.Discard(),
		maxBatch: DefaultMaxBatch,
		mux:      http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(h)
	}

	h.mux.HandleFunc("GET /v1/codes/{code}", h.getCode)
	h.mux.HandleFunc("GET /v1/codes", h.listCodes)
	h.mux.HandleFunc("POST /v1/resolve", h.resolve)
	h.mux.HandleFunc("GET /healthz", h.healthz)
	return h
}

// ServeHTTP logs every request and dispatches it to the route mux.
func (h *handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	rec := &statusRecorder{ResponseWriter: rw, status: http.StatusOK}
	r = r.WithContext(ctxlog.WithLogger(r.Context(), h.logger))
	h.mux.ServeHTTP(rec, r)
	h.logger.Debug("HTTP request served.", "method", r.Method, "path", r.URL.Path, "status", rec.status, "remote_addr", r.RemoteAddr)
}

func (h *handler) getCode(rw http.ResponseWriter, r *http.Request) {
	in := r.PathValue("code")
	e, err := h.reg.Lookup(in)
	if err != nil {
		ctxlog.FromContext(r.Context()).Debug("Code lookup missed.", "input", in, "error", err)
		Writer{}.Write(rw, err)
		return
	}
	writeJSON(rw, http.StatusOK, adapter.ToCodeView(in, e, h.cls).ToMap())
}

func (h *handler) listCodes(rw http.ResponseWriter, r *http.Request) {
	withShadowed := false
	if s := r.URL.Query().Get("shadowed"); s != "" {
		v, err := strconv.ParseBool(s)
		if err != nil {
			writeJSON(rw, http.StatusBadRequest, apis.ErrorView{
				Kind:    "invalid_query",
				Message: fmt.Sprintf("shadowed: %q is not a boolean", s),
			}.ToMap())
			return
		}
		withShadowed = v
	}

	entries := h.reg.Entries()
	body := map[string]any{
		"count":   len(entries),
		"entries": h.entryList(entries),
	}
	if withShadowed {
		body["shadowed"] = h.entryList(h.reg.Shadowed())
	}
	writeJSON(rw, http.StatusOK, body)
}

func (h *handler) resolve(rw http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(http.MaxBytesReader(rw, r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(rw, http.StatusRequestEntityTooLarge, apis.ErrorView{Kind: "invalid_request", Message: err.Error()}.ToMap())
		return
	}

	var req structpb.Struct
	if err := protojson.Unmarshal(raw, &req); err != nil {
		writeJSON(rw, http.StatusBadRequest, apis.ErrorView{Kind: "invalid_request", Message: "body is not a JSON object"}.ToMap())
		return
	}
	list := req.GetFields()["codes"].GetListValue()
	if list == nil {
		writeJSON(rw, http.StatusBadRequest, apis.ErrorView{Kind: "invalid_request", Message: `"codes" must be a list of strings`}.ToMap())
		return
	}
	if len(list.GetValues()) > h.maxBatch {
		writeJSON(rw, http.StatusBadRequest, apis.ErrorView{
			Kind:    "invalid_request",
			Message: fmt.Sprintf("at most %d codes per request", h.maxBatch),
		}.ToMap())
		return
	}

	results := make([]any, 0, len(list.GetValues()))
	found := 0
	for _, v := range list.GetValues() {
		in, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			writeJSON(rw, http.StatusBadRequest, apis.ErrorView{Kind: "invalid_request", Message: `"codes" must be a list of strings`}.ToMap())
			return
		}
		e, err := h.reg.Lookup(in.StringValue)
		if err != nil {
			results = append(results, adapter.ToMissView(in.StringValue, err).ToMap())
			continue
		}
		found++
		results = append(results, adapter.ToCodeView(in.StringValue, e, h.cls).ToMap())
	}

	ctxlog.FromContext(r.Context()).Debug("Batch resolved.", "codes", len(results), "found", found)
	writeJSON(rw, http.StatusOK, map[string]any{
		"results": results,
		"found":   found,
	})
}

func (h *handler) healthz(rw http.ResponseWriter, _ *http.Request) {
	rw.Header().Set("Content-Type", "text/plain; charset=utf-8")
	rw.WriteHeader(http.StatusOK)
	_, _ = fmt.Fprintln(rw, "OK")
}

func (h *handler) entryList(es []evcode.Entry) []any {
	out := make([]any, 0, len(es))
	for _, e := range es {
		out = append(out, adapter.ToCodeView("", e, h.cls).ToMap())
	}
	return out
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
