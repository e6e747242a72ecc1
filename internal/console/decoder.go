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

// Package console annotates device log lines with the names of the event
// codes they carry.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"dirpx.dev/evcode/apis"
	"dirpx.dev/evcode/internal/ctxlog"
)

// DefaultSeparator goes between a line and its annotation.
const DefaultSeparator = "\t"

// maxLineBytes bounds a single log line.
const maxLineBytes = 1 << 20

// Decoder annotates lines using Resolver.
type Decoder struct {
	// Resolver renders codes; misses come back as its placeholder.
	Resolver apis.Resolver

	// Field selects the code token: 0 takes the whole trimmed line, N > 0
	// the N-th whitespace-separated field.
	Field int

	// Separator is written between the line and the name. Empty means
	// DefaultSeparator.
	Separator string
}

// Stats counts what Decode saw.
type Stats struct {
	// Lines is the number of lines read.
	Lines int
	// Resolved is the number of lines whose code had a name.
	Resolved int
	// Missed is the number of lines whose code had no name or did not parse.
	Missed int
}

// Annotate returns line followed by the separator and the display text for
// its code token. Lines without a token (blank, or fewer fields than Field)
// come back unchanged with ok false.
func (d Decoder) Annotate(line string) (out string, ok bool) {
	out, ok, _ = d.annotate(line)
	return out, ok
}

func (d Decoder) annotate(line string) (out string, hasToken, found bool) {
	tok := d.token(line)
	if tok == "" {
		return line, false, false
	}
	_, found = d.Resolver.Resolve(tok)
	sep := d.Separator
	if sep == "" {
		sep = DefaultSeparator
	}
	return line + sep + d.Resolver.Display(tok), true, found
}

func (d Decoder) token(line string) string {
	if d.Field <= 0 {
		return strings.TrimSpace(line)
	}
	fields := strings.Fields(line)
	if d.Field > len(fields) {
		return ""
	}
	return fields[d.Field-1]
}

// Decode reads lines from r and writes annotated lines to w. Unknown and
// malformed codes never stop the stream. A line longer than the line limit
// is cut at the limit, annotated with the miss placeholder and counted as
// missed. Cancellation of ctx is checked between lines; the returned Stats
// cover the lines written so far.
func (d Decoder) Decode(ctx context.Context, r io.Reader, w io.Writer) (Stats, error) {
	if d.Resolver == nil {
		return Stats{}, fmt.Errorf("console: decoder has no resolver")
	}
	logger := ctxlog.FromContext(ctx)

	var st Stats
	br := bufio.NewReaderSize(r, 64*1024)
	bw := bufio.NewWriter(w)

	for {
		raw, truncated, rerr := readLine(br, maxLineBytes)
		if rerr != nil && rerr != io.EOF {
			_ = bw.Flush()
			return st, fmt.Errorf("console: read: %w", rerr)
		}
		if rerr == io.EOF && len(raw) == 0 && !truncated {
			break
		}
		if err := ctx.Err(); err != nil {
			_ = bw.Flush()
			return st, err
		}
		st.Lines++

		var out string
		if truncated {
			sep := d.Separator
			if sep == "" {
				sep = DefaultSeparator
			}
			out = string(raw) + sep + d.Resolver.Display("")
			st.Missed++
			logger.Warn("Log line exceeds limit; truncated.", "line", st.Lines, "limit", maxLineBytes)
		} else {
			var hasToken, found bool
			out, hasToken, found = d.annotate(string(raw))
			switch {
			case found:
				st.Resolved++
			case hasToken:
				st.Missed++
			}
		}
		if _, err := bw.WriteString(out); err != nil {
			return st, fmt.Errorf("console: write: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return st, fmt.Errorf("console: write: %w", err)
		}
		if rerr == io.EOF {
			break
		}
	}
	if err := bw.Flush(); err != nil {
		return st, fmt.Errorf("console: write: %w", err)
	}

	logger.Debug("Log decoded.", "lines", st.Lines, "resolved", st.Resolved, "missed", st.Missed)
	return st, nil
}

// readLine returns the next line without its terminator ("\n" or "\r\n").
// At most limit bytes are kept; the rest of a longer line is consumed and
// dropped, and truncated is set. err is io.EOF on the final line.
func readLine(br *bufio.Reader, limit int) (line []byte, truncated bool, err error) {
	for {
		frag, ferr := br.ReadSlice('\n')
		body := frag
		if ferr == nil {
			body = body[:len(body)-1]
		}
		if !truncated {
			if room := limit - len(line); len(body) > room {
				line = append(line, body[:room]...)
				truncated = true
			} else {
				line = append(line, body...)
			}
		}
		if ferr == bufio.ErrBufferFull {
			continue
		}
		if !truncated && len(line) > 0 && line[len(line)-1] == '\r' {
			line = line[:len(line)-1]
		}
		return line, truncated, ferr
	}
}
