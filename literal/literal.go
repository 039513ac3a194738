// Copyright 2018 The CUE Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package literal decodes the payload of String and FStringMiddle tokens.
// Its shape -- a small options type plus pure decode functions returning
// (value, error) -- is grounded on cue/literal, even though CUE's own
// quoting tables don't apply: Python's string-prefix and escape grammar
// is reimplemented here from the Python reference grammar.
package literal

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind distinguishes str from bytes payloads.
type Kind int

const (
	Str Kind = iota
	Bytes
)

// DecodeOptions mirror the token payload fields that affect decoding.
type DecodeOptions struct {
	Quote  byte // '\'' or '"'
	Triple bool
	Raw    bool
	AsBytes bool
}

// Decode turns the raw body of a quoted Python literal (the text between
// the opening and closing quote sequence, exclusive) into its value. A raw
// body is returned unchanged, escapes included, and is never reported as
// an error. Decode never panics; on malformed input it returns a best-effort
// value and a non-nil error so the caller can record a lexical error and
// keep going.
func Decode(body string, opt DecodeOptions) (value string, kind Kind, err error) {
	kind = Str
	if opt.AsBytes {
		kind = Bytes
	}
	if opt.Raw {
		return body, kind, nil
	}

	var b strings.Builder
	b.Grow(len(body))
	i := 0
	for i < len(body) {
		c := body[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(body) {
			err = fmt.Errorf("trailing backslash in string literal")
			break
		}
		esc := body[i+1]
		switch esc {
		case '\n':
			// line continuation: backslash-newline is elided
			i += 2
		case '\\', '\'', '"':
			b.WriteByte(esc)
			i += 2
		case 'a':
			b.WriteByte('\a')
			i += 2
		case 'b':
			b.WriteByte('\b')
			i += 2
		case 'f':
			b.WriteByte('\f')
			i += 2
		case 'n':
			b.WriteByte('\n')
			i += 2
		case 'r':
			b.WriteByte('\r')
			i += 2
		case 't':
			b.WriteByte('\t')
			i += 2
		case 'v':
			b.WriteByte('\v')
			i += 2
		case '0', '1', '2', '3', '4', '5', '6', '7':
			j := i + 1
			n := 0
			for n < 3 && j < len(body) && body[j] >= '0' && body[j] <= '7' {
				j++
				n++
			}
			v, _ := strconv.ParseUint(body[i+1:j], 8, 32)
			b.WriteByte(byte(v))
			i = j
		case 'x':
			if i+4 <= len(body) {
				if v, perr := strconv.ParseUint(body[i+2:i+4], 16, 32); perr == nil {
					b.WriteByte(byte(v))
					i += 4
					continue
				}
			}
			err = fmt.Errorf("truncated \\xXX escape")
			b.WriteString(body[i:])
			i = len(body)
		case 'u', 'U':
			width := 4
			if esc == 'U' {
				width = 8
			}
			if kind == Bytes {
				// \u and \U are not escapes in bytes literals.
				b.WriteByte('\\')
				b.WriteByte(esc)
				i += 2
				continue
			}
			if i+2+width <= len(body) {
				if v, perr := strconv.ParseUint(body[i+2:i+2+width], 16, 32); perr == nil {
					b.WriteRune(rune(v))
					i += 2 + width
					continue
				}
			}
			err = fmt.Errorf("truncated \\%c escape", esc)
			b.WriteString(body[i:])
			i = len(body)
		case 'N':
			// \N{NAME} named unicode escape: pass through undecoded, the
			// name table is outside this parser's scope.
			if j := strings.IndexByte(body[i:], '}'); j >= 0 {
				b.WriteString(body[i : i+j+1])
				i += j + 1
			} else {
				err = fmt.Errorf("malformed \\N{...} escape")
				b.WriteString(body[i:])
				i = len(body)
			}
		default:
			// Unknown escapes are retained verbatim, matching CPython's
			// DeprecationWarning-but-not-error behavior.
			b.WriteByte('\\')
			b.WriteByte(esc)
			i += 2
		}
	}
	return b.String(), kind, err
}

// Prefix describes a decoded Python string-literal prefix (r, b, f, u, and
// their case-insensitive combinations rb/br/rf/fr).
type Prefix struct {
	Raw    bool
	Bytes  bool
	FStr   bool
}

// ParsePrefix splits the prefix letters from the start of a literal token's
// source text (e.g. "rb'...'") and classifies them.
func ParsePrefix(s string) (Prefix, string) {
	var p Prefix
	i := 0
	for i < len(s) {
		switch s[i] {
		case 'r', 'R':
			p.Raw = true
		case 'b', 'B':
			p.Bytes = true
		case 'f', 'F':
			p.FStr = true
		case 'u', 'U':
			// explicit str marker, no effect
		default:
			return p, s[i:]
		}
		i++
	}
	return p, s[i:]
}
