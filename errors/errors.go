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

// Package errors defines the shared diagnostic types the parser reports
// through. Every production is infallible: on a mismatch it
// appends to the accumulating List and continues, it never aborts.
package errors

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pyast-go/pyparse/token"
)

// Message pairs a printf-style format with its arguments, keeping them
// separate so a caller can defer localization, mirroring cue/errors.Message.
type Message struct {
	format string
	args   []interface{}
}

// NewMessagef creates a Message for human consumption.
func NewMessagef(format string, args ...interface{}) Message {
	return Message{format: format, args: args}
}

// Msg returns the unformatted message and its arguments.
func (m Message) Msg() (string, []interface{}) { return m.format, m.args }

func (m Message) Error() string { return fmt.Sprintf(m.format, m.args...) }

// Error is the interface every diagnostic kind in this package implements.
// It deliberately mirrors cue/errors.Error so a caller already familiar
// with that shape needs nothing new to consume our diagnostics.
type Error interface {
	error
	Position() token.Range
	Msg() (format string, args []interface{})
}

// List accumulates Errors in detection order and satisfies the error
// interface. A parse always returns a List, empty or not: there is no separate "fatal" error channel.
type List []Error

func (p List) Error() string {
	switch len(p) {
	case 0:
		return ""
	case 1:
		return p[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s (and %d more errors)", p[0].Error(), len(p)-1)
	return b.String()
}

// Add appends a pre-built Error.
func (p *List) Add(err Error) { *p = append(*p, err) }

// AddNewf appends a generic positioned error, used for messages that don't
// warrant a dedicated Kind in pyerrors.go.
func (p *List) AddNewf(r token.Range, format string, args ...interface{}) {
	*p = append(*p, &OtherError{Range: r, Message: NewMessagef(format, args...)})
}

// Len reports the number of accumulated errors.
func (p List) Len() int { return len(p) }

// Sort orders the list by start position, breaking ties by original
// insertion order (Testable Property 4: error ordering). Go's sort.SliceStable
// is exactly this: a stable sort on the primary key alone.
func (p List) Sort() {
	sort.SliceStable(p, func(i, j int) bool {
		return p[i].Position().Start < p[j].Position().Start
	})
}

// Err returns nil if the list is empty, otherwise the list itself as an
// error -- matching "the error list is empty iff the input
// is fully valid".
func (p List) Err() error {
	if len(p) == 0 {
		return nil
	}
	return p
}

// Merge interleaves lexical errors reported by the token source into an
// already-populated parser List, then re-sorts.
func (p *List) Merge(lexical []Error) {
	*p = append(*p, lexical...)
	p.Sort()
}
