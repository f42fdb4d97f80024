// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package props

import (
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Option configures how remaining keys are compared.
type Option func(*settings)

type settings struct {
	// newCompare is called once per Order call. Collators keep internal
	// buffers and must not be shared between goroutines.
	newCompare func() func(a, b string) int
}

func newSettings(opts []Option) settings {
	s := settings{newCompare: collator(language.Und)}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// compare returns a total order: keys the comparison ranks equal are
// ordered byte-wise.
func (s settings) compare() func(a, b string) int {
	c := s.newCompare()
	return func(a, b string) int {
		if r := c(a, b); r != 0 {
			return r
		}
		return strings.Compare(a, b)
	}
}

// WithLocale compares keys using the collation rules of tag.
func WithLocale(tag language.Tag, opts ...collate.Option) Option {
	return func(s *settings) {
		s.newCompare = collator(tag, opts...)
	}
}

// Bytewise compares keys by their UTF-8 bytes.
func Bytewise() Option {
	return WithCompare(strings.Compare)
}

// WithCompare compares keys with fn, which must be safe for concurrent use
// if Order is called concurrently.
func WithCompare(fn func(a, b string) int) Option {
	return func(s *settings) {
		s.newCompare = func() func(a, b string) int { return fn }
	}
}

func collator(tag language.Tag, opts ...collate.Option) func() func(a, b string) int {
	return func() func(a, b string) int {
		return collate.New(tag, opts...).CompareString
	}
}
