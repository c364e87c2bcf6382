// Copyright 2015, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package nterr defines the typed errors raised by the nts and ntstext
// codecs, following the same Error-plus-panic/recover shape the teacher
// packages use (see bzip2.Error / xflate/meta.Error and their errRecover
// helpers), but parameterized on a Kind so callers can switch on the
// failure class instead of string-matching.
package nterr

import (
	"errors"
	"fmt"
)

// Kind classifies a codec error.
type Kind int

const (
	_ Kind = iota

	// MalformedHeader: magic mismatch or fewer than 6 bytes at start (binary only).
	MalformedHeader
	// TruncatedStream: EOF encountered mid-block.
	TruncatedStream
	// EmptyStream: no root node could be produced.
	EmptyStream
	// IllegalByte: a word byte >= B in binary, or a framing character inside a word in textual.
	IllegalByte
	// IndexOutOfRange: a back-reference index >= N, or an empty dictionary slot addressed.
	IndexOutOfRange
)

func (k Kind) String() string {
	switch k {
	case MalformedHeader:
		return "malformed header"
	case TruncatedStream:
		return "truncated stream"
	case EmptyStream:
		return "empty stream"
	case IllegalByte:
		return "illegal byte"
	case IndexOutOfRange:
		return "index out of range"
	default:
		return "unknown error"
	}
}

// Error is the concrete error type returned by this module's codecs.
type Error struct {
	Kind Kind
	Msg  string
}

func (e *Error) Error() string {
	if e.Msg == "" {
		return "nts: " + e.Kind.String()
	}
	return "nts: " + e.Kind.String() + ": " + e.Msg
}

// New creates an *Error of the given kind with a literal message.
func New(k Kind, msg string) error { return &Error{Kind: k, Msg: msg} }

// Newf creates an *Error of the given kind with a formatted message.
func Newf(k Kind, format string, args ...interface{}) error {
	return &Error{Kind: k, Msg: fmt.Sprintf(format, args...)}
}

// Is reports whether err is an *Error of the given kind, unwrapping as
// necessary. It mirrors the shape of errors.Is without requiring callers
// to import this package's concrete type.
func Is(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}
