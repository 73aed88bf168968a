package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors matched by errors.Is against an *Error of the same kind.
var (
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrInvalidInput        = errors.New("invalid input")
	ErrMagnitudeParseMiss  = errors.New("magnitude parse miss")
)

// Kind classifies catalog failures.
type Kind uint8

const (
	KindUpstreamUnavailable Kind = iota + 1
	KindInvalidInput
	KindMagnitudeParseMiss
)

func (k Kind) String() string {
	switch k {
	case KindUpstreamUnavailable:
		return "upstream unavailable"
	case KindInvalidInput:
		return "invalid input"
	case KindMagnitudeParseMiss:
		return "magnitude parse miss"
	default:
		return "unknown"
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindUpstreamUnavailable:
		return ErrUpstreamUnavailable
	case KindInvalidInput:
		return ErrInvalidInput
	case KindMagnitudeParseMiss:
		return ErrMagnitudeParseMiss
	default:
		return nil
	}
}

// Error is a catalog failure tagged with its kind and the context it occurred in.
type Error struct {
	Kind Kind
	// Field is the upstream field at fault, e.g. "premios".
	Field string
	// Record is the 1-based position of the offending film; zero when the
	// failure is not tied to a record.
	Record int
	Title  string
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("catalog: ")
	b.WriteString(e.Kind.String())
	if e.Record > 0 {
		fmt.Fprintf(&b, " (record %d %q)", e.Record, e.Title)
	}
	if e.Field != "" {
		b.WriteString(": ")
		b.WriteString(e.Field)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel for e's kind.
func (e *Error) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

func invalidInput(field, format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Field: field, Err: fmt.Errorf(format, args...)}
}

// atRecord binds err to a record position, keeping any context already set.
func atRecord(err error, index int, title string) error {
	var cerr *Error
	if !errors.As(err, &cerr) {
		return &Error{Kind: KindInvalidInput, Record: index + 1, Title: title, Err: err}
	}
	tagged := *cerr
	tagged.Record = index + 1
	tagged.Title = title
	return &tagged
}
