package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// Each kind has a sentinel for errors.Is and, where context matters,
// a typed error carrying the cause.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrBuild indicates malformed or out-of-order input to the index builder.
	ErrBuild = errors.New("index build failed")

	// ErrQueryCompile indicates a query could not be compiled into an automaton.
	ErrQueryCompile = errors.New("query compile failed")

	// ErrDecode indicates a numeric value is not a valid Unicode scalar value.
	ErrDecode = errors.New("decode failed")

	// ErrStore indicates the alias store could not be read or written.
	ErrStore = errors.New("alias store error")

	// ErrTerminalInit indicates interactive mode is unavailable.
	ErrTerminalInit = errors.New("terminal unavailable")
)

// BuildError reports a key that breaks the strictly increasing order
// required by the index builder.
type BuildError struct {
	Key      string
	Previous string
}

func (e *BuildError) Error() string {
	if e.Key == "" {
		return "index build: empty key"
	}
	return fmt.Sprintf("index build: key %q is not greater than previous key %q", e.Key, e.Previous)
}

// Is reports whether target is ErrBuild.
func (e *BuildError) Is(target error) bool {
	return target == ErrBuild
}

// QueryCompileError reports a pattern that failed to compile.
type QueryCompileError struct {
	// Pattern is the full pattern handed to the compiler, not the raw query.
	Pattern string
	Err     error
}

func (e *QueryCompileError) Error() string {
	return fmt.Sprintf("regex %q failed to compile: %v", e.Pattern, e.Err)
}

// Is reports whether target is ErrQueryCompile.
func (e *QueryCompileError) Is(target error) bool {
	return target == ErrQueryCompile
}

func (e *QueryCompileError) Unwrap() error {
	return e.Err
}

// DecodeError reports input that does not name a Unicode scalar value.
type DecodeError struct {
	// Input is the text the caller supplied, if any.
	Input string
	// Value is the numeric value that was rejected.
	Value  uint64
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Input != "" {
		return fmt.Sprintf("could not decode %q into a character: %s", e.Input, e.Reason)
	}
	return fmt.Sprintf("could not decode U+%04X into a character: %s", e.Value, e.Reason)
}

// Is reports whether target is ErrDecode.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// StoreError reports an I/O or format failure in the alias store.
type StoreError struct {
	// Op is "load" or "save".
	Op   string
	Path string
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("alias store %s %s: %v", e.Op, e.Path, e.Err)
}

// Is reports whether target is ErrStore.
func (e *StoreError) Is(target error) bool {
	return target == ErrStore
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// TerminalInitError reports that the interactive session could not start.
type TerminalInitError struct {
	Err error
}

func (e *TerminalInitError) Error() string {
	return fmt.Sprintf("could not initialize terminal: %v", e.Err)
}

// Is reports whether target is ErrTerminalInit.
func (e *TerminalInitError) Is(target error) bool {
	return target == ErrTerminalInit
}

func (e *TerminalInitError) Unwrap() error {
	return e.Err
}
