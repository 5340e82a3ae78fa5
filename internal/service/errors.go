package service

import (
	"errors"
	"fmt"
)

// Kind classifies a failed operation so the caller can decide how to report it.
type Kind uint8

const (
	// KindIO is a read or write failure. Unclassified errors count as KindIO.
	KindIO Kind = iota
	// KindUser is bad input: empty description, invalid id or status.
	KindUser
	// KindNotFound means no task has the requested id.
	KindNotFound
	// KindParse means the task file is not a valid task collection.
	KindParse
)

func (k Kind) String() string {
	switch k {
	case KindUser:
		return "user error"
	case KindNotFound:
		return "not found"
	case KindParse:
		return "parse error"
	default:
		return "io error"
	}
}

// Error is the outcome of a failed task operation.
type Error struct {
	Kind Kind
	Op   string // e.g. "parsing tasks.json"; empty for user errors
	ID   int    // set for KindNotFound
	Err  error
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Err.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports KindNotFound errors as ErrNotFound.
func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.Kind == KindNotFound
}

// ErrEmptyDescription is returned when a task description is empty or blank.
var ErrEmptyDescription = errors.New("task description is required")

// ErrNotFound matches every KindNotFound error via errors.Is.
var ErrNotFound = errors.New("task not found")

// UserErrorf builds a KindUser error.
func UserErrorf(format string, args ...any) error {
	return &Error{Kind: KindUser, Err: fmt.Errorf(format, args...)}
}

// NotFound builds a KindNotFound error for id.
func NotFound(id int) error {
	return &Error{Kind: KindNotFound, ID: id, Err: fmt.Errorf("task with ID %d not found", id)}
}

// ParseError builds a KindParse error for the file at path.
func ParseError(path string, err error) error {
	return &Error{Kind: KindParse, Op: "parsing " + path, Err: err}
}

// IOError builds a KindIO error; op describes the action, e.g. "writing tasks.json".
func IOError(op string, err error) error {
	return &Error{Kind: KindIO, Op: op, Err: err}
}

// KindOf returns the kind of err.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindIO
}
