// Package errors defines the indexer's error taxonomy (§7). Every kind
// carries enough context to print a one-line, path-qualified message and a
// short list of recovery suggestions; CLI and tool-protocol callers map
// Kind to the process exit code (§6 exit codes).
package errors

import (
	"fmt"
	"time"

	"github.com/standardbeagle/lci/internal/types"
)

// Kind is the error taxonomy discriminant from §7.
type Kind string

const (
	KindIO                Kind = "io"
	KindParse             Kind = "parse"
	KindUnsupportedFile    Kind = "unsupported_file_type"
	KindStorage           Kind = "storage"
	KindResolution        Kind = "resolution"
	KindTransaction       Kind = "transaction"
	KindLockPoisoned      Kind = "lock_poisoned"
	KindConfig            Kind = "config"
)

// ExitCode maps a Kind onto the stable CLI exit codes from §6: success 0,
// general error 1, not found 3. Every Kind here is a failure so the default
// is 1; KindResolution's "unknown symbol on a path that required one" case
// is the one mapped to 3 by callers that know they were doing a lookup, via
// NotFoundExitCode below rather than via Kind alone.
func (k Kind) ExitCode() int {
	return 1
}

// NotFoundExitCode is the stable exit code for a lookup that found nothing,
// independent of error Kind (§6).
const NotFoundExitCode = 3

// Suggestions returns recovery hints a human or a structured-output consumer
// can act on, per §7's "every error kind carries a short list of recovery
// suggestions".
func (k Kind) Suggestions() []string {
	switch k {
	case KindIO:
		return []string{"check the path exists and is readable", "retry after the underlying I/O condition clears"}
	case KindParse:
		return []string{"the file was skipped, not the whole run", "check the construct against the language's grammar"}
	case KindUnsupportedFile:
		return []string{"add or enable a language entry in the registry for this extension", "exclude the path if it should not be indexed"}
	case KindStorage:
		return []string{"check the index root is writable", "rebuild the index if the segment is corrupted"}
	case KindResolution:
		return []string{"qualify the reference to disambiguate it", "reindex after adding the missing import"}
	case KindTransaction:
		return []string{"retry the batch; no partial state was committed"}
	case KindLockPoisoned:
		return []string{"restart the process; a worker panicked holding shared state"}
	case KindConfig:
		return []string{"check the option name and value against the documented configuration surface"}
	default:
		return nil
	}
}

// Error is the one concrete error type for every Kind. Keeping a single
// struct (rather than one type per Kind, as an earlier iteration of this
// taxonomy tried) keeps Is/As matching on Kind simple while still carrying
// kind-specific fields as optional.
type Error struct {
	Kind       Kind
	Path       string
	FileID     types.FileID
	Operation  string
	Line       int
	Column     int
	Token      string
	Recoverable bool
	Underlying error
	Timestamp  time.Time
}

// New creates an Error of the given kind wrapping err.
func New(kind Kind, op string, err error) *Error {
	return &Error{Kind: kind, Operation: op, Underlying: err, Timestamp: time.Now(), Recoverable: kind != KindLockPoisoned}
}

// WithFile attaches file identity to the error.
func (e *Error) WithFile(id types.FileID, path string) *Error {
	e.FileID = id
	e.Path = path
	return e
}

// WithPosition attaches a parse location.
func (e *Error) WithPosition(line, col int, token string) *Error {
	e.Line = line
	e.Column = col
	e.Token = token
	return e
}

func (e *Error) Error() string {
	switch {
	case e.Kind == KindParse && e.Path != "":
		return fmt.Sprintf("parse error at %s:%d:%d (near %q): %v", e.Path, e.Line, e.Column, e.Token, e.Underlying)
	case e.Path != "":
		return fmt.Sprintf("%s %s failed for %s: %v", e.Kind, e.Operation, e.Path, e.Underlying)
	default:
		return fmt.Sprintf("%s %s failed: %v", e.Kind, e.Operation, e.Underlying)
	}
}

func (e *Error) Unwrap() error { return e.Underlying }

// Suggestions delegates to the Kind's recovery hints.
func (e *Error) Suggestions() []string { return e.Kind.Suggestions() }

// IsCorruption reports whether this storage error should escalate to a hard
// failure instead of aborting only the current batch (§7 propagation
// policy: "unless the error is classified as corruption").
func (e *Error) IsCorruption() bool {
	return e.Kind == KindStorage && !e.Recoverable
}

// AsCorruption marks a storage error as corruption, making it non-recoverable.
func (e *Error) AsCorruption() *Error {
	e.Recoverable = false
	return e
}

// Multi aggregates independent file-local errors collected across a run
// (e.g. one per PARSE failure) without aborting the whole pipeline.
type Multi struct {
	Errors []error
}

func (m *Multi) Add(err error) {
	if err != nil {
		m.Errors = append(m.Errors, err)
	}
}

func (m *Multi) Empty() bool { return len(m.Errors) == 0 }

func (m *Multi) Error() string {
	switch len(m.Errors) {
	case 0:
		return "no errors"
	case 1:
		return m.Errors[0].Error()
	default:
		return fmt.Sprintf("%d errors, first: %v", len(m.Errors), m.Errors[0])
	}
}

func (m *Multi) Unwrap() []error { return m.Errors }
