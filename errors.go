package uuidudf

import (
	"errors"
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

var (
	// ErrSchema is the kind of every return-field (planning time) failure.
	ErrSchema = errors.New("schema error")

	// ErrParse is the kind of every failure caused by the data itself.
	ErrParse = errors.New("parse error")

	// ErrInternalShape is the kind of failures where the runtime value does not
	// have the physical shape the declared signature promised.
	ErrInternalShape = errors.New("internal shape error")
)

// SchemaError reports a rejected argument list: wrong arity, unsupported type,
// or a missing UUID tag.
//
// errors.Is(err, ErrSchema) holds for every SchemaError.
type SchemaError struct {
	Function string
	Reason   string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Function, ErrSchema, e.Reason)
}

func (e *SchemaError) Unwrap() error { return ErrSchema }

// ParseError reports a value that is not a valid UUID.
//
// Row is the index of the offending element in the batch, or -1 for a scalar
// call. The underlying codec error can be reached via errors.Is/errors.As.
type ParseError struct {
	Function string
	Row      int
	Input    string
	cause    error
}

func (e *ParseError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("%s: %s: input %q: %v", e.Function, ErrParse, e.Input, e.cause)
	}
	return fmt.Sprintf("%s: %s at row %d: input %q: %v", e.Function, ErrParse, e.Row, e.Input, e.cause)
}

func (e *ParseError) Unwrap() []error { return []error{ErrParse, e.cause} }

// ShapeError reports a runtime value whose physical type disagrees with what
// the function accepted at planning time.
type ShapeError struct {
	Function string
	Expected string
	Actual   arrow.DataType
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s: expected %s, got %v", e.Function, ErrInternalShape, e.Expected, e.Actual)
}

func (e *ShapeError) Unwrap() error { return ErrInternalShape }

func schemaErrorf(fn, format string, args ...any) error {
	return &SchemaError{Function: fn, Reason: fmt.Sprintf(format, args...)}
}

func parseError(fn string, row int, input string, cause error) error {
	return &ParseError{Function: fn, Row: row, Input: input, cause: cause}
}

func shapeError(fn, expected string, actual arrow.DataType) error {
	return &ShapeError{Function: fn, Expected: expected, Actual: actual}
}
