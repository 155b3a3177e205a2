// Package binding exposes each function as an opaque handle for hosts that
// load functions by constructor, such as a plugin loader or a foreign runtime.
//
// A Handle has a zero-argument constructor and a single accessor. It performs
// no logic of its own.
package binding

import "github.com/hupe1980/uuidudf"

// Handle wraps one ScalarFunction.
type Handle struct {
	fn uuidudf.ScalarFunction
}

// NewStringToUUID returns a handle for string_to_uuid.
func NewStringToUUID() *Handle { return &Handle{fn: uuidudf.NewStringToUUID()} }

// NewUUIDToString returns a handle for uuid_to_string.
func NewUUIDToString() *Handle { return &Handle{fn: uuidudf.NewUUIDToString()} }

// NewUUIDVersion returns a handle for uuid_version.
func NewUUIDVersion() *Handle { return &Handle{fn: uuidudf.NewUUIDVersion()} }

// ScalarFunction returns the wrapped function.
func (h *Handle) ScalarFunction() uuidudf.ScalarFunction { return h.fn }

// Constructors maps exported class names to handle constructors.
var Constructors = map[string]func() *Handle{
	"StringToUuidUDF": NewStringToUUID,
	"UuidToStringUDF": NewUUIDToString,
	"UuidVersionUDF":  NewUUIDVersion,
}
