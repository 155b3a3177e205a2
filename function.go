package uuidudf

import (
	"slices"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/hupe1980/uuidudf/uuidtype"
)

// Volatility describes whether a function result depends only on its input.
type Volatility uint8

const (
	// Immutable functions always return the same output for the same input.
	Immutable Volatility = iota
	// Stable functions are constant within a single query.
	Stable
	// Volatile functions may change on every call.
	Volatile
)

// String returns the string representation of the Volatility.
func (v Volatility) String() string {
	switch v {
	case Immutable:
		return "Immutable"
	case Stable:
		return "Stable"
	case Volatile:
		return "Volatile"
	default:
		return "Unknown"
	}
}

// Signature declares the arity of a function and the physical types its
// arguments may take. Every argument position accepts the same set (uniform).
type Signature struct {
	Arity      int
	Types      []arrow.DataType
	Volatility Volatility
}

// clone returns s with its own copy of Types. Fixed-size binary types carry
// a mutable width and are copied too; the other accepted types have no state.
func (s Signature) clone() Signature {
	s.Types = slices.Clone(s.Types)
	for i, dt := range s.Types {
		if fsb, ok := dt.(*arrow.FixedSizeBinaryType); ok {
			c := *fsb
			s.Types[i] = &c
		}
	}
	return s
}

// Accepts reports whether dt is one of the declared types. Extension types are
// matched by their storage type; fixed-size binary also compares byte width.
func (s Signature) Accepts(dt arrow.DataType) bool {
	if ext, ok := dt.(arrow.ExtensionType); ok {
		dt = ext.StorageType()
	}
	for _, t := range s.Types {
		if arrow.TypeEqual(t, dt) {
			return true
		}
	}
	return false
}

// InvokeArgs carries the arguments of a single invocation.
type InvokeArgs struct {
	// Args holds one datum per argument. All array arguments share NumRows.
	Args []Datum
	// ArgFields are the fields the host passed to ReturnField.
	ArgFields []arrow.Field
	// NumRows is the batch length; 1 for an all-scalar call.
	NumRows int
	// Mem allocates result buffers. nil means memory.DefaultAllocator.
	Mem memory.Allocator
}

func (a InvokeArgs) allocator() memory.Allocator {
	if a.Mem == nil {
		return memory.DefaultAllocator
	}
	return a.Mem
}

// ScalarFunction is the contract between a host query engine and a row-wise
// function.
//
// Implementations are immutable values and safe for concurrent use. ReturnField
// is called once at planning time; Invoke once per batch or scalar. Invoke
// either returns a complete result of the same shape as its argument, or an
// error and no result.
type ScalarFunction interface {
	// Name is the stable lowercase identifier the host registers.
	Name() string

	// Signature declares accepted argument types.
	Signature() Signature

	// ReturnField validates the argument fields (including their semantic
	// tags) and returns the output field. Failures are *SchemaError.
	ReturnField(args []arrow.Field) (arrow.Field, error)

	// Invoke evaluates the function. The caller owns the returned datum and
	// must Release it.
	Invoke(args InvokeArgs) (Datum, error)
}

// singleArg checks the arity of a planning-time argument list.
func singleArg(fn string, args []arrow.Field) (arrow.Field, error) {
	if len(args) != 1 {
		return arrow.Field{}, schemaErrorf(fn, "expected 1 argument, got %d", len(args))
	}
	return args[0], nil
}

// singleDatum checks the arity of an invocation.
func singleDatum(fn string, args InvokeArgs) (Datum, error) {
	if len(args.Args) != 1 || args.Args[0] == nil {
		return nil, shapeError(fn, "1 argument", nil)
	}
	return args.Args[0], nil
}

// textTypes returns the interchangeable physical encodings of a string
// argument. Every call allocates, so no two signatures share a slice.
func textTypes() []arrow.DataType {
	return []arrow.DataType{
		arrow.BinaryTypes.String,
		arrow.BinaryTypes.LargeString,
		arrow.BinaryTypes.StringView,
	}
}

func withUUID(types ...arrow.DataType) []arrow.DataType {
	return append([]arrow.DataType{uuidtype.Storage()}, types...)
}
