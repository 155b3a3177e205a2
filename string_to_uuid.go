package uuidudf

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/hupe1980/uuidudf/codec"
	"github.com/hupe1980/uuidudf/uuidtype"
)

// StringToUUIDName is the registered name of StringToUUID.
const StringToUUIDName = "string_to_uuid"

// StringToUUID parses UUID text into the tagged 16-byte binary form.
//
// The argument may be Utf8, LargeUtf8 or Utf8View; all three take the same
// path. Nulls stay null. The first value that fails to parse aborts the call.
type StringToUUID struct {
	signature Signature
}

// NewStringToUUID returns the string_to_uuid function.
func NewStringToUUID() *StringToUUID {
	return &StringToUUID{
		signature: Signature{Arity: 1, Types: textTypes(), Volatility: Immutable},
	}
}

// Name implements ScalarFunction.
func (f *StringToUUID) Name() string { return StringToUUIDName }

// Signature implements ScalarFunction.
func (f *StringToUUID) Signature() Signature { return f.signature.clone() }

// ReturnField implements ScalarFunction.
func (f *StringToUUID) ReturnField(args []arrow.Field) (arrow.Field, error) {
	arg, err := singleArg(f.Name(), args)
	if err != nil {
		return arrow.Field{}, err
	}
	if !uuidtype.IsText(arg.Type) {
		return arrow.Field{}, schemaErrorf(f.Name(), "argument %q has type %v, expected a string type", arg.Name, arg.Type)
	}
	return uuidtype.Field(f.Name(), true), nil
}

// Invoke implements ScalarFunction.
func (f *StringToUUID) Invoke(args InvokeArgs) (Datum, error) {
	d, err := singleDatum(f.Name(), args)
	if err != nil {
		return nil, err
	}

	switch v := d.(type) {
	case *ArrayDatum:
		out, err := f.Encode(args.allocator(), v.Value)
		if err != nil {
			return nil, err
		}
		return &ArrayDatum{Value: out}, nil
	case *ScalarDatum:
		out, err := f.EncodeScalar(v.Value)
		if err != nil {
			return nil, err
		}
		return NewScalarDatum(out), nil
	default:
		return nil, shapeError(f.Name(), "array or scalar", d.DataType())
	}
}

// Encode parses every element of a string array.
//
// On error no array is returned and all intermediate buffers are released.
func (f *StringToUUID) Encode(mem memory.Allocator, arr arrow.Array) (*array.FixedSizeBinary, error) {
	txt, ok := asText(arr)
	if !ok {
		return nil, shapeError(f.Name(), "string array", arr.DataType())
	}

	b := array.NewFixedSizeBinaryBuilder(mem, uuidtype.Storage())
	defer b.Release()
	b.Reserve(txt.Len())

	for i := 0; i < txt.Len(); i++ {
		if txt.IsNull(i) {
			b.AppendNull()
			continue
		}
		s := txt.Value(i)
		u, err := codec.Parse(s)
		if err != nil {
			return nil, parseError(f.Name(), i, s, err)
		}
		b.Append(u[:])
	}

	return b.NewFixedSizeBinaryArray(), nil
}

// EncodeScalar parses a single string scalar.
func (f *StringToUUID) EncodeScalar(s Scalar) (Scalar, error) {
	if !uuidtype.IsText(s.Type) {
		return Scalar{}, shapeError(f.Name(), "string scalar", s.Type)
	}
	if s.IsNull() {
		return NullScalar(uuidtype.Storage()), nil
	}
	str, ok := s.AsString()
	if !ok {
		return Scalar{}, shapeError(f.Name(), "string value", s.Type)
	}
	u, err := codec.Parse(str)
	if err != nil {
		return Scalar{}, parseError(f.Name(), -1, str, err)
	}
	return Scalar{Type: uuidtype.Storage(), Value: u.Bytes()}, nil
}
