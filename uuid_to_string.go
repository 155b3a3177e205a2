package uuidudf

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/hupe1980/uuidudf/codec"
	"github.com/hupe1980/uuidudf/uuidtype"
)

// UUIDToStringName is the registered name of UUIDToString.
const UUIDToStringName = "uuid_to_string"

// UUIDToString formats tagged UUID binary as lowercase hyphenated text.
//
// The argument field must carry the UUID tag; untagged FixedSizeBinary(16) is
// rejected at planning time.
type UUIDToString struct {
	signature Signature
}

// NewUUIDToString returns the uuid_to_string function.
func NewUUIDToString() *UUIDToString {
	return &UUIDToString{
		signature: Signature{Arity: 1, Types: withUUID(), Volatility: Immutable},
	}
}

// Name implements ScalarFunction.
func (f *UUIDToString) Name() string { return UUIDToStringName }

// Signature implements ScalarFunction.
func (f *UUIDToString) Signature() Signature { return f.signature.clone() }

// ReturnField implements ScalarFunction.
func (f *UUIDToString) ReturnField(args []arrow.Field) (arrow.Field, error) {
	arg, err := singleArg(f.Name(), args)
	if err != nil {
		return arrow.Field{}, err
	}
	if !uuidtype.IsUUID(arg) {
		return arrow.Field{}, schemaErrorf(f.Name(), "argument %q must carry the %s extension type", arg.Name, uuidtype.ExtensionName)
	}
	return arrow.Field{Name: f.Name(), Type: arrow.BinaryTypes.StringView, Nullable: true}, nil
}

// Invoke implements ScalarFunction.
func (f *UUIDToString) Invoke(args InvokeArgs) (Datum, error) {
	d, err := singleDatum(f.Name(), args)
	if err != nil {
		return nil, err
	}

	switch v := d.(type) {
	case *ArrayDatum:
		out, err := f.Decode(args.allocator(), v.Value)
		if err != nil {
			return nil, err
		}
		return &ArrayDatum{Value: out}, nil
	case *ScalarDatum:
		out, err := f.DecodeScalar(v.Value)
		if err != nil {
			return nil, err
		}
		return NewScalarDatum(out), nil
	default:
		return nil, shapeError(f.Name(), "array or scalar", d.DataType())
	}
}

// Decode formats every element of a UUID array.
func (f *UUIDToString) Decode(mem memory.Allocator, arr arrow.Array) (*array.StringView, error) {
	fsb, ok := asFixed16(arr)
	if !ok {
		return nil, shapeError(f.Name(), "FixedSizeBinary(16) array", arr.DataType())
	}

	b := array.NewStringViewBuilder(mem)
	defer b.Release()
	b.Reserve(fsb.Len())

	for i := 0; i < fsb.Len(); i++ {
		if fsb.IsNull(i) {
			b.AppendNull()
			continue
		}
		raw := fsb.Value(i)
		u, err := codec.FromBytes(raw)
		if err != nil {
			return nil, parseError(f.Name(), i, fmt.Sprintf("%x", raw), err)
		}
		b.Append(u.String())
	}

	return b.NewStringViewArray(), nil
}

// DecodeScalar formats a single UUID scalar.
func (f *UUIDToString) DecodeScalar(s Scalar) (Scalar, error) {
	if !uuidtype.IsFixed16(s.Type) {
		return Scalar{}, shapeError(f.Name(), "FixedSizeBinary(16) scalar", s.Type)
	}
	if s.IsNull() {
		return NullScalar(arrow.BinaryTypes.StringView), nil
	}
	raw, ok := s.AsBytes()
	if !ok {
		return Scalar{}, shapeError(f.Name(), "binary value", s.Type)
	}
	u, err := codec.FromBytes(raw)
	if err != nil {
		return Scalar{}, parseError(f.Name(), -1, fmt.Sprintf("%x", raw), err)
	}
	return StringViewScalar(u.String()), nil
}
