package uuidudf

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/hupe1980/uuidudf/codec"
	"github.com/hupe1980/uuidudf/uuidtype"
)

// UUIDVersionName is the registered name of UUIDVersion.
const UUIDVersionName = "uuid_version"

// UUIDVersion extracts the RFC4122 version number as a Uint32.
//
// The argument is either tagged UUID binary or text. Text goes through
// StringToUUID first, so a query can ask for the version of a UUID that was
// never explicitly converted. Parse errors from that step are returned as is.
type UUIDVersion struct {
	signature Signature
	encoder   *StringToUUID
}

// NewUUIDVersion returns the uuid_version function.
func NewUUIDVersion() *UUIDVersion {
	return &UUIDVersion{
		signature: Signature{Arity: 1, Types: withUUID(textTypes()...), Volatility: Immutable},
		encoder:   NewStringToUUID(),
	}
}

// Name implements ScalarFunction.
func (f *UUIDVersion) Name() string { return UUIDVersionName }

// Signature implements ScalarFunction.
func (f *UUIDVersion) Signature() Signature { return f.signature.clone() }

// ReturnField implements ScalarFunction.
func (f *UUIDVersion) ReturnField(args []arrow.Field) (arrow.Field, error) {
	arg, err := singleArg(f.Name(), args)
	if err != nil {
		return arrow.Field{}, err
	}

	switch {
	case uuidtype.IsFixed16(arg.Type):
		if !uuidtype.IsUUID(arg) {
			return arrow.Field{}, schemaErrorf(f.Name(), "argument %q must carry the %s extension type", arg.Name, uuidtype.ExtensionName)
		}
	case uuidtype.IsText(arg.Type):
		// Text is checked when parsed.
	default:
		return arrow.Field{}, schemaErrorf(f.Name(), "argument %q has type %v, expected UUID or a string type", arg.Name, arg.Type)
	}

	return arrow.Field{Name: f.Name(), Type: arrow.PrimitiveTypes.Uint32, Nullable: true}, nil
}

// Invoke implements ScalarFunction.
func (f *UUIDVersion) Invoke(args InvokeArgs) (Datum, error) {
	d, err := singleDatum(f.Name(), args)
	if err != nil {
		return nil, err
	}

	switch v := d.(type) {
	case *ArrayDatum:
		out, err := f.Versions(args.allocator(), v.Value)
		if err != nil {
			return nil, err
		}
		return &ArrayDatum{Value: out}, nil
	case *ScalarDatum:
		out, err := f.VersionScalar(v.Value)
		if err != nil {
			return nil, err
		}
		return NewScalarDatum(out), nil
	default:
		return nil, shapeError(f.Name(), "array or scalar", d.DataType())
	}
}

// Versions returns the version of every element of a UUID or string array.
func (f *UUIDVersion) Versions(mem memory.Allocator, arr arrow.Array) (*array.Uint32, error) {
	fsb, ok := asFixed16(arr)
	if !ok {
		if _, isText := asText(arr); !isText {
			return nil, shapeError(f.Name(), "FixedSizeBinary(16) or string array", arr.DataType())
		}
		encoded, err := f.encoder.Encode(mem, arr)
		if err != nil {
			return nil, err
		}
		defer encoded.Release()
		fsb = encoded
	}

	b := array.NewUint32Builder(mem)
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
		b.Append(uint32(u.Version()))
	}

	return b.NewUint32Array(), nil
}

// VersionScalar returns the version of a single UUID or string scalar.
func (f *UUIDVersion) VersionScalar(s Scalar) (Scalar, error) {
	switch {
	case uuidtype.IsFixed16(s.Type):
		// Already binary.
	case uuidtype.IsText(s.Type):
		encoded, err := f.encoder.EncodeScalar(s)
		if err != nil {
			return Scalar{}, err
		}
		s = encoded
	default:
		return Scalar{}, shapeError(f.Name(), "FixedSizeBinary(16) or string scalar", s.Type)
	}

	if s.IsNull() {
		return NullScalar(arrow.PrimitiveTypes.Uint32), nil
	}
	raw, ok := s.AsBytes()
	if !ok {
		return Scalar{}, shapeError(f.Name(), "binary value", s.Type)
	}
	u, err := codec.FromBytes(raw)
	if err != nil {
		return Scalar{}, parseError(f.Name(), -1, fmt.Sprintf("%x", raw), err)
	}
	return Uint32Scalar(uint32(u.Version())), nil
}
