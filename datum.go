package uuidudf

import (
	"fmt"

	"github.com/apache/arrow-go/v18/arrow"
)

// DatumKind distinguishes the two argument shapes a function can receive.
type DatumKind uint8

const (
	// KindArray is a whole columnar batch.
	KindArray DatumKind = iota
	// KindScalar is a single, possibly null, value.
	KindScalar
)

// String returns the string representation of the DatumKind.
func (k DatumKind) String() string {
	switch k {
	case KindArray:
		return "Array"
	case KindScalar:
		return "Scalar"
	default:
		return "Unknown"
	}
}

// Datum is a function argument or result: either an array or a scalar.
type Datum interface {
	Kind() DatumKind
	DataType() arrow.DataType
	// Release drops the reference held by the datum. It is a no-op for scalars.
	Release()
}

// ArrayDatum wraps a columnar batch.
type ArrayDatum struct {
	Value arrow.Array
}

// NewArrayDatum wraps arr and takes a reference on it.
func NewArrayDatum(arr arrow.Array) *ArrayDatum {
	arr.Retain()
	return &ArrayDatum{Value: arr}
}

func (*ArrayDatum) Kind() DatumKind            { return KindArray }
func (d *ArrayDatum) DataType() arrow.DataType { return d.Value.DataType() }
func (d *ArrayDatum) Len() int                 { return d.Value.Len() }

func (d *ArrayDatum) Release() {
	if d.Value != nil {
		d.Value.Release()
		d.Value = nil
	}
}

// ScalarDatum wraps a single value.
type ScalarDatum struct {
	Value Scalar
}

// NewScalarDatum wraps s.
func NewScalarDatum(s Scalar) *ScalarDatum { return &ScalarDatum{Value: s} }

func (*ScalarDatum) Kind() DatumKind            { return KindScalar }
func (d *ScalarDatum) DataType() arrow.DataType { return d.Value.Type }
func (*ScalarDatum) Release()                   {}

// Scalar is a single optional value of an Arrow type.
//
// Value is nil for null. Otherwise it holds a string for the text types,
// a []byte for FixedSizeBinary and a uint32 for Uint32.
type Scalar struct {
	Type  arrow.DataType
	Value any
}

// IsNull reports whether s is null.
func (s Scalar) IsNull() bool { return s.Value == nil }

// AsString returns the string payload.
func (s Scalar) AsString() (string, bool) {
	v, ok := s.Value.(string)
	return v, ok
}

// AsBytes returns the binary payload.
func (s Scalar) AsBytes() ([]byte, bool) {
	v, ok := s.Value.([]byte)
	return v, ok
}

// AsUint32 returns the uint32 payload.
func (s Scalar) AsUint32() (uint32, bool) {
	v, ok := s.Value.(uint32)
	return v, ok
}

// String renders the scalar for logs and the CLI. Binary is shown as hex.
func (s Scalar) String() string {
	if s.IsNull() {
		return "null"
	}
	if b, ok := s.AsBytes(); ok {
		return fmt.Sprintf("%x", b)
	}
	return fmt.Sprint(s.Value)
}

// NullScalar returns a null of type dt.
func NullScalar(dt arrow.DataType) Scalar { return Scalar{Type: dt} }

// StringScalar returns a non-null Utf8 scalar.
func StringScalar(v string) Scalar { return Scalar{Type: arrow.BinaryTypes.String, Value: v} }

// LargeStringScalar returns a non-null LargeUtf8 scalar.
func LargeStringScalar(v string) Scalar {
	return Scalar{Type: arrow.BinaryTypes.LargeString, Value: v}
}

// StringViewScalar returns a non-null Utf8View scalar.
func StringViewScalar(v string) Scalar {
	return Scalar{Type: arrow.BinaryTypes.StringView, Value: v}
}

// FixedSizeBinaryScalar returns a non-null FixedSizeBinary scalar of len(v) bytes.
func FixedSizeBinaryScalar(v []byte) Scalar {
	return Scalar{Type: &arrow.FixedSizeBinaryType{ByteWidth: len(v)}, Value: v}
}

// Uint32Scalar returns a non-null Uint32 scalar.
func Uint32Scalar(v uint32) Scalar { return Scalar{Type: arrow.PrimitiveTypes.Uint32, Value: v} }
