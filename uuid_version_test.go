package uuidudf

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/uuidudf/uuidtype"
)

func TestUUIDVersionSignature(t *testing.T) {
	sig := NewUUIDVersion().Signature()
	assert.Equal(t, 1, sig.Arity)
	assert.Equal(t, Immutable, sig.Volatility)

	assert.True(t, sig.Accepts(uuidtype.Storage()))
	assert.True(t, sig.Accepts(uuidtype.ExtensionField("u", true).Type))
	for _, dt := range allTextTypes {
		assert.True(t, sig.Accepts(dt), dt.String())
	}
	assert.False(t, sig.Accepts(&arrow.FixedSizeBinaryType{ByteWidth: 8}))
	assert.False(t, sig.Accepts(arrow.BinaryTypes.Binary))
}

func TestUUIDVersionReturnField(t *testing.T) {
	fn := NewUUIDVersion()

	valid := append([]arrow.Field{uuidtype.Field("u", true), uuidtype.ExtensionField("u", true)},
		arrow.Field{Name: "s", Type: arrow.BinaryTypes.String},
		arrow.Field{Name: "s", Type: arrow.BinaryTypes.LargeString},
		arrow.Field{Name: "s", Type: arrow.BinaryTypes.StringView},
	)
	for _, arg := range valid {
		field, err := fn.ReturnField([]arrow.Field{arg})
		require.NoError(t, err, arg.Type.String())
		assert.Equal(t, UUIDVersionName, field.Name)
		assert.True(t, field.Nullable)
		assert.True(t, arrow.TypeEqual(arrow.PrimitiveTypes.Uint32, field.Type))
	}

	tests := []struct {
		name string
		args []arrow.Field
	}{
		{"NoArgs", nil},
		{"TwoArgs", []arrow.Field{uuidtype.Field("a", true), {Name: "b", Type: arrow.BinaryTypes.String}}},
		{"UntaggedFixed16", []arrow.Field{{Name: "a", Type: uuidtype.Storage()}}},
		{"Int", []arrow.Field{{Name: "a", Type: arrow.PrimitiveTypes.Int32}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fn.ReturnField(tt.args)
			assert.ErrorIs(t, err, ErrSchema)
		})
	}
}

func TestUUIDVersionInvokeBinary(t *testing.T) {
	mem := checkedMem(t)

	in := uuidArray(t, mem, uuidV4, uuidV1, nil, uuidV7, uuidNil)
	defer in.Release()

	out, err := invokeArray(t, NewUUIDVersion(), mem, in)
	require.NoError(t, err)
	defer out.Release()

	versions, ok := out.(*array.Uint32)
	require.True(t, ok)
	require.Equal(t, 5, versions.Len())

	assert.Equal(t, uint32(4), versions.Value(0))
	assert.Equal(t, uint32(1), versions.Value(1))
	assert.True(t, versions.IsNull(2))
	assert.Equal(t, uint32(7), versions.Value(3))
	assert.Equal(t, uint32(0), versions.Value(4))
}

func TestUUIDVersionInvokeText(t *testing.T) {
	for _, dt := range allTextTypes {
		t.Run(dt.String(), func(t *testing.T) {
			mem := checkedMem(t)

			in := textArray(t, mem, dt, uuidV1, nil, uuidV4)
			defer in.Release()

			out, err := invokeArray(t, NewUUIDVersion(), mem, in)
			require.NoError(t, err)
			defer out.Release()

			versions := out.(*array.Uint32)
			assert.Equal(t, uint32(1), versions.Value(0))
			assert.True(t, versions.IsNull(1))
			assert.Equal(t, uint32(4), versions.Value(2))
		})
	}
}

func TestUUIDVersionTextParseErrorPropagates(t *testing.T) {
	mem := checkedMem(t)

	in := textArray(t, mem, arrow.BinaryTypes.StringView, uuidV1, "zzzz")
	defer in.Release()

	_, err := invokeArray(t, NewUUIDVersion(), mem, in)
	require.ErrorIs(t, err, ErrParse)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, StringToUUIDName, pe.Function)
	assert.Equal(t, 1, pe.Row)
}

func TestUUIDVersionInvokeScalar(t *testing.T) {
	fn := NewUUIDVersion()

	tests := []struct {
		name string
		in   Scalar
		want Scalar
	}{
		{"Binary", FixedSizeBinaryScalar(mustBytes(t, uuidV4)), Uint32Scalar(4)},
		{"String", StringScalar(uuidV1), Uint32Scalar(1)},
		{"LargeString", LargeStringScalar(uuidV7), Uint32Scalar(7)},
		{"StringView", StringViewScalar(uuidNil), Uint32Scalar(0)},
		{"NullBinary", NullScalar(uuidtype.Storage()), NullScalar(arrow.PrimitiveTypes.Uint32)},
		{"NullString", NullScalar(arrow.BinaryTypes.String), NullScalar(arrow.PrimitiveTypes.Uint32)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := invokeScalar(t, fn, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("InvalidText", func(t *testing.T) {
		_, err := invokeScalar(t, fn, StringScalar("not-a-uuid"))
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("WrongType", func(t *testing.T) {
		_, err := invokeScalar(t, fn, Uint32Scalar(1))
		assert.ErrorIs(t, err, ErrInternalShape)
	})
}
