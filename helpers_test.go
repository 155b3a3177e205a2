package uuidudf

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/uuidudf/codec"
	"github.com/hupe1980/uuidudf/uuidtype"
)

const (
	uuidV4  = "550e8400-e29b-41d4-a716-446655440000"
	uuidV1  = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
	uuidV7  = "017f22e2-79b0-7cc3-98c4-dc0c0c07398f"
	uuidNil = "00000000-0000-0000-0000-000000000000"
)

// checkedMem returns an allocator that fails the test if anything is leaked.
func checkedMem(t *testing.T) *memory.CheckedAllocator {
	t.Helper()
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	t.Cleanup(func() { mem.AssertSize(t, 0) })
	return mem
}

// textArray builds a string array of type dt. nil elements become nulls.
func textArray(t *testing.T, mem memory.Allocator, dt arrow.DataType, values ...any) arrow.Array {
	t.Helper()
	b := array.NewBuilder(mem, dt)
	defer b.Release()

	sb, ok := b.(interface{ Append(string) })
	require.True(t, ok, "builder for %v has no Append(string)", dt)

	for _, v := range values {
		if v == nil {
			b.AppendNull()
			continue
		}
		sb.Append(v.(string))
	}
	return b.NewArray()
}

// uuidArray builds an untagged FixedSizeBinary(16) array from UUID text.
// nil elements become nulls.
func uuidArray(t *testing.T, mem memory.Allocator, values ...any) *array.FixedSizeBinary {
	t.Helper()
	b := array.NewFixedSizeBinaryBuilder(mem, uuidtype.Storage())
	defer b.Release()

	for _, v := range values {
		if v == nil {
			b.AppendNull()
			continue
		}
		u, err := codec.Parse(v.(string))
		require.NoError(t, err)
		b.Append(u[:])
	}
	return b.NewFixedSizeBinaryArray()
}

func mustBytes(t *testing.T, s string) []byte {
	t.Helper()
	u, err := codec.Parse(s)
	require.NoError(t, err)
	return u.Bytes()
}

func invokeArray(t *testing.T, fn ScalarFunction, mem memory.Allocator, arr arrow.Array) (arrow.Array, error) {
	t.Helper()
	arg := NewArrayDatum(arr)
	defer arg.Release()

	res, err := fn.Invoke(InvokeArgs{Args: []Datum{arg}, NumRows: arr.Len(), Mem: mem})
	if err != nil {
		require.Nil(t, res)
		return nil, err
	}
	ad, ok := res.(*ArrayDatum)
	require.True(t, ok)
	return ad.Value, nil
}

func invokeScalar(t *testing.T, fn ScalarFunction, s Scalar) (Scalar, error) {
	t.Helper()
	res, err := fn.Invoke(InvokeArgs{Args: []Datum{NewScalarDatum(s)}, NumRows: 1})
	if err != nil {
		require.Nil(t, res)
		return Scalar{}, err
	}
	sd, ok := res.(*ScalarDatum)
	require.True(t, ok)
	return sd.Value, nil
}

var allTextTypes = []arrow.DataType{
	arrow.BinaryTypes.String,
	arrow.BinaryTypes.LargeString,
	arrow.BinaryTypes.StringView,
}
