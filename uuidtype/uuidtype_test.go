package uuidtype

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/extensions"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUUID(t *testing.T) {
	tests := []struct {
		name  string
		field arrow.Field
		want  bool
	}{
		{"MetadataTag", Field("id", true), true},
		{"ExtensionType", ExtensionField("id", true), true},
		{"UntaggedFixed16", arrow.Field{Name: "id", Type: Storage()}, false},
		{
			"TagOnWrongWidth",
			arrow.Field{Name: "id", Type: &arrow.FixedSizeBinaryType{ByteWidth: 8}, Metadata: Metadata()},
			false,
		},
		{
			"OtherExtensionName",
			arrow.Field{
				Name:     "id",
				Type:     Storage(),
				Metadata: arrow.NewMetadata([]string{ExtensionNameKey}, []string{"arrow.json"}),
			},
			false,
		},
		{"OtherExtensionType", arrow.Field{Name: "b", Type: extensions.NewBool8Type()}, false},
		{"String", arrow.Field{Name: "s", Type: arrow.BinaryTypes.String, Metadata: Metadata()}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUUID(tt.field))
		})
	}
}

func TestIsFixed16(t *testing.T) {
	assert.True(t, IsFixed16(Storage()))
	assert.True(t, IsFixed16(extensions.NewUUIDType()))
	assert.False(t, IsFixed16(&arrow.FixedSizeBinaryType{ByteWidth: 15}))
	assert.False(t, IsFixed16(arrow.BinaryTypes.Binary))
}

func TestIsText(t *testing.T) {
	assert.True(t, IsText(arrow.BinaryTypes.String))
	assert.True(t, IsText(arrow.BinaryTypes.LargeString))
	assert.True(t, IsText(arrow.BinaryTypes.StringView))
	assert.False(t, IsText(arrow.BinaryTypes.Binary))
	assert.False(t, IsText(arrow.PrimitiveTypes.Uint32))
	assert.False(t, IsText(nil))
}

func TestStorageArray(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	b := extensions.NewUUIDBuilder(mem)
	defer b.Release()
	b.AppendNull()
	arr := b.NewArray()
	defer arr.Release()

	storage := StorageArray(arr)
	_, ok := storage.(*array.FixedSizeBinary)
	require.True(t, ok)
	assert.Equal(t, 1, storage.Len())
	assert.True(t, storage.IsNull(0))

	assert.Same(t, storage, StorageArray(storage))
}

func TestStorageIsFresh(t *testing.T) {
	s := Storage()
	s.ByteWidth = 8

	assert.Equal(t, ByteWidth, Storage().ByteWidth)
	assert.True(t, IsUUID(Field("id", true)))
	assert.NotSame(t, Storage(), Storage())
}
