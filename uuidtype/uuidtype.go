// Package uuidtype describes the canonical UUID semantic tag.
//
// A UUID column is physically a FixedSizeBinary(16) column. What separates it
// from arbitrary 16-byte binary is the Arrow canonical extension "arrow.uuid",
// which can reach us in two shapes:
//
//   - the field type is the extension type itself (extensions.UUIDType)
//   - the field type is FixedSizeBinary(16) and the field metadata carries
//     ARROW:extension:name = arrow.uuid (the IPC wire representation)
//
// Both are accepted. Fields produced by this module use the second shape so
// the tag travels with the schema and the arrays stay plain fixed binary.
package uuidtype

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/extensions"
)

const (
	// ExtensionName is the canonical extension name for UUIDs.
	ExtensionName = "arrow.uuid"

	// ExtensionNameKey is the field metadata key holding the extension name.
	ExtensionNameKey = "ARROW:extension:name"

	// ExtensionMetadataKey is the field metadata key holding the serialized
	// extension parameters. UUIDs have none.
	ExtensionMetadataKey = "ARROW:extension:metadata"

	// ByteWidth is the storage width of a UUID value.
	ByteWidth = 16
)

// Storage returns the physical type of a UUID column. Each call returns a new
// value, so no caller can alter the type seen by others.
func Storage() *arrow.FixedSizeBinaryType {
	return &arrow.FixedSizeBinaryType{ByteWidth: ByteWidth}
}

// Metadata returns field metadata carrying the UUID tag.
func Metadata() arrow.Metadata {
	return arrow.NewMetadata(
		[]string{ExtensionNameKey, ExtensionMetadataKey},
		[]string{ExtensionName, ""},
	)
}

// Field returns a FixedSizeBinary(16) field tagged as UUID through metadata.
func Field(name string, nullable bool) arrow.Field {
	return arrow.Field{Name: name, Type: Storage(), Nullable: nullable, Metadata: Metadata()}
}

// ExtensionField returns a field typed with the registered UUID extension type.
func ExtensionField(name string, nullable bool) arrow.Field {
	return arrow.Field{Name: name, Type: extensions.NewUUIDType(), Nullable: nullable}
}

// IsUUID reports whether field carries the UUID tag on a 16-byte fixed binary
// storage type.
func IsUUID(field arrow.Field) bool {
	if ext, ok := field.Type.(arrow.ExtensionType); ok {
		return ext.ExtensionName() == ExtensionName && IsFixed16(ext.StorageType())
	}
	if !IsFixed16(field.Type) {
		return false
	}
	idx := field.Metadata.FindKey(ExtensionNameKey)
	return idx >= 0 && field.Metadata.Values()[idx] == ExtensionName
}

// IsFixed16 reports whether dt is physically FixedSizeBinary(16). Extension
// types are judged by their storage type.
func IsFixed16(dt arrow.DataType) bool {
	if ext, ok := dt.(arrow.ExtensionType); ok {
		dt = ext.StorageType()
	}
	fsb, ok := dt.(*arrow.FixedSizeBinaryType)
	return ok && fsb.ByteWidth == ByteWidth
}

// IsText reports whether dt is one of the interchangeable string encodings.
func IsText(dt arrow.DataType) bool {
	if dt == nil {
		return false
	}
	switch dt.ID() {
	case arrow.STRING, arrow.LARGE_STRING, arrow.STRING_VIEW:
		return true
	default:
		return false
	}
}

// StorageArray returns the storage of an extension array, or arr unchanged.
func StorageArray(arr arrow.Array) arrow.Array {
	if ext, ok := arr.(array.ExtensionArray); ok {
		return ext.Storage()
	}
	return arr
}
