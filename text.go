package uuidudf

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/hupe1980/uuidudf/uuidtype"
)

// stringArray is the read surface shared by *array.String, *array.LargeString
// and *array.StringView.
type stringArray interface {
	arrow.Array
	Value(i int) string
}

// asText returns arr as a stringArray when it is one of the string encodings.
func asText(arr arrow.Array) (stringArray, bool) {
	if !uuidtype.IsText(arr.DataType()) {
		return nil, false
	}
	switch a := arr.(type) {
	case *array.String:
		return a, true
	case *array.LargeString:
		return a, true
	case *array.StringView:
		return a, true
	default:
		return nil, false
	}
}

// asFixed16 returns the FixedSizeBinary(16) storage of arr, unwrapping the UUID
// extension array.
func asFixed16(arr arrow.Array) (*array.FixedSizeBinary, bool) {
	if !uuidtype.IsFixed16(arr.DataType()) {
		return nil, false
	}
	fsb, ok := uuidtype.StorageArray(arr).(*array.FixedSizeBinary)
	return fsb, ok
}
