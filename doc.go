// Package uuidudf provides UUID scalar functions over Apache Arrow data.
//
// Three functions convert between UUID text and the canonical 16-byte binary
// form and extract the RFC4122 version. They implement ScalarFunction, a small
// contract a host query engine can register and call:
//
//   - string_to_uuid: Utf8 | LargeUtf8 | Utf8View -> FixedSizeBinary(16) tagged arrow.uuid
//   - uuid_to_string: FixedSizeBinary(16) tagged arrow.uuid -> Utf8View
//   - uuid_version:   FixedSizeBinary(16) tagged arrow.uuid | text -> Uint32
//
// # Quick Start
//
//	fn := uuidudf.NewStringToUUID()
//	field, err := fn.ReturnField([]arrow.Field{{Name: "id", Type: arrow.BinaryTypes.String}})
//	res, err := fn.Invoke(uuidudf.InvokeArgs{
//	    Args:    []uuidudf.Datum{uuidudf.NewArrayDatum(ids)},
//	    NumRows: ids.Len(),
//	})
//	defer res.Release()
//
// Or let an Executor do the planning, logging and metrics:
//
//	exec := uuidudf.NewExecutor(uuidudf.WithLogger(uuidudf.NewTextLogger(slog.LevelDebug)))
//	rec, err := exec.WithColumn(ctx, rec, "uuid", uuidudf.NewStringToUUID(), 0)
//
// # Semantic Tag
//
// A UUID column is FixedSizeBinary(16) plus the arrow.uuid extension tag on
// its field (see package uuidtype). uuid_to_string and uuid_version reject
// untagged 16-byte binary at planning time with a SchemaError.
//
// # Errors
//
//   - SchemaError (ErrSchema): wrong arity, wrong type or missing tag. Returned by ReturnField.
//   - ParseError (ErrParse): a value is not a valid UUID. Returned by Invoke.
//   - ShapeError (ErrInternalShape): the runtime value contradicts the signature.
//
// Nulls are never errors; they map to nulls. A failing Invoke returns no
// partial result: batches are all-or-nothing.
//
// # Concurrency
//
// Functions hold only their signature and may be shared freely across
// goroutines. Nothing blocks or performs I/O.
package uuidudf
