package uuidudf

import (
	"context"
	"fmt"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"golang.org/x/sync/errgroup"
)

// Executor drives ScalarFunctions over Arrow records the way a host engine
// would: deduce the return field once, then invoke per batch.
//
// It adds logging, metrics and allocator selection around the functions,
// which themselves stay pure. An Executor is safe for concurrent use.
type Executor struct {
	opts options
}

// NewExecutor creates an Executor.
func NewExecutor(optFns ...Option) *Executor {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Executor{opts: opts}
}

// ReturnField runs planning-time validation of fn against args.
func (e *Executor) ReturnField(ctx context.Context, fn ScalarFunction, args []arrow.Field) (arrow.Field, error) {
	field, err := fn.ReturnField(args)

	argType := "<none>"
	if len(args) > 0 && args[0].Type != nil {
		argType = args[0].Type.String()
	}
	e.opts.logger.LogReturnField(ctx, fn.Name(), argType, err)
	e.opts.metricsCollector.RecordReturnField(fn.Name(), err)

	return field, err
}

// Invoke runs a single invocation of fn on arg.
//
// numRows is the batch length for arrays and 1 for scalars. The caller owns
// the returned datum.
func (e *Executor) Invoke(ctx context.Context, fn ScalarFunction, field arrow.Field, arg Datum, numRows int) (Datum, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	out, err := fn.Invoke(InvokeArgs{
		Args:      []Datum{arg},
		ArgFields: []arrow.Field{field},
		NumRows:   numRows,
		Mem:       e.opts.mem,
	})

	e.opts.metricsCollector.RecordInvoke(fn.Name(), numRows, time.Since(start), err)
	e.opts.logger.LogInvoke(ctx, fn.Name(), arg.Kind(), numRows, err)

	return out, err
}

// Eval applies fn to column col of rec and returns the output field and array.
// The caller must Release the array.
func (e *Executor) Eval(ctx context.Context, fn ScalarFunction, rec arrow.Record, col int) (arrow.Field, arrow.Array, error) {
	if col < 0 || col >= int(rec.NumCols()) {
		return arrow.Field{}, nil, schemaErrorf(fn.Name(), "column index %d out of range [0,%d)", col, rec.NumCols())
	}

	field := rec.Schema().Field(col)
	out, err := e.ReturnField(ctx, fn, []arrow.Field{field})
	if err != nil {
		return arrow.Field{}, nil, err
	}

	arg := NewArrayDatum(rec.Column(col))
	defer arg.Release()

	res, err := e.Invoke(ctx, fn, field, arg, int(rec.NumRows()))
	if err != nil {
		return arrow.Field{}, nil, err
	}

	ad, ok := res.(*ArrayDatum)
	if !ok {
		res.Release()
		return arrow.Field{}, nil, shapeError(fn.Name(), "array result", res.DataType())
	}
	return out, ad.Value, nil
}

// EvalScalar applies fn to a single value described by field.
func (e *Executor) EvalScalar(ctx context.Context, fn ScalarFunction, field arrow.Field, s Scalar) (Scalar, error) {
	if _, err := e.ReturnField(ctx, fn, []arrow.Field{field}); err != nil {
		return Scalar{}, err
	}

	res, err := e.Invoke(ctx, fn, field, NewScalarDatum(s), 1)
	if err != nil {
		return Scalar{}, err
	}

	sd, ok := res.(*ScalarDatum)
	if !ok {
		res.Release()
		return Scalar{}, shapeError(fn.Name(), "scalar result", res.DataType())
	}
	return sd.Value, nil
}

// WithColumn returns a new record with the result of fn over column col
// appended under name. The output field keeps its metadata, so a UUID column
// produced by string_to_uuid stays tagged in the new schema.
func (e *Executor) WithColumn(ctx context.Context, rec arrow.Record, name string, fn ScalarFunction, col int) (arrow.Record, error) {
	field, arr, err := e.Eval(ctx, fn, rec, col)
	if err != nil {
		return nil, err
	}
	defer arr.Release()

	field.Name = name

	schema := rec.Schema()
	fields := make([]arrow.Field, 0, schema.NumFields()+1)
	fields = append(fields, schema.Fields()...)
	fields = append(fields, field)

	cols := make([]arrow.Array, 0, len(fields))
	cols = append(cols, rec.Columns()...)
	cols = append(cols, arr)

	md := schema.Metadata()
	return array.NewRecord(arrow.NewSchema(fields, &md), cols, rec.NumRows()), nil
}

// EvalBatches applies fn to column col of every record, up to the configured
// concurrency at a time.
//
// The result is all-or-nothing: if any batch fails, every array already
// produced is released and only the first error is returned.
func (e *Executor) EvalBatches(ctx context.Context, fn ScalarFunction, recs []arrow.Record, col int) ([]arrow.Array, error) {
	start := time.Now()
	out := make([]arrow.Array, len(recs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.concurrency)

	for i, rec := range recs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			_, arr, err := e.Eval(gctx, fn, rec, col)
			if err != nil {
				return fmt.Errorf("batch %d: %w", i, err)
			}
			out[i] = arr
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, arr := range out {
			if arr != nil {
				arr.Release()
			}
		}
		e.opts.metricsCollector.RecordBatchEval(fn.Name(), len(recs), 1, time.Since(start))
		e.opts.logger.LogBatchEval(ctx, fn.Name(), len(recs), 0, err)
		return nil, err
	}

	rows := 0
	for _, arr := range out {
		rows += arr.Len()
	}
	e.opts.metricsCollector.RecordBatchEval(fn.Name(), len(recs), 0, time.Since(start))
	e.opts.logger.LogBatchEval(ctx, fn.Name(), len(recs), rows, nil)

	return out, nil
}
