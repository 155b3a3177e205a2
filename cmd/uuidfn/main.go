// Command uuidfn runs the UUID functions over values given on the command
// line or read line by line from stdin.
//
// Every invocation builds a single Arrow batch, so one malformed value fails
// the whole run. Empty lines and the literal "null" are treated as nulls.
package main

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/hupe1980/uuidudf"
	"github.com/hupe1980/uuidudf/uuidtype"
)

// CLI defines the command-line interface for uuidfn.
var CLI struct {
	Verbose   bool   `short:"v" help:"Enable debug logging"`
	LogFormat string `enum:"text,json" default:"text" help:"Log output format (text, json)"`

	Encode    EncodeCmd    `cmd:"" help:"Parse UUID text and print the 16 bytes as hex"`
	Decode    DecodeCmd    `cmd:"" help:"Format 32-digit hex UUID bytes as canonical text"`
	Version   VersionCmd   `cmd:"" help:"Print the RFC4122 version of UUID text"`
	Functions FunctionsCmd `cmd:"" help:"List the registered functions"`
}

// runContext is bound into every command's Run method.
type runContext struct {
	ctx  context.Context
	exec *uuidudf.Executor
	mem  memory.Allocator
	in   io.Reader
	out  io.Writer
}

// EncodeCmd runs string_to_uuid.
type EncodeCmd struct {
	Values []string `arg:"" optional:"" help:"UUID strings (default: read stdin)"`
}

// Run executes the encode command.
func (c *EncodeCmd) Run(rc *runContext) error {
	values, err := readValues(c.Values, rc.in)
	if err != nil {
		return err
	}

	rec := textRecord(rc.mem, values)
	defer rec.Release()

	_, arr, err := rc.exec.Eval(rc.ctx, uuidudf.NewStringToUUID(), rec, 0)
	if err != nil {
		return err
	}
	defer arr.Release()

	fsb := arr.(*array.FixedSizeBinary)
	for i := 0; i < fsb.Len(); i++ {
		if fsb.IsNull(i) {
			fmt.Fprintln(rc.out, "null")
			continue
		}
		fmt.Fprintln(rc.out, hex.EncodeToString(fsb.Value(i)))
	}
	return nil
}

// DecodeCmd runs uuid_to_string.
type DecodeCmd struct {
	Values []string `arg:"" optional:"" help:"32-digit hex values (default: read stdin)"`
}

// Run executes the decode command.
func (c *DecodeCmd) Run(rc *runContext) error {
	values, err := readValues(c.Values, rc.in)
	if err != nil {
		return err
	}

	rec, err := binaryRecord(rc.mem, values)
	if err != nil {
		return err
	}
	defer rec.Release()

	_, arr, err := rc.exec.Eval(rc.ctx, uuidudf.NewUUIDToString(), rec, 0)
	if err != nil {
		return err
	}
	defer arr.Release()

	sv := arr.(*array.StringView)
	for i := 0; i < sv.Len(); i++ {
		if sv.IsNull(i) {
			fmt.Fprintln(rc.out, "null")
			continue
		}
		fmt.Fprintln(rc.out, sv.Value(i))
	}
	return nil
}

// VersionCmd runs uuid_version on text input.
type VersionCmd struct {
	Values []string `arg:"" optional:"" help:"UUID strings (default: read stdin)"`
}

// Run executes the version command.
func (c *VersionCmd) Run(rc *runContext) error {
	values, err := readValues(c.Values, rc.in)
	if err != nil {
		return err
	}

	rec := textRecord(rc.mem, values)
	defer rec.Release()

	_, arr, err := rc.exec.Eval(rc.ctx, uuidudf.NewUUIDVersion(), rec, 0)
	if err != nil {
		return err
	}
	defer arr.Release()

	versions := arr.(*array.Uint32)
	for i := 0; i < versions.Len(); i++ {
		if versions.IsNull(i) {
			fmt.Fprintln(rc.out, "null")
			continue
		}
		fmt.Fprintln(rc.out, versions.Value(i))
	}
	return nil
}

// FunctionsCmd lists the registry.
type FunctionsCmd struct{}

// Run executes the functions command.
func (c *FunctionsCmd) Run(rc *runContext) error {
	for _, fn := range uuidudf.Functions() {
		sig := fn.Signature()
		types := make([]string, len(sig.Types))
		for i, t := range sig.Types {
			types[i] = t.String()
		}
		fmt.Fprintf(rc.out, "%s(%s) %s\n", fn.Name(), strings.Join(types, " | "), sig.Volatility)
	}
	return nil
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("uuidfn"),
		kong.Description("Run UUID scalar functions over Arrow batches."),
		kong.UsageOnError(),
	)

	level := slog.LevelWarn
	if CLI.Verbose {
		level = slog.LevelDebug
	}

	logger := uuidudf.NewTextLogger(level)
	if CLI.LogFormat == "json" {
		logger = uuidudf.NewJSONLogger(level)
	}

	rc := &runContext{
		ctx:  context.Background(),
		exec: uuidudf.NewExecutor(uuidudf.WithLogger(logger)),
		mem:  memory.DefaultAllocator,
		in:   os.Stdin,
		out:  os.Stdout,
	}

	kctx.FatalIfErrorf(kctx.Run(rc))
}

// readValues returns args, or the lines of r when args is empty.
func readValues(args []string, r io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var values []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		values = append(values, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return values, nil
}

func isNull(v string) bool { return v == "" || v == "null" }

// textRecord builds a single Utf8 column named "value".
func textRecord(mem memory.Allocator, values []string) arrow.Record {
	b := array.NewStringBuilder(mem)
	defer b.Release()

	for _, v := range values {
		if isNull(v) {
			b.AppendNull()
			continue
		}
		b.Append(v)
	}
	arr := b.NewArray()
	defer arr.Release()

	schema := arrow.NewSchema([]arrow.Field{{Name: "value", Type: arrow.BinaryTypes.String, Nullable: true}}, nil)
	return array.NewRecord(schema, []arrow.Array{arr}, int64(arr.Len()))
}

// binaryRecord builds a single tagged UUID column named "value" from hex input.
func binaryRecord(mem memory.Allocator, values []string) (arrow.Record, error) {
	b := array.NewFixedSizeBinaryBuilder(mem, uuidtype.Storage())
	defer b.Release()

	for i, v := range values {
		if isNull(v) {
			b.AppendNull()
			continue
		}
		raw, err := hex.DecodeString(strings.ReplaceAll(v, "-", ""))
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		if len(raw) != uuidtype.ByteWidth {
			return nil, fmt.Errorf("value %d: expected %d bytes, got %d", i, uuidtype.ByteWidth, len(raw))
		}
		b.Append(raw)
	}
	arr := b.NewArray()
	defer arr.Release()

	schema := arrow.NewSchema([]arrow.Field{uuidtype.Field("value", true)}, nil)
	return array.NewRecord(schema, []arrow.Array{arr}, int64(arr.Len())), nil
}
