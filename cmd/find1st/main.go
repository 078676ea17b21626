// Command find1st prints the index of the first element of a list of
// numbers that satisfies a comparison.
//
// Usage:
//
//	find1st [flags] [value ...]
//
// Values are read from the arguments, or from whitespace-separated standard
// input when there are none. The result is the logical index within the
// selected view, or -1.
//
// Examples:
//
//	find1st -op gt -value 4 0 3 7 2 9
//	seq 0 100 | find1st -dtype int32 -op '>=' -value 42
//	find1st -stride 2 -op eq -value 1 1 9 1 9
//	find1st -dtype uint8 -offset 4 -stride -1 0 0 5 0 0
//	find1st -list
//	find1st -backend
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-find1st/find"
)

// Exit codes.
const (
	exitOK         = 0
	exitValidation = 1
	exitUsage      = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

type options struct {
	op      string
	value   string
	dtype   string
	offset  int
	stride  int
	n       int
	list    bool
	backend bool
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var o options

	fs := flag.NewFlagSet("find1st", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.op, "op", "ne", "comparison: lt, le, eq, ne, ge, gt or <, <=, ==, !=, >=, >")
	fs.StringVar(&o.value, "value", "", "comparison value (default: truthy, i.e. ne 0)")
	fs.StringVar(&o.dtype, "dtype", "float64", "element type of the values (see -list)")
	fs.IntVar(&o.offset, "offset", 0, "position of the first element of the view")
	fs.IntVar(&o.stride, "stride", 1, "step between view elements, may be negative")
	fs.IntVar(&o.n, "n", -1, "number of view elements (default: all reachable)")
	fs.BoolVar(&o.list, "list", false, "list element types and operators")
	fs.BoolVar(&o.backend, "backend", false, "print the selected scan kernel set")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: find1st [flags] [value ...]\n\n")
		fmt.Fprintf(stderr, "Prints the index of the first value satisfying a comparison, or -1.\n")
		fmt.Fprintf(stderr, "Without value arguments, values are read from standard input.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  find1st -op gt -value 4 0 3 7 2 9\n")
		fmt.Fprintf(stderr, "  seq 0 100 | find1st -dtype int32 -op '>=' -value 42\n")
		fmt.Fprintf(stderr, "  find1st -list\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	if o.list {
		if err := printList(stdout); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exitValidation
		}
		return exitOK
	}

	if o.backend {
		fmt.Fprintln(stdout, find.Backend())
		return exitOK
	}

	value, err := parseScalar(o.value)
	if err != nil {
		fmt.Fprintf(stderr, "error: -value: %v\n", err)
		fs.Usage()
		return exitUsage
	}

	dt, err := find.ParseDType(o.dtype)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v (use -list to see available)\n", err)
		return exitValidation
	}

	fields := fs.Args()
	if len(fields) == 0 {
		fields, err = readFields(stdin)
		if err != nil {
			fmt.Fprintf(stderr, "error: reading input: %v\n", err)
			return exitValidation
		}
	}

	data, err := parseValues(dt, fields)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitValidation
	}

	opts := []find.Option{find.WithOffset(o.offset), find.WithStride(o.stride)}
	if o.n >= 0 {
		opts = append(opts, find.WithLen(o.n))
	}

	i, err := find.FirstIndexToken(find.Of(data, opts...), o.op, value)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exitValidation
	}

	fmt.Fprintln(stdout, i)
	return exitOK
}

func printList(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "DType\tSize [bytes]\n")
	fmt.Fprintf(tw, "-----\t------------\n")
	for _, dt := range find.DTypes() {
		fmt.Fprintf(tw, "%s\t%d\n", dt, dt.Size())
	}
	fmt.Fprintf(tw, "\nOp\tSymbol\tCode\n")
	fmt.Fprintf(tw, "--\t------\t----\n")
	for _, op := range find.Ops() {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", op, op.Symbol(), int(op))
	}
	return tw.Flush()
}

// parseScalar interprets the -value flag. Integers stay integers so that
// large values are compared exactly; the empty string is the truthy
// shorthand.
func parseScalar(s string) (any, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if i, err := strconv.ParseInt(s, 0, 64); err == nil {
		return i, nil
	}
	if u, err := strconv.ParseUint(s, 0, 64); err == nil {
		return u, nil
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return b, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%q is not a number or boolean", s)
	}
	return f, nil
}

func readFields(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var fields []string
	for sc.Scan() {
		fields = append(fields, sc.Text())
	}
	return fields, sc.Err()
}

// parseValues converts the textual elements into a slice of dt.
func parseValues(dt find.DType, fields []string) (any, error) {
	switch dt {
	case find.Bool:
		out := make([]bool, len(fields))
		for i, f := range fields {
			b, err := strconv.ParseBool(f)
			if err != nil {
				return nil, fieldError(i, f, dt, err)
			}
			out[i] = b
		}
		return out, nil
	case find.Int8:
		return parseInts[int8](dt, fields, 8)
	case find.Int16:
		return parseInts[int16](dt, fields, 16)
	case find.Int32:
		return parseInts[int32](dt, fields, 32)
	case find.Int64:
		return parseInts[int64](dt, fields, 64)
	case find.Int:
		return parseInts[int](dt, fields, strconv.IntSize)
	case find.Uint8:
		return parseUints[uint8](dt, fields, 8)
	case find.Uint16:
		return parseUints[uint16](dt, fields, 16)
	case find.Uint32:
		return parseUints[uint32](dt, fields, 32)
	case find.Uint64:
		return parseUints[uint64](dt, fields, 64)
	case find.Uint:
		return parseUints[uint](dt, fields, strconv.IntSize)
	case find.Float32:
		return parseFloats[float32](dt, fields, 32)
	case find.Float64:
		return parseFloats[float64](dt, fields, 64)
	}
	return nil, &find.UnsupportedTypeError{DType: dt, Name: dt.String()}
}

func parseInts[T ~int8 | ~int16 | ~int32 | ~int64 | ~int](dt find.DType, fields []string, bits int) ([]T, error) {
	out := make([]T, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 0, bits)
		if err != nil {
			return nil, fieldError(i, f, dt, err)
		}
		out[i] = T(v)
	}
	return out, nil
}

func parseUints[T ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint](dt find.DType, fields []string, bits int) ([]T, error) {
	out := make([]T, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseUint(f, 0, bits)
		if err != nil {
			return nil, fieldError(i, f, dt, err)
		}
		out[i] = T(v)
	}
	return out, nil
}

func parseFloats[T ~float32 | ~float64](dt find.DType, fields []string, bits int) ([]T, error) {
	out := make([]T, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, bits)
		if err != nil {
			return nil, fieldError(i, f, dt, err)
		}
		out[i] = T(v)
	}
	return out, nil
}

func fieldError(i int, field string, dt find.DType, err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = numErr.Err
	}
	return fmt.Errorf("element %d (%q) is not a valid %s: %w", i, field, dt, err)
}
