//go:build js && wasm

package main

import (
	"math"
	"strconv"
	"syscall/js"

	"github.com/cwbudde/algo-find1st/find"
)

var funcs []js.Func

// typedArrayTypes maps typed array constructor names to element types.
var typedArrayTypes = map[string]find.DType{
	"Int8Array":         find.Int8,
	"Uint8Array":        find.Uint8,
	"Uint8ClampedArray": find.Uint8,
	"Int16Array":        find.Int16,
	"Uint16Array":       find.Uint16,
	"Int32Array":        find.Int32,
	"Uint32Array":       find.Uint32,
	"BigInt64Array":     find.Int64,
	"BigUint64Array":    find.Uint64,
	"Float32Array":      find.Float32,
	"Float64Array":      find.Float64,
}

func main() {
	api := js.Global().Get("Object").New()

	// firstIndex(data, op, value, {offset, stride, length}) returns the
	// index of the first match, -1, or an error message.
	api.Set("firstIndex", export(func(args []js.Value) any {
		if len(args) < 2 {
			return "firstIndex: want (data, op[, value[, view]])"
		}

		var value js.Value
		if len(args) > 2 {
			value = args[2]
		}
		v, err := scalar(value)
		if err != nil {
			return err.Error()
		}

		var opts []find.Option
		if len(args) > 3 {
			opts = viewOptions(args[3])
		}

		a, err := array(args[0], opts)
		if err != nil {
			return err.Error()
		}

		i, err := find.FirstIndexToken(a, args[1].String(), v)
		if err != nil {
			return err.Error()
		}
		return i
	}))

	api.Set("backend", export(func(args []js.Value) any {
		return find.Backend()
	}))

	api.Set("ops", export(func(args []js.Value) any {
		ops := find.Ops()
		arr := js.Global().Get("Array").New(len(ops))
		for i, op := range ops {
			arr.SetIndex(i, op.String())
		}
		return arr
	}))

	js.Global().Set("find1st", api)

	select {}
}

// array views a typed array through its bytes; plain arrays are read as
// float64.
func array(data js.Value, opts []find.Option) (find.Array, error) {
	name := data.Get("constructor").Get("name").String()
	dt, ok := typedArrayTypes[name]
	if !ok {
		if !js.Global().Get("Array").Call("isArray", data).Bool() {
			return find.Array{}, &find.UnsupportedTypeError{Name: name}
		}
		out := make([]float64, data.Length())
		for i := range out {
			out[i] = data.Index(i).Float()
		}
		return find.Of(out, opts...), nil
	}

	view := js.Global().Get("Uint8Array").New(data.Get("buffer"), data.Get("byteOffset"), data.Get("byteLength"))
	raw := make([]byte, view.Length())
	js.CopyBytesToGo(raw, view)

	return find.FromBytes(dt, raw, opts...)
}

func viewOptions(view js.Value) []find.Option {
	if view.Type() != js.TypeObject {
		return nil
	}

	var opts []find.Option
	if v := view.Get("offset"); v.Type() == js.TypeNumber {
		opts = append(opts, find.WithOffset(v.Int()))
	}
	if v := view.Get("stride"); v.Type() == js.TypeNumber {
		opts = append(opts, find.WithStride(v.Int()))
	}
	if v := view.Get("length"); v.Type() == js.TypeNumber {
		opts = append(opts, find.WithLen(v.Int()))
	}
	return opts
}

// scalar converts the comparison value. Integral numbers stay integers so
// that integer arrays compare exactly; strings are parsed, which is how
// 64-bit values beyond 2^53 are passed.
func scalar(v js.Value) (any, error) {
	switch v.Type() {
	case js.TypeUndefined, js.TypeNull:
		return nil, nil
	case js.TypeBoolean:
		return v.Bool(), nil
	case js.TypeNumber:
		f := v.Float()
		if f == math.Trunc(f) && math.Abs(f) <= 1<<53 {
			return int64(f), nil
		}
		return f, nil
	case js.TypeString:
		s := v.String()
		if i, err := strconv.ParseInt(s, 0, 64); err == nil {
			return i, nil
		}
		if u, err := strconv.ParseUint(s, 0, 64); err == nil {
			return u, nil
		}
		return strconv.ParseFloat(s, 64)
	}
	return nil, &find.ValueError{Value: v.Type().String(), Reason: "not a number, boolean or numeric string"}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
