package either

import (
	"encoding/binary"
	"fmt"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Equal reports whether a and b hold the same variant with equal values.
// It is the same as a == b and exists for use as a func value.
func Equal[L, R comparable](a, b Either[L, R]) bool {
	return a == b
}

// Equals is like Equal but accepts payloads that are not comparable,
// such as slices and maps, using deep equality on the held value.
func (e Either[L, R]) Equals(other Either[L, R]) bool {
	if e.isRight != other.isRight {
		return false
	}
	if e.isRight {
		return reflect.DeepEqual(e.right, other.right)
	}
	return reflect.DeepEqual(e.left, other.left)
}

const (
	leftTag  byte = 'L'
	rightTag byte = 'R'
	nilTag   byte = 0
)

// Hash returns a 64-bit digest of e consistent with Equal.
// The variant is folded into the digest so Left(v) and Right(v) differ.
// Pointers and channels hash by address, floats hash -0 as 0.
func Hash[L, R comparable](e Either[L, R]) uint64 {
	d := xxhash.New()
	if e.isRight {
		_, _ = d.Write([]byte{rightTag})
		writeValue(d, reflect.ValueOf(&e.right).Elem())
	} else {
		_, _ = d.Write([]byte{leftTag})
		writeValue(d, reflect.ValueOf(&e.left).Elem())
	}
	return d.Sum64()
}

func writeValue(d *xxhash.Digest, v reflect.Value) {
	var buf [8]byte
	writeUint := func(u uint64) {
		binary.LittleEndian.PutUint64(buf[:], u)
		_, _ = d.Write(buf[:])
	}
	writeFloat := func(f float64) {
		if f == 0 {
			f = 0
		}
		writeUint(math.Float64bits(f))
	}
	switch v.Kind() {
	case reflect.Bool:
		if v.Bool() {
			writeUint(1)
		} else {
			writeUint(0)
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		writeUint(uint64(v.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32,
		reflect.Uint64, reflect.Uintptr:
		writeUint(v.Uint())
	case reflect.Float32, reflect.Float64:
		writeFloat(v.Float())
	case reflect.Complex64, reflect.Complex128:
		c := v.Complex()
		writeFloat(real(c))
		writeFloat(imag(c))
	case reflect.String:
		writeUint(uint64(v.Len()))
		_, _ = d.WriteString(v.String())
	case reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		writeUint(uint64(v.Pointer()))
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			writeValue(d, v.Index(i))
		}
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			writeValue(d, v.Field(i))
		}
	case reflect.Interface:
		if v.IsNil() {
			_, _ = d.Write([]byte{nilTag})
			return
		}
		elem := v.Elem()
		_, _ = d.WriteString(elem.Type().String())
		writeValue(d, elem)
	default:
		// not comparable, == would panic on these
		_, _ = fmt.Fprintf(d, "%v", v.Type())
	}
}
