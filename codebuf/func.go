package codebuf

import (
	"fmt"
	"reflect"
	"unsafe"
)

// Func returns a function of type T that executes code.
//
// code must stay mapped and executable for as long as the function is used.
func Func[T any](code []byte) (T, error) {
	var fn T
	if kind := reflect.TypeOf(&fn).Elem().Kind(); kind != reflect.Func {
		return fn, fmt.Errorf("not a function, kind: %v", kind)
	}
	if len(code) == 0 {
		return fn, ErrEmpty
	}

	// A func value points to a closure, and the first word of the closure
	// is the entry point. ref stands in for the closure.
	codeData := unsafe.SliceData(code)
	ref := &codeData
	fn = *(*T)(unsafe.Pointer(&ref))

	return fn, nil
}
