package fallible

import (
	"reflect"
)

// Nothing is the uninhabited failure type. Its only value is the zero value,
// which always means success, so an operation declared with Nothing never fails.
type Nothing struct{}

func (Nothing) Error() string {
	return "fallible: nothing"
}

// Failed reports whether x carries a failure. For an interface X only a nil
// interface or a nil pointer inside it means success; a zero struct stored in
// the interface is a failure. For a concrete X the zero value means success.
func Failed[X error](x X) bool {
	if reflect.TypeFor[X]().Kind() == reflect.Interface {
		return !isNilRef(x)
	}
	return !IsNil(x)
}

func isNilRef(i any) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// IsNil reports whether i is absent: a nil interface, a nil reference or a
// zero value of a non-reference type.
func IsNil(i any) bool {
	if i == nil {
		return true
	}

	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return v.IsZero()
	}
}
