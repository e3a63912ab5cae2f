// Package format renders values in HTCondor submit-description syntax and
// splits command strings into arguments.
package format

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/Justype/condorkit/internal/errdefs"
)

// ToAttributeText renders value the way the submit-description format expects it.
//
// Slices and arrays become their elements joined by ", " (nested slices are
// flattened the same way); anything else uses its fmt.Sprint form. []byte is
// treated as text. When quoted is set the whole result is wrapped in double
// quotes. Nil values, including nil elements, are rejected with a ValueError.
//
//	ToAttributeText([]int{1, 2, 3}, false) // 1, 2, 3
//	ToAttributeText("x", true)             // "x"
func ToAttributeText(value any, quoted bool) (string, error) {
	text, err := render(value)
	if err != nil {
		return "", err
	}
	if quoted {
		return `"` + text + `"`, nil
	}
	return text, nil
}

func render(value any) (string, error) {
	if isNil(value) {
		return "", errdefs.NewValueError("", "input must not be nil")
	}

	if b, ok := value.([]byte); ok {
		return string(b), nil
	}

	// Sequences render element-wise even when the type has its own String method.
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		switch v := value.(type) {
		case string:
			return v, nil
		case fmt.Stringer:
			return v.String(), nil
		}
		return fmt.Sprint(value), nil
	}

	parts := make([]string, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		item, err := render(rv.Index(i).Interface())
		if err != nil {
			return "", err
		}
		parts = append(parts, item)
	}
	return strings.Join(parts, ", "), nil
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
