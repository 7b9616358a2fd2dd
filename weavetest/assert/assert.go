// Package assert is a tiny set of test helpers used across the weave
// packages. Every helper stops the test on the first failure.
package assert

import (
	"reflect"
	"testing"

	"github.com/invarch/weave/errors"
)

// Tester is the part of testing.TB the assertions rely on.
type Tester interface {
	Helper()
	Fatal(...interface{})
	Fatalf(string, ...interface{})
}

// Nil fails the test unless value is nil. Typed nil pointers, maps,
// slices and the like are accepted as nil.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if isNil(value) {
		return
	}
	// %+v prints the stack trace of the weave errors.
	t.Fatalf("want a nil value, got %+v", value)
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}

// Equal fails the test unless want and got are deeply equal.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if reflect.DeepEqual(want, got) {
		return
	}
	t.Fatalf("values not equal \nwant %T %v\n got %T %v", want, want, got, got)
}

// Panics fails the test if fn returns without panicking.
func Panics(t Tester, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Fatal("panic expected")
		}
	}()
	fn()
}

// FieldError ensures that err carries exactly one error for the field
// fieldName and that it is of the want type. Pass a nil want to ensure
// that the field has no error at all.
func FieldError(t testing.TB, err error, fieldName string, want *errors.Error) {
	t.Helper()

	errs := errors.FieldErrors(err, fieldName)
	if want == nil {
		if len(errs) != 0 {
			logErrors(t, errs)
			t.Fatalf("expected no error for %q, got %d", fieldName, len(errs))
		}
		return
	}

	if len(errs) == 0 {
		t.Fatalf("no error found for %q", fieldName)
	}
	if len(errs) > 1 {
		logErrors(t, errs)
		t.Errorf("want one error for %q, got %d", fieldName, len(errs))
	}
	for _, e := range errs {
		if want.Is(e) {
			return
		}
	}
	logErrors(t, errs)
	t.Fatalf("%q error not found for %q", want, fieldName)
}

func logErrors(t testing.TB, errs []error) {
	t.Helper()
	for i, e := range errs {
		t.Logf("\terror %d: %q", i+1, e)
	}
}

// IsErr fails the test unless got is want or, when want can compare
// itself, want.Is(got) holds.
func IsErr(t testing.TB, want, got error) {
	t.Helper()

	if want == got {
		return
	}
	if w, ok := want.(interface{ Is(error) bool }); ok && w.Is(got) {
		return
	}
	t.Fatalf("want %q, got %+v", want, got)
}
