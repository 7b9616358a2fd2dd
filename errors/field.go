package errors

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Field wraps err with the name of the field it was found in. It returns
// nil if err is nil. A stack trace is attached to the innermost wrap only.
//
// Use Go naming for the field name, for example MinimumSupport. Nested
// fields and elements of collections are separated by dots, for example
// SubAssets.2.Owner. FieldPath builds such names.
func Field(fieldName string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	if len(args) > 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{
		parent: err,
		field:  fieldName,
		desc:   description,
	}
}

// FieldPath joins the elements of a nested field name. Indexes are
// printed in decimal.
func FieldPath(elems ...interface{}) string {
	parts := make([]string, len(elems))
	for i, e := range elems {
		parts[i] = fmt.Sprint(e)
	}
	return strings.Join(parts, ".")
}

// AppendField adds the field error to errorsOrNil. Nothing is added if
// fieldErrOrNil is nil.
func AppendField(errorsOrNil error, fieldName string, fieldErrOrNil error) error {
	return Append(errorsOrNil, Field(fieldName, fieldErrOrNil, ""))
}

type fieldError struct {
	parent error
	field  string
	desc   string
}

func (err *fieldError) Error() string {
	if err.desc == "" {
		return fmt.Sprintf("field %q: %s", err.field, err.parent)
	}
	return fmt.Sprintf("field %q: %s: %s", err.field, err.desc, err.parent)
}

// Cause implements the causer interface.
func (err *fieldError) Cause() error {
	return err.parent
}

// Field implements fielder interface.
func (err *fieldError) Field() string {
	return err.field
}

type fielder interface {
	// Field returns the field name that this error is created for.
	Field() string
}

// FieldErrors returns all errors in the tree of err that were created for
// the given field name. The search does not descend into a matching field
// error.
func FieldErrors(err error, fieldName string) []error {
	if isNilErr(err) {
		return nil
	}
	if f, ok := err.(fielder); ok && f.Field() == fieldName {
		return []error{err}
	}
	// Unpacker is a superset of causer, the unpacked errors are all the
	// children of this error.
	if u, ok := err.(unpacker); ok {
		var res []error
		for _, e := range u.Unpack() {
			res = append(res, FieldErrors(e, fieldName)...)
		}
		return res
	}
	if c, ok := err.(causer); ok {
		return FieldErrors(c.Cause(), fieldName)
	}
	return nil
}
