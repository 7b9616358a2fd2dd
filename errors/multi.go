package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If given error implements unpacker interface, it is flattened. All
// contained errors are extracted and returned error is a flat collection of
// all errors.
func Append(errs ...error) error {
	var res multiErr
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if u, ok := e.(unpacker); ok {
			res = append(res, u.Unpack()...)
		} else {
			res = append(res, e)
		}
	}
	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

// multiErr is a collection of errors that is returned by the Append
// function. It is always flat and never contains less than two errors.
type multiErr []error

func (errs multiErr) Error() string {
	points := make([]string, len(errs))
	for i, err := range errs {
		points[i] = fmt.Sprintf("* %s", err)
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s\n",
		len(errs), strings.Join(points, "\n\t"))
}

// Unpack returns all the errors this collection holds.
func (errs multiErr) Unpack() []error {
	return errs
}

// ABCICode returns the code of the first error in the collection, which is
// consistent with the fail-fast approach of the handlers.
func (errs multiErr) ABCICode() uint32 {
	if len(errs) == 0 {
		return SuccessABCICode
	}
	return abciCode(errs[0])
}

var _ unpacker = multiErr(nil)
