package rescue

import "reflect"

// IsNil reports whether i is nil, including a typed-nil pointer stored in an
// interface.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// GetErrors decomposes err into its component errors: a joined error yields
// its children, a single error yields a one-element slice, nil yields an
// empty slice.
func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
