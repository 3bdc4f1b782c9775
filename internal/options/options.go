// Package options applies functional options on top of a set of defaults.
package options

// Constructor returns the default value of an option set.
type Constructor[T any] func() T

// Callback mutates an option set.
type Callback[T any] func(*T)

// Apply builds the option set from defaults and applies callbacks in order.
// A nil constructor starts from the zero value; nil callbacks are skipped.
func Apply[T any](defaults Constructor[T], callbacks []Callback[T]) T {
	var opts T

	if defaults != nil {
		opts = defaults()
	}

	for _, cb := range callbacks {
		if cb != nil {
			cb(&opts)
		}
	}

	return opts
}
