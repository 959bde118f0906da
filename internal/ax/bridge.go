package ax

import "sync"

// Ref uniquely owns one retained native reference. Release gives it back
// exactly once, however many times it is called.
type Ref struct {
	native Native
	h      Handle
	once   sync.Once
}

// Handle returns the referenced object. It stays valid until Release.
func (r *Ref) Handle() Handle {
	return r.h
}

// Release drops the reference. It is safe to call on a nil Ref and safe to
// call more than once.
func (r *Ref) Release() {
	if r == nil {
		return
	}
	r.once.Do(func() {
		r.native.Release(r.h)
	})
}

// adopt takes ownership of a reference the caller already holds at +1.
func adopt(n Native, h Handle) *Ref {
	return &Ref{native: n, h: h}
}

// retain takes a new reference to an object obtained under the Get rule.
func retain(n Native, h Handle) *Ref {
	n.Retain(h)
	return adopt(n, h)
}

// callGet runs a value-out native call. The output storage is only returned
// when the call reports Success; on failure the zero value is returned along
// with the status.
func callGet[T any](fn func(out *T) Error) (T, error) {
	var out T
	if err := fn(&out).Result(); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// callOwned runs an owned-object-out native call following the Create/Copy
// rule. On Success the written reference is adopted into a Ref; on failure
// nothing is adopted and nothing is released.
func callOwned(n Native, fn func(out *Handle) Error) (*Ref, error) {
	var out Handle
	if err := fn(&out).Result(); err != nil {
		return nil, err
	}
	if out == 0 {
		return nil, ErrNoValue
	}
	return adopt(n, out), nil
}
