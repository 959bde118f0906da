package ax

import "fmt"

// Element is a node of the live accessibility tree. It owns one reference to
// the native AXUIElement; the object behind it may disappear at any time, in
// which case queries fail with ErrInvalidUIElement.
//
// An Element is not safe for concurrent use. Distinct elements may be queried
// from different goroutines.
type Element struct {
	ref *Ref
}

// SystemWide returns the system-wide root element. The caller owns it.
func SystemWide(n Native) *Element {
	return &Element{ref: adopt(n, n.CreateSystemWide())}
}

// Handle returns the underlying native object.
func (e *Element) Handle() Handle {
	return e.ref.h
}

// Release drops the element's reference. It is safe on a nil Element.
func (e *Element) Release() {
	if e == nil {
		return
	}
	e.ref.Release()
}

// PID returns the id of the process that owns the element.
func (e *Element) PID() (int, error) {
	pid, err := callGet(func(out *int32) Error {
		return e.ref.native.ElementPID(e.ref.h, out)
	})
	if err != nil {
		return 0, err
	}
	return int(pid), nil
}

// AttributeNames lists the attributes the element currently exposes, in the
// order the native API returns them.
func (e *Element) AttributeNames() ([]string, error) {
	n := e.ref.native
	ref, err := callOwned(n, func(out *Handle) Error {
		return n.CopyAttributeNames(e.ref.h, out)
	})
	if err != nil {
		return nil, err
	}
	defer ref.Release()
	return stringsOf(ref)
}

// AttributeValue fetches the value of an attribute. The caller owns the
// returned value.
func (e *Element) AttributeValue(attribute string) (Value, error) {
	n := e.ref.native
	ref, err := callOwned(n, func(out *Handle) Error {
		return n.CopyAttributeValue(e.ref.h, attribute, out)
	})
	if err != nil {
		return Value{}, err
	}
	return newValue(ref), nil
}

// ParameterizedAttributeNames lists the parameterized attributes the element
// supports, in native order.
func (e *Element) ParameterizedAttributeNames() ([]string, error) {
	n := e.ref.native
	ref, err := callOwned(n, func(out *Handle) Error {
		return n.CopyParameterizedAttributeNames(e.ref.h, out)
	})
	if err != nil {
		return nil, err
	}
	defer ref.Release()
	return stringsOf(ref)
}

// ParameterizedAttributeValue fetches an attribute whose value depends on
// parameter. The parameter's shape is validated by the native API, not here.
// The caller owns the returned value; parameter is not consumed.
func (e *Element) ParameterizedAttributeValue(attribute string, parameter Value) (Value, error) {
	n := e.ref.native
	ref, err := callOwned(n, func(out *Handle) Error {
		return n.CopyParameterizedAttributeValue(e.ref.h, attribute, parameter.Handle(), out)
	})
	if err != nil {
		return Value{}, err
	}
	return newValue(ref), nil
}

// StringAttribute fetches a string-valued attribute.
func (e *Element) StringAttribute(attribute string) (string, error) {
	v, err := e.AttributeValue(attribute)
	if err != nil {
		return "", err
	}
	defer v.Release()
	s, err := v.AsString()
	if err != nil {
		return "", fmt.Errorf("%s: %w", attribute, err)
	}
	return s, nil
}

// ElementAttribute fetches an attribute whose value is another element. The
// caller owns the returned element.
func (e *Element) ElementAttribute(attribute string) (*Element, error) {
	v, err := e.AttributeValue(attribute)
	if err != nil {
		return nil, err
	}
	el, err := v.AsElement()
	if err != nil {
		v.Release()
		return nil, fmt.Errorf("%s: %w", attribute, err)
	}
	return el, nil
}

// BoxAttribute fetches an attribute whose value is a boxed scalar. The caller
// owns the returned box.
func (e *Element) BoxAttribute(attribute string) (*Box, error) {
	v, err := e.AttributeValue(attribute)
	if err != nil {
		return nil, err
	}
	b, err := v.AsBox()
	if err != nil {
		v.Release()
		return nil, fmt.Errorf("%s: %w", attribute, err)
	}
	return b, nil
}
