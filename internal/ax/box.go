package ax

import (
	"fmt"
	"unsafe"
)

// ValueType tags the payload of a boxed scalar (AXValueType).
type ValueType int32

const (
	ValueTypeIllegal ValueType = 0
	ValueTypePoint   ValueType = 1
	ValueTypeSize    ValueType = 2
	ValueTypeRect    ValueType = 3
	ValueTypeRange   ValueType = 4
	ValueTypeError   ValueType = 5
)

func (t ValueType) String() string {
	switch t {
	case ValueTypePoint:
		return "point"
	case ValueTypeSize:
		return "size"
	case ValueTypeRect:
		return "rect"
	case ValueTypeRange:
		return "range"
	case ValueTypeError:
		return "error"
	default:
		return "illegal"
	}
}

// Point is a screen position (CGPoint).
type Point struct {
	X, Y float64
}

// Size is a width and height (CGSize).
type Size struct {
	Width, Height float64
}

// Rect is a rectangle in screen coordinates, origin top-left (CGRect).
type Rect struct {
	Origin Point
	Size   Size
}

// Range is a contiguous span of character indices (CFRange).
type Range struct {
	Location, Length int
}

// Scalar is the closed set of payloads a Box can carry.
type Scalar interface {
	Point | Size | Rect | Range | Error
}

// Box is a boxed scalar (AXValueRef). Its payload is only ever read under
// the tag it was created with.
type Box struct {
	ref *Ref
}

// Type returns the box's tag.
func (b *Box) Type() ValueType {
	return b.ref.native.BoxType(b.ref.h)
}

// Value returns b as an attribute value, for use as a query parameter. The
// returned value shares b's reference.
func (b *Box) Value() Value {
	return Value{ref: b.ref, kind: KindBox}
}

// Release drops the box's reference.
func (b *Box) Release() {
	if b == nil {
		return
	}
	b.ref.Release()
}

func valueTypeOf[T Scalar]() ValueType {
	var v T
	switch any(v).(type) {
	case Point:
		return ValueTypePoint
	case Size:
		return ValueTypeSize
	case Rect:
		return ValueTypeRect
	case Range:
		return ValueTypeRange
	case Error:
		return ValueTypeError
	}
	return ValueTypeIllegal
}

// Get extracts the payload of b as T. It reports false when b is tagged with
// a different type or the native copy fails; absence of a convertible value
// is an expected outcome, not an error.
func Get[T Scalar](b *Box) (T, bool) {
	var zero T
	if b == nil {
		return zero, false
	}
	t := valueTypeOf[T]()
	if b.Type() != t {
		return zero, false
	}
	v, err := callGet(func(out *T) Error {
		if !b.ref.native.BoxValue(b.ref.h, t, unsafe.Pointer(out)) {
			return ErrFailure
		}
		return Success
	})
	if err != nil {
		return zero, false
	}
	return v, true
}

// NewBox boxes v. The caller owns the returned box.
func NewBox[T Scalar](n Native, v T) (*Box, error) {
	t := valueTypeOf[T]()
	ref, err := callOwned(n, func(out *Handle) Error {
		*out = n.CreateBox(t, unsafe.Pointer(&v))
		if *out == 0 {
			return ErrFailure
		}
		return Success
	})
	if err != nil {
		return nil, fmt.Errorf("create %s box: %w", t, err)
	}
	return &Box{ref: ref}, nil
}
