package ax

// Kind is the variant held by an attribute value.
type Kind int

const (
	KindUnknown Kind = iota
	KindElement
	KindString
	KindNumber
	KindBoolean
	KindBox
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	case KindBox:
		return "box"
	case KindArray:
		return "array"
	default:
		return "unknown"
	}
}

// Value is an attribute value returned by a query. Its variant is fixed when
// the value is received; the As* methods downcast it.
//
// A Value owns its reference. Values returned by the As* methods that carry a
// reference (Element, Box, array items) share or add ownership as documented
// on each method.
type Value struct {
	ref  *Ref
	kind Kind
}

func newValue(ref *Ref) Value {
	return Value{ref: ref, kind: ref.native.KindOf(ref.h)}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// Handle returns the underlying native object, for use as a query parameter.
func (v Value) Handle() Handle {
	if v.ref == nil {
		return 0
	}
	return v.ref.h
}

// Release drops the value's reference.
func (v Value) Release() {
	v.ref.Release()
}

func (v Value) mismatch(want Kind) error {
	return &TypeMismatchError{Want: want, Got: v.kind}
}

// AsElement downcasts v to an element. The element takes over v's reference:
// release one of them, not both.
func (v Value) AsElement() (*Element, error) {
	if v.kind != KindElement {
		return nil, v.mismatch(KindElement)
	}
	return &Element{ref: v.ref}, nil
}

// AsBox downcasts v to a boxed scalar. The box takes over v's reference.
func (v Value) AsBox() (*Box, error) {
	if v.kind != KindBox {
		return nil, v.mismatch(KindBox)
	}
	return &Box{ref: v.ref}, nil
}

// AsString downcasts v to a string. v keeps its reference.
func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", v.mismatch(KindString)
	}
	return v.ref.native.StringOf(v.ref.h), nil
}

// AsNumber downcasts v to a number. v keeps its reference.
func (v Value) AsNumber() (float64, error) {
	if v.kind != KindNumber {
		return 0, v.mismatch(KindNumber)
	}
	return v.ref.native.NumberOf(v.ref.h), nil
}

// AsBool downcasts v to a boolean. v keeps its reference.
func (v Value) AsBool() (bool, error) {
	if v.kind != KindBoolean {
		return false, v.mismatch(KindBoolean)
	}
	return v.ref.native.BoolOf(v.ref.h), nil
}

// AsArray downcasts v to an ordered sequence. Each item holds its own new
// reference and must be released independently of v; see ReleaseAll.
func (v Value) AsArray() ([]Value, error) {
	if v.kind != KindArray {
		return nil, v.mismatch(KindArray)
	}
	n := v.ref.native
	count := n.ArrayLen(v.ref.h)
	items := make([]Value, 0, count)
	for i := 0; i < count; i++ {
		items = append(items, newValue(retain(n, n.ArrayAt(v.ref.h, i))))
	}
	return items, nil
}

// ReleaseAll releases every value in vs.
func ReleaseAll(vs []Value) {
	for _, v := range vs {
		v.Release()
	}
}

// stringsOf reads an array of strings without retaining its items.
func stringsOf(ref *Ref) ([]string, error) {
	v := newValue(ref)
	if v.kind != KindArray {
		return nil, v.mismatch(KindArray)
	}
	n := ref.native
	count := n.ArrayLen(ref.h)
	names := make([]string, 0, count)
	for i := 0; i < count; i++ {
		item := n.ArrayAt(ref.h, i)
		if k := n.KindOf(item); k != KindString {
			return nil, &TypeMismatchError{Want: KindString, Got: k}
		}
		names = append(names, n.StringOf(item))
	}
	return names, nil
}
