package axtest

import (
	"unsafe"

	"github.com/mj1618/selection-lens/internal/ax"
)

var _ ax.Native = (*Fake)(nil)

func (f *Fake) IsProcessTrusted() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count("IsProcessTrusted")
	return f.Trusted
}

func (f *Fake) RequestTrust() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count("RequestTrust")
	f.Prompted = true
	return f.Trusted
}

func (f *Fake) CurrentPID() int {
	return f.PID
}

func (f *Fake) CreateSystemWide() ax.Handle {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count("CreateSystemWide")
	f.obj(f.root.h).refs++
	return f.root.h
}

func (f *Fake) Retain(h ax.Handle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.obj(h).refs++
}

func (f *Fake) Release(h ax.Handle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	o := f.obj(h)
	if o.refs == 0 {
		f.over = append(f.over, h)
		return
	}
	o.refs--
}

// copyOut hands out a new reference to n through out.
func (f *Fake) copyOut(n *Node, out *ax.Handle) ax.Error {
	f.obj(n.h).refs++
	*out = n.h
	return ax.Success
}

func (f *Fake) element(h ax.Handle) (*object, ax.Error) {
	o := f.obj(h)
	if o.kind != ax.KindElement {
		return nil, ax.ErrIllegalArgument
	}
	if o.invalid {
		return nil, ax.ErrInvalidUIElement
	}
	return o, ax.Success
}

func (f *Fake) ElementPID(h ax.Handle, out *int32) ax.Error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count("ElementPID")
	o, st := f.element(h)
	if st != ax.Success {
		return st
	}
	if o.pidErr != ax.Success {
		return o.pidErr
	}
	*out = o.pid
	return ax.Success
}

func (f *Fake) CopyAttributeNames(h ax.Handle, out *ax.Handle) ax.Error {
	f.mu.Lock()
	o, st := f.element(h)
	var names []string
	if st == ax.Success {
		names = append(names, o.names...)
	}
	f.count("CopyAttributeNames")
	f.mu.Unlock()
	if st != ax.Success {
		return st
	}
	return f.stringArrayOut(names, out)
}

func (f *Fake) CopyParameterizedAttributeNames(h ax.Handle, out *ax.Handle) ax.Error {
	f.mu.Lock()
	o, st := f.element(h)
	var names []string
	if st == ax.Success {
		names = append(names, o.pnames...)
	}
	f.count("CopyParameterizedAttributeNames")
	f.mu.Unlock()
	if st != ax.Success {
		return st
	}
	return f.stringArrayOut(names, out)
}

// stringArrayOut builds a fresh array of strings owned only by the caller.
func (f *Fake) stringArrayOut(names []string, out *ax.Handle) ax.Error {
	items := make([]*Node, len(names))
	for i, name := range names {
		items[i] = f.NewString(name)
	}
	arr := f.NewArray(items...)
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.copyOut(arr, out)
}

func (f *Fake) CopyAttributeValue(h ax.Handle, attribute string, out *ax.Handle) ax.Error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count("CopyAttributeValue")
	f.count("CopyAttributeValue:" + attribute)
	o, st := f.element(h)
	if st != ax.Success {
		return st
	}
	if err, ok := o.errs[attribute]; ok {
		return err
	}
	v, ok := o.attrs[attribute]
	if !ok {
		return ax.ErrAttributeUnsupported
	}
	if v == nil {
		return ax.ErrNoValue
	}
	return f.copyOut(v, out)
}

func (f *Fake) CopyParameterizedAttributeValue(h ax.Handle, attribute string, parameter ax.Handle, out *ax.Handle) ax.Error {
	f.mu.Lock()
	f.count("CopyParameterizedAttributeValue")
	f.count("CopyParameterizedAttributeValue:" + attribute)
	o, st := f.element(h)
	var fn ParamFunc
	if st == ax.Success {
		fn = o.params[attribute]
	}
	if parameter != 0 {
		f.obj(parameter)
	}
	f.mu.Unlock()
	if st != ax.Success {
		return st
	}
	if fn == nil {
		return ax.ErrParameterizedAttributeUnsupported
	}
	// fn runs unlocked so it may inspect or create nodes.
	v, st := fn(&Node{f: f, h: parameter})
	if st != ax.Success {
		return st
	}
	if v == nil {
		return ax.ErrNoValue
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.copyOut(v, out)
}

func (f *Fake) KindOf(h ax.Handle) ax.Kind {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.obj(h).kind
}

func (f *Fake) StringOf(h ax.Handle) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.obj(h).str
}

func (f *Fake) NumberOf(h ax.Handle) float64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.obj(h).num
}

func (f *Fake) BoolOf(h ax.Handle) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.obj(h).flag
}

func (f *Fake) ArrayLen(h ax.Handle) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.obj(h).items)
}

func (f *Fake) ArrayAt(h ax.Handle, i int) ax.Handle {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.obj(h).items[i]
}

func (f *Fake) BoxType(h ax.Handle) ax.ValueType {
	f.mu.Lock()
	defer f.mu.Unlock()
	o := f.obj(h)
	if o.kind != ax.KindBox {
		return ax.ValueTypeIllegal
	}
	return o.boxType
}

func (f *Fake) BoxValue(h ax.Handle, t ax.ValueType, out unsafe.Pointer) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	o := f.obj(h)
	if o.kind != ax.KindBox || o.boxType != t || o.boxFails {
		return false
	}
	o.valueCalls++
	switch t {
	case ax.ValueTypePoint:
		v, ok := o.payload.(ax.Point)
		if !ok {
			return false
		}
		*(*ax.Point)(out) = v
	case ax.ValueTypeSize:
		v, ok := o.payload.(ax.Size)
		if !ok {
			return false
		}
		*(*ax.Size)(out) = v
	case ax.ValueTypeRect:
		v, ok := o.payload.(ax.Rect)
		if !ok {
			return false
		}
		*(*ax.Rect)(out) = v
	case ax.ValueTypeRange:
		v, ok := o.payload.(ax.Range)
		if !ok {
			return false
		}
		*(*ax.Range)(out) = v
	case ax.ValueTypeError:
		v, ok := o.payload.(ax.Error)
		if !ok {
			return false
		}
		*(*ax.Error)(out) = v
	default:
		return false
	}
	return true
}

func (f *Fake) CreateBox(t ax.ValueType, in unsafe.Pointer) ax.Handle {
	var payload any
	switch t {
	case ax.ValueTypePoint:
		payload = *(*ax.Point)(in)
	case ax.ValueTypeSize:
		payload = *(*ax.Size)(in)
	case ax.ValueTypeRect:
		payload = *(*ax.Rect)(in)
	case ax.ValueTypeRange:
		payload = *(*ax.Range)(in)
	case ax.ValueTypeError:
		payload = *(*ax.Error)(in)
	default:
		return 0
	}
	n := f.NewBox(t, payload)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.count("CreateBox")
	f.obj(n.h).refs++
	return n.h
}
