// Package axtest provides an in-memory ax.Native for tests.
//
// The fake keeps every object it creates alive for the lifetime of the Fake
// and counts the references it hands out, so tests can assert that code
// under test releases exactly what it acquires.
package axtest

import (
	"fmt"
	"sort"
	"sync"

	"github.com/mj1618/selection-lens/internal/ax"
)

// ParamFunc computes a parameterized attribute from its parameter.
type ParamFunc func(param *Node) (*Node, ax.Error)

type object struct {
	kind ax.Kind

	str   string
	num   float64
	flag  bool
	items []ax.Handle

	boxType    ax.ValueType
	payload    any
	boxFails   bool
	valueCalls int

	pid     int32
	pidErr  ax.Error
	invalid bool
	names   []string
	attrs   map[string]*Node
	errs    map[string]ax.Error
	pnames  []string
	params  map[string]ParamFunc

	refs int
}

// Fake is an in-memory accessibility tree.
type Fake struct {
	mu      sync.Mutex
	next    ax.Handle
	objects map[ax.Handle]*object
	over    []ax.Handle
	calls   map[string]int

	// Trusted is returned by IsProcessTrusted and RequestTrust.
	Trusted bool
	// Prompted records whether RequestTrust was called.
	Prompted bool
	// PID is returned by CurrentPID.
	PID int

	root *Node
}

// New returns a trusted Fake with an empty system-wide element.
func New() *Fake {
	f := &Fake{
		next:    0x1000,
		objects: make(map[ax.Handle]*object),
		calls:   make(map[string]int),
		Trusted: true,
		PID:     4242,
	}
	f.root = f.NewElement(0)
	return f
}

// Node is a handle to an object in the fake tree, used to script it.
type Node struct {
	f *Fake
	h ax.Handle
}

// Handle returns the native handle of n.
func (n *Node) Handle() ax.Handle {
	return n.h
}

func (f *Fake) add(o *object) *Node {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next += 0x10
	f.objects[f.next] = o
	return &Node{f: f, h: f.next}
}

// Root returns the system-wide element.
func (f *Fake) Root() *Node {
	return f.root
}

// NewElement creates an element owned by pid.
func (f *Fake) NewElement(pid int) *Node {
	return f.add(&object{
		kind:   ax.KindElement,
		pid:    int32(pid),
		attrs:  make(map[string]*Node),
		errs:   make(map[string]ax.Error),
		params: make(map[string]ParamFunc),
	})
}

// NewString creates a string object.
func (f *Fake) NewString(s string) *Node {
	return f.add(&object{kind: ax.KindString, str: s})
}

// NewNumber creates a number object.
func (f *Fake) NewNumber(v float64) *Node {
	return f.add(&object{kind: ax.KindNumber, num: v})
}

// NewBool creates a boolean object.
func (f *Fake) NewBool(v bool) *Node {
	return f.add(&object{kind: ax.KindBoolean, flag: v})
}

// NewArray creates an array of the given objects.
func (f *Fake) NewArray(items ...*Node) *Node {
	hs := make([]ax.Handle, len(items))
	for i, it := range items {
		hs[i] = it.h
	}
	return f.add(&object{kind: ax.KindArray, items: hs})
}

// NewBox creates a boxed scalar with the given tag and payload. The payload
// must be the Go type matching t.
func (f *Fake) NewBox(t ax.ValueType, payload any) *Node {
	return f.add(&object{kind: ax.KindBox, boxType: t, payload: payload})
}

// NewOpaque creates an object of a type the bridge does not recognize.
func (f *Fake) NewOpaque() *Node {
	return f.add(&object{kind: ax.KindUnknown})
}

func (f *Fake) obj(h ax.Handle) *object {
	o, ok := f.objects[h]
	if !ok {
		panic(fmt.Sprintf("axtest: unknown handle %#x", h))
	}
	return o
}

// Set makes attribute return v. Its name is appended to the attribute list
// the first time it is set.
func (n *Node) Set(attribute string, v *Node) *Node {
	n.f.mu.Lock()
	defer n.f.mu.Unlock()
	o := n.f.obj(n.h)
	if _, ok := o.attrs[attribute]; !ok {
		o.names = append(o.names, attribute)
	}
	o.attrs[attribute] = v
	delete(o.errs, attribute)
	return n
}

// Fail makes attribute fail with err.
func (n *Node) Fail(attribute string, err ax.Error) *Node {
	n.f.mu.Lock()
	defer n.f.mu.Unlock()
	o := n.f.obj(n.h)
	o.errs[attribute] = err
	return n
}

// SetParam makes the parameterized attribute computed by fn.
func (n *Node) SetParam(attribute string, fn ParamFunc) *Node {
	n.f.mu.Lock()
	defer n.f.mu.Unlock()
	o := n.f.obj(n.h)
	if _, ok := o.params[attribute]; !ok {
		o.pnames = append(o.pnames, attribute)
	}
	o.params[attribute] = fn
	return n
}

// FailPID makes PID queries on n fail with err.
func (n *Node) FailPID(err ax.Error) *Node {
	n.f.mu.Lock()
	defer n.f.mu.Unlock()
	n.f.obj(n.h).pidErr = err
	return n
}

// Invalidate marks n as destroyed: every query on it fails with
// ax.ErrInvalidUIElement.
func (n *Node) Invalidate() *Node {
	n.f.mu.Lock()
	defer n.f.mu.Unlock()
	n.f.obj(n.h).invalid = true
	return n
}

// FailExtraction makes BoxValue on n report failure even for a matching tag.
func (n *Node) FailExtraction() *Node {
	n.f.mu.Lock()
	defer n.f.mu.Unlock()
	n.f.obj(n.h).boxFails = true
	return n
}

// Payload returns the payload of a box node.
func (n *Node) Payload() any {
	n.f.mu.Lock()
	defer n.f.mu.Unlock()
	return n.f.obj(n.h).payload
}

// ValueCalls returns how many times BoxValue copied n's payload.
func (n *Node) ValueCalls() int {
	n.f.mu.Lock()
	defer n.f.mu.Unlock()
	return n.f.obj(n.h).valueCalls
}

// Refs returns the number of outstanding references handed out for n.
func (n *Node) Refs() int {
	n.f.mu.Lock()
	defer n.f.mu.Unlock()
	return n.f.obj(n.h).refs
}

// Outstanding returns the total number of references handed out and not yet
// released, across all objects.
func (f *Fake) Outstanding() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	total := 0
	for _, o := range f.objects {
		total += o.refs
	}
	return total
}

// Leaks lists the handles that still have outstanding references.
func (f *Fake) Leaks() []ax.Handle {
	f.mu.Lock()
	defer f.mu.Unlock()
	var hs []ax.Handle
	for h, o := range f.objects {
		if o.refs > 0 {
			hs = append(hs, h)
		}
	}
	sort.Slice(hs, func(i, j int) bool { return hs[i] < hs[j] })
	return hs
}

// OverReleased lists handles released more often than they were acquired.
func (f *Fake) OverReleased() []ax.Handle {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]ax.Handle(nil), f.over...)
}

// Calls returns how many times the named Native method was invoked.
func (f *Fake) Calls(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[method]
}

func (f *Fake) count(method string) {
	f.calls[method]++
}
