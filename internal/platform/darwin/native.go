//go:build darwin && cgo

package darwin

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation -framework Foundation
#include "ax_bridge.h"
#include <stdlib.h>
*/
import "C"
import (
	"os"
	"unsafe"

	"github.com/mj1618/selection-lens/internal/ax"
)

// Native implements ax.Native over ApplicationServices and CoreFoundation.
// Handles are CFTypeRefs carried as integers; they never point into Go memory.
type Native struct{}

var _ ax.Native = (*Native)(nil)

// NewNative creates the macOS accessibility backend.
func NewNative() *Native {
	return &Native{}
}

func ref(h ax.Handle) C.uintptr_t {
	return C.uintptr_t(h)
}

func (*Native) CurrentPID() int {
	return os.Getpid()
}

func (*Native) CreateSystemWide() ax.Handle {
	return ax.Handle(C.axb_system_wide())
}

func (*Native) Retain(h ax.Handle) {
	C.axb_retain(ref(h))
}

func (*Native) Release(h ax.Handle) {
	C.axb_release(ref(h))
}

func (*Native) ElementPID(h ax.Handle, out *int32) ax.Error {
	var pid C.pid_t
	st := ax.Error(C.axb_pid(ref(h), &pid))
	if st == ax.Success {
		*out = int32(pid)
	}
	return st
}

func (*Native) CopyAttributeNames(h ax.Handle, out *ax.Handle) ax.Error {
	var raw C.uintptr_t
	st := ax.Error(C.axb_copy_attribute_names(ref(h), &raw))
	*out = ax.Handle(raw)
	return st
}

func (*Native) CopyAttributeValue(h ax.Handle, attribute string, out *ax.Handle) ax.Error {
	cAttribute := C.CString(attribute)
	defer C.free(unsafe.Pointer(cAttribute))

	var raw C.uintptr_t
	st := ax.Error(C.axb_copy_attribute_value(ref(h), cAttribute, &raw))
	*out = ax.Handle(raw)
	return st
}

func (*Native) CopyParameterizedAttributeNames(h ax.Handle, out *ax.Handle) ax.Error {
	var raw C.uintptr_t
	st := ax.Error(C.axb_copy_parameterized_attribute_names(ref(h), &raw))
	*out = ax.Handle(raw)
	return st
}

func (*Native) CopyParameterizedAttributeValue(h ax.Handle, attribute string, parameter ax.Handle, out *ax.Handle) ax.Error {
	cAttribute := C.CString(attribute)
	defer C.free(unsafe.Pointer(cAttribute))

	var raw C.uintptr_t
	st := ax.Error(C.axb_copy_parameterized_attribute_value(ref(h), cAttribute, ref(parameter), &raw))
	*out = ax.Handle(raw)
	return st
}

func (*Native) KindOf(h ax.Handle) ax.Kind {
	switch C.axb_kind(ref(h)) {
	case C.AXB_KIND_ELEMENT:
		return ax.KindElement
	case C.AXB_KIND_STRING:
		return ax.KindString
	case C.AXB_KIND_NUMBER:
		return ax.KindNumber
	case C.AXB_KIND_BOOLEAN:
		return ax.KindBoolean
	case C.AXB_KIND_VALUE:
		return ax.KindBox
	case C.AXB_KIND_ARRAY:
		return ax.KindArray
	default:
		return ax.KindUnknown
	}
}

func (*Native) StringOf(h ax.Handle) string {
	cs := C.axb_string_copy_utf8(ref(h))
	if cs == nil {
		return ""
	}
	defer C.free(unsafe.Pointer(cs))
	return C.GoString(cs)
}

func (*Native) NumberOf(h ax.Handle) float64 {
	return float64(C.axb_number_double(ref(h)))
}

func (*Native) BoolOf(h ax.Handle) bool {
	return C.axb_bool(ref(h)) != 0
}

func (*Native) ArrayLen(h ax.Handle) int {
	return int(C.axb_array_len(ref(h)))
}

func (*Native) ArrayAt(h ax.Handle, i int) ax.Handle {
	return ax.Handle(C.axb_array_at(ref(h), C.long(i)))
}

func (*Native) BoxType(h ax.Handle) ax.ValueType {
	return ax.ValueType(C.axb_value_type(ref(h)))
}

func (*Native) BoxValue(h ax.Handle, t ax.ValueType, out unsafe.Pointer) bool {
	return C.axb_value_get(ref(h), C.int(t), out) != 0
}

func (*Native) CreateBox(t ax.ValueType, in unsafe.Pointer) ax.Handle {
	return ax.Handle(C.axb_value_create(C.int(t), in))
}
