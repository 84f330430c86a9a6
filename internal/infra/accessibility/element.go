package accessibility

/*
#cgo CFLAGS: -x objective-c
#include "../bridge/accessibility.h"
#include <stdlib.h>
*/
import "C"

import (
	"runtime"
	"unsafe"

	"github.com/saucesteals/silk/internal/domain/element"
	derrors "github.com/saucesteals/silk/internal/errors"
)

// uiElement wraps one retained AXUIElementRef. The wrapper shares ownership
// with the OS; a finalizer releases the reference when the last Element
// holding it is collected.
type uiElement struct {
	ref C.AXUIElementRef
}

// wrapElement takes ownership of a retained ref. Nil-safe.
func wrapElement(ref C.AXUIElementRef) *uiElement {
	if ref == nil {
		return nil
	}

	elem := &uiElement{ref: ref}
	runtime.SetFinalizer(elem, (*uiElement).release)

	return elem
}

func (e *uiElement) release() {
	if e.ref != nil {
		C.axReleaseElement(e.ref)
		e.ref = nil
	}
}

// Role implements element.UIElement. A node whose role is unreadable is
// unusable and gets dropped from traversal.
func (e *uiElement) Role() (string, error) {
	value, ok := e.StringAttribute(element.AttrRole)
	if !ok || value == "" {
		return "", derrors.Newf(derrors.CodeReadFailed, "required attribute %s unreadable", element.AttrRole)
	}

	return value, nil
}

// StringAttribute implements element.UIElement.
func (e *uiElement) StringAttribute(name string) (string, bool) {
	if e.ref == nil {
		return "", false
	}

	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName)) //nolint:nlreturn

	cValue := C.axCopyStringAttribute(e.ref, cName)
	if cValue == nil {
		return "", false
	}
	defer C.silkFreeString(cValue)

	return C.GoString(cValue), true
}

// ListAttribute implements element.UIElement.
func (e *uiElement) ListAttribute(name string) ([]string, bool) {
	if e.ref == nil {
		return nil, false
	}

	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName)) //nolint:nlreturn

	var count C.int
	cValues := C.axCopyStringListAttribute(e.ref, cName, &count)
	if cValues == nil || count == 0 {
		return nil, false
	}
	defer C.silkFreeStringArray(cValues, count)

	countInt := int(count)
	valueSlice := (*[1 << 20]*C.char)(unsafe.Pointer(cValues))[:countInt:countInt]

	values := make([]string, countInt)
	for i := range values {
		values[i] = C.GoString(valueSlice[i])
	}

	return values, true
}

// NumberAttribute implements element.UIElement.
func (e *uiElement) NumberAttribute(name string) (float64, bool) {
	if e.ref == nil {
		return 0, false
	}

	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName)) //nolint:nlreturn

	var value C.double
	if C.axGetNumberAttribute(e.ref, cName, &value) == 0 {
		return 0, false
	}

	return float64(value), true
}

// PointAttribute implements element.UIElement.
func (e *uiElement) PointAttribute(name string) (element.Point, bool) {
	if e.ref == nil {
		return element.Point{}, false
	}

	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName)) //nolint:nlreturn

	var x, y C.double
	if C.axGetPointAttribute(e.ref, cName, &x, &y) == 0 {
		return element.Point{}, false
	}

	return element.Point{X: int(x), Y: int(y)}, true
}

// SizeAttribute implements element.UIElement.
func (e *uiElement) SizeAttribute(name string) (element.Size, bool) {
	if e.ref == nil {
		return element.Size{}, false
	}

	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName)) //nolint:nlreturn

	var width, height C.double
	if C.axGetSizeAttribute(e.ref, cName, &width, &height) == 0 {
		return element.Size{}, false
	}

	return element.Size{Width: int(width), Height: int(height)}, true
}

// Children implements element.UIElement.
func (e *uiElement) Children() []element.UIElement {
	if e.ref == nil {
		return nil
	}

	var count C.int
	rawChildren := C.axCopyChildren(e.ref, &count)
	if rawChildren == nil || count == 0 {
		return nil
	}
	defer C.free(unsafe.Pointer(rawChildren)) //nolint:nlreturn

	countInt := int(count)
	childSlice := (*[1 << 20]C.AXUIElementRef)(unsafe.Pointer(rawChildren))[:countInt:countInt]

	children := make([]element.UIElement, 0, countInt)
	for _, ref := range childSlice {
		if wrapped := wrapElement(ref); wrapped != nil {
			children = append(children, wrapped)
		}
	}

	return children
}

// Parent implements element.UIElement.
func (e *uiElement) Parent() element.UIElement {
	if e.ref == nil {
		return nil
	}

	ref := C.axCopyParent(e.ref)
	if ref == nil {
		return nil
	}

	return wrapElement(ref)
}

// ActionNames implements element.UIElement.
func (e *uiElement) ActionNames() []string {
	if e.ref == nil {
		return nil
	}

	var count C.int
	cNames := C.axCopyActionNames(e.ref, &count)
	if cNames == nil || count == 0 {
		return nil
	}
	defer C.silkFreeStringArray(cNames, count)

	countInt := int(count)
	nameSlice := (*[1 << 20]*C.char)(unsafe.Pointer(cNames))[:countInt:countInt]

	names := make([]string, countInt)
	for i := range names {
		names[i] = C.GoString(nameSlice[i])
	}

	return names
}

// Perform implements element.UIElement.
func (e *uiElement) Perform(action string) error {
	if e.ref == nil {
		return derrors.New(derrors.CodeActionFailed, "element reference is nil")
	}

	cAction := C.CString(action)
	defer C.free(unsafe.Pointer(cAction)) //nolint:nlreturn

	if code := C.axPerformAction(e.ref, cAction); code != 0 {
		return derrors.Newf(
			derrors.CodeActionFailed,
			"accessibility rejected action %s (AXError %d)",
			action,
			int(code),
		)
	}

	return nil
}

// SetStringAttribute implements element.UIElement.
func (e *uiElement) SetStringAttribute(name, value string) error {
	if e.ref == nil {
		return derrors.New(derrors.CodeActionFailed, "element reference is nil")
	}

	cName := C.CString(name)
	defer C.free(unsafe.Pointer(cName)) //nolint:nlreturn

	cValue := C.CString(value)
	defer C.free(unsafe.Pointer(cValue)) //nolint:nlreturn

	if code := C.axSetStringAttribute(e.ref, cName, cValue); code != 0 {
		return derrors.Newf(
			derrors.CodeActionFailed,
			"accessibility rejected writing %s (AXError %d)",
			name,
			int(code),
		)
	}

	return nil
}

// SetFocused implements element.UIElement.
func (e *uiElement) SetFocused(focused bool) error {
	if e.ref == nil {
		return derrors.New(derrors.CodeActionFailed, "element reference is nil")
	}

	cName := C.CString(element.AttrFocused)
	defer C.free(unsafe.Pointer(cName)) //nolint:nlreturn

	var cValue C.int
	if focused {
		cValue = 1
	}

	if code := C.axSetBoolAttribute(e.ref, cName, cValue); code != 0 {
		return derrors.Newf(
			derrors.CodeActionFailed,
			"accessibility rejected focus write (AXError %d)",
			int(code),
		)
	}

	return nil
}

// PID implements element.UIElement.
func (e *uiElement) PID() int {
	if e.ref == nil {
		return 0
	}

	return int(C.axElementPID(e.ref))
}

// Hash implements element.UIElement with the OS identity hash: equal for
// distinct wrappers of the same logical element, which is exactly what the
// traversal visited set needs.
func (e *uiElement) Hash() uint64 {
	if e.ref == nil {
		return 0
	}

	return uint64(C.axElementHash(e.ref))
}
