package mocks

import (
	"fmt"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/saucesteals/silk/internal/domain/element"
)

var fakeElementCounter atomic.Uint64

// FakeElement is an in-memory element.UIElement for engine tests. Fields are
// mutable so tests can simulate UI changes between queries (scrolling,
// reordering, disappearing nodes).
type FakeElement struct {
	ElemRole string
	RoleErr  error

	Attrs   map[string]string
	Lists   map[string][]string
	Numbers map[string]float64

	// Pos and Dim are nil to simulate unreadable geometry.
	Pos *element.Point
	Dim *element.Size

	Kids       []*FakeElement
	ParentElem *FakeElement

	Actions []string

	// PerformFunc, when set, intercepts Perform calls; otherwise actions are
	// recorded and PerformErr returned.
	PerformFunc      func(action string) error
	PerformErr       error
	PerformedActions []string

	SetAttrCalls map[string]string
	SetAttrErr   error

	FocusedValue bool
	SetFocusErr  error

	ProcessID int

	identity string
}

// NewFakeElement builds a fake with the given role.
func NewFakeElement(role string) *FakeElement {
	return &FakeElement{
		ElemRole: role,
		Attrs:    map[string]string{},
		identity: fmt.Sprintf("fake-%d", fakeElementCounter.Add(1)),
	}
}

// WithFrame sets position and size and returns the element.
func (f *FakeElement) WithFrame(x, y, width, height int) *FakeElement {
	f.Pos = &element.Point{X: x, Y: y}
	f.Dim = &element.Size{Width: width, Height: height}

	return f
}

// WithAttr sets a string attribute and returns the element.
func (f *FakeElement) WithAttr(name, value string) *FakeElement {
	if f.Attrs == nil {
		f.Attrs = map[string]string{}
	}
	f.Attrs[name] = value

	return f
}

// WithTitle sets the AXTitle attribute.
func (f *FakeElement) WithTitle(title string) *FakeElement {
	return f.WithAttr(element.AttrTitle, title)
}

// WithActions sets the advertised action names.
func (f *FakeElement) WithActions(actions ...string) *FakeElement {
	f.Actions = actions

	return f
}

// WithChildren attaches ordered children and links their parent pointers.
func (f *FakeElement) WithChildren(children ...*FakeElement) *FakeElement {
	f.Kids = append(f.Kids, children...)
	for _, child := range children {
		child.ParentElem = f
	}

	return f
}

// Role implements element.UIElement.
func (f *FakeElement) Role() (string, error) {
	if f.RoleErr != nil {
		return "", f.RoleErr
	}

	return f.ElemRole, nil
}

// StringAttribute implements element.UIElement.
func (f *FakeElement) StringAttribute(name string) (string, bool) {
	value, ok := f.Attrs[name]

	return value, ok
}

// ListAttribute implements element.UIElement.
func (f *FakeElement) ListAttribute(name string) ([]string, bool) {
	value, ok := f.Lists[name]

	return value, ok
}

// NumberAttribute implements element.UIElement.
func (f *FakeElement) NumberAttribute(name string) (float64, bool) {
	value, ok := f.Numbers[name]

	return value, ok
}

// PointAttribute implements element.UIElement.
func (f *FakeElement) PointAttribute(name string) (element.Point, bool) {
	if name == element.AttrPosition && f.Pos != nil {
		return *f.Pos, true
	}

	return element.Point{}, false
}

// SizeAttribute implements element.UIElement.
func (f *FakeElement) SizeAttribute(name string) (element.Size, bool) {
	if name == element.AttrSize && f.Dim != nil {
		return *f.Dim, true
	}

	return element.Size{}, false
}

// Children implements element.UIElement.
func (f *FakeElement) Children() []element.UIElement {
	children := make([]element.UIElement, len(f.Kids))
	for i, child := range f.Kids {
		children[i] = child
	}

	return children
}

// Parent implements element.UIElement.
func (f *FakeElement) Parent() element.UIElement {
	if f.ParentElem == nil {
		return nil
	}

	return f.ParentElem
}

// ActionNames implements element.UIElement.
func (f *FakeElement) ActionNames() []string {
	return f.Actions
}

// Perform implements element.UIElement.
func (f *FakeElement) Perform(action string) error {
	f.PerformedActions = append(f.PerformedActions, action)

	if f.PerformFunc != nil {
		return f.PerformFunc(action)
	}

	return f.PerformErr
}

// SetStringAttribute implements element.UIElement.
func (f *FakeElement) SetStringAttribute(name, value string) error {
	if f.SetAttrErr != nil {
		return f.SetAttrErr
	}

	if f.SetAttrCalls == nil {
		f.SetAttrCalls = map[string]string{}
	}
	f.SetAttrCalls[name] = value

	// Mirror the write into the readable attributes, like the OS does for
	// settable values.
	if f.Attrs == nil {
		f.Attrs = map[string]string{}
	}
	f.Attrs[name] = value

	return nil
}

// SetFocused implements element.UIElement.
func (f *FakeElement) SetFocused(focused bool) error {
	if f.SetFocusErr != nil {
		return f.SetFocusErr
	}

	f.FocusedValue = focused

	return nil
}

// PID implements element.UIElement.
func (f *FakeElement) PID() int {
	return f.ProcessID
}

// Hash implements element.UIElement using a digest of the fake's stable
// identity, standing in for the OS identity hash.
func (f *FakeElement) Hash() uint64 {
	return xxhash.Sum64String(f.identity)
}
