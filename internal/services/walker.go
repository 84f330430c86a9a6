package services

import (
	"strings"

	"github.com/saucesteals/silk/internal/domain/element"
	"github.com/saucesteals/silk/internal/ports"
	"go.uber.org/zap"
)

// DefaultMaxDepth bounds traversal against pathological trees.
const DefaultMaxDepth = 50

// Visitor receives each discovered element. Returning false halts the
// traversal; the walker reports how many nodes it visited either way.
type Visitor func(*element.Element) bool

// Walker enumerates the accessibility forest and materializes Element
// values with correct path, depth, and sibling index.
type Walker struct {
	client    ports.AccessibilityClient
	workspace ports.Workspace
	logger    *zap.Logger
}

// NewWalker creates a tree walker over the given ports.
func NewWalker(
	client ports.AccessibilityClient,
	workspace ports.Workspace,
	logger *zap.Logger,
) *Walker {
	return &Walker{client: client, workspace: workspace, logger: logger}
}

// Traverse walks the tree under root depth-first, calling visit for every
// node whose role is readable. Returns the number of nodes visited.
//
// Cycle detection keys on the OS identity hash of each handle: the same
// logical element handed back as distinct wrappers on separate reads still
// hashes equal. A hash collision costs a skipped subtree, which is safe.
func (w *Walker) Traverse(root element.UIElement, maxDepth int, visit Visitor) int {
	if root == nil {
		return 0
	}

	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	visited := make(map[uint64]struct{})
	count := 0

	var walk func(handle element.UIElement, parentRole string, path []string, depth int, siblingIndex *int) bool
	walk = func(handle element.UIElement, parentRole string, path []string, depth int, siblingIndex *int) bool {
		hash := handle.Hash()
		if _, seen := visited[hash]; seen {
			return true
		}
		visited[hash] = struct{}{}

		elem := buildElement(handle, parentRole, path, depth, siblingIndex)
		if elem == nil {
			// Role unreadable: drop the node and its subtree.
			return true
		}

		count++

		if !visit(elem) {
			return false
		}

		if depth >= maxDepth {
			return true
		}

		for index, child := range handle.Children() {
			if child == nil {
				continue
			}

			childIndex := index
			if !walk(child, elem.Role, elem.Path, depth+1, &childIndex) {
				return false
			}
		}

		return true
	}

	walk(root, "", nil, 0, nil)

	return count
}

// Collect traverses and returns every element passing the filter (nil
// matches everything).
func (w *Walker) Collect(
	root element.UIElement,
	maxDepth int,
	filter func(*element.Element) bool,
) []*element.Element {
	var collected []*element.Element

	w.Traverse(root, maxDepth, func(e *element.Element) bool {
		if filter == nil || filter(e) {
			collected = append(collected, e)
		}

		return true
	})

	return collected
}

// ApplicationElement resolves a running application by localized name and
// returns its accessibility root. Nil when the application is not running
// or exposes no tree.
func (w *Walker) ApplicationElement(name string) element.UIElement {
	for _, app := range w.workspace.RunningApplications() {
		if !app.Regular {
			continue
		}

		if strings.EqualFold(app.Name, name) {
			return w.client.ApplicationElement(app.PID)
		}
	}

	w.logger.Debug("Application not found", zap.String("name", name))

	return nil
}

// AllApplicationElements returns the accessibility roots of every running
// application with a regular activation policy.
func (w *Walker) AllApplicationElements() []element.UIElement {
	var roots []element.UIElement

	for _, app := range w.workspace.RunningApplications() {
		if !app.Regular {
			continue
		}

		if root := w.client.ApplicationElement(app.PID); root != nil {
			roots = append(roots, root)
		}
	}

	return roots
}

// ElementAtPosition hit-tests the system-wide root at screen coordinates
// and materializes the result. The returned element has no sibling index:
// it was not reached through its parent's children list.
func (w *Walker) ElementAtPosition(x, y int) *element.Element {
	handle := w.client.ElementAtPosition(x, y)
	if handle == nil {
		return nil
	}

	return buildElement(handle, parentRoleOf(handle), nil, 0, nil)
}

// FocusedElement materializes the element holding keyboard focus.
func (w *Walker) FocusedElement() *element.Element {
	handle := w.client.FocusedElement()
	if handle == nil {
		return nil
	}

	return buildElement(handle, parentRoleOf(handle), nil, 0, nil)
}

// WindowsOf returns the window children of an application root.
func (w *Walker) WindowsOf(app element.UIElement) []element.UIElement {
	if app == nil {
		return nil
	}

	var windows []element.UIElement

	for _, child := range app.Children() {
		role, err := child.Role()
		if err != nil {
			continue
		}

		if role == element.RoleWindow {
			windows = append(windows, child)
		}
	}

	return windows
}

// buildElement reads a handle's attributes into an Element value. Returns
// nil when the required role attribute is unreadable.
func buildElement(
	handle element.UIElement,
	parentRole string,
	parentPath []string,
	depth int,
	siblingIndex *int,
) *element.Element {
	role, err := handle.Role()
	if err != nil || role == "" {
		return nil
	}

	// Each element owns its path slice; appending to the shared parent path
	// would alias siblings.
	path := make([]string, 0, len(parentPath)+1)
	path = append(path, parentPath...)
	path = append(path, role)

	elem := &element.Element{
		Role:         role,
		Path:         path,
		Depth:        depth,
		ParentRole:   parentRole,
		SiblingIndex: siblingIndex,
		Handle:       handle,
	}

	elem.Title, _ = handle.StringAttribute(element.AttrTitle)
	elem.Description, _ = handle.StringAttribute(element.AttrDescription)
	elem.Subrole, _ = handle.StringAttribute(element.AttrSubrole)
	elem.Value, _ = handle.StringAttribute(element.AttrValue)
	elem.Identifier, _ = handle.StringAttribute(element.AttrIdentifier)

	// Web-view DOM attributes are read optimistically; absence is silent.
	elem.DOMID, _ = handle.StringAttribute(element.AttrDOMID)
	elem.DOMClassList, _ = handle.ListAttribute(element.AttrDOMClassList)

	// Geometry defaults to the zero value on read failure.
	elem.Position, _ = handle.PointAttribute(element.AttrPosition)
	elem.Size, _ = handle.SizeAttribute(element.AttrSize)

	elem.Ref = element.Ref(elem)

	return elem
}

// parentRoleOf reads the role of a handle's parent, best-effort.
func parentRoleOf(handle element.UIElement) string {
	parent := handle.Parent()
	if parent == nil {
		return ""
	}

	role, err := parent.Role()
	if err != nil {
		return ""
	}

	return role
}
