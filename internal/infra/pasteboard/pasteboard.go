// Package pasteboard implements pasteboard snapshot and restore over the
// cgo bridge. The paste-typing lane owns the pasteboard for its duration:
// snapshot prior items as typed byte blobs, overwrite, paste, restore.
package pasteboard

/*
#cgo CFLAGS: -x objective-c
#include "../bridge/pasteboard.h"
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/atotto/clipboard"
	derrors "github.com/saucesteals/silk/internal/errors"
	"github.com/saucesteals/silk/internal/ports"
	"go.uber.org/zap"
)

// Pasteboard implements ports.Pasteboard.
type Pasteboard struct {
	logger *zap.Logger
}

// New creates the pasteboard adapter.
func New(logger *zap.Logger) *Pasteboard {
	return &Pasteboard{logger: logger}
}

// Snapshot implements ports.Pasteboard. Items come back as (type, bytes)
// tuples, not handles; handles go stale after a clear.
func (p *Pasteboard) Snapshot() ([]ports.PasteboardItem, error) {
	var count C.int
	cItems := C.pbSnapshot(&count)
	if cItems == nil || count == 0 {
		return nil, nil
	}
	defer C.pbFreeItems(cItems, count)

	countInt := int(count)
	itemSlice := (*[1 << 16]C.SilkPasteboardItem)(unsafe.Pointer(cItems))[:countInt:countInt]

	items := make([]ports.PasteboardItem, 0, countInt)
	for _, cItem := range itemSlice {
		if cItem._type == nil || cItem.data == nil {
			continue
		}

		items = append(items, ports.PasteboardItem{
			Type: C.GoString(cItem._type),
			Data: C.GoBytes(unsafe.Pointer(cItem.data), cItem.length),
		})
	}

	p.logger.Debug("Snapshotted pasteboard", zap.Int("items", len(items)))

	return items, nil
}

// Restore implements ports.Pasteboard.
func (p *Pasteboard) Restore(items []ports.PasteboardItem) error {
	if len(items) == 0 {
		return p.Clear()
	}

	cItems := make([]C.SilkPasteboardItem, len(items))
	for i, item := range items {
		cItems[i]._type = C.CString(item.Type)
		cItems[i].length = C.int(len(item.Data))
		cItems[i].data = (*C.uchar)(C.CBytes(item.Data))
	}
	defer func() {
		for i := range cItems {
			C.free(unsafe.Pointer(cItems[i]._type))
			C.free(unsafe.Pointer(cItems[i].data))
		}
	}()

	if C.pbRestore(&cItems[0], C.int(len(cItems))) == 0 {
		return derrors.New(derrors.CodeActionFailed, "failed to restore pasteboard items")
	}

	return nil
}

// Clear implements ports.Pasteboard.
func (p *Pasteboard) Clear() error {
	if C.pbClear() == 0 {
		return derrors.New(derrors.CodeActionFailed, "failed to clear pasteboard")
	}

	return nil
}

// SetText implements ports.Pasteboard through the plain-text clipboard lane.
func (p *Pasteboard) SetText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return derrors.Wrap(err, derrors.CodeActionFailed, "failed to write pasteboard text")
	}

	return nil
}

// Text implements ports.Pasteboard.
func (p *Pasteboard) Text() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", derrors.Wrap(err, derrors.CodeActionFailed, "failed to read pasteboard text")
	}

	return text, nil
}
