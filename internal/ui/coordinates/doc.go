// Package coordinates provides coordinate conversion utilities.
//
// The core works in top-left-origin screen coordinates throughout; these
// helpers convert to and from the bottom-left-origin system used by
// window-level geometry APIs, degrading to pass-through when no display is
// available.
package coordinates
