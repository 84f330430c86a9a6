// Package cli defines the silk command tree: element queries, actions,
// scrolling, dragging, capture, application control and environment checks.
package cli
