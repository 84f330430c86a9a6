// Package services implements the element engine: the accessibility tree
// walker, the query matcher, the visibility analyzer, the scroll-into-view
// service, and the action layer that composes them with the humanized
// movement generator and the input dispatcher.
//
// Every service depends only on the port interfaces, so the whole engine is
// exercised in unit tests against an in-memory tree and a recording
// dispatcher.
package services
