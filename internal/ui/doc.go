// Package ui renders command lifecycle events in a human-readable form for
// console log output.
package ui
