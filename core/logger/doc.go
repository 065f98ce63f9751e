// Package logger is the diagnostics sink shared by every shell component.
//
// Debug output is gated by a single Diagnostics flag which the +debug builtin
// toggles; errors are always written.
package logger
