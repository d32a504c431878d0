// Package format renders durations and profile fields as display strings
// shared by the CLI and the full-screen interface.
package format
