// Package ui holds the color themes shared by the line-oriented CLI and the
// full-screen interface. Both read the active theme through this package so
// that --no-color and NO_COLOR apply everywhere.
package ui
