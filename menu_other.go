//go:build !linux

package main

// The application menu stays out of the client area: it lives in the
// system menu bar on macOS and is hidden by the frameless window on Windows.
const nativeAccelerators = true
