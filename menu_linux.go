//go:build linux

package main

// GTK packs the application menu into the window as a visible menu bar, so
// the shell page handles the hotkeys instead.
const nativeAccelerators = false
