//go:build !windows

package main

import (
	"errors"
	"fmt"

	"bottomhalf-overlay/internal/geometry"
	"bottomhalf-overlay/internal/overlay"
)

var errToolWindowUnsupported = fmt.Errorf("tool windows: %w", errors.ErrUnsupported)

// setClickThrough is not available outside Windows; the toggle state still
// changes so the hotkey stays consistent.
func (w *wailsWindow) setClickThrough(enable bool) error {
	return overlay.ErrClickThroughUnsupported
}

func (w *wailsWindow) setToolWindow() error {
	return errToolWindowUnsupported
}

// placementOrigin is the primary monitor origin, which WindowSetPosition
// measures from
func (w *wailsWindow) placementOrigin() geometry.Point {
	return w.screen.Origin()
}

func systemScale() float64 {
	return 1
}
