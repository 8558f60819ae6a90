//go:build windows

package main

import (
	"context"
	"testing"

	"golang.org/x/sys/windows"

	"bottomhalf-overlay/internal/geometry"
)

func TestNextExStyle(t *testing.T) {
	tests := []struct {
		name       string
		cur        uint32
		set, unset uint32
		want       uint32
	}{
		{"click-through on", 0, wsExLayered | wsExTransparent, 0, wsExLayered | wsExTransparent},
		{"click-through off", wsExLayered | wsExTransparent, wsExLayered, wsExTransparent, wsExLayered},
		{"tool window", wsExAppWindow | wsExLayered, wsExToolWindow, wsExAppWindow, wsExToolWindow | wsExLayered},
		{"keeps other bits", 0x8, wsExToolWindow, wsExAppWindow, 0x8 | wsExToolWindow},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := nextExStyle(tc.cur, tc.set, tc.unset); got != tc.want {
				t.Errorf("nextExStyle(%#x, %#x, %#x) = %#x; want %#x", tc.cur, tc.set, tc.unset, got, tc.want)
			}
		})
	}
}

func TestCallFailed(t *testing.T) {
	tests := []struct {
		name string
		ret  uintptr
		err  error
		want bool
	}{
		{"zero result without error", 0, windows.ERROR_SUCCESS, false},
		{"zero result with error", 0, windows.ERROR_INVALID_HANDLE, true},
		{"non-zero result with stale error", wsExLayered, windows.ERROR_ACCESS_DENIED, false},
		{"nil error", 0, nil, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := callFailed(tc.ret, tc.err); got != tc.want {
				t.Errorf("callFailed(%#x, %v) = %v; want %v", tc.ret, tc.err, got, tc.want)
			}
		})
	}
}

func TestSetClickThroughWithoutWindow(t *testing.T) {
	w := newWailsWindow(context.Background(), geometry.FallbackScreen)
	if err := w.setClickThrough(true); err == nil {
		t.Error("Expected an error when the overlay window does not exist")
	}
	if err := w.setToolWindow(); err == nil {
		t.Error("Expected an error when the overlay window does not exist")
	}
}
