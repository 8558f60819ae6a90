//go:build windows

package main

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"bottomhalf-overlay/internal/geometry"
)

const gwlExStyle int32 = -20

// Extended window styles
const (
	wsExTransparent = 0x00000020
	wsExToolWindow  = 0x00000080
	wsExAppWindow   = 0x00040000
	wsExLayered     = 0x00080000

	monitorDefaultToNearest = 2
	defaultDPI              = 96
)

var (
	user32                = windows.NewLazySystemDLL("user32.dll")
	kernel32              = windows.NewLazySystemDLL("kernel32.dll")
	procFindWindowW       = user32.NewProc("FindWindowW")
	procGetWindowLongW    = user32.NewProc("GetWindowLongW")
	procSetWindowLongW    = user32.NewProc("SetWindowLongW")
	procMonitorFromWindow = user32.NewProc("MonitorFromWindow")
	procGetMonitorInfoW   = user32.NewProc("GetMonitorInfoW")
	procGetDpiForSystem   = user32.NewProc("GetDpiForSystem")
	procSetLastError      = kernel32.NewProc("SetLastError")
)

type monitorInfo struct {
	cbSize    uint32
	rcMonitor windows.Rect
	rcWork    windows.Rect
	dwFlags   uint32
}

// resolveHWND finds and caches the overlay window handle by its title
func (w *wailsWindow) resolveHWND() error {
	if w.hwnd != 0 {
		return nil
	}

	title, err := windows.UTF16PtrFromString(windowTitle)
	if err != nil {
		return err
	}
	hwnd, _, _ := procFindWindowW.Call(0, uintptr(unsafe.Pointer(title)))
	if hwnd == 0 {
		return fmt.Errorf("overlay window %q not found", windowTitle)
	}
	w.hwnd = hwnd
	return nil
}

// updateExStyle sets and clears extended style bits on the overlay window
func (w *wailsWindow) updateExStyle(set, unset uint32) error {
	if err := w.resolveHWND(); err != nil {
		return err
	}

	idx := gwlExStyle

	// Both calls may legitimately return 0, so the last error decides.
	procSetLastError.Call(0)
	cur, _, err := procGetWindowLongW.Call(w.hwnd, uintptr(idx))
	if callFailed(cur, err) {
		return fmt.Errorf("GetWindowLongW: %w", err)
	}

	style := nextExStyle(uint32(cur), set, unset)
	procSetLastError.Call(0)
	prev, _, err := procSetWindowLongW.Call(w.hwnd, uintptr(idx), uintptr(style))
	if callFailed(prev, err) {
		return fmt.Errorf("SetWindowLongW: %w", err)
	}
	return nil
}

func nextExStyle(cur, set, unset uint32) uint32 {
	return (cur | set) &^ unset
}

// callFailed reports whether a call that may legitimately return 0 failed,
// judged by the last error
func callFailed(ret uintptr, err error) bool {
	return ret == 0 && err != nil && err != windows.ERROR_SUCCESS
}

// setClickThrough toggles WS_EX_TRANSPARENT on the layered window so mouse
// input falls through to whatever is underneath
func (w *wailsWindow) setClickThrough(enable bool) error {
	if enable {
		return w.updateExStyle(wsExLayered|wsExTransparent, 0)
	}
	return w.updateExStyle(wsExLayered, wsExTransparent)
}

// setToolWindow hides the window from the taskbar and Alt+Tab
func (w *wailsWindow) setToolWindow() error {
	return w.updateExStyle(wsExToolWindow, wsExAppWindow)
}

// placementOrigin returns the top-left of the work area of the monitor the
// window is on, which is what WindowSetPosition measures from
func (w *wailsWindow) placementOrigin() geometry.Point {
	if err := w.resolveHWND(); err != nil {
		return w.screen.Origin()
	}

	monitor, _, _ := procMonitorFromWindow.Call(w.hwnd, monitorDefaultToNearest)
	if monitor == 0 {
		return w.screen.Origin()
	}

	mi := monitorInfo{}
	mi.cbSize = uint32(unsafe.Sizeof(mi))
	if ok, _, _ := procGetMonitorInfoW.Call(monitor, uintptr(unsafe.Pointer(&mi))); ok == 0 {
		return w.screen.Origin()
	}
	return geometry.Point{X: int(mi.rcWork.Left), Y: int(mi.rcWork.Top)}
}

// systemScale returns the system DPI scale used for the initial window size
func systemScale() float64 {
	if procGetDpiForSystem.Find() != nil {
		return 1
	}
	dpi, _, _ := procGetDpiForSystem.Call()
	if dpi == 0 {
		return 1
	}
	return float64(dpi) / defaultDPI
}
