package main

import (
	"context"
	"math"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"bottomhalf-overlay/internal/geometry"
	"bottomhalf-overlay/internal/overlay"
)

// Frontend events
const (
	eventSettings = "overlay:settings"
)

// windowRuntime is the part of the Wails runtime the window adapter calls
type windowRuntime struct {
	setSize     func(ctx context.Context, width, height int)
	setPosition func(ctx context.Context, x, y int)
	getPosition func(ctx context.Context) (int, int)
	screens     func(ctx context.Context) ([]runtime.Screen, error)
	show        func(ctx context.Context)
	quit        func(ctx context.Context)
}

var wailsRuntime = windowRuntime{
	setSize:     runtime.WindowSetSize,
	setPosition: runtime.WindowSetPosition,
	getPosition: runtime.WindowGetPosition,
	screens:     runtime.ScreenGetAll,
	show:        runtime.WindowShow,
	quit:        runtime.Quit,
}

// wailsWindow drives the native window through the Wails runtime.
//
// Overlay geometry is in physical pixels with absolute coordinates. The
// runtime takes sizes in DPI-scaled units and positions relative to the
// monitor (the work area on Windows), but reports positions as absolute
// pixels.
type wailsWindow struct {
	ctx    context.Context
	screen geometry.Screen
	rt     windowRuntime
	origin func() geometry.Point // what WindowSetPosition measures from
	hwnd   uintptr               // resolved lazily on Windows
}

func newWailsWindow(ctx context.Context, screen geometry.Screen) *wailsWindow {
	w := &wailsWindow{ctx: ctx, screen: screen, rt: wailsRuntime}
	w.origin = w.placementOrigin
	return w
}

func (w *wailsWindow) SetGeometry(r geometry.Rect) {
	scale := w.scale()
	w.rt.setSize(w.ctx, toLogical(r.W, scale), toLogical(r.H, scale))
	w.Move(r.TopLeft())
}

func (w *wailsWindow) Position() geometry.Point {
	x, y := w.rt.getPosition(w.ctx)
	return geometry.Point{X: x, Y: y}
}

func (w *wailsWindow) Move(p geometry.Point) {
	rel := p.Sub(w.origin())
	w.rt.setPosition(w.ctx, rel.X, rel.Y)
}

func (w *wailsWindow) SetClickThrough(enabled bool) error {
	return w.setClickThrough(enabled)
}

func (w *wailsWindow) SetToolWindow() error {
	return w.setToolWindow()
}

func (w *wailsWindow) Show() {
	w.rt.show(w.ctx)
}

func (w *wailsWindow) Close() {
	w.rt.quit(w.ctx)
}

// scale returns physical pixels per logical pixel on the primary screen
func (w *wailsWindow) scale() float64 {
	screens, err := w.rt.screens(w.ctx)
	if err != nil {
		return 1
	}
	return dpiScale(screens)
}

func dpiScale(screens []runtime.Screen) float64 {
	for _, s := range screens {
		if s.IsPrimary && s.Size.Width > 0 && s.PhysicalSize.Width > 0 {
			return float64(s.PhysicalSize.Width) / float64(s.Size.Width)
		}
	}
	return 1
}

// toLogical converts a physical pixel length to DPI-scaled units
func toLogical(px int, scale float64) int {
	if scale <= 0 {
		return px
	}
	return int(math.Round(float64(px) / scale))
}

// SurfaceSettings is the state the frontend shell renders
type SurfaceSettings struct {
	Content   overlay.Content `json:"content"`
	Zoom      float64         `json:"zoom"`
	Opacity   float64         `json:"opacity"`
	DragLayer bool            `json:"drag_layer"`
}

// wailsSurface keeps the web view settings and pushes changes to the
// frontend shell, which also pulls them through App.Settings after every
// load.
type wailsSurface struct {
	ctx      context.Context
	mu       sync.RWMutex
	settings SurfaceSettings
}

func newWailsSurface(ctx context.Context) *wailsSurface {
	return &wailsSurface{
		ctx:      ctx,
		settings: SurfaceSettings{Zoom: 1, Opacity: 1},
	}
}

// Settings returns a copy of the current settings
func (s *wailsSurface) Settings() SurfaceSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.settings
}

func (s *wailsSurface) update(fn func(*SurfaceSettings)) {
	s.mu.Lock()
	fn(&s.settings)
	settings := s.settings
	s.mu.Unlock()

	runtime.EventsEmit(s.ctx, eventSettings, settings)
}

func (s *wailsSurface) SetTransparentBackground() error {
	runtime.WindowSetBackgroundColour(s.ctx, 0, 0, 0, 0)
	return nil
}

func (s *wailsSurface) SetOpacity(opacity float64) {
	s.update(func(st *SurfaceSettings) { st.Opacity = opacity })
}

func (s *wailsSurface) Load(c overlay.Content) {
	s.update(func(st *SurfaceSettings) { st.Content = c })
}

func (s *wailsSurface) SetZoom(factor float64) {
	s.update(func(st *SurfaceSettings) { st.Zoom = factor })
}

// Reload reloads the shell page, which reloads the hosted content with it
func (s *wailsSurface) Reload() {
	runtime.WindowReload(s.ctx)
}

func (s *wailsSurface) SetDragLayer(enabled bool) {
	s.update(func(st *SurfaceSettings) { st.DragLayer = enabled })
}
