package overlay

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wailsapp/wails/v2/pkg/logger"

	"bottomhalf-overlay/internal/config"
	"bottomhalf-overlay/internal/geometry"
)

// ClickThroughDelay is how long after construction a configured
// click-through is switched on, so the first paint happens with input.
const ClickThroughDelay = 50 * time.Millisecond

// ErrClickThroughUnsupported is returned by windows that cannot pass input
// through to what lies beneath them.
var ErrClickThroughUnsupported = errors.New("click-through is not supported on this platform")

// Window is the native overlay window
type Window interface {
	SetGeometry(r geometry.Rect)
	Position() geometry.Point
	Move(p geometry.Point)
	SetClickThrough(enabled bool) error
	// SetToolWindow keeps the window out of the taskbar and task switcher
	SetToolWindow() error
	Show()
	Close()
}

// Surface is the web view filling the window
type Surface interface {
	SetTransparentBackground() error
	SetOpacity(opacity float64)
	Load(c Content)
	SetZoom(factor float64)
	Reload()
	SetDragLayer(enabled bool)
}

// Button identifies a mouse button
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// State is a snapshot of the toggle state
type State struct {
	ClickThrough bool `json:"click_through"`
	DragEnabled  bool `json:"drag_enabled"`
	Dragging     bool `json:"dragging"`
}

// Controller owns the overlay window. All state changes run on a single
// event loop goroutine, so hotkeys, mouse input and timers are applied in
// the order they arrive.
type Controller struct {
	cfg     config.Config
	window  Window
	surface Surface
	screen  geometry.Screen
	log     logger.Logger

	reloadInterval    time.Duration
	clickThroughDelay time.Duration

	actions chan func()
	done    chan struct{}
	started atomic.Bool
	stop    sync.Once
	cancel  context.CancelFunc

	// owned by the event loop
	clickThrough bool
	dragEnabled  bool
	dragOffset   *geometry.Point
	geometry     geometry.Rect
	deferred     *time.Timer
}

// New creates a controller for one overlay window. cfg is used as given;
// it is sanitized once where it is loaded.
func New(cfg config.Config, window Window, surface Surface, screen geometry.Screen, log logger.Logger) *Controller {
	return &Controller{
		cfg:               cfg,
		window:            window,
		surface:           surface,
		screen:            screen,
		log:               log,
		reloadInterval:    cfg.ReloadInterval(),
		clickThroughDelay: ClickThroughDelay,
		actions:           make(chan func()),
		done:              make(chan struct{}),
	}
}

// Start sets up the surface and window and begins the event loop. The loop
// runs until ctx is cancelled or Quit is called.
func (c *Controller) Start(ctx context.Context) error {
	if !c.started.CompareAndSwap(false, true) {
		return fmt.Errorf("overlay controller already started")
	}

	ctx, c.cancel = context.WithCancel(ctx)

	c.surface.SetOpacity(c.cfg.Opacity)
	if err := c.surface.SetTransparentBackground(); err != nil {
		c.log.Debug(fmt.Sprintf("Transparent background unavailable: %v", err))
	}

	content := ResolveContent(c.cfg.URL)
	c.surface.Load(content)
	c.surface.SetZoom(c.cfg.Zoom)
	if content.Remote {
		c.log.Info(fmt.Sprintf("Loading %s", content.URL))
	} else {
		c.log.Info("Loading bundled document")
	}

	c.geometry = geometry.Dock(c.screen, c.cfg.Placement())
	c.window.SetGeometry(c.geometry)
	if err := c.window.SetToolWindow(); errors.Is(err, errors.ErrUnsupported) {
		c.log.Debug(fmt.Sprintf("Taskbar entry kept: %v", err))
	} else if err != nil {
		c.log.Warning(fmt.Sprintf("Failed to make a tool window: %v", err))
	}

	if c.cfg.ClickThroughStart {
		c.deferred = time.AfterFunc(c.clickThroughDelay, func() {
			c.post(c.toggleClickThrough)
		})
	}

	go c.run(ctx)

	// Not awaited: Start may be called from the UI thread.
	c.post(c.window.Show)
	return nil
}

// run is the event loop
func (c *Controller) run(ctx context.Context) {
	defer close(c.done)

	var reload <-chan time.Time
	if c.reloadInterval > 0 {
		ticker := time.NewTicker(c.reloadInterval)
		defer ticker.Stop()
		reload = ticker.C
		c.log.Info(fmt.Sprintf("Auto reload every %v", c.reloadInterval))
	}

	for {
		select {
		case <-ctx.Done():
			if c.deferred != nil {
				c.deferred.Stop()
			}
			return
		case fn := <-c.actions:
			fn()
		case <-reload:
			c.surface.Reload()
		}
	}
}

// dispatch runs fn on the event loop and waits for it to finish. It
// reports false when the loop is not running.
func (c *Controller) dispatch(fn func()) bool {
	if !c.started.Load() {
		return false
	}

	finished := make(chan struct{})
	select {
	case c.actions <- func() { fn(); close(finished) }:
	case <-c.done:
		return false
	}
	<-finished
	return true
}

// post queues fn on the event loop without waiting
func (c *Controller) post(fn func()) {
	select {
	case c.actions <- fn:
	case <-c.done:
	}
}

// Stop ends the event loop. It does not close the window.
func (c *Controller) Stop() {
	c.stop.Do(func() {
		if c.cancel != nil {
			c.cancel()
		}
	})
}

// Done is closed when the event loop has exited
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// Perform runs the action bound to a hotkey
func (c *Controller) Perform(a Action) {
	switch a {
	case ActionToggleClickThrough:
		c.ToggleClickThrough()
	case ActionReload:
		c.Reload()
	case ActionQuit:
		c.Quit()
	case ActionToggleDrag:
		c.ToggleDrag()
	default:
		c.log.Warning(fmt.Sprintf("Unknown action %v", a))
	}
}

// ToggleClickThrough flips input transparency and re-shows the window so
// the changed flag takes effect.
func (c *Controller) ToggleClickThrough() {
	c.dispatch(c.toggleClickThrough)
}

func (c *Controller) toggleClickThrough() {
	c.clickThrough = !c.clickThrough
	if err := c.window.SetClickThrough(c.clickThrough); err != nil {
		c.log.Warning(fmt.Sprintf("Failed to set click-through: %v", err))
	}
	c.window.Show()
	c.log.Debug(fmt.Sprintf("Click-through: %v", c.clickThrough))
}

// ToggleDrag flips drag mode
func (c *Controller) ToggleDrag() {
	c.dispatch(func() {
		c.dragEnabled = !c.dragEnabled
		if !c.dragEnabled {
			c.dragOffset = nil
		}
		c.surface.SetDragLayer(c.dragEnabled)
		c.log.Debug(fmt.Sprintf("Drag mode: %v", c.dragEnabled))
	})
}

// Reload reloads the current content
func (c *Controller) Reload() {
	c.dispatch(c.surface.Reload)
}

// Quit closes the window and stops the event loop
func (c *Controller) Quit() {
	quit := func() {
		c.log.Info("Quitting")
		c.window.Close()
	}
	if !c.dispatch(quit) {
		quit()
	}
	c.Stop()
}

// canDrag reports whether mouse input should move the window
func (c *Controller) canDrag() bool {
	return c.dragEnabled && !c.clickThrough
}

// MousePress starts a drag when drag mode is on. It reports whether the
// event was consumed.
func (c *Controller) MousePress(cursor geometry.Point, b Button) bool {
	consumed := false
	c.dispatch(func() {
		if !c.canDrag() || b != ButtonPrimary {
			return
		}
		offset := cursor.Sub(c.window.Position())
		c.dragOffset = &offset
		consumed = true
	})
	return consumed
}

// MouseMove moves the window with the cursor while a drag is in progress.
// It reports whether the event was consumed.
func (c *Controller) MouseMove(cursor geometry.Point, primaryHeld bool) bool {
	consumed := false
	c.dispatch(func() {
		if !c.canDrag() || c.dragOffset == nil || !primaryHeld {
			return
		}
		pos := cursor.Sub(*c.dragOffset)
		c.window.Move(pos)
		c.geometry.X, c.geometry.Y = pos.X, pos.Y
		consumed = true
	})
	return consumed
}

// MouseRelease ends a drag
func (c *Controller) MouseRelease() {
	c.dispatch(func() {
		c.dragOffset = nil
	})
}

// State returns the current toggle state
func (c *Controller) State() State {
	var s State
	ok := c.dispatch(func() {
		s = c.snapshot()
	})
	if !ok {
		// loop not running, nothing else can be mutating
		s = c.snapshot()
	}
	return s
}

func (c *Controller) snapshot() State {
	return State{
		ClickThrough: c.clickThrough,
		DragEnabled:  c.dragEnabled,
		Dragging:     c.dragOffset != nil,
	}
}

// Geometry returns the last rectangle applied to the window
func (c *Controller) Geometry() geometry.Rect {
	var r geometry.Rect
	if !c.dispatch(func() { r = c.geometry }) {
		r = c.geometry
	}
	return r
}
