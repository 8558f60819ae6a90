package main

import (
	"context"
	"embed"
	"fmt"
	"math"
	"os"

	"github.com/wailsapp/wails/v2"
	"github.com/wailsapp/wails/v2/pkg/logger"
	"github.com/wailsapp/wails/v2/pkg/menu"
	"github.com/wailsapp/wails/v2/pkg/menu/keys"
	"github.com/wailsapp/wails/v2/pkg/options"
	"github.com/wailsapp/wails/v2/pkg/options/assetserver"
	"github.com/wailsapp/wails/v2/pkg/options/linux"
	"github.com/wailsapp/wails/v2/pkg/options/mac"
	wailswindows "github.com/wailsapp/wails/v2/pkg/options/windows"

	"bottomhalf-overlay/internal/config"
	"bottomhalf-overlay/internal/geometry"
	"bottomhalf-overlay/internal/overlay"
)

//go:embed all:frontend/dist
var assets embed.FS

// windowTitle is also used to look the native window up on Windows
const windowTitle = "BottomHalf Browser Overlay"

// App struct
type App struct {
	ctx        context.Context
	log        logger.Logger
	cfg        config.Config
	screen     geometry.Screen
	window     *wailsWindow
	surface    *wailsSurface
	controller *overlay.Controller
}

// NewApp creates a new App application struct
func NewApp(cfg config.Config, screen geometry.Screen, log logger.Logger) *App {
	return &App{
		cfg:    cfg,
		screen: screen,
		log:    log,
	}
}

// OnStartup is called when the app starts up
func (a *App) OnStartup(ctx context.Context) {
	a.ctx = ctx
	a.window = newWailsWindow(ctx, a.screen)
	a.surface = newWailsSurface(ctx)
	a.controller = overlay.New(a.cfg, a.window, a.surface, a.screen, a.log)

	if err := a.controller.Start(ctx); err != nil {
		a.log.Error(fmt.Sprintf("Failed to start overlay: %v", err))
	}
}

// OnShutdown is called when the app is shutting down
func (a *App) OnShutdown(ctx context.Context) {
	if a.controller != nil {
		a.controller.Stop()
	}
}

// perform runs a hotkey action once the controller exists. Menu callbacks
// may arrive on the UI thread, which the controller's window calls need, so
// the action is not awaited here.
func (a *App) perform(action overlay.Action) {
	if a.controller == nil {
		return
	}
	go a.controller.Perform(action)
}

// Frontend API methods (these will be exposed to the frontend)

// Settings returns what the frontend shell needs to render the content
func (a *App) Settings() SurfaceSettings {
	if a.surface == nil {
		return SurfaceSettings{
			Content: overlay.ResolveContent(a.cfg.URL),
			Zoom:    a.cfg.Zoom,
			Opacity: a.cfg.Opacity,
		}
	}
	return a.surface.Settings()
}

// PointerEvent is a pointer event from the shell's drag layer. Screen
// coordinates are CSS pixels; Ratio is window.devicePixelRatio.
type PointerEvent struct {
	ScreenX float64 `json:"screen_x"`
	ScreenY float64 `json:"screen_y"`
	Button  int     `json:"button"`
	Buttons int     `json:"buttons"`
	Ratio   float64 `json:"ratio"`
}

// point returns the cursor position in physical screen pixels
func (e PointerEvent) point() geometry.Point {
	ratio := e.Ratio
	if ratio <= 0 {
		ratio = 1
	}
	return geometry.Point{
		X: int(math.Round(e.ScreenX * ratio)),
		Y: int(math.Round(e.ScreenY * ratio)),
	}
}

// MousePress forwards a pointer press
func (a *App) MousePress(ev PointerEvent) bool {
	if a.controller == nil {
		return false
	}
	return a.controller.MousePress(ev.point(), domButton(ev.Button))
}

// MouseMove forwards a pointer move
func (a *App) MouseMove(ev PointerEvent) bool {
	if a.controller == nil {
		return false
	}
	return a.controller.MouseMove(ev.point(), ev.Buttons&1 != 0)
}

// MouseRelease forwards a pointer release
func (a *App) MouseRelease() {
	if a.controller == nil {
		return
	}
	a.controller.MouseRelease()
}

// ShellHotkeys lists the hotkeys the shell page has to catch itself because
// no native accelerators are installed
func (a *App) ShellHotkeys() []string {
	if nativeAccelerators {
		return []string{}
	}
	hotkeys := overlay.Hotkeys()
	names := make([]string, 0, len(hotkeys))
	for _, hk := range hotkeys {
		names = append(names, hk.String())
	}
	return names
}

// PerformHotkey runs the action bound to a hotkey name such as "Ctrl+Q"
func (a *App) PerformHotkey(name string) bool {
	action, ok := overlay.LookupHotkey(name)
	if !ok {
		return false
	}
	a.perform(action)
	return true
}

// domButton maps MouseEvent.button to a controller button
func domButton(button int) overlay.Button {
	switch button {
	case 1:
		return overlay.ButtonMiddle
	case 2:
		return overlay.ButtonSecondary
	default:
		return overlay.ButtonPrimary
	}
}

// hotkeyMenu binds the hotkey table to native menu accelerators, which are
// only active while the overlay has focus
func (a *App) hotkeyMenu() *menu.Menu {
	appMenu := menu.NewMenu()
	sub := appMenu.AddSubmenu("Overlay")
	for _, hk := range overlay.Hotkeys() {
		action := hk.Action
		sub.AddText(action.String(), accelerator(hk), func(_ *menu.CallbackData) {
			a.perform(action)
		})
	}
	return appMenu
}

// appMenu returns the menu passed to Wails, nil where a menu would take up
// part of the window
func (a *App) appMenu() *menu.Menu {
	if !nativeAccelerators {
		return nil
	}
	return a.hotkeyMenu()
}

func accelerator(hk overlay.Hotkey) *keys.Accelerator {
	switch hk.Modifier {
	case overlay.ModCtrl:
		return keys.Control(hk.Key)
	case overlay.ModAlt:
		return keys.OptionOrAlt(hk.Key)
	default:
		return keys.Key(hk.Key)
	}
}

// loadConfig reads the config next to the executable. A missing or
// unreadable config silently falls back to defaults.
func loadConfig(dir string, log logger.Logger) config.Config {
	cfg, path := config.LoadOrDefault(config.Candidates(dir)...)
	if path != "" {
		log.Debug(fmt.Sprintf("Loaded config from %s", path))
	}
	return cfg.Sanitize()
}

func main() {
	log := logger.NewDefaultLogger()
	cfg := loadConfig(config.Dir(), log)

	// The runtime resizes to the exact dock rectangle before the first show
	screen := geometry.PrimaryScreen()
	initial := geometry.Dock(screen, cfg.Placement())
	scale := systemScale()

	// Create an instance of the app structure
	app := NewApp(cfg, screen, log)

	// Create application with options
	err := wails.Run(&options.App{
		Title:  windowTitle,
		Width:  toLogical(initial.W, scale),
		Height: toLogical(initial.H, scale),
		AssetServer: &assetserver.Options{
			Assets: assets,
		},
		Frameless:        true,
		AlwaysOnTop:      true,
		DisableResize:    true,
		StartHidden:      true,
		BackgroundColour: &options.RGBA{R: 0, G: 0, B: 0, A: 0}, // Transparent
		Menu:             app.appMenu(),
		Logger:           log,
		LogLevel:         logger.INFO,
		Windows: &wailswindows.Options{
			WebviewIsTransparent: true,
			WindowIsTranslucent:  true,
			DisableWindowIcon:    true,
		},
		Mac: &mac.Options{
			WebviewIsTransparent: true,
			WindowIsTranslucent:  true,
		},
		Linux: &linux.Options{
			WindowIsTranslucent: true,
		},
		OnStartup:  app.OnStartup,
		OnShutdown: app.OnShutdown,
		Bind:       []interface{}{app},
	})

	if err != nil {
		fmt.Printf("Error starting application: %v\n", err)
		os.Exit(1)
	}
}
