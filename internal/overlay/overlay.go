// Package overlay holds the clock overlay's state machine. Every mutation
// goes through Dispatch, which the UI loop calls one event at a time.
// Other goroutines (timers, file watcher) only Post.
package overlay

import (
	"image"
	"image/color"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/elir-elirlab/elirdeskclock/internal/backdrop"
	"github.com/elir-elirlab/elirdeskclock/internal/entity"
)

// Window is the surface the overlay draws on. It is owned by the caller.
type Window interface {
	// Size is the realized client size; <= 1 before the first layout.
	Size() (int, int)
	ScreenSize() (int, int)
	SetFullscreen(on bool)
}

// Dialogs are the blocking native prompts.
type Dialogs interface {
	// PickImage returns "" with a nil error when the user cancels.
	PickImage() (string, error)
	ShowError(title, message string)
}

// Scheduler runs callbacks off the loop; callbacks must only Post.
type Scheduler interface {
	Every(d time.Duration, fn func()) error
	After(d time.Duration, fn func()) error
}

// FileWatcher reports changes of the current background file.
type FileWatcher interface {
	Watch(path string) error
	Unwatch()
}

// LoadFunc decodes path scaled to exactly width x height.
type LoadFunc func(path string, width, height int) (*image.RGBA, error)

var black = color.RGBA{A: 0xff}

type Options struct {
	Dialogs   Dialogs
	Scheduler Scheduler
	Watcher   FileWatcher // optional
	Load      LoadFunc    // defaults to backdrop.Load
	Now       func() time.Time

	DefaultImage    string // loaded by Start when it is a regular file
	RefreshInterval time.Duration
	ReloadDelay     time.Duration
	BaseFill        color.RGBA
	QueueSize       int
}

func (o *Options) setDefaults() {
	if o.Load == nil {
		o.Load = backdrop.Load
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	if o.RefreshInterval <= 0 {
		o.RefreshInterval = time.Second
	}
	if o.ReloadDelay < 0 {
		o.ReloadDelay = 0
	}
	if o.BaseFill == (color.RGBA{}) {
		o.BaseFill = black
	}
	if o.QueueSize <= 0 {
		o.QueueSize = 64
	}
}

// ClockOverlay is the clock: one window, one optional background, two labels.
type ClockOverlay struct {
	win  Window
	opts Options

	state    entity.OverlayState
	snapshot entity.TimeSnapshot
	menu     Menu

	mu     sync.Mutex
	queue  []Event
	queueN int // soft limit, ticks only

	generation    uint64
	reloadPending bool
	quit          bool
}

// New builds an overlay on win. fullscreen is the window's initial mode.
func New(win Window, fullscreen bool, opts Options) *ClockOverlay {
	opts.setDefaults()
	return &ClockOverlay{
		win:  win,
		opts: opts,
		state: entity.OverlayState{
			Fullscreen: fullscreen,
			BaseFill:   opts.BaseFill,
			LabelFill:  opts.BaseFill,
		},
		menu:   Menu{Items: DefaultMenuItems},
		queueN: opts.QueueSize,
	}
}

// Start loads the default image if present, shows the first time and
// registers the refresh tick.
func (o *ClockOverlay) Start() error {
	if path := o.opts.DefaultImage; path != "" {
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			_ = o.LoadBackground(path)
		} else {
			log.Debug().Str("path", path).Msg("no default background, keeping base fill")
		}
	}

	o.refresh()

	return o.opts.Scheduler.Every(o.opts.RefreshInterval, func() {
		o.Post(TickEvent())
	})
}

// Post queues ev for the loop and never blocks. Safe from any goroutine.
// Only ticks are dropped, and only once QueueSize events are waiting; the
// next tick reads the clock anyway. Every other event is always queued.
func (o *ClockOverlay) Post(ev Event) bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	if ev.Kind == EventTick && len(o.queue) >= o.queueN {
		log.Debug().Int("queued", len(o.queue)).Msg("event queue full, dropping tick")
		return false
	}
	o.queue = append(o.queue, ev)
	return true
}

// Drain dispatches the events queued so far, in arrival order, and
// returns how many ran. Events posted meanwhile wait for the next Drain.
func (o *ClockOverlay) Drain() int {
	o.mu.Lock()
	pending := o.queue
	o.queue = nil
	o.mu.Unlock()

	for _, ev := range pending {
		o.Dispatch(ev)
	}
	return len(pending)
}

// Dispatch runs one event. Loop goroutine only.
func (o *ClockOverlay) Dispatch(ev Event) {
	switch ev.Kind {
	case EventTick:
		o.refresh()
	case EventGesture:
		o.handleGesture(ev)
	case EventMenuAction:
		o.handleMenuAction(ev.Action)
	case EventReloadBackground:
		o.reloadPending = false
		if o.state.BackgroundPath != "" {
			_ = o.LoadBackground(o.state.BackgroundPath)
		}
	case EventResize:
		o.resize(ev.X, ev.Y)
	default:
		log.Warn().Int("kind", int(ev.Kind)).Msg("unknown event")
	}
}

func (o *ClockOverlay) handleGesture(ev Event) {
	switch ev.Gesture {
	case GestureEscape:
		if o.menu.Open {
			o.menu.close()
			return
		}
		o.ToggleFullscreen()
	case GestureRightClick:
		o.ShowContextMenu(ev.X, ev.Y)
	case GestureLeftClick, GestureDoubleClick:
		if o.menu.Open {
			idx := o.menu.Hit(ev.X, ev.Y)
			o.menu.close()
			if idx >= 0 {
				o.handleMenuAction(o.menu.Items[idx].Action)
			}
			return
		}
		if ev.Gesture == GestureDoubleClick {
			o.Quit()
		}
	}
}

func (o *ClockOverlay) handleMenuAction(a MenuAction) {
	log.Debug().Stringer("action", a).Msg("menu action")
	switch a {
	case ActionChooseBackground:
		o.SelectBackground()
	case ActionQuit:
		o.Quit()
	}
}

func (o *ClockOverlay) refresh() {
	o.snapshot = entity.NewTimeSnapshot(o.opts.Now())
}

// ToggleFullscreen flips the mode and, with a background set, reloads it
// once the window manager has had ReloadDelay to settle.
func (o *ClockOverlay) ToggleFullscreen() {
	o.state.Fullscreen = !o.state.Fullscreen
	o.win.SetFullscreen(o.state.Fullscreen)
	log.Info().Bool("fullscreen", o.state.Fullscreen).Msg("toggled fullscreen")

	if o.state.BackgroundPath != "" {
		o.scheduleReload()
	}
}

func (o *ClockOverlay) scheduleReload() {
	if o.reloadPending {
		return
	}
	o.reloadPending = true
	err := o.opts.Scheduler.After(o.opts.ReloadDelay, func() {
		o.Post(ReloadEvent())
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to schedule background reload, reloading now")
		o.reloadPending = false
		_ = o.LoadBackground(o.state.BackgroundPath)
	}
}

// resize keeps the background the size of the window.
func (o *ClockOverlay) resize(w, h int) {
	if w <= 1 || h <= 1 || (w == o.state.Width && h == o.state.Height) {
		return
	}
	log.Debug().Int("width", w).Int("height", h).Msg("window resized")
	o.state.Width, o.state.Height = w, h
	if o.state.BackgroundPath != "" {
		o.scheduleReload()
	}
}

// LoadBackground installs path scaled to the window. On failure the
// user is told and the overlay falls back to the base fill; the returned
// error is a *backdrop.LoadError and is informational only.
func (o *ClockOverlay) LoadBackground(path string) error {
	w, h := o.win.Size()
	if w <= 1 || h <= 1 {
		// not realized yet
		w, h = o.win.ScreenSize()
	}

	img, err := o.opts.Load(path, w, h)
	if err != nil {
		o.backgroundFailed(path, err)
		return err
	}

	o.state.BackgroundPath = path
	o.state.Background = img
	o.state.Width, o.state.Height = w, h
	// labels sit above the image on the base fill
	o.state.LabelFill = o.state.BaseFill
	o.generation++

	if o.opts.Watcher != nil {
		if err := o.opts.Watcher.Watch(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("failed to watch background file")
		}
	}

	log.Info().
		Str("path", path).
		Int("width", w).
		Int("height", h).
		Msg("background loaded")
	return nil
}

func (o *ClockOverlay) backgroundFailed(path string, err error) {
	var message string
	switch backdrop.KindOf(err) {
	case backdrop.NotFound:
		log.Error().Str("path", path).Msg("background file not found")
		message = "File not found:\n" + path
	default:
		log.Error().Err(err).Str("path", path).Msg("failed to load background image")
		message = "Failed to load image:\n" + err.Error()
	}
	o.opts.Dialogs.ShowError("Error", message)
	o.ClearBackground()
}

// ClearBackground returns to the base fill. Calling it twice is the same
// as calling it once.
func (o *ClockOverlay) ClearBackground() {
	if o.state.Background != nil || o.state.BackgroundPath != "" {
		o.generation++
		log.Info().Msg("background cleared")
	}
	o.state.Background = nil
	o.state.BackgroundPath = ""
	o.state.LabelFill = o.state.BaseFill
	o.reloadPending = false
	if o.opts.Watcher != nil {
		o.opts.Watcher.Unwatch()
	}
}

// SelectBackground asks for a file and loads it. Cancelling changes nothing.
func (o *ClockOverlay) SelectBackground() {
	path, err := o.opts.Dialogs.PickImage()
	if err != nil {
		log.Error().Err(err).Msg("file picker failed")
		return
	}
	if path == "" {
		return
	}
	o.state.BackgroundPath = path
	_ = o.LoadBackground(path)
}

// ShowContextMenu opens the menu at the cursor.
func (o *ClockOverlay) ShowContextMenu(x, y int) {
	w, h := o.win.Size()
	o.menu.openAt(x, y, w, h)
}

// CloseMenu dismisses the menu without running anything.
func (o *ClockOverlay) CloseMenu() {
	o.menu.close()
}

// Quit asks the loop to terminate after the current frame.
func (o *ClockOverlay) Quit() {
	if !o.quit {
		log.Info().Msg("quit requested")
	}
	o.quit = true
}

// State returns a copy of the overlay's state.
func (o *ClockOverlay) State() entity.OverlayState { return o.state }

// Snapshot is the text currently on screen.
func (o *ClockOverlay) Snapshot() entity.TimeSnapshot { return o.snapshot }

// Menu returns a copy of the context menu.
func (o *ClockOverlay) Menu() Menu { return o.menu }

// Quitting reports whether Quit was called.
func (o *ClockOverlay) Quitting() bool { return o.quit }

// Generation changes whenever the background image is replaced or removed,
// so renderers know when to re-upload it.
func (o *ClockOverlay) Generation() uint64 { return o.generation }
