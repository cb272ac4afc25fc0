// Package tray provides a system tray interface for the Mudra sign recognition system.
package tray

import (
	"sync"

	"github.com/getlantern/systray"
)

// Tray represents the system tray application.
type Tray struct {
	onToggle   func(enabled bool)
	onViewer   func()
	onQuit     func()
	enabled    bool
	mu         sync.RWMutex

	// Menu items stored for later updates
	menuToggle   *systray.MenuItem
	menuLastSign *systray.MenuItem
}

// New creates a new Tray instance with enabled state set to true by default.
func New() *Tray {
	return &Tray{
		enabled: true,
	}
}

// OnToggle sets the callback function to be called when the enabled state is toggled.
func (t *Tray) OnToggle(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnViewer sets the callback function to be called when the viewer menu item is clicked.
func (t *Tray) OnViewer(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onViewer = fn
}

// OnQuit sets the callback function to be called when the quit menu item is clicked.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray application.
// This function blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady is called when the system tray is ready.
// It sets up the menu structure.
func (t *Tray) onReady() {
	systray.SetTitle("Mudra")
	systray.SetTooltip("Mudra Sign Recognition")

	t.menuToggle = systray.AddMenuItem("● Enabled", "Toggle sign recognition")
	systray.AddSeparator()

	t.menuLastSign = systray.AddMenuItem("Last: none", "Last recognized sign")
	t.menuLastSign.Disable()
	systray.AddSeparator()

	menuViewer := systray.AddMenuItem("Open Viewer...", "Open the live viewer in a browser")
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit Mudra")

	// Handle menu item clicks in a separate goroutine
	go func() {
		for {
			select {
			case <-t.menuToggle.ClickedCh:
				t.handleToggle()
			case <-menuViewer.ClickedCh:
				t.handleViewer()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

// onExit is called when the system tray is about to exit.
func (t *Tray) onExit() {
}

// handleToggle handles the toggle menu item click.
func (t *Tray) handleToggle() {
	t.mu.Lock()
	t.enabled = !t.enabled
	enabled := t.enabled

	if enabled {
		t.menuToggle.SetTitle("● Enabled")
	} else {
		t.menuToggle.SetTitle("○ Disabled")
	}

	callback := t.onToggle
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(enabled)
	}
}

// handleViewer handles the viewer menu item click.
func (t *Tray) handleViewer() {
	t.mu.RLock()
	callback := t.onViewer
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

// handleQuit handles the quit menu item click.
func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// Quit exits the tray loop programmatically, as if the quit menu item had
// been clicked. Run returns once the loop unwinds.
func (t *Tray) Quit() {
	systray.Quit()
}

// SetLastSign updates the last sign display in the menu.
func (t *Tray) SetLastSign(name string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuLastSign != nil {
		if name == "" {
			t.menuLastSign.SetTitle("Last: none")
		} else {
			t.menuLastSign.SetTitle("Last: " + name)
		}
	}
}

// IsEnabled returns the current enabled state.
func (t *Tray) IsEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.enabled
}
