// Package visibility decides when the control panel and the floating toggle
// affordance are on screen.
//
// Two idle timers drive it. The menu-idle timer closes an explicitly opened
// panel after MenuIdleTimeout; the pointer-idle timer hides the affordance
// after PointerIdleTimeout without pointer movement. Both live in a shared
// timer.Set, so re-arming one cancels its previous instance.
package visibility

import (
	"time"

	"screenlight/internal/timer"
)

const (
	MenuIdleKey    timer.Key = "menu-idle"
	PointerIdleKey timer.Key = "pointer-idle"

	MenuIdleTimeout    = 3000 * time.Millisecond
	PointerIdleTimeout = 2000 * time.Millisecond
)

// State is the derived visibility shown by the presentation layer. The
// affordance is never visible while the panel is open.
type State struct {
	PanelOpen               bool `json:"panelOpen"`
	ToggleAffordanceVisible bool `json:"toggleAffordanceVisible"`
}

// Controller is the visibility state machine.
type Controller struct {
	timers    *timer.Set
	panelOpen bool
	// affordance is the raw request to show the toggle; the panel masks it.
	affordance bool
}

// New returns a controller in the launch state: panel open, affordance
// hidden, no timers armed.
func New(timers *timer.Set) *Controller {
	return &Controller{timers: timers, panelOpen: true}
}

// State returns the current derived visibility.
func (c *Controller) State() State {
	return State{
		PanelOpen:               c.panelOpen,
		ToggleAffordanceVisible: c.affordance && !c.panelOpen,
	}
}

// OpenPanel shows the panel and (re)arms the menu-idle timer.
func (c *Controller) OpenPanel() {
	c.panelOpen = true
	c.affordance = false
	c.timers.Arm(MenuIdleKey, MenuIdleTimeout)
}

// ClosePanel hides the panel, reveals the affordance and cancels the
// menu-idle timer.
func (c *Controller) ClosePanel() {
	c.panelOpen = false
	c.affordance = true
	c.timers.Cancel(MenuIdleKey)
}

// TogglePanel flips the panel. A panel opened this way is pinned: no
// menu-idle timer is armed, so it stays until closed again.
func (c *Controller) TogglePanel() {
	if c.panelOpen {
		c.ClosePanel()
		return
	}
	c.panelOpen = true
	c.affordance = false
	c.timers.Cancel(MenuIdleKey)
}

// PointerActivity reveals the affordance and (re)arms the pointer-idle
// timer. It never changes whether the panel is open.
func (c *Controller) PointerActivity() {
	c.affordance = true
	c.timers.Arm(PointerIdleKey, PointerIdleTimeout)
}

// Fire applies an expired timer. It reports false for timers the controller
// does not own and for stale instances.
func (c *Controller) Fire(t timer.Timer) bool {
	switch t.Key {
	case MenuIdleKey:
		if !c.timers.Claim(t) {
			return false
		}
		c.panelOpen = false
		c.affordance = true
		return true
	case PointerIdleKey:
		if !c.timers.Claim(t) {
			return false
		}
		if !c.panelOpen {
			c.affordance = false
		}
		return true
	default:
		return false
	}
}
