// Package tui is the terminal surface of screenlight: the whole terminal is
// painted in the light's color, with a small control panel on top.
//
// # Architecture
//
// The TUI follows a Model-View-Controller (MVC) pattern:
//
//   - Model (internal/tui/model/): the session, the log buffer and the
//     overlay mode
//   - View (internal/tui/view/): layout, hit-testing and rendering
//   - Controller (internal/tui/controller/): key and mouse input, timers
//     and the Bubble Tea program lifecycle
//
// # Message Flow
//
//  1. Keys, mouse events and timer ticks arrive as Bubble Tea messages
//  2. The controller turns them into session events
//  3. The session returns effects: timers to arm, capability calls to run
//     and wake locks to watch
//  4. The controller runs each effect as a tea.Cmd whose result is fed back
//     as the next event
//  5. The view renders the updated state
//
// # Keyboard
//
//   - ←/→: color temperature
//   - ↑/↓, pgup/pgdown: brightness
//   - space/m: show the panel, esc: hide it
//   - w: keep the screen on, f: fullscreen
//   - y: copy the color as hex
//   - h/?: help, L: log viewer
//   - q/Ctrl+C: quit
//
// Vertical swipes outside the panel change brightness; a double tap opens
// the panel. Components shared by the views live in internal/tui/components,
// and the colors and spacing they use in internal/tui/design.
package tui
