// Package viz replays a computed response history in the terminal.
//
// The package implements a playback TUI using the Bubble Tea framework:
//
//   - [Model]: portal-frame animation driven by the stored displacement track
//   - [Canvas]: Braille-based pixel canvas for high-fidelity rendering
//
// # Key Bindings
//
//	Space - Pause/Resume playback
//	R     - Restart from the top
//	[]    - Scrub one sample back/forward
//	+/-   - Change playback speed
//	?     - Show help overlay
package viz
