// Package viz provides the terminal interface for drawing and watching
// epicycle reconstructions.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Menu]: start screen to pick a built-in shape or freehand drawing
//   - [Model]: drawing canvas and live reconstruction with stats panel
//   - [Canvas]: Braille-based pixel canvas, composed in colored [Layer]s
//   - Theme selection with 5 built-in color schemes
//
// # Key Bindings
//
//	Mouse - Hold the left button to draw
//	Space - Done drawing, start the reconstruction
//	X/Y/P - Pause, resume, toggle pause
//	0-9   - Reveal that many epicycles (0 for all)
//	R     - Restart the period
//	T     - Cycle color themes
//	S     - Save an SVG snapshot
//	G     - Toggle GIF recording
//	?     - Show help overlay
package viz
