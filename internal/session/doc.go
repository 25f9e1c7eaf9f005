// Package session owns the mutable state of one drawing and its replay.
//
// A [Session] starts in the drawing phase, collecting pointer samples. The
// one-way Finish transition analyzes the drawing and switches to the
// reconstruction phase, after which each [Session.Step] produces a [Frame]
// for the renderer. A [Driver] calls Step once per frame on a [Scheduler],
// so tests can replace the display refresh with [ImmediateScheduler].
//
// # Thread Safety
//
// Sessions are NOT thread-safe. Exactly one driver (the TUI update loop or a
// [Driver]) owns a session at a time.
package session
