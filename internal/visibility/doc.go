// Package visibility tracks when laid-out page sections scroll into and out of
// view and turns those transitions into entrance-animation callbacks.
//
// The package is layered leaf-first:
//
//   - Classifier decides whether the current viewport is "mobile" and caches
//     the answer until the width changes.
//   - Observer wraps a platform intersection primitive with mobile/desktop
//     presets, an optional debounce, and state diffing so callers only hear
//     about real transitions.
//   - IsScrolledPast and CheckInitialVisibility are the geometry helpers.
//   - ObserveSection, CreateSectionObserver and ObserveRedraw compose the
//     pieces into the entry points views use.
//
// Everything runs on a single goroutine. Deferred work (debounce countdowns,
// next-frame checks) goes through a Scheduler; Loop is the virtual-time
// implementation the terminal client drives from its update loop. None of the
// types in this package are safe for concurrent use.
package visibility
