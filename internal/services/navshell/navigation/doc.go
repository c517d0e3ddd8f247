// Package navigation derives the navigation bar model from the request's
// route, session state, viewport and the bar's own panel flag.
//
// Everything here is a pure function of its inputs: no I/O, no caching and no
// shared state. Templates render the resulting Bar; handlers supply the inputs.
package navigation
