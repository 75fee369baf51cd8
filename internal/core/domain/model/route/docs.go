// Package route contains the Route aggregate: one delivery assignment from a
// warehouse to a client destination, together with its lifecycle status state
// machine. The status transition graph is strict; no transition skips a
// state, and a courier is assigned exactly while the route is not available.
package route
