// SPDX-License-Identifier: MIT
// Package: session
//
// state.go — lifecycle states.

package session

// State is the lifecycle position of a Session.
type State int

const (
	StateConstructed State = iota
	StateEnlarged
	StateInitialized
	StateExchanged
	StateJittered
	StateExported
)

var stateNames = [...]string{
	StateConstructed: "constructed",
	StateEnlarged:    "enlarged",
	StateInitialized: "initialized",
	StateExchanged:   "exchanged",
	StateJittered:    "jittered",
	StateExported:    "exported",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "unknown"
}

// hasRecord reports whether the record is current in this state.
func (s State) hasRecord() bool {
	return s >= StateInitialized
}
