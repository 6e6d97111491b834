// Package input turns keyboard, evdev and terminal events into lane events.
package input

import (
	"errors"
	"fmt"
	"unicode"
)

type Kind uint8

const (
	Activate Kind = iota
	Release
	Quit
	Restart
)

type Event struct {
	Kind Kind
	Lane int // Only set for Activate and Release
}

// Target receives lane events, normally a session.
type Target interface {
	Activate(lane int)
	Release(lane int)
}

// Dispatch forwards a lane event to target and reports whether it did.
// Control events are left to the caller.
func Dispatch(ev Event, target Target) bool {
	switch ev.Kind {
	case Activate:
		target.Activate(ev.Lane)
	case Release:
		target.Release(ev.Lane)
	default:
		return false
	}
	return true
}

const DefaultKeys = "dfjk"

var ErrKeymap = errors.New("input: invalid keymap")

// Keymap holds one key per lane, left to right.
type Keymap []rune

func ParseKeymap(keys string, lanes int) (Keymap, error) {
	m := Keymap{}
	seen := map[rune]bool{}
	for _, r := range keys {
		r = unicode.ToLower(r)
		if seen[r] {
			return nil, fmt.Errorf("%w: %q is bound twice", ErrKeymap, r)
		}
		seen[r] = true
		m = append(m, r)
	}
	if len(m) != lanes {
		return nil, fmt.Errorf("%w: %d keys for %d lanes", ErrKeymap, len(m), lanes)
	}
	return m, nil
}

// Lane returns the lane bound to r, or -1.
func (m Keymap) Lane(r rune) int {
	r = unicode.ToLower(r)
	for i, k := range m {
		if k == r {
			return i
		}
	}
	return -1
}

// Rune maps a printable key to events. Lane keys win over the control keys,
// and a key without a release event is followed by a synthetic one.
func (m Keymap) Rune(r rune, releases bool) []Event {
	if lane := m.Lane(r); lane >= 0 {
		if releases {
			return []Event{{Kind: Activate, Lane: lane}}
		}
		return []Event{{Kind: Activate, Lane: lane}, {Kind: Release, Lane: lane}}
	}
	switch unicode.ToLower(r) {
	case 'q':
		return []Event{{Kind: Quit}}
	case 'r':
		return []Event{{Kind: Restart}}
	}
	return nil
}
