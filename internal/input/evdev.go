package input

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// Values from linux/input-event-codes.h
const (
	evKey = 0x01

	keyEsc   = 1
	keySpace = 57
)

var letterCodes = map[rune]uint16{
	'q': 16, 'w': 17, 'e': 18, 'r': 19, 't': 20, 'y': 21, 'u': 22, 'i': 23, 'o': 24, 'p': 25,
	'a': 30, 's': 31, 'd': 32, 'f': 33, 'g': 34, 'h': 35, 'j': 36, 'k': 37, 'l': 38,
	'z': 44, 'x': 45, 'c': 46, 'v': 47, 'b': 48, 'n': 49, 'm': 50,
	' ': keySpace,
}

// keyEvent is struct input_event on 64 bit linux.
type keyEvent struct {
	Sec, Usec int64
	Type      uint16
	Code      uint16
	Value     int32
}

// Evdev reads a /dev/input device, which reports real key releases.
type Evdev struct {
	keymap Keymap
	file   io.ReadCloser
	events chan Event
	runes  map[uint16]rune
}

func NewEvdev(device string, keymap Keymap) (*Evdev, error) {
	file, err := os.Open(device)
	if nil != err {
		return nil, fmt.Errorf("unable to open %s: %w", device, err)
	}
	return newEvdev(file, keymap), nil
}

func newEvdev(r io.ReadCloser, keymap Keymap) *Evdev {
	e := &Evdev{
		keymap: keymap,
		file:   r,
		events: make(chan Event, 128),
		runes:  make(map[uint16]rune, len(letterCodes)),
	}
	for key, code := range letterCodes {
		e.runes[code] = key
	}
	go e.run()
	return e
}

func (e *Evdev) run() {
	defer close(e.events)
	var ev keyEvent
	for {
		err := binary.Read(e.file, binary.LittleEndian, &ev)
		if nil != err {
			return
		}
		for _, out := range e.translate(ev) {
			e.events <- out
		}
	}
}

func (e *Evdev) translate(ev keyEvent) []Event {
	if ev.Type != evKey {
		return nil
	}
	if ev.Code == keyEsc {
		if ev.Value == 1 {
			return []Event{{Kind: Quit}}
		}
		return nil
	}
	r, ok := e.runes[ev.Code]
	if !ok {
		return nil
	}
	switch ev.Value {
	case 1:
		return e.keymap.Rune(r, true)
	case 0:
		if lane := e.keymap.Lane(r); lane >= 0 {
			return []Event{{Kind: Release, Lane: lane}}
		}
	}
	// Auto repeat
	return nil
}

func (e *Evdev) Events() <-chan Event {
	return e.events
}

func (e *Evdev) Close() error {
	err := e.file.Close()
	if errors.Is(err, os.ErrClosed) {
		return nil
	}
	return err
}
