package input

import (
	"fmt"

	"github.com/eiannone/keyboard"
)

// Keyboard reads keys from the controlling terminal. Terminals do not report
// key releases, so every press is followed by a release.
type Keyboard struct {
	keymap Keymap
	events chan Event
	done   chan struct{}
}

func NewKeyboard(keymap Keymap) (*Keyboard, error) {
	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}
	k := &Keyboard{
		keymap: keymap,
		events: make(chan Event, 128),
		done:   make(chan struct{}),
	}
	go k.run(keys)
	return k, nil
}

func (k *Keyboard) run(keys <-chan keyboard.KeyEvent) {
	defer close(k.events)
	for {
		select {
		case <-k.done:
			return
		case key, ok := <-keys:
			if !ok || nil != key.Err {
				return
			}
			for _, ev := range k.keymap.translate(key) {
				select {
				case k.events <- ev:
				case <-k.done:
					return
				}
			}
		}
	}
}

func (m Keymap) translate(key keyboard.KeyEvent) []Event {
	switch key.Key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return []Event{{Kind: Quit}}
	case keyboard.KeySpace:
		return m.Rune(' ', false)
	}
	if key.Rune == 0 {
		return nil
	}
	return m.Rune(key.Rune, false)
}

func (k *Keyboard) Events() <-chan Event {
	return k.events
}

func (k *Keyboard) Close() error {
	close(k.done)
	return keyboard.Close()
}
