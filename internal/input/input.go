// Package input supplies the abort capability the playback loop polls.
package input

import (
	"fmt"
	"log"

	"github.com/eiannone/keyboard"
)

// Never is the abort source for headless runs.
func Never() bool { return false }

// Keyboard opens the terminal keyboard and returns a non-blocking poll
// that fires on Escape, q or Ctrl-C, plus a restore function to hand the
// terminal back.
func Keyboard() (poll func() bool, restore func(), err error) {
	keys, err := keyboard.GetKeys(16)
	if nil != err {
		return nil, nil, fmt.Errorf("unable to open keyboard: %w", err)
	}

	poll = func() bool {
		for i := 0; i < len(keys); i++ {
			key := <-keys
			if nil != key.Err {
				continue
			}
			if key.Key == keyboard.KeyEsc || key.Key == keyboard.KeyCtrlC || key.Rune == 'q' {
				return true
			}
		}
		return false
	}
	restore = func() {
		if err := keyboard.Close(); nil != err {
			log.Println("unable to close keyboard", err)
		}
	}
	return poll, restore, nil
}
