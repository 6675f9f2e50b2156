package label

import (
	"fmt"
	"strings"
)

// Mode selects the order in which keys are handed out.
type Mode string

const (
	ModeAvy     Mode = "avy"
	ModeColemak Mode = "colemak"
	ModeAlpha   Mode = "alpha"
)

// ParseMode converts a config value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(s)) {
	case "", ModeAvy:
		return ModeAvy, nil
	case ModeColemak:
		return ModeColemak, nil
	case ModeAlpha:
		return ModeAlpha, nil
	default:
		return ModeAvy, fmt.Errorf("unknown key mode: %q (expected avy, colemak, or alpha)", s)
	}
}

var digits = []string{"1", "2", "3", "4", "5", "6", "7", "8", "9", "0"}

var modeKeys = map[Mode][]string{
	// qwerty home row first
	ModeAvy: append(strings.Fields("a s d f g h j k l q w e r t y u i o p z x c v b n m"), digits...),
	// colemak home row first
	ModeColemak: append(strings.Fields("a r s t d h n e i o q w f p g j l u y z x c v b k m"), digits...),
	ModeAlpha:   append(strings.Fields("a b c d e f g h i j k l m n o p q r s t u v w x y z"), digits...),
}

// Alphabet is an ordered set of key symbol names.
type Alphabet []string

// NewAlphabet returns symbols in order with blanks and repeats removed.
func NewAlphabet(symbols []string) Alphabet {
	seen := make(map[string]bool, len(symbols))
	a := make(Alphabet, 0, len(symbols))
	for _, s := range symbols {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		a = append(a, s)
	}
	return a
}

// AlphabetFor returns the key order of a mode.
func AlphabetFor(m Mode) Alphabet {
	keys, ok := modeKeys[m]
	if !ok {
		keys = modeKeys[ModeAvy]
	}
	return NewAlphabet(keys)
}

// Contains reports whether sym is part of the alphabet.
func (a Alphabet) Contains(sym string) bool {
	for _, s := range a {
		if s == sym {
			return true
		}
	}
	return false
}

// Without returns a copy of a with the given symbols removed.
func (a Alphabet) Without(symbols ...string) Alphabet {
	drop := make(map[string]bool, len(symbols))
	for _, s := range symbols {
		drop[s] = true
	}
	out := make(Alphabet, 0, len(a))
	for _, s := range a {
		if !drop[s] {
			out = append(out, s)
		}
	}
	return out
}
