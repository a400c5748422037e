package game

import (
	"fmt"
	"strings"
)

// Kind identifies one of the four engines; the set is closed
type Kind uint8

const (
	KindSnake Kind = iota
	KindPong
	KindMemory
	KindTyping
)

// Kinds lists every engine kind in menu order
var Kinds = []Kind{KindSnake, KindPong, KindMemory, KindTyping}

func (k Kind) String() string {
	switch k {
	case KindSnake:
		return "snake"
	case KindPong:
		return "pong"
	case KindMemory:
		return "memory"
	case KindTyping:
		return "typing"
	default:
		return "unknown"
	}
}

// Title is the display name shown above the game area
func (k Kind) Title() string {
	switch k {
	case KindSnake:
		return "Snake Master"
	case KindPong:
		return "Retro Pong"
	case KindMemory:
		return "Memory Match"
	case KindTyping:
		return "Code Typer"
	default:
		return "Unknown"
	}
}

// AutoStart reports whether the engine begins immediately on open
// Snake and Pong wait for an explicit start action
func (k Kind) AutoStart() bool {
	return k == KindMemory || k == KindTyping
}

// ParseKind resolves a kind from its String form, case-insensitive
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, k := range Kinds {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown game %q", s)
}
