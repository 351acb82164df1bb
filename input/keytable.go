package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, function keys)
	SpecialKeys map[tcell.Key]IntentType

	// Printable rune bindings
	Runes map[rune]IntentType
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]IntentType{
			tcell.KeyCtrlC:  IntentQuit,
			tcell.KeyEscape: IntentQuit,
			tcell.KeyCtrlS:  IntentSnapshot,
			tcell.KeyUp:     IntentTiltUp,
			tcell.KeyDown:   IntentTiltDown,
			tcell.KeyLeft:   IntentTiltLeft,
			tcell.KeyRight:  IntentTiltRight,
			tcell.KeyHome:   IntentLevel,
		},
		Runes: map[rune]IntentType{
			'q': IntentQuit,
			' ': IntentPause,
			'p': IntentToggleParallax,
			's': IntentCycleSpeed,
			'e': IntentCycleSensitivity,
			'd': IntentCycleDensity,
			't': IntentToggleTime,
			'm': IntentToggleStars,
			'o': IntentToggleOLED,
			'h': IntentToggleHaptics,
			'[': IntentOffsetBack,
			']': IntentOffsetForward,
			'0': IntentLevel,
			'w': IntentToggleWobble,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		SpecialKeys: maps.Clone(kt.SpecialKeys),
		Runes:       maps.Clone(kt.Runes),
	}
}

// Lookup resolves a key event, unbound keys yield IntentNone
func (kt *KeyTable) Lookup(ev *tcell.EventKey) IntentType {
	if ev == nil {
		return IntentNone
	}
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}
