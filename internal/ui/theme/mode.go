package theme

import (
	"fmt"
	"strings"
)

// PreferenceKey is the preference name the chosen mode is stored under.
const PreferenceKey = "theme"

// Mode is the user's theme choice.
type Mode string

const (
	ModeLight  Mode = "light"
	ModeDark   Mode = "dark"
	ModeSystem Mode = "system"
)

// ParseMode converts a stored or typed value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeLight, ModeDark, ModeSystem:
		return m, nil
	default:
		return "", fmt.Errorf("unknown theme mode %q", s)
	}
}

// Toggle flips between light and dark. Light becomes dark; any other
// mode, system included, becomes light.
func Toggle(m Mode) Mode {
	if m == ModeLight {
		return ModeDark
	}
	return ModeLight
}

// Resolve decides whether the dark palette applies. System mode follows
// the terminal background.
func Resolve(m Mode, darkBackground bool) bool {
	switch m {
	case ModeLight:
		return false
	case ModeDark:
		return true
	default:
		return darkBackground
	}
}

// PaletteFor returns the palette for a mode on the given background.
func PaletteFor(m Mode, darkBackground bool) Palette {
	if Resolve(m, darkBackground) {
		return Dark
	}
	return Light
}
