package gamedata

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ParseHexColor converts a hex color string (e.g., "#1F4E86" or "1F4E86") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	digits := strings.TrimPrefix(hex, "#")
	if len(digits) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %q", hex)
	}
	rgb, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return tcell.NewHexColor(int32(rgb)), nil
}

// tileStyle builds a style from optional foreground and background hex
// colors. Empty strings keep the default.
func tileStyle(fg, bg string) (tcell.Style, error) {
	style := tcell.StyleDefault
	if fg != "" {
		c, err := ParseHexColor(fg)
		if err != nil {
			return style, err
		}
		style = style.Foreground(c)
	}
	if bg != "" {
		c, err := ParseHexColor(bg)
		if err != nil {
			return style, err
		}
		style = style.Background(c)
	}
	return style, nil
}
