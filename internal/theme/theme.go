package theme

import (
	"fmt"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// StyleDef is a glyph with hex colours as written in a theme file.
// Empty colours leave the terminal default in place.
type StyleDef struct {
	Glyph string `json:"glyph"`
	FG    string `json:"fg"`
	BG    string `json:"bg"`
}

// TileDefs holds the tile styles of a theme file.
type TileDefs struct {
	Hidden    StyleDef `json:"hidden"`
	Flag      StyleDef `json:"flag"`
	WrongFlag StyleDef `json:"wrong_flag"`
	Mine      StyleDef `json:"mine"`
	Exploded  StyleDef `json:"exploded"`
	Empty     StyleDef `json:"empty"`
}

// Definition is the on-disk form of a theme.
type Definition struct {
	Name   string   `json:"name"`
	Text   StyleDef `json:"text"`
	Accent StyleDef `json:"accent"`
	Cursor string   `json:"cursor"`
	Tiles  TileDefs `json:"tiles"`
	// Digits are the foreground colours for adjacency counts 1 through 8.
	Digits []string `json:"digits"`
}

// Cell is a resolved glyph and style.
type Cell struct {
	Glyph rune
	Style tcell.Style
}

// Theme is a resolved theme ready for drawing.
type Theme struct {
	Name      string
	Text      tcell.Style
	Accent    tcell.Style
	Cursor    tcell.Color
	Hidden    Cell
	Flag      Cell
	WrongFlag Cell
	Mine      Cell
	Exploded  Cell
	Empty     Cell
	// Digits[n-1] draws a revealed tile with n adjacent mines.
	Digits [8]Cell
}

// Digit returns the cell for a revealed tile with n adjacent mines.
func (t *Theme) Digit(n int) Cell {
	if n < 1 || n > len(t.Digits) {
		return t.Empty
	}
	return t.Digits[n-1]
}

// Resolve parses every colour and glyph in the definition.
func (s Definition) Resolve() (*Theme, error) {
	if len(s.Digits) != 8 {
		return nil, fmt.Errorf("theme %s: want 8 digit colours, got %d", s.Name, len(s.Digits))
	}

	t := &Theme{Name: s.Name}
	var err error

	if t.Text, err = s.Text.style(); err != nil {
		return nil, fmt.Errorf("theme %s: text: %w", s.Name, err)
	}
	if t.Accent, err = s.Accent.style(); err != nil {
		return nil, fmt.Errorf("theme %s: accent: %w", s.Name, err)
	}
	if t.Cursor, err = ParseHexColor(s.Cursor); err != nil {
		return nil, fmt.Errorf("theme %s: cursor: %w", s.Name, err)
	}

	tiles := []struct {
		key string
		def StyleDef
		dst *Cell
	}{
		{"hidden", s.Tiles.Hidden, &t.Hidden},
		{"flag", s.Tiles.Flag, &t.Flag},
		{"wrong_flag", s.Tiles.WrongFlag, &t.WrongFlag},
		{"mine", s.Tiles.Mine, &t.Mine},
		{"exploded", s.Tiles.Exploded, &t.Exploded},
		{"empty", s.Tiles.Empty, &t.Empty},
	}
	for _, tile := range tiles {
		c, err := tile.def.cell()
		if err != nil {
			return nil, fmt.Errorf("theme %s: tile %s: %w", s.Name, tile.key, err)
		}
		*tile.dst = c
	}

	// Digits share the revealed background of the empty tile.
	for i, hex := range s.Digits {
		fg, err := ParseHexColor(hex)
		if err != nil {
			return nil, fmt.Errorf("theme %s: digit %d: %w", s.Name, i+1, err)
		}
		t.Digits[i] = Cell{
			Glyph: rune('1' + i),
			Style: t.Empty.Style.Foreground(fg).Bold(true),
		}
	}

	return t, nil
}

func (s StyleDef) style() (tcell.Style, error) {
	style := tcell.StyleDefault
	if s.FG != "" {
		fg, err := ParseHexColor(s.FG)
		if err != nil {
			return style, fmt.Errorf("fg: %w", err)
		}
		style = style.Foreground(fg)
	}
	if s.BG != "" {
		bg, err := ParseHexColor(s.BG)
		if err != nil {
			return style, fmt.Errorf("bg: %w", err)
		}
		style = style.Background(bg)
	}
	return style, nil
}

func (s StyleDef) cell() (Cell, error) {
	if utf8.RuneCountInString(s.Glyph) != 1 {
		return Cell{}, fmt.Errorf("glyph %q must be a single character", s.Glyph)
	}
	style, err := s.style()
	if err != nil {
		return Cell{}, err
	}
	r, _ := utf8.DecodeRuneInString(s.Glyph)
	return Cell{Glyph: r, Style: style}, nil
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "#F00") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b)), nil
}
