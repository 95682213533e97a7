package tui

import (
	"errors"
	"unicode/utf8"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// shipSprite is drawn as an arrow pointing along its rotation.
const shipSprite = "ship"

var errEmptyGlyph = errors.New("empty glyph")

// Glyph is the drawable the terminal renderer understands.
type Glyph struct {
	Rune    rune
	Color   core.Color
	Rotates bool
}

// Sprites resolves sprite names to glyphs from the sprites section of the
// configuration.
type Sprites struct {
	table map[string]config.SpriteConfig
}

// NewSprites creates the provider.
func NewSprites(sprites map[string]config.SpriteConfig) *Sprites {
	return &Sprites{table: sprites}
}

// Sprite implements core.ResourceProvider.
func (s *Sprites) Sprite(name string) (core.Sprite, error) {
	sc, ok := s.table[name]
	if !ok {
		return core.Sprite{}, &core.ConfigurationError{Op: "tui.sprite", Name: name, Err: errors.New("unknown sprite")}
	}
	r, size := utf8.DecodeRuneInString(sc.Glyph)
	if size == 0 {
		return core.Sprite{}, &core.ConfigurationError{Op: "tui.sprite", Name: name, Err: errEmptyGlyph}
	}
	color, _ := core.ParseColor(sc.Color)
	return core.Sprite{
		Handle: Glyph{Rune: r, Color: color, Rotates: name == shipSprite},
		W:      sc.Width,
		H:      sc.Height,
	}, nil
}
