package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func newRenderer() *Renderer {
	// 10 world units per cell on both axes.
	return NewRenderer(core.NewScreen(40, 20), core.NewRect(0, 0, 400, 200))
}

func TestRendererScalesWorldToCells(t *testing.T) {
	r := newRenderer()
	x, y := r.Cell(core.Vec{X: 205, Y: 99})
	assert.Equal(t, 20, x)
	assert.Equal(t, 9, y)

	r.Resize(80, 40)
	x, y = r.Cell(core.Vec{X: 205, Y: 99})
	assert.Equal(t, 41, x)
	assert.Equal(t, 19, y)
}

func TestRendererFillsExtent(t *testing.T) {
	r := newRenderer()
	r.Draw(Glyph{Rune: '@', Color: core.ColorWhite}, core.Transform{
		Position: core.Vec{X: 100, Y: 100},
		Opacity:  1,
		W:        30,
		H:        30,
	}, 0)

	s := r.Screen()
	for y := 9; y <= 11; y++ {
		for x := 9; x <= 11; x++ {
			assert.Equal(t, '@', s.Get(x, y), "cell %d,%d", x, y)
		}
	}
	assert.Equal(t, ' ', s.Get(8, 10))
	assert.Equal(t, ' ', s.Get(12, 10))
}

func TestRendererTintAndOpacity(t *testing.T) {
	r := newRenderer()
	g := Glyph{Rune: '.', Color: core.ColorRed}

	r.Draw(g, core.Transform{Position: core.Vec{X: 50, Y: 50}, Opacity: 1, Tint: core.ColorOrange}, 0)
	assert.Equal(t, core.ColorOrange, r.Screen().GetCell(5, 5).Color)

	r.Draw(g, core.Transform{Position: core.Vec{X: 150, Y: 50}, Opacity: 0.1}, 0)
	assert.Equal(t, ' ', r.Screen().Get(15, 5), "faded smoke is not painted")

	r.Draw("not a glyph", core.Transform{Position: core.Vec{X: 250, Y: 50}, Opacity: 1}, 0)
	assert.Equal(t, ' ', r.Screen().Get(25, 5))
}

func TestRendererShipArrow(t *testing.T) {
	tests := []struct {
		rotation float64
		want     rune
	}{
		{0, '→'},
		{90, '↑'},
		{135, '↖'},
		{180, '←'},
		{270, '↓'},
		{350, '→'},
		{-45, '↘'},
	}
	for _, tt := range tests {
		r := newRenderer()
		r.Draw(Glyph{Rune: 'A', Rotates: true}, core.Transform{Position: core.Vec{X: 5, Y: 5}, Rotation: tt.rotation, Opacity: 1}, 0)
		assert.Equal(t, tt.want, r.Screen().Get(0, 0), "rotation %v", tt.rotation)
	}
}

func TestRendererTextAlignment(t *testing.T) {
	r := newRenderer()
	r.DrawText("MID", core.Vec{X: 200, Y: 0}, core.TextStyle{Align: core.AlignCenter})
	r.DrawText("L", core.Vec{X: 0, Y: 10}, core.TextStyle{Align: core.AlignLeft})
	r.DrawText("END", core.Vec{X: 400, Y: 20}, core.TextStyle{Align: core.AlignRight, Bold: true})

	s := r.Screen()
	assert.Equal(t, "MID", s.Row(0)[19:22])
	assert.Equal(t, 'L', s.Get(0, 1))
	assert.Equal(t, "END", s.Row(2)[37:40])
	assert.True(t, s.GetCell(39, 2).Bold)
}

func TestRenderScreenKeepsText(t *testing.T) {
	r := newRenderer()
	r.DrawText("SCORE 100", core.Vec{X: 0, Y: 0}, core.TextStyle{Color: core.ColorYellow, Align: core.AlignLeft})
	out := RenderScreen(r.Screen())
	assert.Contains(t, out, "SCORE 100")
}

func TestSpritesFromConfig(t *testing.T) {
	cfg := config.Default()
	sprites := NewSprites(cfg.Sprites)

	for _, name := range cfg.SpriteNames() {
		s, err := sprites.Sprite(name)
		require.NoError(t, err, name)
		assert.IsType(t, Glyph{}, s.Handle)
		assert.Equal(t, cfg.Sprites[name].Width, s.W)
	}

	ship, err := sprites.Sprite("ship")
	require.NoError(t, err)
	assert.True(t, ship.Handle.(Glyph).Rotates)
	assert.Equal(t, core.ColorCyan, ship.Handle.(Glyph).Color)

	_, err = sprites.Sprite("ufo")
	var cfgErr *core.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "ufo", cfgErr.Name)

	_, err = NewSprites(map[string]config.SpriteConfig{"x": {Width: 1, Height: 1}}).Sprite("x")
	assert.ErrorIs(t, err, errEmptyGlyph)
}
