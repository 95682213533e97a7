package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// minOpacity is the opacity below which a drawable is not painted.
const minOpacity = 0.2

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// arrows are the ship glyphs for the eight 45 degree sectors, starting east.
var arrows = []rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// Renderer paints world-space drawables into a Screen. World units are scaled
// independently per axis so the whole world fits the screen.
type Renderer struct {
	screen *core.Screen
	world  core.Rect
	sx, sy float64
}

// NewRenderer creates a renderer mapping world onto screen.
func NewRenderer(screen *core.Screen, world core.Rect) *Renderer {
	r := &Renderer{screen: screen, world: world}
	r.rescale()
	return r
}

// Resize changes the screen size in cells.
func (r *Renderer) Resize(width, height int) {
	r.screen.Resize(width, height)
	r.rescale()
}

func (r *Renderer) rescale() {
	r.sx, r.sy = 0, 0
	if r.world.W > 0 {
		r.sx = float64(r.screen.Width()) / r.world.W
	}
	if r.world.H > 0 {
		r.sy = float64(r.screen.Height()) / r.world.H
	}
}

// Cell converts a world position to a cell.
func (r *Renderer) Cell(p core.Vec) (x, y int) {
	x = int(math.Floor((p.X - r.world.X) * r.sx))
	y = int(math.Floor((p.Y - r.world.Y) * r.sy))
	return x, y
}

// Screen returns the painted screen.
func (r *Renderer) Screen() *core.Screen {
	return r.screen
}

// Clear blanks the screen.
func (r *Renderer) Clear() {
	r.screen.Clear()
}

// Draw fills the cells covered by the transform with the glyph. Drawables of
// other types and nearly transparent ones are skipped. Interpolation is
// already applied by the caller's positions.
func (r *Renderer) Draw(d core.Drawable, t core.Transform, _ float64) {
	g, ok := d.(Glyph)
	if !ok || t.Opacity < minOpacity {
		return
	}
	color := g.Color
	if t.Tint != core.ColorDefault {
		color = t.Tint
	}
	glyph := g.Rune
	if g.Rotates {
		glyph = arrow(t.Rotation)
	}

	w := max(1, int(math.Round(t.W*r.sx)))
	h := max(1, int(math.Round(t.H*r.sy)))
	cx, cy := r.Cell(t.Position)
	x0, y0 := cx-w/2, cy-h/2
	cell := core.Cell{Rune: glyph, Color: color}
	for y := range h {
		for x := range w {
			r.screen.SetCell(x0+x, y0+y, cell)
		}
	}
}

// DrawText writes text on the row of the anchor, aligned around it.
func (r *Renderer) DrawText(text string, at core.Vec, style core.TextStyle) {
	x, y := r.Cell(at)
	n := len([]rune(text))
	switch style.Align {
	case core.AlignCenter:
		x -= n / 2
	case core.AlignRight:
		x -= n
	}
	r.screen.DrawText(x, y, text, style.Color, style.Bold)
}

// Present does nothing; the Bubble Tea view serializes the screen.
func (r *Renderer) Present() {}

// arrow picks the glyph closest to the rotation.
func arrow(rotation float64) rune {
	sector := int(math.Round(core.NormalizeAngle(rotation)/45)) % len(arrows)
	return arrows[sector]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same style to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != start.Color || cell.Bold != start.Bold {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[start.Color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			if start.Bold {
				style = style.Bold(true)
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
