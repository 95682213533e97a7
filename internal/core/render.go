package core

// Drawable is an opaque handle produced by a ResourceProvider and consumed by
// the Renderer that understands it.
type Drawable any

// Sprite is a drawable handle together with its size in world units.
// The core only uses the size to dimension bounding boxes.
type Sprite struct {
	Handle Drawable
	W, H   float64
}

// ResourceProvider resolves resource names to sprites.
type ResourceProvider interface {
	Sprite(name string) (Sprite, error)
}

// Transform places a drawable in the world.
type Transform struct {
	Position Vec
	Rotation float64 // degrees, counter-clockwise
	Opacity  float64 // 0 transparent .. 1 opaque
	Tint     Color   // ColorDefault keeps the sprite's own colour
	W, H     float64 // extent in world units
}

// TextAlign controls horizontal placement of text relative to its anchor.
type TextAlign int

const (
	AlignCenter TextAlign = iota
	AlignLeft
	AlignRight
)

// TextStyle describes how a line of text is painted.
type TextStyle struct {
	Color Color
	Bold  bool
	Align TextAlign
}

// Renderer paints drawables and text. The core never reads pixels back.
type Renderer interface {
	// Clear prepares a new frame.
	Clear()
	// Draw paints a drawable with the given transform. interpolation is the
	// fraction of a tick elapsed since the last simulation step.
	Draw(d Drawable, t Transform, interpolation float64)
	// DrawText paints text anchored at a world position.
	DrawText(text string, at Vec, style TextStyle)
	// Present finishes the frame.
	Present()
}
