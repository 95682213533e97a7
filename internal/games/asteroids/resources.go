package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// HeadlessResources sizes every sprite from the configuration. Handles are
// the sprite names, which is enough for renderers that draw nothing.
func HeadlessResources(cfg config.AsteroidsConfig) core.StaticResources {
	res := make(core.StaticResources, len(cfg.Sprites))
	for name, s := range cfg.Sprites {
		res[name] = core.Sprite{Handle: name, W: s.Width, H: s.Height}
	}
	return res
}
