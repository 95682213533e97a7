package core

import "errors"

var errUnknownSprite = errors.New("unknown sprite")

// StaticResources is a ResourceProvider backed by a fixed table.
type StaticResources map[string]Sprite

// Sprite returns the named sprite or a ConfigurationError.
func (r StaticResources) Sprite(name string) (Sprite, error) {
	s, ok := r[name]
	if !ok {
		return Sprite{}, &ConfigurationError{Op: "resources.sprite", Name: name, Err: errUnknownSprite}
	}
	return s, nil
}
