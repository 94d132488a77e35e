package sprite

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/spaghettifunk/ombra/engine/math"
	"github.com/spaghettifunk/ombra/engine/resources"
)

type SpriteConfig struct {
	// The sprite name used in logs and lookups.
	Name string
	// CacheKey optionally pre-loads a static texture at construction time.
	CacheKey string
	Binding  BindingConfig
	// Collaborators handed through to the texture binding. Any of them may
	// be nil for sprites that have no animation or collision behavior.
	Cache    TextureCache
	Animator Animator
	Body     Body
}

/**
 * @brief A visual entity owning exactly one texture binding.
 *
 * The sprite exposes the mutable frame-bounds record its binding and
 * animator write into; the render pipeline reads position plus frame bounds
 * to place the entity on screen.
 */
type Sprite struct {
	ID       uuid.UUID
	Name     string
	Position math.Vec2

	// FrameBounds is the current renderable frame size in pixels.
	FrameBounds resources.FrameBounds

	binding *TextureBinding
}

func NewSprite(config *SpriteConfig) (*Sprite, error) {
	if config == nil {
		return nil, fmt.Errorf("func NewSprite - config must not be nil")
	}

	s := &Sprite{
		ID:   uuid.New(),
		Name: config.Name,
	}
	s.binding = NewTextureBinding(config.Binding, config.Cache, config.Animator, config.Body, &s.FrameBounds)

	if config.CacheKey != "" {
		if err := s.binding.LoadFromCache(config.CacheKey); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Binding returns the sprite's texture binding. Exactly one exists per
// sprite for its whole lifetime.
func (s *Sprite) Binding() *TextureBinding {
	return s.binding
}

// Extents returns the world-space rectangle currently covered by the sprite.
func (s *Sprite) Extents() math.Extents2D {
	return math.Extents2D{
		Min: s.Position,
		Max: math.Vec2{
			X: s.Position.X + float32(s.FrameBounds.Width),
			Y: s.Position.Y + float32(s.FrameBounds.Height),
		},
	}
}
