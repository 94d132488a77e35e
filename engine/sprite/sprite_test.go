package sprite

import (
	"testing"

	"github.com/spaghettifunk/ombra/engine/math"
)

func TestNewSpriteRequiresConfig(t *testing.T) {
	if _, err := NewSprite(nil); err == nil {
		t.Error("nil config must be rejected")
	}
}

func TestNewSpritePreloadsCacheKey(t *testing.T) {
	rec := &recorder{}
	cache := newFakeCache(rec)
	cache.addImage("crate", 64, 32)

	s, err := NewSprite(&SpriteConfig{
		Name:     "crate",
		CacheKey: "crate",
		Cache:    cache,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !s.Binding().Loaded() {
		t.Fatal("sprite with a CacheKey should come up bound")
	}
	if s.FrameBounds.Width != 64 || s.FrameBounds.Height != 32 {
		t.Errorf("frame bounds not populated, got (%d, %d)", s.FrameBounds.Width, s.FrameBounds.Height)
	}
}

func TestNewSpritePreloadSurfacesMiss(t *testing.T) {
	rec := &recorder{}
	cache := newFakeCache(rec)

	_, err := NewSprite(&SpriteConfig{
		Name:     "ghost",
		CacheKey: "ghost",
		Binding:  BindingConfig{ErrorOnMiss: true},
		Cache:    cache,
	})
	if err == nil {
		t.Error("preload miss with ErrorOnMiss must fail construction")
	}
}

func TestSpriteExtents(t *testing.T) {
	rec := &recorder{}
	cache := newFakeCache(rec)
	cache.addImage("crate", 64, 32)

	s, err := NewSprite(&SpriteConfig{Name: "crate", CacheKey: "crate", Cache: cache})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s.Position = math.Vec2{X: 10, Y: 20}

	e := s.Extents()
	if e.Min.X != 10 || e.Min.Y != 20 || e.Max.X != 74 || e.Max.Y != 52 {
		t.Errorf("unexpected extents: %+v", e)
	}
	if e.Width() != 64 || e.Height() != 32 {
		t.Errorf("unexpected extent size: %f x %f", e.Width(), e.Height())
	}
}

func TestSpriteIDsAreUnique(t *testing.T) {
	a, err := NewSprite(&SpriteConfig{Name: "a"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewSprite(&SpriteConfig{Name: "b"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID == b.ID {
		t.Error("two sprites share an ID")
	}
}
