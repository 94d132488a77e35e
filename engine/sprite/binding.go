package sprite

import (
	"fmt"

	"github.com/spaghettifunk/ombra/engine/canvas"
	"github.com/spaghettifunk/ombra/engine/core"
	"github.com/spaghettifunk/ombra/engine/math"
	"github.com/spaghettifunk/ombra/engine/resources"
)

// BackendKind tags the active pixel source of a binding. A binding starts
// unbound and, once loaded, only ever moves between the static and dynamic
// kinds; there is no unbind operation.
type BackendKind uint8

const (
	BackendUnbound BackendKind = iota
	BackendStatic
	BackendDynamic
)

func (k BackendKind) String() string {
	switch k {
	case BackendStatic:
		return "static"
	case BackendDynamic:
		return "dynamic"
	default:
		return "unbound"
	}
}

// Surface is the one capability both backend shapes share: reporting their
// pixel dimensions. Dimension queries dispatch through it so the two shapes
// never need separate read paths.
type Surface interface {
	Size() (uint32, uint32)
}

// TextureCache is the resource-cache collaborator. GetImage returns nil on a
// miss and must never block on I/O; residency is the cache's own concern.
type TextureCache interface {
	GetImage(key string) *resources.Texture
	IsMultiFrame(key string) bool
	GetFrameData(key string) *resources.FrameData
}

// Animator is the animation-subsystem collaborator keeping frame metadata
// consistent with the active backend.
type Animator interface {
	HasFrameData() bool
	DiscardFrameData()
	LoadFrameData(fd *resources.FrameData)
}

// Body is the physics collaborator whose bounds optionally track the bound
// surface dimensions.
type Body interface {
	SetBounds(width, height uint32)
}

// BindingConfig controls binding-wide policies.
type BindingConfig struct {
	// ErrorOnMiss surfaces cache misses from LoadFromCache as
	// core.ErrTextureNotFound instead of silently leaving state unchanged.
	ErrorOnMiss bool
}

// LoadOptions tunes a single LoadFromCacheWith call. The zero value keeps
// the default behavior: discard stale frame data and sync the physics body.
type LoadOptions struct {
	// KeepFrameData suppresses the discard of existing animation frame data.
	KeepFrameData bool
	// SkipBodySync leaves the physics body bounds untouched.
	SkipBodySync bool
}

/**
 * @brief The texture-binding record of a sprite.
 *
 * A TextureBinding selects exactly one pixel source for its sprite: a
 * cache-resident static texture or a dynamic off-screen buffer. It keeps the
 * sprite's frame bounds, animation frame data and (optionally) physics body
 * bounds consistent whenever the source changes. It borrows the surface it
 * binds; resource lifetime belongs to the cache or the buffer's creator.
 */
type TextureBinding struct {
	kind     BackendKind
	surface  Surface
	cacheKey string

	// Rendering hints, orthogonal to the backend choice.
	Opacity                float32
	FlipHorizontal         bool
	FlipVertical           bool
	AllowRotationRendering bool

	config   BindingConfig
	cache    TextureCache
	animator Animator
	body     Body
	bounds   *resources.FrameBounds
}

// NewTextureBinding wires a binding to its collaborators. cache, animator and
// body may be nil when the owning sprite has no use for them; bounds is the
// sprite's frame-bounds record this binding writes into.
func NewTextureBinding(config BindingConfig, cache TextureCache, animator Animator, body Body, bounds *resources.FrameBounds) *TextureBinding {
	return &TextureBinding{
		kind:     BackendUnbound,
		Opacity:  1.0,
		config:   config,
		cache:    cache,
		animator: animator,
		body:     body,
		bounds:   bounds,
	}
}

// Loaded reports whether a backend is bound.
func (b *TextureBinding) Loaded() bool {
	return b.kind != BackendUnbound
}

// IsDynamic reports whether the active backend is an off-screen buffer.
// It is derived from the backend tag and has no independent state.
func (b *TextureBinding) IsDynamic() bool {
	return b.kind == BackendDynamic
}

// Kind returns the active backend tag.
func (b *TextureBinding) Kind() BackendKind {
	return b.kind
}

// CacheKey returns the key of the bound static texture, or the empty string
// when the backend is dynamic or unbound.
func (b *TextureBinding) CacheKey() string {
	return b.cacheKey
}

// Surface returns the active drawable surface, nil when unbound.
func (b *TextureBinding) Surface() Surface {
	return b.surface
}

// StaticTexture returns the bound cache texture, or nil when the backend is
// not static.
func (b *TextureBinding) StaticTexture() *resources.Texture {
	if b.kind != BackendStatic {
		return nil
	}
	return b.surface.(*resources.Texture)
}

// Buffer returns the bound dynamic buffer, or nil when the backend is not
// dynamic.
func (b *TextureBinding) Buffer() *canvas.Buffer {
	if b.kind != BackendDynamic {
		return nil
	}
	return b.surface.(*canvas.Buffer)
}

// Width returns the active surface width. Unbound bindings report 0; check
// Loaded to distinguish a zero-sized surface from no surface at all.
func (b *TextureBinding) Width() uint32 {
	w, _ := b.Size()
	return w
}

// Height returns the active surface height. Unbound bindings report 0.
func (b *TextureBinding) Height() uint32 {
	_, h := b.Size()
	return h
}

// Size reads the dimensions through to the live surface; nothing is cached.
// Unbound bindings report (0, 0).
func (b *TextureBinding) Size() (uint32, uint32) {
	if b.surface == nil {
		return 0, 0
	}
	return b.surface.Size()
}

// SetOpacity clamps v to [0, 1] and stores it.
func (b *TextureBinding) SetOpacity(v float32) {
	b.Opacity = math.Clamp(v, 0.0, 1.0)
}

/**
 * @brief Resolves a cache key into a bound static backend with default
 * load behavior: existing frame data is discarded and the physics body is
 * synchronized. See LoadFromCacheWith.
 */
func (b *TextureBinding) LoadFromCache(key string) error {
	return b.LoadFromCacheWith(key, LoadOptions{})
}

/**
 * @brief Resolves a cache key into a bound static backend.
 *
 * On a cache miss nothing changes: the previous backend, dimensions and
 * frame data all stay valid. By default the miss is silent and the caller
 * checks Loaded afterwards; with BindingConfig.ErrorOnMiss the miss is
 * returned as core.ErrTextureNotFound instead.
 *
 * On a hit, stale frame data is discarded strictly before the backend swap,
 * then the new source is committed and dependent state synchronized: frame
 * metadata to the animator for multi-frame keys, frame bounds straight from
 * the image dimensions otherwise, and body bounds unless opted out.
 */
func (b *TextureBinding) LoadFromCacheWith(key string, opts LoadOptions) error {
	if b.cache == nil {
		core.LogWarn("texture binding has no cache, cannot load '%s'", key)
		return nil
	}

	tex := b.cache.GetImage(key)
	if tex == nil {
		if b.config.ErrorOnMiss {
			return fmt.Errorf("load '%s': %w", key, core.ErrTextureNotFound)
		}
		core.LogDebug("cache miss for texture '%s', binding left unchanged", key)
		return nil
	}

	// Stale frame data must never reference the new backend's geometry, so
	// the discard happens before the swap.
	if !opts.KeepFrameData && b.animator != nil && b.animator.HasFrameData() {
		b.animator.DiscardFrameData()
	}

	b.bind(tex, BackendStatic)
	b.cacheKey = key

	if b.cache.IsMultiFrame(key) {
		fd := b.cache.GetFrameData(key)
		if b.animator != nil {
			b.animator.LoadFrameData(fd)
		}
		// The body tracks a single renderable frame, not the whole sheet.
		if !opts.SkipBodySync && b.body != nil && fd != nil {
			b.body.SetBounds(fd.FrameWidth, fd.FrameHeight)
		}
	} else {
		w, h := tex.Size()
		b.syncBounds(w, h, !opts.SkipBodySync)
	}

	b.fireBound(key)
	return nil
}

/**
 * @brief Binds a dynamic off-screen buffer.
 *
 * Existing frame data is always discarded; a buffer has no frame slicing.
 * Frame bounds follow the buffer dimensions. The physics body is never
 * touched on this path.
 */
func (b *TextureBinding) LoadFromBuffer(buffer *canvas.Buffer) {
	if b.animator != nil && b.animator.HasFrameData() {
		b.animator.DiscardFrameData()
	}

	b.bind(buffer, BackendDynamic)
	b.cacheKey = ""

	w, h := buffer.Size()
	b.syncBounds(w, h, false)

	b.fireBound("")
}

// bind commits the backend swap: the previous surface reference is dropped,
// never freed. A nil surface or the unbound tag is a programmer error.
func (b *TextureBinding) bind(surface Surface, kind BackendKind) {
	if surface == nil || kind == BackendUnbound {
		panic("sprite: bind requires exactly one non-nil backend surface")
	}
	b.surface = surface
	b.kind = kind
}

// syncBounds propagates dimensions to the sprite's frame bounds and, when
// requested, the physics body. Pure assignment, idempotent.
func (b *TextureBinding) syncBounds(width, height uint32, updateBody bool) {
	if b.bounds != nil {
		b.bounds.Width = width
		b.bounds.Height = height
	}
	if updateBody && b.body != nil {
		b.body.SetBounds(width, height)
	}
}

func (b *TextureBinding) fireBound(key string) {
	ctx := core.EventContext{}
	ctx.Data.U32[0], ctx.Data.U32[1] = b.Size()
	ctx.Data.C[0] = key
	core.EventFire(core.EVENT_CODE_TEXTURE_BOUND, b, ctx)
}
