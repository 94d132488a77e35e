package resources

import "math"

// InvalidID marks an unassigned or released slot in the resource tables.
const InvalidID uint32 = math.MaxUint32

type ResourceType int

/** @brief Pre-defined resource types. */
const (
	ResourceTypeNone ResourceType = iota
	/** @brief Image resource type (decoded pixel data). */
	ResourceTypeImage
	/** @brief Spritesheet descriptor resource type. */
	ResourceTypeSpritesheet
	/** @brief Bitmap font atlas resource type. */
	ResourceTypeBitmapFont
	/** @brief Custom resource type. Used by loaders outside the core engine. */
	ResourceTypeCustom
)

/**
 * @brief A generic structure for a resource. All resource loaders
 * load data into these.
 */
type Resource struct {
	/** @brief The name of the resource. */
	Name string
	/** @brief The full file path of the resource. */
	FullPath string
	/** @brief The size of the resource data in bytes. */
	DataSize uint64
	/** @brief The resource data. */
	Data interface{}
}

/**
 * @brief A resident, pre-decoded image held by the texture cache.
 */
type Texture struct {
	/** @brief The unique texture identifier (slot index in the cache). */
	ID uint32
	/** @brief The texture Name, which is also its cache key. */
	Name string
	/** @brief The texture Width in pixels. */
	Width uint32
	/** @brief The texture Height in pixels. */
	Height uint32
	/** @brief The number of channels in the texture. */
	ChannelCount uint8
	/** @brief The texture Generation. Incremented every time the data is reloaded. */
	Generation uint32
	/** @brief The raw texture data, RGBA order. */
	Pixels []uint8
}

// Size reports the pixel dimensions of the texture.
func (t *Texture) Size() (uint32, uint32) {
	return t.Width, t.Height
}

type TextureReference struct {
	ReferenceCount uint64
	Handle         uint32
	AutoRelease    bool
}

// FrameRect is a single frame's region within a sheet or atlas, in pixels.
type FrameRect struct {
	X, Y          uint32
	Width, Height uint32
}

/**
 * @brief Frame-slicing metadata for a multi-frame resource (spritesheet/atlas).
 *
 * Uniform grids describe themselves with FrameWidth/FrameHeight/Columns;
 * atlases with irregular cells carry explicit Frames rects instead.
 */
type FrameData struct {
	/** @brief The width of a single frame cell. */
	FrameWidth uint32
	/** @brief The height of a single frame cell. */
	FrameHeight uint32
	/** @brief The total number of frames. */
	FrameCount int
	/** @brief Frames per sheet row. Zero means a single row. */
	Columns int
	/** @brief Playback rate in frames per second. */
	FPS float64
	/** @brief Whether playback wraps around after the last frame. */
	Loop bool
	/** @brief Explicit frame regions for non-uniform atlases. Overrides the grid when set. */
	Frames []FrameRect
}

// Rect returns the source region of frame i within the sheet.
func (fd *FrameData) Rect(i int) FrameRect {
	if fd.FrameCount > 0 {
		i = i % fd.FrameCount
	}
	if len(fd.Frames) > 0 {
		return fd.Frames[i]
	}
	cols := fd.Columns
	if cols <= 0 {
		cols = fd.FrameCount
	}
	if cols <= 0 {
		cols = 1
	}
	col := uint32(i % cols)
	row := uint32(i / cols)
	return FrameRect{
		X:      col * fd.FrameWidth,
		Y:      row * fd.FrameHeight,
		Width:  fd.FrameWidth,
		Height: fd.FrameHeight,
	}
}

/**
 * @brief The per-frame renderable rectangle a sprite exposes. The texture
 * binding and the animation system write into this record; the render
 * pipeline reads from it.
 */
type FrameBounds struct {
	Width  uint32
	Height uint32
}

// ImageResourceParams controls how the image loader decodes pixel data.
type ImageResourceParams struct {
	FlipY bool
}

// ImageResourceData is the decoded output of the image loader.
type ImageResourceData struct {
	ChannelCount uint8
	Width        uint32
	Height       uint32
	Pixels       []uint8
}
