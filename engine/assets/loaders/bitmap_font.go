package loaders

import (
	"sort"

	"github.com/fzipp/bmfont"

	"github.com/spaghettifunk/ombra/engine/resources"
)

/**
 * @brief Loads BMFont (.fnt) descriptors as multi-frame atlases.
 *
 * Each glyph region of the font page becomes one addressable frame, ordered
 * by codepoint so frame indices are stable across reloads. The cell size
 * reported to consumers is the largest glyph extent in the atlas.
 */
type BitmapFontLoader struct{}

func (fl *BitmapFontLoader) Load(path string, assetType resources.ResourceType, params interface{}) (*resources.Resource, error) {
	font, err := bmfont.LoadDescriptor(path)
	if err != nil {
		return nil, err
	}

	codepoints := make([]rune, 0, len(font.Chars))
	for cp := range font.Chars {
		codepoints = append(codepoints, cp)
	}
	sort.Slice(codepoints, func(i, j int) bool { return codepoints[i] < codepoints[j] })

	fd := &resources.FrameData{
		FrameCount: len(codepoints),
		Frames:     make([]resources.FrameRect, 0, len(codepoints)),
	}
	for _, cp := range codepoints {
		g := font.Chars[cp]
		fd.Frames = append(fd.Frames, resources.FrameRect{
			X:      uint32(g.X),
			Y:      uint32(g.Y),
			Width:  uint32(g.Width),
			Height: uint32(g.Height),
		})
		if uint32(g.Width) > fd.FrameWidth {
			fd.FrameWidth = uint32(g.Width)
		}
		if uint32(g.Height) > fd.FrameHeight {
			fd.FrameHeight = uint32(g.Height)
		}
	}

	return &resources.Resource{
		Name:     "bitmap_font",
		FullPath: path,
		DataSize: uint64(len(fd.Frames)),
		Data:     fd,
	}, nil
}

func (fl *BitmapFontLoader) Unload(res *resources.Resource) error {
	if res != nil {
		res.Data = nil
		res.DataSize = 0
	}
	return nil
}
