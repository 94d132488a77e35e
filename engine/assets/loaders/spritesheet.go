package loaders

import (
	"fmt"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/spaghettifunk/ombra/engine/resources"
)

/**
 * @brief Loads spritesheet descriptors: TOML sidecar files declaring how a
 * sheet image is sliced into animation frames.
 *
 * Example (hero.sheet.toml):
 *
 *	[spritesheet]
 *	frame_width = 32
 *	frame_height = 48
 *	frame_count = 4
 *	columns = 4
 *	fps = 8.0
 *	loop = true
 */
type SpritesheetLoader struct{}

type spritesheetFile struct {
	Spritesheet struct {
		FrameWidth  uint32  `toml:"frame_width"`
		FrameHeight uint32  `toml:"frame_height"`
		FrameCount  int     `toml:"frame_count"`
		Columns     int     `toml:"columns"`
		FPS         float64 `toml:"fps"`
		Loop        bool    `toml:"loop"`
	} `toml:"spritesheet"`
}

func (sl *SpritesheetLoader) Load(path string, assetType resources.ResourceType, params interface{}) (*resources.Resource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file spritesheetFile
	if err := toml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse spritesheet descriptor %s: %w", path, err)
	}

	sheet := file.Spritesheet
	if sheet.FrameWidth == 0 || sheet.FrameHeight == 0 || sheet.FrameCount <= 0 {
		return nil, fmt.Errorf("spritesheet descriptor %s must declare frame_width, frame_height and frame_count", path)
	}

	return &resources.Resource{
		Name:     "spritesheet",
		FullPath: path,
		DataSize: uint64(len(raw)),
		Data: &resources.FrameData{
			FrameWidth:  sheet.FrameWidth,
			FrameHeight: sheet.FrameHeight,
			FrameCount:  sheet.FrameCount,
			Columns:     sheet.Columns,
			FPS:         sheet.FPS,
			Loop:        sheet.Loop,
		},
	}, nil
}

func (sl *SpritesheetLoader) Unload(res *resources.Resource) error {
	if res != nil {
		res.Data = nil
		res.DataSize = 0
	}
	return nil
}
