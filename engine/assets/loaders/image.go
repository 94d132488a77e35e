package loaders

import (
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"

	"github.com/spaghettifunk/ombra/engine/resources"
)

type ImageLoader struct{}

func (il *ImageLoader) Load(path string, assetType resources.ResourceType, params interface{}) (*resources.Resource, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}

	flipY := false
	if p, ok := params.(*resources.ImageResourceParams); ok {
		flipY = p.FlipY
	}

	data := toRGBA(img, flipY)

	return &resources.Resource{
		Name:     "image",
		FullPath: path,
		DataSize: uint64(len(data.Pixels)),
		Data:     data,
	}, nil
}

func (il *ImageLoader) Unload(res *resources.Resource) error {
	if res != nil {
		res.Data = nil
		res.DataSize = 0
	}
	return nil
}

// toRGBA normalizes any decoded image to tightly packed RGBA pixels.
func toRGBA(img image.Image, flipY bool) *resources.ImageResourceData {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)

	pixels := rgba.Pix
	if flipY {
		flipped := make([]uint8, len(pixels))
		stride := w * 4
		for y := 0; y < h; y++ {
			src := pixels[y*rgba.Stride : y*rgba.Stride+stride]
			copy(flipped[(h-1-y)*stride:], src)
		}
		pixels = flipped
	}

	return &resources.ImageResourceData{
		ChannelCount: 4,
		Width:        uint32(w),
		Height:       uint32(h),
		Pixels:       pixels,
	}
}
