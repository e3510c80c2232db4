package emotion

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	_ "golang.org/x/image/webp"
)

// DecodeBase64Image converts a base64 string, with or without a data-URL
// prefix, into a decoded image. Browsers submit webcam captures as
// "data:image/jpeg;base64,..." or occasionally as webp.
func DecodeBase64Image(data string) (image.Image, error) {
	if idx := strings.Index(data, ","); idx >= 0 {
		data = data[idx+1:]
	}

	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode base64: %w", err)
	}

	return DecodeImage(raw)
}

func DecodeImage(raw []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// MeanBrightness returns the average grayscale value of the image in [0, 255].
func MeanBrightness(img image.Image) (float64, error) {
	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return 0, fmt.Errorf("empty image")
	}

	var sum float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			gray := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			sum += float64(gray.Y)
		}
	}

	return sum / float64(bounds.Dx()*bounds.Dy()), nil
}
