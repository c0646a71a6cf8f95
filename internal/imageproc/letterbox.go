package imageproc

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Layout is the pixel order a model expects for its image input.
type Layout int

const (
	CHW Layout = iota
	HWC
)

var padColor = color.NRGBA{R: 128, G: 128, B: 128, A: 255}

var ErrInvalidImage = errors.New("invalid image")

func Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: error decoding image: %w", ErrInvalidImage, err)
	}
	return img, nil
}

// InputSize reads the image width, height and layout from a model input
// shape of [1,3,H,W], [1,H,W,3], [3,H,W] or [H,W,3].
func InputSize(shape []int) (width, height int, layout Layout, err error) {
	dims := shape
	if len(dims) == 4 {
		if dims[0] != 1 {
			return 0, 0, 0, fmt.Errorf("image input must have batch size 1, got shape %v", shape)
		}
		dims = dims[1:]
	}
	if len(dims) != 3 {
		return 0, 0, 0, fmt.Errorf("shape %v is not an image input", shape)
	}

	switch {
	case dims[0] == 3:
		width, height, layout = dims[2], dims[1], CHW
	case dims[2] == 3:
		width, height, layout = dims[1], dims[0], HWC
	default:
		return 0, 0, 0, fmt.Errorf("shape %v does not have 3 color channels", shape)
	}
	if width <= 0 || height <= 0 {
		return 0, 0, 0, fmt.Errorf("shape %v has an empty image", shape)
	}
	return width, height, layout, nil
}

// Letterbox maps between an image and the fixed-size model frame it is
// resized into with its aspect ratio kept.
type Letterbox struct {
	SrcWidth, SrcHeight int
	DstWidth, DstHeight int
	Scale               float64
	PadX, PadY          int
	ResizedW, ResizedH  int
}

func NewLetterbox(srcWidth, srcHeight, dstWidth, dstHeight int) Letterbox {
	scale := min(float64(dstWidth)/float64(srcWidth), float64(dstHeight)/float64(srcHeight))
	w := max(1, int(float64(srcWidth)*scale+0.5))
	h := max(1, int(float64(srcHeight)*scale+0.5))
	w, h = min(w, dstWidth), min(h, dstHeight)

	return Letterbox{
		SrcWidth:  srcWidth,
		SrcHeight: srcHeight,
		DstWidth:  dstWidth,
		DstHeight: dstHeight,
		Scale:     scale,
		PadX:      (dstWidth - w) / 2,
		PadY:      (dstHeight - h) / 2,
		ResizedW:  w,
		ResizedH:  h,
	}
}

func (l Letterbox) Apply(img image.Image) *image.NRGBA {
	resized := imaging.Resize(img, l.ResizedW, l.ResizedH, imaging.Linear)
	if l.ResizedW == l.DstWidth && l.ResizedH == l.DstHeight {
		return resized
	}
	canvas := imaging.New(l.DstWidth, l.DstHeight, padColor)
	return imaging.Paste(canvas, resized, image.Pt(l.PadX, l.PadY))
}

// Unmap converts a pixel box in the model frame to the source image frame,
// clamped to the image bounds.
func (l Letterbox) Unmap(box [4]float32) [4]float32 {
	unmap := func(v float32, pad, limit int) float32 {
		out := (float64(v) - float64(pad)) / l.Scale
		return float32(min(max(out, 0), float64(limit)))
	}
	return [4]float32{
		unmap(box[0], l.PadX, l.SrcWidth),
		unmap(box[1], l.PadY, l.SrcHeight),
		unmap(box[2], l.PadX, l.SrcWidth),
		unmap(box[3], l.PadY, l.SrcHeight),
	}
}

// Pixels packs an image into float32 values scaled to [0,1].
func Pixels(img *image.NRGBA, layout Layout) []float32 {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	plane := w * h
	out := make([]float32, 3*plane)

	for y := range h {
		row := img.Pix[y*img.Stride : y*img.Stride+4*w]
		for x := range w {
			r := float32(row[4*x]) / 255
			g := float32(row[4*x+1]) / 255
			b := float32(row[4*x+2]) / 255

			i := y*w + x
			if layout == CHW {
				out[i], out[plane+i], out[2*plane+i] = r, g, b
			} else {
				out[3*i], out[3*i+1], out[3*i+2] = r, g, b
			}
		}
	}
	return out
}

// Frame is a decoded image prepared for a model input.
type Frame struct {
	Original  image.Image
	Letterbox Letterbox
	Resized   *image.NRGBA
	Pixels    []float32
}

// Prepare decodes data and letterboxes it into a model input of the given
// shape.
func Prepare(data []byte, inputShape []int) (*Frame, error) {
	width, height, layout, err := InputSize(inputShape)
	if err != nil {
		return nil, err
	}

	img, err := Decode(data)
	if err != nil {
		return nil, err
	}
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: image is empty", ErrInvalidImage)
	}

	lb := NewLetterbox(bounds.Dx(), bounds.Dy(), width, height)
	resized := lb.Apply(img)

	return &Frame{
		Original:  img,
		Letterbox: lb,
		Resized:   resized,
		Pixels:    Pixels(resized, layout),
	}, nil
}
