package imageproc_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"edge-driver/internal/detection"
	"edge-driver/internal/imageproc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidPNG(t *testing.T, w, h int, c color.Color) []byte {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestInputSize(t *testing.T) {
	w, h, layout, err := imageproc.InputSize([]int{1, 3, 416, 608})
	require.NoError(t, err)
	assert.Equal(t, 608, w)
	assert.Equal(t, 416, h)
	assert.Equal(t, imageproc.CHW, layout)

	w, h, layout, err = imageproc.InputSize([]int{1, 320, 640, 3})
	require.NoError(t, err)
	assert.Equal(t, 640, w)
	assert.Equal(t, 320, h)
	assert.Equal(t, imageproc.HWC, layout)

	_, _, _, err = imageproc.InputSize([]int{2, 3, 608, 608})
	assert.Error(t, err)
	_, _, _, err = imageproc.InputSize([]int{1, 4, 608, 608})
	assert.Error(t, err)
	_, _, _, err = imageproc.InputSize([]int{608})
	assert.Error(t, err)
}

func TestLetterboxRoundTrip(t *testing.T) {
	lb := imageproc.NewLetterbox(1200, 600, 608, 608)
	assert.Equal(t, 608, lb.ResizedW)
	assert.Equal(t, 304, lb.ResizedH)
	assert.Equal(t, 0, lb.PadX)
	assert.Equal(t, 152, lb.PadY)

	box := [4]float32{0, 152, 304, 304}
	got := lb.Unmap(box)
	assert.InDelta(t, 0, got[0], 0.5)
	assert.InDelta(t, 0, got[1], 0.5)
	assert.InDelta(t, 600, got[2], 0.5)
	assert.InDelta(t, 300, got[3], 0.5)

	clamped := lb.Unmap([4]float32{-10, 0, 700, 608})
	assert.Equal(t, float32(0), clamped[0])
	assert.Equal(t, float32(0), clamped[1])
	assert.Equal(t, float32(1200), clamped[2])
	assert.Equal(t, float32(600), clamped[3])
}

func TestPrepare(t *testing.T) {
	data := solidPNG(t, 40, 20, color.NRGBA{R: 255, G: 0, B: 51, A: 255})

	frame, err := imageproc.Prepare(data, []int{1, 3, 16, 16})
	require.NoError(t, err)
	assert.Equal(t, 40, frame.Original.Bounds().Dx())
	assert.Len(t, frame.Pixels, 3*16*16)

	plane := 16 * 16
	center := 8*16 + 8
	assert.InDelta(t, 1.0, frame.Pixels[center], 1e-2)
	assert.InDelta(t, 0.0, frame.Pixels[plane+center], 1e-2)
	assert.InDelta(t, 0.2, frame.Pixels[2*plane+center], 1e-2)

	// Top rows are padding.
	assert.InDelta(t, 128.0/255, frame.Pixels[0], 1e-6)
}

func TestPixelsHWC(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 0, color.NRGBA{B: 255, A: 255})

	assert.Equal(t, []float32{1, 0, 0, 0, 0, 1}, imageproc.Pixels(img, imageproc.HWC))
	assert.Equal(t, []float32{1, 0, 0, 0, 0, 1}, imageproc.Pixels(img, imageproc.CHW))
}

func TestPrepareRejectsGarbage(t *testing.T) {
	_, err := imageproc.Prepare([]byte("not an image"), []int{1, 3, 16, 16})
	assert.ErrorIs(t, err, imageproc.ErrInvalidImage)
}

func TestClassNames(t *testing.T) {
	names, err := imageproc.ClassNames("")
	require.NoError(t, err)
	require.Len(t, names, 80)
	assert.Equal(t, "person", imageproc.ClassName(names, 0))
	assert.Equal(t, "toothbrush", imageproc.ClassName(names, 79))
	assert.Equal(t, "class 80", imageproc.ClassName(names, 80))
}

func TestAnnotateAndEncode(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	dets := []detection.Detection{
		{Box: [4]float32{10, 20, 40, 50}, Confidence: 0.9, ClassID: 0},
		{Box: [4]float32{100, 100, 120, 120}, Confidence: 0.5, ClassID: 1},
	}

	out := imageproc.Annotate(img, dets, []string{"person"})
	assert.Equal(t, img.Rect, out.Rect)
	assert.NotEqual(t, img.Pix, out.Pix)
	// Left edge of the first box is stroked.
	_, _, _, a := out.At(10, 35).RGBA()
	assert.NotZero(t, a)

	data, err := imageproc.EncodeJPEG(out)
	require.NoError(t, err)
	decoded, err := imageproc.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, 64, decoded.Bounds().Dx())
}
