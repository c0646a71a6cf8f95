package imageproc

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/color"
	"os"
	"strings"

	"edge-driver/internal/detection"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

//go:embed coco.names
var cocoNames string

// ClassNames loads one class name per line from path, or the built-in COCO
// table when path is empty.
func ClassNames(path string) ([]string, error) {
	data := []byte(cocoNames)
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("error reading class names: %w", err)
		}
	}

	var names []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if name := strings.TrimSpace(scanner.Text()); name != "" {
			names = append(names, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading class names: %w", err)
	}
	return names, nil
}

func ClassName(names []string, classID int) string {
	if classID >= 0 && classID < len(names) {
		return names[classID]
	}
	return fmt.Sprintf("class %d", classID)
}

var palette = []color.NRGBA{
	{R: 255, G: 0, B: 255, A: 255},
	{R: 0, G: 0, B: 255, A: 255},
	{R: 0, G: 255, B: 255, A: 255},
	{R: 0, G: 255, B: 0, A: 255},
	{R: 255, G: 255, B: 0, A: 255},
	{R: 255, G: 0, B: 0, A: 255},
}

func classColor(classID int) color.NRGBA {
	if classID < 0 {
		classID = -classID
	}
	return palette[classID%len(palette)]
}

// Annotate draws boxes and labels for detections given in img's pixel frame.
func Annotate(img image.Image, detections []detection.Detection, names []string) *image.NRGBA {
	out := imaging.Clone(img)
	face := basicfont.Face7x13

	for _, d := range detections {
		c := classColor(d.ClassID)
		rect := image.Rect(int(d.Box[0]), int(d.Box[1]), int(d.Box[2]), int(d.Box[3])).Intersect(out.Rect)
		if rect.Empty() {
			continue
		}
		strokeRect(out, rect, c, 2)

		label := fmt.Sprintf("%s %.2f", ClassName(names, d.ClassID), d.Confidence)
		width := font.MeasureString(face, label).Ceil()
		top := max(rect.Min.Y-face.Height, out.Rect.Min.Y)
		background := image.Rect(rect.Min.X, top, rect.Min.X+width+2, top+face.Height)
		draw.Draw(out, background.Intersect(out.Rect), image.NewUniform(c), image.Point{}, draw.Src)

		drawer := font.Drawer{
			Dst:  out,
			Src:  image.NewUniform(color.Black),
			Face: face,
			Dot:  fixed.P(rect.Min.X+1, top+face.Ascent),
		}
		drawer.DrawString(label)
	}
	return out
}

func strokeRect(dst *image.NRGBA, r image.Rectangle, c color.Color, thickness int) {
	src := image.NewUniform(c)
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thickness),
		image.Rect(r.Min.X, r.Max.Y-thickness, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+thickness, r.Max.Y),
		image.Rect(r.Max.X-thickness, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(dst, e.Intersect(r), src, image.Point{}, draw.Src)
	}
}

func EncodeJPEG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(90)); err != nil {
		return nil, fmt.Errorf("error encoding jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
