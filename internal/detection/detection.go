package detection

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"edge-driver/internal/tensor"
)

// Detection is a kept box in x1,y1,x2,y2 order.
type Detection struct {
	Box        [4]float32 `json:"box"`
	Confidence float32    `json:"confidence"`
	ClassID    int        `json:"class_id"`
}

func (d Detection) Width() float32  { return max(0, d.Box[2]-d.Box[0]) }
func (d Detection) Height() float32 { return max(0, d.Box[3]-d.Box[1]) }

type Options struct {
	ConfidenceThreshold float32
	IoUThreshold        float32
	// BestClassOnly restricts each box to its highest scoring class before
	// thresholding.
	BestClassOnly bool
}

func DefaultOptions() Options {
	return Options{ConfidenceThreshold: 0.4, IoUThreshold: 0.6}
}

type candidate struct {
	box   int
	score float32
}

// PostProcess filters (box, class) pairs by confidence and runs greedy NMS
// within each class. Boxes are [N,4], [B,N,4] or [B,N,1,4]; scores are [N,C]
// or [B,N,C]. The result holds one slice per batch, ordered by class id and
// then by descending confidence.
func PostProcess(boxes []float32, boxShape []int, scores []float32, scoreShape []int, opts Options) ([][]Detection, error) {
	batches, n, err := boxLayout(boxShape)
	if err != nil {
		return nil, err
	}
	scoreBatches, scoreN, classes, err := scoreLayout(scoreShape)
	if err != nil {
		return nil, err
	}
	if batches < 0 || n < 0 || classes < 0 || batches != scoreBatches || n != scoreN {
		return nil, fmt.Errorf("%w: boxes %v do not line up with scores %v", tensor.ErrShapeMismatch, boxShape, scoreShape)
	}
	if len(boxes) != batches*n*4 || len(scores) != batches*n*classes {
		return nil, fmt.Errorf("%w: got %d box values and %d score values for shapes %v and %v",
			tensor.ErrShapeMismatch, len(boxes), len(scores), boxShape, scoreShape)
	}

	out := make([][]Detection, batches)
	for b := range batches {
		out[b] = processBatch(boxes[b*n*4:(b+1)*n*4], scores[b*n*classes:(b+1)*n*classes], n, classes, opts)
	}
	return out, nil
}

// PostProcessTensors decodes inline boxes and scores tensors and runs
// PostProcess on them.
func PostProcessTensors(boxes, scores *tensor.Tensor, opts Options) ([][]Detection, error) {
	boxValues, err := tensor.Decode(boxes)
	if err != nil {
		return nil, fmt.Errorf("error decoding boxes: %w", err)
	}
	scoreValues, err := tensor.Decode(scores)
	if err != nil {
		return nil, fmt.Errorf("error decoding scores: %w", err)
	}
	return PostProcess(boxValues, boxes.Shape, scoreValues, scores.Shape, opts)
}

func boxLayout(shape []int) (batches, n int, err error) {
	switch {
	case len(shape) == 2 && shape[1] == 4:
		return 1, shape[0], nil
	case len(shape) == 3 && shape[2] == 4:
		return shape[0], shape[1], nil
	case len(shape) == 4 && shape[2] == 1 && shape[3] == 4:
		return shape[0], shape[1], nil
	}
	return 0, 0, fmt.Errorf("%w: unsupported boxes shape %v", tensor.ErrShapeMismatch, shape)
}

func scoreLayout(shape []int) (batches, n, classes int, err error) {
	switch len(shape) {
	case 2:
		return 1, shape[0], shape[1], nil
	case 3:
		return shape[0], shape[1], shape[2], nil
	}
	return 0, 0, 0, fmt.Errorf("%w: unsupported scores shape %v", tensor.ErrShapeMismatch, shape)
}

func processBatch(boxes, scores []float32, n, classes int, opts Options) []Detection {
	byClass := make(map[int][]candidate)

	for i := range n {
		row := scores[i*classes : (i+1)*classes]
		if opts.BestClassOnly {
			if classes == 0 {
				continue
			}
			best := 0
			for c := 1; c < classes; c++ {
				if row[c] > row[best] {
					best = c
				}
			}
			if row[best] >= opts.ConfidenceThreshold {
				byClass[best] = append(byClass[best], candidate{box: i, score: row[best]})
			}
			continue
		}
		for c, score := range row {
			if score >= opts.ConfidenceThreshold {
				byClass[c] = append(byClass[c], candidate{box: i, score: score})
			}
		}
	}

	detections := []Detection{}
	for _, class := range slices.Sorted(maps.Keys(byClass)) {
		for _, kept := range nms(boxes, byClass[class], opts.IoUThreshold) {
			detections = append(detections, Detection{
				Box:        boxAt(boxes, kept.box),
				Confidence: kept.score,
				ClassID:    class,
			})
		}
	}
	return detections
}

// nms keeps candidates greedily in descending score order. Equal scores keep
// their original order.
func nms(boxes []float32, candidates []candidate, iouThreshold float32) []candidate {
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return cmp.Compare(b.score, a.score)
	})

	kept := make([]candidate, 0, len(candidates))
	for _, c := range candidates {
		box := boxAt(boxes, c.box)
		suppressed := false
		for _, k := range kept {
			if IoU(box, boxAt(boxes, k.box)) > iouThreshold {
				suppressed = true
				break
			}
		}
		if !suppressed {
			kept = append(kept, c)
		}
	}
	return kept
}

func boxAt(boxes []float32, i int) [4]float32 {
	return [4]float32{boxes[4*i], boxes[4*i+1], boxes[4*i+2], boxes[4*i+3]}
}

// IoU is the intersection over union of two x1,y1,x2,y2 boxes. Boxes without
// area overlap nothing.
func IoU(a, b [4]float32) float32 {
	areaA := max(0, a[2]-a[0]) * max(0, a[3]-a[1])
	areaB := max(0, b[2]-b[0]) * max(0, b[3]-b[1])

	iw := min(a[2], b[2]) - max(a[0], b[0])
	ih := min(a[3], b[3]) - max(a[1], b[1])
	if iw <= 0 || ih <= 0 {
		return 0
	}

	inter := iw * ih
	union := areaA + areaB - inter
	if union <= 0 {
		return 0
	}
	return inter / union
}

// ScaleBoxes converts normalized boxes to pixels in a width x height frame.
func ScaleBoxes(detections []Detection, width, height int) []Detection {
	w, h := float32(width), float32(height)
	out := make([]Detection, len(detections))
	for i, d := range detections {
		d.Box = [4]float32{d.Box[0] * w, d.Box[1] * h, d.Box[2] * w, d.Box[3] * h}
		out[i] = d
	}
	return out
}
