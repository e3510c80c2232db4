package emotion

import (
	"context"
	"image"
)

// Classifier scores a single frame against the fixed label set. The variant
// in use is chosen once at process start and shared read-only across requests.
type Classifier interface {
	Classify(ctx context.Context, img image.Image) (Scores, error)
}
