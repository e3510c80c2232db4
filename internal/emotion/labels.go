package emotion

import "math"

// Labels is the fixed set of emotions every classifier scores, in the order
// used to break ties when picking a dominant emotion: the first label with the
// maximum score wins.
var Labels = []string{"angry", "disgust", "fear", "happy", "sad", "surprise", "neutral"}

// Scores maps each emotion label to a percentage in [0, 100].
type Scores map[string]float64

func ZeroScores() Scores {
	scores := make(Scores, len(Labels))
	for _, label := range Labels {
		scores[label] = 0.0
	}
	return scores
}

// Dominant returns the label with the highest score, scanning Labels in order
// so equal maxima resolve to the earlier label. An empty map yields "neutral".
func Dominant(scores Scores) string {
	if len(scores) == 0 {
		return "neutral"
	}

	dominant := ""
	best := 0.0
	for _, label := range Labels {
		value, ok := scores[label]
		if !ok {
			continue
		}
		if dominant == "" || value > best {
			dominant = label
			best = value
		}
	}

	if dominant == "" {
		return "neutral"
	}
	return dominant
}

// Round2 rounds a score to two decimal places, the precision every emotion
// percentage is reported at.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
