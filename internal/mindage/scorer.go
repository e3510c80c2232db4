package mindage

import (
	"fmt"
	"math"
	"strings"

	"github.com/kdimtricp/mindmirror/internal/emotion"
)

// Assessment is the heuristic mind-age readout derived from an emotion
// distribution. It is computed on demand and never persisted.
type Assessment struct {
	MindAge               int     `json:"estimated_mind_age"`
	AgeRangeMin           int     `json:"-"`
	AgeRangeMax           int     `json:"-"`
	PersonalityType       string  `json:"personality_type"`
	EmotionalIntelligence string  `json:"emotional_intelligence"`
	EIDescription         string  `json:"ei_description"`
	MaturityScore         float64 `json:"maturity_score"`
}

// Weighted contribution of each emotion to the maturity score. Positive
// weights read as emotional balance, negative as reduced regulation.
var emotionWeights = map[string]float64{
	"happy":    0.15,
	"neutral":  0.20,
	"sad":      -0.05,
	"angry":    -0.15,
	"fear":     -0.10,
	"surprise": 0.05,
	"disgust":  -0.08,
}

type ageProfile struct {
	base        float64
	rangeMin    int
	rangeMax    int
	description string
}

var ageProfiles = map[string]ageProfile{
	"happy":    {base: 25, rangeMin: 20, rangeMax: 35, description: "Optimistic Young Adult"},
	"neutral":  {base: 35, rangeMin: 30, rangeMax: 45, description: "Mature Adult"},
	"sad":      {base: 28, rangeMin: 18, rangeMax: 40, description: "Reflective Individual"},
	"angry":    {base: 22, rangeMin: 16, rangeMax: 30, description: "Reactive Young Adult"},
	"fear":     {base: 26, rangeMin: 20, rangeMax: 35, description: "Cautious Individual"},
	"surprise": {base: 23, rangeMin: 18, rangeMax: 32, description: "Curious Young Adult"},
	"disgust":  {base: 30, rangeMin: 25, rangeMax: 40, description: "Critical Adult"},
}

// Assess maps an emotion distribution to a mind-age estimate. Pure function:
// no state, no I/O. Unknown labels in the input are ignored; an unknown
// dominant label falls back to the neutral profile.
func Assess(emotions emotion.Scores, dominantEmotion string) Assessment {
	var maturityScore float64
	for label, percentage := range emotions {
		if weight, ok := emotionWeights[label]; ok {
			maturityScore += (percentage / 100) * weight
		}
	}

	profile, ok := ageProfiles[dominantEmotion]
	if !ok {
		profile = ageProfiles["neutral"]
	}

	// Maturity typically lands in [-0.3, 0.3]; scale it into years.
	age := profile.base + maturityScore*30
	if age < 16 {
		age = 16
	}
	if age > 50 {
		age = 50
	}

	var eiLevel, eiDescription string
	switch {
	case maturityScore > 0.1:
		eiLevel = "High"
		eiDescription = "Shows strong emotional regulation and balance"
	case maturityScore > -0.05:
		eiLevel = "Moderate"
		eiDescription = "Demonstrates average emotional awareness"
	default:
		eiLevel = "Developing"
		eiDescription = "Has room for growth in emotional regulation"
	}

	return Assessment{
		MindAge:               int(math.Round(age)),
		AgeRangeMin:           profile.rangeMin,
		AgeRangeMax:           profile.rangeMax,
		PersonalityType:       profile.description,
		EmotionalIntelligence: eiLevel,
		EIDescription:         eiDescription,
		MaturityScore:         math.Round(maturityScore*1000) / 1000,
	}
}

func (a Assessment) AgeRange() string {
	return fmt.Sprintf("%d-%d years", a.AgeRangeMin, a.AgeRangeMax)
}

func (a Assessment) Interpretation() string {
	return fmt.Sprintf(
		"Based on your emotional patterns, your psychological age appears to be around %d years, suggesting a %s emotional profile.",
		a.MindAge, strings.ToLower(a.PersonalityType))
}
