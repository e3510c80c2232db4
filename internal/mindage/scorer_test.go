package mindage

import (
	"strings"
	"testing"

	"github.com/kdimtricp/mindmirror/internal/emotion"
)

func TestAssess_HappyDistribution(t *testing.T) {
	emotions := emotion.Scores{
		"happy": 80, "neutral": 10, "sad": 2, "angry": 1,
		"fear": 1, "surprise": 5, "disgust": 1,
	}

	assessment := Assess(emotions, "happy")

	// 0.8*0.15 + 0.1*0.20 + 0.02*-0.05 + 0.01*-0.15 + 0.01*-0.10 + 0.05*0.05 + 0.01*-0.08
	if assessment.MaturityScore != 0.138 {
		t.Errorf("Expected maturity score 0.138, got %f", assessment.MaturityScore)
	}
	if assessment.EmotionalIntelligence != "High" {
		t.Errorf("Expected High EI, got %s", assessment.EmotionalIntelligence)
	}
	if assessment.MindAge < assessment.AgeRangeMin || assessment.MindAge > assessment.AgeRangeMax {
		t.Errorf("Mind age %d outside profile range %d-%d", assessment.MindAge, assessment.AgeRangeMin, assessment.AgeRangeMax)
	}
	// 25 + 0.1382*30 = 29.146
	if assessment.MindAge != 29 {
		t.Errorf("Expected mind age 29, got %d", assessment.MindAge)
	}
	if assessment.PersonalityType != "Optimistic Young Adult" {
		t.Errorf("Unexpected personality type: %s", assessment.PersonalityType)
	}
}

func TestAssess_Pure(t *testing.T) {
	emotions := emotion.Scores{"neutral": 60, "sad": 40}

	first := Assess(emotions, "neutral")
	second := Assess(emotions, "neutral")

	if first != second {
		t.Errorf("Same input produced different assessments: %+v vs %+v", first, second)
	}
}

func TestAssess_AgeAlwaysInBounds(t *testing.T) {
	extremes := []emotion.Scores{
		{"angry": 100},
		{"neutral": 100},
		{"happy": 100},
		{},
	}

	for _, emotions := range extremes {
		for label := range ageProfiles {
			assessment := Assess(emotions, label)
			if assessment.MindAge < 16 || assessment.MindAge > 50 {
				t.Errorf("Mind age %d out of [16, 50] for %s / %v", assessment.MindAge, label, emotions)
			}
		}
	}
}

func TestAssess_EITiers(t *testing.T) {
	tests := []struct {
		name     string
		emotions emotion.Scores
		expected string
	}{
		{"Pure neutral is High", emotion.Scores{"neutral": 100}, "High"},
		{"Empty distribution is Moderate", emotion.Scores{}, "Moderate"},
		{"Pure anger is Developing", emotion.Scores{"angry": 100}, "Developing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assessment := Assess(tt.emotions, "neutral")
			if assessment.EmotionalIntelligence != tt.expected {
				t.Errorf("Expected %s, got %s (score %f)", tt.expected, assessment.EmotionalIntelligence, assessment.MaturityScore)
			}
		})
	}
}

func TestAssess_UnknownDominantFallsBackToNeutral(t *testing.T) {
	assessment := Assess(emotion.Scores{}, "confused")

	if assessment.PersonalityType != "Mature Adult" {
		t.Errorf("Expected neutral profile, got %s", assessment.PersonalityType)
	}
	if assessment.AgeRangeMin != 30 || assessment.AgeRangeMax != 45 {
		t.Errorf("Expected neutral range 30-45, got %d-%d", assessment.AgeRangeMin, assessment.AgeRangeMax)
	}
}

func TestAssess_UnknownLabelsIgnored(t *testing.T) {
	with := Assess(emotion.Scores{"happy": 50, "bored": 50}, "happy")
	without := Assess(emotion.Scores{"happy": 50}, "happy")

	if with.MaturityScore != without.MaturityScore {
		t.Errorf("Unknown label changed the score: %f vs %f", with.MaturityScore, without.MaturityScore)
	}
}

func TestRecommendations(t *testing.T) {
	t.Run("Happy list is personality templated", func(t *testing.T) {
		assessment := Assess(emotion.Scores{"happy": 90}, "happy")
		recs := Recommendations("happy", assessment)

		if len(recs) != 6 {
			t.Fatalf("Expected 6 recommendations, got %d", len(recs))
		}
		last := recs[len(recs)-1]
		if !strings.Contains(last, strings.ToLower(assessment.PersonalityType)) {
			t.Errorf("Expected templated personality in %q", last)
		}
	})

	t.Run("Unknown emotion gets neutral list", func(t *testing.T) {
		assessment := Assess(emotion.Scores{}, "confused")
		recs := Recommendations("confused", assessment)

		if len(recs) != len(recommendationLists["neutral"]) {
			t.Fatalf("Expected neutral list length, got %d", len(recs))
		}
		if recs[0] != recommendationLists["neutral"][0] {
			t.Errorf("Expected neutral recommendations, got %q", recs[0])
		}
	})

	t.Run("Every known emotion has a list", func(t *testing.T) {
		for label := range ageProfiles {
			recs := Recommendations(label, Assess(emotion.Scores{}, label))
			if len(recs) == 0 {
				t.Errorf("No recommendations for %s", label)
			}
		}
	})
}

func TestAgeRangeAndInterpretation(t *testing.T) {
	assessment := Assess(emotion.Scores{"happy": 80, "neutral": 20}, "happy")

	if assessment.AgeRange() != "20-35 years" {
		t.Errorf("Unexpected age range string: %s", assessment.AgeRange())
	}

	interpretation := assessment.Interpretation()
	if !strings.Contains(interpretation, "optimistic young adult") {
		t.Errorf("Expected lowercased personality in interpretation: %s", interpretation)
	}
}
