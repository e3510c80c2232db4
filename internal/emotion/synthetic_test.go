package emotion

import (
	"context"
	"image"
	"image/color"
	"testing"
)

func grayImage(level uint8, width, height int) image.Image {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetGray(x, y, color.Gray{Y: level})
		}
	}
	return img
}

func TestSyntheticClassifier_ScoresSumTo100(t *testing.T) {
	classifier := NewSyntheticClassifier(42)
	ctx := context.Background()

	levels := []uint8{0, 64, 128, 192, 255}
	for _, level := range levels {
		for run := 0; run < 10; run++ {
			scores, err := classifier.Classify(ctx, grayImage(level, 32, 32))
			if err != nil {
				t.Fatalf("Classify failed for brightness %d: %v", level, err)
			}

			if len(scores) != len(Labels) {
				t.Fatalf("Expected %d labels, got %d", len(Labels), len(scores))
			}

			var sum float64
			for _, label := range Labels {
				value, ok := scores[label]
				if !ok {
					t.Fatalf("Missing label %s", label)
				}
				if value < 0 || value > 100 {
					t.Errorf("Score for %s out of range: %f", label, value)
				}
				sum += value
			}

			if sum < 99.9 || sum > 100.1 {
				t.Errorf("Scores sum to %f, expected 100 within 0.1", sum)
			}
		}
	}
}

func TestSyntheticClassifier_BrightnessBias(t *testing.T) {
	classifier := NewSyntheticClassifier(7)
	ctx := context.Background()

	const runs = 30
	var brightHappy, darkHappy, brightSad, darkSad float64

	for i := 0; i < runs; i++ {
		bright, err := classifier.Classify(ctx, grayImage(250, 16, 16))
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}
		dark, err := classifier.Classify(ctx, grayImage(5, 16, 16))
		if err != nil {
			t.Fatalf("Classify failed: %v", err)
		}

		brightHappy += bright["happy"]
		darkHappy += dark["happy"]
		brightSad += bright["sad"]
		darkSad += dark["sad"]
	}

	if brightHappy <= darkHappy {
		t.Errorf("Expected bright frames to average happier: bright %f, dark %f", brightHappy/runs, darkHappy/runs)
	}
	if darkSad <= brightSad {
		t.Errorf("Expected dark frames to average sadder: dark %f, bright %f", darkSad/runs, brightSad/runs)
	}
}

func TestSyntheticClassifier_Deterministic(t *testing.T) {
	ctx := context.Background()
	img := grayImage(128, 16, 16)

	first, err := NewSyntheticClassifier(99).Classify(ctx, img)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}
	second, err := NewSyntheticClassifier(99).Classify(ctx, img)
	if err != nil {
		t.Fatalf("Classify failed: %v", err)
	}

	for _, label := range Labels {
		if first[label] != second[label] {
			t.Errorf("Same seed produced different %s scores: %f vs %f", label, first[label], second[label])
		}
	}
}

func TestSyntheticClassifier_EmptyImage(t *testing.T) {
	classifier := NewSyntheticClassifier(1)

	_, err := classifier.Classify(context.Background(), image.NewGray(image.Rect(0, 0, 0, 0)))
	if err == nil {
		t.Error("Expected error for empty image")
	}
}
