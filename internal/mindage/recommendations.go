package mindage

import (
	"fmt"
	"strings"
)

// GeneralTip accompanies every recommendation response.
const GeneralTip = "Remember that emotions are temporary and provide valuable information about your experiences. Your emotional patterns reveal insights about your psychological maturity and self-awareness."

var recommendationLists = map[string][]string{
	"happy": {
		"🎉 Great mood detected! Share your positivity with others.",
		"📝 Consider journaling about what made you happy today.",
		"🏃‍♂️ Channel this energy into a fun physical activity.",
		"🎵 Listen to upbeat music to maintain your good mood.",
		"🤝 This is a perfect time to connect with friends and family.",
	},
	"sad": {
		"🤗 It's okay to feel sad. Practice self-compassion.",
		"☎️ Consider reaching out to a trusted friend or family member.",
		"🧘‍♀️ Try mindfulness meditation or deep breathing exercises.",
		"🌿 Spend some time in nature to lift your spirits.",
		"📖 Reading uplifting books or watching feel-good content might help.",
		"💭 Your reflective state shows depth - use this time for introspection and growth.",
	},
	"angry": {
		"😤 Take deep breaths and count to ten before reacting.",
		"🏃‍♂️ Try physical exercise to release tension and anger.",
		"📝 Write down your feelings to process them better.",
		"🎧 Listen to calming music or nature sounds.",
		"🧘‍♀️ Practice progressive muscle relaxation techniques.",
		"⚡ Channel your intense energy constructively - consider anger management techniques.",
	},
	"surprise": {
		"✨ Embrace the unexpected! New experiences can be enriching.",
		"📚 Use this energy to learn something new and interesting.",
		"🤔 Reflect on what surprised you and why it affected you.",
		"📱 Share interesting discoveries with others.",
		"🎯 Channel this alertness into creative problem-solving.",
		"🌟 Your openness to surprise shows a curious, adaptable mind!",
	},
	"fear": {
		"💪 Remember that courage is acting despite fear.",
		"🧘‍♀️ Practice grounding techniques to feel more centered.",
		"👥 Talk to someone you trust about your concerns.",
		"📖 Learn more about what you fear to reduce anxiety.",
		"🌱 Take small steps toward overcoming your fears.",
		"🛡️ Your caution can be wisdom - balance it with confidence-building activities.",
	},
	"disgust": {
		"🧘‍♀️ Take a moment to understand the source of this feeling.",
		"🌱 Focus on things that bring you peace and comfort.",
		"🏠 Create a clean, organized environment around you.",
		"😊 Practice gratitude for positive aspects of your day.",
		"🔄 Consider if there are changes you can make to improve the situation.",
		"🎭 Your strong reactions show you have clear values - use them constructively.",
	},
	"neutral": {
		"⚖️ Emotional balance is actually quite healthy!",
		"🎯 This is a good time for focused work or planning.",
		"🌟 Consider trying something new to spark interest.",
		"📝 Reflect on your goals and priorities.",
		"🧘‍♀️ Use this calm state for meditation or mindfulness practice.",
		"🏛️ Your emotional stability reflects mature self-regulation skills!",
	},
}

// Recommendations returns the canned advice list for the dominant emotion.
// The happy list closes with an entry templated on the assessed personality;
// unknown emotions get the neutral list.
func Recommendations(dominantEmotion string, assessment Assessment) []string {
	list, ok := recommendationLists[dominantEmotion]
	if !ok {
		list = recommendationLists["neutral"]
	}

	result := make([]string, len(list), len(list)+1)
	copy(result, list)

	if dominantEmotion == "happy" {
		result = append(result, fmt.Sprintf(
			"🧠 Your optimistic energy reflects a %s mindset!",
			strings.ToLower(assessment.PersonalityType)))
	}

	return result
}
