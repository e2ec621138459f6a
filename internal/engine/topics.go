package engine

import "strings"

// topicOrder is the curriculum sequence for 3D geometry. Recommendations
// move forward through it after strong results and stay put otherwise.
var topicOrder = []string{
	"cube",
	"cuboid",
	"prism",
	"cylinder",
	"pyramid",
	"cone",
	"sphere",
}

// topicFormulas feed the rule-based fallback when no LLM is configured.
var topicFormulas = map[string]string{
	"cube":     "Volume = s^3, Surface area = 6s^2",
	"cuboid":   "Volume = l x w x h, Surface area = 2(lw + lh + wh)",
	"prism":    "Volume = base area x height",
	"cylinder": "Volume = pi r^2 h, Surface area = 2 pi r (r + h)",
	"pyramid":  "Volume = (1/3) x base area x height",
	"cone":     "Volume = (1/3) pi r^2 h, Surface area = pi r (r + slant)",
	"sphere":   "Volume = (4/3) pi r^3, Surface area = 4 pi r^2",
}

// ValidTopic reports whether topic is part of the curriculum.
func ValidTopic(topic string) bool {
	_, ok := topicFormulas[strings.ToLower(topic)]
	return ok
}

// Topics returns the curriculum topics in teaching order.
func Topics() []string {
	out := make([]string, len(topicOrder))
	copy(out, topicOrder)
	return out
}

// NextTopic returns the topic that follows the given one in the
// curriculum, or "" when the topic is last or unknown.
func NextTopic(topic string) string {
	topic = strings.ToLower(topic)
	for i, t := range topicOrder {
		if t == topic && i+1 < len(topicOrder) {
			return topicOrder[i+1]
		}
	}
	return ""
}

// Formula returns the key formulas for a topic, or "" if unknown.
func Formula(topic string) string {
	return topicFormulas[strings.ToLower(topic)]
}
