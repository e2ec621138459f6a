package engine

import "strings"

// Levels recognized by the difficulty model, easiest first.
const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelAdvanced     = "advanced"
)

var levelRanks = map[string]float64{
	LevelBeginner:     1,
	LevelIntermediate: 2,
	LevelAdvanced:     3,
}

var emotionDeltas = map[string]float64{
	"anxious":   -1,
	"confused":  -0.5,
	"neutral":   0,
	"confident": 0.5,
}

// ValidEmotion reports whether the emotion tag is one the engine models.
func ValidEmotion(emotion string) bool {
	_, ok := emotionDeltas[strings.ToLower(emotion)]
	return ok
}

// ValidLevel reports whether the level tag is recognized.
func ValidLevel(level string) bool {
	_, ok := levelRanks[strings.ToLower(level)]
	return ok
}

// AdjustDifficulty computes the working difficulty for a study session.
// It starts from the user's base level, lowers it when the student
// reports a negative emotion, and nudges it by recent quiz performance
// (average of the last scores: 80 or above raises, below 60 lowers).
func AdjustDifficulty(baseLevel, emotion string, recentScores []int) string {
	rank, ok := levelRanks[strings.ToLower(baseLevel)]
	if !ok {
		rank = levelRanks[LevelBeginner]
	}

	rank += emotionDeltas[strings.ToLower(emotion)]

	if len(recentScores) > 0 {
		sum := 0
		for _, s := range recentScores {
			sum += s
		}
		avg := float64(sum) / float64(len(recentScores))
		switch {
		case avg >= 80:
			rank += 0.5
		case avg < 60:
			rank -= 0.5
		}
	}

	switch {
	case rank <= 1.5:
		return LevelBeginner
	case rank < 2.5:
		return LevelIntermediate
	default:
		return LevelAdvanced
	}
}
