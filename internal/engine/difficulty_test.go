package engine

import "testing"

func TestAdjustDifficulty(t *testing.T) {
	tests := []struct {
		name    string
		level   string
		emotion string
		scores  []int
		want    string
	}{
		{
			name:    "neutral no scores keeps level",
			level:   "intermediate",
			emotion: "neutral",
			want:    "intermediate",
		},
		{
			name:    "anxious drops a full level",
			level:   "intermediate",
			emotion: "anxious",
			want:    "beginner",
		},
		{
			name:    "anxious beginner stays at floor",
			level:   "beginner",
			emotion: "anxious",
			want:    "beginner",
		},
		{
			name:    "confident with strong scores moves up",
			level:   "intermediate",
			emotion: "confident",
			scores:  []int{85, 90, 80},
			want:    "advanced",
		},
		{
			name:    "confused with weak scores drops",
			level:   "advanced",
			emotion: "confused",
			scores:  []int{40, 55, 50},
			want:    "intermediate",
		},
		{
			name:    "weak scores alone drop half a level",
			level:   "intermediate",
			emotion: "neutral",
			scores:  []int{30, 50},
			want:    "beginner",
		},
		{
			name:    "middling scores change nothing",
			level:   "intermediate",
			emotion: "neutral",
			scores:  []int{70, 65, 75},
			want:    "intermediate",
		},
		{
			name:    "confident advanced stays at ceiling",
			level:   "advanced",
			emotion: "confident",
			scores:  []int{95, 100, 90},
			want:    "advanced",
		},
		{
			name:    "unknown level treated as beginner",
			level:   "expert",
			emotion: "neutral",
			want:    "beginner",
		},
		{
			name:    "mixed case input",
			level:   "Intermediate",
			emotion: "Anxious",
			want:    "beginner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AdjustDifficulty(tt.level, tt.emotion, tt.scores)
			if got != tt.want {
				t.Errorf("AdjustDifficulty(%q, %q, %v) = %q, want %q",
					tt.level, tt.emotion, tt.scores, got, tt.want)
			}
		})
	}
}

func TestValidators(t *testing.T) {
	if !ValidLevel("Beginner") || ValidLevel("expert") {
		t.Error("ValidLevel() misclassified input")
	}
	if !ValidEmotion("CONFIDENT") || ValidEmotion("bored") {
		t.Error("ValidEmotion() misclassified input")
	}
}
