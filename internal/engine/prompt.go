package engine

import (
	"fmt"
	"strings"

	"emotiva-math/internal/retrieval"
)

const tutorSystemPrompt = "You are a patient mathematics tutor for 3D geometry. " +
	"Explain using only the teacher material provided in the context below. " +
	"If the context does not cover something, say that the teacher material " +
	"does not cover it instead of inventing an answer. Cite the material " +
	"titles you used."

var styleGuides = map[string]string{
	"visual":      "Describe shapes, nets and diagrams the student can picture or sketch.",
	"auditory":    "Explain step by step in plain spoken language, as if talking it through.",
	"kinesthetic": "Suggest hands-on actions, like folding paper nets or measuring real boxes.",
}

var toneGuides = map[string]string{
	"anxious":   "Be calm and reassuring. Use small steps and simple numbers.",
	"confused":  "Re-explain the basics first and check one idea at a time.",
	"neutral":   "Keep a clear, steady pace.",
	"confident": "Be brisk and add a slightly harder twist at the end.",
}

// formatContext renders retrieved chunks as a citation block for prompts
// and for the grounded-sources part of responses.
func formatContext(chunks []retrieval.ScoredChunk) string {
	var b strings.Builder
	b.WriteString("--- Teacher material ---\n\n")
	for _, chunk := range chunks {
		b.WriteString(fmt.Sprintf("[%s | topic: %s | level: %s | author: %s]\n",
			chunk.Metadata.Title, chunk.Metadata.Topic, chunk.Metadata.Level, chunk.Metadata.Author))
		b.WriteString(chunk.Text)
		b.WriteString("\n\n")
	}
	b.WriteString("--- End teacher material ---")
	return b.String()
}

// buildExplanationPrompt assembles the user message for content generation.
func buildExplanationPrompt(topic, level, style, emotion, query string, chunks []retrieval.ScoredChunk) string {
	var b strings.Builder

	ask := query
	if strings.TrimSpace(ask) == "" {
		ask = fmt.Sprintf("Explain the %s topic", topic)
	}
	b.WriteString(fmt.Sprintf("%s at %s level.\n", ask, level))

	if guide, ok := styleGuides[strings.ToLower(style)]; ok {
		b.WriteString(guide)
		b.WriteString("\n")
	}
	if tone, ok := toneGuides[strings.ToLower(emotion)]; ok {
		b.WriteString(tone)
		b.WriteString("\n")
	}

	b.WriteString("Finish with one short worked example.\n\n")
	b.WriteString(formatContext(chunks))
	return b.String()
}

// buildQuizPrompt asks for count multiple-choice questions as a JSON array.
func buildQuizPrompt(topic, level string, count int, chunks []retrieval.ScoredChunk) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf(
		"Write %d multiple-choice questions about %s at %s level, based only on the teacher material below.\n",
		count, topic, level))
	b.WriteString(`Answer with a JSON array only, no prose. Each element:
{"question": "...", "option_a": "...", "option_b": "...", "option_c": "...", "option_d": "...", "correct_option": "A", "explanation": "..."}`)
	b.WriteString("\n\n")
	b.WriteString(formatContext(chunks))
	return b.String()
}

// motivationFor returns a short encouragement matched to the emotion.
func motivationFor(emotion string) string {
	switch strings.ToLower(emotion) {
	case "anxious":
		return "Take a breath. We will go one small step at a time, and that is enough."
	case "confused":
		return "Feeling confused means you are learning something new. Let's untangle it together."
	case "confident":
		return "Great energy! Let's use it to push a little further."
	default:
		return "Steady work builds strong skills. Keep going."
	}
}

// studyTip returns a study suggestion matched to learning style.
func studyTip(style string) string {
	switch strings.ToLower(style) {
	case "visual":
		return "Sketch the solid and label every edge before you compute."
	case "auditory":
		return "Read each formula out loud and explain it back in your own words."
	case "kinesthetic":
		return "Build or unfold a paper model of the solid to see where the formula comes from."
	default:
		return "Work through one example slowly before trying exercises."
	}
}
