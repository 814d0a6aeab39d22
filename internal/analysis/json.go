package analysis

import (
	"regexp"
	"strings"
)

var codeFenceRe = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

// stripCodeFence removes a surrounding markdown code fence from a model
// response. Models are asked for bare JSON but fence it anyway often enough
// that every response goes through this before parsing.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if m := codeFenceRe.FindStringSubmatch(trimmed); m != nil {
		return m[1]
	}
	return trimmed
}

var emphasisRe = regexp.MustCompile(`\*{1,2}([^*]+)\*{1,2}`)

// stripEmphasis removes markdown bold/italic markers that models sprinkle
// into prose fields despite the plain-text instruction
func stripEmphasis(text string) string {
	return emphasisRe.ReplaceAllString(text, "$1")
}
