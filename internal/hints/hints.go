// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForMissingQuestion returns a hint for a quiz block without a question line.
func ForMissingQuestion() string {
	return format("start the block with a 'question:' line before any 'content:' line")
}

// ForNoAnswers returns a hint for a quiz block without answers.
func ForNoAnswers() string {
	return format("add 'answer:' or 'answer-correct:' lines between 'question:' and 'content:'")
}

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config flag and creating a config in ~/.config/go-mdquiz/.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-mdquiz") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForAssetPath returns hints for an unusable custom asset directory.
func ForAssetPath() string {
	return formatHints([]string{
		"expected styles/, scripts/ and templates/ subdirectories",
		"omit --asset-path to use the built-in assets",
	})
}

// ForStyleNotFound returns hints for style not found errors.
func ForStyleNotFound(available []string) string {
	if len(available) == 0 {
		return ""
	}
	return format("available: " + strings.Join(available, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
