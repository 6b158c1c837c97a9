package quiz

import (
	"strings"

	"go.uber.org/zap"
)

// StyleTag wraps CSS content in the tag appended to quiz pages.
func StyleTag(css string) string {
	return `<style type="text/css">` + css + `</style>`
}

// ScriptTag wraps JavaScript content in the tag appended to quiz pages.
func ScriptTag(js string) string {
	return `<script type="text/javascript" defer>` + js + `</script>`
}

// Finalizer appends the score summary and the client assets to quiz pages.
type Finalizer struct {
	summary   string
	styleTag  string
	scriptTag string
	logger    *zap.Logger
}

// NewFinalizer creates a Finalizer from the rendered summary fragment and
// the raw style and script contents.
func NewFinalizer(summary, style, script string, logger *zap.Logger) *Finalizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Finalizer{
		summary:   summary,
		styleTag:  StyleTag(style),
		scriptTag: ScriptTag(script),
		logger:    logger,
	}
}

// Finalize appends summary, style and script to htmlContent, in that order,
// when hasQuizzes is true. Each piece is skipped if an identical copy is
// already present, so finalizing a page twice changes nothing.
func (f *Finalizer) Finalize(htmlContent string, hasQuizzes bool) string {
	if !hasQuizzes {
		return htmlContent
	}

	var b strings.Builder
	b.Grow(len(htmlContent) + len(f.summary) + len(f.styleTag) + len(f.scriptTag))
	b.WriteString(htmlContent)

	for _, part := range []struct{ name, content string }{
		{"summary", f.summary},
		{"style", f.styleTag},
		{"script", f.scriptTag},
	} {
		if strings.Contains(htmlContent, part.content) {
			f.logger.Debug("quiz asset already present", zap.String("asset", part.name))
			continue
		}
		b.WriteString(part.content)
	}
	return b.String()
}
