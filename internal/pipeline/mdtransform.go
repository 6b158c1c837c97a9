package pipeline

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/alnah/go-mdquiz/internal/yamlutil"
)

// QuizOptOut is the front matter value that opts a page out of quiz processing.
const QuizOptOut = "disable"

// ErrFrontMatter indicates the page front matter is not valid YAML.
var ErrFrontMatter = errors.New("invalid front matter")

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Compress multiple blank lines to max 2
	multipleBlankLines = regexp.MustCompile(`\n{3,}`)
)

// PageMeta holds the front matter fields a page may declare.
type PageMeta struct {
	Title string `yaml:"title"`
	Quiz  string `yaml:"quiz"`
}

// QuizDisabled reports whether the page opted out of quiz processing.
func (m PageMeta) QuizDisabled() bool {
	return m.Quiz == QuizOptOut
}

// SplitFrontMatter normalizes line endings, then separates and decodes the
// leading YAML front matter. A page without front matter yields zero meta.
func SplitFrontMatter(content string) (PageMeta, string, error) {
	var meta PageMeta

	content = NormalizeLineEndings(content)
	front, body, ok := yamlutil.SplitFrontMatter(content)
	if !ok || strings.TrimSpace(front) == "" {
		return meta, body, nil
	}

	if err := yamlutil.Unmarshal([]byte(front), &meta); err != nil {
		return PageMeta{}, content, fmt.Errorf("%w: %v", ErrFrontMatter, err)
	}
	return meta, body, nil
}

// MarkdownPreprocessor defines the contract for markdown preprocessing.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(ctx context.Context, content string) string
}

// CommonMarkPreprocessor applies transformations before CommonMark conversion.
type CommonMarkPreprocessor struct{}

// PreprocessMarkdown applies all transformations to prepare Markdown for conversion.
func (p *CommonMarkPreprocessor) PreprocessMarkdown(ctx context.Context, content string) string {
	// Check for cancellation before processing
	if ctx.Err() != nil {
		return content
	}

	content = NormalizeLineEndings(content)
	content = compressBlankLines(content)
	return content
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// compressBlankLines limits consecutive blank lines to 2 maximum.
func compressBlankLines(content string) string {
	return multipleBlankLines.ReplaceAllString(content, "\n\n")
}
