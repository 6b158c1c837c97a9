package quiz

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/alnah/go-mdquiz/internal/hints"
)

// excerptLength bounds the block excerpt attached to diagnostics.
const excerptLength = 50

// Config holds the immutable inputs of an Engine.
type Config struct {
	QuizTemplate    string
	SummaryTemplate string
	Style           string // quiz CSS, embedded verbatim
	Script          string // quiz JavaScript, embedded verbatim
	Markdown        MarkdownConverter
	Logger          *zap.Logger
}

// Engine holds the parsed templates and assets shared by every page.
// It is safe for concurrent use; per-page state lives in Page.
type Engine struct {
	renderer  *Renderer
	finalizer *Finalizer
	logger    *zap.Logger
}

// NewEngine parses the templates and renders the summary fragment.
func NewEngine(cfg Config) (*Engine, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	renderer, err := NewRenderer(cfg.QuizTemplate, cfg.Markdown)
	if err != nil {
		return nil, err
	}
	summary, err := RenderSummary(cfg.SummaryTemplate)
	if err != nil {
		return nil, err
	}

	return &Engine{
		renderer:  renderer,
		finalizer: NewFinalizer(summary, cfg.Style, cfg.Script, logger),
		logger:    logger,
	}, nil
}

// NewPage returns a fresh context for one page.
func (e *Engine) NewPage() *Page {
	return &Page{engine: e}
}

// Diagnostic describes a block skipped during the first pass.
type Diagnostic struct {
	Block   int    // 1-based position among the delimited regions of the page
	Offset  int    // byte offset of the block in the page body
	Excerpt string // start of the block body
	Err     error
}

// String formats the diagnostic with an actionable hint.
func (d Diagnostic) String() string {
	return fmt.Sprintf("quiz block %d at offset %d: %v%s", d.Block, d.Offset, d.Err, hintFor(d.Err))
}

func hintFor(err error) string {
	switch {
	case errors.Is(err, ErrMissingQuestion):
		return hints.ForMissingQuestion()
	case errors.Is(err, ErrNoAnswers):
		return hints.ForNoAnswers()
	default:
		return ""
	}
}

// Page carries the quiz counter and flag of one page across both passes.
// A Page must not be shared between pages or goroutines.
type Page struct {
	engine      *Engine
	state       PageState
	diagnostics []Diagnostic
}

// Render is the first pass. It replaces every valid quiz block of source
// with its HTML fragment and reports whether any block was rendered.
// If optOut is true, source is returned unchanged.
// Malformed blocks stay verbatim and are recorded as diagnostics.
func (p *Page) Render(source string, optOut bool) (string, bool, error) {
	p.state.reset()
	p.diagnostics = nil

	if optOut {
		return source, false, nil
	}
	if !utf8.ValidString(source) {
		return "", false, ErrInvalidText
	}

	spans := findBlocks(source)
	if len(spans) == 0 {
		return source, false, nil
	}

	var out strings.Builder
	out.Grow(len(source))
	last := 0

	for i, sp := range spans {
		block, err := ParseBlock(source[sp.bodyStart:sp.bodyEnd])
		if err != nil {
			p.skip(i+1, sp, source, err)
			continue
		}
		block.Raw = source[sp.start:sp.end]
		block.Start, block.End = sp.start, sp.end

		fragment, err := p.engine.renderer.Render(block, p.state.next())
		if err != nil {
			return "", false, err
		}

		out.WriteString(source[last:sp.start])
		out.WriteString(fragment)
		out.WriteString(blockBreak(source[sp.end:]))
		last = sp.end
	}
	out.WriteString(source[last:])

	p.state.settle()
	return out.String(), p.state.HasQuizzes(), nil
}

// blockBreak returns the newlines that put rest after a blank line, which
// ends the Markdown HTML block opened by a fragment.
func blockBreak(rest string) string {
	switch {
	case rest == "", strings.HasPrefix(rest, "\n\n"):
		return ""
	case strings.HasPrefix(rest, "\n"):
		return "\n"
	default:
		return "\n\n"
	}
}

// skip records and logs a malformed block.
func (p *Page) skip(position int, sp span, source string, err error) {
	excerpt := strings.TrimSpace(source[sp.bodyStart:sp.bodyEnd])
	if len(excerpt) > excerptLength {
		excerpt = strings.ToValidUTF8(excerpt[:excerptLength], "") + "..."
	}

	p.diagnostics = append(p.diagnostics, Diagnostic{
		Block:   position,
		Offset:  sp.start,
		Excerpt: excerpt,
		Err:     err,
	})
	p.engine.logger.Warn("skipping malformed quiz block",
		zap.Int("block", position),
		zap.Int("offset", sp.start),
		zap.String("excerpt", excerpt),
		zap.Error(err),
	)
}

// Finalize is the second pass over the HTML converted from the rendered source.
func (p *Page) Finalize(htmlContent string) string {
	return p.engine.finalizer.Finalize(htmlContent, p.state.HasQuizzes())
}

// HasQuizzes reports whether the first pass rendered at least one block.
func (p *Page) HasQuizzes() bool {
	return p.state.HasQuizzes()
}

// Count returns the number of blocks rendered by the first pass.
func (p *Page) Count() int {
	return p.state.Count()
}

// Diagnostics returns the blocks skipped by the first pass.
func (p *Page) Diagnostics() []Diagnostic {
	return p.diagnostics
}
