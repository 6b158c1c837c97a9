package mdquiz

import (
	"go.uber.org/zap"

	"github.com/alnah/go-mdquiz/internal/pipeline"
	"github.com/alnah/go-mdquiz/internal/quiz"
)

// Input contains the page to build.
type Input struct {
	Markdown string // Page source, optionally starting with YAML front matter
	Name     string // Source name used in logs (e.g., relative path)
	Title    string // Document title when the front matter declares none
}

// Result holds the output of a page build.
type Result struct {
	HTML        []byte // Complete HTML5 document
	Title       string
	HasQuizzes  bool // At least one quiz block was rendered
	Quizzes     int  // Number of rendered quiz blocks
	Diagnostics []Diagnostic
}

// Diagnostic describes a quiz block left verbatim because it was malformed.
type Diagnostic struct {
	Block   int    // 1-based position among the quiz blocks of the page
	Offset  int    // Byte offset of the block in the page body
	Excerpt string // Start of the block body
	Err     error  // Wraps ErrMalformedBlock and ErrMissingQuestion or ErrNoAnswers
	text    string
}

// String formats the diagnostic with an actionable hint.
func (d Diagnostic) String() string {
	return d.text
}

func toDiagnostics(in []quiz.Diagnostic) []Diagnostic {
	if len(in) == 0 {
		return nil
	}
	out := make([]Diagnostic, len(in))
	for i, d := range in {
		out[i] = Diagnostic{
			Block:   d.Block,
			Offset:  d.Offset,
			Excerpt: d.Excerpt,
			Err:     d.Err,
			text:    d.String(),
		}
	}
	return out
}

// PageMeta holds the front matter fields that affect quiz processing.
type PageMeta struct {
	Title string
	Quiz  string // "disable" opts the page out of quiz processing
}

// QuizDisabled reports whether the page opted out of quiz processing.
func (m PageMeta) QuizDisabled() bool {
	return pipeline.PageMeta{Title: m.Title, Quiz: m.Quiz}.QuizDisabled()
}

// Option configures a Builder.
type Option func(*Builder)

// builderConfig holds internal configuration for Builder.
type builderConfig struct {
	logger       *zap.Logger
	assetPath    string
	styleInput   string // name or path of the page theme
	noStyle      bool
	templateName string
	rewriteLinks bool
}

// WithLogger sets the logger receiving build diagnostics.
// Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(b *Builder) {
		if logger != nil {
			b.cfg.logger = logger
		}
	}
}

// WithAssetPath loads assets from basePath, falling back to the embedded
// defaults for anything the directory does not provide.
func WithAssetPath(basePath string) Option {
	return func(b *Builder) {
		b.cfg.assetPath = basePath
	}
}

// WithAssetLoader sets a custom asset loader. It takes precedence over WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(b *Builder) {
		b.publicAssetLoader = loader
	}
}

// WithStyle sets the page theme by name or by .css file path.
func WithStyle(nameOrPath string) Option {
	return func(b *Builder) {
		b.cfg.styleInput = nameOrPath
		b.cfg.noStyle = false
	}
}

// WithoutStyle builds pages without a page theme.
// Pages with quizzes still get the quiz style.
func WithoutStyle() Option {
	return func(b *Builder) {
		b.cfg.noStyle = true
	}
}

// WithTemplateSet selects the template set used to render quizzes.
func WithTemplateSet(name string) Option {
	return func(b *Builder) {
		b.cfg.templateName = name
	}
}

// WithLinkRewrite enables or disables rewriting relative .md links to .html.
// Enabled by default.
func WithLinkRewrite(enabled bool) Option {
	return func(b *Builder) {
		b.cfg.rewriteLinks = enabled
	}
}
