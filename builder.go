package mdquiz

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/alnah/go-mdquiz/internal/assets"
	"github.com/alnah/go-mdquiz/internal/fileutil"
	"github.com/alnah/go-mdquiz/internal/pipeline"
	"github.com/alnah/go-mdquiz/internal/quiz"
)

// Compile-time interface implementation checks.
// These ensure implementations satisfy their interfaces at compile time,
// catching signature mismatches before runtime.
var (
	_ pipeline.MarkdownPreprocessor = (*pipeline.CommonMarkPreprocessor)(nil)
	_ pipeline.HTMLConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ pipeline.CSSInjector          = (*pipeline.CSSInjection)(nil)
	_ quiz.MarkdownConverter        = (*pipeline.GoldmarkConverter)(nil)
	_ AssetLoader                   = (*assetLoaderAdapter)(nil)
	_ assets.AssetLoader            = (*publicToInternalAdapter)(nil)
)

// Builder orchestrates the Markdown-to-HTML page build with quiz expansion.
// Create with NewBuilder(), then call Build() for each page. A Builder is
// safe for concurrent use; every page gets its own quiz counter.
type Builder struct {
	cfg               builderConfig
	assetLoader       assets.AssetLoader
	publicAssetLoader AssetLoader
	preprocessor      pipeline.MarkdownPreprocessor
	htmlConverter     *pipeline.GoldmarkConverter
	cssInjector       pipeline.CSSInjector
	engine            *quiz.Engine
	themeCSS          string
}

// NewBuilder creates a Builder with default configuration.
// All assets (page theme, quiz style, quiz script, templates) are loaded
// once here; an unavailable asset is reported as ErrAssetUnavailable.
func NewBuilder(opts ...Option) (*Builder, error) {
	b := &Builder{
		cfg: builderConfig{
			logger:       zap.NewNop(),
			templateName: assets.DefaultTemplateSetName,
			rewriteLinks: true,
		},
		assetLoader:   assets.NewEmbeddedLoader(),
		preprocessor:  &pipeline.CommonMarkPreprocessor{},
		htmlConverter: pipeline.NewGoldmarkConverter(),
		cssInjector:   &pipeline.CSSInjection{},
	}

	for _, opt := range opts {
		opt(b)
	}

	// Handle WithAssetPath: resolve to internal loader
	if b.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(b.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrAssetUnavailable, convertAssetError(err))
		}
		b.assetLoader = resolver
	}

	// Handle WithAssetLoader (public interface): wrap to internal interface
	if b.publicAssetLoader != nil {
		b.assetLoader = &publicToInternalAdapter{pub: b.publicAssetLoader}
	}

	if err := b.resolveStyle(); err != nil {
		return nil, err
	}
	if err := b.loadQuizEngine(); err != nil {
		return nil, err
	}

	return b, nil
}

// loadQuizEngine loads the quiz assets and parses the templates.
func (b *Builder) loadQuizEngine() error {
	templateSet, err := b.assetLoader.LoadTemplateSet(b.cfg.templateName)
	if err != nil {
		return fmt.Errorf("%w: loading template set %q: %w", ErrAssetUnavailable, b.cfg.templateName, convertAssetError(err))
	}
	style, err := b.assetLoader.LoadStyle(assets.QuizStyleName)
	if err != nil {
		return fmt.Errorf("%w: loading quiz style: %w", ErrAssetUnavailable, convertAssetError(err))
	}
	script, err := b.assetLoader.LoadScript(assets.QuizScriptName)
	if err != nil {
		return fmt.Errorf("%w: loading quiz script: %w", ErrAssetUnavailable, convertAssetError(err))
	}

	b.engine, err = quiz.NewEngine(quiz.Config{
		QuizTemplate:    templateSet.Quiz,
		SummaryTemplate: templateSet.Summary,
		Style:           style,
		Script:          script,
		Markdown:        b.htmlConverter,
		Logger:          b.cfg.logger,
	})
	if err != nil {
		return fmt.Errorf("%w: template set %q: %w", ErrAssetUnavailable, templateSet.Name, err)
	}
	return nil
}

// resolveStyle resolves the page theme (name or path) to CSS content.
// Called during NewBuilder() after options are applied and asset loader is configured.
func (b *Builder) resolveStyle() error {
	if b.cfg.noStyle {
		return nil
	}

	input := b.cfg.styleInput
	if input == "" {
		input = assets.DefaultStyleName
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("%w: loading style file %q: %w", ErrAssetUnavailable, input, err)
		}
		b.themeCSS = string(content)
		return nil
	}

	css, err := b.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("%w: loading style %q: %w", ErrAssetUnavailable, input, convertAssetError(err))
	}
	b.themeCSS = css
	return nil
}

// Build runs the full page pipeline and returns the complete HTML document.
// Malformed quiz blocks do not fail the build; they stay verbatim in the
// page and are listed in Result.Diagnostics.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (b *Builder) Build(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	meta, body, err := pipeline.SplitFrontMatter(input.Markdown)
	if err != nil {
		return nil, err
	}

	// Pass 1: quiz blocks become raw HTML blocks in the Markdown body
	page := b.NewPage()
	body, err = page.RenderMarkdown(body, PageMeta{Title: meta.Title, Quiz: meta.Quiz})
	if err != nil {
		return nil, err
	}

	mdContent := b.preprocessor.PreprocessMarkdown(ctx, body)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	htmlContent, err := b.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	if b.cfg.rewriteLinks {
		htmlContent, err = pipeline.RewriteMarkdownLinks(htmlContent)
		if err != nil {
			return nil, fmt.Errorf("rewriting markdown links: %w", err)
		}
	}

	// Pass 2: summary and client assets for pages with quizzes
	htmlContent = page.FinalizeHTML(htmlContent)

	title := meta.Title
	if title == "" {
		title = input.Title
	}
	document := pipeline.WrapDocument(title, htmlContent)
	document = b.cssInjector.InjectCSS(ctx, document, b.themeCSS)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	res := &Result{
		HTML:        []byte(document),
		Title:       title,
		HasQuizzes:  page.HasQuizzes(),
		Quizzes:     page.Count(),
		Diagnostics: page.Diagnostics(),
	}

	b.cfg.logger.Debug("built page",
		zap.String("page", input.Name),
		zap.Int("quizzes", res.Quizzes),
		zap.Int("skipped", len(res.Diagnostics)),
		zap.Bool("quiz_disabled", meta.QuizDisabled()),
	)
	return res, nil
}
