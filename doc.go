// Package mdquiz builds HTML pages from Markdown and turns inline quiz markup
// into interactive quiz widgets with a page-level score summary.
//
// # Quick Start
//
// Create a builder once, then build any number of pages:
//
//	b, err := mdquiz.NewBuilder()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := b.Build(ctx, mdquiz.Input{
//	    Markdown: source,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("page.html", result.HTML, 0644)
//
// # Quiz Markup
//
// A quiz is written inline in the Markdown source:
//
//	<?quiz?>
//	question: 2+2?
//	answer: 3
//	answer-correct: 4
//	content: Basic arithmetic.
//	<?/quiz?>
//
// Blocks with more than one answer-correct line render checkboxes, others
// render radio buttons. Text after content: and on the following lines is
// the explanation shown once the reader submits an answer. It is rendered
// as Markdown.
//
// A block without a question or without answers stays in the page as
// written and is reported in Result.Diagnostics. Set "quiz: disable" in the
// page front matter to leave every block of that page untouched.
//
// # Build Pipeline
//
//  1. Front matter split (title, quiz opt-out) and line normalization
//  2. Quiz blocks rendered to single-line HTML fragments
//  3. Markdown to HTML conversion via Goldmark (GFM, syntax highlighting)
//  4. Relative .md links rewritten to .html
//  5. Score summary, quiz style and quiz script appended to quiz pages
//  6. HTML5 document wrap and page theme injection
//
// # Host Pipelines
//
// Static site generators that convert Markdown themselves use Page:
//
//	page := b.NewPage()
//	body, err := page.RenderMarkdown(body, mdquiz.PageMeta{Quiz: meta["quiz"]})
//	html := convert(body)
//	html = page.FinalizeHTML(html)
//
// Create one Page per document. A Builder is safe for concurrent use.
//
// # Custom Assets
//
// Override built-in styles, scripts and templates with a directory:
//
//	b, err := mdquiz.NewBuilder(mdquiz.WithAssetPath("/path/to/assets"))
//
// Asset directory structure:
//
//	assets/
//	├── styles/
//	│   ├── default.css
//	│   └── quiz.css
//	├── scripts/
//	│   └── quiz.js
//	└── templates/
//	    └── default/
//	        ├── quiz.html
//	        └── summary.html
//
// Anything missing from the directory falls back to the embedded defaults.
package mdquiz
