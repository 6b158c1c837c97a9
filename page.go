package mdquiz

import "github.com/alnah/go-mdquiz/internal/quiz"

// Page is the per-page quiz context for host build pipelines that convert
// Markdown themselves. Call RenderMarkdown on the Markdown body before
// conversion and FinalizeHTML on the converted HTML. A Page must not be
// reused for another document or shared between goroutines.
type Page struct {
	page *quiz.Page
}

// NewPage returns a fresh quiz context for one page.
func (b *Builder) NewPage() *Page {
	return &Page{page: b.engine.NewPage()}
}

// RenderMarkdown replaces every valid quiz block of body with its HTML
// fragment. If meta opts the page out, body is returned unchanged.
func (p *Page) RenderMarkdown(body string, meta PageMeta) (string, error) {
	out, _, err := p.page.Render(body, meta.QuizDisabled())
	return out, err
}

// FinalizeHTML appends the score summary, quiz style and quiz script to the
// page HTML if RenderMarkdown rendered at least one quiz. Finalizing twice
// changes nothing.
func (p *Page) FinalizeHTML(html string) string {
	return p.page.Finalize(html)
}

// HasQuizzes reports whether RenderMarkdown rendered at least one quiz.
func (p *Page) HasQuizzes() bool {
	return p.page.HasQuizzes()
}

// Count returns the number of quizzes rendered on the page.
func (p *Page) Count() int {
	return p.page.Count()
}

// Diagnostics returns the malformed blocks RenderMarkdown left verbatim.
func (p *Page) Diagnostics() []Diagnostic {
	return toDiagnostics(p.page.Diagnostics())
}
