package quiz

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"regexp"
	"strings"
)

// MarkdownConverter renders an explanation body to an HTML fragment.
type MarkdownConverter interface {
	ToFragment(content string) (string, error)
}

// interTagBreak matches line breaks between two tags of the template output.
var interTagBreak = regexp.MustCompile(`>\s*\n\s*<`)

// Renderer turns parsed blocks into HTML fragments.
type Renderer struct {
	tmpl     *template.Template
	markdown MarkdownConverter
}

// NewRenderer creates a Renderer from the quiz template content.
// If md is nil, explanations are rendered as escaped text.
func NewRenderer(quizTemplate string, md MarkdownConverter) (*Renderer, error) {
	tmpl, err := template.New("quiz").Parse(quizTemplate)
	if err != nil {
		return nil, fmt.Errorf("%w: quiz: %v", ErrTemplateParse, err)
	}
	return &Renderer{tmpl: tmpl, markdown: md}, nil
}

// fragmentData is the quiz template input.
type fragmentData struct {
	Ordinal     int
	Number      int
	Question    template.HTML
	InputType   string
	GroupName   string
	Answers     []answerData
	Explanation template.HTML
}

type answerData struct {
	Index   int
	ID      string
	Text    template.HTML
	Correct bool
}

// Render renders block b with the given ordinal.
// The fragment spans a single line so Markdown keeps it as one HTML block.
func (r *Renderer) Render(b *Block, ordinal int) (string, error) {
	explanation, err := r.explanation(b.Explanation)
	if err != nil {
		return "", err
	}

	data := fragmentData{
		Ordinal:     ordinal,
		Number:      ordinal + 1,
		Question:    escapeText(b.Question),
		InputType:   b.Mode().InputType(),
		GroupName:   GroupName(ordinal),
		Answers:     make([]answerData, len(b.Answers)),
		Explanation: explanation,
	}
	for i, a := range b.Answers {
		data.Answers[i] = answerData{
			Index:   i,
			ID:      InputID(ordinal, i),
			Text:    escapeText(a.Text),
			Correct: a.Correct,
		}
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrQuizRender, err)
	}
	return interTagBreak.ReplaceAllString(strings.TrimSpace(buf.String()), "><"), nil
}

// escapeText escapes only the characters significant in HTML text, so
// "2+2?" stays readable in the page source.
func escapeText(s string) template.HTML {
	// #nosec G203 -- escaped with html.EscapeString
	return template.HTML(html.EscapeString(s))
}

// explanation renders the explanation body with newlines encoded as
// character references. Inside <pre> they still display as line breaks.
func (r *Renderer) explanation(text string) (template.HTML, error) {
	if text == "" {
		return "", nil
	}

	var out string
	if r.markdown == nil {
		out = html.EscapeString(text)
	} else {
		rendered, err := r.markdown.ToFragment(text)
		if err != nil {
			return "", fmt.Errorf("%w: explanation: %v", ErrQuizRender, err)
		}
		out = strings.TrimSpace(rendered)
	}

	// #nosec G203 -- escaped above or produced by the Markdown converter
	return template.HTML(strings.ReplaceAll(out, "\n", "&#10;")), nil
}

// RenderSummary executes the summary template once.
func RenderSummary(summaryTemplate string) (string, error) {
	tmpl, err := template.New("summary").Parse(summaryTemplate)
	if err != nil {
		return "", fmt.Errorf("%w: summary: %v", ErrTemplateParse, err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, nil); err != nil {
		return "", fmt.Errorf("%w: summary: %v", ErrQuizRender, err)
	}
	return strings.TrimSpace(buf.String()), nil
}
