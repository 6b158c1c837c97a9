package assets

// TemplateSet holds the HTML templates for quiz rendering.
// The quiz template renders one block; the summary template renders the
// page-level score summary.
type TemplateSet struct {
	Name    string // Identifier (name or directory path)
	Quiz    string // Quiz block template HTML content
	Summary string // Score summary template HTML content
}

// Template file names inside a template set directory.
const (
	QuizTemplateFile    = "quiz.html"
	SummaryTemplateFile = "summary.html"
)

// DefaultTemplateSetName is the name of the built-in template set.
const DefaultTemplateSetName = "default"

// DefaultStyleName is the name of the built-in page theme.
const DefaultStyleName = "default"

// QuizStyleName is the name of the style appended to pages with quizzes.
const QuizStyleName = "quiz"

// QuizScriptName is the name of the client-side scoring script.
const QuizScriptName = "quiz"
