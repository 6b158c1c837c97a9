package quiz

import "errors"

// Sentinel errors for quiz operations.
var (
	// ErrMalformedBlock wraps every reason a block is skipped.
	ErrMalformedBlock = errors.New("malformed quiz block")

	// ErrMissingQuestion indicates a block without a question: line.
	ErrMissingQuestion = errors.New("missing question")

	// ErrNoAnswers indicates a block without answer: or answer-correct: lines.
	ErrNoAnswers = errors.New("no answers")

	// ErrInvalidText indicates the page source is not valid UTF-8.
	ErrInvalidText = errors.New("page source is not valid UTF-8 text")

	// ErrQuizRender indicates the quiz or summary template failed to execute.
	ErrQuizRender = errors.New("quiz template rendering failed")

	// ErrTemplateParse indicates a quiz or summary template could not be parsed.
	ErrTemplateParse = errors.New("quiz template parsing failed")
)
