package mdquiz

import (
	"errors"

	"github.com/alnah/go-mdquiz/internal/pipeline"
	"github.com/alnah/go-mdquiz/internal/quiz"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown  = errors.New("markdown content cannot be empty")
	ErrHTMLConversion = pipeline.ErrHTMLConversion
	ErrFrontMatter    = pipeline.ErrFrontMatter

	// Quiz processing errors. Malformed blocks never fail a build; they are
	// reported in Result.Diagnostics with an error wrapping ErrMalformedBlock.
	ErrMalformedBlock  = quiz.ErrMalformedBlock
	ErrMissingQuestion = quiz.ErrMissingQuestion
	ErrNoAnswers       = quiz.ErrNoAnswers
	ErrInvalidText     = quiz.ErrInvalidText
	ErrQuizRender      = quiz.ErrQuizRender
	ErrTemplateParse   = quiz.ErrTemplateParse

	// Asset loading errors.
	ErrAssetUnavailable      = errors.New("required asset unavailable")
	ErrStyleNotFound         = errors.New("style not found")
	ErrScriptNotFound        = errors.New("script not found")
	ErrTemplateSetNotFound   = errors.New("template set not found")
	ErrIncompleteTemplateSet = errors.New("template set missing required template")
	ErrInvalidAssetPath      = errors.New("invalid asset path")
)
