package quiz

import (
	"fmt"
	"regexp"
	"strings"
)

// Block delimiters.
const (
	StartTag = "<?quiz?>"
	EndTag   = "<?/quiz?>"
)

// Field prefixes, matched after trimming leading whitespace.
const (
	prefixQuestion      = "question:"
	prefixAnswer        = "answer:"
	prefixAnswerCorrect = "answer-correct:"
	prefixContent       = "content:"
)

// blockPattern pairs each start tag with the nearest following end tag.
// A start tag inside a block body is plain content.
var blockPattern = regexp.MustCompile(`(?s)<\?quiz\?>(.*?)<\?/quiz\?>`)

// span locates one delimited region and its body inside the page source.
type span struct {
	start, end         int
	bodyStart, bodyEnd int
}

// findBlocks returns every delimited region in document order.
func findBlocks(source string) []span {
	matches := blockPattern.FindAllStringSubmatchIndex(source, -1)
	spans := make([]span, 0, len(matches))
	for _, m := range matches {
		spans = append(spans, span{start: m[0], end: m[1], bodyStart: m[2], bodyEnd: m[3]})
	}
	return spans
}

// parseState is the line classifier state.
type parseState int

const (
	seekingQuestion parseState = iota
	collectingAnswers
	collectingExplanation
)

// ParseBlock parses the text between the delimiters of one block.
// The first question: line is authoritative; later ones are ignored.
// Returns an error wrapping ErrMalformedBlock if the block has no question
// or no answers.
func ParseBlock(body string) (*Block, error) {
	b := &Block{}
	var explanation []string
	state := seekingQuestion

scan:
	for _, line := range strings.Split(strings.TrimSpace(body), "\n") {
		trimmed := strings.TrimSpace(line)

		switch state {
		case seekingQuestion:
			if _, ok := strings.CutPrefix(trimmed, prefixContent); ok {
				break scan
			}
			if text, ok := strings.CutPrefix(trimmed, prefixQuestion); ok {
				b.Question = strings.TrimSpace(text)
				state = collectingAnswers
			}

		case collectingAnswers:
			if text, ok := strings.CutPrefix(trimmed, prefixContent); ok {
				if text = strings.TrimSpace(text); text != "" {
					explanation = append(explanation, text)
				}
				state = collectingExplanation
				continue
			}
			if text, ok := strings.CutPrefix(trimmed, prefixAnswerCorrect); ok {
				b.Answers = append(b.Answers, Answer{Text: strings.TrimSpace(text), Correct: true})
			} else if text, ok := strings.CutPrefix(trimmed, prefixAnswer); ok {
				b.Answers = append(b.Answers, Answer{Text: strings.TrimSpace(text)})
			}

		case collectingExplanation:
			explanation = append(explanation, strings.TrimSuffix(line, "\r"))
		}
	}

	if state == seekingQuestion || b.Question == "" {
		return nil, fmt.Errorf("%w: %w", ErrMalformedBlock, ErrMissingQuestion)
	}
	if len(b.Answers) == 0 {
		return nil, fmt.Errorf("%w: %w for question %q", ErrMalformedBlock, ErrNoAnswers, b.Question)
	}

	b.Explanation = strings.TrimSpace(strings.Join(explanation, "\n"))
	return b, nil
}
