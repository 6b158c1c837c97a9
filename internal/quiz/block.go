package quiz

import "strconv"

// Mode tells whether a block accepts one answer or several.
type Mode int

// Answer modes.
const (
	ModeSingle   Mode = iota // radio inputs
	ModeMultiple             // checkbox inputs
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeMultiple {
		return "multiple"
	}
	return "single"
}

// InputType returns the HTML input type used for the mode's answers.
func (m Mode) InputType() string {
	if m == ModeMultiple {
		return "checkbox"
	}
	return "radio"
}

// Answer is one choice of a quiz block.
type Answer struct {
	Text    string
	Correct bool
}

// Block is one parsed <?quiz?> region.
// Answers keep their authored order: the client script identifies them by position.
type Block struct {
	Raw         string // delimited source text, delimiters included
	Start       int    // byte offset of Raw in the page body
	End         int    // byte offset just past Raw
	Question    string
	Answers     []Answer
	Explanation string
}

// CorrectCount returns the number of answers marked correct.
func (b *Block) CorrectCount() int {
	n := 0
	for _, a := range b.Answers {
		if a.Correct {
			n++
		}
	}
	return n
}

// Mode derives the answer mode from the number of correct answers.
func (b *Block) Mode() Mode {
	if b.CorrectCount() > 1 {
		return ModeMultiple
	}
	return ModeSingle
}

// GroupName returns the input name shared by the answers of one block.
func GroupName(ordinal int) string {
	return "answer-" + strconv.Itoa(ordinal)
}

// InputID returns the id of the input for answer index of block ordinal.
func InputID(ordinal, index int) string {
	return "quiz-" + strconv.Itoa(ordinal) + "-" + strconv.Itoa(index)
}
