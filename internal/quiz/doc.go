// Package quiz finds quiz blocks in Markdown source, renders them to HTML
// and finalizes the converted page with a score summary and the client assets.
//
// A page goes through two passes:
//
//  1. Page.Render runs on the raw Markdown body. Every <?quiz?>...<?/quiz?>
//     block is parsed and replaced by its HTML fragment.
//  2. Page.Finalize runs on the HTML produced from that body. If pass 1 found
//     at least one quiz, the summary fragment, style and script are appended.
//
// # Block Syntax
//
//	<?quiz?>
//	question: Which numbers are even?
//	answer: 3
//	answer-correct: 4
//	answer-correct: 8
//	content: Even numbers are divisible by **two**.
//	<?/quiz?>
//
// A block without a question line or without answers is left untouched in
// the output so the author sees the raw markup in the published page.
//
// A Page holds the quiz counter and the has-quizzes flag for one page only.
// Create a new Page for every document; an Engine is safe for concurrent use.
package quiz
