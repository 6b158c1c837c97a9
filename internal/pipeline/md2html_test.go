package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestGoldmarkConverter_ToHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantNot      []string
	}{
		{
			name:         "heading with ID",
			input:        "# Hello World",
			wantContains: []string{`<h1 id="hello-world">`, "Hello World", "</h1>"},
		},
		{
			name:         "paragraph with hard breaks",
			input:        "Line one\nLine two",
			wantContains: []string{"<p>", "Line one", "<br />", "Line two"},
		},
		{
			name:         "GFM table",
			input:        "| A | B |\n|---|---|\n| 1 | 2 |",
			wantContains: []string{"<table>", "<thead>", "<tbody>", "<th>", "<td>"},
		},
		{
			name:         "GFM strikethrough",
			input:        "~~deleted~~",
			wantContains: []string{"<del>deleted</del>"},
		},
		{
			name:         "footnote",
			input:        "Text[^1]\n\n[^1]: Note",
			wantContains: []string{"footnote"},
		},
		{
			name:         "code block with syntax highlighting",
			input:        "```go\nfunc main() {}\n```",
			wantContains: []string{`class="chroma"`, "func"},
		},
		{
			name:         "relative markdown link kept for rewrite stage",
			input:        "[Next](next.md)",
			wantContains: []string{`<a href="next.md">Next</a>`},
		},
		{
			name:         "single-line HTML block passes through",
			input:        "Intro\n\n<div class=\"quiz\" data-quiz-id=\"0\"><h3>Q</h3><section class=\"content hidden\"><p>a</p>&#10;<p>b</p></section></div>\n\nOutro",
			wantContains: []string{`<div class="quiz" data-quiz-id="0"><h3>Q</h3>`, "&#10;", "<p>Outro</p>"},
			wantNot:      []string{"<!-- raw HTML omitted -->"},
		},
		{
			name:         "empty input",
			input:        "",
			wantNot:      []string{"<p>"},
			wantContains: []string{},
		},
		{
			name:         "unicode content",
			input:        "# 日本語\n\nBonjour le monde",
			wantContains: []string{"日本語", "Bonjour le monde"},
		},
		{
			name:    "fragment without document wrapper",
			input:   "# Test",
			wantNot: []string{"<!DOCTYPE html>", "<body>"},
		},
	}

	converter := NewGoldmarkConverter()
	ctx := context.Background()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			result, err := converter.ToHTML(ctx, tt.input)
			if err != nil {
				t.Fatalf("ToHTML() unexpected error: %v", err)
			}

			for _, want := range tt.wantContains {
				if !strings.Contains(result, want) {
					t.Errorf("ToHTML() result should contain %q\nGot:\n%s", want, result)
				}
			}

			for _, notWant := range tt.wantNot {
				if strings.Contains(result, notWant) {
					t.Errorf("ToHTML() result should NOT contain %q\nGot:\n%s", notWant, result)
				}
			}
		})
	}
}

func TestGoldmarkConverter_ToHTML_ContextCancellation(t *testing.T) {
	t.Parallel()

	converter := NewGoldmarkConverter()

	t.Run("cancelled context returns error", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := converter.ToHTML(ctx, "# Test")
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("deadline exceeded returns error", func(t *testing.T) {
		t.Parallel()

		// Already expired to avoid flaky timing
		ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
		defer cancel()

		_, err := converter.ToHTML(ctx, "# Test")
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("expected context.DeadlineExceeded, got %v", err)
		}
	})
}

func TestGoldmarkConverter_ToFragment(t *testing.T) {
	t.Parallel()

	converter := NewGoldmarkConverter()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "emphasis",
			input: "Basic *arithmetic*.",
			want:  "<p>Basic <em>arithmetic</em>.</p>\n",
		},
		{
			name:  "inline code",
			input: "Use `len(s)`.",
			want:  "<p>Use <code>len(s)</code>.</p>\n",
		},
		{
			name:  "two paragraphs",
			input: "First.\n\nSecond.",
			want:  "<p>First.</p>\n<p>Second.</p>\n",
		},
		{
			name:  "heading without id",
			input: "## Why",
			want:  "<h2>Why</h2>\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := converter.ToFragment(tt.input)
			if err != nil {
				t.Fatalf("ToFragment() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ToFragment(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewGoldmarkConverter(t *testing.T) {
	t.Parallel()

	converter := NewGoldmarkConverter()
	if converter == nil {
		t.Fatal("NewGoldmarkConverter() returned nil")
	}
	if converter.md == nil || converter.fragment == nil {
		t.Error("converter has a nil goldmark instance")
	}
}
