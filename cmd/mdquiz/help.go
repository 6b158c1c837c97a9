package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdquiz [flags] <input>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build HTML pages with interactive quizzes from markdown files.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output .html file or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel page builds (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Assets:")
	fmt.Fprintln(w, "      --style <name|path>   Page theme name or CSS file")
	fmt.Fprintln(w, "      --no-style            Build pages without a theme")
	fmt.Fprintln(w, "      --template <name>     Quiz template set")
	fmt.Fprintln(w, "      --asset-path <dir>    Custom asset directory (styles/, scripts/, templates/)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Links:")
	fmt.Fprintln(w, "      --no-link-rewrite     Keep links to .md files unchanged")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show timing and debug diagnostics")
	fmt.Fprintln(w, "      --log-format <s>      Diagnostic format: console, json")
	fmt.Fprintln(w, "      --version             Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Quiz markup:")
	fmt.Fprintln(w, "  <?quiz?>")
	fmt.Fprintln(w, "  question: What is 2+2?")
	fmt.Fprintln(w, "  answer: 3")
	fmt.Fprintln(w, "  answer-correct: 4")
	fmt.Fprintln(w, "  content: Explanation shown after a correct answer.")
	fmt.Fprintln(w, "  <?/quiz?>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Add 'quiz: disable' to a page's front matter to leave its blocks untouched.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDQUIZ_CONFIG, MDQUIZ_STYLE, MDQUIZ_ASSET_PATH, MDQUIZ_TEMPLATE,")
	fmt.Fprintln(w, "  MDQUIZ_INPUT_DIR, MDQUIZ_OUTPUT_DIR, MDQUIZ_LOG_LEVEL, MDQUIZ_LOG_FORMAT,")
	fmt.Fprintln(w, "  MDQUIZ_WORKERS")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0 success, 1 page build failed, 2 usage or config error, 3 I/O error")
}
