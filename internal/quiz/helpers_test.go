package quiz

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/alnah/go-mdquiz/internal/assets"
	"github.com/alnah/go-mdquiz/internal/pipeline"
)

// newTestEngine builds an Engine from the embedded default assets.
// If withMarkdown is false, explanations are rendered as escaped text.
func newTestEngine(t testing.TB, withMarkdown bool) *Engine {
	t.Helper()

	set, err := assets.LoadTemplateSet(assets.DefaultTemplateSetName)
	if err != nil {
		t.Fatalf("LoadTemplateSet() error: %v", err)
	}
	style, err := assets.LoadStyle(assets.QuizStyleName)
	if err != nil {
		t.Fatalf("LoadStyle() error: %v", err)
	}
	script, err := assets.LoadScript(assets.QuizScriptName)
	if err != nil {
		t.Fatalf("LoadScript() error: %v", err)
	}

	cfg := Config{
		QuizTemplate:    set.Quiz,
		SummaryTemplate: set.Summary,
		Style:           style,
		Script:          script,
	}
	if withMarkdown {
		cfg.Markdown = pipeline.NewGoldmarkConverter()
	}

	engine, err := NewEngine(cfg)
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}
	return engine
}

// parseFragment parses an HTML fragment in body context.
func parseFragment(t testing.TB, fragment string) []*html.Node {
	t.Helper()

	body := &html.Node{Type: html.ElementNode, DataAtom: atom.Body, Data: "body"}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		t.Fatalf("ParseFragment() error: %v", err)
	}
	return nodes
}

// findAll returns every element below nodes matching the predicate, in document order.
func findAll(nodes []*html.Node, match func(*html.Node) bool) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && match(n) {
			found = append(found, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return found
}

func byTag(a atom.Atom) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.DataAtom == a }
}

func hasClass(class string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		for _, c := range strings.Fields(attr(n, "class")) {
			if c == class {
				return true
			}
		}
		return false
	}
}

// attr returns the value of attribute key, or "" if absent.
func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

// textOf concatenates the text nodes below n.
func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
