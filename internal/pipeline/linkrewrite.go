package pipeline

import (
	"net/url"
	"path"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// markdownExts lists link targets rewritten to their built .html page.
var markdownExts = []string{".md", ".markdown"}

// RewriteMarkdownLinks points relative a[href] links to Markdown sources at
// the .html pages built from them. Fragments and queries are preserved.
//
// Does NOT rewrite:
//   - Absolute URLs, protocol-relative URLs, mailto: and other schemes
//   - Anchors (#section)
//   - Non-link elements (img, script, link)
func RewriteMarkdownLinks(htmlContent string) (string, error) {
	// Fast path: nothing to rewrite
	lower := strings.ToLower(htmlContent)
	if !strings.Contains(lower, ".md") && !strings.Contains(lower, ".markdown") {
		return htmlContent, nil
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}

	if !rewriteLinks(doc) {
		return htmlContent, nil
	}
	return renderHTML(doc, isFragment)
}

// parseHTML parses HTML content, handling both full documents and fragments.
// Returns the parsed node, whether it was a fragment, and any error.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))

	// Full document: starts with <!DOCTYPE or <html
	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	// Fragment: parse with body context to avoid wrapping
	context := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), context)
	if err != nil {
		return nil, true, err
	}

	// Wrap nodes in a container for uniform traversal
	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}

	return container, true, nil
}

// renderHTML renders the document back to string.
// For fragments, only renders the children (avoids adding <html><body> wrapper).
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder

	if isFragment {
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if err := html.Render(&buf, c); err != nil {
				return "", err
			}
		}
		return buf.String(), nil
	}

	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// rewriteLinks traverses the DOM and reports whether any href changed.
func rewriteLinks(n *html.Node) bool {
	changed := false
	if n.Type == html.ElementNode && n.DataAtom == atom.A {
		for i, attr := range n.Attr {
			if attr.Key != "href" {
				continue
			}
			if rewritten, ok := markdownLinkTarget(attr.Val); ok {
				n.Attr[i].Val = rewritten
				changed = true
			}
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if rewriteLinks(c) {
			changed = true
		}
	}
	return changed
}

// markdownLinkTarget returns href with its Markdown extension replaced by .html.
func markdownLinkTarget(href string) (string, bool) {
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "//") {
		return "", false
	}

	u, err := url.Parse(href)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return "", false
	}

	// Split the raw href so escaping in the suffix is kept as written
	cut := len(href)
	if i := strings.IndexAny(href, "?#"); i != -1 {
		cut = i
	}
	target, suffix := href[:cut], href[cut:]

	ext := strings.ToLower(path.Ext(target))
	for _, md := range markdownExts {
		if ext == md {
			return target[:len(target)-len(ext)] + ".html" + suffix, true
		}
	}
	return "", false
}
