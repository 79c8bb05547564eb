package dictionary

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// Entry is one label/definition block of a dictionary page.
type Entry struct {
	Term       string
	Definition string
}

// ParseEntries extracts the entries of a result page. Entries are "div.terim"
// blocks inside "div.ankat"; the label sits in "div.col-md-4" and the
// definition in "div.col-md-8". Blocks missing either part are skipped.
func ParseEntries(r io.Reader) ([]Entry, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("html.Parse > %w", err)
	}

	container := findFirst(doc, "ankat")
	if container == nil {
		return nil, nil
	}

	var entries []Entry
	for _, block := range findAll(container, "terim") {
		label := findFirst(block, "col-md-4")
		body := findFirst(block, "col-md-8")
		if label == nil || body == nil {
			continue
		}
		entries = append(entries, Entry{
			Term:       strings.TrimSpace(textContent(label)),
			Definition: strings.TrimSpace(textContent(body)),
		})
	}
	return entries, nil
}

// Match returns the definition of the first entry whose label equals term
// under Turkish case folding (I/ı, İ/i).
func Match(entries []Entry, term string) (string, bool) {
	want := foldTurkish(strings.TrimSpace(term))
	for _, entry := range entries {
		if foldTurkish(entry.Term) == want {
			return entry.Definition, true
		}
	}
	return "", false
}

func foldTurkish(s string) string {
	return strings.ToLowerSpecial(unicode.TurkishCase, s)
}

func hasClass(n *html.Node, class string) bool {
	if n.Type != html.ElementNode || n.Data != "div" {
		return false
	}
	for _, attr := range n.Attr {
		if attr.Key == "class" && slices.Contains(strings.Fields(attr.Val), class) {
			return true
		}
	}
	return false
}

// findFirst returns the first div below n (depth first) carrying class.
func findFirst(n *html.Node, class string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if hasClass(c, class) {
			return c
		}
		if found := findFirst(c, class); found != nil {
			return found
		}
	}
	return nil
}

// findAll returns every div below n carrying class, without descending into matches.
func findAll(n *html.Node, class string) []*html.Node {
	var nodes []*html.Node
	var f func(*html.Node)
	f = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if hasClass(c, class) {
				nodes = append(nodes, c)
				continue
			}
			f(c)
		}
	}
	f(n)
	return nodes
}

func textContent(n *html.Node) string {
	var builder strings.Builder
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.TextNode {
			builder.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(n)
	return builder.String()
}
