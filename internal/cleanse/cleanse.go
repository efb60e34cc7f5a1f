// Package cleanse normalizes pasted notification text before parsing.
// Admins copy notices straight from official portals, so the input is
// either plain text with messy whitespace or a raw HTML fragment.
package cleanse

import (
	"strings"

	"golang.org/x/net/html"
)

// Text returns a whitespace-normalized plain-text rendition of raw.
// Input that looks like markup is run through the HTML reader first;
// anything else only has its whitespace collapsed.
func Text(raw string) string {
	if looksLikeHTML(raw) {
		if t := fromHTML(raw); t != "" {
			return t
		}
	}
	return normalizeWhitespace(raw)
}

// looksLikeHTML is a cheap sniff: a tag-shaped token early in the input.
func looksLikeHTML(s string) bool {
	head := s
	if len(head) > 512 {
		head = head[:512]
	}
	open := strings.IndexByte(head, '<')
	if open < 0 || open+1 >= len(head) {
		return false
	}
	// A bare "<" in prose ("age < 30") is not a tag.
	c := head[open+1]
	if c != '/' && (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
		return false
	}
	return strings.IndexByte(head[open:], '>') > 1
}

// fromHTML renders readable text from a pasted HTML fragment. Block
// elements become line breaks and table cells are joined with a
// separator so post-wise vacancy rows keep their "name: count" shape
// for the line-oriented extractors downstream.
func fromHTML(raw string) string {
	node, err := html.Parse(strings.NewReader(raw))
	if err != nil || node == nil {
		return ""
	}
	w := textWriter{atStart: true}
	w.walk(node)
	return normalizeWhitespace(w.b.String())
}

type textWriter struct {
	b       strings.Builder
	atStart bool // true when the current output line is still empty
}

func (w *textWriter) line() {
	if !w.atStart {
		w.b.WriteString("\n")
		w.atStart = true
	}
}

func (w *textWriter) text(s string) {
	if strings.TrimSpace(s) == "" {
		return
	}
	w.b.WriteString(s)
	w.atStart = false
}

func (w *textWriter) walk(n *html.Node) {
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "script", "style", "noscript", "nav", "footer", "aside", "iframe", "head":
			return
		case "br", "hr", "tr", "p", "div", "li", "h1", "h2", "h3", "h4", "h5", "h6":
			w.line()
		case "td", "th":
			// Cells after the first get a separator so post-wise rows
			// keep their "name: count" shape on one line.
			if !w.atStart {
				w.text(" : ")
			}
		}
	}
	if n.Type == html.TextNode {
		w.text(strings.ReplaceAll(strings.ReplaceAll(n.Data, "\t", " "), "\r", " "))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
	if n.Type == html.ElementNode {
		switch strings.ToLower(n.Data) {
		case "p", "tr", "li", "h1", "h2", "h3", "h4", "h5", "h6", "table":
			w.line()
		}
	}
}

// normalizeWhitespace collapses space runs within lines and blank-line
// runs between them, trimming each line.
func normalizeWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if len(out) > 0 && out[len(out)-1] == "" {
				continue
			}
			out = append(out, "")
			continue
		}
		out = append(out, strings.Join(strings.Fields(trimmed), " "))
	}
	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	for len(out) > 0 && out[0] == "" {
		out = out[1:]
	}
	return strings.Join(out, "\n")
}
