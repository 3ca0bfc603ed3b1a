// ABOUTME: Reduces HTML error pages (proxies, ASGI fallbacks) to a single line of text
// ABOUTME: Uses golang.org/x/net/html; script and style bodies are skipped

package api

import (
	"strings"

	"golang.org/x/net/html"
)

// htmlText extracts visible text from an HTML document, collapsing whitespace.
func htmlText(raw string) string {
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return ""
	}

	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style" || n.Data == "head") {
			return
		}
		if n.Type == html.TextNode {
			for _, f := range strings.Fields(n.Data) {
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(f)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return b.String()
}
