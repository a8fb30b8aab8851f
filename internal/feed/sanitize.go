package feed

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/net/html"
)

// plainEntities are the escapes that are safe to undo in plain text. Angle
// brackets stay escaped so no tag can reappear.
var plainEntities = strings.NewReplacer("&amp;", "&", "&#39;", "'", "&#34;", `"`)

// Sanitizer cleans upstream free text before it is placed in a feed.
type Sanitizer struct {
	markup *bluemonday.Policy
	plain  *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	markup := bluemonday.NewPolicy()
	markup.AllowElements("p", "br")

	return &Sanitizer{
		markup: markup,
		plain:  bluemonday.StrictPolicy(),
	}
}

// HTML converts newlines to <br> and returns Markup of the result.
func (s *Sanitizer) HTML(text string) string {
	return s.Markup(strings.ReplaceAll(text, "\n", "<br>"))
}

// Markup keeps only paragraph and line-break tags and balances paragraphs:
// a <p> inside an open paragraph closes it first, a stray </p> is dropped
// and an unclosed paragraph is closed at the end.
func (s *Sanitizer) Markup(fragment string) string {
	return balanceParagraphs(s.markup.Sanitize(fragment))
}

// Inline strips all markup and returns HTML-escaped text, for text placed
// inside an existing paragraph.
func (s *Sanitizer) Inline(text string) string {
	return s.plain.Sanitize(text)
}

// Text strips all markup and returns text for fields the renderer escapes
// itself. Ampersands and quotes are unescaped, angle brackets are not.
func (s *Sanitizer) Text(text string) string {
	return plainEntities.Replace(s.plain.Sanitize(text))
}

func balanceParagraphs(fragment string) string {
	z := html.NewTokenizer(strings.NewReader(fragment))

	var (
		b    strings.Builder
		open bool
	)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if open {
				b.WriteString("</p>")
			}
			return b.String()
		case html.TextToken:
			b.Write(z.Raw())
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch string(name) {
			case "p":
				if open {
					b.WriteString("</p>")
				}
				b.WriteString("<p>")
				open = true
			case "br":
				b.WriteString("<br>")
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if string(name) == "p" && open {
				b.WriteString("</p>")
				open = false
			}
		}
	}
}
