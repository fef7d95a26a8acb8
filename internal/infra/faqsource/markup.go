package faqsource

import (
	"strings"

	"golang.org/x/net/html"
)

// plainText strips markup from questions exported by the intranet CMS so tags
// and entities never reach the vocabulary.
func plainText(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}
	tokenizer := html.NewTokenizer(strings.NewReader(s))
	var (
		b    strings.Builder
		skip int
	)
	for {
		switch tokenizer.Next() {
		case html.ErrorToken:
			return strings.Join(strings.Fields(b.String()), " ")
		case html.StartTagToken:
			if isSkipped(tokenizer) {
				skip++
			}
		case html.EndTagToken:
			if isSkipped(tokenizer) && skip > 0 {
				skip--
			}
		case html.TextToken:
			if skip == 0 {
				b.Write(tokenizer.Text())
				b.WriteByte(' ')
			}
		}
	}
}

func isSkipped(t *html.Tokenizer) bool {
	name, _ := t.TagName()
	switch string(name) {
	case "script", "style", "noscript":
		return true
	}
	return false
}

// plainAnswer strips markup line by line so answers keep their line breaks.
func plainAnswer(s string) string {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	for i, line := range lines {
		lines[i] = plainText(line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
