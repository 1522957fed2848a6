// Package improve provides the AI-improve service: it sends the current text
// of a resume section to an LLM and parses the response into bullet lines.
package improve

import "strings"

// ParseBulletLines converts LLM output into an ordered bullet list. The
// grammar is line-based: the response is split on newlines, each line loses
// one optional leading bullet glyph ("-", "*" or "•") plus surrounding
// whitespace, and blank lines are dropped. A single-line response yields a
// one-element list.
func ParseBulletLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		for _, glyph := range []string{"- ", "* ", "• ", "-", "*", "•"} {
			if strings.HasPrefix(line, glyph) {
				line = strings.TrimSpace(strings.TrimPrefix(line, glyph))
				break
			}
		}
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
