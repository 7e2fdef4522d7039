package mailer

import (
	"fmt"
	"html"
	"strings"
)

// PlanHTML renders a generated plan's Markdown into inline-styled HTML for
// email clients. It only understands the conventions our prompts ask the model
// to use: "##"/"###" headings, "**bold**" and "- " lists. accentColor tints
// headings and bold text (green for nutrition, blue for exercise).
func PlanHTML(markdown, accentColor string) string {
	var out []string
	inList := false

	closeList := func() {
		if inList {
			out = append(out, "</ul>")
			inList = false
		}
	}

	for _, rawLine := range strings.Split(markdown, "\n") {
		line := strings.TrimSpace(rawLine)

		switch {
		case strings.HasPrefix(line, "### "):
			closeList()
			out = append(out, fmt.Sprintf(`<h3 style="color: %s; font-size: 16px; margin: 16px 0 8px 0;">%s</h3>`,
				accentColor, inlineHTML(strings.TrimPrefix(line, "### "), accentColor)))
		case strings.HasPrefix(line, "## "):
			closeList()
			out = append(out, fmt.Sprintf(`<h2 style="color: %s; font-size: 18px; margin: 20px 0 12px 0; border-bottom: 2px solid #e9ecef;">%s</h2>`,
				accentColor, inlineHTML(strings.TrimPrefix(line, "## "), accentColor)))
		case strings.HasPrefix(line, "- "):
			if !inList {
				out = append(out, `<ul style="margin: 8px 0; padding-left: 20px;">`)
				inList = true
			}
			out = append(out, fmt.Sprintf(`<li style="margin: 4px 0; line-height: 1.5;">%s</li>`,
				inlineHTML(strings.TrimPrefix(line, "- "), accentColor)))
		case line == "":
			closeList()
			out = append(out, "<br>")
		default:
			closeList()
			out = append(out, fmt.Sprintf(`<p style="margin: 6px 0; line-height: 1.4;">%s</p>`,
				inlineHTML(line, accentColor)))
		}
	}

	closeList()
	return strings.Join(out, "\n")
}

// inlineHTML escapes a text fragment and converts **bold** spans.
func inlineHTML(text, accentColor string) string {
	escaped := html.EscapeString(text)

	var b strings.Builder
	open := false
	for {
		idx := strings.Index(escaped, "**")
		if idx < 0 {
			b.WriteString(escaped)
			break
		}

		b.WriteString(escaped[:idx])
		if open {
			b.WriteString("</strong>")
		} else {
			fmt.Fprintf(&b, `<strong style="color: %s;">`, accentColor)
		}
		open = !open
		escaped = escaped[idx+2:]
	}

	if open {
		b.WriteString("</strong>")
	}
	return b.String()
}
