package ai

import "strings"

// ExtractJSON pulls a JSON object out of a model response that may be wrapped
// in code fences or surrounded by prose. The first fenced block wins; when the
// response starts mid-prose, any line carrying fence markers is dropped
// instead. The result is the substring from the first "{" to the last "}", or
// empty when no object is present.
func ExtractJSON(input string) string {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return ""
	}

	if start := strings.Index(trimmed, "```"); start >= 0 {
		block := trimmed[start+3:]
		if end := strings.Index(block, "```"); end >= 0 {
			// First fenced block; the language tag, if any, is the first line.
			block = block[:end]
			if newline := strings.IndexByte(block, '\n'); newline >= 0 {
				firstLine := strings.TrimSpace(block[:newline])
				if firstLine != "" && !strings.ContainsAny(firstLine, "{}") {
					block = block[newline+1:]
				}
			}
			trimmed = strings.TrimSpace(block)
		} else {
			trimmed = strings.TrimSpace(dropFenceLines(trimmed))
		}
	}

	first := strings.Index(trimmed, "{")
	last := strings.LastIndex(trimmed, "}")
	if first == -1 || last == -1 || last <= first {
		return ""
	}

	return trimmed[first : last+1]
}

func dropFenceLines(input string) string {
	lines := strings.Split(input, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.Contains(line, "```") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
